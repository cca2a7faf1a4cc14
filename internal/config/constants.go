// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "QuizKeep"
	AppVersion = "0.3.0"
)

// デフォルト設定値
const (
	DefaultServerPort    = ":8080"
	DefaultLogLevel      = "info"
	DefaultTimezone      = "Asia/Tokyo"
	DefaultAuthEnabled   = true
	DefaultQuestionCount = 10
	MaxQuestionCount     = 50
	DefaultStatsDays     = 7
	MaxStatsDays         = 30
	ImportBatchSize      = 100
)
