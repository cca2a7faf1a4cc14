// internal/config/config.go
package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type AppConfig struct {
	Name         string `mapstructure:"name"`
	FrontendURL  string `mapstructure:"frontend_url"`
	Timezone     string `mapstructure:"timezone"`
	DefaultCount int    `mapstructure:"default_count"`
	MaxCount     int    `mapstructure:"max_count"`
	DefaultDays  int    `mapstructure:"default_days"`
	MaxDays      int    `mapstructure:"max_days"`
}

// Location は集計に使うタイムゾーン。読み込めなければUTC
func (a AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil || a.Timezone == "" {
		return time.UTC
	}
	return loc
}

type JWTConfig struct {
	SecretKey      string        `mapstructure:"secret_key"`
	AccessTokenTTL time.Duration `mapstructure:"access_token_ttl"`
}

type MagicLinkConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

type MailerConfig struct {
	Type string `mapstructure:"type"` // log | smtp | ses
}

type SMTPConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	From string `mapstructure:"from"`
}

type SESConfig struct {
	Region          string `mapstructure:"region"`
	From            string `mapstructure:"from"`
	AuthType        string `mapstructure:"auth_type"` // static_credentials | iam_role
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

// ClientConfig は学習CLIがAPIに接続するための設定
type ClientConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Token   string        `mapstructure:"token"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// RecorderConfig は回答送信キューの設定
type RecorderConfig struct {
	Capacity       int           `mapstructure:"capacity"`
	InitialBackoff time.Duration `mapstructure:"initial_backoff"`
	Factor         float64       `mapstructure:"factor"`
	Jitter         float64       `mapstructure:"jitter"`
	Steps          int           `mapstructure:"steps"`
}

type Config struct {
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	App  AppConfig `mapstructure:"app"`
	Auth struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"auth"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	MagicLink MagicLinkConfig `mapstructure:"magic_link"`
	Mailer    MailerConfig    `mapstructure:"mailer"`
	SMTP      SMTPConfig      `mapstructure:"smtp"`
	SES       SESConfig       `mapstructure:"ses"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Log       struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	Client   ClientConfig   `mapstructure:"client"`
	Recorder RecorderConfig `mapstructure:"recorder"`
}

var Cfg Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("app.name", AppName)
	v.SetDefault("app.frontend_url", "http://localhost:3000")
	v.SetDefault("app.timezone", DefaultTimezone)
	v.SetDefault("app.default_count", DefaultQuestionCount)
	v.SetDefault("app.max_count", MaxQuestionCount)
	v.SetDefault("app.default_days", DefaultStatsDays)
	v.SetDefault("app.max_days", MaxStatsDays)
	v.SetDefault("auth.enabled", DefaultAuthEnabled)
	v.SetDefault("jwt.access_token_ttl", 24*time.Hour)
	v.SetDefault("magic_link.ttl", 15*time.Minute)
	v.SetDefault("mailer.type", "log")
	v.SetDefault("smtp.port", 1025)
	v.SetDefault("ses.auth_type", "iam_role")
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Authorization", "Content-Type", "X-User-ID"})
	v.SetDefault("cors.max_age", 300)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("client.base_url", "http://localhost:8080")
	v.SetDefault("client.timeout", 10*time.Second)
	v.SetDefault("recorder.capacity", 100)
	v.SetDefault("recorder.initial_backoff", 200*time.Millisecond)
	v.SetDefault("recorder.factor", 2.0)
	v.SetDefault("recorder.jitter", 0.1)
	v.SetDefault("recorder.steps", 5)
}

// Load は path の config.yaml と環境変数から設定を読み込みます。
// 環境変数は "jwt.secret_key" -> JWT_SECRET_KEY のように対応します
func Load(path string) (Config, error) {
	// .env は任意 (存在しなくてもエラーにしない)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// AutomaticEnv は Unmarshal 時に未知のキーを拾わないため明示的にバインドする
	for _, key := range []string{
		"database.url", "server.port", "auth.enabled", "log.level",
		"jwt.secret_key", "mailer.type", "app.frontend_url", "app.timezone",
		"ses.region", "ses.from", "ses.access_key_id", "ses.secret_access_key",
		"smtp.host", "smtp.from",
	} {
		_ = v.BindEnv(key)
	}
	_ = v.BindEnv("client.base_url", "QUIZ_API_URL")
	_ = v.BindEnv("client.token", "QUIZ_TOKEN")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Printf("Error reading config file: %s\n", err)
			return Config{}, err
		}
		log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig は設定を読み込んでグローバルの Cfg に格納します
func LoadConfig(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	Cfg = cfg

	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if Cfg.JWT.SecretKey == "" {
		log.Println("Warning: JWT secret key is not set in config.")
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Auth Enabled: %t", Cfg.Auth.Enabled)
	log.Printf("Mailer Type: %s", Cfg.Mailer.Type)

	return nil
}
