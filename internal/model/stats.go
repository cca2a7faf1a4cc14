// internal/model/stats.go
package model

// Summary は正答数と正答率
type Summary struct {
	TotalAnswers int     `json:"totalAnswers"`
	CorrectCount int     `json:"correctCount"`
	Accuracy     float64 `json:"accuracy"`
}

// DailyStat は1日分の集計。Date は "2006-01-02"
type DailyStat struct {
	Date string `json:"date"`
	Summary
}

// CategoryStat は分野ごとの集計
type CategoryStat struct {
	Chapter      int    `json:"chapter"`
	ChapterTitle string `json:"chapterTitle"`
	Summary
}

type DailyStatsResponse struct {
	Daily []DailyStat `json:"daily"`
}

type CategoryStatsResponse struct {
	Categories []CategoryStat `json:"categories"`
}
