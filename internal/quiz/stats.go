// Package quiz は回答履歴からの集計と出題順のランダム化を扱います。DBには依存しません。
package quiz

import (
	"math"
	"sort"
	"time"

	"go_5_quiz_keep/internal/model"
)

const dateLayout = "2006-01-02"

// Accuracy は正答率(%)を小数第1位で四捨五入して返します。total が0以下なら0
func Accuracy(correct, total int) float64 {
	if total <= 0 {
		return 0
	}
	acc := float64(correct) / float64(total) * 100
	return math.Floor(acc*10+0.5) / 10
}

// NewSummary は正答数・回答数から Summary を組み立てます
func NewSummary(correct, total int) model.Summary {
	return model.Summary{TotalAnswers: total, CorrectCount: correct, Accuracy: Accuracy(correct, total)}
}

// StartOfDay は loc における t の日付の0時
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// WindowStart は直近 days 日の集計開始時刻 (今日の0時から days 日前)
func WindowStart(now time.Time, days int, loc *time.Location) time.Time {
	return StartOfDay(now, loc).AddDate(0, 0, -days)
}

// DailyRollup は [今日-days, now] の回答を日付ごとに集計します。
// 回答のない日は含めません。日付の昇順
func DailyRollup(facts []model.AnswerFact, now time.Time, days int, loc *time.Location) []model.DailyStat {
	from := WindowStart(now, days, loc)

	type counter struct{ total, correct int }
	byDate := make(map[string]*counter)
	for _, f := range facts {
		if f.AnsweredAt.Before(from) || f.AnsweredAt.After(now) {
			continue
		}
		key := f.AnsweredAt.In(loc).Format(dateLayout)
		c, ok := byDate[key]
		if !ok {
			c = &counter{}
			byDate[key] = c
		}
		c.total++
		if f.IsCorrect {
			c.correct++
		}
	}

	stats := make([]model.DailyStat, 0, len(byDate))
	for date, c := range byDate {
		stats = append(stats, model.DailyStat{Date: date, Summary: NewSummary(c.correct, c.total)})
	}
	// "2006-01-02" は文字列順 = 日付順
	sort.Slice(stats, func(i, j int) bool { return stats[i].Date < stats[j].Date })
	return stats
}

// CategoryRollup は分野ごとに集計します。分野IDの昇順
func CategoryRollup(facts []model.AnswerFact) []model.CategoryStat {
	type counter struct {
		title          string
		total, correct int
	}
	byChapter := make(map[int]*counter)
	for _, f := range facts {
		c, ok := byChapter[f.Chapter]
		if !ok {
			c = &counter{title: f.ChapterTitle}
			byChapter[f.Chapter] = c
		}
		c.total++
		if f.IsCorrect {
			c.correct++
		}
	}

	stats := make([]model.CategoryStat, 0, len(byChapter))
	for chapter, c := range byChapter {
		stats = append(stats, model.CategoryStat{
			Chapter:      chapter,
			ChapterTitle: c.title,
			Summary:      NewSummary(c.correct, c.total),
		})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Chapter < stats[j].Chapter })
	return stats
}

// TodaySummary は loc における今日の回答を集計します
func TodaySummary(facts []model.AnswerFact, now time.Time, loc *time.Location) model.Summary {
	from := StartOfDay(now, loc)
	to := from.AddDate(0, 0, 1)
	var total, correct int
	for _, f := range facts {
		if f.AnsweredAt.Before(from) || !f.AnsweredAt.Before(to) {
			continue
		}
		total++
		if f.IsCorrect {
			correct++
		}
	}
	return NewSummary(correct, total)
}
