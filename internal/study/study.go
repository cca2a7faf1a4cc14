// Package study は学習CLIの状態 (出題セッション、ブックマーク、回答の送信キュー) を管理します。
// サーバーとのやり取りはこのパッケージのインターフェース越しに行います
package study

import (
	"context"
	"fmt"

	"go_5_quiz_keep/internal/model"
)

// Mode は出題モード
type Mode string

const (
	ModeRandom   Mode = "random"
	ModeCategory Mode = "category"
	ModeWeak     Mode = "weak"
	ModeBookmark Mode = "bookmark"
)

// ParseMode は文字列を Mode に変換します
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeRandom, ModeCategory, ModeWeak, ModeBookmark:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// QuestionSource はモードに応じた問題を取得します
type QuestionSource interface {
	FetchQuestions(ctx context.Context, mode Mode, chapter *int, count int) ([]model.QuestionResponse, error)
}

// AnswerStore は回答履歴の保存先
type AnswerStore interface {
	RecordAnswer(ctx context.Context, questionID int, isCorrect bool) error
}

type BookmarkStore interface {
	ListBookmarks(ctx context.Context) ([]model.BookmarkResponse, error)
	AddBookmark(ctx context.Context, questionID int) error
	RemoveBookmark(ctx context.Context, questionID int) error
}

type StatsSource interface {
	TodayStats(ctx context.Context) (model.Summary, error)
	CategoryStats(ctx context.Context) ([]model.CategoryStat, error)
}

// Answer はセッション中の1回答
type Answer struct {
	QuestionID int
	IsCorrect  bool
}

// AnswerQueue は回答の永続化を受け付けます。Enqueue はブロックしないこと
type AnswerQueue interface {
	Enqueue(a Answer)
}
