// internal/model/question.go
package model

import (
	"time"
)

// Mark は○×形式の正解です
type Mark string

const (
	MarkTrue  Mark = "○"
	MarkFalse Mark = "×"
)

// Bool は ○ を true として扱います
func (m Mark) Bool() bool {
	return m == MarkTrue
}

// MarkOf は bool を ○/× に変換します
func MarkOf(b bool) Mark {
	if b {
		return MarkTrue
	}
	return MarkFalse
}

// Question は○×問題の1文です
type Question struct {
	ID            int     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Chapter       int     `gorm:"not null;index" json:"chapter"`
	ChapterTitle  string  `gorm:"not null" json:"chapter_title"`
	Category      string  `gorm:"not null" json:"category"`
	ProblemNo     *int    `json:"problem_no"`
	ProblemPrompt *string `json:"problem_prompt"`
	StatementNo   *int    `json:"statement_no"`
	StatementText string  `gorm:"not null" json:"statement_text"`
	Answer        Mark    `gorm:"type:varchar(4);not null;default:'○'" json:"answer"`
	Explanation   *string `json:"explanation"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Question) TableName() string {
	return "questions"
}

// ChapterSummary は分野ごとの問題数です
type ChapterSummary struct {
	Chapter       int
	ChapterTitle  string
	QuestionCount int64
}

// QuestionResponse はAPIで返す問題 (camelCase)
type QuestionResponse struct {
	ID            int       `json:"id"`
	Chapter       int       `json:"chapter"`
	ChapterTitle  string    `json:"chapterTitle"`
	Category      string    `json:"category"`
	ProblemNo     *int      `json:"problemNo"`
	ProblemPrompt *string   `json:"problemPrompt"`
	StatementNo   *int      `json:"statementNo"`
	StatementText string    `json:"statementText"`
	Answer        Mark      `json:"answer"`
	CorrectAnswer bool      `json:"correctAnswer"`
	Explanation   *string   `json:"explanation"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func NewQuestionResponse(q *Question) QuestionResponse {
	return QuestionResponse{
		ID:            q.ID,
		Chapter:       q.Chapter,
		ChapterTitle:  q.ChapterTitle,
		Category:      q.Category,
		ProblemNo:     q.ProblemNo,
		ProblemPrompt: q.ProblemPrompt,
		StatementNo:   q.StatementNo,
		StatementText: q.StatementText,
		Answer:        q.Answer,
		CorrectAnswer: q.Answer.Bool(),
		Explanation:   q.Explanation,
		CreatedAt:     q.CreatedAt,
		UpdatedAt:     q.UpdatedAt,
	}
}

func NewQuestionResponses(qs []*Question) []QuestionResponse {
	res := make([]QuestionResponse, 0, len(qs))
	for _, q := range qs {
		res = append(res, NewQuestionResponse(q))
	}
	return res
}

type QuestionsResponse struct {
	Questions []QuestionResponse `json:"questions"`
}

type ChapterResponse struct {
	Chapter       int    `json:"chapter"`
	ChapterTitle  string `json:"chapterTitle"`
	QuestionCount int64  `json:"questionCount"`
}

func NewChapterResponse(c ChapterSummary) ChapterResponse {
	return ChapterResponse{Chapter: c.Chapter, ChapterTitle: c.ChapterTitle, QuestionCount: c.QuestionCount}
}

type ChaptersResponse struct {
	Chapters []ChapterResponse `json:"chapters"`
}

// UploadQuestionsRequest は管理者のCSVアップロード
type UploadQuestionsRequest struct {
	CSV string `json:"csv"`
}

// UploadQuestionsResponse の errors は行単位のエラー
type UploadQuestionsResponse struct {
	Success       bool        `json:"success"`
	InsertedCount int         `json:"insertedCount"`
	Errors        interface{} `json:"errors"`
}
