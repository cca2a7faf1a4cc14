// internal/model/answer.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// AnswerHistory は回答履歴 (追記のみ)
type AnswerHistory struct {
	ID         int64     `gorm:"primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	QuestionID int       `gorm:"not null;index"`
	IsCorrect  bool      `gorm:"not null"`
	AnsweredAt time.Time `gorm:"not null;index"`
}

func (AnswerHistory) TableName() string {
	return "answer_history"
}

// AnswerFact は集計用に問題の分野を結合した回答履歴
type AnswerFact struct {
	QuestionID   int
	Chapter      int
	ChapterTitle string
	IsCorrect    bool
	AnsweredAt   time.Time
}

type RecordAnswerRequest struct {
	QuestionID int   `json:"questionId" validate:"required,gt=0"`
	IsCorrect  *bool `json:"isCorrect" validate:"required"`
}

// SuccessResponse は {success: true} の形のレスポンス
type SuccessResponse struct {
	Success bool `json:"success"`
}
