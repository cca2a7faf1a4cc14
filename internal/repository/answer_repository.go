//go:generate mockery --name AnswerRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"
	"time"

	"go_5_quiz_keep/internal/middleware"
	"go_5_quiz_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	Create(ctx context.Context, db *gorm.DB, answer *model.AnswerHistory) error
	// FindFactsByUser は回答履歴を問題の分野と結合して新しい順に返します。since が nil なら全期間
	FindFactsByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, since *time.Time) ([]model.AnswerFact, error)
}

type gormAnswerRepository struct{}

func NewGormAnswerRepository() AnswerRepository {
	return &gormAnswerRepository{}
}

func (r *gormAnswerRepository) Create(ctx context.Context, db *gorm.DB, answer *model.AnswerHistory) error {
	logger := middleware.GetLogger(ctx)
	if err := db.WithContext(ctx).Create(answer).Error; err != nil {
		logger.Error("Error creating answer history in DB",
			"error", err,
			"user_id", answer.UserID.String(),
			"question_id", answer.QuestionID,
		)
		return fmt.Errorf("gormAnswerRepository.Create: %w", err)
	}
	return nil
}

func (r *gormAnswerRepository) FindFactsByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, since *time.Time) ([]model.AnswerFact, error) {
	logger := middleware.GetLogger(ctx)
	facts := []model.AnswerFact{}

	query := db.WithContext(ctx).
		Table("answer_history").
		Select("answer_history.question_id, questions.chapter, questions.chapter_title, answer_history.is_correct, answer_history.answered_at").
		Joins("JOIN questions ON questions.id = answer_history.question_id").
		Where("answer_history.user_id = ?", userID)
	if since != nil {
		query = query.Where("answer_history.answered_at >= ?", *since)
	}

	if err := query.Order("answer_history.answered_at DESC").Scan(&facts).Error; err != nil {
		logger.Error("Error finding answer facts in DB", "error", err, "user_id", userID.String())
		return nil, fmt.Errorf("gormAnswerRepository.FindFactsByUser: %w", err)
	}
	return facts, nil
}
