//go:generate mockery --name AnswerService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"time"

	"go_5_quiz_keep/internal/middleware"
	"go_5_quiz_keep/internal/model"
	"go_5_quiz_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnswerService interface {
	Record(ctx context.Context, userID uuid.UUID, questionID int, isCorrect bool) error
}

type answerService struct {
	db           *gorm.DB
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
	now          func() time.Time
}

func NewAnswerService(db *gorm.DB, questionRepo repository.QuestionRepository, answerRepo repository.AnswerRepository) AnswerService {
	return &answerService{
		db:           db,
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		now:          time.Now,
	}
}

// Record は回答を1件追記します。存在しない問題への回答は NotFound
func (s *answerService) Record(ctx context.Context, userID uuid.UUID, questionID int, isCorrect bool) error {
	logger := middleware.GetLogger(ctx)

	exists, err := s.questionRepo.Exists(ctx, s.db, questionID)
	if err != nil {
		return model.NewAppError("ANSWER_RECORD_FAILED", "回答の記録に失敗しました", "", err)
	}
	if !exists {
		logger.Warn("Answer for unknown question", "question_id", questionID)
		return model.NewAppError("QUESTION_NOT_FOUND", "問題が見つかりません", "questionId", model.ErrNotFound)
	}

	answer := &model.AnswerHistory{
		UserID:     userID,
		QuestionID: questionID,
		IsCorrect:  isCorrect,
		AnsweredAt: s.now(),
	}
	if err := s.answerRepo.Create(ctx, s.db, answer); err != nil {
		return model.NewAppError("ANSWER_RECORD_FAILED", "回答の記録に失敗しました", "", err)
	}

	logger.Debug("Answer recorded", "question_id", questionID, "is_correct", isCorrect)
	return nil
}
