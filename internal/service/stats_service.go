//go:generate mockery --name StatsService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"time"

	"go_5_quiz_keep/internal/config"
	"go_5_quiz_keep/internal/model"
	"go_5_quiz_keep/internal/quiz"
	"go_5_quiz_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatsService は回答履歴を集計します。日付の区切りは app.timezone
type StatsService interface {
	Today(ctx context.Context, userID uuid.UUID) (model.Summary, error)
	Daily(ctx context.Context, userID uuid.UUID, days int) ([]model.DailyStat, error)
	Categories(ctx context.Context, userID uuid.UUID) ([]model.CategoryStat, error)
}

type statsService struct {
	db         *gorm.DB
	answerRepo repository.AnswerRepository
	loc        *time.Location
	now        func() time.Time
}

func NewStatsService(db *gorm.DB, answerRepo repository.AnswerRepository, cfg *config.Config) StatsService {
	return &statsService{
		db:         db,
		answerRepo: answerRepo,
		loc:        cfg.App.Location(),
		now:        time.Now,
	}
}

func errFetchStats(err error) error {
	return model.NewAppError("STATS_FETCH_FAILED", "統計の取得に失敗しました", "", err)
}

func (s *statsService) Today(ctx context.Context, userID uuid.UUID) (model.Summary, error) {
	now := s.now()
	since := quiz.StartOfDay(now, s.loc)
	facts, err := s.answerRepo.FindFactsByUser(ctx, s.db, userID, &since)
	if err != nil {
		return model.Summary{}, errFetchStats(err)
	}
	return quiz.TodaySummary(facts, now, s.loc), nil
}

func (s *statsService) Daily(ctx context.Context, userID uuid.UUID, days int) ([]model.DailyStat, error) {
	now := s.now()
	since := quiz.WindowStart(now, days, s.loc)
	facts, err := s.answerRepo.FindFactsByUser(ctx, s.db, userID, &since)
	if err != nil {
		return nil, errFetchStats(err)
	}
	return quiz.DailyRollup(facts, now, days, s.loc), nil
}

func (s *statsService) Categories(ctx context.Context, userID uuid.UUID) ([]model.CategoryStat, error) {
	facts, err := s.answerRepo.FindFactsByUser(ctx, s.db, userID, nil)
	if err != nil {
		return nil, errFetchStats(err)
	}
	return quiz.CategoryRollup(facts), nil
}
