package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go_5_quiz_keep/internal/model"
	"go_5_quiz_keep/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_statsService(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	jst := time.FixedZone("JST", 9*60*60)
	// JST 2024-05-10 12:00
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, jst)

	facts := []model.AnswerFact{
		{QuestionID: 1, Chapter: 2, ChapterTitle: "宅建業法", IsCorrect: true, AnsweredAt: now.Add(-time.Hour)},
		{QuestionID: 2, Chapter: 1, ChapterTitle: "民法", IsCorrect: false, AnsweredAt: now.Add(-2 * time.Hour)},
		{QuestionID: 3, Chapter: 1, ChapterTitle: "民法", IsCorrect: true, AnsweredAt: now.AddDate(0, 0, -2)},
	}

	newService := func(answerRepo *mocks.AnswerRepository) *statsService {
		s := NewStatsService(setupTestDB(), answerRepo, testConfig()).(*statsService)
		s.loc = jst
		s.now = func() time.Time { return now }
		return s
	}

	t.Run("正常系: 今日の集計は今日の0時以降を取得", func(t *testing.T) {
		answerRepo := mocks.NewAnswerRepository(t)
		wantSince := time.Date(2024, 5, 10, 0, 0, 0, 0, jst)
		answerRepo.On("FindFactsByUser", ctx, anyDB, userID, mock.MatchedBy(func(since *time.Time) bool {
			return since != nil && since.Equal(wantSince)
		})).Return(facts[:2], nil).Once()

		summary, err := newService(answerRepo).Today(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, model.Summary{TotalAnswers: 2, CorrectCount: 1, Accuracy: 50}, summary)
	})

	t.Run("正常系: 日別は回答のある日のみ昇順", func(t *testing.T) {
		answerRepo := mocks.NewAnswerRepository(t)
		wantSince := time.Date(2024, 5, 3, 0, 0, 0, 0, jst)
		answerRepo.On("FindFactsByUser", ctx, anyDB, userID, mock.MatchedBy(func(since *time.Time) bool {
			return since != nil && since.Equal(wantSince)
		})).Return(facts, nil).Once()

		daily, err := newService(answerRepo).Daily(ctx, userID, 7)
		require.NoError(t, err)
		require.Len(t, daily, 2)
		assert.Equal(t, "2024-05-08", daily[0].Date)
		assert.Equal(t, 1, daily[0].TotalAnswers)
		assert.Equal(t, "2024-05-10", daily[1].Date)
		assert.Equal(t, 50.0, daily[1].Accuracy)
	})

	t.Run("正常系: 分野別は全期間", func(t *testing.T) {
		answerRepo := mocks.NewAnswerRepository(t)
		answerRepo.On("FindFactsByUser", ctx, anyDB, userID, nilTime).Return(facts, nil).Once()

		cats, err := newService(answerRepo).Categories(ctx, userID)
		require.NoError(t, err)
		require.Len(t, cats, 2)
		assert.Equal(t, 1, cats[0].Chapter)
		assert.Equal(t, "民法", cats[0].ChapterTitle)
		assert.Equal(t, 2, cats[0].TotalAnswers)
		assert.Equal(t, 50.0, cats[0].Accuracy)
		assert.Equal(t, 100.0, cats[1].Accuracy)
	})

	t.Run("異常系: 取得失敗", func(t *testing.T) {
		answerRepo := mocks.NewAnswerRepository(t)
		answerRepo.On("FindFactsByUser", ctx, anyDB, userID, nilTime).Return(nil, errors.New("db down")).Once()

		_, err := newService(answerRepo).Categories(ctx, userID)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "統計の取得に失敗しました", appErr.Detail.Message)
	})
}
