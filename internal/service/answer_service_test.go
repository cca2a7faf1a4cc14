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

func Test_answerService_Record(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	fixedNow := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(questionRepo *mocks.QuestionRepository, answerRepo *mocks.AnswerRepository)
		wantErr   error
		wantCode  string
	}{
		{
			name: "正常系: 回答を記録",
			setupMock: func(questionRepo *mocks.QuestionRepository, answerRepo *mocks.AnswerRepository) {
				questionRepo.On("Exists", ctx, anyDB, 7).Return(true, nil).Once()
				answerRepo.On("Create", ctx, anyDB, &model.AnswerHistory{
					UserID: userID, QuestionID: 7, IsCorrect: true, AnsweredAt: fixedNow,
				}).Return(nil).Once()
			},
		},
		{
			name: "異常系: 存在しない問題",
			setupMock: func(questionRepo *mocks.QuestionRepository, answerRepo *mocks.AnswerRepository) {
				questionRepo.On("Exists", ctx, anyDB, 7).Return(false, nil).Once()
			},
			wantErr:  model.ErrNotFound,
			wantCode: "QUESTION_NOT_FOUND",
		},
		{
			name: "異常系: 保存に失敗",
			setupMock: func(questionRepo *mocks.QuestionRepository, answerRepo *mocks.AnswerRepository) {
				questionRepo.On("Exists", ctx, anyDB, 7).Return(true, nil).Once()
				answerRepo.On("Create", ctx, anyDB, mock.Anything).Return(errors.New("db down")).Once()
			},
			wantCode: "ANSWER_RECORD_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questionRepo := mocks.NewQuestionRepository(t)
			answerRepo := mocks.NewAnswerRepository(t)
			tt.setupMock(questionRepo, answerRepo)

			s := NewAnswerService(setupTestDB(), questionRepo, answerRepo).(*answerService)
			s.now = func() time.Time { return fixedNow }

			err := s.Record(ctx, userID, 7, true)
			if tt.wantCode == "" {
				require.NoError(t, err)
				return
			}
			var appErr *model.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantCode, appErr.Detail.Code)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
