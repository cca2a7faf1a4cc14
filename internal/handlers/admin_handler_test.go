package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go_5_quiz_keep/internal/csvparser"
	"go_5_quiz_keep/internal/handlers"
	"go_5_quiz_keep/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdminHandler_UploadQuestions(t *testing.T) {
	userID := uuid.New()
	path := "/api/admin/questions/upload"

	t.Run("正常系: 管理者はアップロードできる", func(t *testing.T) {
		ta := newTestAPI(t)
		ta.auth.On("IsAdmin", mock.Anything, userID).Return(true, nil).Once()
		ta.upload.On("UploadCSV", mock.Anything, "1,民法,問題,1").Return(&model.UploadQuestionsResponse{
			Success:       true,
			InsertedCount: 1,
			Errors:        []csvparser.RowError{},
		}, nil).Once()

		rr := ta.do(t, http.MethodPost, path, map[string]string{"csv": "1,民法,問題,1"}, &userID)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"success":true,"insertedCount":1,"errors":[]}`, rr.Body.String())
	})

	t.Run("異常系: 管理者でない", func(t *testing.T) {
		ta := newTestAPI(t)
		ta.auth.On("IsAdmin", mock.Anything, userID).Return(false, nil).Once()

		rr := ta.do(t, http.MethodPost, path, map[string]string{"csv": "1,民法,問題,1"}, &userID)
		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Equal(t, "管理者権限が必要です", errorBody(t, rr).Error)
	})

	t.Run("異常系: パースできる行がない場合は details に行エラー", func(t *testing.T) {
		ta := newTestAPI(t)
		ta.auth.On("IsAdmin", mock.Anything, userID).Return(true, nil).Once()
		rowErrors := []csvparser.RowError{{Row: 1, Message: "列数が不足しています（必要: 4以上, 実際: 2）"}}
		ta.upload.On("UploadCSV", mock.Anything, "1,民法").
			Return(nil, model.NewAppError("CSV_PARSE_FAILED", "CSVのパースに失敗しました", "csv", model.ErrInvalidInput).WithDetails(rowErrors)).Once()

		rr := ta.do(t, http.MethodPost, path, map[string]string{"csv": "1,民法"}, &userID)
		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{
			"error":"CSVのパースに失敗しました",
			"code":"CSV_PARSE_FAILED",
			"details":[{"row":1,"message":"列数が不足しています（必要: 4以上, 実際: 2）"}]
		}`, rr.Body.String())
	})
}

type stubPinger struct{ err error }

func (s stubPinger) PingContext(ctx context.Context) error { return s.err }

func TestHealth(t *testing.T) {
	rr := httptest.NewRecorder()
	handlers.Health(stubPinger{})(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK", rr.Body.String())

	rr = httptest.NewRecorder()
	handlers.Health(stubPinger{err: errors.New("down")})(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
