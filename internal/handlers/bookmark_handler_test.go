package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"go_5_quiz_keep/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBookmarkHandler(t *testing.T) {
	userID := uuid.New()

	t.Run("正常系: 一覧", func(t *testing.T) {
		ta := newTestAPI(t)
		createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		ta.bookmarks.On("List", mock.Anything, userID).Return([]*model.Bookmark{
			{ID: 3, UserID: userID, QuestionID: 42, CreatedAt: createdAt},
		}, nil).Once()

		rr := ta.do(t, http.MethodGet, "/api/bookmarks", nil, &userID)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"bookmarks":[{"id":3,"questionId":42,"createdAt":"2024-05-01T10:00:00Z"}]}`, rr.Body.String())
	})

	t.Run("正常系: 空の一覧は空配列", func(t *testing.T) {
		ta := newTestAPI(t)
		ta.bookmarks.On("List", mock.Anything, userID).Return([]*model.Bookmark{}, nil).Once()

		rr := ta.do(t, http.MethodGet, "/api/bookmarks", nil, &userID)
		assert.JSONEq(t, `{"bookmarks":[]}`, rr.Body.String())
	})

	t.Run("正常系: 追加", func(t *testing.T) {
		ta := newTestAPI(t)
		ta.bookmarks.On("Add", mock.Anything, userID, 42).Return(nil).Once()

		rr := ta.do(t, http.MethodPost, "/api/bookmarks", map[string]int{"questionId": 42}, &userID)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"success":true}`, rr.Body.String())
	})

	t.Run("異常系: 追加で questionId がない", func(t *testing.T) {
		ta := newTestAPI(t)
		rr := ta.do(t, http.MethodPost, "/api/bookmarks", map[string]int{}, &userID)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("正常系: 削除", func(t *testing.T) {
		ta := newTestAPI(t)
		ta.bookmarks.On("Remove", mock.Anything, userID, 42).Return(nil).Once()

		rr := ta.do(t, http.MethodDelete, "/api/bookmarks/42", nil, &userID)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("異常系: 削除で questionId が整数でない", func(t *testing.T) {
		ta := newTestAPI(t)
		rr := ta.do(t, http.MethodDelete, "/api/bookmarks/abc", nil, &userID)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
