package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"go_5_quiz_keep/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleQuestions() []*model.Question {
	return []*model.Question{
		{ID: 1, Chapter: 2, ChapterTitle: "宅建業法", Category: "宅建業法", StatementText: "問1", Answer: model.MarkTrue, Explanation: ptr("解説")},
		{ID: 2, Chapter: 2, ChapterTitle: "宅建業法", Category: "宅建業法", StatementText: "問2", Answer: model.MarkFalse},
	}
}

func TestQuestionHandler_Random(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		path       string
		setupMock  func(ta *testAPI)
		wantStatus int
		wantError  string
	}{
		{
			name: "正常系: count 省略時は10件",
			path: "/api/questions/random",
			setupMock: func(ta *testAPI) {
				ta.questions.On("Random", mock.Anything, 10).Return(sampleQuestions(), nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "正常系: limit は count の別名",
			path: "/api/questions/random?limit=5",
			setupMock: func(ta *testAPI) {
				ta.questions.On("Random", mock.Anything, 5).Return(sampleQuestions(), nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "異常系: count が0",
			path:       "/api/questions/random?count=0",
			setupMock:  func(ta *testAPI) {},
			wantStatus: http.StatusBadRequest,
			wantError:  "countは1から50の整数で指定してください",
		},
		{
			name:       "異常系: count が上限超え",
			path:       "/api/questions/random?count=51",
			setupMock:  func(ta *testAPI) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "異常系: count が整数でない",
			path:       "/api/questions/random?count=ten",
			setupMock:  func(ta *testAPI) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "異常系: 取得に失敗",
			path: "/api/questions/random",
			setupMock: func(ta *testAPI) {
				ta.questions.On("Random", mock.Anything, 10).
					Return(nil, model.NewAppError("QUESTION_FETCH_FAILED", "問題の取得に失敗しました", "", errors.New("db down"))).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  "問題の取得に失敗しました",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestAPI(t)
			tt.setupMock(ta)

			rr := ta.do(t, http.MethodGet, tt.path, nil, &userID)
			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, errorBody(t, rr).Error)
			}
		})
	}
}

func TestQuestionHandler_ResponseShape(t *testing.T) {
	userID := uuid.New()
	ta := newTestAPI(t)
	ta.questions.On("Random", mock.Anything, 10).Return(sampleQuestions(), nil).Once()

	rr := ta.do(t, http.MethodGet, "/api/questions/random", nil, &userID)
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeJSON[map[string][]map[string]interface{}](t, rr)
	require.Len(t, body["questions"], 2)
	q := body["questions"][0]
	assert.Equal(t, "問1", q["statementText"])
	assert.Equal(t, "宅建業法", q["chapterTitle"])
	assert.Equal(t, true, q["correctAnswer"])
	assert.Equal(t, "解説", q["explanation"])
	assert.Nil(t, q["problemNo"])
	assert.Equal(t, false, body["questions"][1]["correctAnswer"])
}

func TestQuestionHandler_Modes(t *testing.T) {
	userID := uuid.New()

	t.Run("正常系: 分野別", func(t *testing.T) {
		ta := newTestAPI(t)
		ta.questions.On("ByChapter", mock.Anything, 3, 20).Return(sampleQuestions(), nil).Once()

		rr := ta.do(t, http.MethodGet, "/api/questions/category/3?count=20", nil, &userID)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("異常系: 分野IDが整数でない", func(t *testing.T) {
		ta := newTestAPI(t)
		rr := ta.do(t, http.MethodGet, "/api/questions/category/abc", nil, &userID)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("正常系: 苦手問題はユーザーごと", func(t *testing.T) {
		ta := newTestAPI(t)
		ta.questions.On("Weak", mock.Anything, userID, 10).Return([]*model.Question{}, nil).Once()

		rr := ta.do(t, http.MethodGet, "/api/questions/weak", nil, &userID)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"questions":[]}`, rr.Body.String())
	})

	t.Run("正常系: ブックマークした問題", func(t *testing.T) {
		ta := newTestAPI(t)
		ta.questions.On("Bookmarked", mock.Anything, userID, 7).Return(sampleQuestions()[:1], nil).Once()

		rr := ta.do(t, http.MethodGet, "/api/questions/bookmarks?count=7", nil, &userID)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("正常系: 分野一覧", func(t *testing.T) {
		ta := newTestAPI(t)
		ta.questions.On("Chapters", mock.Anything).Return([]model.ChapterSummary{
			{Chapter: 1, ChapterTitle: "民法", QuestionCount: 12},
			{Chapter: 2, ChapterTitle: "宅建業法", QuestionCount: 8},
		}, nil).Once()

		rr := ta.do(t, http.MethodGet, "/api/questions/chapters", nil, &userID)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"chapters":[
			{"chapter":1,"chapterTitle":"民法","questionCount":12},
			{"chapter":2,"chapterTitle":"宅建業法","questionCount":8}
		]}`, rr.Body.String())
	})

	t.Run("異常系: 未認証", func(t *testing.T) {
		ta := newTestAPI(t)
		rr := ta.do(t, http.MethodGet, "/api/questions/weak", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "認証が必要です", errorBody(t, rr).Error)
	})
}
