package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"go_5_quiz_keep/internal/config"
	"go_5_quiz_keep/internal/handlers"
	"go_5_quiz_keep/internal/middleware"
	"go_5_quiz_keep/internal/model"
	"go_5_quiz_keep/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// testAPI はサービスをすべてモックにしたルーター
type testAPI struct {
	router    chi.Router
	auth      *mocks.AuthService
	questions *mocks.QuestionService
	answers   *mocks.AnswerService
	bookmarks *mocks.BookmarkService
	stats     *mocks.StatsService
	upload    *mocks.UploadService
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	ta := &testAPI{
		auth:      mocks.NewAuthService(t),
		questions: mocks.NewQuestionService(t),
		answers:   mocks.NewAnswerService(t),
		bookmarks: mocks.NewBookmarkService(t),
		stats:     mocks.NewStatsService(t),
		upload:    mocks.NewUploadService(t),
	}

	app := config.AppConfig{DefaultCount: 10, MaxCount: 50, DefaultDays: 7, MaxDays: 30}
	api := &handlers.API{
		Auth:         handlers.NewAuthHandler(ta.auth),
		Questions:    handlers.NewQuestionHandler(ta.questions, app),
		Answers:      handlers.NewAnswerHandler(ta.answers),
		Bookmarks:    handlers.NewBookmarkHandler(ta.bookmarks),
		Stats:        handlers.NewStatsHandler(ta.stats, app),
		Admin:        handlers.NewAdminHandler(ta.upload),
		Authenticate: middleware.DevUserContextMiddleware,
		AdminChecker: ta.auth,
	}
	r := chi.NewRouter()
	api.Mount(r)
	ta.router = r
	return ta
}

// do はリクエストを送ります。userID が nil なら認証ヘッダーを付けない
func (ta *testAPI) do(t *testing.T, method, path string, body interface{}, userID *uuid.UUID) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		buf, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != nil {
		req.Header.Set("X-User-ID", userID.String())
	}
	rr := httptest.NewRecorder()
	ta.router.ServeHTTP(rr, req)
	return rr
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}

func errorBody(t *testing.T, rr *httptest.ResponseRecorder) model.APIErrorResponse {
	t.Helper()
	return decodeJSON[model.APIErrorResponse](t, rr)
}

func ptr[T any](v T) *T { return &v }
