package handlers

import (
	"net/http"

	"go_5_quiz_keep/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// API はルーティングに必要なハンドラとミドルウェア
type API struct {
	Auth      *AuthHandler
	Questions *QuestionHandler
	Answers   *AnswerHandler
	Bookmarks *BookmarkHandler
	Stats     *StatsHandler
	Admin     *AdminHandler

	// Authenticate は JWT 認証 (auth.enabled=false の場合は X-User-ID)
	Authenticate func(http.Handler) http.Handler
	AdminChecker middleware.AdminChecker
}

// Mount は /api 以下のルートを r に登録します
func (a *API) Mount(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/magic-link", a.Auth.RequestMagicLink)
		r.Get("/auth/callback", a.Auth.Callback)

		r.Group(func(r chi.Router) {
			r.Use(a.Authenticate)

			r.Get("/auth/check-admin", a.Auth.CheckAdmin)

			r.Route("/questions", func(r chi.Router) {
				r.Get("/random", a.Questions.GetRandom)
				r.Get("/category/{chapterId}", a.Questions.GetByChapter)
				r.Get("/weak", a.Questions.GetWeak)
				r.Get("/bookmarks", a.Questions.GetBookmarked)
				r.Get("/chapters", a.Questions.GetChapters)
			})

			r.Post("/answers", a.Answers.PostAnswer)

			r.Route("/bookmarks", func(r chi.Router) {
				r.Get("/", a.Bookmarks.GetBookmarks)
				r.Post("/", a.Bookmarks.PostBookmark)
				r.Delete("/{questionId}", a.Bookmarks.DeleteBookmark)
			})

			r.Route("/stats", func(r chi.Router) {
				r.Get("/today", a.Stats.GetToday)
				r.Get("/daily", a.Stats.GetDaily)
				r.Get("/categories", a.Stats.GetCategories)
			})

			r.With(middleware.RequireAdmin(a.AdminChecker)).
				Post("/admin/questions/upload", a.Admin.UploadQuestions)
		})
	})
}
