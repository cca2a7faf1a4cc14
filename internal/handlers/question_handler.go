package handlers

import (
	"net/http"

	"go_5_quiz_keep/internal/config"
	"go_5_quiz_keep/internal/middleware"
	"go_5_quiz_keep/internal/model"
	"go_5_quiz_keep/internal/service"
	"go_5_quiz_keep/internal/webutil"
)

type QuestionHandler struct {
	service      service.QuestionService
	defaultCount int
	maxCount     int
}

func NewQuestionHandler(s service.QuestionService, app config.AppConfig) *QuestionHandler {
	h := &QuestionHandler{service: s, defaultCount: app.DefaultCount, maxCount: app.MaxCount}
	if h.defaultCount <= 0 {
		h.defaultCount = config.DefaultQuestionCount
	}
	if h.maxCount <= 0 {
		h.maxCount = config.MaxQuestionCount
	}
	return h
}

// count は出題数。limit も同じ意味で受け付ける
func (h *QuestionHandler) count(r *http.Request) (int, error) {
	return webutil.IntQuery(r, h.defaultCount, 1, h.maxCount, "count", "limit")
}

func (h *QuestionHandler) respondQuestions(w http.ResponseWriter, r *http.Request, questions []*model.Question) {
	webutil.RespondWithJSON(w, http.StatusOK, model.QuestionsResponse{
		Questions: model.NewQuestionResponses(questions),
	}, loggerFrom(r))
}

func (h *QuestionHandler) GetRandom(w http.ResponseWriter, r *http.Request) {
	logger := loggerFrom(r)

	count, err := h.count(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	questions, err := h.service.Random(r.Context(), count)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	h.respondQuestions(w, r, questions)
}

func (h *QuestionHandler) GetByChapter(w http.ResponseWriter, r *http.Request) {
	logger := loggerFrom(r)

	chapter, err := webutil.IntURLParam(r, "chapterId")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	count, err := h.count(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	questions, err := h.service.ByChapter(r.Context(), chapter, count)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	h.respondQuestions(w, r, questions)
}

func (h *QuestionHandler) GetWeak(w http.ResponseWriter, r *http.Request) {
	logger := loggerFrom(r)

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	count, err := h.count(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	questions, err := h.service.Weak(r.Context(), userID, count)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	h.respondQuestions(w, r, questions)
}

func (h *QuestionHandler) GetBookmarked(w http.ResponseWriter, r *http.Request) {
	logger := loggerFrom(r)

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	count, err := h.count(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	questions, err := h.service.Bookmarked(r.Context(), userID, count)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	h.respondQuestions(w, r, questions)
}

func (h *QuestionHandler) GetChapters(w http.ResponseWriter, r *http.Request) {
	logger := loggerFrom(r)

	chapters, err := h.service.Chapters(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	res := model.ChaptersResponse{Chapters: make([]model.ChapterResponse, 0, len(chapters))}
	for _, c := range chapters {
		res.Chapters = append(res.Chapters, model.NewChapterResponse(c))
	}
	webutil.RespondWithJSON(w, http.StatusOK, res, logger)
}
