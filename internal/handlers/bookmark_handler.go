package handlers

import (
	"net/http"

	"go_5_quiz_keep/internal/middleware"
	"go_5_quiz_keep/internal/model"
	"go_5_quiz_keep/internal/service"
	"go_5_quiz_keep/internal/webutil"
)

type BookmarkHandler struct {
	service service.BookmarkService
}

func NewBookmarkHandler(s service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{service: s}
}

func (h *BookmarkHandler) GetBookmarks(w http.ResponseWriter, r *http.Request) {
	logger := loggerFrom(r)

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	bookmarks, err := h.service.List(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	res := model.BookmarksResponse{Bookmarks: make([]model.BookmarkResponse, 0, len(bookmarks))}
	for _, b := range bookmarks {
		res.Bookmarks = append(res.Bookmarks, model.NewBookmarkResponse(b))
	}
	webutil.RespondWithJSON(w, http.StatusOK, res, logger)
}

// PostBookmark は登録済みでも成功を返します
func (h *BookmarkHandler) PostBookmark(w http.ResponseWriter, r *http.Request) {
	logger := loggerFrom(r)

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.AddBookmarkRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.Add(r.Context(), userID, req.QuestionID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	respondSuccess(w, r, http.StatusOK)
}

func (h *BookmarkHandler) DeleteBookmark(w http.ResponseWriter, r *http.Request) {
	logger := loggerFrom(r)

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	questionID, err := webutil.IntURLParam(r, "questionId")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.Remove(r.Context(), userID, questionID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	respondSuccess(w, r, http.StatusOK)
}
