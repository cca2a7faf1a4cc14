package handlers

import (
	"net/http"

	"go_5_quiz_keep/internal/middleware"
	"go_5_quiz_keep/internal/model"
	"go_5_quiz_keep/internal/service"
	"go_5_quiz_keep/internal/webutil"
)

type AnswerHandler struct {
	service service.AnswerService
}

func NewAnswerHandler(s service.AnswerService) *AnswerHandler {
	return &AnswerHandler{service: s}
}

// PostAnswer は回答を1件記録します
func (h *AnswerHandler) PostAnswer(w http.ResponseWriter, r *http.Request) {
	logger := loggerFrom(r)

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.RecordAnswerRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid answer request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.Record(r.Context(), userID, req.QuestionID, *req.IsCorrect); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	respondSuccess(w, r, http.StatusOK)
}
