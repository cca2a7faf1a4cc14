package handlers

import (
	"net/http"

	"go_5_quiz_keep/internal/model"
	"go_5_quiz_keep/internal/service"
	"go_5_quiz_keep/internal/webutil"
)

type AdminHandler struct {
	service service.UploadService
}

func NewAdminHandler(s service.UploadService) *AdminHandler {
	return &AdminHandler{service: s}
}

// UploadQuestions は管理者のCSVアップロード。RequireAdmin の後に置くこと
func (h *AdminHandler) UploadQuestions(w http.ResponseWriter, r *http.Request) {
	logger := loggerFrom(r)

	var req model.UploadQuestionsRequest
	if err := webutil.DecodeJSONBody(w, r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	res, err := h.service.UploadCSV(r.Context(), req.CSV)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Admin CSV upload completed", "inserted_count", res.InsertedCount)
	webutil.RespondWithJSON(w, http.StatusOK, res, logger)
}
