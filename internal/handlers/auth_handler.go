package handlers

import (
	"net/http"

	"go_5_quiz_keep/internal/middleware"
	"go_5_quiz_keep/internal/model"
	"go_5_quiz_keep/internal/service"
	"go_5_quiz_keep/internal/webutil"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

// RequestMagicLink はログインリンクをメールで送信します (認証不要)
func (h *AuthHandler) RequestMagicLink(w http.ResponseWriter, r *http.Request) {
	logger := loggerFrom(r)

	var req model.MagicLinkRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid magic link request", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.RequestMagicLink(r.Context(), req.Email); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	respondSuccess(w, r, http.StatusOK)
}

// Callback はリンクのトークンを検証してアクセストークンを返します (認証不要)
func (h *AuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	logger := loggerFrom(r)

	token := r.URL.Query().Get("token")
	if token == "" {
		logger.Warn("Magic link callback with no token")
		webutil.HandleError(w, logger, model.NewAppError("INVALID_REQUEST", "トークンが必要です", "token", model.ErrInvalidInput))
		return
	}
	// トークンの先頭だけログに残す
	logger = logger.With("token_prefix", token[:min(8, len(token))])

	res, err := h.service.VerifyMagicLink(r.Context(), token)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, res, logger)
}

// CheckAdmin はログイン中のユーザーが管理者かどうかを返します
func (h *AuthHandler) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	logger := loggerFrom(r)

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	isAdmin, err := h.service.IsAdmin(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.CheckAdminResponse{IsAdmin: isAdmin}, logger)
}
