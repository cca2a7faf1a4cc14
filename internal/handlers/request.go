package handlers

import (
	"log/slog"
	"net/http"

	"go_5_quiz_keep/internal/middleware"
	"go_5_quiz_keep/internal/webutil"
)

func loggerFrom(r *http.Request) *slog.Logger {
	return middleware.GetLogger(r.Context())
}

// decodeAndValidate はボディのデコードとバリデーションをまとめて行います
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if err := webutil.DecodeJSONBody(w, r, dst); err != nil {
		return err
	}
	return webutil.ValidateStruct(dst)
}

func respondSuccess(w http.ResponseWriter, r *http.Request, status int) {
	webutil.RespondWithJSON(w, status, map[string]bool{"success": true}, loggerFrom(r))
}
