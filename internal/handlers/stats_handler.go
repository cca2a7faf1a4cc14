package handlers

import (
	"net/http"

	"go_5_quiz_keep/internal/config"
	"go_5_quiz_keep/internal/middleware"
	"go_5_quiz_keep/internal/model"
	"go_5_quiz_keep/internal/service"
	"go_5_quiz_keep/internal/webutil"
)

type StatsHandler struct {
	service     service.StatsService
	defaultDays int
	maxDays     int
}

func NewStatsHandler(s service.StatsService, app config.AppConfig) *StatsHandler {
	h := &StatsHandler{service: s, defaultDays: app.DefaultDays, maxDays: app.MaxDays}
	if h.defaultDays <= 0 {
		h.defaultDays = config.DefaultStatsDays
	}
	if h.maxDays <= 0 {
		h.maxDays = config.MaxStatsDays
	}
	return h
}

func (h *StatsHandler) GetToday(w http.ResponseWriter, r *http.Request) {
	logger := loggerFrom(r)

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	summary, err := h.service.Today(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, summary, logger)
}

// GetDaily は直近 days 日の日別集計を返します。回答のない日は含まない
func (h *StatsHandler) GetDaily(w http.ResponseWriter, r *http.Request) {
	logger := loggerFrom(r)

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	days, err := webutil.IntQuery(r, h.defaultDays, 1, h.maxDays, "days")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	daily, err := h.service.Daily(r.Context(), userID, days)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.DailyStatsResponse{Daily: daily}, logger)
}

func (h *StatsHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	logger := loggerFrom(r)

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	categories, err := h.service.Categories(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.CategoryStatsResponse{Categories: categories}, logger)
}
