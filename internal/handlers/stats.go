package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/krazyminecraft/stats-api/internal/logic"
	"github.com/krazyminecraft/stats-api/internal/models"
)

// GetServerStats returns the server-wide totals
// @Summary Server Totals
// @Description Sums every player's statistics; players without a stat document are listed in totals.missing
// @Tags Stats
// @Produce json
// @Success 200 {object} models.ServerStatsResponse
// @Failure 500 {object} map[string]string
// @Router /stats/server [get]
func (h *Handler) GetServerStats(w http.ResponseWriter, r *http.Request) {
	resp, err := h.stats.ServerStats(r.Context())
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, resp)
}

// GetLeaderboards lists the available leaderboard metrics
// @Summary Leaderboard Metrics
// @Tags Leaderboards
// @Produce json
// @Success 200 {array} models.MetricInfo
// @Router /stats/leaderboard [get]
func (h *Handler) GetLeaderboards(w http.ResponseWriter, r *http.Request) {
	out := make([]models.MetricInfo, 0, len(models.Metrics))
	for _, m := range models.Metrics {
		out = append(out, models.MetricInfo{Metric: m, Title: m.Title()})
	}
	h.jsonResponse(w, http.StatusOK, out)
}

// GetLeaderboard returns the top players for one metric
// @Summary Leaderboard
// @Tags Leaderboards
// @Produce json
// @Param metric path string true "Metric slug or title (e.g. played_time, mobs_killed)"
// @Param limit query int false "Limit" default(10)
// @Success 200 {object} models.LeaderboardResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /stats/leaderboard/{metric} [get]
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	metric, err := logic.ParseMetric(chi.URLParam(r, "metric"))
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	q := models.LeaderboardQuery{Limit: h.leaderboardSize}
	if l := r.URL.Query().Get("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil {
			h.errorResponse(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		q.Limit = parsed
	}
	if err := h.validator.Struct(q); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "limit must be between 1 and 100")
		return
	}

	resp, err := h.stats.Leaderboard(r.Context(), metric, q.Limit)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, resp)
}
