package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/krazyminecraft/stats-api/internal/logic"
	"github.com/krazyminecraft/stats-api/internal/models"
)

// GetPlayers returns the player directory
// @Summary Player Directory
// @Tags Players
// @Produce json
// @Success 200 {array} models.PlayerIdentity
// @Router /players [get]
func (h *Handler) GetPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := h.stats.Players(r.Context())
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	if players == nil {
		players = []models.PlayerIdentity{}
	}
	h.jsonResponse(w, http.StatusOK, players)
}

// GetPlayer returns one player's aggregate
// @Summary Player Stats
// @Tags Players
// @Produce json
// @Param name path string true "Display name or uuid"
// @Success 200 {object} models.PlayerDetailResponse
// @Failure 404 {object} map[string]string
// @Router /players/{name} [get]
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	resp, err := h.stats.PlayerDetail(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, resp)
}

// GetPlayerCategory lists every counter of one category
// @Summary Player Category Listing
// @Tags Players
// @Produce json
// @Param name path string true "Display name or uuid"
// @Param category query string false "custom, crafted, dropped, killed, killed_by, mined, picked_up, used, broken" default(custom)
// @Param q query string false "Search on the humanised label"
// @Param sort query string false "high or low" default(high)
// @Success 200 {object} models.CategoryListing
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /players/{name}/stats [get]
func (h *Handler) GetPlayerCategory(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	q := models.CategoryQuery{
		Category: strings.ToLower(query.Get("category")),
		Search:   query.Get("q"),
		Sort:     strings.ToLower(query.Get("sort")),
	}
	if q.Category == "" {
		q.Category = "custom"
	}
	if q.Sort == "" {
		q.Sort = "high"
	}
	if err := h.validator.Struct(q); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid query: "+err.Error())
		return
	}

	resp, err := h.stats.PlayerCategory(r.Context(), chi.URLParam(r, "name"), q)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, resp)
}

// GetPlayerSummary returns the data of the shareable summary card
// @Summary Player Summary
// @Tags Players
// @Produce json
// @Param name path string true "Display name or uuid"
// @Success 200 {object} models.PlayerSummary
// @Failure 404 {object} map[string]string
// @Router /players/{name}/summary [get]
func (h *Handler) GetPlayerSummary(w http.ResponseWriter, r *http.Request) {
	resp, err := h.stats.PlayerSummary(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, resp)
}

// GetPlayerSummaryImage renders the summary card as a PNG download
// @Summary Player Summary Card
// @Tags Players
// @Produce png
// @Param name path string true "Display name or uuid"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string
// @Router /players/{name}/summary.png [get]
func (h *Handler) GetPlayerSummaryImage(w http.ResponseWriter, r *http.Request) {
	summary, err := h.stats.PlayerSummary(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		h.serviceError(w, r, err)
		return
	}

	png, err := logic.RenderSummaryCard(*summary, logic.DefaultCardPalette)
	if err != nil {
		h.serviceError(w, r, fmt.Errorf("render summary card: %w", err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", summaryFilename(summary.Player)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		h.logger.Warnw("Failed to write summary card", "player_id", summary.Player.ID, "error", err)
	}
}

func summaryFilename(p models.PlayerIdentity) string {
	name := p.DisplayName
	if name == "" {
		name = p.ID
	}
	return name + "_summary.png"
}
