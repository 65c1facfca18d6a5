package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// GetLeaderboard ranks stored players by a chosen stat
// @Summary Get Leaderboard
// @Description Players ranked by strength score or a specific stat
// @Tags Leaderboard
// @Produce json
// @Param stat path string false "Stat to rank by" Enums(strength, win_rate, offense, defense, adaptation, execution, footsies)
// @Param limit query int false "Page size (max 100)"
// @Param page query int false "Page number"
// @Success 200 {object} models.Leaderboard
// @Router /leaderboard/{stat} [get]
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	stat := chi.URLParam(r, "stat")
	if stat == "" {
		stat = r.URL.Query().Get("stat")
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))

	board, err := h.leaderboard.GetLeaderboard(r.Context(), stat, limit, page)
	if err != nil {
		h.logger.Errorw("Failed to build leaderboard", "error", err, "stat", stat)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to build leaderboard")
		return
	}
	h.jsonResponse(w, http.StatusOK, board)
}
