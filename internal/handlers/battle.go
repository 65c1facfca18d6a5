package handlers

import (
	"net/http"

	"github.com/fgclab/arena-api/internal/models"
)

// AnalyzeBattle runs the full matchup prediction over two rosters
// @Summary Analyze Battle
// @Description Predicts the outcome of a team battle from two roster drafts
// @Tags Battle
// @Accept json
// @Produce json
// @Param body body models.BattleAnalyzeRequest true "Rosters"
// @Success 200 {object} models.BattlePrediction
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /battle/analyze [post]
func (h *Handler) AnalyzeBattle(w http.ResponseWriter, r *http.Request) {
	var req models.BattleAnalyzeRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	prediction, err := h.battle.Analyze(r.Context(), req)
	if err != nil {
		h.logger.Errorw("Battle analysis failed", "error", err)
		h.engineErrorResponse(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, prediction)
}
