package handlers

import (
	"errors"
	"net/http"

	"github.com/fgclab/arena-api/internal/engine"
	"github.com/fgclab/arena-api/internal/logic"
	"github.com/fgclab/arena-api/internal/models"
)

// CoachChat proxies a free-form coaching question to the model
// @Summary Coach Chat
// @Tags Coach
// @Accept json
// @Produce json
// @Param body body models.CoachChatRequest true "Question and history"
// @Success 200 {object} models.CoachReply
// @Failure 503 {object} map[string]string "Coach not configured"
// @Router /coach/chat [post]
func (h *Handler) CoachChat(w http.ResponseWriter, r *http.Request) {
	var req models.CoachChatRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	reply, err := h.coach.Chat(r.Context(), req)
	if err != nil {
		h.coachErrorResponse(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, reply)
}

// CoachMatchup asks the coach about a specific matchup, grounded in the
// engine's prediction for the two rosters
// @Summary Coach Matchup Advice
// @Tags Coach
// @Accept json
// @Produce json
// @Param body body models.CoachMatchupRequest true "Question and rosters"
// @Success 200 {object} models.CoachReply
// @Failure 503 {object} map[string]string "Coach not configured"
// @Router /coach/matchup [post]
func (h *Handler) CoachMatchup(w http.ResponseWriter, r *http.Request) {
	var req models.CoachMatchupRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	reply, err := h.coach.MatchupAdvice(r.Context(), req)
	if err != nil {
		h.coachErrorResponse(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, reply)
}

func (h *Handler) coachErrorResponse(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, logic.ErrCoachDisabled):
		h.errorResponse(w, http.StatusServiceUnavailable, "Coach assistant is not configured")
	case errors.Is(err, engine.ErrEmptyRoster) || errors.Is(err, engine.ErrSkillOutOfRange):
		h.errorResponse(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Errorw("Coach request failed", "error", err)
		h.errorResponse(w, http.StatusBadGateway, "Coach backend unavailable")
	}
}
