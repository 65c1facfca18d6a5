package handlers

import (
	"net/http"
	"time"

	"github.com/fgclab/arena-api/internal/models"
)

// ListMatches returns all recorded match results
func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, h.store.ListMatches())
}

// ReportMatch accepts a match result for asynchronous recording
// @Summary Report Match
// @Description Queues a match result; the ingest pool records it in batches
// @Tags Matches
// @Accept json
// @Produce json
// @Param body body models.ReportMatchRequest true "Match result"
// @Success 202 {object} map[string]string "Accepted"
// @Failure 503 {object} map[string]string "Queue full"
// @Router /matches [post]
func (h *Handler) ReportMatch(w http.ResponseWriter, r *http.Request) {
	var req models.ReportMatchRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	playedAt := req.PlayedAt
	if playedAt.IsZero() {
		playedAt = time.Now().UTC()
	}

	receipt, ok := h.queue.Enqueue(models.MatchRecord{
		PlayerA:  req.PlayerA,
		PlayerB:  req.PlayerB,
		Winner:   req.Winner,
		Score:    req.Score,
		Notes:    req.Notes,
		PlayedAt: playedAt,
	})
	if !ok {
		h.logger.Warnw("Match report shed, queue full", "depth", h.queue.QueueDepth())
		h.errorResponse(w, http.StatusServiceUnavailable, "Ingest queue full, try again later")
		return
	}

	h.jsonResponse(w, http.StatusAccepted, map[string]string{
		"status":     "accepted",
		"receipt_id": receipt,
	})
}
