package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/fgclab/arena-api/internal/logic"
	"github.com/fgclab/arena-api/internal/models"
)

// ListTeams returns all stored teams
func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, h.store.ListTeams())
}

// CreateTeam stores a new team
func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTeamRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	created := h.store.CreateTeam(models.Team{
		Name:      req.Name,
		PlayerIDs: req.PlayerIDs,
		CreatedAt: time.Now().UTC(),
	})
	h.logger.Infow("Team created", "id", created.ID, "name", created.Name, "players", len(created.PlayerIDs))
	h.jsonResponse(w, http.StatusCreated, created)
}

// GetTeam returns one team by ID
func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.errorResponse(w, http.StatusBadRequest, "Invalid team ID")
		return
	}

	team, found := h.store.GetTeam(id)
	if !found {
		h.errorResponse(w, http.StatusNotFound, "Team not found")
		return
	}
	h.jsonResponse(w, http.StatusOK, team)
}

// UpdateTeam replaces a team's name and roster
func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.errorResponse(w, http.StatusBadRequest, "Invalid team ID")
		return
	}

	existing, found := h.store.GetTeam(id)
	if !found {
		h.errorResponse(w, http.StatusNotFound, "Team not found")
		return
	}

	var req models.CreateTeamRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	updated, _ := h.store.UpdateTeam(models.Team{
		ID:        existing.ID,
		Name:      req.Name,
		PlayerIDs: req.PlayerIDs,
		CreatedAt: existing.CreatedAt,
	})
	h.jsonResponse(w, http.StatusOK, updated)
}

// DeleteTeam removes a team
func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.errorResponse(w, http.StatusBadRequest, "Invalid team ID")
		return
	}

	if !h.store.DeleteTeam(id) {
		h.errorResponse(w, http.StatusNotFound, "Team not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AnalyzeTeam returns the aggregated roster view for a stored team
// @Summary Analyze Team
// @Description Aggregated strengths, weaknesses and overall skill for a team
// @Tags Teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} models.Roster
// @Failure 404 {object} map[string]string "Not Found"
// @Router /teams/{id}/analysis [get]
func (h *Handler) AnalyzeTeam(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.errorResponse(w, http.StatusBadRequest, "Invalid team ID")
		return
	}

	roster, err := h.scouting.AnalyzeTeam(r.Context(), id)
	if err != nil {
		if errors.Is(err, logic.ErrTeamNotFound) {
			h.errorResponse(w, http.StatusNotFound, "Team not found")
			return
		}
		h.logger.Errorw("Failed to analyze team", "error", err, "id", id)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to analyze team")
		return
	}
	h.jsonResponse(w, http.StatusOK, roster)
}
