package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/fgclab/arena-api/internal/logic"
	"github.com/fgclab/arena-api/internal/models"
)

// ListPlayers returns all stored players ordered by ID
// @Summary List Players
// @Tags Players
// @Produce json
// @Success 200 {array} models.Player
// @Router /players [get]
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, h.store.ListPlayers())
}

// CreatePlayer stores a new player profile
// @Summary Create Player
// @Tags Players
// @Accept json
// @Produce json
// @Param body body models.CreatePlayerRequest true "Player"
// @Success 201 {object} models.Player
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /players [post]
func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePlayerRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	player, err := logic.NewPlayer(req)
	if err != nil {
		h.engineErrorResponse(w, err)
		return
	}
	now := time.Now().UTC()
	player.CreatedAt = now
	player.UpdatedAt = now

	created := h.store.CreatePlayer(player)
	h.logger.Infow("Player created", "id", created.ID, "name", created.Name, "character", created.Character)
	h.jsonResponse(w, http.StatusCreated, created)
}

// GetPlayer returns one player by ID
// @Summary Get Player
// @Tags Players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} models.Player
// @Failure 404 {object} map[string]string "Not Found"
// @Router /players/{id} [get]
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.errorResponse(w, http.StatusBadRequest, "Invalid player ID")
		return
	}

	player, found := h.store.GetPlayer(id)
	if !found {
		h.errorResponse(w, http.StatusNotFound, "Player not found")
		return
	}
	h.jsonResponse(w, http.StatusOK, player)
}

// UpdatePlayer replaces a player's profile, recomputing derived fields
func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.errorResponse(w, http.StatusBadRequest, "Invalid player ID")
		return
	}

	existing, found := h.store.GetPlayer(id)
	if !found {
		h.errorResponse(w, http.StatusNotFound, "Player not found")
		return
	}

	var req models.CreatePlayerRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	player, err := logic.NewPlayer(req)
	if err != nil {
		h.engineErrorResponse(w, err)
		return
	}
	player.ID = existing.ID
	player.CreatedAt = existing.CreatedAt
	player.UpdatedAt = time.Now().UTC()

	updated, _ := h.store.UpdatePlayer(player)
	h.jsonResponse(w, http.StatusOK, updated)
}

// DeletePlayer removes a player
func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.errorResponse(w, http.StatusBadRequest, "Invalid player ID")
		return
	}

	if !h.store.DeletePlayer(id) {
		h.errorResponse(w, http.StatusNotFound, "Player not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetScoutingCard returns the engine-derived scouting view of a player
// @Summary Get Scouting Card
// @Tags Players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} models.ScoutingCard
// @Failure 404 {object} map[string]string "Not Found"
// @Router /players/{id}/scouting-card [get]
func (h *Handler) GetScoutingCard(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.errorResponse(w, http.StatusBadRequest, "Invalid player ID")
		return
	}

	card, err := h.scouting.GetScoutingCard(r.Context(), id)
	if err != nil {
		if errors.Is(err, logic.ErrPlayerNotFound) {
			h.errorResponse(w, http.StatusNotFound, "Player not found")
			return
		}
		h.logger.Errorw("Failed to build scouting card", "error", err, "id", id)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to build scouting card")
		return
	}
	h.jsonResponse(w, http.StatusOK, card)
}
