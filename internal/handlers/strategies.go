package handlers

import (
	"net/http"
	"time"

	"github.com/fgclab/arena-api/internal/models"
)

// ListStrategies returns all stored strategy notes
func (h *Handler) ListStrategies(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, h.store.ListStrategies())
}

// CreateStrategy stores a new strategy note
func (h *Handler) CreateStrategy(w http.ResponseWriter, r *http.Request) {
	var req models.CreateStrategyRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	created := h.store.CreateStrategy(models.Strategy{
		Title:     req.Title,
		Opponent:  req.Opponent,
		GamePlan:  req.GamePlan,
		Tags:      req.Tags,
		CreatedAt: time.Now().UTC(),
	})
	h.jsonResponse(w, http.StatusCreated, created)
}

// GetStrategy returns one strategy note by ID
func (h *Handler) GetStrategy(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.errorResponse(w, http.StatusBadRequest, "Invalid strategy ID")
		return
	}

	strategy, found := h.store.GetStrategy(id)
	if !found {
		h.errorResponse(w, http.StatusNotFound, "Strategy not found")
		return
	}
	h.jsonResponse(w, http.StatusOK, strategy)
}

// UpdateStrategy replaces a strategy note
func (h *Handler) UpdateStrategy(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.errorResponse(w, http.StatusBadRequest, "Invalid strategy ID")
		return
	}

	existing, found := h.store.GetStrategy(id)
	if !found {
		h.errorResponse(w, http.StatusNotFound, "Strategy not found")
		return
	}

	var req models.CreateStrategyRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	updated, _ := h.store.UpdateStrategy(models.Strategy{
		ID:        existing.ID,
		Title:     req.Title,
		Opponent:  req.Opponent,
		GamePlan:  req.GamePlan,
		Tags:      req.Tags,
		CreatedAt: existing.CreatedAt,
	})
	h.jsonResponse(w, http.StatusOK, updated)
}

// DeleteStrategy removes a strategy note
func (h *Handler) DeleteStrategy(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		h.errorResponse(w, http.StatusBadRequest, "Invalid strategy ID")
		return
	}

	if !h.store.DeleteStrategy(id) {
		h.errorResponse(w, http.StatusNotFound, "Strategy not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
