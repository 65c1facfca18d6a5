package handlers

import "github.com/go-chi/chi/v5"

// Routes builds the full route tree for the API.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestMetrics)

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/players", func(r chi.Router) {
			r.Get("/", h.ListPlayers)
			r.Post("/", h.CreatePlayer)
			r.Get("/{id}", h.GetPlayer)
			r.Put("/{id}", h.UpdatePlayer)
			r.Delete("/{id}", h.DeletePlayer)
			r.Get("/{id}/scouting-card", h.GetScoutingCard)
		})

		r.Route("/teams", func(r chi.Router) {
			r.Get("/", h.ListTeams)
			r.Post("/", h.CreateTeam)
			r.Get("/{id}", h.GetTeam)
			r.Put("/{id}", h.UpdateTeam)
			r.Delete("/{id}", h.DeleteTeam)
			r.Get("/{id}/analysis", h.AnalyzeTeam)
		})

		r.Route("/matches", func(r chi.Router) {
			r.Get("/", h.ListMatches)
			r.Post("/", h.ReportMatch)
		})

		r.Route("/strategies", func(r chi.Router) {
			r.Get("/", h.ListStrategies)
			r.Post("/", h.CreateStrategy)
			r.Get("/{id}", h.GetStrategy)
			r.Put("/{id}", h.UpdateStrategy)
			r.Delete("/{id}", h.DeleteStrategy)
		})

		r.Post("/battle/analyze", h.AnalyzeBattle)

		r.Get("/leaderboard", h.GetLeaderboard)
		r.Get("/leaderboard/{stat}", h.GetLeaderboard)

		r.Post("/coach/chat", h.CoachChat)
		r.Post("/coach/matchup", h.CoachMatchup)
	})

	return r
}
