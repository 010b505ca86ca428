package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dileepraotv/tt-tournament-system/handlers"
)

// SetupRoutes mounts the compute API. Every engine endpoint is a POST
// taking a snapshot body; there is no stored state and no auth surface.
func SetupRoutes(router *chi.Mux, engineHandler *handlers.EngineHandler, allowedOrigins []string) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Recoverer)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/healthz", engineHandler.Healthcheck)

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/games/validate", engineHandler.ValidateGame)

		r.Route("/matches", func(r chi.Router) {
			r.Post("/state", engineHandler.MatchState)
			r.Post("/entry-check", engineHandler.CheckGameEntry)
		})

		r.Post("/brackets/generate", engineHandler.GenerateBracket)
		r.Post("/groups/assign", engineHandler.AssignGroups)
		r.Post("/fixtures/generate", engineHandler.GenerateFixtures)
		r.Post("/standings", engineHandler.ComputeStandings)
		r.Post("/qualifiers", engineHandler.ExtractQualifiers)
		r.Post("/stages/close", engineHandler.CloseGroupStage)
	})
}
