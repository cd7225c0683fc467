package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"

	"github.com/winzz-app/tournament-server/handlers"
)

func SetupRoutes(
	router *chi.Mux,
	sportHandler *handlers.SportHandler,
	tournamentHandler *handlers.TournamentHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)

	// The mobile client talks to the API from a different origin.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Route("/sports", func(r chi.Router) {
		r.Get("/", sportHandler.ListHandler)
		r.Post("/{sportID}/select", sportHandler.SelectHandler)
	})

	router.Route("/tournaments", func(r chi.Router) {
		r.Post("/", tournamentHandler.CreateHandler)
		r.Get("/", tournamentHandler.ListHandler)

		r.Route("/{tournamentID}", func(r chi.Router) {
			r.Get("/", tournamentHandler.GetByIDHandler)
			r.Delete("/", tournamentHandler.DeleteHandler)
			r.Post("/reshuffle", tournamentHandler.ReshuffleHandler)
			r.Get("/standings", tournamentHandler.StandingsHandler)
			r.Post("/finish", tournamentHandler.FinishHandler)

			r.Route("/matches/{matchID}", func(r chi.Router) {
				r.Put("/score", tournamentHandler.SetScoreHandler)
				r.Delete("/score", tournamentHandler.ClearScoreHandler)
				r.Post("/complete", tournamentHandler.CompleteMatchHandler)
				r.Post("/reopen", tournamentHandler.ReopenMatchHandler)
			})
		})
	})

	router.Get("/ws/tournaments/{tournamentID}", webSocketHandler.SubscribeHandler)
}
