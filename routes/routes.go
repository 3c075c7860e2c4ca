package routes

import (
	"github.com/arvind407/EasyPickle/handlers"
	"github.com/arvind407/EasyPickle/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// SetupRoutes assembles the console's surface. Reads require a login; all
// mutations additionally require the admin/organizer role, mirroring the
// original console's ProtectedRoute/AdminRoute split. The score session is
// a websocket and carries its token itself.
func SetupRoutes(
	router *chi.Mux,
	authHandler *handlers.AuthHandler,
	tournamentHandler *handlers.TournamentHandler,
	teamHandler *handlers.TeamHandler,
	playerHandler *handlers.PlayerHandler,
	matchHandler *handlers.MatchHandler,
	groupHandler *handlers.GroupHandler,
	scoreHandler *handlers.ScoreHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Post("/auth/login", authHandler.Login)
	router.Post("/auth/register", authHandler.Register)

	router.Get("/ws/matches/{matchID}/score", scoreHandler.ServeSession)

	router.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate)

		r.Route("/tournaments", func(r chi.Router) {
			r.Get("/", tournamentHandler.List)
			r.Get("/{tournamentID}", tournamentHandler.Get)
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Post("/", tournamentHandler.Create)
				r.Put("/{tournamentID}", tournamentHandler.Update)
				r.Delete("/{tournamentID}", tournamentHandler.Delete)
			})
		})

		r.Get("/standings", tournamentHandler.Standings)

		r.Route("/teams", func(r chi.Router) {
			r.Get("/", teamHandler.List)
			r.Get("/{teamID}", teamHandler.Get)
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Post("/", teamHandler.Create)
				r.Put("/{teamID}", teamHandler.Update)
				r.Delete("/{teamID}", teamHandler.Delete)
			})
		})

		r.Route("/players", func(r chi.Router) {
			r.Get("/", playerHandler.List)
			r.Get("/{playerID}", playerHandler.Get)
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Post("/", playerHandler.Create)
				r.Put("/{playerID}", playerHandler.Update)
				r.Delete("/{playerID}", playerHandler.Delete)
			})
		})

		r.Route("/matches", func(r chi.Router) {
			r.Get("/", matchHandler.List)
			r.Get("/{matchID}", matchHandler.Get)
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Post("/", matchHandler.Schedule)
				r.Put("/{matchID}", matchHandler.Update)
				r.Delete("/{matchID}", matchHandler.Delete)
			})
		})

		r.Route("/groups", func(r chi.Router) {
			r.Get("/", groupHandler.List)
			r.Get("/{groupID}", groupHandler.Get)
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Post("/", groupHandler.Create)
				r.Put("/{groupID}", groupHandler.Update)
				r.Delete("/{groupID}", groupHandler.Delete)
				r.Post("/{groupID}/teams", groupHandler.AddTeam)
				r.Delete("/{groupID}/teams/{teamID}", groupHandler.RemoveTeam)
			})
		})
	})
}
