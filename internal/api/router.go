package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/loga/gacha-backend/internal/api/handlers"
	"github.com/loga/gacha-backend/internal/api/middleware"
	"github.com/loga/gacha-backend/internal/service"
	"github.com/loga/gacha-backend/internal/ws"
)

func NewRouter(services *service.Services, hub *ws.Hub) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	gachaHandler := handlers.NewGachaHandler(services.Gacha)
	playerHandler := handlers.NewPlayerHandler(services.Player)
	championshipHandler := handlers.NewChampionshipHandler(services.Championship, services.Auth)
	rosterHandler := handlers.NewRosterHandler(services.Roster, services.Auth)
	communityHandler := handlers.NewCommunityHandler(services.Community, services.Auth)
	reportHandler := handlers.NewReportHandler(services.Report, services.Auth)
	statisticsHandler := handlers.NewStatisticsHandler(services.Statistics)
	feedHandler := handlers.NewFeedHandler(hub)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public auth routes
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)

			// Protected auth routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))
				r.Get("/me", authHandler.Me)
				r.Post("/logout", authHandler.Logout)
			})
		})

		// Gacha routes: anonymous draws allowed, rerolls gated in the service
		r.Route("/gacha", func(r chi.Router) {
			r.Use(middleware.OptionalAuth(services.Auth))
			r.Post("/draw/full", gachaHandler.DrawFull)
			r.Post("/draw/{position}", gachaHandler.Draw)
			r.Post("/reroll/{position}", gachaHandler.Reroll)
		})

		// Player catalog routes (public)
		r.Route("/players", func(r chi.Router) {
			r.Get("/", playerHandler.Search)
			r.Get("/top-picked", playerHandler.TopPicked)
			r.Get("/position/{position}/top", playerHandler.TopByPosition)
			r.Get("/{id}", playerHandler.Get)
		})

		// Championship catalog routes
		r.Route("/championships", func(r chi.Router) {
			r.Get("/", championshipHandler.GetAll)
			r.Get("/{id}", championshipHandler.Get)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))
				r.Post("/", championshipHandler.Create)
			})
		})

		// Roster routes
		r.Route("/rosters", func(r chi.Router) {
			r.Get("/", rosterHandler.Search)
			r.Get("/{id}", rosterHandler.Get)
			r.Get("/{id}/comments", communityHandler.GetComments)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))
				r.Post("/", rosterHandler.Create)
				r.Delete("/{id}", rosterHandler.Delete)
				r.Post("/{id}/like", rosterHandler.ToggleLike)
				r.Post("/{id}/publish", rosterHandler.SetPublic)
				r.Post("/{id}/unpublish", rosterHandler.SetPrivate)
				r.Post("/{id}/comments", communityHandler.CreateComment)
				r.Delete("/{id}/comments/{commentId}", communityHandler.DeleteComment)
			})
		})

		// User routes
		r.Route("/users", func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))
			r.Get("/me/rosters", rosterHandler.GetMine)
		})

		// Community feed routes (public)
		r.Route("/community", func(r chi.Router) {
			r.Get("/rosters", communityHandler.PublicRosters)
			r.Get("/rosters/popular", communityHandler.PopularRosters)
			r.Get("/rosters/championship", communityHandler.ChampionshipRosters)
		})

		// Bug report routes
		r.Route("/reports", func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))
			r.Post("/", reportHandler.Create)
			r.Get("/", reportHandler.GetAll)
			r.Get("/me", reportHandler.GetMine)
			r.Patch("/{id}/status", reportHandler.UpdateStatus)
		})

		// Site-wide statistics (public)
		r.Get("/statistics", statisticsHandler.Overall)

		// WebSocket feed
		r.Get("/ws/feed", feedHandler.Subscribe)
	})

	return r
}
