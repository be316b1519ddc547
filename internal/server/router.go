package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/meridianhr/pathfinder/internal/api"
	"github.com/meridianhr/pathfinder/internal/api/handlers"
	"github.com/meridianhr/pathfinder/internal/api/middleware"
)

type RouterConfig struct {
	RecommendationHandler *handlers.RecommendationHandler
	ChatHandler           *handlers.ChatHandler
	CareerHandler         *handlers.CareerHandler
	ProgressHandler       *handlers.ProgressHandler
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	const maxBodyBytes int64 = 1 * 1024 * 1024

	r.Use(middleware.RequestID)
	r.Use(middleware.SentryMiddleware)
	r.Use(middleware.AccessLog)
	r.Use(middleware.MaxBodyBytes(maxBodyBytes))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		api.Success(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireEmployeeID)

		r.Route("/recommendations", func(r chi.Router) {
			r.Get("/", cfg.RecommendationHandler.Get)
			r.Get("/paths", cfg.RecommendationHandler.GetPaths)
		})

		r.Post("/chat/query", cfg.ChatHandler.Query)

		r.Get("/career/roadmap", cfg.CareerHandler.GetRoadmap)

		r.Route("/suggestions/progress", func(r chi.Router) {
			r.Get("/", cfg.ProgressHandler.List)
			r.Patch("/", cfg.ProgressHandler.Update)
		})
	})

	return r
}
