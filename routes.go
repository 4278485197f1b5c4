package main

import (
	"html/template"
	"net/http"
	"time"

	"gridiron/config"
	"gridiron/handlers"
	"gridiron/middleware"
	"gridiron/models"
	"gridiron/templates"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
)

func newRouter(cfg *config.Config, store handlers.Snapshots, tmpls map[string]*template.Template) http.Handler {
	rosterHandler := handlers.NewRosterHandler(store, tmpls)
	adminHandler := handlers.NewAdminHandler(cfg, store)

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.RequestLogger(log.Logger))
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Metrics)
	router.Use(chimiddleware.Timeout(30 * time.Second))
	router.Use(cors.New(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
	}).Handler)

	// Static files
	router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(templates.Static()))))

	router.Get("/", rosterHandler.Index)
	router.Get("/health", rosterHandler.Health)
	if cfg.MetricsEnabled {
		router.Handle("/metrics", promhttp.Handler())
	}

	// JSON API
	router.Get("/team_weeks", rosterHandler.TeamWeeks)
	router.Get("/roster", rosterHandler.Roster)
	router.Get("/roster.csv", rosterHandler.RosterCSV)

	// Admin API
	router.Route("/admin", func(r chi.Router) {
		r.Post("/login", adminHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware)
			r.Use(middleware.RequireRole(models.RoleAdmin))
			r.Post("/reload", adminHandler.Reload)
		})
	})

	return router
}
