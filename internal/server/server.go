// Package server exposes the generation features, history, brand profile,
// and insights over a JSON HTTP API.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"reelcraft/internal/config"
	"reelcraft/internal/generate"
	"reelcraft/internal/logger"
	"reelcraft/internal/store"
)

// Server represents the HTTP server
type Server struct {
	router     *chi.Mux
	httpServer *http.Server
	svc        *generate.Service
	store      *store.Store
	config     *config.Config
	log        *slog.Logger
}

// New creates a new HTTP server instance
func New(cfg *config.Config, svc *generate.Service, st *store.Store) *Server {
	s := &Server{
		router: chi.NewRouter(),
		svc:    svc,
		store:  st,
		config: cfg,
		log:    logger.Get(),
	}

	// Setup middleware
	s.setupMiddleware()

	// Setup routes
	s.setupRoutes()

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  config.ParseDuration(cfg.Server.ReadTimeout, 30*time.Second),
		WriteTimeout: config.ParseDuration(cfg.Server.WriteTimeout, 15*time.Minute),
	}

	return s
}

// setupMiddleware configures middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)

	// Video generation polls for minutes, so the request timeout is long.
	s.router.Use(middleware.Timeout(config.ParseDuration(s.config.Server.RequestTimeout, 15*time.Minute)))

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.config.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
}

// setupRoutes configures routes for the server
func (s *Server) setupRoutes() {
	// Health check endpoint
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/catalog", s.handleCatalog)
		r.Get("/insights", s.handleInsights)

		// Generation API
		r.Route("/generate", func(r chi.Router) {
			r.Post("/script", s.handleScript)
			r.Post("/link-script", s.handleLinkScript)
			r.Post("/hooks", s.handleHooks)
			r.Post("/angles", s.handleAngles)
			r.Post("/hashtags", s.handleHashtags)
			r.Post("/plan", s.handlePlan)
			r.Post("/research", s.handleResearch)
		})

		// Media API
		r.Route("/video", func(r chi.Router) {
			r.Post("/", s.handleVideo)
			r.Get("/download", s.handleVideoDownload)
		})
		r.Route("/image", func(r chi.Router) {
			r.Post("/storyboard", s.handleStoryboard)
			r.Post("/edit", s.handleImageEdit)
		})

		// Brand profile API
		r.Route("/brand-profile", func(r chi.Router) {
			r.Get("/", s.handleGetBrandProfile)
			r.Put("/", s.handlePutBrandProfile)
			r.Delete("/", s.handleDeleteBrandProfile)
		})

		// History API
		r.Route("/history", func(r chi.Router) {
			r.Get("/", s.handleListHistory)
			r.Get("/{id}", s.handleGetHistory)
			r.Delete("/{id}", s.handleDeleteHistory)
			r.Put("/{id}/variations/{index}/feedback", s.handleFeedback)
			r.Put("/{id}/variations/{index}/performance", s.handlePerformance)
		})
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info("Starting HTTP server",
		"addr", s.httpServer.Addr,
		"offline", s.svc.Offline(),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed to start: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("Shutting down HTTP server gracefully...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.log.Info("HTTP server stopped")
	return nil
}

// Router returns the chi router instance (useful for testing)
func (s *Server) Router() *chi.Mux {
	return s.router
}
