package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/sozercan/ai-copywriter/internal/config"
	"github.com/sozercan/ai-copywriter/internal/generator"
	"github.com/sozercan/ai-copywriter/internal/logger"
	"github.com/sozercan/ai-copywriter/internal/metrics"
)

const shutdownTimeout = 30 * time.Second

type Server struct {
	cfg       config.ServerConfig
	server    *http.Server
	router    *chi.Mux
	generator *generator.Generator
	metrics   *metrics.Metrics
	logger    *logger.Logger
}

func New(cfg config.Config, gen *generator.Generator, m *metrics.Metrics, log *logger.Logger) *Server {
	s := &Server{
		cfg:       cfg.Server,
		router:    chi.NewRouter(),
		generator: gen,
		metrics:   m,
		logger:    log,
	}

	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(s.requestLoggingMiddleware)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(s.cfg.RequestTimeout))
	s.router.Use(cors.New(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
	}).Handler)

	s.router.Route("/api", func(r chi.Router) {
		r.Post("/generate", s.handleGenerate)
		r.Get("/tones", s.handleTones)
		r.Get("/health", s.handleHealth)
	})
	s.router.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	// Static files
	fs := http.FileServer(http.Dir(s.cfg.StaticDir))
	s.router.Handle("/*", fs)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run() error {
	// Create a channel to listen for errors coming from the listener
	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("Starting server", "address", s.server.Addr)
		serverErrors <- s.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		s.logger.Info("Starting shutdown", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
	}

	s.logger.Info("Server stopped")
	return nil
}
