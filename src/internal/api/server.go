package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hostsmith/hostsmith/src/internal/errors"
	"github.com/hostsmith/hostsmith/src/internal/log"
)

// Server is the hostsmith HTTP API server.
type Server struct {
	router     *chi.Mux
	httpServer *http.Server
	handler    *Handler
}

// NewServer creates an API server bound to bindAddr.
func NewServer(bindAddr string, handler *Handler) *Server {
	s := &Server{
		router:  chi.NewRouter(),
		handler: handler,
	}

	s.router.Use(Recovery)
	s.router.Use(Logger)
	s.router.Use(CORS)
	s.router.Use(JSONContentType)

	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:         bindAddr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

func (s *Server) setupRoutes() {
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/hosts", s.handler.GetHosts)
		r.Get("/status", s.handler.GetStatus)
		r.Get("/sources", s.handler.GetSources)
		r.Post("/build", s.handler.Build)
	})

	s.router.Get("/health", s.handler.CheckHealth)
}

// Router exposes the configured router, mostly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start starts the API server and blocks until it is shut down.
func (s *Server) Start() error {
	log.Infof("[API] Starting server on %s", s.httpServer.Addr)
	log.Infof("[API] Example: curl http://%s/api/v1/status", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return errors.NewInternalError("API server failed", err)
	}
	return nil
}

// Stop gracefully stops the API server.
func (s *Server) Stop(ctx context.Context) error {
	log.Infof("[API] Shutting down server...")
	return s.httpServer.Shutdown(ctx)
}
