// Package server exposes the REST API: target CRUD and lifecycle, on-demand
// checks, run history, and statistics.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/pagewatch/pagewatch/pkg/db"
)

//go:generate moq -out mocks/database.go -pkg mocks -skip-ensure -fmt goimports . Database
//go:generate moq -out mocks/executor.go -pkg mocks -skip-ensure -fmt goimports . Executor

// Server represents HTTP server instance
type Server struct {
	config   Config
	db       Database
	executor Executor
	version  string
	debug    bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Config holds server settings
type Config struct {
	Listen  string
	Timeout time.Duration
}

// Database interface for server operations
type Database interface {
	CreateTarget(ctx context.Context, target *db.Target) error
	GetTarget(ctx context.Context, id string) (*db.Target, error)
	ListTargets(ctx context.Context) ([]db.Target, error)
	UpdateTarget(ctx context.Context, target *db.Target) error
	DeleteTarget(ctx context.Context, id string) error
	SetTargetStatus(ctx context.Context, id string, status db.Status) error
	ListRuns(ctx context.Context, targetID string, limit int) ([]db.CrawlRun, error)
	GetOverallStats(ctx context.Context) (*db.OverallStats, error)
	GetEventTypeSummaries(ctx context.Context) ([]db.EventTypeSummary, error)
	GetRecentErrors(ctx context.Context, limit int) ([]db.RecentError, error)
	GetURLStats(ctx context.Context) ([]db.URLStats, error)
}

// Executor runs an on-demand check of a single target
type Executor interface {
	Execute(ctx context.Context, targetID string) error
}

// New initializes a new server instance
func New(cfg Config, database Database, executor Executor, version string, debug bool) *Server {
	if cfg.Listen == "" {
		cfg.Listen = ":8080"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	s := &Server{
		config:   cfg,
		db:       database,
		executor: executor,
		version:  version,
		debug:    debug,
		router:   routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	lgr.Printf("[INFO] starting server on %s", s.config.Listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         s.config.Listen,
		Handler:      s.router,
		ReadTimeout:  s.config.Timeout,
		WriteTimeout: s.config.Timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("pagewatch", "pagewatch", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("POST /targets", s.createTargetHandler)
		r.HandleFunc("GET /targets", s.listTargetsHandler)
		r.HandleFunc("GET /targets/{id}", s.getTargetHandler)
		r.HandleFunc("PUT /targets/{id}", s.updateTargetHandler)
		r.HandleFunc("DELETE /targets/{id}", s.deleteTargetHandler)
		r.HandleFunc("POST /targets/{id}/activate", s.activateTargetHandler)
		r.HandleFunc("POST /targets/{id}/deactivate", s.deactivateTargetHandler)
		r.HandleFunc("POST /targets/{id}/check", s.checkTargetHandler)
		r.HandleFunc("GET /targets/{id}/runs", s.listRunsHandler)

		r.HandleFunc("GET /stats/overall", s.overallStatsHandler)
		r.HandleFunc("GET /stats/events", s.eventStatsHandler)
		r.HandleFunc("GET /stats/errors", s.recentErrorsHandler)
		r.HandleFunc("GET /stats/urls", s.urlStatsHandler)
	})
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, http.StatusOK, status)
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, code, map[string]string{"error": errMsg})
}
