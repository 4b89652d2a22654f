// Package http provides the JSON API consumed by the tuxdocs web UI.
package http

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	tuxdocs "github.com/jkantihub-ai/tuxdocs2"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// Server is the HTTP server for the tuxdocs API.
type Server struct {
	docs      tuxdocs.DocumentService
	proposals tuxdocs.ProposalService
	oracle    tuxdocs.Oracle
	logger    *zap.Logger
	server    *http.Server

	// Chat sessions live for the process lifetime, like the stores.
	sessionMu sync.Mutex
	sessions  map[string]tuxdocs.ChatSession
}

// NewServer creates a server with the given dependencies.
func NewServer(docs tuxdocs.DocumentService, proposals tuxdocs.ProposalService, oracle tuxdocs.Oracle, logger *zap.Logger) *Server {
	return &Server{
		docs:      docs,
		proposals: proposals,
		oracle:    oracle,
		logger:    logger,
		sessions:  make(map[string]tuxdocs.ChatSession),
	}
}

// Handler builds the API router. Exposed separately from Start so
// tests can drive it with httptest.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/api/docs", s.handleListDocs)
	r.Get("/api/docs/{id}", s.handleGetDoc)
	r.Get("/api/docs/{id}/outline", s.handleOutline)
	r.Post("/api/docs/{id}/summary", s.handleSummary)
	r.Post("/api/docs/{id}/walkthrough", s.handleWalkthrough)
	r.Post("/api/docs/{id}/modernize", s.handleModernize)
	r.Post("/api/docs/{id}/chat", s.handleCreateChat)
	r.Post("/api/chat/{id}", s.handleSendChat)
	r.Post("/api/search", s.handleSearch)
	r.Post("/api/terminal", s.handleTerminal)
	r.Get("/api/proposals", s.handleListProposals)
	r.Post("/api/proposals", s.handleCreateProposal)
	r.Post("/api/proposals/{id}/approve", s.handleApprove)
	r.Post("/api/proposals/{id}/reject", s.handleReject)
	r.Get("/health", s.handleHealth)

	// The SPA is served from a different origin during development.
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(r)
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start(addr string) error {
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		begin := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(begin)),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps application error codes to HTTP statuses.
func (s *Server) respondServiceError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch tuxdocs.ErrorCode(err) {
	case tuxdocs.ENOTFOUND:
		status = http.StatusNotFound
	case tuxdocs.EINVALID:
		status = http.StatusBadRequest
	case tuxdocs.EUNAVAILABLE:
		status = http.StatusServiceUnavailable
	}
	s.respondError(w, status, tuxdocs.ErrorMessage(err))
}
