package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	tuxdocs "github.com/jkantihub-ai/tuxdocs2"
	"go.uber.org/zap"
)

func (s *Server) handleListDocs(w http.ResponseWriter, r *http.Request) {
	filter := tuxdocs.DocumentFilter{}
	if category := r.URL.Query().Get("category"); category != "" {
		filter.Category = &category
	}
	if raw := r.URL.Query().Get("legacy"); raw != "" {
		legacy, err := strconv.ParseBool(raw)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, "invalid legacy flag")
			return
		}
		filter.Legacy = &legacy
	}

	docs, err := s.docs.FindDocuments(r.Context(), filter)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, docs)
}

func (s *Server) handleGetDoc(w http.ResponseWriter, r *http.Request) {
	doc, err := s.docs.FindDocumentByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, doc)
}

func (s *Server) handleOutline(w http.ResponseWriter, r *http.Request) {
	doc, err := s.docs.FindDocumentByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	entries := tuxdocs.Outline(doc.Content)
	if entries == nil {
		entries = []tuxdocs.OutlineEntry{}
	}
	s.respondJSON(w, http.StatusOK, map[string]any{"outline": entries})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	doc, err := s.docs.FindDocumentByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	summary := s.oracle.Summarize(r.Context(), doc.Content)
	s.respondJSON(w, http.StatusOK, map[string]string{"summary": summary})
}

func (s *Server) handleWalkthrough(w http.ResponseWriter, r *http.Request) {
	doc, err := s.docs.FindDocumentByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	steps := s.oracle.GenerateWalkthrough(r.Context(), doc.Content)
	if steps == nil {
		steps = []tuxdocs.WalkthroughStep{}
	}
	s.respondJSON(w, http.StatusOK, map[string]any{"steps": steps})
}

func (s *Server) handleModernize(w http.ResponseWriter, r *http.Request) {
	doc, err := s.docs.FindDocumentByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	if !doc.Legacy() {
		s.respondError(w, http.StatusConflict, "document is not legacy")
		return
	}
	content := s.oracle.ModernizeDoc(r.Context(), doc.Content)
	s.respondJSON(w, http.StatusOK, map[string]string{"content": content})
}

type searchRequest struct {
	Query string `json:"query"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Query == "" {
		s.respondError(w, http.StatusBadRequest, "query is required")
		return
	}

	catalog, err := s.docs.FindDocuments(r.Context(), tuxdocs.DocumentFilter{})
	if err != nil {
		s.respondServiceError(w, err)
		return
	}

	s.logger.Debug("search request", zap.String("query", req.Query))
	ids := s.oracle.SemanticSearch(r.Context(), req.Query, catalog)
	if ids == nil {
		ids = []string{}
	}
	s.respondJSON(w, http.StatusOK, map[string]any{"ids": ids})
}

type terminalRequest struct {
	History []string `json:"history"`
	Command string   `json:"command"`
	Cwd     string   `json:"cwd"`
}

func (s *Server) handleTerminal(w http.ResponseWriter, r *http.Request) {
	var req terminalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Command == "" {
		s.respondError(w, http.StatusBadRequest, "command is required")
		return
	}
	if req.Cwd == "" {
		req.Cwd = "~"
	}

	result := s.oracle.SimulateTerminal(r.Context(), req.History, req.Command, req.Cwd)
	s.respondJSON(w, http.StatusOK, result)
}
