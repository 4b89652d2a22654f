package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	tuxdocs "github.com/jkantihub-ai/tuxdocs2"
)

type createChatRequest struct {
	Mode       string `json:"mode"`
	AltContent string `json:"altContent"`
}

func (s *Server) handleCreateChat(w http.ResponseWriter, r *http.Request) {
	doc, err := s.docs.FindDocumentByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.respondServiceError(w, err)
		return
	}

	// Both fields are optional; an empty body means the original view.
	var req createChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	mode := tuxdocs.ViewOriginal
	if req.Mode == string(tuxdocs.ViewModern) {
		mode = tuxdocs.ViewModern
	}

	session, err := s.oracle.NewChatSession(r.Context(), doc, mode, req.AltContent)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}

	id := uuid.New().String()
	s.sessionMu.Lock()
	s.sessions[id] = session
	s.sessionMu.Unlock()

	s.respondJSON(w, http.StatusCreated, map[string]string{"sessionId": id})
}

type sendChatRequest struct {
	Message string `json:"message"`
}

func (s *Server) handleSendChat(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.sessionMu.Lock()
	session, ok := s.sessions[id]
	s.sessionMu.Unlock()
	if !ok {
		s.respondError(w, http.StatusNotFound, "chat session not found")
		return
	}

	var req sendChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Message == "" {
		s.respondError(w, http.StatusBadRequest, "message is required")
		return
	}

	// Sends on one session are sequential by contract; concurrent
	// requests for the same session get last-write-wins ordering.
	reply := session.Send(r.Context(), req.Message)
	s.respondJSON(w, http.StatusOK, map[string]string{"reply": reply})
}
