package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	tuxdocs "github.com/jkantihub-ai/tuxdocs2"
	"go.uber.org/zap"
)

func (s *Server) handleListProposals(w http.ResponseWriter, r *http.Request) {
	filter := tuxdocs.ProposalFilter{}
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}

	proposals, err := s.proposals.FindProposals(r.Context(), filter)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, proposals)
}

type createProposalRequest struct {
	DocID           string `json:"docId"`
	ProposedContent string `json:"proposedContent"`
	Author          string `json:"author"`
}

func (s *Server) handleCreateProposal(w http.ResponseWriter, r *http.Request) {
	var req createProposalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	doc, err := s.docs.FindDocumentByID(r.Context(), req.DocID)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}

	proposal := &tuxdocs.Proposal{
		DocID:           doc.ID,
		DocTitle:        doc.Title,
		OriginalContent: doc.Content,
		ProposedContent: req.ProposedContent,
		Author:          req.Author,
	}
	if err := s.proposals.CreateProposal(r.Context(), proposal); err != nil {
		s.respondServiceError(w, err)
		return
	}

	// Review runs in-request; the oracle degrades to a complete default
	// analysis if the backend is down, so there is always something to
	// attach.
	analysis := s.oracle.AnalyzeProposal(r.Context(), proposal.OriginalContent, proposal.ProposedContent)
	if err := s.proposals.UpdateProposal(r.Context(), proposal.ID, tuxdocs.ProposalUpdate{Analysis: &analysis}); err != nil {
		s.respondServiceError(w, err)
		return
	}
	proposal.Analysis = &analysis

	s.logger.Info("proposal created",
		zap.String("id", proposal.ID),
		zap.String("doc", proposal.DocID),
		zap.String("risk", string(analysis.RiskLevel)),
	)
	s.respondJSON(w, http.StatusCreated, proposal)
}

func (s *Server) handleApprove(w http.ResponseWriter, r *http.Request) {
	s.moderate(w, r, tuxdocs.StatusApproved)
}

func (s *Server) handleReject(w http.ResponseWriter, r *http.Request) {
	s.moderate(w, r, tuxdocs.StatusRejected)
}

// moderate applies a one-way status transition to a pending proposal.
func (s *Server) moderate(w http.ResponseWriter, r *http.Request, status string) {
	id := chi.URLParam(r, "id")

	proposal, err := s.findProposal(r, id)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	if proposal.Status != tuxdocs.StatusPending {
		s.respondError(w, http.StatusConflict, "proposal already moderated")
		return
	}

	if err := s.proposals.UpdateProposal(r.Context(), id, tuxdocs.ProposalUpdate{Status: &status}); err != nil {
		s.respondServiceError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"id": id, "status": status})
}

func (s *Server) findProposal(r *http.Request, id string) (*tuxdocs.Proposal, error) {
	proposals, err := s.proposals.FindProposals(r.Context(), tuxdocs.ProposalFilter{})
	if err != nil {
		return nil, err
	}
	for _, p := range proposals {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, tuxdocs.Errorf(tuxdocs.ENOTFOUND, "proposal %q not found", id)
}
