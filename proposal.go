package tuxdocs

import (
	"context"
	"time"
)

// Proposal status values. A proposal starts pending; approval and
// rejection are one-way terminal transitions.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// RiskLevel classifies how dangerous a proposed edit is.
type RiskLevel string

// RiskLevel values.
const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// Valid reports whether the risk level is one of the known values.
func (r RiskLevel) Valid() bool {
	return r == RiskLow || r == RiskMedium || r == RiskHigh
}

// Analysis is an AI review of a proposed edit. An Analysis is always
// complete: consumers never need to null-check individual fields once
// the record is present.
type Analysis struct {
	Summary      string    `json:"summary"`
	RiskLevel    RiskLevel `json:"riskLevel"`
	QualityScore int       `json:"qualityScore"`
	Suggestions  string    `json:"suggestions"`
}

// Valid reports whether the analysis has a known risk level and a
// quality score in the 1-10 range.
func (a *Analysis) Valid() bool {
	return a.RiskLevel.Valid() && a.QualityScore >= 1 && a.QualityScore <= 10
}

// DefaultAnalysis returns the low-confidence analysis substituted when
// AI review fails. It is a complete record so degraded reviews are
// indistinguishable in shape from real ones.
func DefaultAnalysis() Analysis {
	return Analysis{
		Summary:      "Analysis failed.",
		RiskLevel:    RiskLow,
		QualityScore: 5,
		Suggestions:  "",
	}
}

// Proposal represents a community-submitted edit to a document awaiting
// moderation.
type Proposal struct {
	ID              string    `json:"id"`
	DocID           string    `json:"docId"`
	DocTitle        string    `json:"docTitle"`
	OriginalContent string    `json:"originalContent"`
	ProposedContent string    `json:"proposedContent"`
	Author          string    `json:"author"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	Analysis        *Analysis `json:"analysis,omitempty"`
}

// Validate returns an error if the proposal contains invalid fields.
func (p *Proposal) Validate() error {
	if p.DocID == "" {
		return Errorf(EINVALID, "proposal document ID required")
	}
	if p.ProposedContent == "" {
		return Errorf(EINVALID, "proposal content required")
	}
	if p.Author == "" {
		return Errorf(EINVALID, "proposal author required")
	}
	return nil
}

// ProposalService represents a service for managing edit proposals.
type ProposalService interface {
	// CreateProposal creates a new proposal: assigns a fresh ID, stamps
	// the creation time, forces status to pending, and inserts it at the
	// head of the list. The passed record is mutated in place so later
	// partial updates can be addressed by its ID.
	CreateProposal(ctx context.Context, proposal *Proposal) error

	// FindProposals retrieves proposals matching the filter, most
	// recently added first.
	FindProposals(ctx context.Context, filter ProposalFilter) ([]*Proposal, error)

	// UpdateProposal merges the given fields into the matching proposal.
	// An unknown ID is a silent no-op, not an error: a late-arriving
	// analysis must tolerate racing against proposal removal.
	UpdateProposal(ctx context.Context, id string, upd ProposalUpdate) error
}

// ProposalFilter represents a filter for FindProposals.
type ProposalFilter struct {
	DocID  *string `json:"docId"`
	Status *string `json:"status"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ProposalUpdate represents fields that can be updated on a proposal.
// Updates are last-write-wins; there is no version field.
type ProposalUpdate struct {
	Status   *string   `json:"status"`
	Analysis *Analysis `json:"analysis"`
}
