package mem

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	tuxdocs "github.com/jkantihub-ai/tuxdocs2"
)

// Compile-time interface verification.
var _ tuxdocs.ProposalService = (*ProposalService)(nil)

// ProposalService implements tuxdocs.ProposalService with an in-memory
// list. Writes are last-write-wins with no versioning; a mutex guards
// the slice since HTTP handlers may touch it from multiple goroutines.
type ProposalService struct {
	mu        sync.Mutex
	proposals []*tuxdocs.Proposal
}

// NewProposalService creates an empty ProposalService.
func NewProposalService() *ProposalService {
	return &ProposalService{}
}

// CreateProposal stores a new proposal at the head of the list. The
// passed record is mutated in place: ID, CreatedAt, and Status are
// assigned here.
func (s *ProposalService) CreateProposal(ctx context.Context, proposal *tuxdocs.Proposal) error {
	if err := proposal.Validate(); err != nil {
		return err
	}

	proposal.ID = uuid.New().String()
	proposal.Status = tuxdocs.StatusPending
	proposal.CreatedAt = time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.proposals = append([]*tuxdocs.Proposal{proposal}, s.proposals...)
	return nil
}

// FindProposals retrieves proposals matching the filter, most recently
// added first.
func (s *ProposalService) FindProposals(ctx context.Context, filter tuxdocs.ProposalFilter) ([]*tuxdocs.Proposal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]*tuxdocs.Proposal, 0, len(s.proposals))
	for _, p := range s.proposals {
		if filter.DocID != nil && p.DocID != *filter.DocID {
			continue
		}
		if filter.Status != nil && p.Status != *filter.Status {
			continue
		}
		matched = append(matched, p)
	}
	return paginate(matched, filter.Offset, filter.Limit), nil
}

// UpdateProposal merges the given fields into the matching proposal.
// An unknown ID is a silent no-op.
func (s *ProposalService) UpdateProposal(ctx context.Context, id string, upd tuxdocs.ProposalUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.proposals {
		if p.ID != id {
			continue
		}
		if upd.Status != nil {
			p.Status = *upd.Status
		}
		if upd.Analysis != nil {
			analysis := *upd.Analysis
			p.Analysis = &analysis
		}
		return nil
	}
	return nil
}
