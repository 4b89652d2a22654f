package mock

import (
	"context"

	tuxdocs "github.com/jkantihub-ai/tuxdocs2"
)

var _ tuxdocs.ProposalService = (*ProposalService)(nil)

// ProposalService is a mock implementation of tuxdocs.ProposalService.
type ProposalService struct {
	CreateProposalFn func(ctx context.Context, proposal *tuxdocs.Proposal) error
	FindProposalsFn  func(ctx context.Context, filter tuxdocs.ProposalFilter) ([]*tuxdocs.Proposal, error)
	UpdateProposalFn func(ctx context.Context, id string, upd tuxdocs.ProposalUpdate) error
}

func (s *ProposalService) CreateProposal(ctx context.Context, proposal *tuxdocs.Proposal) error {
	return s.CreateProposalFn(ctx, proposal)
}

func (s *ProposalService) FindProposals(ctx context.Context, filter tuxdocs.ProposalFilter) ([]*tuxdocs.Proposal, error) {
	return s.FindProposalsFn(ctx, filter)
}

func (s *ProposalService) UpdateProposal(ctx context.Context, id string, upd tuxdocs.ProposalUpdate) error {
	return s.UpdateProposalFn(ctx, id, upd)
}
