package main

import (
	"fmt"

	tuxdocs "github.com/jkantihub-ai/tuxdocs2"
)

// Run executes the approve command.
func (c *ApproveCmd) Run(deps *Dependencies) error {
	return moderate(deps, c.ID, tuxdocs.StatusApproved)
}

// Run executes the reject command.
func (c *RejectCmd) Run(deps *Dependencies) error {
	return moderate(deps, c.ID, tuxdocs.StatusRejected)
}

// moderate applies a one-way status transition to a pending proposal.
func moderate(deps *Dependencies, id, status string) error {
	proposal, err := findProposal(deps, id)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tuxdocs.ErrorMessage(err))
		return err
	}

	if proposal.Status != tuxdocs.StatusPending {
		fmt.Fprintf(deps.Stderr, "error: proposal %s is already %s\n", id, proposal.Status)
		return tuxdocs.Errorf(tuxdocs.EINVALID, "proposal %q is already %s", id, proposal.Status)
	}

	if err := deps.Proposals.UpdateProposal(deps.Ctx, id, tuxdocs.ProposalUpdate{Status: &status}); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tuxdocs.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Proposal %s %s.\n", id, status)
	return nil
}

func findProposal(deps *Dependencies, id string) (*tuxdocs.Proposal, error) {
	proposals, err := deps.Proposals.FindProposals(deps.Ctx, tuxdocs.ProposalFilter{})
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
