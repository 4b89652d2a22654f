package main_test

import (
	"context"
	"testing"

	tuxdocs "github.com/jkantihub-ai/tuxdocs2"
	main "github.com/jkantihub-ai/tuxdocs2/cmd/tuxdocs"
	"github.com/jkantihub-ai/tuxdocs2/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProposals(t *testing.T) (*mem.ProposalService, *tuxdocs.Proposal) {
	t.Helper()

	proposals := mem.NewProposalService()
	proposal := mem.SeedProposal()
	require.NoError(t, proposals.CreateProposal(context.Background(), proposal))
	return proposals, proposal
}

func TestApproveCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("approves a pending proposal", func(t *testing.T) {
		t.Parallel()

		proposals, proposal := seedProposals(t)
		deps, stdout, _ := newDeps(nil, proposals, nil)

		cmd := &main.ApproveCmd{ID: proposal.ID}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "approved")

		stored, err := proposals.FindProposals(context.Background(), tuxdocs.ProposalFilter{})
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.Equal(t, tuxdocs.StatusApproved, stored[0].Status)
	})

	t.Run("refuses to re-moderate", func(t *testing.T) {
		t.Parallel()

		proposals, proposal := seedProposals(t)
		deps, _, _ := newDeps(nil, proposals, nil)

		require.NoError(t, (&main.ApproveCmd{ID: proposal.ID}).Run(deps))

		err := (&main.RejectCmd{ID: proposal.ID}).Run(deps)
		require.Error(t, err)
		assert.Equal(t, tuxdocs.EINVALID, tuxdocs.ErrorCode(err))
	})

	t.Run("returns not found for unknown ID", func(t *testing.T) {
		t.Parallel()

		proposals, _ := seedProposals(t)
		deps, _, stderr := newDeps(nil, proposals, nil)

		err := (&main.ApproveCmd{ID: "ghost"}).Run(deps)
		require.Error(t, err)
		assert.Equal(t, tuxdocs.ENOTFOUND, tuxdocs.ErrorCode(err))
		assert.Contains(t, stderr.String(), "not found")
	})
}

func TestProposalsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists proposals with status and risk", func(t *testing.T) {
		t.Parallel()

		proposals, proposal := seedProposals(t)
		deps, stdout, _ := newDeps(nil, proposals, nil)

		cmd := &main.ProposalsCmd{}
		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, proposal.ID)
		assert.Contains(t, output, tuxdocs.StatusPending)
		assert.Contains(t, output, string(tuxdocs.RiskLow))
		assert.Contains(t, output, "penguin_lover_99")
	})

	t.Run("status filter excludes other proposals", func(t *testing.T) {
		t.Parallel()

		proposals, _ := seedProposals(t)
		deps, stdout, _ := newDeps(nil, proposals, nil)

		cmd := &main.ProposalsCmd{Status: tuxdocs.StatusApproved}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "No proposals")
	})
}
