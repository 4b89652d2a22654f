package mem_test

import (
	"context"
	"testing"

	tuxdocs "github.com/jkantihub-ai/tuxdocs2"
	"github.com/jkantihub-ai/tuxdocs2/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProposal(docID string) *tuxdocs.Proposal {
	return &tuxdocs.Proposal{
		DocID:           docID,
		DocTitle:        "Doc " + docID,
		OriginalContent: "original",
		ProposedContent: "proposed",
		Author:          "tux",
	}
}

func TestProposalService_CreateProposal(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID, pending status, and timestamp", func(t *testing.T) {
		t.Parallel()

		svc := mem.NewProposalService()
		p := newProposal("a")

		require.NoError(t, svc.CreateProposal(context.Background(), p))

		assert.NotEmpty(t, p.ID)
		assert.Equal(t, tuxdocs.StatusPending, p.Status)
		assert.False(t, p.CreatedAt.IsZero())
		assert.Nil(t, p.Analysis)
	})

	t.Run("inserts at the head of the list", func(t *testing.T) {
		t.Parallel()

		svc := mem.NewProposalService()
		first := newProposal("a")
		second := newProposal("b")
		require.NoError(t, svc.CreateProposal(context.Background(), first))
		require.NoError(t, svc.CreateProposal(context.Background(), second))

		proposals, err := svc.FindProposals(context.Background(), tuxdocs.ProposalFilter{})

		require.NoError(t, err)
		require.Len(t, proposals, 2)
		assert.Equal(t, second.ID, proposals[0].ID)
		assert.Equal(t, first.ID, proposals[1].ID)
	})

	t.Run("rejects invalid proposal", func(t *testing.T) {
		t.Parallel()

		svc := mem.NewProposalService()
		err := svc.CreateProposal(context.Background(), &tuxdocs.Proposal{})

		require.Error(t, err)
		assert.Equal(t, tuxdocs.EINVALID, tuxdocs.ErrorCode(err))
	})
}

func TestProposalService_UpdateProposal(t *testing.T) {
	t.Parallel()

	t.Run("status transition is visible to a subsequent list", func(t *testing.T) {
		t.Parallel()

		svc := mem.NewProposalService()
		p := newProposal("a")
		require.NoError(t, svc.CreateProposal(context.Background(), p))

		approved := tuxdocs.StatusApproved
		require.NoError(t, svc.UpdateProposal(context.Background(), p.ID, tuxdocs.ProposalUpdate{Status: &approved}))

		proposals, err := svc.FindProposals(context.Background(), tuxdocs.ProposalFilter{})
		require.NoError(t, err)
		require.Len(t, proposals, 1)
		assert.Equal(t, tuxdocs.StatusApproved, proposals[0].Status)
		assert.Equal(t, p.DocID, proposals[0].DocID)
		assert.Equal(t, p.Author, proposals[0].Author)
	})

	t.Run("attaches analysis without touching other fields", func(t *testing.T) {
		t.Parallel()

		svc := mem.NewProposalService()
		p := newProposal("a")
		require.NoError(t, svc.CreateProposal(context.Background(), p))

		analysis := tuxdocs.Analysis{Summary: "ok", RiskLevel: tuxdocs.RiskLow, QualityScore: 8}
		require.NoError(t, svc.UpdateProposal(context.Background(), p.ID, tuxdocs.ProposalUpdate{Analysis: &analysis}))

		proposals, err := svc.FindProposals(context.Background(), tuxdocs.ProposalFilter{})
		require.NoError(t, err)
		require.Len(t, proposals, 1)
		require.NotNil(t, proposals[0].Analysis)
		assert.Equal(t, 8, proposals[0].Analysis.QualityScore)
		assert.Equal(t, tuxdocs.StatusPending, proposals[0].Status)
	})

	t.Run("unknown ID is a silent no-op", func(t *testing.T) {
		t.Parallel()

		svc := mem.NewProposalService()
		p := newProposal("a")
		require.NoError(t, svc.CreateProposal(context.Background(), p))

		approved := tuxdocs.StatusApproved
		require.NoError(t, svc.UpdateProposal(context.Background(), "no-such-id", tuxdocs.ProposalUpdate{Status: &approved}))

		proposals, err := svc.FindProposals(context.Background(), tuxdocs.ProposalFilter{})
		require.NoError(t, err)
		require.Len(t, proposals, 1)
		assert.Equal(t, tuxdocs.StatusPending, proposals[0].Status)
	})
}

func TestProposalService_FindProposals_FilterByStatus(t *testing.T) {
	t.Parallel()

	svc := mem.NewProposalService()
	a := newProposal("a")
	b := newProposal("b")
	require.NoError(t, svc.CreateProposal(context.Background(), a))
	require.NoError(t, svc.CreateProposal(context.Background(), b))

	rejected := tuxdocs.StatusRejected
	require.NoError(t, svc.UpdateProposal(context.Background(), a.ID, tuxdocs.ProposalUpdate{Status: &rejected}))

	pending := tuxdocs.StatusPending
	proposals, err := svc.FindProposals(context.Background(), tuxdocs.ProposalFilter{Status: &pending})

	require.NoError(t, err)
	require.Len(t, proposals, 1)
	assert.Equal(t, b.ID, proposals[0].ID)
}
