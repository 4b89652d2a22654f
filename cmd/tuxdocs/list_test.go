package main_test

import (
	"bytes"
	"context"
	"testing"

	tuxdocs "github.com/jkantihub-ai/tuxdocs2"
	main "github.com/jkantihub-ai/tuxdocs2/cmd/tuxdocs"
	"github.com/jkantihub-ai/tuxdocs2/mem"
	"github.com/jkantihub-ai/tuxdocs2/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeps(docs tuxdocs.DocumentService, proposals tuxdocs.ProposalService, oracle tuxdocs.Oracle) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:       context.Background(),
		Stdout:    stdout,
		Stderr:    stderr,
		Docs:      docs,
		Proposals: proposals,
		Oracle:    oracle,
	}, stdout, stderr
}

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists the catalog with IDs and scores", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(mem.NewDocumentService(mem.Seed()), nil, nil)

		cmd := &main.ListCmd{}
		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "security-howto")
		assert.Contains(t, output, "dns-howto")
		assert.Contains(t, output, "Security HOWTO")
	})

	t.Run("filters by category", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(mem.NewDocumentService(mem.Seed()), nil, nil)

		cmd := &main.ListCmd{Category: "Networking"}
		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "nfs-howto")
		assert.Contains(t, output, "net-howto")
		assert.NotContains(t, output, "security-howto")
	})

	t.Run("shows helpful message when nothing matches", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(mem.NewDocumentService(nil), nil, nil)

		cmd := &main.ListCmd{}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "No documents")
	})
}

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints metadata without content by default", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(mem.NewDocumentService(mem.Seed()), nil, nil)

		cmd := &main.ShowCmd{ID: "cvs-rcs-howto"}
		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "CVS-RCS HOWTO")
		assert.Contains(t, output, "Git")
		assert.NotContains(t, output, "# CVS")
	})

	t.Run("returns not found for unknown ID", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps(mem.NewDocumentService(mem.Seed()), nil, nil)

		cmd := &main.ShowCmd{ID: "ghost"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, tuxdocs.ENOTFOUND, tuxdocs.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})
}

func TestSearchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints matched documents in oracle order", func(t *testing.T) {
		t.Parallel()

		oracle := &mock.Oracle{
			SemanticSearchFn: func(_ context.Context, query string, catalog []*tuxdocs.Document) []string {
				assert.Equal(t, "version control", query)
				assert.NotEmpty(t, catalog)
				return []string{"cvs-rcs-howto", "bash-prog-intro"}
			},
		}
		deps, stdout, _ := newDeps(mem.NewDocumentService(mem.Seed()), nil, oracle)

		cmd := &main.SearchCmd{Query: "version control"}
		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "cvs-rcs-howto")
		assert.Contains(t, output, "bash-prog-intro")
	})

	t.Run("reports no matches for empty result", func(t *testing.T) {
		t.Parallel()

		oracle := &mock.Oracle{
			SemanticSearchFn: func(context.Context, string, []*tuxdocs.Document) []string {
				return nil
			},
		}
		deps, stdout, _ := newDeps(mem.NewDocumentService(mem.Seed()), nil, oracle)

		cmd := &main.SearchCmd{Query: "quantum computing"}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "No matching documents")
	})
}
