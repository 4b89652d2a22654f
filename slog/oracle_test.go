package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	tuxdocs "github.com/jkantihub-ai/tuxdocs2"
	"github.com/jkantihub-ai/tuxdocs2/mock"
	tuxslog "github.com/jkantihub-ai/tuxdocs2/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingOracle_SemanticSearch(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.Oracle{
		SemanticSearchFn: func(context.Context, string, []*tuxdocs.Document) []string {
			return []string{"nfs-howto"}
		},
	}

	oracle := tuxslog.NewLoggingOracle(inner, logger)
	ids := oracle.SemanticSearch(context.Background(), "file sharing", nil)

	assert.Equal(t, []string{"nfs-howto"}, ids)
	output := buf.String()
	assert.Contains(t, output, "semantic search")
	assert.Contains(t, output, "query=\"file sharing\"")
	assert.Contains(t, output, "results=1")
	assert.Contains(t, output, "duration=")
}

func TestLoggingOracle_Summarize_MarksDegraded(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.Oracle{
		SummarizeFn: func(context.Context, string) string {
			return tuxdocs.SummaryFallback
		},
	}

	oracle := tuxslog.NewLoggingOracle(inner, logger)
	summary := oracle.Summarize(context.Background(), "doc")

	assert.Equal(t, tuxdocs.SummaryFallback, summary)
	assert.Contains(t, buf.String(), "degraded=true")
}

func TestLoggingOracle_ModernizeDoc_PassesThrough(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.Oracle{
		ModernizeDocFn: func(_ context.Context, content string) string {
			return "# Modern\n" + content
		},
	}

	oracle := tuxslog.NewLoggingOracle(inner, logger)
	rewritten := oracle.ModernizeDoc(context.Background(), "# Old")

	assert.Equal(t, "# Modern\n# Old", rewritten)
	assert.Contains(t, buf.String(), "degraded=false")
}
