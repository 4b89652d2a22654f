package ratelimit_test

import (
	"context"
	"testing"
	"time"

	tuxdocs "github.com/jkantihub-ai/tuxdocs2"
	"github.com/jkantihub-ai/tuxdocs2/mock"
	"github.com/jkantihub-ai/tuxdocs2/ratelimit"
	"github.com/stretchr/testify/assert"
)

func TestOracle_DelegatesWithinLimit(t *testing.T) {
	t.Parallel()

	inner := &mock.Oracle{
		SummarizeFn: func(context.Context, string) string { return "brief" },
	}
	oracle := ratelimit.NewOracle(inner, 100)

	assert.Equal(t, "brief", oracle.Summarize(context.Background(), "doc"))
}

func TestOracle_InterruptedWaitDegrades(t *testing.T) {
	t.Parallel()

	called := false
	inner := &mock.Oracle{
		SummarizeFn: func(context.Context, string) string {
			called = true
			return "brief"
		},
		ModernizeDocFn: func(_ context.Context, content string) string {
			called = true
			return "rewritten"
		},
	}
	// Burst of 1 is consumed immediately; the second call would wait
	// far longer than the canceled context allows.
	oracle := ratelimit.NewOracle(inner, 0.0001)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_ = oracle.Summarize(ctx, "doc")
	called = false

	assert.Equal(t, "X", oracle.ModernizeDoc(ctx, "X"))
	assert.False(t, called)

	analysis := oracle.AnalyzeProposal(ctx, "a", "b")
	assert.Equal(t, tuxdocs.DefaultAnalysis(), analysis)

	result := oracle.SimulateTerminal(ctx, nil, "ls", "~")
	assert.Equal(t, tuxdocs.TerminalFallback, result.Output)
}
