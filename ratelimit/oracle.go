// Package ratelimit provides a token-bucket rate-limiting decorator
// for the oracle, protecting the Gemini API quota from bursty callers
// such as the simulated terminal.
package ratelimit

import (
	"context"

	tuxdocs "github.com/jkantihub-ai/tuxdocs2"
	"golang.org/x/time/rate"
)

// Ensure Oracle implements tuxdocs.Oracle.
var _ tuxdocs.Oracle = (*Oracle)(nil)

// Oracle wraps an Oracle with a shared rate limiter. If the wait is
// interrupted the call degrades to its fallback, preserving the
// infallible oracle contract.
type Oracle struct {
	next    tuxdocs.Oracle
	limiter *rate.Limiter
}

// NewOracle creates a rate-limited Oracle allowing rps requests per
// second with a burst of 1.
func NewOracle(next tuxdocs.Oracle, rps float64) *Oracle {
	return &Oracle{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

func (o *Oracle) SemanticSearch(ctx context.Context, query string, catalog []*tuxdocs.Document) []string {
	if err := o.limiter.Wait(ctx); err != nil {
		return nil
	}
	return o.next.SemanticSearch(ctx, query, catalog)
}

func (o *Oracle) Summarize(ctx context.Context, content string) string {
	if err := o.limiter.Wait(ctx); err != nil {
		return tuxdocs.SummaryFallback
	}
	return o.next.Summarize(ctx, content)
}

func (o *Oracle) GenerateWalkthrough(ctx context.Context, content string) []tuxdocs.WalkthroughStep {
	if err := o.limiter.Wait(ctx); err != nil {
		return nil
	}
	return o.next.GenerateWalkthrough(ctx, content)
}

func (o *Oracle) ModernizeDoc(ctx context.Context, content string) string {
	if err := o.limiter.Wait(ctx); err != nil {
		return content
	}
	return o.next.ModernizeDoc(ctx, content)
}

func (o *Oracle) SimulateTerminal(ctx context.Context, history []string, command, cwd string) tuxdocs.TerminalResult {
	if err := o.limiter.Wait(ctx); err != nil {
		return tuxdocs.TerminalResult{Output: tuxdocs.TerminalFallback}
	}
	return o.next.SimulateTerminal(ctx, history, command, cwd)
}

func (o *Oracle) AnalyzeProposal(ctx context.Context, original, proposed string) tuxdocs.Analysis {
	if err := o.limiter.Wait(ctx); err != nil {
		return tuxdocs.DefaultAnalysis()
	}
	return o.next.AnalyzeProposal(ctx, original, proposed)
}

// NewChatSession is not rate limited: session creation is cheap and
// message sends flow through the live chat, not this decorator.
func (o *Oracle) NewChatSession(ctx context.Context, doc *tuxdocs.Document, mode tuxdocs.ViewMode, altContent string) (tuxdocs.ChatSession, error) {
	return o.next.NewChatSession(ctx, doc, mode, altContent)
}
