// Package slog provides logging decorators for tuxdocs services.
package slog

import (
	"context"
	"log/slog"
	"time"

	tuxdocs "github.com/jkantihub-ai/tuxdocs2"
)

// Ensure LoggingOracle implements tuxdocs.Oracle.
var _ tuxdocs.Oracle = (*LoggingOracle)(nil)

// LoggingOracle wraps an Oracle with debug logging. Because oracle
// operations never fail outward, the interesting signal is whether a
// call degraded to its fallback; that is logged where detectable.
type LoggingOracle struct {
	next   tuxdocs.Oracle
	logger *slog.Logger
}

// NewLoggingOracle creates a new LoggingOracle.
func NewLoggingOracle(next tuxdocs.Oracle, logger *slog.Logger) *LoggingOracle {
	return &LoggingOracle{next: next, logger: logger}
}

// SemanticSearch logs the query and result count.
func (o *LoggingOracle) SemanticSearch(ctx context.Context, query string, catalog []*tuxdocs.Document) (ids []string) {
	defer func(begin time.Time) {
		o.logger.Info("semantic search",
			"query", query,
			"results", len(ids),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return o.next.SemanticSearch(ctx, query, catalog)
}

// Summarize logs the brief size and whether the call degraded.
func (o *LoggingOracle) Summarize(ctx context.Context, content string) (summary string) {
	defer func(begin time.Time) {
		o.logger.Info("summarize",
			"bytes", len(summary),
			"degraded", summary == tuxdocs.SummaryFallback,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return o.next.Summarize(ctx, content)
}

// GenerateWalkthrough logs the step count.
func (o *LoggingOracle) GenerateWalkthrough(ctx context.Context, content string) (steps []tuxdocs.WalkthroughStep) {
	defer func(begin time.Time) {
		o.logger.Info("walkthrough",
			"steps", len(steps),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return o.next.GenerateWalkthrough(ctx, content)
}

// ModernizeDoc logs whether the rewrite produced new content.
func (o *LoggingOracle) ModernizeDoc(ctx context.Context, content string) (rewritten string) {
	defer func(begin time.Time) {
		o.logger.Info("modernize",
			"bytes", len(rewritten),
			"degraded", rewritten == content,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return o.next.ModernizeDoc(ctx, content)
}

// SimulateTerminal logs the command and directory change.
func (o *LoggingOracle) SimulateTerminal(ctx context.Context, history []string, command, cwd string) (result tuxdocs.TerminalResult) {
	defer func(begin time.Time) {
		o.logger.Info("terminal",
			"command", command,
			"cwd", result.Cwd,
			"degraded", result.Output == tuxdocs.TerminalFallback,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return o.next.SimulateTerminal(ctx, history, command, cwd)
}

// AnalyzeProposal logs the verdict.
func (o *LoggingOracle) AnalyzeProposal(ctx context.Context, original, proposed string) (analysis tuxdocs.Analysis) {
	defer func(begin time.Time) {
		o.logger.Info("analyze proposal",
			"risk", string(analysis.RiskLevel),
			"score", analysis.QualityScore,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return o.next.AnalyzeProposal(ctx, original, proposed)
}

// NewChatSession logs session creation and delegates.
func (o *LoggingOracle) NewChatSession(ctx context.Context, doc *tuxdocs.Document, mode tuxdocs.ViewMode, altContent string) (tuxdocs.ChatSession, error) {
	session, err := o.next.NewChatSession(ctx, doc, mode, altContent)
	attrs := []any{"mode", string(mode), "err", err}
	if doc != nil {
		attrs = append(attrs, "doc", doc.ID)
	}
	o.logger.Info("chat session", attrs...)
	return session, err
}
