package mock

import (
	"context"

	tuxdocs "github.com/jkantihub-ai/tuxdocs2"
)

var _ tuxdocs.Oracle = (*Oracle)(nil)

// Oracle is a mock implementation of tuxdocs.Oracle.
type Oracle struct {
	SemanticSearchFn      func(ctx context.Context, query string, catalog []*tuxdocs.Document) []string
	SummarizeFn           func(ctx context.Context, content string) string
	GenerateWalkthroughFn func(ctx context.Context, content string) []tuxdocs.WalkthroughStep
	ModernizeDocFn        func(ctx context.Context, content string) string
	SimulateTerminalFn    func(ctx context.Context, history []string, command, cwd string) tuxdocs.TerminalResult
	AnalyzeProposalFn     func(ctx context.Context, original, proposed string) tuxdocs.Analysis
	NewChatSessionFn      func(ctx context.Context, doc *tuxdocs.Document, mode tuxdocs.ViewMode, altContent string) (tuxdocs.ChatSession, error)
}

func (o *Oracle) SemanticSearch(ctx context.Context, query string, catalog []*tuxdocs.Document) []string {
	return o.SemanticSearchFn(ctx, query, catalog)
}

func (o *Oracle) Summarize(ctx context.Context, content string) string {
	return o.SummarizeFn(ctx, content)
}

func (o *Oracle) GenerateWalkthrough(ctx context.Context, content string) []tuxdocs.WalkthroughStep {
	return o.GenerateWalkthroughFn(ctx, content)
}

func (o *Oracle) ModernizeDoc(ctx context.Context, content string) string {
	return o.ModernizeDocFn(ctx, content)
}

func (o *Oracle) SimulateTerminal(ctx context.Context, history []string, command, cwd string) tuxdocs.TerminalResult {
	return o.SimulateTerminalFn(ctx, history, command, cwd)
}

func (o *Oracle) AnalyzeProposal(ctx context.Context, original, proposed string) tuxdocs.Analysis {
	return o.AnalyzeProposalFn(ctx, original, proposed)
}

func (o *Oracle) NewChatSession(ctx context.Context, doc *tuxdocs.Document, mode tuxdocs.ViewMode, altContent string) (tuxdocs.ChatSession, error) {
	return o.NewChatSessionFn(ctx, doc, mode, altContent)
}

var _ tuxdocs.ChatSession = (*ChatSession)(nil)

// ChatSession is a mock implementation of tuxdocs.ChatSession.
type ChatSession struct {
	SendFn func(ctx context.Context, message string) string
}

func (s *ChatSession) Send(ctx context.Context, message string) string {
	return s.SendFn(ctx, message)
}
