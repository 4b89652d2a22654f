package tuxdocs

import "context"

// Fallback strings returned by oracle operations when the AI backend is
// degraded. They are part of the domain contract: a documentation
// browser must remain usable when the model is unreachable.
const (
	// SummaryFallback replaces an executive brief that could not be
	// generated.
	SummaryFallback = "Could not generate summary."

	// TerminalFallback replaces simulated terminal output when the
	// backend call fails. The working directory is left unchanged.
	TerminalFallback = "Terminal Error: Connection to AI Kernel failed."

	// ChatFallback is appended to a chat transcript when a message send
	// fails.
	ChatFallback = "There was an error connecting to the AI assistant. Please try again."
)

// ViewMode selects which rendition of a document a chat session is
// grounded in.
type ViewMode string

// ViewMode values.
const (
	ViewOriginal ViewMode = "original"
	ViewModern   ViewMode = "modern"
)

// WalkthroughStep is one step of a generated interactive lab. Command
// is empty when the step is purely conceptual. Steps are produced
// transiently per request and never persisted.
type WalkthroughStep struct {
	Title        string `json:"title"`
	Explanation  string `json:"explanation"`
	Command      string `json:"command"`
	Verification string `json:"verification"`
}

// TerminalResult is the outcome of one simulated terminal command.
// An empty Cwd means the working directory did not change. The
// simulated filesystem has no authoritative state anywhere: directory
// tracking is best effort.
type TerminalResult struct {
	Output string `json:"output"`
	Cwd    string `json:"cwd,omitempty"`
}

// Oracle is the single seam between the application and the external
// generative-language model.
//
// Oracle methods are deliberately infallible: every operation returns a
// usable value even when the backend is unreachable or returns garbage.
// Transport errors, timeouts, and malformed responses all degrade to
// the documented per-operation fallback. Failed calls are never retried
// and never surface as errors to callers.
//
// No ordering is guaranteed across independent oracle calls.
type Oracle interface {
	// SemanticSearch returns up to three document IDs from the catalog,
	// most relevant first. Only catalog metadata (ID, title,
	// description, category) is sent to the model, never content.
	// Degrades to an empty result.
	SemanticSearch(ctx context.Context, query string, catalog []*Document) []string

	// Summarize produces a short structured markdown brief of a
	// document body. Degrades to SummaryFallback.
	Summarize(ctx context.Context, content string) string

	// GenerateWalkthrough converts a document body into an ordered
	// sequence of lab steps. Degrades to an empty sequence.
	GenerateWalkthrough(ctx context.Context, content string) []WalkthroughStep

	// ModernizeDoc rewrites a legacy document body using modern
	// standards. Degrades to the input unchanged: content is never
	// lost.
	ModernizeDoc(ctx context.Context, content string) string

	// SimulateTerminal simulates one command against an imaginary
	// Linux box. Only the last five history lines are sent. Degrades
	// to TerminalFallback with no directory change.
	SimulateTerminal(ctx context.Context, history []string, command, cwd string) TerminalResult

	// AnalyzeProposal reviews an original/proposed content pair. Each
	// side is truncated to a bounded prefix before being sent. Degrades
	// to DefaultAnalysis.
	AnalyzeProposal(ctx context.Context, original, proposed string) Analysis

	// NewChatSession opens a conversation grounded in the document's
	// content. When mode is ViewModern and altContent is non-empty, the
	// session is grounded in altContent instead. Session creation is
	// the one oracle operation that can fail outright; message sends on
	// the returned session degrade to ChatFallback.
	NewChatSession(ctx context.Context, doc *Document, mode ViewMode, altContent string) (ChatSession, error)
}

// ChatSession is an ongoing conversation scoped to one document.
// Sessions are inherently sequential: each Send must wait for the prior
// response before the next is issued. Parallel sends on the same
// session produce undefined ordering.
type ChatSession interface {
	// Send submits one user message and returns the assistant reply.
	// Degrades to ChatFallback on any failure.
	Send(ctx context.Context, message string) string
}
