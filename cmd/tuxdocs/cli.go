package main

import (
	"context"
	"io"

	tuxdocs "github.com/jkantihub-ai/tuxdocs2"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Docs      tuxdocs.DocumentService
	Proposals tuxdocs.ProposalService
	Oracle    tuxdocs.Oracle
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Model   string  `help:"Gemini model to use" default:"gemini-2.5-flash"`
	RPS     float64 `name:"rps" help:"Maximum AI requests per second" default:"2"`
	Verbose bool    `short:"v" help:"Log AI calls to stderr"`

	List        ListCmd        `cmd:"" help:"List documents in the catalog"`
	Show        ShowCmd        `cmd:"" help:"Show a document"`
	Search      SearchCmd      `cmd:"" help:"Find documents matching a natural language query"`
	Summarize   SummarizeCmd   `cmd:"" help:"Summarize a document"`
	Walkthrough WalkthroughCmd `cmd:"" help:"Generate a hands-on walkthrough for a document"`
	Modernize   ModernizeCmd   `cmd:"" help:"Rewrite a legacy document for current systems"`
	Terminal    TerminalCmd    `cmd:"" help:"Open a simulated legacy Linux terminal"`
	Chat        ChatCmd        `cmd:"" help:"Chat with an assistant about a document"`
	Propose     ProposeCmd     `cmd:"" help:"Submit an update proposal for a document"`
	Proposals   ProposalsCmd   `cmd:"" help:"List update proposals"`
	Approve     ApproveCmd     `cmd:"" help:"Approve a pending proposal"`
	Reject      RejectCmd      `cmd:"" help:"Reject a pending proposal"`
	Analyze     AnalyzeCmd     `cmd:"" help:"Run AI review on pending proposals"`
	Serve       ServeCmd       `cmd:"" help:"Start the HTTP API server"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Category string `short:"c" help:"Filter by category"`
	Legacy   bool   `help:"Only documents past the legacy threshold"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID      string `arg:"" help:"Document ID"`
	Full    bool   `help:"Show full document content"`
	Outline bool   `help:"Show the document's table of contents"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Natural language query"`
}

// SummarizeCmd is the "summarize" subcommand.
type SummarizeCmd struct {
	ID string `arg:"" help:"Document ID"`
}

// WalkthroughCmd is the "walkthrough" subcommand.
type WalkthroughCmd struct {
	ID string `arg:"" help:"Document ID"`
}

// ModernizeCmd is the "modernize" subcommand.
type ModernizeCmd struct {
	ID string `arg:"" help:"Document ID"`
}

// TerminalCmd is the "terminal" subcommand.
type TerminalCmd struct{}

// ChatCmd is the "chat" subcommand.
type ChatCmd struct {
	ID     string `arg:"" help:"Document ID"`
	Modern bool   `help:"Ground the chat in a modernized rewrite instead of the original"`
}

// ProposeCmd is the "propose" subcommand.
type ProposeCmd struct {
	ID     string `arg:"" help:"Document ID"`
	File   string `arg:"" type:"existingfile" help:"File with the proposed content"`
	Author string `short:"a" default:"anonymous" help:"Proposal author"`
}

// ProposalsCmd is the "proposals" subcommand.
type ProposalsCmd struct {
	Status string `short:"s" help:"Filter by status (pending, approved, rejected)"`
}

// ApproveCmd is the "approve" subcommand.
type ApproveCmd struct {
	ID string `arg:"" help:"Proposal ID"`
}

// RejectCmd is the "reject" subcommand.
type RejectCmd struct {
	ID string `arg:"" help:"Proposal ID"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	ID  string `arg:"" optional:"" help:"Proposal ID"`
	All bool   `help:"Analyze every pending proposal"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8080" help:"Listen address"`
}
