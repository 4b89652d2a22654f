package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	tuxdocs "github.com/jkantihub-ai/tuxdocs2"
	"github.com/jkantihub-ai/tuxdocs2/gemini"
	"github.com/jkantihub-ai/tuxdocs2/mem"
	"github.com/jkantihub-ai/tuxdocs2/ratelimit"
	tuxslog "github.com/jkantihub-ai/tuxdocs2/slog"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Services for end-to-end testing. Populated with defaults by Run
	// when left nil.
	Docs      tuxdocs.DocumentService
	Proposals tuxdocs.ProposalService
	Oracle    tuxdocs.Oracle
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("tuxdocs"),
		kong.Description("Browse classic Linux HOWTOs with an AI co-pilot."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'tuxdocs --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Global flags may precede the subcommand, so args[0] is not
	// reliable. Kong reports the resolved command as "name <arg> ...".
	cmd, _, _ := strings.Cut(kongCtx.Command(), " ")

	if m.Docs == nil {
		m.Docs = mem.NewDocumentService(mem.Seed())
	}
	if m.Proposals == nil {
		proposals := mem.NewProposalService()
		if err := proposals.CreateProposal(ctx, mem.SeedProposal()); err != nil {
			return fmt.Errorf("failed to seed proposals: %w", err)
		}
		m.Proposals = proposals
	}
	deps.Docs = m.Docs
	deps.Proposals = m.Proposals

	if m.Oracle == nil && needsOracle(cmd) {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		var oracle tuxdocs.Oracle = gemini.NewOracle(client.Models, client.Chats, cli.Model)
		oracle = ratelimit.NewOracle(oracle, cli.RPS)
		if cli.Verbose {
			logger := slog.New(slog.NewTextHandler(stderr, nil))
			oracle = tuxslog.NewLoggingOracle(oracle, logger)
		}
		m.Oracle = oracle
	}
	deps.Oracle = m.Oracle

	return kongCtx.Run(deps)
}

// needsOracle reports whether the command talks to the AI backend.
// Catalog and moderation commands work fully offline.
func needsOracle(cmd string) bool {
	switch cmd {
	case "search", "summarize", "walkthrough", "modernize", "terminal", "chat", "propose", "analyze", "serve":
		return true
	}
	return false
}
