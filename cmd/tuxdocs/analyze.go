package main

import (
	"fmt"

	tuxdocs "github.com/jkantihub-ai/tuxdocs2"
	"golang.org/x/sync/errgroup"
)

// analyzeConcurrency bounds parallel AI reviews; the rate limiter
// below the oracle still governs the actual request rate.
const analyzeConcurrency = 4

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	if c.All {
		return c.runAll(deps)
	}
	if c.ID == "" {
		fmt.Fprintln(deps.Stderr, "error: provide a proposal ID or use --all")
		return tuxdocs.Errorf(tuxdocs.EINVALID, "no proposal specified")
	}

	proposal, err := findProposal(deps, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tuxdocs.ErrorMessage(err))
		return err
	}

	analysis, err := c.analyzeOne(deps, proposal)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tuxdocs.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Proposal %s:\n", proposal.ID)
	printAnalysis(deps, analysis)
	return nil
}

func (c *AnalyzeCmd) runAll(deps *Dependencies) error {
	status := tuxdocs.StatusPending
	proposals, err := deps.Proposals.FindProposals(deps.Ctx, tuxdocs.ProposalFilter{Status: &status})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tuxdocs.ErrorMessage(err))
		return err
	}

	if len(proposals) == 0 {
		fmt.Fprintln(deps.Stdout, "No pending proposals.")
		return nil
	}

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(analyzeConcurrency)

	results := make([]*tuxdocs.Analysis, len(proposals))
	for i, proposal := range proposals {
		g.Go(func() error {
			analysis := deps.Oracle.AnalyzeProposal(ctx, proposal.OriginalContent, proposal.ProposedContent)
			if err := deps.Proposals.UpdateProposal(ctx, proposal.ID, tuxdocs.ProposalUpdate{Analysis: &analysis}); err != nil {
				return err
			}
			results[i] = &analysis
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tuxdocs.ErrorMessage(err))
		return err
	}

	for i, proposal := range proposals {
		fmt.Fprintf(deps.Stdout, "Proposal %s (%s):\n", proposal.ID, proposal.DocID)
		printAnalysis(deps, results[i])
	}
	return nil
}

func (c *AnalyzeCmd) analyzeOne(deps *Dependencies, proposal *tuxdocs.Proposal) (*tuxdocs.Analysis, error) {
	analysis := deps.Oracle.AnalyzeProposal(deps.Ctx, proposal.OriginalContent, proposal.ProposedContent)
	if err := deps.Proposals.UpdateProposal(deps.Ctx, proposal.ID, tuxdocs.ProposalUpdate{Analysis: &analysis}); err != nil {
		return nil, err
	}
	return &analysis, nil
}
