package main

import (
	"fmt"
	"os"

	tuxdocs "github.com/jkantihub-ai/tuxdocs2"
)

// Run executes the propose command.
func (c *ProposeCmd) Run(deps *Dependencies) error {
	doc, err := deps.Docs.FindDocumentByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tuxdocs.ErrorMessage(err))
		return err
	}

	content, err := os.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot read %q\n", c.File)
		return err
	}

	proposal := &tuxdocs.Proposal{
		DocID:           doc.ID,
		DocTitle:        doc.Title,
		OriginalContent: doc.Content,
		ProposedContent: string(content),
		Author:          c.Author,
	}
	if err := deps.Proposals.CreateProposal(deps.Ctx, proposal); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tuxdocs.ErrorMessage(err))
		return err
	}

	analysis := deps.Oracle.AnalyzeProposal(deps.Ctx, proposal.OriginalContent, proposal.ProposedContent)
	if err := deps.Proposals.UpdateProposal(deps.Ctx, proposal.ID, tuxdocs.ProposalUpdate{Analysis: &analysis}); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tuxdocs.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Proposal %s created for %q.\n", proposal.ID, doc.Title)
	printAnalysis(deps, &analysis)
	return nil
}

func printAnalysis(deps *Dependencies, analysis *tuxdocs.Analysis) {
	fmt.Fprintf(deps.Stdout, "  Risk:    %s\n", analysis.RiskLevel)
	fmt.Fprintf(deps.Stdout, "  Quality: %d/10\n", analysis.QualityScore)
	fmt.Fprintf(deps.Stdout, "  Summary: %s\n", analysis.Summary)
	if analysis.Suggestions != "" {
		fmt.Fprintf(deps.Stdout, "  Notes:   %s\n", analysis.Suggestions)
	}
}
