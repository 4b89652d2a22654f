package main

import (
	"fmt"

	tuxdocs "github.com/jkantihub-ai/tuxdocs2"
)

// Run executes the proposals command.
func (c *ProposalsCmd) Run(deps *Dependencies) error {
	filter := tuxdocs.ProposalFilter{}
	if c.Status != "" {
		filter.Status = &c.Status
	}

	proposals, err := deps.Proposals.FindProposals(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tuxdocs.ErrorMessage(err))
		return err
	}

	if len(proposals) == 0 {
		fmt.Fprintln(deps.Stdout, "No proposals found.")
		return nil
	}

	for _, p := range proposals {
		risk := "unreviewed"
		if p.Analysis != nil {
			risk = string(p.Analysis.RiskLevel)
		}
		fmt.Fprintf(deps.Stdout, "%s  %-8s  %-6s  %-22s  by %s\n",
			p.ID, p.Status, risk, p.DocID, p.Author)
	}

	return nil
}
