package main

import (
	"fmt"

	tuxdocs "github.com/jkantihub-ai/tuxdocs2"
)

// Run executes the walkthrough command.
func (c *WalkthroughCmd) Run(deps *Dependencies) error {
	doc, err := deps.Docs.FindDocumentByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tuxdocs.ErrorMessage(err))
		return err
	}

	steps := deps.Oracle.GenerateWalkthrough(deps.Ctx, doc.Content)
	if len(steps) == 0 {
		fmt.Fprintln(deps.Stdout, "Could not generate a walkthrough for this document.")
		return nil
	}

	for i, step := range steps {
		fmt.Fprintf(deps.Stdout, "Step %d: %s\n", i+1, step.Title)
		fmt.Fprintf(deps.Stdout, "  %s\n", step.Explanation)
		fmt.Fprintf(deps.Stdout, "  $ %s\n", step.Command)
		if step.Verification != "" {
			fmt.Fprintf(deps.Stdout, "  Verify: %s\n", step.Verification)
		}
		fmt.Fprintln(deps.Stdout)
	}

	return nil
}
