package main

import (
	"fmt"
	"strings"

	tuxdocs "github.com/jkantihub-ai/tuxdocs2"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	doc, err := deps.Docs.FindDocumentByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tuxdocs.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s\n", doc.Title)
	fmt.Fprintf(deps.Stdout, "Category:          %s\n", doc.Category)
	fmt.Fprintf(deps.Stdout, "Last updated:      %s\n", doc.LastUpdated)
	fmt.Fprintf(deps.Stdout, "Obsolescence:      %d/100\n", doc.ObsolescenceScore)
	fmt.Fprintf(deps.Stdout, "Modern equivalent: %s\n", doc.ModernEquivalent)
	fmt.Fprintf(deps.Stdout, "Source:            %s\n", doc.SourceURL)
	fmt.Fprintf(deps.Stdout, "\n%s\n", doc.Description)

	if c.Outline {
		fmt.Fprintln(deps.Stdout)
		for _, entry := range tuxdocs.Outline(doc.Content) {
			fmt.Fprintf(deps.Stdout, "%s%s\n", strings.Repeat("  ", entry.Level-1), entry.Title)
		}
	}

	if c.Full {
		fmt.Fprintf(deps.Stdout, "\n%s", doc.Content)
	}

	return nil
}
