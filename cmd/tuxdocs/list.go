package main

import (
	"fmt"

	tuxdocs "github.com/jkantihub-ai/tuxdocs2"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := tuxdocs.DocumentFilter{}
	if c.Category != "" {
		filter.Category = &c.Category
	}
	if c.Legacy {
		legacy := true
		filter.Legacy = &legacy
	}

	docs, err := deps.Docs.FindDocuments(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tuxdocs.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents found.")
		return nil
	}

	for _, doc := range docs {
		marker := "  "
		if doc.Legacy() {
			marker = "! "
		}
		fmt.Fprintf(deps.Stdout, "%s%-22s  %-20s  score %3d  %s\n",
			marker, doc.ID, doc.Category, doc.ObsolescenceScore, doc.Title)
	}

	return nil
}
