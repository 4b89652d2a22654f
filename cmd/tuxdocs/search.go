package main

import (
	"fmt"

	tuxdocs "github.com/jkantihub-ai/tuxdocs2"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	catalog, err := deps.Docs.FindDocuments(deps.Ctx, tuxdocs.DocumentFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tuxdocs.ErrorMessage(err))
		return err
	}

	ids := deps.Oracle.SemanticSearch(deps.Ctx, c.Query, catalog)
	if len(ids) == 0 {
		fmt.Fprintln(deps.Stdout, "No matching documents.")
		return nil
	}

	for _, id := range ids {
		doc, err := deps.Docs.FindDocumentByID(deps.Ctx, id)
		if err != nil {
			continue
		}
		fmt.Fprintf(deps.Stdout, "%-22s  %s\n", doc.ID, doc.Title)
	}

	return nil
}
