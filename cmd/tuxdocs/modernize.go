package main

import (
	"fmt"

	tuxdocs "github.com/jkantihub-ai/tuxdocs2"
)

// Run executes the modernize command.
func (c *ModernizeCmd) Run(deps *Dependencies) error {
	doc, err := deps.Docs.FindDocumentByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tuxdocs.ErrorMessage(err))
		return err
	}

	if !doc.Legacy() {
		fmt.Fprintf(deps.Stderr, "error: %q is not a legacy document (score %d, threshold %d)\n",
			doc.ID, doc.ObsolescenceScore, tuxdocs.LegacyThreshold)
		return tuxdocs.Errorf(tuxdocs.EINVALID, "document %q is not legacy", doc.ID)
	}

	content := deps.Oracle.ModernizeDoc(deps.Ctx, doc.Content)
	fmt.Fprint(deps.Stdout, content)
	return nil
}
