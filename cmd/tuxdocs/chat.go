package main

import (
	"bufio"
	"fmt"
	"strings"

	tuxdocs "github.com/jkantihub-ai/tuxdocs2"
)

// Run executes the chat command. It opens a session grounded in the
// document and relays stdin lines until EOF or "exit".
func (c *ChatCmd) Run(deps *Dependencies) error {
	doc, err := deps.Docs.FindDocumentByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tuxdocs.ErrorMessage(err))
		return err
	}

	mode := tuxdocs.ViewOriginal
	altContent := ""
	if c.Modern {
		if !doc.Legacy() {
			fmt.Fprintf(deps.Stderr, "error: %q is not a legacy document, nothing to modernize\n", doc.ID)
			return tuxdocs.Errorf(tuxdocs.EINVALID, "document %q is not legacy", doc.ID)
		}
		fmt.Fprintln(deps.Stdout, "Modernizing document for chat context...")
		mode = tuxdocs.ViewModern
		altContent = deps.Oracle.ModernizeDoc(deps.Ctx, doc.Content)
	}

	session, err := deps.Oracle.NewChatSession(deps.Ctx, doc, mode, altContent)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tuxdocs.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Chatting about %q. Type 'exit' to quit.\n", doc.Title)

	scanner := bufio.NewScanner(deps.Stdin)
	for {
		fmt.Fprint(deps.Stdout, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(deps.Stdout)
			break
		}
		message := strings.TrimSpace(scanner.Text())
		if message == "" {
			continue
		}
		if message == "exit" {
			return nil
		}

		fmt.Fprintln(deps.Stdout, session.Send(deps.Ctx, message))
	}

	return scanner.Err()
}
