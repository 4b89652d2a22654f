package main

import (
	"bufio"
	"fmt"
	"strings"
)

// Run executes the terminal command. It reads commands from stdin and
// feeds them to the simulated shell until EOF or "exit".
func (c *TerminalCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, "TuxDocs AI Kernel v0.1 (simulated). Type 'exit' to quit, 'clear' to reset history.")

	cwd := "~"
	var history []string

	scanner := bufio.NewScanner(deps.Stdin)
	for {
		fmt.Fprintf(deps.Stdout, "user@tuxdocs:%s$ ", cwd)
		if !scanner.Scan() {
			fmt.Fprintln(deps.Stdout)
			break
		}
		command := strings.TrimSpace(scanner.Text())
		if command == "" {
			continue
		}

		// A couple of commands are handled locally so the shell stays
		// responsive even when the backend is down.
		switch command {
		case "exit", "logout":
			return nil
		case "clear":
			history = nil
			continue
		}

		result := deps.Oracle.SimulateTerminal(deps.Ctx, history, command, cwd)
		if result.Output != "" {
			fmt.Fprintln(deps.Stdout, result.Output)
		}
		if result.Cwd != "" {
			cwd = result.Cwd
		}
		history = append(history, fmt.Sprintf("$ %s\n%s", command, result.Output))
	}

	return scanner.Err()
}
