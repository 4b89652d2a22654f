package gemini

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	tuxdocs "github.com/jkantihub-ai/tuxdocs2"
)

// terminalHistoryLimit bounds how many prior interaction lines are sent
// with each command.
const terminalHistoryLimit = 5

// cwdMarker matches the reserved inline marker the model is asked to
// emit after a directory change, e.g. {"cwd": "/etc"}.
var cwdMarker = regexp.MustCompile(`\{"cwd":\s*"(.*?)"\}`)

// SimulateTerminal simulates one command against an imaginary Linux
// box. The simulated filesystem has no authoritative state anywhere, so
// directory tracking is best effort: the marker emitted by the model
// wins, and a plain cd command falls back to its literal argument.
func (o *Oracle) SimulateTerminal(ctx context.Context, history []string, command, cwd string) tuxdocs.TerminalResult {
	if command == "" {
		return tuxdocs.TerminalResult{}
	}

	text := o.generate(ctx, BuildTerminalPrompt(history, command, cwd), nil)
	if text == "" {
		return tuxdocs.TerminalResult{Output: tuxdocs.TerminalFallback}
	}

	output, newCwd := ExtractCwd(text)
	if newCwd == "" {
		newCwd = cwdFromCommand(command)
	}
	return tuxdocs.TerminalResult{Output: output, Cwd: newCwd}
}

// ExtractCwd scans generated terminal output for the reserved cwd
// marker, strips it, and returns the cleaned output plus the new
// working directory (empty when no marker is present).
func ExtractCwd(text string) (output, cwd string) {
	if m := cwdMarker.FindStringSubmatch(text); m != nil {
		cwd = m[1]
		text = strings.Replace(text, m[0], "", 1)
	}
	return strings.TrimSpace(text), cwd
}

// cwdFromCommand guesses the new working directory for a bare cd
// command when the model supplied no marker. Heuristic only.
func cwdFromCommand(command string) string {
	if !strings.HasPrefix(command, "cd ") {
		return ""
	}
	fields := strings.Fields(command)
	if len(fields) < 2 {
		return ""
	}
	return fields[1]
}

// BuildTerminalPrompt builds the terminal-simulation prompt. Only the
// last terminalHistoryLimit history lines are included.
func BuildTerminalPrompt(history []string, command, cwd string) string {
	if len(history) > terminalHistoryLimit {
		history = history[len(history)-terminalHistoryLimit:]
	}

	var sb strings.Builder
	sb.WriteString("You are a simulation of a Linux Ubuntu 24.04 LTS terminal.\n\n")
	fmt.Fprintf(&sb, "Current Working Directory: %s\n", cwd)
	sb.WriteString("User: root\n\n")
	sb.WriteString("Interaction History (last 5 lines):\n")
	sb.WriteString(strings.Join(history, "\n"))
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "User Command: %q\n\n", command)
	sb.WriteString("Task:\n")
	sb.WriteString("1. Simulate the stdout and stderr of the command accurately.\n")
	sb.WriteString("2. If the user runs 'cd', 'pushd', or 'popd', output the new directory in this specific JSON format at the end: {\"cwd\": \"/new/path\"}.\n")
	sb.WriteString("3. If the command installs packages (apt), simulate the progress bars briefly.\n")
	sb.WriteString("4. Be realistic. If a file doesn't exist, say so.\n\n")
	sb.WriteString("Output the raw terminal text response only.")
	return sb.String()
}
