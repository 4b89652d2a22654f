package main_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tuxdocs "github.com/jkantihub-ai/tuxdocs2"
	main "github.com/jkantihub-ai/tuxdocs2/cmd/tuxdocs"
	"github.com/jkantihub-ai/tuxdocs2/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("list works offline against the seeded catalog", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"list"}, strings.NewReader(""), stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "security-howto")
	})

	t.Run("no command prints help and errors", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), nil, strings.NewReader(""), stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("terminal session tracks cwd and exits on request", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Oracle = &mock.Oracle{
			SimulateTerminalFn: func(_ context.Context, history []string, command, cwd string) tuxdocs.TerminalResult {
				if command == "cd /etc" {
					return tuxdocs.TerminalResult{Output: "", Cwd: "/etc"}
				}
				return tuxdocs.TerminalResult{Output: "passwd  hosts", Cwd: cwd}
			},
		}

		stdin := strings.NewReader("cd /etc\nls\nexit\n")
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"terminal"}, stdin, stdout, stderr)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "user@tuxdocs:~$")
		assert.Contains(t, output, "user@tuxdocs:/etc$")
		assert.Contains(t, output, "passwd  hosts")
	})

	t.Run("flag before command still runs it", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Oracle = &mock.Oracle{
			SimulateTerminalFn: func(_ context.Context, _ []string, _, cwd string) tuxdocs.TerminalResult {
				return tuxdocs.TerminalResult{Output: "ok", Cwd: cwd}
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--rps", "1", "terminal"}, strings.NewReader("ls\nexit\n"), stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "ok")
	})

	t.Run("summarize uses the injected oracle", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Oracle = &mock.Oracle{
			SummarizeFn: func(_ context.Context, content string) string {
				assert.NotEmpty(t, content)
				return "A short brief."
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"summarize", "nfs-howto"}, strings.NewReader(""), stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "A short brief.")
	})
}

// Not parallel: t.Setenv must control GEMINI_API_KEY.
func TestMain_Run_FlagBeforeCommandWiresOracle(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	m := main.NewMain()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	// The command needs the oracle even though args[0] is a flag; Run
	// must report the missing key instead of running with a nil oracle.
	err := m.Run(context.Background(), []string{"-v", "terminal"}, strings.NewReader("ls\n"), stdout, stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}
