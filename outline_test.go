package tuxdocs_test

import (
	"testing"

	tuxdocs "github.com/jkantihub-ai/tuxdocs2"
	"github.com/stretchr/testify/assert"
)

func TestOutline(t *testing.T) {
	t.Parallel()

	t.Run("extracts headings at every level", func(t *testing.T) {
		t.Parallel()

		content := `# Security HOWTO
## Introduction
### Physical Security
###### Fine Print`

		entries := tuxdocs.Outline(content)

		assert.Len(t, entries, 4)
		assert.Equal(t, 1, entries[0].Level)
		assert.Equal(t, "Security HOWTO", entries[0].Title)
		assert.Equal(t, 2, entries[1].Level)
		assert.Equal(t, 6, entries[3].Level)
	})

	t.Run("generates URL-safe anchors", func(t *testing.T) {
		t.Parallel()

		entries := tuxdocs.Outline("## Setting Up /etc/exports")

		assert.Len(t, entries, 1)
		assert.Equal(t, "setting-up-etcexports", entries[0].Anchor)
	})

	t.Run("deduplicates repeated headings", func(t *testing.T) {
		t.Parallel()

		entries := tuxdocs.Outline("## Examples\n\ntext\n\n## Examples")

		assert.Len(t, entries, 2)
		assert.Equal(t, "examples", entries[0].Anchor)
		assert.Equal(t, "examples-1", entries[1].Anchor)
	})

	t.Run("ignores shell comments inside code fences", func(t *testing.T) {
		t.Parallel()

		content := "# Real Heading\n\n```bash\n# not a heading\necho hi\n```\n"

		entries := tuxdocs.Outline(content)

		assert.Len(t, entries, 1)
		assert.Equal(t, "Real Heading", entries[0].Title)
	})

	t.Run("returns nil for empty or heading-free content", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, tuxdocs.Outline(""))
		assert.Nil(t, tuxdocs.Outline("plain prose with no structure"))
	})
}
