package tuxdocs

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// OutlineEntry is one heading in a document's table of contents.
type OutlineEntry struct {
	Level  int    `json:"level"`
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
}

var (
	headingPattern = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)
	fencePattern   = regexp.MustCompile("(?s)```.*?```")
)

// Outline extracts the heading structure of a markdown document. The
// classic HOWTOs are heading-heavy, so this drives the reader's table
// of contents. Anchors are URL-safe and deduplicated with numeric
// suffixes.
func Outline(content string) []OutlineEntry {
	if content == "" {
		return nil
	}

	// Fenced code blocks may contain shell comments that look like
	// headings.
	stripped := fencePattern.ReplaceAllString(content, "")

	matches := headingPattern.FindAllStringSubmatch(stripped, -1)
	if len(matches) == 0 {
		return nil
	}

	entries := make([]OutlineEntry, 0, len(matches))
	seen := make(map[string]int)

	for _, match := range matches {
		title := strings.TrimSpace(match[2])
		anchor := anchorFor(title)
		if n, ok := seen[anchor]; ok {
			seen[anchor] = n + 1
			anchor = anchor + "-" + strconv.Itoa(n)
		} else {
			seen[anchor] = 1
		}

		entries = append(entries, OutlineEntry{
			Level:  len(match[1]),
			Title:  title,
			Anchor: anchor,
		})
	}

	return entries
}

// anchorFor lowercases the title, keeps letters and digits, and joins
// words with single hyphens.
func anchorFor(title string) string {
	var sb strings.Builder
	hyphen := false

	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
			hyphen = false
		case unicode.IsSpace(r) || r == '-':
			if !hyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				hyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}
