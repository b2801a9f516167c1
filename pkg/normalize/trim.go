package normalize

import "strings"

// TrimBlankEdges removes contiguous whitespace-only lines from the start and
// end of text. Interior blank lines are preserved verbatim; only the edges
// are touched. An all-blank input trims to the empty string.
func TrimBlankEdges(text string) string {
	lines := strings.Split(text, "\n")

	for len(lines) > 0 && blank(lines[0]) {
		lines = lines[1:]
	}
	for len(lines) > 0 && blank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}

	return strings.Join(lines, "\n")
}
