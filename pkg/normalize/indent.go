package normalize

import "strings"

// Indent prefixes every non-blank line of text with n spaces. Blank lines
// pass through unchanged so the operation never manufactures trailing
// whitespace. It is the inverse of Dedent's application step and backs the
// indent template filter.
func Indent(text string, n int) string {
	if n <= 0 || text == "" {
		return text
	}

	pad := strings.Repeat(" ", n)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if blank(line) {
			continue
		}
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}
