package outdent

import (
	"github.com/goliatone/go-outdent/pkg/normalize"
)

// ErrSegmentMismatch is re-exported so callers of the root API can test for
// the segment/value contract violation without importing pkg/normalize.
var ErrSegmentMismatch = normalize.ErrSegmentMismatch

// Normalize joins segments and values, dedents by the literal segments'
// minimum indentation, and trims blank edge lines. Segments must number
// exactly one more than values.
func Normalize(segments []string, values ...any) (string, error) {
	return normalize.Normalize(segments, values...)
}

// Text normalizes a block with no interpolations.
func Text(text string) string {
	return normalize.Text(text)
}

// Indent prefixes every non-blank line of text with n spaces.
func Indent(text string, n int) string {
	return normalize.Indent(text, n)
}
