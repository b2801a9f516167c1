package normalize

import "strings"

// Normalize runs the full pipeline over a template: join segments and
// values, dedent by the literal segments' minimum indentation, then trim
// blank edge lines. It is the single entry point most callers need.
//
// The call is pure: identical inputs always produce identical output and no
// state survives the invocation, so concurrent use needs no coordination.
func Normalize(segments []string, values ...any) (string, error) {
	joined, err := Join(segments, values)
	if err != nil {
		return "", err
	}
	return TrimBlankEdges(Dedent(joined, strings.Join(segments, ""))), nil
}

// Text normalizes a block with no interpolations: the minimum indentation of
// its non-blank lines is stripped and blank edge lines are removed. It is
// the single-segment form of Normalize and cannot fail.
func Text(text string) string {
	return TrimBlankEdges(Dedent(text, text))
}
