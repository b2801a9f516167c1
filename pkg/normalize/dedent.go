package normalize

import "strings"

// Dedent strips a uniform indentation from every line of joined. The amount
// is the minimum leading-space count across the non-blank lines of
// rawLiterals, the literal segments concatenated without any interpolated
// values. Measuring from literals only but applying to the full joined text
// is intentional: inserted value lines keep their indentation relative to
// the template's own baseline instead of resetting it.
//
// Lines shorter than the computed indentation collapse to empty rather than
// erroring. When every literal line is blank the indentation is zero and
// joined passes through untouched.
func Dedent(joined, rawLiterals string) string {
	indent := minIndent(rawLiterals)
	if indent == 0 {
		return joined
	}

	lines := strings.Split(joined, "\n")
	for i, line := range lines {
		if len(line) <= indent {
			lines[i] = ""
			continue
		}
		lines[i] = line[indent:]
	}
	return strings.Join(lines, "\n")
}

// minIndent returns the smallest leading-space count among non-blank lines
// of text, or zero when there is no non-blank line to measure.
func minIndent(text string) int {
	indent := -1
	for _, line := range strings.Split(text, "\n") {
		if blank(line) {
			continue
		}
		if n := leadingSpaces(line); indent == -1 || n < indent {
			indent = n
		}
	}
	if indent == -1 {
		return 0
	}
	return indent
}
