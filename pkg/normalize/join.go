package normalize

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSegmentMismatch signals a template whose segment and value counts break
// the len(segments) == len(values)+1 contract.
var ErrSegmentMismatch = errors.New("normalize: segment count must be one more than value count")

// Join merges literal segments and interpolated values into a single
// multi-line string. The first line of a multi-line value continues the line
// the interpolation appears on; every later line is prefixed with the leading
// spaces of that line, so inserted blocks stay visually nested at the column
// of the interpolation point. Falsy values are elided entirely and their
// neighboring segments meet as if the slot did not exist.
//
// Segments and values interleave as L[0] V[0] L[1] ... V[n-1] L[n], which
// requires exactly one more segment than values. Join fails fast with
// ErrSegmentMismatch otherwise, rather than silently truncating either list.
func Join(segments []string, values []any) (string, error) {
	if len(segments) == 0 && len(values) == 0 {
		return "", nil
	}
	if len(segments) != len(values)+1 {
		return "", fmt.Errorf("%w: %d segments, %d values", ErrSegmentMismatch, len(segments), len(values))
	}

	var acc []string
	for i, value := range values {
		block := strings.Split(segments[i], "\n")
		if !Falsy(value) {
			text, err := Stringify(value)
			if err != nil {
				return "", err
			}
			block = appendValue(block, text)
		}
		acc = squish(acc, block)
	}
	acc = squish(acc, strings.Split(segments[len(segments)-1], "\n"))

	return strings.Join(acc, "\n"), nil
}

// appendValue splices a stringified value onto the last line of a segment
// block. Continuation lines inherit the insertion line's indentation.
func appendValue(block []string, text string) []string {
	last := len(block) - 1
	offset := leadingSpaces(block[last])

	lines := strings.Split(text, "\n")
	block[last] += lines[0]
	if len(lines) == 1 {
		return block
	}

	pad := strings.Repeat(" ", offset)
	for _, line := range lines[1:] {
		block = append(block, pad+line)
	}
	return block
}

// squish merges two line lists mid-line: the first line of block continues
// the last accumulated line, the rest append as new lines.
func squish(acc, block []string) []string {
	if len(acc) == 0 {
		return block
	}
	acc[len(acc)-1] += block[0]
	return append(acc, block[1:]...)
}
