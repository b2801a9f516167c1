// Package normalize implements the templated-text normalization pipeline:
// joining literal segments with interpolated values, stripping the common
// literal indentation, and trimming blank edge lines.
//
// The pipeline runs three stages in fixed order. Join merges segments and
// values into one multi-line string, aligning continuation lines of
// multi-line values with the column where the interpolation occurred. Dedent
// removes the minimum indentation found across the non-blank lines of the
// literal segments from every line of the joined result. TrimBlankEdges
// drops whitespace-only lines from the start and end of the block.
//
// Only the space character (0x20) counts as indentation whitespace. Tabs are
// ordinary content: a line holding a single tab is non-blank and has zero
// indentation. Generalizing to unicode whitespace would change every
// indentation measurement, so the restriction is deliberate.
//
// All functions are pure and safe for concurrent use.
package normalize
