// Package outdent normalizes multi-segment templated text. A template is an
// ordered list of literal segments interleaved with values; the package
// joins them so multi-line values align with their insertion column, strips
// the minimum indentation of the literal text from every line, and trims
// whitespace-only lines from both edges.
//
// The root package re-exports the pipeline from pkg/normalize; rendering
// integrations live under pkg/render/template.
package outdent
