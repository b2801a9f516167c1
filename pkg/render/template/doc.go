// Package template defines the engine-agnostic rendering seam for the
// normalizer. TemplateRenderer mirrors the go-template engine contract so
// any compatible engine can plug in, and Normalizing wraps such an engine to
// run every rendered result through the normalization pipeline.
package template
