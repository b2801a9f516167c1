package template

import (
	"errors"
	"io"

	"github.com/goliatone/go-outdent/pkg/normalize"
)

// Normalizing wraps any TemplateRenderer and passes every rendered result
// through the normalization pipeline: common literal indentation stripped,
// blank edge lines trimmed. The wrapped engine receives no writers; the
// wrapper writes the normalized text itself so returned and written output
// always agree.
type Normalizing struct {
	inner TemplateRenderer
}

// Ensure the wrapper keeps satisfying the renderer contract.
var _ TemplateRenderer = (*Normalizing)(nil)

// NewNormalizing wraps an engine. The engine is required.
func NewNormalizing(inner TemplateRenderer) (*Normalizing, error) {
	if inner == nil {
		return nil, errors.New("template: inner renderer is required")
	}
	return &Normalizing{inner: inner}, nil
}

// Render delegates to the wrapped engine and normalizes the result.
func (n *Normalizing) Render(name string, data any, out ...io.Writer) (string, error) {
	return n.normalize(out, func() (string, error) {
		return n.inner.Render(name, data)
	})
}

// RenderTemplate delegates to the wrapped engine and normalizes the result.
func (n *Normalizing) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	return n.normalize(out, func() (string, error) {
		return n.inner.RenderTemplate(name, data)
	})
}

// RenderString delegates to the wrapped engine and normalizes the result.
func (n *Normalizing) RenderString(templateContent string, data any, out ...io.Writer) (string, error) {
	return n.normalize(out, func() (string, error) {
		return n.inner.RenderString(templateContent, data)
	})
}

// RegisterFilter registers filters on the wrapped engine.
func (n *Normalizing) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	return n.inner.RegisterFilter(name, fn)
}

// GlobalContext seeds global data on the wrapped engine.
func (n *Normalizing) GlobalContext(data any) error {
	return n.inner.GlobalContext(data)
}

func (n *Normalizing) normalize(out []io.Writer, render func() (string, error)) (string, error) {
	rendered, err := render()
	if err != nil {
		return "", err
	}

	normalized := normalize.Text(rendered)
	for _, w := range out {
		if _, err := w.Write([]byte(normalized)); err != nil {
			return "", err
		}
	}
	return normalized, nil
}
