package template_test

import (
	"io"
	"testing"

	"github.com/goliatone/go-outdent/pkg/render/template"
	"github.com/goliatone/go-outdent/pkg/testsupport"
)

func TestNewNormalizing_RequiresEngine(t *testing.T) {
	if _, err := template.NewNormalizing(nil); err == nil {
		t.Fatal("expected error for nil engine")
	}
}

func TestNormalizing_NormalizesRenderedOutput(t *testing.T) {
	renderer, err := template.NewNormalizing(staticRenderer{
		output: "\n    <main>\n      body\n    </main>\n",
	})
	if err != nil {
		t.Fatalf("new normalizing: %v", err)
	}

	result, written := testsupport.CaptureRenderOutput(t, func(w io.Writer) (string, error) {
		return renderer.Render("page", nil, w)
	})

	want := testsupport.JoinLF(
		"<main>",
		"  body",
		"</main>",
	)
	if result != want {
		t.Fatalf("normalized result mismatch\nwant: %q\n got: %q", want, result)
	}
	if written != want {
		t.Fatalf("writer received raw output\nwant: %q\n got: %q", want, written)
	}
}

func TestNormalizing_RenderString(t *testing.T) {
	renderer, err := template.NewNormalizing(staticRenderer{output: "  plain  \n"})
	if err != nil {
		t.Fatalf("new normalizing: %v", err)
	}

	result, err := renderer.RenderString("ignored", nil)
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if result != "plain  " {
		t.Fatalf("unexpected result: %q", result)
	}
}

// staticRenderer returns canned output regardless of the template asked for.
type staticRenderer struct {
	output string
}

func (s staticRenderer) Render(string, any, ...io.Writer) (string, error) {
	return s.output, nil
}

func (s staticRenderer) RenderTemplate(string, any, ...io.Writer) (string, error) {
	return s.output, nil
}

func (s staticRenderer) RenderString(string, any, ...io.Writer) (string, error) {
	return s.output, nil
}

func (s staticRenderer) RegisterFilter(string, func(any, any) (any, error)) error {
	return nil
}

func (s staticRenderer) GlobalContext(any) error {
	return nil
}
