package normalize_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-outdent/pkg/normalize"
	"github.com/goliatone/go-outdent/pkg/testsupport"
)

func TestNormalize_Fixtures(t *testing.T) {
	cases := testsupport.LoadCases(t, filepath.Join("testdata", "cases.yaml"))

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			got, err := normalize.Normalize(tc.Segments, tc.Values...)
			if err != nil {
				t.Fatalf("normalize: %v", err)
			}
			if diff := cmp.Diff(tc.Want, got); diff != "" {
				t.Fatalf("normalize mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalize_TitleScenario(t *testing.T) {
	got, err := normalize.Normalize([]string{"\n  <title>", "</title>\n"}, "")
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if got != "<title></title>" {
		t.Fatalf("unexpected output: %q", got)
	}

	// The same template written as a single segment behaves identically.
	single, err := normalize.Normalize([]string{"\n  <title></title>\n"})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if single != got {
		t.Fatalf("segment split changed output: %q vs %q", single, got)
	}
}

func TestNormalize_ListScenario(t *testing.T) {
	got, err := normalize.Normalize(
		[]string{"\n  <ul>", "</ul>\n"},
		"<li>1</li>\n<li>2</li>\n<li>3</li>",
	)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}

	want := testsupport.JoinLF(
		"<ul><li>1</li>",
		"<li>2</li>",
		"<li>3</li></ul>",
	)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("list scenario mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_NestedTemplates(t *testing.T) {
	inner, err := normalize.Normalize([]string{"\n    <li>a</li>\n    <li>b</li>\n"})
	if err != nil {
		t.Fatalf("inner: %v", err)
	}

	got, err := normalize.Normalize([]string{"\n  <ul>\n    ", "\n  </ul>\n"}, inner)
	if err != nil {
		t.Fatalf("outer: %v", err)
	}

	want := testsupport.JoinLF(
		"<ul>",
		"  <li>a</li>",
		"  <li>b</li>",
		"</ul>",
	)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("nested scenario mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	first, err := normalize.Normalize([]string{"\n    a\n\n      b\n"})
	if err != nil {
		t.Fatalf("first pass: %v", err)
	}

	second, err := normalize.Normalize([]string{first})
	if err != nil {
		t.Fatalf("second pass: %v", err)
	}
	if second != first {
		t.Fatalf("not idempotent\nfirst:  %q\nsecond: %q", first, second)
	}
}

func TestNormalize_FalsyEqualsConcatenatedNeighbors(t *testing.T) {
	withSlot, err := normalize.Normalize([]string{"\n  <p>", "</p>\n"}, nil)
	if err != nil {
		t.Fatalf("with slot: %v", err)
	}

	concatenated, err := normalize.Normalize([]string{"\n  <p></p>\n"})
	if err != nil {
		t.Fatalf("concatenated: %v", err)
	}
	if withSlot != concatenated {
		t.Fatalf("elision mismatch: %q vs %q", withSlot, concatenated)
	}
}

func TestNormalize_SegmentMismatch(t *testing.T) {
	if _, err := normalize.Normalize([]string{"a", "b", "c"}, "x"); !errors.Is(err, normalize.ErrSegmentMismatch) {
		t.Fatalf("expected ErrSegmentMismatch, got %v", err)
	}
}

func TestText(t *testing.T) {
	got := normalize.Text("\n    hello\n      world\n")
	want := testsupport.JoinLF(
		"hello",
		"  world",
	)
	if got != want {
		t.Fatalf("text mismatch\nwant: %q\n got: %q", want, got)
	}
}
