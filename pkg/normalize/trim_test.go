package normalize_test

import (
	"testing"

	"github.com/goliatone/go-outdent/pkg/normalize"
)

func TestTrimBlankEdges(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "leading and trailing blanks removed",
			in:   "\n  \na\n\nb\n \n",
			want: "a\n\nb",
		},
		{
			name: "interior blanks preserved",
			in:   "a\n\n\nb",
			want: "a\n\n\nb",
		},
		{
			name: "all blank collapses to empty",
			in:   " \n  \n   ",
			want: "",
		},
		{
			name: "no blanks is a no-op",
			in:   "a\nb",
			want: "a\nb",
		},
		{
			name: "tab line is not blank",
			in:   "\t\nx\n",
			want: "\t\nx",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := normalize.TrimBlankEdges(tc.in)
			if got != tc.want {
				t.Fatalf("trim mismatch\nwant: %q\n got: %q", tc.want, got)
			}
		})
	}
}
