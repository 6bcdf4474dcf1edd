package display

import (
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestTitle(t *testing.T) {
	tests := map[string]struct {
		in  string
		exp string
	}{
		"single word": {in: "goku", exp: "Goku"},
		"two words":   {in: "master roshi", exp: "Master Roshi"},
		"empty":       {in: "", exp: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "title", Title(tt.in), tt.exp)
		})
	}
}

func TestCapitalize(t *testing.T) {
	testutil.AssertEqual(t, "capitalized", Capitalize("north"), "North")
	testutil.AssertEqual(t, "empty", Capitalize(""), "")
}

func TestWrap(t *testing.T) {
	text := strings.Repeat("flux ", 40)
	for _, line := range strings.Split(Wrap(text), "\n") {
		if len(strings.TrimRight(line, " ")) > DefaultWidth {
			t.Errorf("line longer than %d: %q", DefaultWidth, line)
		}
	}
}

func TestBox(t *testing.T) {
	out := Box([]Section{
		{Header: "Goku", Lines: []Line{{Value: "HP: 10/10"}}},
		{Lines: []Line{{Value: "Base", Center: true}}},
	}, 20)

	exp := strings.Join([]string{
		"+------------------+",
		"|       Goku       |",
		"| HP: 10/10        |",
		"+------------------+",
		"|       Base       |",
		"+------------------+",
	}, "\n")
	testutil.AssertEqual(t, "box", out, exp)
}
