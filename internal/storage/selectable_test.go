package storage

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"

	"github.com/pixil98/go-fluxmud/internal"
)

type choice struct {
	name    string
	summary string
}

func (c *choice) Validate() error  { return nil }
func (c *choice) Selector() string { return c.name }
func (c *choice) Summary() string  { return c.summary }

type plainChoice struct {
	name string
}

func (c *plainChoice) Validate() error  { return nil }
func (c *plainChoice) Selector() string { return c.name }

type terminal struct {
	in  *bytes.Buffer
	out bytes.Buffer
}

func (t *terminal) Read(p []byte) (int, error)  { return t.in.Read(p) }
func (t *terminal) Write(p []byte) (int, error) { return t.out.Write(p) }

func newTerminal(lines ...string) *terminal {
	return &terminal{in: bytes.NewBufferString(strings.Join(lines, "\n") + "\n")}
}

func raceChoices() *SelectableStorer[*choice] {
	return NewSelectableStorer(NewMemoryStore(map[string]*choice{
		"zenkai":  {name: "Zenkai", summary: "STR 10 | Battle Hardened"},
		"glacial": {name: "Glacial", summary: "DEX 8 | Ice Armor"},
		"terran":  {name: "Terran"},
	}))
}

func TestSelectableStorer_Menu(t *testing.T) {
	tests := map[string]struct {
		menu string
		exp  string
	}{
		"with summaries": {
			menu: raceChoices().Menu(),
			exp: " 1. Glacial  DEX 8 | Ice Armor\n" +
				" 2. Terran\n" +
				" 3. Zenkai   STR 10 | Battle Hardened\n",
		},
		"without summaries": {
			menu: NewSelectableStorer(NewMemoryStore(map[string]*plainChoice{
				"b": {name: "Beta"},
				"a": {name: "Alpha"},
			})).Menu(),
			exp: " 1. Alpha\n 2. Beta\n",
		},
		"empty": {
			menu: NewSelectableStorer(NewMemoryStore(map[string]*plainChoice{})).Menu(),
			exp:  "",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "menu", tt.menu, tt.exp)
		})
	}
}

func TestSelectableStorer_Match(t *testing.T) {
	s := raceChoices()

	tests := map[string]struct {
		answer string
		expId  string
	}{
		"number":         {answer: "3", expId: "zenkai"},
		"first":          {answer: "1", expId: "glacial"},
		"name":           {answer: "terran", expId: "terran"},
		"name any case":  {answer: " GLACIAL ", expId: "glacial"},
		"zero":           {answer: "0", expId: ""},
		"past the end":   {answer: "4", expId: ""},
		"negative":       {answer: "-1", expId: ""},
		"unknown name":   {answer: "namekian", expId: ""},
		"partial name":   {answer: "zen", expId: ""},
		"empty response": {answer: "", expId: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "id", s.Match(tt.answer), tt.expId)
		})
	}
}

func TestSelectableStorer_Prompt(t *testing.T) {
	tests := map[string]struct {
		store      *SelectableStorer[*choice]
		lines      []string
		expId      string
		expErr     string
		expRetries int
	}{
		"by number": {
			store: raceChoices(),
			lines: []string{"2"},
			expId: "terran",
		},
		"by name": {
			store: raceChoices(),
			lines: []string{"Zenkai"},
			expId: "zenkai",
		},
		"retries until valid": {
			store:      raceChoices(),
			lines:      []string{"9", "saiyan", "1"},
			expId:      "glacial",
			expRetries: 2,
		},
		"gives up": {
			store:      raceChoices(),
			lines:      []string{"a", "b", "c", "d", "e", "1"},
			expErr:     internal.ErrTooManyTries.Error(),
			expRetries: selectTries,
		},
		"empty store": {
			store:  NewSelectableStorer(NewMemoryStore(map[string]*choice{})),
			lines:  []string{"1"},
			expErr: ErrNothingToSelect.Error(),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			term := newTerminal(tt.lines...)

			id, err := tt.store.Prompt(term, "What is your race?")

			testutil.AssertErrorContains(t, err, tt.expErr)
			testutil.AssertEqual(t, "id", id, tt.expId)
			testutil.AssertEqual(t, "retries", strings.Count(term.out.String(), "Invalid selection!"), tt.expRetries)
			if tt.expErr == "" {
				testutil.AssertEqual(t, "menu shown", strings.Contains(term.out.String(), "What is your race?\n"+tt.store.Menu()), true)
			}
		})
	}
}

func TestSelectableStorer_PromptErrorsAreSentinels(t *testing.T) {
	s := NewSelectableStorer(NewMemoryStore(map[string]*choice{}))
	_, err := s.Prompt(newTerminal(), "Pick")
	testutil.AssertEqual(t, "sentinel", errors.Is(err, ErrNothingToSelect), true)
}
