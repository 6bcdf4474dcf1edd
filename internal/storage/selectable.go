package storage

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/pixil98/go-fluxmud/internal"
)

// ErrNothingToSelect is returned by Prompt when the store is empty.
var ErrNothingToSelect = errors.New("nothing to select")

const selectTries = 5

// Selectable is content a player picks from a numbered menu.
type Selectable interface {
	ValidatingSpec
	Selector() string
}

// Describer is implemented by selectables that show a one line summary
// beside their menu entry.
type Describer interface {
	Summary() string
}

// SelectableStorer presents a store as a numbered menu ordered by selector.
// Players answer with the number or the selector itself.
type SelectableStorer[T Selectable] struct {
	Storer[T]

	ids  []string
	menu string
}

func NewSelectableStorer[T Selectable](st Storer[T]) *SelectableStorer[T] {
	all := st.GetAll()
	ids := slices.Collect(maps.Keys(all))
	slices.SortFunc(ids, func(a, b string) int {
		return cmp.Or(strings.Compare(all[a].Selector(), all[b].Selector()), strings.Compare(a, b))
	})

	s := &SelectableStorer[T]{Storer: st, ids: ids}
	s.menu = s.render(all)
	return s
}

func (s *SelectableStorer[T]) render(all map[string]T) string {
	width := 0
	for _, id := range s.ids {
		width = max(width, len(all[id].Selector()))
	}

	var b strings.Builder
	for i, id := range s.ids {
		v := all[id]
		line := fmt.Sprintf("%2d. %-*s", i+1, width, v.Selector())
		if d, ok := any(v).(Describer); ok && d.Summary() != "" {
			line += "  " + d.Summary()
		}
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// Menu returns the rendered options, one per line.
func (s *SelectableStorer[T]) Menu() string {
	return s.menu
}

// Prompt shows the menu and asks until the answer names an option, giving up
// after a few tries. It returns the chosen id.
func (s *SelectableStorer[T]) Prompt(rw io.ReadWriter, prompt string) (string, error) {
	if len(s.ids) == 0 {
		return "", ErrNothingToSelect
	}

	if _, err := fmt.Fprintf(rw, "%s\n%s", prompt, s.menu); err != nil {
		return "", err
	}

	var id string
	_, err := internal.Prompt(rw, "Make your selection: ",
		internal.WithMaxTries(selectTries),
		internal.WithValidator(func(answer string) (bool, string) {
			id = s.Match(answer)
			if id == "" {
				return false, "Invalid selection!\n"
			}
			return true, ""
		}),
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// Match resolves an answer to an id: the option number, or the selector
// ignoring case. It returns "" when nothing matches.
func (s *SelectableStorer[T]) Match(answer string) string {
	answer = strings.TrimSpace(answer)
	if i, err := strconv.Atoi(answer); err == nil {
		return s.Select(i)
	}
	for _, id := range s.ids {
		if strings.EqualFold(s.Get(id).Selector(), answer) {
			return id
		}
	}
	return ""
}

// Select returns the id of the i-th option, counting from 1.
func (s *SelectableStorer[T]) Select(i int) string {
	if i < 1 || i > len(s.ids) {
		return ""
	}
	return s.ids[i-1]
}
