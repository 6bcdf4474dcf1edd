package commands

import (
	"errors"
	"strings"
)

// MaxCommandLength is the longest raw command accepted from a client.
const MaxCommandLength = 1000

// ErrEmptyCommand is returned by Parse for input with no tokens. It is not a
// UserError: blank lines are ignored rather than answered.
var ErrEmptyCommand = errors.New("empty command")

// Command is a tokenized line of player input.
type Command struct {
	Verb Verb
	// Word is the first token as typed, lowercased.
	Word string
	Args []string
}

// Rest re-joins the arguments with single spaces so multi-word names
// ("senzu bean") survive tokenization.
func (c Command) Rest() string {
	return strings.Join(c.Args, " ")
}

// Parse splits raw on whitespace and resolves its verb for the given state.
// Unknown verbs are not an error here; the dispatcher answers them.
func Parse(raw string, state State) (Command, error) {
	if len(raw) > MaxCommandLength {
		return Command{}, Reject(MsgCommandTooLong, map[string]any{"Max": MaxCommandLength})
	}

	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return Command{}, ErrEmptyCommand
	}

	word := strings.ToLower(fields[0])
	cmd := Command{
		Verb: Lookup(word, state),
		Word: word,
		Args: fields[1:],
	}

	if cmd.Verb == VerbMove {
		switch {
		case word == "move" || word == "go":
			if len(cmd.Args) > 0 {
				cmd.Args = []string{Direction(strings.ToLower(cmd.Args[0]))}
			}
		default:
			cmd.Args = []string{Direction(word)}
		}
	}

	return cmd, nil
}
