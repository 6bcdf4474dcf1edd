package internal

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// ErrTooManyTries is returned by Prompt when the validator rejects the input
// more often than WithMaxTries allows.
var ErrTooManyTries = errors.New("too many tries")

type promptValidator func(string) (bool, string)

type promptConfig struct {
	tries     int
	validator promptValidator
}

type promptOption func(*promptConfig)

func WithValidator(v promptValidator) promptOption {
	return func(cfg *promptConfig) {
		cfg.validator = v
	}
}

func WithMaxTries(i int) promptOption {
	return func(cfg *promptConfig) {
		cfg.tries = i
	}
}

// LineReader is satisfied by *bufio.Reader. Connections that already buffer
// their input should implement it so consecutive prompts share one buffer.
type LineReader interface {
	ReadString(delim byte) (string, error)
}

// ReadLine reads a single line from r, stripping the trailing CR/LF.
func ReadLine(r LineReader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func Prompt(rw io.ReadWriter, prompt string, opts ...promptOption) (string, error) {
	config := &promptConfig{}
	for _, opt := range opts {
		opt(config)
	}

	lr, ok := rw.(LineReader)
	if !ok {
		lr = bufio.NewReader(rw)
	}

	tries := 0
	for {
		_, err := io.WriteString(rw, prompt)
		if err != nil {
			return "", err
		}

		input, err := ReadLine(lr)
		if err != nil {
			return "", err
		}
		input = strings.TrimSpace(input)

		if config.validator != nil {
			ok, msg := config.validator(input)
			if !ok {
				if _, err := io.WriteString(rw, msg); err != nil {
					return "", err
				}

				tries++
				if config.tries > 0 && config.tries == tries {
					return "", ErrTooManyTries
				}

				continue
			}
		}

		return input, nil
	}
}

func PromptYN(rw io.ReadWriter, prompt string) (bool, error) {
	str, err := Prompt(rw, prompt, WithValidator(
		func(str string) (bool, string) {
			switch strings.ToLower(str) {
			case "y", "yes", "n", "no":
				return true, ""
			default:
				return false, "enter 'yes' or 'no'\n"
			}
		},
	))
	if err != nil {
		return false, err
	}

	switch strings.ToLower(str) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
