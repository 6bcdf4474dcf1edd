package commands

import (
	"errors"
	"fmt"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestReject(t *testing.T) {
	tests := map[string]struct {
		name   string
		data   any
		expMsg string
	}{
		"no data": {
			name:   MsgUnknownCommand,
			expMsg: "Unknown command.",
		},
		"with data": {
			name:   MsgCommandTooLong,
			data:   map[string]any{"Max": 1000},
			expMsg: "Command too long. Maximum length is 1000 characters.",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := fmt.Errorf("handling: %w", Reject(tt.name, tt.data))

			var userErr *UserError
			testutil.AssertEqual(t, "is user error", errors.As(err, &userErr), true)
			testutil.AssertEqual(t, "reason", userErr.Reason, tt.name)
			testutil.AssertEqual(t, "message", userErr.Message, tt.expMsg)
		})
	}
}
