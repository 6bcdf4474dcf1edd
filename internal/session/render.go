package session

import (
	"encoding/json"
	"fmt"

	"github.com/pixil98/go-fluxmud/internal/display"
	"github.com/pixil98/go-fluxmud/internal/engine"
)

// Render decodes a published notification into the text shown to the player.
// Snapshots render no text and are returned for the prompt.
func Render(data []byte) (string, *engine.Snapshot, error) {
	var n engine.Notification
	if err := json.Unmarshal(data, &n); err != nil {
		return "", nil, fmt.Errorf("decoding notification: %w", err)
	}

	switch n.Kind {
	case engine.KindStateSnapshot:
		return "", n.Snapshot, nil
	case engine.KindRoomBroadcast:
		if n.Sender != "" {
			return display.Wrap(fmt.Sprintf("%s says: %s", n.Sender, n.Text)), nil, nil
		}
		return display.Wrap(n.Text), nil, nil
	default:
		return display.Wrap(n.Text), nil, nil
	}
}

// Prompt is shown after each batch of output.
func Prompt(s *engine.Snapshot) string {
	if s == nil {
		return "> "
	}
	if s.Combat != nil {
		return fmt.Sprintf("[HP %d/%d Flux %d/%d | %s %d/%d] > ", s.HP, s.MaxHP, s.Flux, s.MaxFlux, s.Combat.Monster, s.Combat.HP, s.Combat.MaxHP)
	}
	return fmt.Sprintf("[HP %d/%d Flux %d/%d] > ", s.HP, s.MaxHP, s.Flux, s.MaxFlux)
}
