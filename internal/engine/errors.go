package engine

import "errors"

// ErrSessionClosed is returned by Process when the player record cannot be
// loaded. The session holding the player should be closed.
var ErrSessionClosed = errors.New("session closed")
