package listener

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pixil98/go-fluxmud/internal/engine"
)

// SessionRunner serves one client connection until it ends.
type SessionRunner interface {
	Run(ctx context.Context, rw io.ReadWriter) error
}

// ConnectionManager hands accepted connections from every listener to the
// session layer.
type ConnectionManager struct {
	sessions SessionRunner
	active   prometheus.Gauge
}

func NewConnectionManager(sessions SessionRunner, reg prometheus.Registerer) *ConnectionManager {
	active := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "fluxmud",
		Name:      "connections_active",
		Help:      "Client connections currently open.",
	})
	if reg != nil {
		reg.MustRegister(active)
	}
	return &ConnectionManager{
		sessions: sessions,
		active:   active,
	}
}

func (m *ConnectionManager) AcceptConnection(ctx context.Context, conn io.ReadWriter) {
	id := uuid.NewString()
	m.active.Inc()
	defer m.active.Dec()

	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "session panicked", "conn", id, "panic", r)
		}
	}()

	slog.DebugContext(ctx, "session started", "conn", id)
	err := m.sessions.Run(ctx, conn)
	switch {
	case err == nil, errors.Is(err, io.EOF), errors.Is(err, context.Canceled):
		slog.DebugContext(ctx, "session ended", "conn", id)
	case errors.Is(err, engine.ErrSessionClosed):
		slog.InfoContext(ctx, "session closed by engine", "conn", id, "error", err)
	default:
		slog.WarnContext(ctx, "player session", "conn", id, "error", err)
	}
}
