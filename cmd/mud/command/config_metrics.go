package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type MetricsConfig struct {
	Address string `json:"address" env:"FLUXMUD_METRICS_ADDRESS"`
}

func (c *MetricsConfig) validate() error {
	if c.Address == "" {
		return nil
	}
	if _, _, err := net.SplitHostPort(c.Address); err != nil {
		return fmt.Errorf("metrics: invalid address %q: %w", c.Address, err)
	}
	return nil
}

// metricsServer exposes a registry over HTTP until ctx is done.
type metricsServer struct {
	srv *http.Server
}

func (c *MetricsConfig) buildServer(reg *prometheus.Registry) *metricsServer {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	return &metricsServer{
		srv: &http.Server{
			Addr:              c.Address,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

func (m *metricsServer) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("metrics server listening", "address", m.srv.Addr)
		errCh <- m.srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serving metrics: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := m.srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("stopping metrics server: %w", err)
	}
	return nil
}
