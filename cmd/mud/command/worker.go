package command

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pixil98/go-service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/pixil98/go-fluxmud/internal/driver"
	"github.com/pixil98/go-fluxmud/internal/engine"
	"github.com/pixil98/go-fluxmud/internal/listener"
	"github.com/pixil98/go-fluxmud/internal/messaging"
	"github.com/pixil98/go-fluxmud/internal/session"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Load content
	catalog, err := cfg.Content.BuildCatalog(cfg.Engine.StartRoom)
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}

	// Open the player store
	players, err := cfg.Players.BuildStore(context.Background())
	if err != nil {
		return nil, fmt.Errorf("opening player store: %w", err)
	}

	// Create the message bus
	natsServer, err := cfg.Nats.buildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}

	// Setup the engine
	fights := engine.NewFightCache(cfg.Engine.fightTTL())
	opts := append(cfg.Engine.options(),
		engine.WithDelivery(messaging.NewPublisher(natsServer)),
		engine.WithFightCache(fights),
		engine.WithMetrics(engine.NewMetrics(reg)),
	)
	eng := engine.NewEngine(catalog, players, opts...)

	sessions := session.NewManager(eng, players, natsServer)
	cm := listener.NewConnectionManager(sessions, reg)

	// Create Listeners
	listeners := make(service.WorkerList, len(cfg.Listeners))
	for i, l := range cfg.Listeners {
		w, err := l.BuildListener(cm)
		if err != nil {
			return nil, fmt.Errorf("creating listener %d: %w", i, err)
		}
		listeners[fmt.Sprintf("listener-%d", i)] = w
	}

	// Setup the mud driver
	mudDriver := driver.NewMudDriver(map[string]driver.Manager{
		"fights": fights,
	}, driver.WithTickLength(cfg.Engine.tickInterval()))

	workers := service.WorkerList{
		"nats":      natsServer,
		"driver":    mudDriver,
		"listeners": &gatedWorker{ready: natsServer.Ready(), worker: &listeners},
		"players":   &closer{name: "player store", c: players},
	}
	if cfg.Metrics.Address != "" {
		workers["metrics"] = cfg.Metrics.buildServer(reg)
	}

	return workers, nil
}

// gatedWorker holds a worker back until ready is closed.
type gatedWorker struct {
	ready  <-chan struct{}
	worker service.Worker
}

func (g *gatedWorker) Start(ctx context.Context) error {
	select {
	case <-g.ready:
	case <-ctx.Done():
		return nil
	}
	return g.worker.Start(ctx)
}

// closer releases a resource once the application shuts down.
type closer struct {
	name string
	c    interface{ Close() error }
}

func (w *closer) Start(ctx context.Context) error {
	<-ctx.Done()
	slog.Info("closing", "resource", w.name)
	if err := w.c.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", w.name, err)
	}
	return nil
}
