// Package driver runs periodic maintenance on a fixed tick.
package driver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"
)

const (
	DefaultTickLength = time.Second * 2
)

// Manager is anything that needs a periodic turn, such as the fight cache
// evicting idle fights.
type Manager interface {
	Tick(context.Context) error
}

type MudDriver struct {
	tickLength time.Duration
	managers   map[string]Manager
	order      []string
}

type MudDriverOpt func(*MudDriver)

// WithTickLength sets the time between ticks. Non-positive lengths keep the
// default, since a ticker cannot run on them.
func WithTickLength(tickLength time.Duration) MudDriverOpt {
	return func(d *MudDriver) {
		if tickLength > 0 {
			d.tickLength = tickLength
		}
	}
}

func NewMudDriver(managers map[string]Manager, opts ...MudDriverOpt) *MudDriver {
	d := &MudDriver{
		tickLength: DefaultTickLength,
		managers:   managers,
	}
	for name := range managers {
		d.order = append(d.order, name)
	}
	slices.Sort(d.order)

	for _, opt := range opts {
		opt(d)
	}

	return d
}

func (d *MudDriver) Start(ctx context.Context) error {
	slog.InfoContext(ctx, "driver started", "tick", d.tickLength, "managers", d.order)

	ticker := time.NewTicker(d.tickLength)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			err := d.Tick(ctx)
			if err != nil {
				return err
			}
		}
	}
}

// Tick gives every manager a turn, in name order. One manager failing does
// not skip the others.
func (d *MudDriver) Tick(ctx context.Context) error {
	var errs []error
	for _, name := range d.order {
		if err := d.managers[name].Tick(ctx); err != nil {
			errs = append(errs, fmt.Errorf("ticking %s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}
