package engine

import (
	"github.com/pixil98/go-fluxmud/internal/combat"
)

type EngineOpt func(*Engine)

// WithDelivery sets where notifications are sent.
func WithDelivery(d Delivery) EngineOpt {
	return func(e *Engine) {
		e.delivery = d
	}
}

// WithRand sets the randomness used by combat.
func WithRand(r combat.Rand) EngineOpt {
	return func(e *Engine) {
		e.resolver = combat.NewResolver(r)
	}
}

// WithFightCache sets the cache of live monster instances.
func WithFightCache(c *FightCache) EngineOpt {
	return func(e *Engine) {
		e.fights = c
	}
}

// WithMetrics sets the collectors the engine records to.
func WithMetrics(m *Metrics) EngineOpt {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithGroup sets the broadcast group.
func WithGroup(group string) EngineOpt {
	return func(e *Engine) {
		e.group = group
	}
}

// WithDevCommands enables the cheat verbs.
func WithDevCommands(enabled bool) EngineOpt {
	return func(e *Engine) {
		e.dev = enabled
	}
}
