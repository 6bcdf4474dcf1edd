package game

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-errors"
)

// PassiveKind selects the rule a race passive hooks into.
type PassiveKind string

const (
	PassiveNone           PassiveKind = ""
	PassiveBattleHardened PassiveKind = "battle_hardened"
	PassiveRegeneration   PassiveKind = "regeneration"
	PassiveTacticalMind   PassiveKind = "tactical_mind"
	PassiveIceArmor       PassiveKind = "ice_armor"
)

// Passive is a race's always-on ability.
type Passive struct {
	Kind        PassiveKind `json:"kind"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	// Percent is the strength of the passive: regen and armor percent, damage
	// bonus, or the Battle Hardened step per win.
	Percent int `json:"percent"`
	// Cap bounds the cumulative Battle Hardened bonus.
	Cap int `json:"cap,omitempty"`
}

func (p *Passive) validate() error {
	switch p.Kind {
	case PassiveNone:
		return nil
	case PassiveRegeneration, PassiveTacticalMind, PassiveIceArmor:
	case PassiveBattleHardened:
		if p.Cap <= 0 {
			return fmt.Errorf("passive %s: cap must be positive", p.Kind)
		}
	default:
		return fmt.Errorf("unknown passive kind %q", p.Kind)
	}
	if p.Percent <= 0 || p.Percent > 100 {
		return fmt.Errorf("passive %s: percent must be between 1 and 100", p.Kind)
	}
	return nil
}

// Transformation is a named form unlocked at a level. Multiplier applies to
// every stat unless Multipliers names that stat.
type Transformation struct {
	Name        string             `json:"name"`
	Level       int                `json:"level"`
	Multiplier  float64            `json:"multiplier,omitempty"`
	Multipliers map[string]float64 `json:"multipliers,omitempty"`
}

// Race defines a character's starting stats, growth and racial abilities.
type Race struct {
	Id          string             `json:"-"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	BaseStats   Attributes         `json:"base_stats"`
	Growth      map[string]float64 `json:"growth"`
	BaseFlux    int                `json:"base_flux,omitempty"`
	Forms       []Transformation   `json:"transformations,omitempty"`
	Passive     Passive            `json:"passive"`
}

// Validate satisfies storage.ValidatingSpec.
func (r *Race) Validate() error {
	el := errors.NewErrorList()

	if r.Name == "" {
		el.Add(fmt.Errorf("race name is required"))
	}
	if r.BaseStats.VIT <= 0 {
		el.Add(fmt.Errorf("base vit must be positive"))
	}
	for stat := range r.Growth {
		if !IsStat(stat) {
			el.Add(fmt.Errorf("growth: unknown stat %q", stat))
		}
	}
	for i, f := range r.Forms {
		if f.Name == "" {
			el.Add(fmt.Errorf("transformation %d: name is required", i))
		}
		if strings.EqualFold(f.Name, BaseForm) {
			el.Add(fmt.Errorf("transformation %d: %s is reserved", i, BaseForm))
		}
		if f.Multiplier < 0 {
			el.Add(fmt.Errorf("transformation %s: multiplier cannot be negative", f.Name))
		}
		for stat, m := range f.Multipliers {
			if !IsStat(stat) {
				el.Add(fmt.Errorf("transformation %s: unknown stat %q", f.Name, stat))
			}
			if m < 0 {
				el.Add(fmt.Errorf("transformation %s: %s multiplier cannot be negative", f.Name, stat))
			}
		}
	}
	el.Add(r.Passive.validate())

	return el.Err()
}

// Selector satisfies the storage selectable interface for race selection.
func (r *Race) Selector() string {
	return r.Name
}

// Summary is the race's menu line: base stats and passive.
func (r *Race) Summary() string {
	if r.Passive.Name == "" {
		return r.BaseStats.String()
	}
	return fmt.Sprintf("%s  | %s", r.BaseStats, r.Passive.Name)
}

// FluxPool returns the race's flux pool before INT is added.
func (r *Race) FluxPool() int {
	if r.BaseFlux > 0 {
		return r.BaseFlux
	}
	return BaseFlux
}

// Form returns the transformation called name, case-insensitively, or nil.
func (r *Race) Form(name string) *Transformation {
	for i := range r.Forms {
		if strings.EqualFold(r.Forms[i].Name, name) {
			return &r.Forms[i]
		}
	}
	return nil
}

// AvailableForms returns the transformations unlocked at level, in content
// order.
func (r *Race) AvailableForms(level int) []Transformation {
	var out []Transformation
	for _, f := range r.Forms {
		if f.Level <= level {
			out = append(out, f)
		}
	}
	return out
}
