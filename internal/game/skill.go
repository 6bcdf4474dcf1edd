package game

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-errors"
)

// StatBasis picks which attributes a damaging skill scales from.
type StatBasis string

const (
	BasisSTR    StatBasis = "str"
	BasisINT    StatBasis = "int"
	BasisSTRDEX StatBasis = "str_dex"
)

// Value returns the attack value of the basis for the given stats.
func (b StatBasis) Value(a Attributes) int {
	switch b {
	case BasisINT:
		return a.INT
	case BasisSTRDEX:
		return a.STR + a.DEX
	default:
		return a.STR
	}
}

// MaxEffectDepth is how many skill effects a single use may trigger. Effects
// never trigger further effects.
const MaxEffectDepth = 1

// Skill is a skill definition. Percent fields are whole percentages.
type Skill struct {
	Id          string `json:"-"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Level       int    `json:"level"`
	Race        string `json:"race,omitempty"`
	Form        string `json:"transformation,omitempty"`
	FluxCost    int    `json:"flux_cost,omitempty"`
	Cooldown    int    `json:"cooldown,omitempty"`

	DamageMultiplier float64   `json:"damage_multiplier,omitempty"`
	StatBasis        StatBasis `json:"stat_basis,omitempty"`
	HealPercent      int       `json:"heal_percent,omitempty"`
	IgnoresDefense   bool      `json:"ignores_defense,omitempty"`
	PiercePercent    int       `json:"defense_pierce_percent,omitempty"`
	Stun             bool      `json:"stun,omitempty"`
	DodgePercent     int       `json:"dodge_percent,omitempty"`
	HPCostPercent    int       `json:"hp_cost_percent,omitempty"`
	ShieldPercent    int       `json:"shield_percent,omitempty"`

	BuffStat     string `json:"buff_stat,omitempty"`
	BuffPercent  int    `json:"buff_percent,omitempty"`
	BuffDuration int    `json:"buff_duration,omitempty"`
}

// Validate satisfies storage.ValidatingSpec.
func (s *Skill) Validate() error {
	el := errors.NewErrorList()

	if s.Name == "" {
		el.Add(fmt.Errorf("skill name is required"))
	}
	if s.Level < 1 {
		el.Add(fmt.Errorf("level must be at least 1"))
	}
	if s.FluxCost < 0 {
		el.Add(fmt.Errorf("flux_cost cannot be negative"))
	}
	if s.Cooldown < 0 {
		el.Add(fmt.Errorf("cooldown cannot be negative"))
	}
	if s.DamageMultiplier < 0 {
		el.Add(fmt.Errorf("damage_multiplier cannot be negative"))
	}
	switch s.StatBasis {
	case "", BasisSTR, BasisINT, BasisSTRDEX:
	default:
		el.Add(fmt.Errorf("unknown stat_basis %q", s.StatBasis))
	}
	for name, v := range map[string]int{
		"heal_percent":           s.HealPercent,
		"defense_pierce_percent": s.PiercePercent,
		"dodge_percent":          s.DodgePercent,
		"hp_cost_percent":        s.HPCostPercent,
		"shield_percent":         s.ShieldPercent,
	} {
		if v < 0 || v > 100 {
			el.Add(fmt.Errorf("%s must be between 0 and 100", name))
		}
	}
	if s.BuffStat != "" {
		if !IsStat(s.BuffStat) {
			el.Add(fmt.Errorf("unknown buff_stat %q", s.BuffStat))
		}
		if s.BuffDuration <= 0 {
			el.Add(fmt.Errorf("buff_duration must be positive"))
		}
	}

	return el.Err()
}

// Effects describes the skill's combat effects for display.
func (s *Skill) Effects() []string {
	var out []string
	if s.DamageMultiplier > 0 {
		basis := s.StatBasis
		if basis == "" {
			basis = BasisSTR
		}
		out = append(out, fmt.Sprintf("Deals %gx %s damage", s.DamageMultiplier, strings.ToUpper(string(basis))))
	}
	if s.HealPercent > 0 {
		out = append(out, fmt.Sprintf("Heals %d%% HP", s.HealPercent))
	}
	if s.IgnoresDefense {
		out = append(out, "Ignores defense")
	} else if s.PiercePercent > 0 {
		out = append(out, fmt.Sprintf("Pierces %d%% defense", s.PiercePercent))
	}
	if s.Stun {
		out = append(out, "Stuns the enemy (skips its turn)")
	}
	if s.ShieldPercent > 0 {
		out = append(out, fmt.Sprintf("Reduces damage taken by %d%%", s.ShieldPercent))
	}
	if s.DodgePercent > 0 {
		out = append(out, fmt.Sprintf("%d%% dodge chance", s.DodgePercent))
	}
	if s.BuffStat != "" {
		out = append(out, fmt.Sprintf("+%d%% %s (%d rounds)", s.BuffPercent, strings.ToUpper(s.BuffStat), s.BuffDuration))
	}
	return out
}

// ForRace reports whether a character of race may ever learn the skill.
func (s *Skill) ForRace(race string) bool {
	return s.Race == "" || s.Race == race
}
