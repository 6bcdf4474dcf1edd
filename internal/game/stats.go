package game

import (
	"fmt"
	"math"
	"strings"
)

// Stat names used in content files and skill definitions.
const (
	StatSTR = "str"
	StatDEX = "dex"
	StatINT = "int"
	StatVIT = "vit"
)

// StatNames lists the four attributes in display order.
var StatNames = []string{StatSTR, StatDEX, StatINT, StatVIT}

// Attributes are the four growable stats of a character or monster.
type Attributes struct {
	STR int `json:"str"`
	DEX int `json:"dex"`
	INT int `json:"int"`
	VIT int `json:"vit"`
}

// Get returns the attribute called name, or 0 for an unknown name.
func (a Attributes) Get(name string) int {
	switch strings.ToLower(name) {
	case StatSTR:
		return a.STR
	case StatDEX:
		return a.DEX
	case StatINT:
		return a.INT
	case StatVIT:
		return a.VIT
	}
	return 0
}

// Set assigns the attribute called name. Unknown names are ignored.
func (a *Attributes) Set(name string, v int) {
	switch strings.ToLower(name) {
	case StatSTR:
		a.STR = v
	case StatDEX:
		a.DEX = v
	case StatINT:
		a.INT = v
	case StatVIT:
		a.VIT = v
	}
}

// Scale multiplies every attribute, truncating toward zero. Multipliers that
// are missing from perStat fall back to scalar, and an unset scalar is 1. A
// per-stat multiplier is used as given, zero included.
func (a Attributes) Scale(scalar float64, perStat map[string]float64) Attributes {
	if scalar == 0 {
		scalar = 1
	}
	var out Attributes
	for _, name := range StatNames {
		m := scalar
		if v, ok := perStat[name]; ok {
			m = v
		}
		out.Set(name, int(float64(a.Get(name))*m))
	}
	return out
}

func (a Attributes) String() string {
	return fmt.Sprintf("STR %d  DEX %d  INT %d  VIT %d", a.STR, a.DEX, a.INT, a.VIT)
}

// IsStat reports whether name is one of the four attributes.
func IsStat(name string) bool {
	switch strings.ToLower(name) {
	case StatSTR, StatDEX, StatINT, StatVIT:
		return true
	}
	return false
}

// EffectiveStats applies a transformation and the Battle Hardened bonus to a
// character's base attributes. The Base form, an unknown form and a nil race
// all leave the base values untouched before the bonus. The result is a copy.
func EffectiveStats(base Attributes, race *Race, form string, battleBonus int) Attributes {
	eff := base
	if race != nil {
		if t := race.Form(form); t != nil {
			eff = base.Scale(t.Multiplier, t.Multipliers)
		}
		if race.Passive.Kind == PassiveBattleHardened && battleBonus > 0 {
			eff.STR += eff.STR * battleBonus / 100
		}
	}
	return eff
}

// growth returns how much a stat with per-level delta grows on reaching
// level. Fractional deltas accumulate across levels instead of being lost to
// truncation: a delta of 0.5 grows the stat on every second level.
func growth(delta float64, level int) int {
	if level < 2 {
		return 0
	}
	return floor(delta*float64(level-1)) - floor(delta*float64(level-2))
}

// floor truncates with a small tolerance so 1.15*100 lands on 115.
func floor(v float64) int {
	return int(math.Floor(v + 1e-9))
}
