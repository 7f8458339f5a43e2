// Package economy holds the global energy pool, its regeneration, the
// science tally and the upgrades that parameterize building production.
package economy

import (
	"fmt"

	"terrasky/internal/building"
)

// Upgrade identifies a one-time economy upgrade.
type Upgrade uint8

const (
	Regen Upgrade = iota + 1
	Capacity
	Efficiency
)

// Upgrades lists every upgrade in menu order.
var Upgrades = []Upgrade{Regen, Capacity, Efficiency}

var upgradeNames = map[Upgrade]string{
	Regen:      "regen",
	Capacity:   "capacity",
	Efficiency: "efficiency",
}

func (u Upgrade) String() string {
	if n, ok := upgradeNames[u]; ok {
		return n
	}
	return fmt.Sprintf("upgrade(%d)", uint8(u))
}

// ParseUpgrade converts a config name to its Upgrade.
func ParseUpgrade(name string) (Upgrade, error) {
	for u, n := range upgradeNames {
		if n == name {
			return u, nil
		}
	}
	return 0, fmt.Errorf("unknown upgrade %q", name)
}

// Params tune the economy.
type Params struct {
	StartEnergy      float64
	BaseRegen        float64 // per tick without the regen upgrade
	UpgradedRegen    float64 // per tick with the regen upgrade
	BaseCapacity     float64
	UpgradedCapacity float64
	SolarBonus       float64 // extra regen per solar panel
	BeamAmount       float64 // energy moved by one beam
	EfficiencySpeed  float64 // furnace speed modifier with the efficiency upgrade
	UpgradeCosts     map[Upgrade]int
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		StartEnergy:      100,
		BaseRegen:        0.1,
		UpgradedRegen:    0.5,
		BaseCapacity:     100,
		UpgradedCapacity: 200,
		SolarBonus:       0.2,
		BeamAmount:       5,
		EfficiencySpeed:  1.5,
		UpgradeCosts: map[Upgrade]int{
			Regen:      5,
			Capacity:   10,
			Efficiency: 15,
		},
	}
}

// Economy is the global resource state. 0 <= GlobalEnergy <= Capacity().
type Economy struct {
	GlobalEnergy float64
	Science      int

	upgrades map[Upgrade]bool
	p        Params
}

// New creates an economy holding p.StartEnergy, clamped to base capacity.
func New(p Params) *Economy {
	e := &Economy{upgrades: make(map[Upgrade]bool), p: p}
	e.GlobalEnergy = min(max(0, p.StartEnergy), e.Capacity())
	return e
}

// Params returns the tuning the economy was built with.
func (e *Economy) Params() Params { return e.p }

// Has reports whether u is active.
func (e *Economy) Has(u Upgrade) bool { return e.upgrades[u] }

// Unlock activates u without charging for it. It reports false if u was
// already active.
func (e *Economy) Unlock(u Upgrade) bool {
	if e.upgrades[u] {
		return false
	}
	e.upgrades[u] = true
	return true
}

// Cost returns the science price of u.
func (e *Economy) Cost(u Upgrade) int { return e.p.UpgradeCosts[u] }

// Purchase spends science on u. Nothing changes when u is already owned or
// the science tally is short.
func (e *Economy) Purchase(u Upgrade) bool {
	cost := e.Cost(u)
	if e.upgrades[u] || e.Science < cost {
		return false
	}
	e.Science -= cost
	e.upgrades[u] = true
	return true
}

// Capacity returns the current global energy cap.
func (e *Economy) Capacity() float64 {
	if e.upgrades[Capacity] {
		return e.p.UpgradedCapacity
	}
	return e.p.BaseCapacity
}

// RegenRate returns the energy gained per tick with solars solar panels.
func (e *Economy) RegenRate(solars int) float64 {
	base := e.p.BaseRegen
	if e.upgrades[Regen] {
		base = e.p.UpgradedRegen
	}
	return base + e.p.SolarBonus*float64(solars)
}

// Tick regenerates the pool for one simulation step.
func (e *Economy) Tick(solars int) {
	e.GlobalEnergy = min(e.Capacity(), max(0, e.GlobalEnergy+e.RegenRate(solars)))
}

// Modifiers returns the production modifiers buildings tick with.
func (e *Economy) Modifiers() building.Modifiers {
	if e.upgrades[Efficiency] {
		return building.Modifiers{Speed: e.p.EfficiencySpeed}
	}
	return building.Modifiers{Speed: 1}
}

// Beam moves BeamAmount from the pool into b, clamped to b's capacity. It is
// all or nothing: when the pool holds less than BeamAmount nothing moves.
func (e *Economy) Beam(b *building.Building) bool {
	if b == nil || e.GlobalEnergy < e.p.BeamAmount {
		return false
	}
	e.GlobalEnergy -= e.p.BeamAmount
	b.Charge(e.p.BeamAmount)
	b.Charged = true
	return true
}
