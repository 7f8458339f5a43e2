// Package config loads the game tuning from YAML.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"terrasky/internal/building"
	"terrasky/internal/economy"
	"terrasky/internal/generate"
	"terrasky/internal/geom"
	"terrasky/internal/item"
	"terrasky/internal/notify"
	"terrasky/internal/sim"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable of a game.
type Config struct {
	TickRate  int                       `yaml:"tick_rate"` // Hz
	Seed      int64                     `yaml:"seed"`      // 0 picks a time-based seed
	World     WorldConfig               `yaml:"world"`
	Player    PlayerConfig              `yaml:"player"`
	Economy   EconomyConfig             `yaml:"economy"`
	Buildings BuildingsConfig           `yaml:"buildings"`
	Recipes   map[string]map[string]int `yaml:"recipes"`  // building → item → count
	Upgrades  map[string]int            `yaml:"upgrades"` // upgrade → science cost
	Messages  MessagesConfig            `yaml:"messages"`
}

// WorldConfig sizes the island.
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig sets the player's storage.
type PlayerConfig struct {
	InventorySlots int            `yaml:"inventory_slots"`
	StartInventory map[string]int `yaml:"start_inventory"`
}

// EconomyConfig tunes the global energy pool.
type EconomyConfig struct {
	StartEnergy      float64 `yaml:"start_energy"`
	BaseRegen        float64 `yaml:"base_regen"`
	UpgradedRegen    float64 `yaml:"upgraded_regen"`
	BaseCapacity     float64 `yaml:"base_capacity"`
	UpgradedCapacity float64 `yaml:"upgraded_capacity"`
	SolarBonus       float64 `yaml:"solar_bonus"`
	BeamAmount       float64 `yaml:"beam_amount"`
	BeamRange        int     `yaml:"beam_range"` // tiles
}

// BuildingsConfig tunes production.
type BuildingsConfig struct {
	EnergyCapacity  float64 `yaml:"energy_capacity"`
	ProcessDuration int     `yaml:"process_duration"`
	LabDuration     int     `yaml:"lab_duration"`
	Drain           float64 `yaml:"drain"`
	EfficiencySpeed float64 `yaml:"efficiency_speed"`
}

// MessagesConfig tunes the HUD message log.
type MessagesConfig struct {
	TTLTicks int `yaml:"ttl_ticks"`
}

// Default returns the stock configuration.
func Default() *Config {
	ep := economy.DefaultParams()
	bp := building.DefaultParams()
	return &Config{
		TickRate: 60,
		World:    WorldConfig{Width: 80, Height: 80},
		Player: PlayerConfig{
			InventorySlots: 30,
			StartInventory: map[string]int{"wood": 10, "stone": 10},
		},
		Economy: EconomyConfig{
			StartEnergy:      ep.StartEnergy,
			BaseRegen:        ep.BaseRegen,
			UpgradedRegen:    ep.UpgradedRegen,
			BaseCapacity:     ep.BaseCapacity,
			UpgradedCapacity: ep.UpgradedCapacity,
			SolarBonus:       ep.SolarBonus,
			BeamAmount:       ep.BeamAmount,
			BeamRange:        5,
		},
		Buildings: BuildingsConfig{
			EnergyCapacity:  bp.EnergyCapacity,
			ProcessDuration: bp.ProcessDuration,
			LabDuration:     bp.LabDuration,
			Drain:           bp.Drain,
			EfficiencySpeed: ep.EfficiencySpeed,
		},
		Recipes: map[string]map[string]int{
			"furnace":     {"wood": 5, "stone": 5},
			"solar_panel": {"iron_bar": 5, "copper_bar": 5},
			"science_lab": {"stone": 10, "iron_bar": 2},
		},
		Upgrades: map[string]int{"regen": 5, "capacity": 10, "efficiency": 15},
		Messages: MessagesConfig{TTLTicks: 120},
	}
}

// Load reads path and overlays it on Default. Keys absent from the file keep
// their default values. A recipe listed in the file replaces the default
// recipe for that building as a whole, and a listed start_inventory replaces
// the default starting items as a whole. Upgrade costs merge per upgrade.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := Default()
	start := cfg.Player.StartInventory
	cfg.Player.StartInventory = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.Player.StartInventory == nil {
		cfg.Player.StartInventory = start
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges and names. All problems are reported together.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.TickRate > 0, "tick_rate must be positive, got %d", c.TickRate)
	check(c.World.Width >= 8 && c.World.Height >= 8, "world must be at least 8x8, got %dx%d", c.World.Width, c.World.Height)
	check(c.Player.InventorySlots > 0 && c.Player.InventorySlots <= 64,
		"player.inventory_slots must be in 1..64, got %d", c.Player.InventorySlots)

	e := c.Economy
	check(e.BaseCapacity > 0 && e.UpgradedCapacity >= e.BaseCapacity,
		"economy capacities must be positive and non-decreasing")
	check(e.BaseRegen >= 0 && e.UpgradedRegen >= 0 && e.SolarBonus >= 0, "economy regen values must not be negative")
	check(e.StartEnergy >= 0, "economy.start_energy must not be negative")
	check(e.BeamAmount > 0, "economy.beam_amount must be positive")
	check(e.BeamRange > 0, "economy.beam_range must be positive")

	b := c.Buildings
	check(b.EnergyCapacity > 0, "buildings.energy_capacity must be positive")
	check(b.ProcessDuration > 0 && b.LabDuration > 0, "building durations must be positive")
	check(b.Drain >= 0, "buildings.drain must not be negative")
	check(b.EfficiencySpeed > 0, "buildings.efficiency_speed must be positive")
	check(c.Messages.TTLTicks > 0, "messages.ttl_ticks must be positive")

	start, err := tally(c.Player.StartInventory)
	if err != nil {
		errs = append(errs, fmt.Errorf("player.start_inventory: %w", err))
	} else {
		stacks := 0
		for _, n := range start {
			stacks += (n + item.MaxStack - 1) / item.MaxStack
		}
		check(stacks <= c.Player.InventorySlots, "player.start_inventory needs %d slots, have %d", stacks, c.Player.InventorySlots)
	}

	for name, cost := range c.Recipes {
		if _, err := building.ParseKind(name); err != nil {
			errs = append(errs, fmt.Errorf("recipes: %w", err))
		}
		if _, err := tally(cost); err != nil {
			errs = append(errs, fmt.Errorf("recipes.%s: %w", name, err))
		}
	}
	for name, cost := range c.Upgrades {
		if _, err := economy.ParseUpgrade(name); err != nil {
			errs = append(errs, fmt.Errorf("upgrades: %w", err))
		}
		check(cost >= 0, "upgrades.%s: cost must not be negative", name)
	}
	return errors.Join(errs...)
}

func tally(m map[string]int) (item.Tally, error) {
	t := make(item.Tally, len(m))
	for name, n := range m {
		k, err := item.ParseKind(name)
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, fmt.Errorf("%s: negative count %d", name, n)
		}
		t[k] = n
	}
	return t, nil
}

// BuildingParams converts the building section.
func (c *Config) BuildingParams() building.Params {
	return building.Params{
		EnergyCapacity:  c.Buildings.EnergyCapacity,
		ProcessDuration: c.Buildings.ProcessDuration,
		LabDuration:     c.Buildings.LabDuration,
		Drain:           c.Buildings.Drain,
	}
}

// EconomyParams converts the economy and upgrade sections. Unknown upgrade
// names are skipped; Validate reports them.
func (c *Config) EconomyParams() economy.Params {
	costs := make(map[economy.Upgrade]int, len(c.Upgrades))
	for name, cost := range c.Upgrades {
		if u, err := economy.ParseUpgrade(name); err == nil {
			costs[u] = cost
		}
	}
	return economy.Params{
		StartEnergy:      c.Economy.StartEnergy,
		BaseRegen:        c.Economy.BaseRegen,
		UpgradedRegen:    c.Economy.UpgradedRegen,
		BaseCapacity:     c.Economy.BaseCapacity,
		UpgradedCapacity: c.Economy.UpgradedCapacity,
		SolarBonus:       c.Economy.SolarBonus,
		BeamAmount:       c.Economy.BeamAmount,
		EfficiencySpeed:  c.Buildings.EfficiencySpeed,
		UpgradeCosts:     costs,
	}
}

// RecipeTable converts the recipes section, skipping invalid entries.
func (c *Config) RecipeTable() map[building.Kind]item.Tally {
	out := make(map[building.Kind]item.Tally, len(c.Recipes))
	for name, cost := range c.Recipes {
		k, err := building.ParseKind(name)
		if err != nil {
			continue
		}
		if t, err := tally(cost); err == nil {
			out[k] = t
		}
	}
	return out
}

// StartInventory converts the player's starting items.
func (c *Config) StartInventory() item.Tally {
	t, _ := tally(c.Player.StartInventory)
	return t
}

// NewSimulation generates an island from rng and returns a simulation
// configured by c. viewport is the screen area panels live in.
func (c *Config) NewSimulation(rng *rand.Rand, viewport geom.Rect, logger *slog.Logger) *sim.Simulation {
	gc := generate.DefaultConfig(rng)
	gc.MapWidth, gc.MapHeight = c.World.Width, c.World.Height
	gmap, spawn := generate.Generate(gc)
	return sim.New(sim.Options{
		Map:            gmap,
		Spawn:          spawn,
		InventorySlots: c.Player.InventorySlots,
		StartInventory: c.StartInventory(),
		Recipes:        c.RecipeTable(),
		Building:       c.BuildingParams(),
		Economy:        c.EconomyParams(),
		BeamRange:      c.Economy.BeamRange,
		MessageTTL:     c.Messages.TTLTicks,
		Viewport:       viewport,
		Logger:         logger,
		Notifier:       notify.NewLogger(logger),
	})
}
