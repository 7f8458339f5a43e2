// Package building implements the processing machines a player constructs
// and the per-tick production state machine that drives them.
package building

import (
	"fmt"

	"terrasky/internal/geom"
	"terrasky/internal/item"

	"github.com/google/uuid"
)

// Kind identifies a building type.
type Kind uint8

const (
	Furnace Kind = iota + 1
	SolarPanel
	ScienceLab
)

// Kinds lists every building kind in construction-menu order.
var Kinds = []Kind{Furnace, SolarPanel, ScienceLab}

var kindNames = map[Kind]string{
	Furnace:    "furnace",
	SolarPanel: "solar_panel",
	ScienceLab: "science_lab",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("building(%d)", uint8(k))
}

// ParseKind converts a config name such as "science_lab" to its Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown building kind %q", name)
}

// State is the production state of a building, derived from its fields.
type State uint8

const (
	// Idle: no valid input or no energy. The process timer does not advance.
	Idle State = iota
	// Processing: valid input present and energy above zero.
	Processing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Processing:
		return "Processing"
	default:
		return "Unknown"
	}
}

// Params are the tunables shared by every building instance.
type Params struct {
	EnergyCapacity  float64 // per-building energy cap
	ProcessDuration int     // furnace ticks per unit, before speed modifiers
	LabDuration     int     // science lab ticks per unit, never modified
	Drain           float64 // energy spent per processing tick, before speed modifiers
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		EnergyCapacity:  500,
		ProcessDuration: 120,
		LabDuration:     180,
		Drain:           0.5,
	}
}

// Modifiers carry economy-wide adjustments into a tick.
type Modifiers struct {
	// Speed divides furnace duration and drain. Values <= 0 mean 1.
	Speed float64
}

func (m Modifiers) speed() float64 {
	if m.Speed <= 0 {
		return 1
	}
	return m.Speed
}

// Result reports what a single tick produced.
type Result struct {
	Produced item.Stack // furnace output accepted this tick
	Science  int        // science data emitted this tick
	Blocked  bool       // a cycle completed but the output port refused the unit
}

// Building is one placed machine. Input and Output are owned by the
// building; the UI reaches them only through the transfer controller.
type Building struct {
	ID   uuid.UUID
	Kind Kind
	Pos  geom.Point

	Input  item.Slot
	Output item.Slot

	Energy          float64
	EnergyCapacity  float64
	ProcessTimer    int
	ProcessDuration int
	ValidInputs     []item.Kind

	drain float64

	// Charged is set when a beam lands and cleared by the renderer once drawn.
	Charged bool
}

// New creates a building of kind k at pos with no energy and empty ports.
func New(k Kind, pos geom.Point, p Params) *Building {
	b := &Building{
		ID:             uuid.New(),
		Kind:           k,
		Pos:            pos,
		EnergyCapacity: p.EnergyCapacity,
		drain:          p.Drain,
	}
	switch k {
	case Furnace:
		b.ProcessDuration = p.ProcessDuration
		b.ValidInputs = []item.Kind{item.IronOre, item.CopperOre}
	case ScienceLab:
		b.ProcessDuration = p.LabDuration
		b.ValidInputs = []item.Kind{item.IronBar, item.CopperBar}
	}
	return b
}

// Accepts reports whether k is a valid input for this building.
func (b *Building) Accepts(k item.Kind) bool {
	for _, v := range b.ValidInputs {
		if v == k {
			return true
		}
	}
	return false
}

// HasInput reports whether the building exposes an input port.
func (b *Building) HasInput() bool { return b.Kind == Furnace || b.Kind == ScienceLab }

// HasOutput reports whether the building exposes an output port.
func (b *Building) HasOutput() bool { return b.Kind == Furnace }

// State is the single place where Idle vs Processing is decided.
func (b *Building) State() State {
	if b.Energy > 0 && b.Accepts(b.Input.Kind()) {
		return Processing
	}
	return Idle
}

// TargetDuration returns the number of ticks one unit takes under m.
func (b *Building) TargetDuration(m Modifiers) float64 {
	if b.Kind == Furnace {
		return float64(b.ProcessDuration) / m.speed()
	}
	return float64(b.ProcessDuration)
}

// Progress returns the fraction of the current cycle completed, in [0, 1].
func (b *Building) Progress(m Modifiers) float64 {
	d := b.TargetDuration(m)
	if d <= 0 {
		return 0
	}
	return min(1, float64(b.ProcessTimer)/d)
}

// Charge adds up to amount energy, clamped to capacity, and returns the
// energy actually stored.
func (b *Building) Charge(amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	before := b.Energy
	b.Energy = min(b.EnergyCapacity, b.Energy+amount)
	return b.Energy - before
}

func (b *Building) spend(amount float64) {
	b.Energy = max(0, b.Energy-amount)
}

// Tick advances the building by one simulation step. It reads and writes
// only the building's own fields.
func (b *Building) Tick(m Modifiers) Result {
	if b.State() != Processing {
		b.ProcessTimer = 0
		return Result{}
	}
	switch b.Kind {
	case Furnace:
		return b.tickFurnace(m)
	case ScienceLab:
		return b.tickLab()
	}
	return Result{}
}

func (b *Building) tickFurnace(m Modifiers) Result {
	speed := m.speed()
	b.ProcessTimer++
	b.spend(b.drain / speed)
	if float64(b.ProcessTimer) < b.TargetDuration(m) {
		return Result{}
	}

	// The cycle resets whether or not the output accepts the unit; input is
	// consumed only when it does.
	b.ProcessTimer = 0
	bar, ok := Smelt(b.Input.Kind())
	if !ok {
		return Result{}
	}
	unit := item.NewStack(bar, 1)
	if rem := b.Output.Merge(unit); !rem.Empty() {
		return Result{Blocked: true}
	}
	b.Input.Remove(1)
	return Result{Produced: unit}
}

func (b *Building) tickLab() Result {
	b.ProcessTimer++
	b.spend(b.drain)
	if b.ProcessTimer < b.ProcessDuration {
		return Result{}
	}
	b.ProcessTimer = 0
	b.Input.Remove(1)
	return Result{Science: 1}
}

// Smelt maps an ore to the bar a furnace makes from it.
func Smelt(k item.Kind) (item.Kind, bool) {
	switch k {
	case item.IronOre:
		return item.IronBar, true
	case item.CopperOre:
		return item.CopperBar, true
	}
	return 0, false
}
