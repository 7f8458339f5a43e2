// Package sim is the single-threaded game simulation: the player, the
// buildings, the economy and the panels, advanced one fixed tick at a time.
package sim

import (
	"fmt"
	"log/slog"

	"terrasky/internal/building"
	"terrasky/internal/economy"
	"terrasky/internal/gamemap"
	"terrasky/internal/geom"
	"terrasky/internal/hud"
	"terrasky/internal/item"
	"terrasky/internal/notify"
	"terrasky/internal/transfer"
	"terrasky/internal/window"

	"github.com/google/uuid"
)

// Panel ids.
const (
	PanelInventory = "inventory"
	PanelRecipes   = "recipes"
	PanelUpgrades  = "upgrades"
)

// Role is the player's interaction mode.
type Role uint8

const (
	Ground Role = iota
	Sky
)

func (r Role) String() string {
	if r == Sky {
		return "SKY"
	}
	return "GROUND"
}

// Player is the avatar and its storage.
type Player struct {
	Pos       geom.Point
	Inventory *item.Inventory
}

// BuildResult is the outcome of a construction attempt.
type BuildResult uint8

const (
	BuildOK BuildResult = iota
	BuildInsufficient
	BuildOccupied
	BuildUnknown
)

func (r BuildResult) String() string {
	switch r {
	case BuildOK:
		return "success"
	case BuildInsufficient:
		return "insufficient_resources"
	case BuildOccupied:
		return "occupied"
	}
	return "unknown_recipe"
}

// Options configure a new Simulation.
type Options struct {
	Map            *gamemap.GameMap
	Spawn          geom.Point
	InventorySlots int
	StartInventory item.Tally
	Recipes        map[building.Kind]item.Tally
	Building       building.Params
	Economy        economy.Params
	BeamRange      int // tiles
	MessageTTL     int // ticks
	Viewport       geom.Rect
	Logger         *slog.Logger
	// Notifier receives every message in addition to the in-game log.
	Notifier notify.Notifier
}

// Simulation owns all mutable game state. It is not safe for concurrent
// use; front-ends feed it events and call Step from one goroutine.
type Simulation struct {
	Map      *gamemap.GameMap
	Player   Player
	Economy  *economy.Economy
	Hand     *transfer.Controller
	Windows  *window.Manager
	Messages *notify.Log
	Role     Role
	Tick     uint64

	buildings []*building.Building
	recipes   map[building.Kind]item.Tally
	params    building.Params
	beamRange int

	invPanel *hud.InventoryPanel
	pending  []Event
	notifier notify.Notifier
	logger   *slog.Logger
}

// New builds a simulation from opts. The player starts at opts.Spawn with
// opts.StartInventory.
func New(opts Options) *Simulation {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := &Simulation{
		Map:       opts.Map,
		Player:    Player{Pos: opts.Spawn, Inventory: item.NewInventory(opts.InventorySlots)},
		Economy:   economy.New(opts.Economy),
		Hand:      &transfer.Controller{},
		Windows:   window.NewManager(opts.Viewport),
		Messages:  notify.NewLog(opts.MessageTTL, notify.DefaultMax),
		recipes:   opts.Recipes,
		params:    opts.Building,
		beamRange: opts.BeamRange,
		logger:    logger,
	}
	s.notifier = notify.Multi{s.Messages, opts.Notifier}

	for _, k := range item.Kinds {
		if n := opts.StartInventory[k]; n > 0 {
			s.Player.Inventory.Add(item.NewStack(k, n))
		}
	}
	s.addPanels()
	return s
}

func (s *Simulation) addPanels() {
	s.invPanel = &hud.InventoryPanel{
		Inv:  s.Player.Inventory,
		Hand: s.Hand,
		OnTransfer: func(o transfer.Outcome) {
			s.logger.Debug("transfer", "outcome", o, "tick", s.Tick)
		},
	}
	w, h := s.invPanel.BodySize()
	s.Windows.Add(&window.Panel{
		ID: PanelInventory, Title: "INVENTORY & MACHINE",
		Bounds:  geom.Rect{X: 2, Y: 2, W: w, H: h + 1},
		Content: s.invPanel,
	})

	rp := &hud.RecipePanel{Build: s.buildHere}
	for _, k := range building.Kinds {
		if cost, ok := s.recipes[k]; ok {
			rp.Recipes = append(rp.Recipes, hud.Recipe{Kind: k, Cost: cost})
		}
	}
	w, h = rp.BodySize()
	s.Windows.Add(&window.Panel{
		ID: PanelRecipes, Title: "CONSTRUCTION",
		Bounds:  geom.Rect{X: 46, Y: 2, W: w, H: h + 1},
		Content: rp,
	})

	up := &hud.UpgradePanel{Economy: s.Economy, Buy: func(u economy.Upgrade) { s.Purchase(u) }}
	w, h = up.BodySize()
	s.Windows.Add(&window.Panel{
		ID: PanelUpgrades, Title: "UPGRADES",
		Bounds:  geom.Rect{X: 10, Y: 4, W: w, H: h + 1},
		Content: up,
	})
}

// InventoryPanel returns the content of the inventory panel.
func (s *Simulation) InventoryPanel() *hud.InventoryPanel { return s.invPanel }

func (s *Simulation) emit(format string, args ...any) {
	s.notifier.Emit(fmt.Sprintf(format, args...))
}

// Push queues an input event for the next Step.
func (s *Simulation) Push(ev Event) {
	s.pending = append(s.pending, ev)
}

// Step advances one tick: queued events in arrival order, then the economy,
// then every building once, then message ageing.
func (s *Simulation) Step() {
	events := s.pending
	s.pending = nil
	for _, ev := range events {
		s.Handle(ev)
	}

	s.Economy.Tick(s.SolarCount())
	mods := s.Economy.Modifiers()
	for _, b := range s.buildings {
		r := b.Tick(mods)
		switch {
		case r.Science > 0:
			s.Economy.Science += r.Science
			s.emit("Produced %d Science Data!", r.Science)
		case !r.Produced.Empty():
			s.emit("%s produced %s", b.Kind, r.Produced)
		case r.Blocked:
			s.logger.Debug("output blocked", "building", b.ID, "tick", s.Tick)
		}
	}
	s.Messages.Tick()
	s.Tick++
}

// Handle dispatches one event immediately.
func (s *Simulation) Handle(ev Event) {
	switch ev.Kind {
	case PointerDown:
		if ev.Button == ButtonPrimary {
			s.Windows.PointerDown(ev.Pos)
		}
	case PointerMove:
		s.Windows.PointerMove(ev.Pos)
	case PointerUp:
		s.Windows.PointerUp(ev.Pos)
	case KeyDown:
		s.act(ev)
	}
}

func (s *Simulation) act(ev Event) {
	if ev.Action == ActionToggleRole {
		s.ToggleRole()
		return
	}
	if s.Role == Sky {
		switch ev.Action {
		case ActionBeam:
			s.Beam(ev.Target)
		case ActionToggleUpgrades:
			s.Windows.Toggle(PanelUpgrades)
		}
		return
	}
	switch ev.Action {
	case ActionMoveUp:
		s.Move(0, -1)
	case ActionMoveDown:
		s.Move(0, 1)
	case ActionMoveLeft:
		s.Move(-1, 0)
	case ActionMoveRight:
		s.Move(1, 0)
	case ActionGather:
		s.Gather()
	case ActionToggleInventory:
		s.ToggleInventory()
	case ActionToggleRecipes:
		s.Windows.Toggle(PanelRecipes)
	case ActionDemolish:
		if b := s.BuildingAt(s.Player.Pos); b != nil {
			s.Demolish(b.ID)
		}
	}
}

// ToggleRole switches between Ground and Sky. Entering Sky hides every panel
// and returns the held stack to the inventory where it fits.
func (s *Simulation) ToggleRole() {
	if s.Role == Ground {
		s.Role = Sky
		s.Windows.HideAll()
		s.Hand.Stow(s.Player.Inventory)
	} else {
		s.Role = Ground
		s.Windows.Hide(PanelUpgrades)
	}
	s.emit("Role: %s", s.Role)
}

// ToggleInventory shows the inventory panel targeting the building on the
// player's tile, or hides it when already shown.
func (s *Simulation) ToggleInventory() {
	p := s.Windows.Panel(PanelInventory)
	if p.Visible {
		s.Windows.Hide(PanelInventory)
		return
	}
	s.invPanel.Machine = s.BuildingAt(s.Player.Pos)
	s.Windows.Show(PanelInventory)
}

// Move steps the player by (dx, dy). Water, the map edge and an active
// panel drag all block movement.
func (s *Simulation) Move(dx, dy int) bool {
	if s.Role != Ground || s.Windows.Dragging() {
		return false
	}
	to := s.Player.Pos.Add(geom.Point{X: dx, Y: dy})
	if !s.Map.IsWalkable(to.X, to.Y) {
		return false
	}
	s.Player.Pos = to
	return true
}

// Gather collects the resource node on the player's tile.
func (s *Simulation) Gather() (item.Kind, bool) {
	return s.GatherAt(s.Player.Pos)
}

// GatherAt consumes the node at p into the player's inventory. A full
// inventory leaves the node in place.
func (s *Simulation) GatherAt(p geom.Point) (item.Kind, bool) {
	if !s.Map.InBounds(p.X, p.Y) {
		return 0, false
	}
	k, ok := s.Map.At(p.X, p.Y).Resource.Yield()
	if !ok {
		return 0, false
	}
	if !s.Player.Inventory.Fits(item.NewStack(k, 1)) {
		s.emit("Inventory full!")
		return 0, false
	}
	s.Map.GatherAt(p)
	s.Player.Inventory.Add(item.NewStack(k, 1))
	s.emit("+1 %s", k)
	return k, true
}

// Recipe returns the construction cost of k.
func (s *Simulation) Recipe(k building.Kind) (item.Tally, bool) {
	cost, ok := s.recipes[k]
	return cost, ok
}

func (s *Simulation) buildHere(k building.Kind) {
	s.Build(k, s.Player.Pos, s.Player.Inventory)
}

// Build pays the recipe for k out of payer and places a building at pos.
// Either the whole cost is paid and the building exists, or nothing changes.
func (s *Simulation) Build(k building.Kind, pos geom.Point, payer *item.Inventory) BuildResult {
	cost, ok := s.recipes[k]
	if !ok {
		return BuildUnknown
	}
	if !s.Map.IsWalkable(pos.X, pos.Y) || s.BuildingAt(pos) != nil {
		s.emit("Cannot build here!")
		return BuildOccupied
	}
	if !payer.Pay(cost) {
		s.emit("Missing Resources!")
		return BuildInsufficient
	}
	b := building.New(k, pos, s.params)
	s.buildings = append(s.buildings, b)
	s.logger.Info("built", "kind", k, "pos", pos, "id", b.ID, "tick", s.Tick)
	s.emit("Built %s!", k)
	return BuildOK
}

// Demolish removes the building with id and moves its port contents into
// the player's inventory. If they would not all fit, nothing changes and
// "Inventory full!" is emitted. An unknown id is ignored.
func (s *Simulation) Demolish(id uuid.UUID) bool {
	for i, b := range s.buildings {
		if b.ID != id {
			continue
		}
		ports := []*item.Slot{&b.Input, &b.Output}
		var contents []item.Stack
		for _, port := range ports {
			if st, ok := port.Stack(); ok {
				contents = append(contents, st)
			}
		}
		if !s.Player.Inventory.FitsAll(contents...) {
			s.logger.Debug("demolish refused", "kind", b.Kind, "id", id, "ports", contents)
			s.emit("Inventory full!")
			return false
		}
		for _, port := range ports {
			if st, ok := port.Take(); ok {
				s.Player.Inventory.Add(st)
			}
		}
		s.buildings = append(s.buildings[:i], s.buildings[i+1:]...)
		if s.invPanel.Machine == b {
			s.invPanel.Machine = nil
		}
		s.logger.Info("demolished", "kind", b.Kind, "pos", b.Pos, "id", id, "tick", s.Tick)
		s.emit("Removed %s", b.Kind)
		return true
	}
	return false
}

// Buildings returns the buildings in construction order. The slice is a copy.
func (s *Simulation) Buildings() []*building.Building {
	out := make([]*building.Building, len(s.buildings))
	copy(out, s.buildings)
	return out
}

// BuildingAt returns the building on tile p, or nil.
func (s *Simulation) BuildingAt(p geom.Point) *building.Building {
	for _, b := range s.buildings {
		if b.Pos == p {
			return b
		}
	}
	return nil
}

// SolarCount returns the number of solar panels built.
func (s *Simulation) SolarCount() int {
	n := 0
	for _, b := range s.buildings {
		if b.Kind == building.SolarPanel {
			n++
		}
	}
	return n
}

// Beam charges the building closest to target, if one lies strictly within
// the beam range. Out-of-range and short-energy beams change nothing.
func (s *Simulation) Beam(target geom.Point) bool {
	var best *building.Building
	bestDist := s.beamRange * s.beamRange
	for _, b := range s.buildings {
		if d := b.Pos.DistSq(target); d < bestDist {
			best, bestDist = b, d
		}
	}
	if best == nil {
		return false
	}
	if !s.Economy.Beam(best) {
		s.logger.Debug("beam refused", "energy", s.Economy.GlobalEnergy, "tick", s.Tick)
		s.emit("Not enough energy!")
		return false
	}
	s.logger.Debug("beam", "building", best.ID, "energy", best.Energy, "tick", s.Tick)
	return true
}

// Purchase buys an upgrade with science data.
func (s *Simulation) Purchase(u economy.Upgrade) bool {
	if s.Economy.Has(u) {
		s.emit("%s already unlocked", u)
		return false
	}
	if !s.Economy.Purchase(u) {
		s.emit("Need %d science for %s", s.Economy.Cost(u), u)
		return false
	}
	s.logger.Info("upgrade", "upgrade", u, "tick", s.Tick)
	s.emit("Unlocked %s!", u)
	return true
}

// SetViewport resizes the area panels are confined to.
func (s *Simulation) SetViewport(r geom.Rect) {
	s.Windows.SetViewport(r)
}
