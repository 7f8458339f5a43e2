package sim

import "terrasky/internal/geom"

// EventKind distinguishes input records.
type EventKind uint8

const (
	PointerDown EventKind = iota
	PointerUp
	PointerMove
	KeyDown
)

// Button identifies a pointer button.
type Button uint8

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonSecondary
)

// Action is a game command produced by the key mapping of a front-end.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionGather
	ActionToggleRole
	ActionToggleInventory
	ActionToggleRecipes
	ActionToggleUpgrades
	ActionBeam
	ActionDemolish
)

var actionNames = map[Action]string{
	ActionMoveUp:          "move_up",
	ActionMoveDown:        "move_down",
	ActionMoveLeft:        "move_left",
	ActionMoveRight:       "move_right",
	ActionGather:          "gather",
	ActionToggleRole:      "toggle_role",
	ActionToggleInventory: "toggle_inventory",
	ActionToggleRecipes:   "toggle_recipes",
	ActionToggleUpgrades:  "toggle_upgrades",
	ActionBeam:            "beam",
	ActionDemolish:        "demolish",
}

func (a Action) String() string {
	if n, ok := actionNames[a]; ok {
		return n
	}
	return "none"
}

// Event is one input record. Pointer events carry the screen cell in Pos.
// Target is the world tile under the pointer, filled in by the front-end
// for actions that aim (beam).
type Event struct {
	Kind   EventKind
	Pos    geom.Point
	Button Button
	Action Action
	Target geom.Point
}
