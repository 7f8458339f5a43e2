package game

import (
	"terrasky/internal/geom"
	"terrasky/internal/sim"

	"github.com/gdamore/tcell/v2"
)

// command is a front-end request that never reaches the simulation.
type command uint8

const (
	cmdNone command = iota
	cmdQuit
	cmdZoomIn
	cmdZoomOut
	cmdPanUp
	cmdPanDown
	cmdPanLeft
	cmdPanRight
)

// keyToCommand maps the keys the front-end handles itself. Arrow keys pan
// the overview in the sky role and move the player on the ground.
func keyToCommand(ev *tcell.EventKey, role sim.Role) command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return cmdQuit
	}
	if role == sim.Sky {
		switch ev.Key() {
		case tcell.KeyUp:
			return cmdPanUp
		case tcell.KeyDown:
			return cmdPanDown
		case tcell.KeyLeft:
			return cmdPanLeft
		case tcell.KeyRight:
			return cmdPanRight
		}
	}
	if ev.Key() != tcell.KeyRune {
		return cmdNone
	}
	switch ev.Rune() {
	case 'q', 'Q':
		return cmdQuit
	case '+', '=':
		if role == sim.Sky {
			return cmdZoomIn
		}
	case '-', '_':
		if role == sim.Sky {
			return cmdZoomOut
		}
	}
	return cmdNone
}

// keyToAction maps a tcell key event to a simulation action for the role.
func keyToAction(ev *tcell.EventKey, role sim.Role) sim.Action {
	switch ev.Key() {
	case tcell.KeyTab:
		return sim.ActionToggleRole
	case tcell.KeyUp:
		return groundOnly(role, sim.ActionMoveUp)
	case tcell.KeyDown:
		return groundOnly(role, sim.ActionMoveDown)
	case tcell.KeyLeft:
		return groundOnly(role, sim.ActionMoveLeft)
	case tcell.KeyRight:
		return groundOnly(role, sim.ActionMoveRight)
	case tcell.KeyRune:
	default:
		return sim.ActionNone
	}

	switch ev.Rune() {
	case 'w', 'W':
		return groundOnly(role, sim.ActionMoveUp)
	case 's', 'S':
		return groundOnly(role, sim.ActionMoveDown)
	case 'a', 'A':
		return groundOnly(role, sim.ActionMoveLeft)
	case 'd', 'D':
		return groundOnly(role, sim.ActionMoveRight)
	case ' ':
		return sim.ActionGather
	case 'e', 'E':
		if role == sim.Sky {
			return sim.ActionToggleUpgrades
		}
		return sim.ActionToggleInventory
	case 'r', 'R':
		return sim.ActionToggleRecipes
	case 'u', 'U':
		return sim.ActionToggleUpgrades
	case 'x', 'X':
		return sim.ActionDemolish
	case '3':
		return sim.ActionBeam
	}
	return sim.ActionNone
}

func groundOnly(role sim.Role, a sim.Action) sim.Action {
	if role != sim.Ground {
		return sim.ActionNone
	}
	return a
}

// mouseToEvents converts a tcell mouse event into pointer records. down
// reports whether the primary button was held before this event and is
// updated in place. Wheel motion is returned separately as a zoom step.
func mouseToEvents(ev *tcell.EventMouse, down *bool) (events []sim.Event, zoom int) {
	x, y := ev.Position()
	pos := geom.Point{X: x, Y: y}
	buttons := ev.Buttons()

	switch {
	case buttons&tcell.WheelUp != 0:
		zoom = -1
	case buttons&tcell.WheelDown != 0:
		zoom = 1
	}

	pressed := buttons&tcell.Button1 != 0
	switch {
	case pressed && !*down:
		events = append(events, sim.Event{Kind: sim.PointerDown, Pos: pos, Button: sim.ButtonPrimary})
	case !pressed && *down:
		events = append(events, sim.Event{Kind: sim.PointerUp, Pos: pos, Button: sim.ButtonPrimary})
	default:
		events = append(events, sim.Event{Kind: sim.PointerMove, Pos: pos})
	}
	*down = pressed
	return events, zoom
}
