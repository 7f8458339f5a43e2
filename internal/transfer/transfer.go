// Package transfer implements the cursor-held item and the click protocol
// that moves stacks between slots: pick up, place, stack and swap.
package transfer

import "terrasky/internal/item"

// Outcome names what a click did.
type Outcome uint8

const (
	None Outcome = iota
	Picked
	Placed
	Stacked
	Swapped
)

func (o Outcome) String() string {
	switch o {
	case Picked:
		return "picked"
	case Placed:
		return "placed"
	case Stacked:
		return "stacked"
	case Swapped:
		return "swapped"
	}
	return "none"
}

// Controller owns the single stack held by the pointer. There is one per
// player, shared by every panel.
type Controller struct {
	held item.Stack
}

// Held returns the stack in hand and whether there is one.
func (c *Controller) Held() (item.Stack, bool) {
	if c.held.Empty() {
		return item.Stack{}, false
	}
	return c.held, true
}

// Holding reports whether anything is in hand.
func (c *Controller) Holding() bool { return !c.held.Empty() }

// Click resolves a click on a general-purpose slot (inventory cell or
// machine input port).
//
//	hand   slot      result
//	empty  empty     nothing
//	empty  occupied  pick up
//	stack  empty     place
//	stack  same kind stack, up to the cap; the rest stays in hand
//	stack  other     swap
func (c *Controller) Click(s *item.Slot) Outcome {
	if s == nil {
		return None
	}
	switch {
	case c.held.Empty() && s.Empty():
		return None
	case c.held.Empty():
		c.held, _ = s.Take()
		return Picked
	case s.Empty():
		if !s.Place(c.held) {
			return None
		}
		c.held = item.Stack{}
		return Placed
	case s.Kind() == c.held.Kind:
		rem := s.Merge(c.held)
		if rem == c.held {
			return None
		}
		c.held = rem
		return Stacked
	default:
		c.held = s.Swap(c.held)
		return Swapped
	}
}

// ClickOutput resolves a click on a machine output port. Output holds only
// produced goods, so the hand can take from it but never put anything in:
// an empty hand takes the whole stack, a matching hand fills up to the cap
// and leaves the rest in the port. Anything else is refused.
func (c *Controller) ClickOutput(s *item.Slot) Outcome {
	if s == nil || s.Empty() {
		return None
	}
	if c.held.Empty() {
		c.held, _ = s.Take()
		return Picked
	}
	if s.Kind() != c.held.Kind {
		return None
	}
	n := s.Remove(c.held.Room())
	if n == 0 {
		return None
	}
	c.held.Count += n
	return Stacked
}

// Stow puts the held stack back into inv. Whatever does not fit stays in
// hand.
func (c *Controller) Stow(inv *item.Inventory) {
	if c.held.Empty() || inv == nil {
		return
	}
	c.held = inv.Add(c.held)
}
