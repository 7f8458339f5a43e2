package item

import (
	"fmt"
	"sort"
	"strings"
)

// Inventory is an ordered, fixed-size sequence of slots. Order is only used
// to decide where auto-inserted stacks land.
type Inventory struct {
	slots []Slot
}

// NewInventory creates an inventory with size empty slots.
func NewInventory(size int) *Inventory {
	if size < 0 {
		size = 0
	}
	return &Inventory{slots: make([]Slot, size)}
}

// Len returns the number of slots.
func (inv *Inventory) Len() int { return len(inv.slots) }

// Slot returns the i-th slot, or nil when i is out of range.
func (inv *Inventory) Slot(i int) *Slot {
	if i < 0 || i >= len(inv.slots) {
		return nil
	}
	return &inv.slots[i]
}

// Add inserts st, first topping up slots that already hold the same kind and
// then filling empty slots, both in slot order. It returns what did not fit.
func (inv *Inventory) Add(st Stack) Stack {
	for i := range inv.slots {
		if st.Empty() {
			return Stack{}
		}
		if inv.slots[i].Kind() == st.Kind {
			st = inv.slots[i].Merge(st)
		}
	}
	for i := range inv.slots {
		if st.Empty() {
			return Stack{}
		}
		if inv.slots[i].Empty() {
			st = inv.slots[i].Merge(st)
		}
	}
	return st
}

// Fits reports whether st could be added without a remainder.
func (inv *Inventory) Fits(st Stack) bool {
	room := 0
	for i := range inv.slots {
		s := &inv.slots[i]
		switch {
		case s.Empty():
			room += st.Kind.MaxStack()
		case s.Kind() == st.Kind:
			room += s.stack.Room()
		}
		if room >= st.Count {
			return true
		}
	}
	return st.Empty()
}

// FitsAll reports whether every stack could be added, in order, without a
// remainder. The inventory is not changed.
func (inv *Inventory) FitsAll(stacks ...Stack) bool {
	trial := &Inventory{slots: make([]Slot, len(inv.slots))}
	copy(trial.slots, inv.slots)
	for _, st := range stacks {
		if !trial.Add(st).Empty() {
			return false
		}
	}
	return true
}

// Count returns the total units of k across all slots.
func (inv *Inventory) Count(k Kind) int {
	n := 0
	for i := range inv.slots {
		if inv.slots[i].Kind() == k {
			n += inv.slots[i].Count()
		}
	}
	return n
}

// Tally returns the per-kind totals of the inventory.
func (inv *Inventory) Tally() Tally {
	t := make(Tally)
	for i := range inv.slots {
		if st, ok := inv.slots[i].Stack(); ok {
			t[st.Kind] += st.Count
		}
	}
	return t
}

// Pay removes every unit listed in cost, or nothing at all when the
// inventory does not cover the full cost.
func (inv *Inventory) Pay(cost Tally) bool {
	if !inv.Tally().Covers(cost) {
		return false
	}
	for k, n := range cost {
		inv.remove(k, n)
	}
	return true
}

// remove takes n units of k, draining the last matching slots first so the
// front of the inventory stays stable.
func (inv *Inventory) remove(k Kind, n int) {
	for i := len(inv.slots) - 1; i >= 0 && n > 0; i-- {
		if inv.slots[i].Kind() == k {
			n -= inv.slots[i].Remove(n)
		}
	}
}

// Tally is the kind-keyed view of a collection: total units per kind with no
// per-stack cap. Recipe costs are expressed as tallies.
type Tally map[Kind]int

// Covers reports whether t holds at least cost of every kind.
func (t Tally) Covers(cost Tally) bool {
	for k, n := range cost {
		if t[k] < n {
			return false
		}
	}
	return true
}

// Total returns the number of units across all kinds.
func (t Tally) Total() int {
	n := 0
	for _, c := range t {
		n += c
	}
	return n
}

// String renders the tally as "5 wood, 5 stone" in kind order.
func (t Tally) String() string {
	kinds := make([]Kind, 0, len(t))
	for k, n := range t {
		if n > 0 {
			kinds = append(kinds, k)
		}
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = fmt.Sprintf("%d %s", t[k], k)
	}
	return strings.Join(parts, ", ")
}
