package transfer

import (
	"math/rand"
	"testing"

	"terrasky/internal/item"
)

func slotWith(st item.Stack) *item.Slot {
	s := &item.Slot{}
	if !st.Empty() {
		s.Place(st)
	}
	return s
}

func TestClickProtocol(t *testing.T) {
	wood := func(n int) item.Stack { return item.NewStack(item.Wood, n) }
	stone := func(n int) item.Stack { return item.NewStack(item.Stone, n) }

	cases := []struct {
		name     string
		held     item.Stack
		slot     item.Stack
		want     Outcome
		wantHeld item.Stack
		wantSlot item.Stack
	}{
		{"empty hand empty slot", item.Stack{}, item.Stack{}, None, item.Stack{}, item.Stack{}},
		{"pick up", item.Stack{}, wood(7), Picked, wood(7), item.Stack{}},
		{"place", wood(7), item.Stack{}, Placed, item.Stack{}, wood(7)},
		{"stack under cap", wood(7), wood(10), Stacked, item.Stack{}, wood(17)},
		{"stack to exact cap", wood(32), wood(32), Stacked, item.Stack{}, wood(64)},
		{"stack over cap keeps remainder", wood(40), wood(30), Stacked, wood(6), wood(64)},
		{"stack onto full slot", wood(5), wood(64), None, wood(5), wood(64)},
		{"swap", stone(3), wood(9), Swapped, wood(9), stone(3)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := &Controller{held: tc.held}
			s := slotWith(tc.slot)
			if got := c.Click(s); got != tc.want {
				t.Errorf("outcome = %v; want %v", got, tc.want)
			}
			held, _ := c.Held()
			if held != tc.wantHeld {
				t.Errorf("held = %v; want %v", held, tc.wantHeld)
			}
			st, _ := s.Stack()
			if st != tc.wantSlot {
				t.Errorf("slot = %v; want %v", st, tc.wantSlot)
			}
		})
	}
}

func TestClickOutput(t *testing.T) {
	bar := func(n int) item.Stack { return item.NewStack(item.IronBar, n) }
	copper := func(n int) item.Stack { return item.NewStack(item.CopperBar, n) }

	cases := []struct {
		name     string
		held     item.Stack
		port     item.Stack
		want     Outcome
		wantHeld item.Stack
		wantPort item.Stack
	}{
		{"take all", item.Stack{}, bar(5), Picked, bar(5), item.Stack{}},
		{"merge into hand", bar(10), bar(5), Stacked, bar(15), item.Stack{}},
		{"merge leaves rest in port", bar(60), bar(10), Stacked, bar(64), bar(6)},
		{"full hand", bar(64), bar(3), None, bar(64), bar(3)},
		{"mismatched kind refused", copper(2), bar(5), None, copper(2), bar(5)},
		{"place into empty port refused", bar(4), item.Stack{}, None, bar(4), item.Stack{}},
		{"empty hand empty port", item.Stack{}, item.Stack{}, None, item.Stack{}, item.Stack{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := &Controller{held: tc.held}
			s := slotWith(tc.port)
			if got := c.ClickOutput(s); got != tc.want {
				t.Errorf("outcome = %v; want %v", got, tc.want)
			}
			held, _ := c.Held()
			if held != tc.wantHeld {
				t.Errorf("held = %v; want %v", held, tc.wantHeld)
			}
			st, _ := s.Stack()
			if st != tc.wantPort {
				t.Errorf("port = %v; want %v", st, tc.wantPort)
			}
		})
	}
}

func TestClickNilSlot(t *testing.T) {
	c := &Controller{held: item.NewStack(item.Wood, 1)}
	if c.Click(nil) != None || c.ClickOutput(nil) != None {
		t.Fatal("nil slots are ignored")
	}
}

func totals(c *Controller, slots []*item.Slot) item.Tally {
	t := make(item.Tally)
	for _, s := range slots {
		if st, ok := s.Stack(); ok {
			t[st.Kind] += st.Count
		}
	}
	if st, ok := c.Held(); ok {
		t[st.Kind] += st.Count
	}
	return t
}

// Random click sequences over inventory and port slots never create or
// destroy units and never exceed the stack cap.
func TestConservationUnderRandomClicks(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	inv := item.NewInventory(8)
	inv.Add(item.NewStack(item.Wood, 100))
	inv.Add(item.NewStack(item.Stone, 70))
	inv.Add(item.NewStack(item.IronOre, 20))

	slots := make([]*item.Slot, 0, inv.Len()+2)
	for i := range inv.Len() {
		slots = append(slots, inv.Slot(i))
	}
	input := &item.Slot{}
	output := slotWith(item.NewStack(item.IronBar, 9))
	slots = append(slots, input, output)

	c := &Controller{}
	want := totals(c, slots)

	for step := range 5000 {
		i := rng.Intn(len(slots))
		if slots[i] == output {
			c.ClickOutput(output)
		} else {
			c.Click(slots[i])
		}
		got := totals(c, slots)
		for _, k := range item.Kinds {
			if got[k] != want[k] {
				t.Fatalf("step %d: %v count %d, want %d", step, k, got[k], want[k])
			}
		}
		for _, s := range slots {
			if s.Count() > item.MaxStack {
				t.Fatalf("step %d: slot holds %d", step, s.Count())
			}
		}
		if held, ok := c.Held(); ok && held.Count > item.MaxStack {
			t.Fatalf("step %d: hand holds %d", step, held.Count)
		}
	}
}

func TestStow(t *testing.T) {
	inv := item.NewInventory(1)
	inv.Slot(0).Place(item.NewStack(item.Wood, 60))
	c := &Controller{held: item.NewStack(item.Wood, 10)}
	c.Stow(inv)
	held, ok := c.Held()
	if !ok || held.Count != 6 {
		t.Fatalf("expected 6 wood left in hand, got %v", held)
	}
	if inv.Count(item.Wood) != 64 {
		t.Fatalf("expected inventory topped up to 64, got %d", inv.Count(item.Wood))
	}
}
