package item

import "testing"

func TestParseKindRoundTrip(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(k.String())
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", k.String(), err)
		}
		if got != k {
			t.Errorf("ParseKind(%q) = %v, want %v", k.String(), got, k)
		}
	}
	if _, err := ParseKind("mithril"); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestSlotTakeEmpty(t *testing.T) {
	var s Slot
	if _, ok := s.Take(); ok {
		t.Fatal("taking from an empty slot should return nothing")
	}
}

func TestSlotTakeLeavesEmpty(t *testing.T) {
	var s Slot
	s.Place(NewStack(Wood, 5))
	st, ok := s.Take()
	if !ok || st != NewStack(Wood, 5) {
		t.Fatalf("Take = %v,%v; want 5 wood", st, ok)
	}
	if !s.Empty() {
		t.Fatal("slot should be empty after Take")
	}
}

func TestSlotPlaceOccupiedRefused(t *testing.T) {
	var s Slot
	if !s.Place(NewStack(Stone, 3)) {
		t.Fatal("place into empty slot should succeed")
	}
	if s.Place(NewStack(Wood, 1)) {
		t.Fatal("place into occupied slot must be refused")
	}
	if st, _ := s.Stack(); st != NewStack(Stone, 3) {
		t.Fatalf("refused place changed slot to %v", st)
	}
}

func TestSlotMerge(t *testing.T) {
	cases := []struct {
		name     string
		initial  Stack
		in       Stack
		wantSlot Stack
		wantRem  Stack
	}{
		{"into empty", Stack{}, NewStack(Wood, 10), NewStack(Wood, 10), Stack{}},
		{"same kind under cap", NewStack(Wood, 30), NewStack(Wood, 34), NewStack(Wood, 64), Stack{}},
		{"same kind over cap", NewStack(Wood, 60), NewStack(Wood, 10), NewStack(Wood, 64), NewStack(Wood, 6)},
		{"other kind untouched", NewStack(Stone, 2), NewStack(Wood, 3), NewStack(Stone, 2), NewStack(Wood, 3)},
		{"full slot", NewStack(IronBar, 64), NewStack(IronBar, 1), NewStack(IronBar, 64), NewStack(IronBar, 1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var s Slot
			if !tc.initial.Empty() {
				s.Place(tc.initial)
			}
			rem := s.Merge(tc.in)
			got, _ := s.Stack()
			if got != tc.wantSlot {
				t.Errorf("slot = %v; want %v", got, tc.wantSlot)
			}
			if rem != tc.wantRem {
				t.Errorf("remainder = %v; want %v", rem, tc.wantRem)
			}
			if got.Count+rem.Count != tc.initial.Count+tc.in.Count {
				t.Errorf("units not conserved: %d+%d", got.Count, rem.Count)
			}
		})
	}
}

func TestSlotRemoveToZeroClears(t *testing.T) {
	var s Slot
	s.Place(NewStack(IronOre, 2))
	if n := s.Remove(5); n != 2 {
		t.Fatalf("Remove returned %d, want 2", n)
	}
	if !s.Empty() || s.Kind() != 0 {
		t.Fatal("slot should be empty once its count reaches zero")
	}
}

func TestInventoryAddPrefersMatchingThenEmpty(t *testing.T) {
	inv := NewInventory(3)
	inv.Slot(1).Place(NewStack(Wood, 60))
	rem := inv.Add(NewStack(Wood, 10))
	if !rem.Empty() {
		t.Fatalf("unexpected remainder %v", rem)
	}
	if inv.Slot(1).Count() != 64 {
		t.Errorf("matching slot should be topped up first, got %d", inv.Slot(1).Count())
	}
	if st, _ := inv.Slot(0).Stack(); st != NewStack(Wood, 6) {
		t.Errorf("overflow should land in the first empty slot, got %v", st)
	}
}

func TestInventoryAddFullReturnsRemainder(t *testing.T) {
	inv := NewInventory(1)
	inv.Slot(0).Place(NewStack(Stone, 64))
	rem := inv.Add(NewStack(Wood, 1))
	if rem != NewStack(Wood, 1) {
		t.Fatalf("expected the whole stack back, got %v", rem)
	}
	if inv.Fits(NewStack(Wood, 1)) {
		t.Fatal("Fits should be false for a full inventory")
	}
}

func TestInventoryFitsAllSharesEmptySlots(t *testing.T) {
	inv := NewInventory(2)
	inv.Slot(0).Place(NewStack(Stone, 64))

	// Each stack fits alone, but both compete for the single empty slot.
	if !inv.Fits(NewStack(Wood, 3)) || !inv.Fits(NewStack(IronOre, 3)) {
		t.Fatal("each stack should fit on its own")
	}
	if inv.FitsAll(NewStack(Wood, 3), NewStack(IronOre, 3)) {
		t.Fatal("FitsAll should be false when the stacks need two empty slots")
	}
	if !inv.FitsAll(NewStack(Wood, 3), NewStack(Wood, 60)) {
		t.Fatal("same-kind stacks should share one slot")
	}
	if !inv.FitsAll() {
		t.Fatal("nothing always fits")
	}
	if inv.Count(Wood) != 0 || inv.Count(Stone) != 64 {
		t.Fatalf("FitsAll changed the inventory: %v", inv.Tally())
	}
}

func TestInventoryPayAtomic(t *testing.T) {
	inv := NewInventory(4)
	inv.Add(NewStack(Wood, 5))
	inv.Add(NewStack(Stone, 4))

	if inv.Pay(Tally{Wood: 5, Stone: 5}) {
		t.Fatal("Pay should fail when stone is short")
	}
	if inv.Count(Wood) != 5 || inv.Count(Stone) != 4 {
		t.Fatal("failed Pay must not change the inventory")
	}

	inv.Add(NewStack(Stone, 1))
	if !inv.Pay(Tally{Wood: 5, Stone: 5}) {
		t.Fatal("Pay should succeed once the cost is covered")
	}
	if inv.Tally().Total() != 0 {
		t.Fatalf("expected empty inventory after paying, got %v", inv.Tally())
	}
}

func TestTallyString(t *testing.T) {
	got := Tally{Stone: 10, IronBar: 2}.String()
	if got != "10 stone, 2 iron_bar" {
		t.Fatalf("got %q", got)
	}
}
