package building

import (
	"testing"

	"terrasky/internal/geom"
	"terrasky/internal/item"
)

func newFurnace(t *testing.T, energy float64, input item.Stack) *Building {
	t.Helper()
	b := New(Furnace, geom.Point{X: 1, Y: 1}, DefaultParams())
	b.Energy = energy
	if !input.Empty() && !b.Input.Place(input) {
		t.Fatalf("could not place %v into furnace input", input)
	}
	return b
}

func tickN(b *Building, m Modifiers, n int) []Result {
	out := make([]Result, 0, n)
	for range n {
		out = append(out, b.Tick(m))
	}
	return out
}

func TestFurnaceProducesOneBarPerDuration(t *testing.T) {
	b := newFurnace(t, 500, item.NewStack(item.IronOre, 10))
	m := Modifiers{Speed: 1}

	tickN(b, m, 119)
	if !b.Output.Empty() {
		t.Fatal("no output expected before the cycle completes")
	}
	if b.ProcessTimer != 119 {
		t.Fatalf("expected timer 119, got %d", b.ProcessTimer)
	}

	r := b.Tick(m)
	if r.Produced != item.NewStack(item.IronBar, 1) {
		t.Fatalf("expected 1 iron_bar produced, got %v", r.Produced)
	}
	if b.Output.Count() != 1 || b.Input.Count() != 9 {
		t.Fatalf("expected output 1 / input 9, got %d / %d", b.Output.Count(), b.Input.Count())
	}
	if b.ProcessTimer != 0 {
		t.Fatalf("timer should reset after completion, got %d", b.ProcessTimer)
	}
	if b.Energy != 440 {
		t.Fatalf("expected 440 energy after 120 ticks, got %v", b.Energy)
	}
}

func TestFurnaceDeterminismWithEfficiency(t *testing.T) {
	m := Modifiers{Speed: 1.5}
	b := newFurnace(t, 500, item.NewStack(item.CopperOre, 64))

	produced := 0
	for tick := 1; tick <= 800; tick++ {
		r := b.Tick(m)
		if !r.Produced.Empty() {
			produced++
			if tick%80 != 0 {
				t.Fatalf("unit produced on tick %d, expected multiples of 80", tick)
			}
		}
	}
	if produced != 10 {
		t.Fatalf("expected 10 bars in 800 ticks, got %d", produced)
	}
	if b.Output.Count() != 10 || b.Input.Count() != 54 {
		t.Fatalf("expected 10 out / 54 in, got %d / %d", b.Output.Count(), b.Input.Count())
	}
	if b.Output.Kind() != item.CopperBar {
		t.Fatalf("expected copper_bar, got %v", b.Output.Kind())
	}
}

func TestFurnaceStallsWhenEnergyRunsOut(t *testing.T) {
	b := newFurnace(t, 10, item.NewStack(item.IronOre, 3))
	m := Modifiers{Speed: 1}

	tickN(b, m, 20)
	if b.Energy != 0 {
		t.Fatalf("expected energy 0 after 20 ticks, got %v", b.Energy)
	}
	if b.ProcessTimer != 20 {
		t.Fatalf("timer should have advanced while energy remained, got %d", b.ProcessTimer)
	}
	if b.State() != Idle {
		t.Fatal("furnace should be idle with no energy")
	}

	tickN(b, m, 100)
	if b.ProcessTimer != 0 {
		t.Fatalf("idle furnace must reset its timer, got %d", b.ProcessTimer)
	}
	if !b.Output.Empty() || b.Input.Count() != 3 {
		t.Fatal("no output and no consumption expected without energy")
	}
	if b.Energy < 0 {
		t.Fatalf("energy fell below zero: %v", b.Energy)
	}
}

func TestFurnaceCompletesOnTickEnergyHitsZero(t *testing.T) {
	b := newFurnace(t, 60, item.NewStack(item.IronOre, 3))
	m := Modifiers{Speed: 1}

	results := tickN(b, m, 120)
	if results[119].Produced.Empty() {
		t.Fatal("the cycle should complete on the tick energy reaches exactly zero")
	}
	if b.Energy != 0 {
		t.Fatalf("expected energy 0, got %v", b.Energy)
	}
	if r := b.Tick(m); !r.Produced.Empty() || b.ProcessTimer != 0 {
		t.Fatal("the next tick should be idle")
	}
}

func TestFurnaceIdleResetWhenInputRemoved(t *testing.T) {
	b := newFurnace(t, 500, item.NewStack(item.IronOre, 1))
	m := Modifiers{Speed: 1}
	tickN(b, m, 50)
	if b.ProcessTimer != 50 {
		t.Fatalf("expected timer 50, got %d", b.ProcessTimer)
	}
	b.Input.Take()
	b.Tick(m)
	if b.ProcessTimer != 0 {
		t.Fatalf("timer should reset on the tick after input removal, got %d", b.ProcessTimer)
	}
	if !b.Output.Empty() {
		t.Fatal("partial progress must never yield output")
	}
}

func TestFurnaceBlockedOutputWastesCycle(t *testing.T) {
	cases := []struct {
		name   string
		output item.Stack
	}{
		{"other kind in output", item.NewStack(item.CopperBar, 1)},
		{"same kind at cap", item.NewStack(item.IronBar, item.MaxStack)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := newFurnace(t, 500, item.NewStack(item.IronOre, 5))
			b.Output.Place(tc.output)
			results := tickN(b, Modifiers{Speed: 1}, 120)
			if !results[119].Blocked {
				t.Fatal("expected the completing tick to report a blocked output")
			}
			if b.Input.Count() != 5 {
				t.Fatalf("blocked cycle must not consume input, got %d", b.Input.Count())
			}
			if st, _ := b.Output.Stack(); st != tc.output {
				t.Fatalf("output changed to %v", st)
			}
			if b.ProcessTimer != 0 {
				t.Fatalf("timer should reset after a blocked cycle, got %d", b.ProcessTimer)
			}
			if b.Energy != 440 {
				t.Fatalf("energy is still spent on a blocked cycle, got %v", b.Energy)
			}
		})
	}
}

func TestFurnaceIgnoresInvalidInput(t *testing.T) {
	b := newFurnace(t, 500, item.NewStack(item.Wood, 10))
	tickN(b, Modifiers{}, 200)
	if b.ProcessTimer != 0 || b.Energy != 500 || !b.Output.Empty() {
		t.Fatal("invalid input should leave the furnace idle")
	}
}

func TestScienceLabProducesScience(t *testing.T) {
	b := New(ScienceLab, geom.Point{}, DefaultParams())
	b.Energy = 500
	b.Input.Place(item.NewStack(item.IronBar, 2))

	science := 0
	for _, r := range tickN(b, Modifiers{Speed: 1.5}, 360) {
		science += r.Science
	}
	if science != 2 {
		t.Fatalf("expected 2 science in 360 ticks, got %d", science)
	}
	if !b.Input.Empty() {
		t.Fatal("both bars should be consumed")
	}
	if b.Energy != 320 {
		t.Fatalf("lab drains a flat 0.5/tick regardless of speed; got %v", b.Energy)
	}
}

func TestScienceLabIgnoresInvalidInput(t *testing.T) {
	b := New(ScienceLab, geom.Point{}, DefaultParams())
	b.Energy = 500
	b.Input.Place(item.NewStack(item.IronOre, 2))

	science := 0
	for _, r := range tickN(b, Modifiers{}, 400) {
		science += r.Science
	}
	if science != 0 {
		t.Fatalf("iron ore should yield no science, got %d", science)
	}
	if b.State() != Idle || b.ProcessTimer != 0 || b.Energy != 500 {
		t.Fatalf("lab should stay idle: state=%v timer=%d energy=%v", b.State(), b.ProcessTimer, b.Energy)
	}
	if st, _ := b.Input.Stack(); st != item.NewStack(item.IronOre, 2) {
		t.Fatalf("input = %v; want it untouched", st)
	}
}

func TestSolarPanelNeverProcesses(t *testing.T) {
	b := New(SolarPanel, geom.Point{}, DefaultParams())
	b.Energy = 100
	if b.HasInput() || b.HasOutput() {
		t.Fatal("solar panels have no ports")
	}
	tickN(b, Modifiers{}, 10)
	if b.Energy != 100 || b.State() != Idle {
		t.Fatal("solar panel should never spend energy")
	}
}

func TestChargeClampsToCapacity(t *testing.T) {
	b := New(Furnace, geom.Point{}, DefaultParams())
	b.Energy = 498
	if got := b.Charge(5); got != 2 {
		t.Fatalf("expected 2 stored, got %v", got)
	}
	if b.Energy != b.EnergyCapacity {
		t.Fatalf("expected energy at capacity, got %v", b.Energy)
	}
}

func TestKindNames(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
}
