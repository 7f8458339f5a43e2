package hud

import (
	"testing"

	"terrasky/internal/building"
	"terrasky/internal/economy"
	"terrasky/internal/geom"
	"terrasky/internal/item"
	"terrasky/internal/transfer"
)

func inside(r geom.Rect) geom.Point { return geom.Point{X: r.X + 1, Y: r.Y} }

func newInventoryPanel(machine *building.Building) *InventoryPanel {
	inv := item.NewInventory(30)
	inv.Add(item.NewStack(item.IronOre, 12))
	return &InventoryPanel{Inv: inv, Hand: &transfer.Controller{}, Machine: machine}
}

func TestSlotRectsDoNotOverlap(t *testing.T) {
	p := newInventoryPanel(nil)
	w, h := p.BodySize()
	body := geom.Rect{W: w, H: h}
	rects := []geom.Rect{p.InputRect(), p.OutputRect()}
	for i := range p.Inv.Len() {
		rects = append(rects, p.SlotRect(i))
	}
	for i, a := range rects {
		if a.ClampInside(body) != a {
			t.Fatalf("rect %d %+v outside body %+v", i, a, body)
		}
		for j, b := range rects[i+1:] {
			if a.Intersects(b) {
				t.Fatalf("rects %d and %d overlap", i, i+1+j)
			}
		}
	}
}

func TestInventoryToMachineInput(t *testing.T) {
	f := building.New(building.Furnace, geom.Point{}, building.DefaultParams())
	p := newInventoryPanel(f)
	var outcomes []transfer.Outcome
	p.OnTransfer = func(o transfer.Outcome) { outcomes = append(outcomes, o) }

	p.Click(inside(p.SlotRect(0)))
	p.Click(inside(p.InputRect()))

	if f.Input.Count() != 12 || f.Input.Kind() != item.IronOre {
		t.Fatalf("furnace input = %d %v", f.Input.Count(), f.Input.Kind())
	}
	if !p.Inv.Slot(0).Empty() || p.Hand.Holding() {
		t.Fatal("ore should have moved out of the inventory and the hand")
	}
	if len(outcomes) != 2 || outcomes[0] != transfer.Picked || outcomes[1] != transfer.Placed {
		t.Fatalf("outcomes = %v", outcomes)
	}
}

func TestOutputPortRefusesPlacement(t *testing.T) {
	f := building.New(building.Furnace, geom.Point{}, building.DefaultParams())
	p := newInventoryPanel(f)
	p.Click(inside(p.SlotRect(0)))
	p.Click(inside(p.OutputRect()))
	if !f.Output.Empty() {
		t.Fatal("output port must not accept placed items")
	}
	if held, _ := p.Hand.Held(); held.Count != 12 {
		t.Fatalf("hand should still hold the ore, got %v", held)
	}
}

func TestPortsHiddenByMachineKind(t *testing.T) {
	lab := building.New(building.ScienceLab, geom.Point{}, building.DefaultParams())
	p := newInventoryPanel(lab)
	lab.Output.Place(item.NewStack(item.IronBar, 1)) // unreachable through the panel
	p.Click(inside(p.OutputRect()))
	if p.Hand.Holding() {
		t.Fatal("a science lab has no output port")
	}

	solar := building.New(building.SolarPanel, geom.Point{}, building.DefaultParams())
	p = newInventoryPanel(solar)
	p.Click(inside(p.SlotRect(0)))
	p.Click(inside(p.InputRect()))
	if !solar.Input.Empty() {
		t.Fatal("a solar panel has no input port")
	}
}

func TestRecipeAndUpgradeButtons(t *testing.T) {
	var built []building.Kind
	rp := &RecipePanel{
		Recipes: []Recipe{{Kind: building.Furnace}, {Kind: building.SolarPanel}},
		Build:   func(k building.Kind) { built = append(built, k) },
	}
	rp.Click(inside(rp.ButtonRect(1)))
	rp.Click(geom.Point{X: 1, Y: 2}) // gap row between buttons
	if len(built) != 1 || built[0] != building.SolarPanel {
		t.Fatalf("built = %v", built)
	}

	var bought []economy.Upgrade
	up := &UpgradePanel{Economy: economy.New(economy.DefaultParams()), Buy: func(u economy.Upgrade) { bought = append(bought, u) }}
	up.Click(inside(up.ButtonRect(2)))
	if len(bought) != 1 || bought[0] != economy.Efficiency {
		t.Fatalf("bought = %v", bought)
	}
}
