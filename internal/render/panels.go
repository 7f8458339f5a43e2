package render

import (
	"fmt"
	"strings"

	"terrasky/assets"
	"terrasky/internal/building"
	"terrasky/internal/economy"
	"terrasky/internal/geom"
	"terrasky/internal/hud"
	"terrasky/internal/item"
	"terrasky/internal/sim"
	"terrasky/internal/window"

	"github.com/gdamore/tcell/v2"
)

// drawPanels draws every visible panel back to front.
func (r *Renderer) drawPanels(s *sim.Simulation) {
	for _, p := range s.Windows.Panels() {
		if !p.Visible {
			continue
		}
		r.drawPanelFrame(p)
		body := p.Body()
		switch c := p.Content.(type) {
		case *hud.InventoryPanel:
			r.drawInventory(body, c, s.Economy.Modifiers())
		case *hud.RecipePanel:
			r.drawRecipes(body, c)
		case *hud.UpgradePanel:
			r.drawUpgrades(body, c)
		}
	}
}

func (r *Renderer) drawPanelFrame(p *window.Panel) {
	r.fill(p.Bounds, colorPanelBG)
	bar := p.TitleBar()
	r.fill(bar, colorTitleBG)
	title := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(colorTitleBG).Bold(true)
	r.drawTextMax(bar.X+1, bar.Y, bar.W-5, p.Title, title)
	cb := p.CloseBox()
	r.drawText(cb.X, cb.Y, "[x]", tcell.StyleDefault.Foreground(colorBorder).Background(colorNoEnergy))
}

func (r *Renderer) drawSlot(at geom.Rect, st item.Stack, ok bool) {
	r.fill(at, colorSlotBG)
	if !ok {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(colorSlotBG)
	r.putGlyph(at.X, at.Y, assets.ItemGlyph(st.Kind), style)
	r.drawText(at.X+2, at.Y, fmt.Sprintf("%2d", st.Count), style)
}

func (r *Renderer) drawInventory(body geom.Rect, p *hud.InventoryPanel, mods building.Modifiers) {
	origin := body.Min()
	for i := range p.Inv.Len() {
		st, ok := p.Inv.Slot(i).Stack()
		r.drawSlot(p.SlotRect(i).Moved(origin.Add(p.SlotRect(i).Min())), st, ok)
	}

	top := body.Y + p.MachineTop()
	text := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(colorPanelBG)
	m := p.Machine
	if m == nil {
		r.drawTextMax(body.X+1, top+1, body.W-2, "No machine here. Stand on a building and press E.", text)
		return
	}

	label := fmt.Sprintf("%s  ⚡ %d/%d  %s", strings.ToUpper(assets.BuildingName(m.Kind)),
		int(m.Energy), int(m.EnergyCapacity), m.State())
	r.drawTextMax(body.X+1, top, body.W-2, label, text.Foreground(colorAccent).Bold(true))

	if m.HasInput() {
		in := p.InputRect()
		r.drawText(body.X+in.X-4, body.Y+in.Y, "IN", text)
		st, ok := m.Input.Stack()
		r.drawSlot(in.Moved(origin.Add(in.Min())), st, ok)
	}
	if m.HasOutput() {
		out := p.OutputRect()
		r.drawText(body.X+out.X-6, body.Y+out.Y, "→ OUT", text)
		st, ok := m.Output.Stack()
		r.drawSlot(out.Moved(origin.Add(out.Min())), st, ok)
	}
	if m.HasInput() {
		r.drawProgress(body.X+1, top+4, body.W-2, m.Progress(mods))
	}
}

func (r *Renderer) drawProgress(x, y, width int, frac float64) {
	filled := int(frac * float64(width))
	for i := range width {
		ch, color := '░', tcell.ColorGray
		if i < filled {
			ch, color = '█', colorEnergy
		}
		r.screen.SetContent(x+i, y, ch, nil, tcell.StyleDefault.Foreground(color).Background(colorPanelBG))
	}
}

func (r *Renderer) drawRecipes(body geom.Rect, p *hud.RecipePanel) {
	for i, rec := range p.Recipes {
		b := p.ButtonRect(i)
		b = b.Moved(body.Min().Add(b.Min()))
		r.fill(b, colorSlotBG)
		style := tcell.StyleDefault.Background(colorSlotBG)
		col := r.drawText(b.X+1, b.Y, assets.BuildingGlyph(rec.Kind), style)
		col = r.drawText(col+1, b.Y, strings.ToUpper(rec.Kind.String()), style.Foreground(colorAccent).Bold(true))
		r.drawTextMax(col+2, b.Y, b.Right()-col-3, rec.Cost.String(), style.Foreground(tcell.ColorSilver))
	}
}

func (r *Renderer) drawUpgrades(body geom.Rect, p *hud.UpgradePanel) {
	for i, u := range economy.Upgrades {
		b := p.ButtonRect(i)
		b = b.Moved(body.Min().Add(b.Min()))
		r.fill(b, colorSlotBG)
		style := tcell.StyleDefault.Background(colorSlotBG)
		col := r.drawText(b.X+1, b.Y, strings.ToUpper(u.String()), style.Foreground(colorAccent).Bold(true))
		info := fmt.Sprintf("%d science", p.Economy.Cost(u))
		if p.Economy.Has(u) {
			info = "unlocked"
		}
		r.drawTextMax(col+2, b.Y, b.Right()-col-3, info, style.Foreground(tcell.ColorSilver))
	}
}

// drawHeld draws the stack in hand at the pointer.
func (r *Renderer) drawHeld(s *sim.Simulation, pointer geom.Point) {
	st, ok := s.Hand.Held()
	if !ok {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(colorAccent)
	r.putGlyph(pointer.X, pointer.Y, assets.ItemGlyph(st.Kind), style)
	r.drawText(pointer.X+2, pointer.Y, fmt.Sprintf("%d", st.Count), style)
}
