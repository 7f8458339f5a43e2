// Package hud defines the contents of the movable panels: where their slots
// and buttons sit and what a click on each one does. Drawing lives in
// render; routing and z-order live in window.
package hud

import (
	"terrasky/internal/building"
	"terrasky/internal/geom"
	"terrasky/internal/item"
	"terrasky/internal/transfer"
)

// Slot cell geometry, in body-local cells.
const (
	Columns = 8
	SlotW   = 5 // glyph (2) + count (2) + gap
	SlotH   = 2
	padX    = 1
	padY    = 1
)

// machineRows is the height of the machine strip below the grid.
const machineRows = 5

// InventoryPanel shows the player's slots and, when one is targeted, the
// ports of a machine. Every click goes through the shared hand.
type InventoryPanel struct {
	Inv     *item.Inventory
	Hand    *transfer.Controller
	Machine *building.Building

	// OnTransfer, when set, is told about every click that changed a slot.
	OnTransfer func(transfer.Outcome)
}

func (p *InventoryPanel) rows() int {
	return (p.Inv.Len() + Columns - 1) / Columns
}

// BodySize returns the body dimensions the panel needs.
func (p *InventoryPanel) BodySize() (w, h int) {
	return padX*2 + Columns*SlotW, padY + p.rows()*SlotH + machineRows
}

// SlotRect returns the body-local cell area of inventory slot i.
func (p *InventoryPanel) SlotRect(i int) geom.Rect {
	col, row := i%Columns, i/Columns
	return geom.Rect{X: padX + col*SlotW, Y: padY + row*SlotH, W: SlotW - 1, H: 1}
}

// MachineTop returns the first body row of the machine strip.
func (p *InventoryPanel) MachineTop() int {
	return padY + p.rows()*SlotH
}

// InputRect returns the body-local area of the machine's input port.
func (p *InventoryPanel) InputRect() geom.Rect {
	return geom.Rect{X: padX + 6, Y: p.MachineTop() + 2, W: SlotW - 1, H: 1}
}

// OutputRect returns the body-local area of the machine's output port.
func (p *InventoryPanel) OutputRect() geom.Rect {
	return geom.Rect{X: padX + 20, Y: p.MachineTop() + 2, W: SlotW - 1, H: 1}
}

// Click routes a body click to the slot beneath it.
func (p *InventoryPanel) Click(local geom.Point) {
	out := transfer.None
	switch {
	case p.slotIndex(local) >= 0:
		out = p.Hand.Click(p.Inv.Slot(p.slotIndex(local)))
	case p.Machine != nil && p.Machine.HasInput() && p.InputRect().Contains(local):
		out = p.Hand.Click(&p.Machine.Input)
	case p.Machine != nil && p.Machine.HasOutput() && p.OutputRect().Contains(local):
		out = p.Hand.ClickOutput(&p.Machine.Output)
	}
	if out != transfer.None && p.OnTransfer != nil {
		p.OnTransfer(out)
	}
}

func (p *InventoryPanel) slotIndex(local geom.Point) int {
	for i := range p.Inv.Len() {
		if p.SlotRect(i).Contains(local) {
			return i
		}
	}
	return -1
}
