package render

import (
	"fmt"

	"terrasky/internal/sim"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// DrawHUD renders the status bar and message log at the bottom of the screen.
func (r *Renderer) DrawHUD(s *sim.Simulation) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	// Separator line.
	r.drawHLine(hudY, tcell.ColorGray)

	econ := s.Economy
	status := fmt.Sprintf("ROLE: %s | ENERGY: %d/%d | SCIENCE: %d | TICK: %d",
		s.Role, int(econ.GlobalEnergy), int(econ.Capacity()), econ.Science, s.Tick)
	r.drawText(0, hudY+1, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	keys := "[WASD] MOVE [SPACE] GATHER [R] RECIPES [E] INV/MACHINE [X] DEMOLISH [TAB] SKY"
	if s.Role == sim.Sky {
		keys = "[ARROWS] PAN [+/-/WHEEL] ZOOM [3] BEAM [U] UPGRADES [TAB] GROUND"
	}
	r.drawText(0, hudY+2, keys, tcell.StyleDefault.Foreground(tcell.ColorGray))

	// Message log (last 2 messages).
	for i, msg := range s.Messages.Recent(2) {
		r.drawText(0, hudY+3+i, msg.Text, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}

	r.screen.Show()
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText writes text starting at (x, y) and returns the column after it.
// Wide runes advance two columns.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(1, runewidth.RuneWidth(ch))
	}
	return col
}

// drawTextMax is drawText truncated to width columns.
func (r *Renderer) drawTextMax(x, y, width int, text string, style tcell.Style) int {
	return r.drawText(x, y, runewidth.Truncate(text, width, "…"), style)
}
