package render

import (
	"terrasky/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// TerrainTheme holds the background colors used to draw terrain. Terrain is
// drawn as colored blank cells so resource and building emoji stay legible
// on top of it.
type TerrainTheme struct {
	Water tcell.Color
	Sand  tcell.Color
	Grass tcell.Color
}

// DefaultTheme matches the island palette.
var DefaultTheme = TerrainTheme{
	Water: tcell.NewRGBColor(0, 105, 148),
	Sand:  tcell.NewRGBColor(238, 214, 175),
	Grass: tcell.NewRGBColor(34, 139, 34),
}

// Color returns the background for a tile kind.
func (t TerrainTheme) Color(k gamemap.TileKind) tcell.Color {
	switch k {
	case gamemap.TileSand:
		return t.Sand
	case gamemap.TileGrass:
		return t.Grass
	}
	return t.Water
}

// UI colors.
var (
	colorPanelBG    = tcell.NewRGBColor(60, 60, 60)
	colorTitleBG    = tcell.NewRGBColor(40, 40, 80)
	colorSlotBG     = tcell.NewRGBColor(40, 40, 40)
	colorBorder     = tcell.NewRGBColor(200, 200, 200)
	colorAccent     = tcell.NewRGBColor(255, 140, 0)
	colorEnergy     = tcell.NewRGBColor(0, 200, 0)
	colorNoEnergy   = tcell.NewRGBColor(200, 0, 0)
	colorSolar      = tcell.NewRGBColor(0, 100, 200)
	colorCharged    = tcell.NewRGBColor(0, 255, 255)
	colorBackground = tcell.NewRGBColor(20, 20, 20)
)
