package render

import (
	"terrasky/assets"
	"terrasky/internal/building"
	"terrasky/internal/gamemap"
	"terrasky/internal/geom"
	"terrasky/internal/sim"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudRows is the number of rows reserved at the bottom for the HUD.
const hudRows = 5

// Renderer draws the simulation onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	sky    *SkyCamera
	theme  TerrainTheme
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{
		screen: screen,
		camera: &Camera{},
		sky:    &SkyCamera{Zoom: MinZoom},
		theme:  DefaultTheme,
	}
	r.Resize()
	return r
}

// Resize recomputes the view areas from the screen size.
func (r *Renderer) Resize() {
	view := r.Viewport()
	r.camera.View = view
	r.sky.View = view
}

// Viewport returns the screen area above the HUD. Panels are confined to it.
func (r *Renderer) Viewport() geom.Rect {
	w, h := r.screen.Size()
	return geom.Rect{W: w, H: max(0, h-hudRows)}
}

// Sky returns the overview camera.
func (r *Renderer) Sky() *SkyCamera { return r.sky }

// FocusSky centers the overview on tile p.
func (r *Renderer) FocusSky(p geom.Point) { r.sky.Focus = p }

// PointerToWorld converts a screen cell to the world tile under it for the
// given role.
func (r *Renderer) PointerToWorld(role sim.Role, p geom.Point) geom.Point {
	if role == sim.Sky {
		return r.sky.ScreenToWorld(p)
	}
	return r.camera.ScreenToWorld(p)
}

// DrawFrame renders the world for the current role, the panels, the held
// stack at pointer, and the HUD.
func (r *Renderer) DrawFrame(s *sim.Simulation, pointer geom.Point) {
	r.screen.Clear()
	if s.Role == sim.Sky {
		r.drawSky(s)
	} else {
		r.camera.Center(s.Player.Pos)
		r.drawGround(s)
	}
	r.drawPanels(s)
	r.drawHeld(s, pointer)
	r.DrawHUD(s)
}

// drawGround renders terrain, resource nodes, buildings and the player.
func (r *Renderer) drawGround(s *sim.Simulation) {
	gmap := s.Map
	cols := r.camera.View.W / 2
	for dy := 0; dy < r.camera.View.H; dy++ {
		for dx := 0; dx < cols; dx++ {
			w := r.camera.Offset.Add(geom.Point{X: dx, Y: dy})
			sc, onScreen := r.camera.WorldToScreen(w)
			if !onScreen {
				continue
			}
			if !gmap.InBounds(w.X, w.Y) {
				r.fill(geom.Rect{X: sc.X, Y: sc.Y, W: 2, H: 1}, colorBackground)
				continue
			}
			tile := gmap.At(w.X, w.Y)
			style := tcell.StyleDefault.Background(r.theme.Color(tile.Kind))
			r.fill(geom.Rect{X: sc.X, Y: sc.Y, W: 2, H: 1}, r.theme.Color(tile.Kind))
			if g := assets.ResourceGlyph(tile.Resource); g != "" {
				r.putGlyph(sc.X, sc.Y, g, style)
			}
		}
	}
	for _, b := range s.Buildings() {
		if sc, ok := r.camera.WorldToScreen(b.Pos); ok {
			r.putGlyph(sc.X, sc.Y, assets.BuildingGlyph(b.Kind), r.tileStyle(gmap, b.Pos))
		}
	}
	if sc, ok := r.camera.WorldToScreen(s.Player.Pos); ok {
		r.putGlyph(sc.X, sc.Y, assets.GlyphPlayer, r.tileStyle(gmap, s.Player.Pos))
	}
}

// drawSky renders the zoomable overview with one marker per building.
func (r *Renderer) drawSky(s *sim.Simulation) {
	gmap := s.Map
	v := r.sky.View
	for y := v.Y; y < v.Bottom(); y++ {
		for x := v.X; x < v.Right(); x++ {
			w := r.sky.ScreenToWorld(geom.Point{X: x, Y: y})
			bg := colorBackground
			if gmap.InBounds(w.X, w.Y) {
				bg = r.theme.Color(gmap.At(w.X, w.Y).Kind)
			}
			r.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(bg))
		}
	}
	for _, b := range s.Buildings() {
		sc, ok := r.sky.WorldToScreen(b.Pos)
		if !ok {
			continue
		}
		color := colorNoEnergy
		switch {
		case b.Charged:
			color = colorCharged
			b.Charged = false
		case b.Kind == building.SolarPanel:
			color = colorSolar
		case b.Energy > 0:
			color = colorEnergy
		}
		marker := '?'
		if d, ok := assets.Buildings[b.Kind]; ok {
			marker = d.Marker
		}
		style := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(color).Bold(true)
		r.screen.SetContent(sc.X, sc.Y, marker, nil, style)
	}
	if sc, ok := r.sky.WorldToScreen(s.Player.Pos); ok {
		r.screen.SetContent(sc.X, sc.Y, '@', nil, tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack).Bold(true))
	}
}

func (r *Renderer) tileStyle(gmap *gamemap.GameMap, p geom.Point) tcell.Style {
	if !gmap.InBounds(p.X, p.Y) {
		return tcell.StyleDefault.Background(colorBackground)
	}
	return tcell.StyleDefault.Background(r.theme.Color(gmap.At(p.X, p.Y).Kind))
}

func (r *Renderer) fill(rect geom.Rect, bg tcell.Color) {
	style := tcell.StyleDefault.Background(bg)
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
