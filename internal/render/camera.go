package render

import "terrasky/internal/geom"

// Camera translates between world tiles and screen cells in the ground view.
// World X is multiplied by 2 because emoji occupy 2 terminal columns.
type Camera struct {
	Offset geom.Point // world tile shown at the top-left cell
	View   geom.Rect  // screen area, in cells
}

// NewCamera creates a camera over view centered on tile c.
func NewCamera(c geom.Point, view geom.Rect) *Camera {
	cam := &Camera{View: view}
	cam.Center(c)
	return cam
}

// Center repositions the camera so that tile c is in the middle.
func (c *Camera) Center(p geom.Point) {
	// View.W is in columns; each world tile is 2 columns wide.
	c.Offset = geom.Point{X: p.X - (c.View.W/2)/2, Y: p.Y - c.View.H/2}
}

// WorldToScreen converts tile w to a screen cell.
// visible is false when the result falls outside the view.
func (c *Camera) WorldToScreen(w geom.Point) (s geom.Point, visible bool) {
	s = geom.Point{X: c.View.X + (w.X-c.Offset.X)*2, Y: c.View.Y + w.Y - c.Offset.Y}
	// Both columns of the glyph must fit.
	visible = c.View.Contains(s) && c.View.Contains(geom.Point{X: s.X + 1, Y: s.Y})
	return s, visible
}

// ScreenToWorld converts a screen cell to the tile drawn there.
func (c *Camera) ScreenToWorld(s geom.Point) geom.Point {
	return geom.Point{X: floorDiv(s.X-c.View.X, 2) + c.Offset.X, Y: s.Y - c.View.Y + c.Offset.Y}
}

// Sky zoom limits, in world tiles per screen cell.
const (
	MinZoom = 1
	MaxZoom = 4
)

// SkyCamera is the zoomable overview camera. One cell shows Zoom×Zoom tiles.
type SkyCamera struct {
	Focus geom.Point // world tile at the view centre
	Zoom  int
	View  geom.Rect
}

// ZoomIn shows fewer tiles per cell.
func (c *SkyCamera) ZoomIn() { c.Zoom = max(MinZoom, c.zoom()-1) }

// ZoomOut shows more tiles per cell.
func (c *SkyCamera) ZoomOut() { c.Zoom = min(MaxZoom, c.zoom()+1) }

// Pan moves the focus by (dx, dy) cells.
func (c *SkyCamera) Pan(dx, dy int) {
	c.Focus = c.Focus.Add(geom.Point{X: dx * c.zoom(), Y: dy * c.zoom()})
}

func (c *SkyCamera) zoom() int {
	return min(MaxZoom, max(MinZoom, c.Zoom))
}

func (c *SkyCamera) centre() geom.Point {
	return geom.Point{X: c.View.X + c.View.W/2, Y: c.View.Y + c.View.H/2}
}

// ScreenToWorld returns the first tile covered by screen cell s.
func (c *SkyCamera) ScreenToWorld(s geom.Point) geom.Point {
	d := s.Sub(c.centre())
	return geom.Point{X: c.Focus.X + d.X*c.zoom(), Y: c.Focus.Y + d.Y*c.zoom()}
}

// WorldToScreen returns the cell covering tile w.
func (c *SkyCamera) WorldToScreen(w geom.Point) (s geom.Point, visible bool) {
	d := w.Sub(c.Focus)
	z := c.zoom()
	s = c.centre().Add(geom.Point{X: floorDiv(d.X, z), Y: floorDiv(d.Y, z)})
	return s, c.View.Contains(s)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
