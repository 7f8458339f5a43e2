// Package window manages the movable panels drawn over the world: their
// back-to-front order, pointer hit-testing, dragging and closing.
package window

import "terrasky/internal/geom"

// closeWidth is the number of title-bar cells, counted from the right edge,
// that act as the close button.
const closeWidth = 3

// Content receives clicks that land in a panel body. local is relative to
// the body's top-left cell.
type Content interface {
	Click(local geom.Point)
}

// Panel is one window. The first row of Bounds is the title bar.
type Panel struct {
	ID      string
	Title   string
	Bounds  geom.Rect
	Visible bool
	Content Content
}

// TitleBar returns the drag handle.
func (p *Panel) TitleBar() geom.Rect {
	return geom.Rect{X: p.Bounds.X, Y: p.Bounds.Y, W: p.Bounds.W, H: 1}
}

// CloseBox returns the close affordance in the title bar's right corner.
func (p *Panel) CloseBox() geom.Rect {
	w := min(closeWidth, p.Bounds.W)
	return geom.Rect{X: p.Bounds.Right() - w, Y: p.Bounds.Y, W: w, H: 1}
}

// Body returns the area below the title bar.
func (p *Panel) Body() geom.Rect {
	return geom.Rect{X: p.Bounds.X, Y: p.Bounds.Y + 1, W: p.Bounds.W, H: p.Bounds.H - 1}
}

// Manager owns the panel order. The last panel in the list is drawn last and
// is the first to see pointer events.
type Manager struct {
	panels   []*Panel
	viewport geom.Rect

	dragging *Panel
	grab     geom.Point // pointer offset from the dragged panel's corner
}

// NewManager creates a manager whose panels are kept inside viewport.
func NewManager(viewport geom.Rect) *Manager {
	return &Manager{viewport: viewport}
}

// Add appends p on top of the order, clamped into the viewport. Adding a
// panel whose ID is already present replaces nothing and returns the
// existing panel.
func (m *Manager) Add(p *Panel) *Panel {
	if old := m.Panel(p.ID); old != nil {
		return old
	}
	p.Bounds = p.Bounds.ClampInside(m.viewport)
	m.panels = append(m.panels, p)
	return p
}

// Panel returns the panel with the given id, or nil.
func (m *Manager) Panel(id string) *Panel {
	for _, p := range m.panels {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Panels returns the panels back to front. The slice is a copy.
func (m *Manager) Panels() []*Panel {
	out := make([]*Panel, len(m.panels))
	copy(out, m.panels)
	return out
}

// Order returns the panel ids back to front.
func (m *Manager) Order() []string {
	ids := make([]string, len(m.panels))
	for i, p := range m.panels {
		ids[i] = p.ID
	}
	return ids
}

// Viewport returns the area panels are confined to.
func (m *Manager) Viewport() geom.Rect { return m.viewport }

// SetViewport changes the confining area and pulls every panel back inside.
func (m *Manager) SetViewport(r geom.Rect) {
	m.viewport = r
	for _, p := range m.panels {
		p.Bounds = p.Bounds.ClampInside(r)
	}
}

// Raise moves the panel to the top of the order.
func (m *Manager) Raise(id string) {
	for i, p := range m.panels {
		if p.ID != id {
			continue
		}
		copy(m.panels[i:], m.panels[i+1:])
		m.panels[len(m.panels)-1] = p
		return
	}
}

// Show makes the panel visible at its last position and raises it.
func (m *Manager) Show(id string) {
	p := m.Panel(id)
	if p == nil {
		return
	}
	p.Visible = true
	m.Raise(id)
}

// Hide excludes the panel from drawing and hit-testing. It keeps its place
// in the order.
func (m *Manager) Hide(id string) {
	p := m.Panel(id)
	if p == nil {
		return
	}
	p.Visible = false
	if m.dragging == p {
		m.dragging = nil
	}
}

// Toggle flips visibility and reports the new state.
func (m *Manager) Toggle(id string) bool {
	p := m.Panel(id)
	if p == nil {
		return false
	}
	if p.Visible {
		m.Hide(id)
	} else {
		m.Show(id)
	}
	return p.Visible
}

// HideAll hides every panel.
func (m *Manager) HideAll() {
	for _, p := range m.panels {
		p.Visible = false
	}
	m.dragging = nil
}

// AnyVisible reports whether at least one panel is shown.
func (m *Manager) AnyVisible() bool {
	for _, p := range m.panels {
		if p.Visible {
			return true
		}
	}
	return false
}

// Dragging reports whether a title-bar drag is in progress.
func (m *Manager) Dragging() bool { return m.dragging != nil }

// At returns the topmost visible panel containing pos, or nil.
func (m *Manager) At(pos geom.Point) *Panel {
	for i := len(m.panels) - 1; i >= 0; i-- {
		p := m.panels[i]
		if p.Visible && p.Bounds.Contains(pos) {
			return p
		}
	}
	return nil
}

// PointerDown routes a button press. It reports whether a panel claimed it;
// unclaimed presses belong to the world. The claiming panel is raised, then
// the press closes it, starts a drag or reaches its content.
func (m *Manager) PointerDown(pos geom.Point) bool {
	p := m.At(pos)
	if p == nil {
		return false
	}
	m.Raise(p.ID)
	switch {
	case p.CloseBox().Contains(pos):
		m.Hide(p.ID)
	case p.TitleBar().Contains(pos):
		m.dragging = p
		m.grab = pos.Sub(p.Bounds.Min())
	case p.Content != nil:
		p.Content.Click(pos.Sub(p.Body().Min()))
	}
	return true
}

// PointerMove moves the dragged panel, keeping it inside the viewport.
func (m *Manager) PointerMove(pos geom.Point) bool {
	if m.dragging != nil {
		p := m.dragging
		p.Bounds = p.Bounds.Moved(pos.Sub(m.grab)).ClampInside(m.viewport)
		return true
	}
	return m.At(pos) != nil
}

// PointerUp ends a drag where it is.
func (m *Manager) PointerUp(pos geom.Point) bool {
	if m.dragging != nil {
		m.dragging = nil
		return true
	}
	return m.At(pos) != nil
}
