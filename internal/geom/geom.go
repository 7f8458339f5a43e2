// Package geom holds the small integer geometry types shared by the world,
// the window manager and the renderer. All coordinates are in cells.
package geom

// Point is an integer coordinate.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// DistSq returns the squared euclidean distance between p and q.
func (p Point) DistSq(q Point) int {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
// A Rect with W or H <= 0 contains nothing.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether p lies inside r (right and bottom edges exclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Min returns the top-left corner.
func (r Rect) Min() Point { return Point{r.X, r.Y} }

// Right returns the x coordinate one past the last column.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the y coordinate one past the last row.
func (r Rect) Bottom() int { return r.Y + r.H }

// Intersects reports whether r and o share at least one cell.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Moved returns r with its top-left corner at p.
func (r Rect) Moved(p Point) Rect {
	r.X, r.Y = p.X, p.Y
	return r
}

// ClampInside moves r so that it lies fully inside bounds. When r is larger
// than bounds on an axis it is pinned to the bounds' top/left edge.
func (r Rect) ClampInside(bounds Rect) Rect {
	r.X = clamp(r.X, bounds.X, bounds.Right()-r.W)
	r.Y = clamp(r.Y, bounds.Y, bounds.Bottom()-r.H)
	return r
}

func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
