package gamemap

import (
	"terrasky/internal/geom"
	"terrasky/internal/item"
)

// GameMap holds the tile grid of the island.
type GameMap struct {
	Width, Height int
	Tiles         [][]Tile
}

// New creates a GameMap filled with water.
func New(width, height int) *GameMap {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = MakeWater()
		}
	}
	return &GameMap{Width: width, Height: height, Tiles: tiles}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns a pointer to the tile at (x, y). Panics if out of bounds.
func (m *GameMap) At(x, y int) *Tile {
	return &m.Tiles[y][x]
}

// Set replaces the tile at (x, y).
func (m *GameMap) Set(x, y int, t Tile) {
	m.Tiles[y][x] = t
}

// IsWalkable returns true when (x, y) is in bounds and walkable.
func (m *GameMap) IsWalkable(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.Tiles[y][x].Walkable
}

// Bounds returns the map as a rectangle.
func (m *GameMap) Bounds() geom.Rect {
	return geom.Rect{W: m.Width, H: m.Height}
}

// Center returns the middle tile.
func (m *GameMap) Center() geom.Point {
	return geom.Point{X: m.Width / 2, Y: m.Height / 2}
}

// GatherAt consumes the resource node at p and returns what it yielded.
// It returns false when p holds no node.
func (m *GameMap) GatherAt(p geom.Point) (item.Kind, bool) {
	if !m.InBounds(p.X, p.Y) {
		return 0, false
	}
	t := m.At(p.X, p.Y)
	k, ok := t.Resource.Yield()
	if !ok {
		return 0, false
	}
	t.Resource = ResourceNone
	return k, true
}

// Resources counts the remaining nodes of each kind.
func (m *GameMap) Resources() map[Resource]int {
	out := make(map[Resource]int)
	for y := range m.Tiles {
		for x := range m.Tiles[y] {
			if r := m.Tiles[y][x].Resource; r != ResourceNone {
				out[r]++
			}
		}
	}
	return out
}
