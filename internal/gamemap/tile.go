package gamemap

import "terrasky/internal/item"

// TileKind identifies the terrain of a map tile.
type TileKind uint8

const (
	TileWater TileKind = iota
	TileSand
	TileGrass
)

func (k TileKind) String() string {
	switch k {
	case TileWater:
		return "water"
	case TileSand:
		return "sand"
	case TileGrass:
		return "grass"
	}
	return "unknown"
}

// Resource is a gatherable node sitting on a land tile.
type Resource uint8

const (
	ResourceNone Resource = iota
	ResourceTree
	ResourceRock
	ResourceIron
	ResourceCopper
)

func (r Resource) String() string {
	switch r {
	case ResourceTree:
		return "tree"
	case ResourceRock:
		return "rock"
	case ResourceIron:
		return "iron_vein"
	case ResourceCopper:
		return "copper_vein"
	}
	return "none"
}

// Yield returns the item one gather of r produces.
func (r Resource) Yield() (item.Kind, bool) {
	switch r {
	case ResourceTree:
		return item.Wood, true
	case ResourceRock:
		return item.Stone, true
	case ResourceIron:
		return item.IronOre, true
	case ResourceCopper:
		return item.CopperOre, true
	}
	return 0, false
}

// Tile holds the terrain and resource node for one map cell.
type Tile struct {
	Kind     TileKind
	Walkable bool
	Resource Resource
}

// MakeWater returns an impassable water tile.
func MakeWater() Tile {
	return Tile{Kind: TileWater}
}

// MakeSand returns a walkable beach tile.
func MakeSand() Tile {
	return Tile{Kind: TileSand, Walkable: true}
}

// MakeGrass returns a walkable grass tile.
func MakeGrass() Tile {
	return Tile{Kind: TileGrass, Walkable: true}
}
