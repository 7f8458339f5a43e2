package assets

import "terrasky/internal/item"

// itemDefs maps each item kind to its glyph and display name.
var itemDefs = map[item.Kind]struct {
	Glyph string
	Name  string
}{
	item.Wood:      {"🪵", "Wood"},
	item.Stone:     {"🪨", "Stone"},
	item.IronOre:   {"🔩", "Iron Ore"},
	item.CopperOre: {"🟤", "Copper Ore"},
	item.IronBar:   {"⬜", "Iron Bar"},
	item.CopperBar: {"🟧", "Copper Bar"},
}

// ItemGlyph returns the glyph for k.
func ItemGlyph(k item.Kind) string {
	if d, ok := itemDefs[k]; ok {
		return d.Glyph
	}
	return GlyphUnknown
}

// ItemName returns the human-readable name for k.
func ItemName(k item.Kind) string {
	if d, ok := itemDefs[k]; ok {
		return d.Name
	}
	return k.String() // fallback
}
