package assets

import (
	"terrasky/internal/building"
	"terrasky/internal/gamemap"
)

// Emoji constants used as world glyphs.
const (
	GlyphPlayer     = "🧑"
	GlyphTree       = "🌲"
	GlyphRock       = "🪨"
	GlyphIronVein   = "🔳"
	GlyphCopperVein = "🟠"
	GlyphFurnace    = "🔥"
	GlyphSolar      = "🔆"
	GlyphLab        = "🔬"
	GlyphUnknown    = "❓"
)

// resourceGlyphs maps each resource node to its glyph.
var resourceGlyphs = map[gamemap.Resource]string{
	gamemap.ResourceTree:   GlyphTree,
	gamemap.ResourceRock:   GlyphRock,
	gamemap.ResourceIron:   GlyphIronVein,
	gamemap.ResourceCopper: GlyphCopperVein,
}

// ResourceGlyph returns the glyph for r, or "" for no node.
func ResourceGlyph(r gamemap.Resource) string {
	return resourceGlyphs[r]
}

// BuildingDef describes how a building kind is presented.
type BuildingDef struct {
	Glyph  string
	Name   string
	Marker rune // single-cell symbol for the sky overview
}

// Buildings maps each building kind to its presentation.
var Buildings = map[building.Kind]BuildingDef{
	building.Furnace:    {Glyph: GlyphFurnace, Name: "Furnace", Marker: 'F'},
	building.SolarPanel: {Glyph: GlyphSolar, Name: "Solar Panel", Marker: 'S'},
	building.ScienceLab: {Glyph: GlyphLab, Name: "Science Lab", Marker: 'L'},
}

// BuildingGlyph returns the glyph for k.
func BuildingGlyph(k building.Kind) string {
	if d, ok := Buildings[k]; ok {
		return d.Glyph
	}
	return GlyphUnknown
}

// BuildingName returns the display name for k.
func BuildingName(k building.Kind) string {
	if d, ok := Buildings[k]; ok {
		return d.Name
	}
	return k.String()
}
