package generate

import (
	"math"
	"math/rand"

	"terrasky/internal/gamemap"
	"terrasky/internal/geom"
)

// Config drives island generation.
type Config struct {
	MapWidth, MapHeight int
	// Radius is the fraction of the map width at which the island mask
	// reaches zero.
	Radius     float64
	Noise      float64 // height noise amplitude, applied as ±Noise
	SandLevel  float64 // heights above this are land
	GrassLevel float64 // heights above this are grass
	Resources  ResourceTable
	Rand       *rand.Rand
}

// DefaultConfig returns the stock 80×80 island settings using rng.
func DefaultConfig(rng *rand.Rand) *Config {
	return &Config{
		MapWidth:   80,
		MapHeight:  80,
		Radius:     0.4,
		Noise:      0.2,
		SandLevel:  0.1,
		GrassLevel: 0.4,
		Resources:  DefaultResources(),
		Rand:       rng,
	}
}

// Generate builds an island: a radial height mask plus uniform noise,
// water at the rim, sand on the shore and grass inland, with resource
// nodes scattered over the land. It returns the map and the player's
// starting tile.
func Generate(cfg *Config) (*gamemap.GameMap, geom.Point) {
	gmap := gamemap.New(cfg.MapWidth, cfg.MapHeight)
	cx, cy := cfg.MapWidth/2, cfg.MapHeight/2
	reach := float64(cfg.MapWidth) * cfg.Radius

	for y := 0; y < cfg.MapHeight; y++ {
		for x := 0; x < cfg.MapWidth; x++ {
			dx, dy := float64(x-cx), float64(y-cy)
			mask := 1.0
			if reach > 0 {
				mask = 1.0 - math.Sqrt(dx*dx+dy*dy)/reach
			}
			height := mask + (cfg.Rand.Float64()*2-1)*cfg.Noise

			switch {
			case height > cfg.GrassLevel:
				gmap.Set(x, y, gamemap.MakeGrass())
			case height > cfg.SandLevel:
				gmap.Set(x, y, gamemap.MakeSand())
			default:
				continue
			}
			gmap.At(x, y).Resource = cfg.Resources.roll(cfg.Rand)
		}
	}

	start := spawnPoint(gmap)
	gmap.At(start.X, start.Y).Resource = gamemap.ResourceNone
	return gmap, start
}

// spawnPoint returns the walkable tile closest to the map centre.
func spawnPoint(gmap *gamemap.GameMap) geom.Point {
	c := gmap.Center()
	best, bestDist := c, -1
	for y := 0; y < gmap.Height; y++ {
		for x := 0; x < gmap.Width; x++ {
			if !gmap.IsWalkable(x, y) {
				continue
			}
			p := geom.Point{X: x, Y: y}
			if d := p.DistSq(c); bestDist < 0 || d < bestDist {
				best, bestDist = p, d
			}
		}
	}
	if bestDist < 0 {
		// No land at all; make the centre walkable so the player can stand.
		gmap.Set(c.X, c.Y, gamemap.MakeSand())
	}
	return best
}
