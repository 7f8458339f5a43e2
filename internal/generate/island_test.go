package generate

import (
	"math/rand"
	"testing"

	"terrasky/internal/gamemap"
)

func TestGenerateDeterministic(t *testing.T) {
	a, sa := Generate(DefaultConfig(rand.New(rand.NewSource(42))))
	b, sb := Generate(DefaultConfig(rand.New(rand.NewSource(42))))
	if sa != sb {
		t.Fatalf("spawn differs: %v vs %v", sa, sb)
	}
	for y := range a.Tiles {
		for x := range a.Tiles[y] {
			if a.Tiles[y][x] != b.Tiles[y][x] {
				t.Fatalf("tile (%d,%d) differs for the same seed", x, y)
			}
		}
	}
}

func TestGenerateIsland(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		gmap, spawn := Generate(DefaultConfig(rand.New(rand.NewSource(seed))))

		if !gmap.IsWalkable(spawn.X, spawn.Y) {
			t.Fatalf("seed %d: spawn %v is not walkable", seed, spawn)
		}
		if gmap.At(spawn.X, spawn.Y).Resource != gamemap.ResourceNone {
			t.Fatalf("seed %d: spawn tile holds a resource", seed)
		}
		// The mask is below zero at the corners even with full positive noise.
		for _, c := range [][2]int{{0, 0}, {79, 0}, {0, 79}, {79, 79}} {
			if gmap.At(c[0], c[1]).Kind != gamemap.TileWater {
				t.Fatalf("seed %d: corner %v should be water", seed, c)
			}
		}
		// Centre height is at least 0.8, always grass.
		if gmap.At(40, 40).Kind != gamemap.TileGrass {
			t.Fatalf("seed %d: centre should be grass", seed)
		}
		for y := range gmap.Tiles {
			for x, tile := range gmap.Tiles[y] {
				if tile.Kind == gamemap.TileWater && tile.Resource != gamemap.ResourceNone {
					t.Fatalf("seed %d: resource on water at (%d,%d)", seed, x, y)
				}
			}
		}
		if gmap.Resources()[gamemap.ResourceTree] == 0 {
			t.Fatalf("seed %d: expected some trees", seed)
		}
	}
}

func TestPickMineral(t *testing.T) {
	entries := DefaultResources().Minerals
	cases := []struct {
		r    float64
		want gamemap.Resource
	}{
		{0.0, gamemap.ResourceRock},
		{0.49, gamemap.ResourceRock},
		{0.5, gamemap.ResourceIron},
		{0.79, gamemap.ResourceIron},
		{0.8, gamemap.ResourceCopper},
		{0.999, gamemap.ResourceCopper},
	}
	for _, c := range cases {
		if got := pickMineral(entries, c.r); got != c.want {
			t.Errorf("pickMineral(%v) = %v; want %v", c.r, got, c.want)
		}
	}
	if pickMineral(nil, 0.3) != gamemap.ResourceNone {
		t.Error("no entries should yield nothing")
	}
}
