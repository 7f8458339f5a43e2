package generate

import (
	"math/rand"

	"terrasky/internal/gamemap"
)

// ResourceTable gives the odds of a node appearing on a land tile. A tree is
// rolled first; failing that, a mineral roll picks rock, iron or copper by
// weight.
type ResourceTable struct {
	TreeChance    float64
	MineralChance float64
	Minerals      []MineralEntry
}

// MineralEntry is one weighted mineral outcome.
type MineralEntry struct {
	Resource gamemap.Resource
	Weight   float64
}

// DefaultResources returns 10% trees, then 5% minerals split 50/30/20
// between rock, iron and copper.
func DefaultResources() ResourceTable {
	return ResourceTable{
		TreeChance:    0.10,
		MineralChance: 0.05,
		Minerals: []MineralEntry{
			{gamemap.ResourceRock, 0.5},
			{gamemap.ResourceIron, 0.3},
			{gamemap.ResourceCopper, 0.2},
		},
	}
}

func (t ResourceTable) roll(rng *rand.Rand) gamemap.Resource {
	if rng.Float64() < t.TreeChance {
		return gamemap.ResourceTree
	}
	if rng.Float64() >= t.MineralChance {
		return gamemap.ResourceNone
	}
	return pickMineral(t.Minerals, rng.Float64())
}

// pickMineral maps r in [0,1) onto the weighted entries.
func pickMineral(entries []MineralEntry, r float64) gamemap.Resource {
	total := 0.0
	for _, e := range entries {
		total += e.Weight
	}
	if total <= 0 {
		return gamemap.ResourceNone
	}
	r *= total
	for _, e := range entries {
		if r < e.Weight {
			return e.Resource
		}
		r -= e.Weight
	}
	return entries[len(entries)-1].Resource
}
