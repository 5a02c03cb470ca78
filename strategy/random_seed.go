package strategy

import (
	"math/rand/v2"
	"slices"

	"github.com/lixenwraith/dungeon-pcg/grid"
)

// RandomSeed picks every cell's tile independently from the catalog
// Items and occupants are rolled per floor cell; there is no structure at all
type RandomSeed struct {
	seed      *Seed
	tiles     []grid.Tile
	items     []grid.Item
	occupants []grid.Occupant
}

// NewRandomSeed returns a blank template
func NewRandomSeed(seed *Seed) *RandomSeed {
	return &RandomSeed{seed: seed}
}

func (r *RandomSeed) index(x, y int) int {
	return x*r.seed.Height + y
}

func (r *RandomSeed) Initialize(rng *rand.Rand) *RandomSeed {
	n := r.seed.Width * r.seed.Height
	out := &RandomSeed{
		seed:      r.seed,
		tiles:     make([]grid.Tile, n),
		items:     make([]grid.Item, n),
		occupants: make([]grid.Occupant, n),
	}
	for i := range out.tiles {
		out.roll(rng, i)
	}
	return out
}

// Mutate re-rolls rate x width x height random cells
func (r *RandomSeed) Mutate(rng *rand.Rand, rate float64) {
	if len(r.tiles) == 0 {
		return
	}
	n := int(rate * float64(len(r.tiles)))
	for i := 0; i < n; i++ {
		r.roll(rng, rng.IntN(len(r.tiles)))
	}
}

func (r *RandomSeed) roll(rng *rand.Rand, i int) {
	tile := r.seed.Tiles.Choose(rng)
	r.tiles[i] = tile
	r.items[i] = r.seed.RandomItem(rng, tile)
	r.occupants[i] = r.seed.RandomOccupant(rng, tile)
}

func (r *RandomSeed) Generate() *grid.Dungeon {
	d := grid.New(r.seed.Width, r.seed.Height, grid.NoTile)
	if len(r.tiles) == 0 {
		return d
	}
	for x := 0; x < r.seed.Width; x++ {
		for y := 0; y < r.seed.Height; y++ {
			i := r.index(x, y)
			d.SetTile(x, y, r.tiles[i])
			if r.items[i] != grid.NoItem {
				d.AddItem(x, y, r.items[i])
			}
			if r.occupants[i] != grid.NoOccupant {
				d.SetOccupant(x, y, r.occupants[i])
			}
		}
	}
	return d
}

func (r *RandomSeed) Clone() *RandomSeed {
	return &RandomSeed{
		seed:      r.seed,
		tiles:     slices.Clone(r.tiles),
		items:     slices.Clone(r.items),
		occupants: slices.Clone(r.occupants),
	}
}
