// Package strategy implements the dungeon generation strategies evolved by the engine
package strategy

import (
	"fmt"
	"math/rand/v2"

	"github.com/lixenwraith/dungeon-pcg/catalog"
	"github.com/lixenwraith/dungeon-pcg/grid"
)

// Seed holds the generation parameters shared by every genotype of a run
// It is never modified after construction and is shared by pointer.
// OccupantChance also drives the per-cell item roll.
type Seed struct {
	Width, Height  int
	Tiles          *catalog.Options[grid.Tile]
	Items          *catalog.Options[grid.Item]
	Occupants      *catalog.Options[grid.Occupant]
	OccupantChance float64
}

// Placement is a pre-rolled occupant position
type Placement struct {
	Occupant grid.Occupant
	At       grid.Point
}

// NewSeed validates and bundles the shared generation parameters
func NewSeed(width, height int, tiles *catalog.Options[grid.Tile], items *catalog.Options[grid.Item],
	occupants *catalog.Options[grid.Occupant], occupantChance float64) (*Seed, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("dungeon dimensions must be positive, got %dx%d", width, height)
	}
	if tiles == nil || tiles.Len() == 0 {
		return nil, fmt.Errorf("tile catalog is empty")
	}
	if occupantChance < 0 || occupantChance > 1 {
		return nil, fmt.Errorf("occupant chance must be within [0,1], got %v", occupantChance)
	}
	if items == nil {
		items = catalog.MustNew[grid.Item]()
	}
	if occupants == nil {
		occupants = catalog.MustNew[grid.Occupant]()
	}
	return &Seed{
		Width:          width,
		Height:         height,
		Tiles:          tiles,
		Items:          items,
		Occupants:      occupants,
		OccupantChance: occupantChance,
	}, nil
}

// RandomOccupant rolls an occupant for a cell holding tile; only floor cells can be occupied
func (s *Seed) RandomOccupant(rng *rand.Rand, tile grid.Tile) grid.Occupant {
	if tile != grid.Floor || s.Occupants.Len() == 0 {
		return grid.NoOccupant
	}
	if rng.Float64() >= s.OccupantChance {
		return grid.NoOccupant
	}
	return s.Occupants.Choose(rng)
}

// RandomItem rolls an item dropped on a cell holding tile; items only lie on floor
func (s *Seed) RandomItem(rng *rand.Rand, tile grid.Tile) grid.Item {
	if tile != grid.Floor || s.Items.Len() == 0 {
		return grid.NoItem
	}
	if rng.Float64() >= s.OccupantChance {
		return grid.NoItem
	}
	return s.Items.Choose(rng)
}

// RandomOccupants pre-rolls occupant_chance x width x height placements
// Coordinates are drawn from [1,width) x [1,height)
func (s *Seed) RandomOccupants(rng *rand.Rand) []Placement {
	if s.Occupants.Len() == 0 || s.Width < 2 || s.Height < 2 {
		return nil
	}
	n := int(s.OccupantChance * float64(s.Width*s.Height))
	out := make([]Placement, 0, n)
	for i := 0; i < n; i++ {
		at := s.interiorPoint(rng)
		out = append(out, Placement{Occupant: s.Occupants.Choose(rng), At: at})
	}
	return out
}

// RequireTiles reports the first semantic tile missing from the catalog
func (s *Seed) RequireTiles(tiles ...grid.Tile) error {
	for _, t := range tiles {
		if !s.Tiles.Has(t) {
			return fmt.Errorf("tile catalog lacks %q", t)
		}
	}
	return nil
}

// interiorPoint draws a coordinate from [1,width) x [1,height), collapsing to 0 on single-cell axes
func (s *Seed) interiorPoint(rng *rand.Rand) grid.Point {
	return grid.Point{X: interior(rng, s.Width), Y: interior(rng, s.Height)}
}

func interior(rng *rand.Rand, n int) int {
	if n < 2 {
		return 0
	}
	return 1 + rng.IntN(n-1)
}

// placeOccupants puts pre-rolled occupants on cells that are still plain floor
func placeOccupants(d *grid.Dungeon, occupants []Placement) {
	for _, o := range occupants {
		if d.Contains(o.At) && d.HasAttribute(o.At.X, o.At.Y, string(grid.Floor)) {
			d.SetOccupant(o.At.X, o.At.Y, o.Occupant)
		}
	}
}
