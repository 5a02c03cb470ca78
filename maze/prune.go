package maze

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/dungeon-pcg/grid"
)

// Prune removes dead-end chains from a corridor set
// A dead end is a cell with exactly one accessible cardinal neighbour, where
// accessible means another corridor cell or one of openings (connectors).
// Removal repeats until no dead end remains, so Prune(Prune(p)) == Prune(p).
// The input set is not modified.
func Prune(path mapset.Set[grid.Point], openings mapset.Set[grid.Point]) mapset.Set[grid.Point] {
	remaining := mapset.New[grid.Point]()
	path.Each(func(p grid.Point) {
		remaining.Put(p)
	})

	exits := func(p grid.Point) int {
		n := 0
		for _, dir := range grid.Cardinals {
			next := p.Add(dir)
			if remaining.Has(next) || openings.Has(next) {
				n++
			}
		}
		return n
	}

	var deadEnds []grid.Point
	for {
		deadEnds = deadEnds[:0]
		remaining.Each(func(p grid.Point) {
			if exits(p) == 1 {
				deadEnds = append(deadEnds, p)
			}
		})
		if len(deadEnds) == 0 {
			return remaining
		}
		for _, p := range deadEnds {
			remaining.Remove(p)
		}
	}
}
