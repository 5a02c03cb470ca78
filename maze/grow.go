// Package maze carves corridors on the odd lattice of a dungeon grid
// and prunes their dead ends once the regions have been connected
package maze

import (
	"math/rand/v2"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"

	"github.com/lixenwraith/dungeon-pcg/grid"
)

// CollisionFunc reports coordinates a corridor must not enter (outside the grid, inside a room)
type CollisionFunc func(p grid.Point) bool

// Grow carves one maze region from start using the growing-tree algorithm
// carved holds corridors of earlier regions and is not modified.
// Each step advances two cells so corridors stay on the odd lattice with
// a one-cell wall between them. branching is the probability of continuing
// in the current direction when it is open.
// Returns only the newly carved coordinates, which is empty when start
// is already carved or collides.
func Grow(rng *rand.Rand, carved mapset.Set[grid.Point], collides CollisionFunc, branching float64, start grid.Point) mapset.Set[grid.Point] {
	path := mapset.New[grid.Point]()
	if carved.Has(start) || collides(start) {
		return path
	}
	taken := func(p grid.Point) bool {
		return carved.Has(p) || path.Has(p)
	}

	direction := grid.Cardinals[rng.IntN(len(grid.Cardinals))]
	frontier := stack.New[grid.Point]()
	frontier.Push(start)
	path.Put(start)

	open := make([]grid.Point, 0, len(grid.Cardinals))
	for frontier.Size() > 0 {
		current := frontier.Peek()

		open = open[:0]
		for _, dir := range grid.Cardinals {
			ahead1, ahead2, ahead3 := current.Step(dir, 1), current.Step(dir, 2), current.Step(dir, 3)
			if taken(ahead1) || taken(ahead2) || taken(ahead3) {
				continue
			}
			if collides(ahead2) || collides(ahead3) {
				continue
			}
			open = append(open, dir)
		}

		if len(open) == 0 {
			frontier.Pop()
			continue
		}

		if !(rng.Float64() < branching && containsDir(open, direction)) {
			direction = open[rng.IntN(len(open))]
		}
		path.Put(current.Step(direction, 1))
		next := current.Step(direction, 2)
		path.Put(next)
		frontier.Push(next)
	}

	return path
}

func containsDir(dirs []grid.Point, dir grid.Point) bool {
	for _, d := range dirs {
		if d == dir {
			return true
		}
	}
	return false
}

// MakeOdd rounds n down to the nearest odd number, never below 1
func MakeOdd(n int) int {
	if n < 1 {
		return 1
	}
	if n%2 == 0 {
		return n - 1
	}
	return n
}
