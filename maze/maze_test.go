package maze

import (
	"math/rand/v2"
	"testing"

	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/dungeon-pcg/grid"
)

func bounds(w, h int) CollisionFunc {
	return func(p grid.Point) bool {
		return p.X < 0 || p.Y < 0 || p.X >= w || p.Y >= h
	}
}

func setOf(points ...grid.Point) mapset.Set[grid.Point] {
	s := mapset.New[grid.Point]()
	for _, p := range points {
		s.Put(p)
	}
	return s
}

func sameSet(a, b mapset.Set[grid.Point]) bool {
	if a.Size() != b.Size() {
		return false
	}
	same := true
	a.Each(func(p grid.Point) {
		if !b.Has(p) {
			same = false
		}
	})
	return same
}

func isOdd(n int) bool { return n%2 == 1 }

func TestGrow_LatticeInvariant(t *testing.T) {
	const w, h = 21, 15
	for seed := uint64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewPCG(seed, seed))
		path := Grow(rng, mapset.New[grid.Point](), bounds(w, h), 0.5, grid.Pt(1, 1))

		if !path.Has(grid.Pt(1, 1)) {
			t.Fatalf("seed %d: start not carved", seed)
		}

		path.Each(func(p grid.Point) {
			if p.X < 0 || p.Y < 0 || p.X >= w || p.Y >= h {
				t.Errorf("seed %d: carved %v outside grid", seed, p)
			}
			switch {
			case isOdd(p.X) && isOdd(p.Y):
				// lattice cell
			case isOdd(p.Y):
				if !path.Has(p.Add(grid.West)) || !path.Has(p.Add(grid.East)) {
					t.Errorf("seed %d: horizontal link %v without carved ends", seed, p)
				}
			case isOdd(p.X):
				if !path.Has(p.Add(grid.North)) || !path.Has(p.Add(grid.South)) {
					t.Errorf("seed %d: vertical link %v without carved ends", seed, p)
				}
			default:
				t.Errorf("seed %d: carved %v has two even coordinates", seed, p)
			}

			// corridors are one cell wide
			if path.Has(p.Add(grid.East)) && path.Has(p.Add(grid.South)) && path.Has(p.Add(grid.East).Add(grid.South)) {
				t.Errorf("seed %d: 2x2 open block at %v", seed, p)
			}
		})

		if n := reachable(path, grid.Pt(1, 1)); n != path.Size() {
			t.Errorf("seed %d: maze not connected, reached %d of %d", seed, n, path.Size())
		}
	}
}

func reachable(path mapset.Set[grid.Point], start grid.Point) int {
	seen := setOf(start)
	pending := []grid.Point{start}
	for len(pending) > 0 {
		p := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		for _, dir := range grid.Cardinals {
			n := p.Add(dir)
			if path.Has(n) && !seen.Has(n) {
				seen.Put(n)
				pending = append(pending, n)
			}
		}
	}
	return seen.Size()
}

func TestGrow_RespectsPreviousAndCollisions(t *testing.T) {
	const w, h = 21, 21
	rng := rand.New(rand.NewPCG(3, 4))

	// A room occupying the centre
	room := func(p grid.Point) bool {
		return p.X >= 7 && p.X <= 13 && p.Y >= 7 && p.Y <= 13
	}
	collides := func(p grid.Point) bool {
		return bounds(w, h)(p) || room(p)
	}

	first := Grow(rng, mapset.New[grid.Point](), collides, 0.75, grid.Pt(1, 1))
	firstSize := first.Size()

	// Any odd lattice cell the first maze left free
	start, found := grid.Point{}, false
	for x := 1; x < w && !found; x += 2 {
		for y := 1; y < h && !found; y += 2 {
			p := grid.Pt(x, y)
			if !first.Has(p) && !collides(p) {
				start, found = p, true
			}
		}
	}

	second := mapset.New[grid.Point]()
	if found {
		second = Grow(rng, first, collides, 0.75, start)
		if !second.Has(start) {
			t.Errorf("expected second maze to contain its start %v", start)
		}
	}
	if first.Size() != firstSize {
		t.Error("Grow must not modify the carved set it is given")
	}

	for _, s := range []mapset.Set[grid.Point]{first, second} {
		s.Each(func(p grid.Point) {
			if room(p) {
				t.Errorf("carved %v inside the room", p)
			}
		})
	}
	second.Each(func(p grid.Point) {
		if first.Has(p) {
			t.Errorf("second maze re-carved %v", p)
		}
	})
}

func TestGrow_CarvedOrCollidingStartIsEmpty(t *testing.T) {
	const w, h = 9, 9
	rng := rand.New(rand.NewPCG(5, 6))
	carved := mapset.New[grid.Point]()
	carved.Put(grid.Pt(1, 1))
	carved.Put(grid.Pt(2, 1))
	carved.Put(grid.Pt(3, 1))

	if path := Grow(rng, carved, bounds(w, h), 0.5, grid.Pt(1, 1)); path.Size() != 0 {
		t.Errorf("expected empty path from a carved start, got %d cells", path.Size())
	}
	if carved.Size() != 3 {
		t.Errorf("expected carved set untouched, got %d cells", carved.Size())
	}

	if path := Grow(rng, mapset.New[grid.Point](), bounds(w, h), 0.5, grid.Pt(0, 0)); path.Size() != 0 {
		t.Errorf("expected empty path from a colliding start, got %d cells", path.Size())
	}
}

func TestGrow_BlockedStartIsSingleCell(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	path := Grow(rng, mapset.New[grid.Point](), bounds(3, 3), 1.0, grid.Pt(1, 1))
	if path.Size() != 1 || !path.Has(grid.Pt(1, 1)) {
		t.Errorf("expected only the start cell, got %d cells", path.Size())
	}
}

func TestPrune_RemovesBranchKeepsThroughRoute(t *testing.T) {
	// Corridor from (1,1) to (5,1) with a spur down to (3,3)
	path := setOf(
		grid.Pt(1, 1), grid.Pt(2, 1), grid.Pt(3, 1), grid.Pt(4, 1), grid.Pt(5, 1),
		grid.Pt(3, 2), grid.Pt(3, 3),
	)
	openings := setOf(grid.Pt(0, 1), grid.Pt(6, 1))

	pruned := Prune(path, openings)

	want := setOf(grid.Pt(1, 1), grid.Pt(2, 1), grid.Pt(3, 1), grid.Pt(4, 1), grid.Pt(5, 1))
	if !sameSet(pruned, want) {
		t.Errorf("expected spur removed, got %d cells", pruned.Size())
	}
	if path.Size() != 7 {
		t.Error("Prune must not modify its input")
	}
}

func TestPrune_CollapsesUnconnectedCorridor(t *testing.T) {
	path := setOf(grid.Pt(1, 1), grid.Pt(2, 1), grid.Pt(3, 1), grid.Pt(4, 1), grid.Pt(5, 1))

	pruned := Prune(path, mapset.New[grid.Point]())
	if pruned.Size() != 1 || !pruned.Has(grid.Pt(3, 1)) {
		t.Errorf("expected the centre cell to remain, got %d cells", pruned.Size())
	}
}

func TestPrune_Idempotent(t *testing.T) {
	const w, h = 25, 25
	for seed := uint64(1); seed <= 10; seed++ {
		rng := rand.New(rand.NewPCG(seed, 99))
		path := Grow(rng, mapset.New[grid.Point](), bounds(w, h), 0.3, grid.Pt(1, 1))

		// Random even cells on the boundary of the maze act as connectors
		openings := mapset.New[grid.Point]()
		for i := 0; i < 4; i++ {
			openings.Put(grid.Pt(0, MakeOdd(1+rng.IntN(h-1))))
		}

		once := Prune(path, openings)
		twice := Prune(once, openings)
		if !sameSet(once, twice) {
			t.Errorf("seed %d: prune not idempotent (%d vs %d cells)", seed, once.Size(), twice.Size())
		}
	}
}

func TestMakeOdd(t *testing.T) {
	tests := map[int]int{-3: 1, 0: 1, 1: 1, 2: 1, 3: 3, 8: 7, 9: 9}
	for in, want := range tests {
		if got := MakeOdd(in); got != want {
			t.Errorf("MakeOdd(%d): expected %d, got %d", in, want, got)
		}
	}
}
