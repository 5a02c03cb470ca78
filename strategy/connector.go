package strategy

import (
	"math/rand/v2"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/dungeon-pcg/grid"
)

// Region is a carved corridor set sharing one region id
type Region struct {
	Path mapset.Set[grid.Point]
	ID   int
}

// Connector is an uncarved cell touching two or more regions
type Connector struct {
	At      grid.Point
	Regions []int // sorted, distinct
}

// findConnectors scans the neighbours of every room border and corridor cell
// A candidate must be in bounds, uncarved, outside every room and touch at least two regions.
// The result is ordered by position.
func findConnectors(width, height int, mazes []Region, rs rooms) []Connector {
	lookup := make(map[grid.Point]int)
	for _, m := range mazes {
		m.Path.Each(func(p grid.Point) {
			lookup[p] = m.ID
		})
	}
	for _, r := range rs {
		for _, p := range r.Border() {
			lookup[p] = r.Region
		}
	}

	inBounds := func(p grid.Point) bool {
		return p.X >= 0 && p.Y >= 0 && p.X < width && p.Y < height
	}

	examined := mapset.New[grid.Point]()
	var connectors []Connector
	for coord := range lookup {
		for _, dir := range grid.Cardinals {
			candidate := coord.Add(dir)
			if examined.Has(candidate) {
				continue
			}
			examined.Put(candidate)
			if !inBounds(candidate) || rs.contains(candidate) {
				continue
			}
			if _, carved := lookup[candidate]; carved {
				continue
			}

			var regions []int
			for _, d := range grid.Cardinals {
				if id, ok := lookup[candidate.Add(d)]; ok && !slices.Contains(regions, id) {
					regions = append(regions, id)
				}
			}
			if len(regions) >= 2 {
				slices.Sort(regions)
				connectors = append(connectors, Connector{At: candidate, Regions: regions})
			}
		}
	}

	slices.SortFunc(connectors, func(a, b Connector) int {
		return grid.ComparePoints(a.At, b.At)
	})
	return connectors
}

// mergeRegions joins all regions into one by picking random connectors
// Each pick merges every region the connector touches; connectors left inside a
// single merged region are discarded. Returns the connectors that were used,
// which form a spanning structure over the region adjacency graph.
// Stops early when connectors run out, leaving disconnected input disconnected.
func mergeRegions(rng *rand.Rand, connectors []Connector) []Connector {
	open := mapset.New[int]()
	for _, c := range connectors {
		for _, r := range c.Regions {
			open.Put(r)
		}
	}
	representative := make(map[int]int, open.Size())
	open.Each(func(r int) {
		representative[r] = r
	})

	merged := func(c Connector) []int {
		var out []int
		for _, r := range c.Regions {
			if rep := representative[r]; !slices.Contains(out, rep) {
				out = append(out, rep)
			}
		}
		slices.Sort(out)
		return out
	}

	current := slices.Clone(connectors)
	var used []Connector
	for open.Size() > 1 && len(current) > 0 {
		connector := current[rng.IntN(len(current))]
		regions := merged(connector)
		first, rest := regions[0], regions[1:]
		used = append(used, connector)

		for r, rep := range representative {
			if slices.Contains(rest, rep) {
				representative[r] = first
			}
		}
		for _, r := range rest {
			open.Remove(r)
		}

		current = slices.DeleteFunc(current, func(c Connector) bool {
			return len(merged(c)) < 2
		})
	}
	return used
}
