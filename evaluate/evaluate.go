// Package evaluate scores generated dungeons against structural properties
// Every evaluator is a pure function of the grid
package evaluate

import (
	"github.com/lixenwraith/dungeon-pcg/genetic/fitness"
	"github.com/lixenwraith/dungeon-pcg/genetic/registry"
	"github.com/lixenwraith/dungeon-pcg/grid"
)

// Evaluator names as used in configuration
const (
	NameCheck1x1Rooms       = "check_1x1_rooms"
	NameHasEntranceExit     = "has_entrance_exit"
	NameDoorsAreUseful      = "doors_are_useful"
	NameRoomsAreAccessible  = "rooms_are_accessible"
	NameWalkableComponents  = "walkable_components"
	NameEntranceReachesExit = "entrance_reaches_exit"
)

// Func is a dungeon evaluator
type Func = fitness.Evaluator[*grid.Dungeon]

// Registry returns a registry holding every built-in evaluator
func Registry() *registry.Registry[Func] {
	return registry.New[Func]("evaluator").
		MustRegister(NameCheck1x1Rooms, Check1x1Rooms).
		MustRegister(NameHasEntranceExit, HasEntranceExit).
		MustRegister(NameDoorsAreUseful, DoorsAreUseful).
		MustRegister(NameRoomsAreAccessible, RoomsAreAccessible).
		MustRegister(NameWalkableComponents, WalkableComponents).
		MustRegister(NameEntranceReachesExit, EntranceReachesExit)
}

// Check1x1Rooms counts empty cells whose in-bounds cardinal neighbours are all non-empty
// Raw count; weight it negatively
func Check1x1Rooms(d *grid.Dungeon) float64 {
	hits := 0
	d.Cells(func(c *grid.Cell) {
		if !c.IsEmpty() {
			return
		}
		surrounded := true
		d.Surrounding(c.X, c.Y, grid.Cardinal, func(n *grid.Cell) {
			if n.IsEmpty() {
				surrounded = false
			}
		})
		if surrounded {
			hits++
		}
	})
	return float64(hits)
}

// HasEntranceExit scores 2 with both tiles present, 1 with exactly one, 0 with neither
func HasEntranceExit(d *grid.Dungeon) float64 {
	score := 0.0
	if _, ok := d.Find(grid.Entrance); ok {
		score++
	}
	if _, ok := d.Find(grid.Exit); ok {
		score++
	}
	return score
}

// DoorsAreUseful counts doors not framed by exactly two blocking cardinal neighbours
// Blocking means wall, no tile, or outside the grid. Raw count; weight it negatively
func DoorsAreUseful(d *grid.Dungeon) float64 {
	useless := 0
	d.Cells(func(c *grid.Cell) {
		if c.Tile != grid.Door {
			return
		}
		blocking := 0
		origin := c.Pos()
		for _, dir := range grid.Cardinals {
			p := origin.Add(dir)
			if !d.Contains(p) {
				blocking++
				continue
			}
			if t := d.At(p.X, p.Y).Tile; t == grid.Wall || t == grid.NoTile {
				blocking++
			}
		}
		if blocking != 2 {
			useless++
		}
	})
	return float64(useless)
}
