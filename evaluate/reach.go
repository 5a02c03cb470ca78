package evaluate

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
	"github.com/zyedidia/generic/stack"

	"github.com/lixenwraith/dungeon-pcg/grid"
)

// RoomsAreAccessible is 1 when every walkable cell is reachable from every other
// (including a dungeon with no walkable cells), else 0
func RoomsAreAccessible(d *grid.Dungeon) float64 {
	if walkableComponents(d) <= 1 {
		return 1
	}
	return 0
}

// WalkableComponents counts the connected components of walkable cells
// Continuous companion of RoomsAreAccessible; weight it negatively
func WalkableComponents(d *grid.Dungeon) float64 {
	return float64(walkableComponents(d))
}

// EntranceReachesExit is 1 when a walkable path links the entrance to the exit
func EntranceReachesExit(d *grid.Dungeon) float64 {
	start, ok := d.Find(grid.Entrance)
	if !ok {
		return 0
	}
	goal, ok := d.Find(grid.Exit)
	if !ok {
		return 0
	}

	visited := mapset.New[grid.Point]()
	frontier := queue.New[grid.Point]()
	frontier.Enqueue(start)
	visited.Put(start)

	for !frontier.Empty() {
		current := frontier.Dequeue()
		if current == goal {
			return 1
		}
		d.Surrounding(current.X, current.Y, grid.Cardinal, func(n *grid.Cell) {
			p := n.Pos()
			if n.IsWalkable() && !visited.Has(p) {
				visited.Put(p)
				frontier.Enqueue(p)
			}
		})
	}
	return 0
}

// walkableComponents sweeps the grid with depth-first flood fills
func walkableComponents(d *grid.Dungeon) int {
	visited := mapset.New[grid.Point]()
	components := 0

	d.Cells(func(c *grid.Cell) {
		if !c.IsWalkable() || visited.Has(c.Pos()) {
			return
		}
		components++
		floodFill(d, c.Pos(), visited)
	})
	return components
}

// floodFill marks every walkable cell cardinally connected to start
func floodFill(d *grid.Dungeon, start grid.Point, visited mapset.Set[grid.Point]) {
	pending := stack.New[grid.Point]()
	pending.Push(start)
	visited.Put(start)

	for pending.Size() > 0 {
		current := pending.Pop()
		d.Surrounding(current.X, current.Y, grid.Cardinal, func(n *grid.Cell) {
			p := n.Pos()
			if n.IsWalkable() && !visited.Has(p) {
				visited.Put(p)
				pending.Push(p)
			}
		})
	}
}
