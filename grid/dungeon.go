package grid

import "fmt"

// Dungeon is a dense column-major grid of cells.
// cells[x][y] always holds the cell at (x, y).
type Dungeon struct {
	width, height int
	cells         [][]Cell
}

// New allocates a width x height grid with every tile set to tile (NoTile for empty)
func New(width, height int, tile Tile) *Dungeon {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("grid: invalid dimensions %dx%d", width, height))
	}
	cells := make([][]Cell, width)
	for x := range cells {
		cells[x] = make([]Cell, height)
		for y := range cells[x] {
			cells[x][y] = Cell{X: x, Y: y, Tile: tile}
		}
	}
	return &Dungeon{width: width, height: height, cells: cells}
}

func (d *Dungeon) Width() int  { return d.width }
func (d *Dungeon) Height() int { return d.height }

// InBounds reports whether (x, y) lies inside the grid
func (d *Dungeon) InBounds(x, y int) bool {
	return x >= 0 && x < d.width && y >= 0 && y < d.height
}

// Contains is InBounds for a Point
func (d *Dungeon) Contains(p Point) bool {
	return d.InBounds(p.X, p.Y)
}

// At returns the cell at (x, y), panicking when out of bounds
func (d *Dungeon) At(x, y int) *Cell {
	d.mustContain(x, y)
	return &d.cells[x][y]
}

func (d *Dungeon) mustContain(x, y int) {
	if !d.InBounds(x, y) {
		panic(fmt.Sprintf("grid: (%d,%d) outside %dx%d", x, y, d.width, d.height))
	}
}

func (d *Dungeon) SetTile(x, y int, tile Tile) {
	d.At(x, y).Tile = tile
}

func (d *Dungeon) SetOccupant(x, y int, occupant Occupant) {
	d.At(x, y).Occupant = occupant
}

func (d *Dungeon) AddItem(x, y int, item Item) {
	c := d.At(x, y)
	c.Items = append(c.Items, item)
}

func (d *Dungeon) HasAttribute(x, y int, name string) bool {
	return d.At(x, y).HasAttribute(name)
}

func (d *Dungeon) IsEmpty(x, y int) bool {
	return d.At(x, y).IsEmpty()
}

func (d *Dungeon) IsWalkable(x, y int) bool {
	return d.At(x, y).IsWalkable()
}

// Find returns the first cell in row-major order carrying tile
func (d *Dungeon) Find(tile Tile) (Point, bool) {
	for y := 0; y < d.height; y++ {
		for x := 0; x < d.width; x++ {
			if d.cells[x][y].Tile == tile {
				return Point{X: x, Y: y}, true
			}
		}
	}
	return Point{}, false
}

// Count returns the number of cells matching fn
func (d *Dungeon) Count(fn func(c *Cell) bool) int {
	n := 0
	d.Cells(func(c *Cell) {
		if fn(c) {
			n++
		}
	})
	return n
}

// Equal compares dimensions and every cell's contents
func (d *Dungeon) Equal(other *Dungeon) bool {
	if other == nil || d.width != other.width || d.height != other.height {
		return false
	}
	for x := range d.cells {
		for y := range d.cells[x] {
			if !d.cells[x][y].sameContents(&other.cells[x][y]) {
				return false
			}
		}
	}
	return true
}

// MustMatch panics when the grid does not have the expected dimensions
func (d *Dungeon) MustMatch(width, height int) {
	if d.width != width || d.height != height {
		panic(fmt.Sprintf("grid: expected %dx%d, generated %dx%d", width, height, d.width, d.height))
	}
}
