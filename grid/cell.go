package grid

import "slices"

// Cell is one grid location with its layered contents.
// Identity is the position; Same ignores contents.
type Cell struct {
	X, Y     int
	Tile     Tile
	Occupant Occupant
	Items    []Item
}

// Pos returns the cell coordinate
func (c *Cell) Pos() Point {
	return Point{X: c.X, Y: c.Y}
}

// Same reports whether both cells sit at the same coordinate
func (c *Cell) Same(other *Cell) bool {
	return c.X == other.X && c.Y == other.Y
}

// HasAttribute reports whether the tile is the named one
func (c *Cell) HasAttribute(name string) bool {
	return c.Tile != NoTile && string(c.Tile) == name
}

// IsEmpty reports floor or no tile at all
func (c *Cell) IsEmpty() bool {
	return c.Tile == NoTile || c.Tile == Floor
}

// IsWalkable reports tiles an explorer can stand on
func (c *Cell) IsWalkable() bool {
	switch c.Tile {
	case Floor, Door, Entrance, Exit:
		return true
	}
	return false
}

// sameContents compares everything but position
func (c *Cell) sameContents(other *Cell) bool {
	return c.Tile == other.Tile && c.Occupant == other.Occupant && slices.Equal(c.Items, other.Items)
}
