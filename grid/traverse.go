package grid

// Surrounding selects the neighbourhood visited by Surrounding
type Surrounding uint8

const (
	Cardinal Surrounding = iota
	AllDirections
)

// Cells visits every cell in row-major order (top row first, left to right)
func (d *Dungeon) Cells(fn func(c *Cell)) {
	for y := 0; y < d.height; y++ {
		for x := 0; x < d.width; x++ {
			fn(&d.cells[x][y])
		}
	}
}

// Surrounding visits the in-bounds neighbours of (x, y) clockwise from north
func (d *Dungeon) Surrounding(x, y int, around Surrounding, fn func(c *Cell)) {
	d.mustContain(x, y)
	origin := Point{X: x, Y: y}
	if around == Cardinal {
		for _, dir := range Cardinals {
			if p := origin.Add(dir); d.Contains(p) {
				fn(&d.cells[p.X][p.Y])
			}
		}
		return
	}
	for _, dir := range Compass {
		if p := origin.Add(dir); d.Contains(p) {
			fn(&d.cells[p.X][p.Y])
		}
	}
}
