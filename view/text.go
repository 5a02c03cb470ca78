package view

import (
	"strings"

	"github.com/lixenwraith/dungeon-pcg/grid"
)

// Text renders d one line per row, row 0 first
func Text(d *grid.Dungeon, glyphs Glyphs) string {
	var sb strings.Builder
	sb.Grow((d.Width() + 1) * d.Height())
	for y := 0; y < d.Height(); y++ {
		for x := 0; x < d.Width(); x++ {
			sb.WriteRune(glyphs.Cell(d.At(x, y)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
