// Package view renders dungeons as text and browses run results in the terminal
package view

import (
	"maps"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dungeon-pcg/grid"
)

// Glyphs maps tile and occupant names to display runes
type Glyphs struct {
	runes map[string]rune
}

var defaultRunes = map[string]rune{
	string(grid.Floor):    '.',
	string(grid.Wall):     '#',
	string(grid.Door):     '+',
	string(grid.Entrance): '<',
	string(grid.Exit):     '>',
	"monster":             'M',
	"treasure":            '$',
	"trap":                '^',
	"teleporter":          'T',
	"gold":                '*',
}

// DefaultGlyphs returns the built-in table
func DefaultGlyphs() Glyphs {
	return Glyphs{runes: maps.Clone(defaultRunes)}
}

// With returns a copy of g with the given names remapped
func (g Glyphs) With(overrides map[string]rune) Glyphs {
	runes := maps.Clone(g.runes)
	if runes == nil {
		runes = make(map[string]rune, len(overrides))
	}
	maps.Copy(runes, overrides)
	return Glyphs{runes: runes}
}

// Lookup returns the rune for a tag name; unmapped names fall back to their first letter
func (g Glyphs) Lookup(name string) rune {
	if name == "" {
		return ' '
	}
	if r, ok := g.runes[name]; ok {
		return r
	}
	r, _ := utf8.DecodeRuneInString(name)
	return r
}

// Cell picks the rune shown for c: the occupant, then the topmost item, then the tile
func (g Glyphs) Cell(c *grid.Cell) rune {
	if c.Occupant != grid.NoOccupant {
		return g.marker(c.Occupant.Name())
	}
	if len(c.Items) > 0 {
		return g.marker(c.Items[len(c.Items)-1].Name())
	}
	return g.Lookup(c.Tile.Name())
}

// marker resolves an occupant or item; unmapped names are upper-cased to stand out from tiles
func (g Glyphs) marker(name string) rune {
	if r, ok := g.runes[name]; ok {
		return r
	}
	return unicode.ToUpper(g.Lookup(name))
}

// Style colours a cell by its most significant tag
func Style(c *grid.Cell) tcell.Style {
	st := tcell.StyleDefault
	if c.Occupant != grid.NoOccupant {
		return st.Foreground(tcell.ColorFuchsia).Bold(true)
	}
	if len(c.Items) > 0 {
		return st.Foreground(tcell.ColorGold)
	}
	switch c.Tile {
	case grid.Wall:
		return st.Foreground(tcell.ColorGray)
	case grid.Door:
		return st.Foreground(tcell.ColorYellow)
	case grid.Entrance:
		return st.Foreground(tcell.ColorGreen).Bold(true)
	case grid.Exit:
		return st.Foreground(tcell.ColorRed).Bold(true)
	case grid.Floor:
		return st.Foreground(tcell.ColorDarkGray)
	}
	return st
}
