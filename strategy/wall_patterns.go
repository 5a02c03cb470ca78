package strategy

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"unicode/utf8"

	"github.com/lixenwraith/dungeon-pcg/grid"
	"github.com/lixenwraith/dungeon-pcg/parameter"
)

// PatternParams configures WallPatterns
type PatternParams struct {
	Width, Height int
	// Symbols maps tile names to the single character used in pattern rows
	Symbols map[string]string
	// Rooms maps pattern names to their rows, top row first
	Rooms map[string][]string
}

// Pattern is a Width x Height stamp; Tiles is row-major, NoTile where the symbol is unmapped
type Pattern struct {
	Name  string
	Tiles []grid.Tile
}

// ParsePatterns builds the pattern library ordered by pattern name
// Errors name the offending wallpatterns key
func ParsePatterns(seed *Seed, params PatternParams) ([]Pattern, error) {
	if params.Width < 1 || params.Height < 1 {
		return nil, fmt.Errorf("wallpatterns.tiles: pattern size must be positive, got %dx%d", params.Width, params.Height)
	}
	if len(params.Rooms) == 0 {
		return nil, fmt.Errorf("wallpatterns.rooms: no patterns defined")
	}

	mapping := make(map[rune]grid.Tile, len(params.Symbols))
	for _, name := range sortedKeys(params.Symbols) {
		symbol := params.Symbols[name]
		key := "wallpatterns.tiles." + name
		if utf8.RuneCountInString(symbol) != 1 {
			return nil, fmt.Errorf("%s: symbol %q must be a single character", key, symbol)
		}
		tile, ok := seed.Tiles.Get(name)
		if !ok {
			return nil, fmt.Errorf("%s: unknown tile name %q", key, name)
		}
		r, _ := utf8.DecodeRuneInString(symbol)
		if other, dup := mapping[r]; dup {
			return nil, fmt.Errorf("%s: symbol %q already used by %q", key, symbol, other)
		}
		mapping[r] = tile
	}

	patterns := make([]Pattern, 0, len(params.Rooms))
	for _, name := range sortedKeys(params.Rooms) {
		rows := params.Rooms[name]
		key := "wallpatterns.rooms." + name
		if len(rows) != params.Height {
			return nil, fmt.Errorf("%s: expected %d rows, got %d", key, params.Height, len(rows))
		}
		tiles := make([]grid.Tile, 0, params.Width*params.Height)
		for i, row := range rows {
			if n := utf8.RuneCountInString(row); n != params.Width {
				return nil, fmt.Errorf("%s: row %d has width %d, expected %d", key, i, n, params.Width)
			}
			for _, r := range row {
				tiles = append(tiles, mapping[r])
			}
		}
		patterns = append(patterns, Pattern{Name: name, Tiles: tiles})
	}
	return patterns, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// WallPatterns tiles the dungeon with stamps chosen from a fixed library
// One pattern index per pattern-sized region, plus a pre-rolled occupant layer
type WallPatterns struct {
	seed      *Seed
	patterns  []Pattern
	width     int
	height    int
	indices   []int
	occupants []grid.Occupant
}

// NewWallPatterns returns a blank template stamping the first pattern everywhere
func NewWallPatterns(seed *Seed, params PatternParams) (*WallPatterns, error) {
	patterns, err := ParsePatterns(seed, params)
	if err != nil {
		return nil, err
	}
	wp := &WallPatterns{
		seed:     seed,
		patterns: patterns,
		width:    params.Width,
		height:   params.Height,
	}
	wp.indices = make([]int, wp.regions())
	return wp, nil
}

// regions is the number of pattern slots: ceil(w/pw) x ceil(h/ph)
func (wp *WallPatterns) regions() int {
	return wp.columns() * ceilDiv(wp.seed.Height, wp.height)
}

func (wp *WallPatterns) columns() int {
	return ceilDiv(wp.seed.Width, wp.width)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func (wp *WallPatterns) Initialize(rng *rand.Rand) *WallPatterns {
	out := &WallPatterns{
		seed:      wp.seed,
		patterns:  wp.patterns,
		width:     wp.width,
		height:    wp.height,
		indices:   make([]int, wp.regions()),
		occupants: make([]grid.Occupant, wp.seed.Width*wp.seed.Height),
	}
	for i := range out.indices {
		out.indices[i] = rng.IntN(len(out.patterns))
	}
	if wp.seed.Occupants.Len() > 0 {
		for i := range out.occupants {
			if rng.Float64() < parameter.PatternOccupantChance {
				out.occupants[i] = wp.seed.Occupants.Choose(rng)
			}
		}
	}
	return out
}

// Mutate reassigns int(n x rate) random indices
func (wp *WallPatterns) Mutate(rng *rand.Rand, rate float64) {
	n := int(float64(len(wp.indices)) * rate)
	for i := 0; i < n; i++ {
		wp.indices[rng.IntN(len(wp.indices))] = rng.IntN(len(wp.patterns))
	}
}

func (wp *WallPatterns) Generate() *grid.Dungeon {
	d := grid.New(wp.seed.Width, wp.seed.Height, grid.NoTile)
	cols := wp.columns()
	n := len(wp.indices)
	for x := 0; x < wp.seed.Width; x++ {
		col, innerX := x/wp.width, x%wp.width
		for y := 0; y < wp.seed.Height; y++ {
			row := y / wp.height
			pattern := wp.patterns[wp.indices[(row*cols+col)%n]]
			tile := pattern.Tiles[(y%wp.height)*wp.width+innerX]
			d.SetTile(x, y, tile)

			if tile == grid.Floor && len(wp.occupants) > 0 {
				if o := wp.occupants[x*wp.seed.Height+y]; o != grid.NoOccupant {
					d.SetOccupant(x, y, o)
				}
			}
		}
	}
	return d
}

func (wp *WallPatterns) Clone() *WallPatterns {
	return &WallPatterns{
		seed:      wp.seed,
		patterns:  wp.patterns,
		width:     wp.width,
		height:    wp.height,
		indices:   slices.Clone(wp.indices),
		occupants: slices.Clone(wp.occupants),
	}
}

// Patterns returns the library names in index order
func (wp *WallPatterns) Patterns() []string {
	names := make([]string, len(wp.patterns))
	for i, p := range wp.patterns {
		names[i] = p.Name
	}
	return names
}
