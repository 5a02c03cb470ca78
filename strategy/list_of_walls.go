package strategy

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/lixenwraith/dungeon-pcg/grid"
)

// WallParams configures ListOfWalls
type WallParams struct {
	// Coverage drives the wall count: width*height / (100 - coverage*100)
	Coverage float64
	// DoorChance is the probability that a wall carries one door
	DoorChance float64
}

// Validate reports out-of-range parameters
func (p WallParams) Validate() error {
	if p.Coverage < 0 || p.Coverage > 1 {
		return fmt.Errorf("coverage must be within [0,1], got %v", p.Coverage)
	}
	if p.DoorChance < 0 || p.DoorChance > 1 {
		return fmt.Errorf("door_chance must be within [0,1], got %v", p.DoorChance)
	}
	return nil
}

// Wall is a straight run of wall tiles
type Wall struct {
	Start  grid.Point
	Length int
	Step   grid.Point
	// Door is the optional door position along the run; it may lie outside the grid
	Door *grid.Point
}

// ListOfWalls draws random line-segment walls over an open floor
type ListOfWalls struct {
	seed      *Seed
	params    WallParams
	walls     []Wall
	entrance  *grid.Point
	exit      *grid.Point
	occupants []Placement
}

// NewListOfWalls returns a blank template: no walls, no entrance or exit
func NewListOfWalls(seed *Seed, params WallParams) *ListOfWalls {
	return &ListOfWalls{seed: seed, params: params}
}

// wallCount follows the coverage formula, guarding against division by zero at full coverage
func (l *ListOfWalls) wallCount() int {
	percentage := max(1, int(100-l.params.Coverage*100))
	return l.seed.Width * l.seed.Height / percentage
}

func (l *ListOfWalls) randomWall(rng *rand.Rand) Wall {
	w, h := l.seed.Width, l.seed.Height
	start := l.seed.interiorPoint(rng)
	diagonal := int(math.Sqrt(float64(w*w + h*h)))
	length := 2
	if diagonal > 2 {
		length = 2 + rng.IntN(diagonal-2)
	}
	step := grid.Point{X: rng.IntN(3) - 1, Y: rng.IntN(3) - 1}

	wall := Wall{Start: start, Length: length, Step: step}
	if rng.Float64() < l.params.DoorChance {
		door := start.Step(step, 1+rng.IntN(length-1))
		wall.Door = &door
	}
	return wall
}

func (l *ListOfWalls) Initialize(rng *rand.Rand) *ListOfWalls {
	n := l.wallCount()
	walls := make([]Wall, n)
	for i := range walls {
		walls[i] = l.randomWall(rng)
	}
	occupants := l.seed.RandomOccupants(rng)
	entrance := l.seed.interiorPoint(rng)
	exit := l.seed.interiorPoint(rng)
	return &ListOfWalls{
		seed:      l.seed,
		params:    l.params,
		walls:     walls,
		entrance:  &entrance,
		exit:      &exit,
		occupants: occupants,
	}
}

// Mutate replaces int(len x rate) random walls and re-rolls the occupants
func (l *ListOfWalls) Mutate(rng *rand.Rand, rate float64) {
	if len(l.walls) > 0 {
		n := int(float64(len(l.walls)) * rate)
		for i := 0; i < n; i++ {
			l.walls[rng.IntN(len(l.walls))] = l.randomWall(rng)
		}
	}
	l.occupants = l.seed.RandomOccupants(rng)
}

func (l *ListOfWalls) Generate() *grid.Dungeon {
	d := grid.New(l.seed.Width, l.seed.Height, grid.Floor)
	for _, wall := range l.walls {
		p := wall.Start
		for i := 0; i < wall.Length; i++ {
			p = p.Add(wall.Step)
			if !d.Contains(p) {
				continue
			}
			if wall.Door != nil && *wall.Door == p {
				d.SetTile(p.X, p.Y, grid.Door)
			} else {
				d.SetTile(p.X, p.Y, grid.Wall)
			}
		}
	}

	// No collision avoidance: entrance and exit overwrite whatever is there
	if l.entrance != nil {
		d.SetTile(l.entrance.X, l.entrance.Y, grid.Entrance)
	}
	if l.exit != nil {
		d.SetTile(l.exit.X, l.exit.Y, grid.Exit)
	}
	placeOccupants(d, l.occupants)
	return d
}

func (l *ListOfWalls) Clone() *ListOfWalls {
	walls := make([]Wall, len(l.walls))
	for i, w := range l.walls {
		walls[i] = w
		if w.Door != nil {
			door := *w.Door
			walls[i].Door = &door
		}
	}
	return &ListOfWalls{
		seed:      l.seed,
		params:    l.params,
		walls:     walls,
		entrance:  clonePoint(l.entrance),
		exit:      clonePoint(l.exit),
		occupants: slices.Clone(l.occupants),
	}
}

// Walls returns a copy of the wall descriptors
func (l *ListOfWalls) Walls() []Wall {
	return l.Clone().walls
}

func clonePoint(p *grid.Point) *grid.Point {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
