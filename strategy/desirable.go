package strategy

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/dungeon-pcg/grid"
	"github.com/lixenwraith/dungeon-pcg/maze"
	"github.com/lixenwraith/dungeon-pcg/parameter"
)

// DesirableParams configures DesirableProperties
type DesirableParams struct {
	RoomNumber int
	RoomSize   int
	Doors      int
	Monsters   int
	Branching  float64
}

// Validate reports parameters the room placement cannot satisfy on a width x height grid
func (p DesirableParams) Validate(width, height int) error {
	switch {
	case p.RoomNumber < 1:
		return fmt.Errorf("room_number must be at least 1, got %d", p.RoomNumber)
	case p.RoomSize <= parameter.RoomMinSize:
		return fmt.Errorf("room_size must be greater than %d, got %d", parameter.RoomMinSize, p.RoomSize)
	case p.RoomSize >= min(width, height):
		return fmt.Errorf("room_size %d does not fit a %dx%d dungeon", p.RoomSize, width, height)
	case p.Doors < 0:
		return fmt.Errorf("doors must not be negative, got %d", p.Doors)
	case p.Monsters < 0:
		return fmt.Errorf("monsters must not be negative, got %d", p.Monsters)
	case p.Branching < 0 || p.Branching > 1:
		return fmt.Errorf("branching must be within [0,1], got %v", p.Branching)
	}
	return nil
}

// DesirableProperties builds rooms joined by pruned maze corridors
// All randomness is spent in Initialize; Generate only draws the recorded layout
type DesirableProperties struct {
	seed       *Seed
	params     DesirableParams
	occupants  []Placement
	rooms      rooms
	mazes      []Region
	connectors []Connector
	entrance   *grid.Point
	exit       *grid.Point
}

// NewDesirableProperties returns a blank template
func NewDesirableProperties(seed *Seed, params DesirableParams) *DesirableProperties {
	return &DesirableProperties{seed: seed, params: params}
}

func (dp *DesirableProperties) Initialize(rng *rand.Rand) *DesirableProperties {
	w, h := dp.seed.Width, dp.seed.Height
	out := &DesirableProperties{seed: dp.seed, params: dp.params}

	occupants := dp.seed.RandomOccupants(rng)
	out.occupants = occupants[:min(dp.params.Monsters, len(occupants))]

	// Rooms: bounded retries per room, every accepted room is its own region
	region := 0
	for i := 0; i < dp.params.RoomNumber; i++ {
		for attempt := 0; attempt < parameter.RoomPlacementAttempts; attempt++ {
			room := randomRoom(rng, w, h, dp.params.RoomSize, region)
			if !room.Intersects(out.rooms) {
				out.rooms = append(out.rooms, room)
				region++
				break
			}
		}
	}

	// Corridors: grow a maze from every free odd coordinate
	carved := mapset.New[grid.Point]()
	collides := func(p grid.Point) bool {
		return p.X < 0 || p.Y < 0 || p.X >= w || p.Y >= h || out.rooms.contains(p)
	}
	for x := 1; x < w; x += 2 {
		for y := 1; y < h; y += 2 {
			start := grid.Point{X: x, Y: y}
			if out.rooms.contains(start) || carved.Has(start) {
				continue
			}
			path := maze.Grow(rng, carved, collides, dp.params.Branching, start)
			path.Each(carved.Put)
			out.mazes = append(out.mazes, Region{Path: path, ID: region})
			region++
		}
	}

	// Join all regions, then drop dead ends that lead nowhere
	connectors := mergeRegions(rng, findConnectors(w, h, out.mazes, out.rooms))
	openings := mapset.New[grid.Point]()
	for _, c := range connectors {
		openings.Put(c.At)
	}
	carved = mapset.New[grid.Point]()
	for i := range out.mazes {
		out.mazes[i].Path = maze.Prune(out.mazes[i].Path, openings)
		out.mazes[i].Path.Each(carved.Put)
	}

	// A connector needs something on at least two sides to still be a passage
	for _, c := range connectors {
		occupied := 0
		for _, dir := range grid.Cardinals {
			n := c.At.Add(dir)
			if carved.Has(n) || out.rooms.contains(n) {
				occupied++
			}
		}
		if occupied > 1 {
			out.connectors = append(out.connectors, c)
		}
	}

	if len(out.rooms) > 0 {
		entrance := out.rooms[rng.IntN(len(out.rooms))].randomInterior(rng)
		exit := out.rooms[rng.IntN(len(out.rooms))].randomInterior(rng)
		out.entrance, out.exit = &entrance, &exit
	}
	return out
}

// Mutate has no incremental form: with probability rate the layout is rebuilt from scratch
func (dp *DesirableProperties) Mutate(rng *rand.Rand, rate float64) {
	if rng.Float64() < rate {
		*dp = *dp.Initialize(rng)
	}
}

func (dp *DesirableProperties) Generate() *grid.Dungeon {
	d := grid.New(dp.seed.Width, dp.seed.Height, grid.NoTile)

	for _, room := range dp.rooms {
		for x := room.X; x < room.X+room.W; x++ {
			for y := room.Y; y < room.Y+room.H; y++ {
				d.SetTile(x, y, grid.Floor)
			}
		}
		for _, p := range room.Border() {
			d.SetTile(p.X, p.Y, grid.Wall)
		}
	}

	for _, m := range dp.mazes {
		m.Path.Each(func(p grid.Point) {
			d.SetTile(p.X, p.Y, grid.Floor)
		})
	}

	for i, c := range dp.connectors {
		if i < dp.params.Doors {
			d.SetTile(c.At.X, c.At.Y, grid.Door)
		} else {
			d.SetTile(c.At.X, c.At.Y, grid.Floor)
		}
		// Never seal a passage behind a wall
		d.Surrounding(c.At.X, c.At.Y, grid.AllDirections, func(n *grid.Cell) {
			if n.Tile == grid.Wall {
				n.Tile = grid.Floor
			}
		})
	}

	if dp.entrance != nil {
		d.SetTile(dp.entrance.X, dp.entrance.Y, grid.Entrance)
	}
	if dp.exit != nil {
		d.SetTile(dp.exit.X, dp.exit.Y, grid.Exit)
	}
	placeOccupants(d, dp.occupants)
	return d
}

func (dp *DesirableProperties) Clone() *DesirableProperties {
	mazes := make([]Region, len(dp.mazes))
	for i, m := range dp.mazes {
		path := mapset.New[grid.Point]()
		m.Path.Each(path.Put)
		mazes[i] = Region{Path: path, ID: m.ID}
	}
	connectors := make([]Connector, len(dp.connectors))
	for i, c := range dp.connectors {
		connectors[i] = Connector{At: c.At, Regions: slices.Clone(c.Regions)}
	}
	return &DesirableProperties{
		seed:       dp.seed,
		params:     dp.params,
		occupants:  slices.Clone(dp.occupants),
		rooms:      slices.Clone(dp.rooms),
		mazes:      mazes,
		connectors: connectors,
		entrance:   clonePoint(dp.entrance),
		exit:       clonePoint(dp.exit),
	}
}

// Rooms returns a copy of the placed rooms
func (dp *DesirableProperties) Rooms() []Room {
	return slices.Clone(dp.rooms)
}
