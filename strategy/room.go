package strategy

import (
	"math/rand/v2"

	"github.com/lixenwraith/dungeon-pcg/grid"
	"github.com/lixenwraith/dungeon-pcg/maze"
	"github.com/lixenwraith/dungeon-pcg/parameter"
)

// Room is an axis-aligned rectangle with odd position and size
// Its outer ring is wall, the inside floor
type Room struct {
	X, Y, W, H int
	Region     int
}

// randomRoom draws a room of side [3, maxSize) positioned inside a width x height grid
func randomRoom(rng *rand.Rand, width, height, maxSize, region int) Room {
	w := parameter.RoomMinSize + rng.IntN(maxSize-parameter.RoomMinSize)
	h := parameter.RoomMinSize + rng.IntN(maxSize-parameter.RoomMinSize)
	x := 1 + rng.IntN(width-w-1)
	y := 1 + rng.IntN(height-h-1)
	return Room{
		X:      maze.MakeOdd(x),
		Y:      maze.MakeOdd(y),
		W:      maze.MakeOdd(w),
		H:      maze.MakeOdd(h),
		Region: region,
	}
}

// Intersects reports bounding-box overlap with any of rooms
func (r Room) Intersects(rooms []Room) bool {
	for _, o := range rooms {
		if r.X+r.W > o.X && r.Y+r.H > o.Y && r.X < o.X+o.W && r.Y < o.Y+o.H {
			return true
		}
	}
	return false
}

// Contains reports whether p lies in the room, walls included
func (r Room) Contains(p grid.Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Border returns the wall ring, each cell once
func (r Room) Border() []grid.Point {
	out := make([]grid.Point, 0, 2*(r.W+r.H))
	for x := r.X; x < r.X+r.W; x++ {
		out = append(out, grid.Point{X: x, Y: r.Y}, grid.Point{X: x, Y: r.Y + r.H - 1})
	}
	for y := r.Y + 1; y < r.Y+r.H-1; y++ {
		out = append(out, grid.Point{X: r.X, Y: y}, grid.Point{X: r.X + r.W - 1, Y: y})
	}
	return out
}

// randomInterior picks a point strictly inside the walls
func (r Room) randomInterior(rng *rand.Rand) grid.Point {
	return grid.Point{
		X: r.X + 1 + rng.IntN(r.W-2),
		Y: r.Y + 1 + rng.IntN(r.H-2),
	}
}

type rooms []Room

// contains reports whether any room covers p
func (rs rooms) contains(p grid.Point) bool {
	for _, r := range rs {
		if r.Contains(p) {
			return true
		}
	}
	return false
}
