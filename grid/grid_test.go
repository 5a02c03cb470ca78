package grid

import (
	"testing"
)

func TestNew_CoordinateInvariant(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {3, 7}, {10, 10}, {17, 4}} {
		d := New(dims[0], dims[1], Floor)
		for x := 0; x < d.Width(); x++ {
			for y := 0; y < d.Height(); y++ {
				c := d.At(x, y)
				if c.X != x || c.Y != y {
					t.Fatalf("%dx%d: cell at (%d,%d) reports (%d,%d)", dims[0], dims[1], x, y, c.X, c.Y)
				}
				if c.Tile != Floor {
					t.Errorf("expected default tile floor at (%d,%d), got %q", x, y, c.Tile)
				}
			}
		}
	}
}

func TestAt_OutOfBoundsPanics(t *testing.T) {
	d := New(4, 4, NoTile)
	cases := []Point{{-1, 0}, {0, -1}, {4, 0}, {0, 4}}
	for _, p := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic for (%d,%d)", p.X, p.Y)
				}
			}()
			d.SetTile(p.X, p.Y, Wall)
		}()
	}
}

func TestCell_SameIgnoresContents(t *testing.T) {
	a := &Cell{X: 2, Y: 3, Tile: Floor}
	b := &Cell{X: 2, Y: 3, Tile: Wall, Occupant: "monster"}
	c := &Cell{X: 3, Y: 2, Tile: Floor}

	if !a.Same(b) {
		t.Error("cells at the same position should be the same cell")
	}
	if a.Same(c) {
		t.Error("cells at different positions should differ")
	}
}

func TestCell_Attributes(t *testing.T) {
	tests := []struct {
		tile     Tile
		empty    bool
		walkable bool
	}{
		{NoTile, true, false},
		{Floor, true, true},
		{Wall, false, false},
		{Door, false, true},
		{Entrance, false, true},
		{Exit, false, true},
	}
	for _, tt := range tests {
		c := &Cell{Tile: tt.tile}
		if c.IsEmpty() != tt.empty {
			t.Errorf("%q: expected IsEmpty=%v", tt.tile, tt.empty)
		}
		if c.IsWalkable() != tt.walkable {
			t.Errorf("%q: expected IsWalkable=%v", tt.tile, tt.walkable)
		}
	}
	if (&Cell{}).HasAttribute("") {
		t.Error("absent tile must not match the empty name")
	}
}

func TestCells_RowMajorOrder(t *testing.T) {
	d := New(3, 2, Floor)
	var got []Point
	d.Cells(func(c *Cell) {
		got = append(got, c.Pos())
	})
	want := []Point{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}
	if len(got) != len(want) {
		t.Fatalf("expected %d cells, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestSurrounding_ClockwiseAndFiltered(t *testing.T) {
	d := New(3, 3, Floor)

	var cardinal []Point
	d.Surrounding(1, 1, Cardinal, func(c *Cell) { cardinal = append(cardinal, c.Pos()) })
	want := []Point{{1, 0}, {2, 1}, {1, 2}, {0, 1}}
	for i := range want {
		if cardinal[i] != want[i] {
			t.Errorf("cardinal %d: expected %v, got %v", i, want[i], cardinal[i])
		}
	}

	count := func(x, y int, around Surrounding) int {
		n := 0
		d.Surrounding(x, y, around, func(*Cell) { n++ })
		return n
	}
	if n := count(1, 1, AllDirections); n != 8 {
		t.Errorf("expected 8 neighbours at centre, got %d", n)
	}
	if n := count(0, 0, AllDirections); n != 3 {
		t.Errorf("expected 3 neighbours at corner, got %d", n)
	}
	if n := count(0, 0, Cardinal); n != 2 {
		t.Errorf("expected 2 cardinal neighbours at corner, got %d", n)
	}
}

func TestDungeon_EqualAndFind(t *testing.T) {
	a := New(5, 5, Floor)
	b := New(5, 5, Floor)
	if !a.Equal(b) {
		t.Fatal("fresh grids should be equal")
	}

	a.SetTile(2, 3, Exit)
	if a.Equal(b) {
		t.Error("grids with different tiles should differ")
	}
	b.SetTile(2, 3, Exit)
	a.SetOccupant(0, 0, "monster")
	if a.Equal(b) {
		t.Error("grids with different occupants should differ")
	}
	b.SetOccupant(0, 0, "monster")
	a.AddItem(1, 1, "gold")
	a.AddItem(1, 1, "key")
	b.AddItem(1, 1, "gold")
	if a.Equal(b) {
		t.Error("grids with different items should differ")
	}
	if items := a.At(1, 1).Items; len(items) != 2 || items[1] != "key" {
		t.Errorf("expected items stacked in drop order, got %v", items)
	}

	p, ok := a.Find(Exit)
	if !ok || p != Pt(2, 3) {
		t.Errorf("expected exit at (2,3), got %v (found=%v)", p, ok)
	}
	if _, ok := a.Find(Entrance); ok {
		t.Error("did not expect an entrance")
	}
	if n := a.Count(func(c *Cell) bool { return c.Tile == Floor }); n != 24 {
		t.Errorf("expected 24 floor cells, got %d", n)
	}
}

func TestPoint_Helpers(t *testing.T) {
	p := Pt(3, 5)
	if got := p.Step(East, 2); got != Pt(5, 5) {
		t.Errorf("expected (5,5), got %v", got)
	}
	if got := p.Step(North, 3); got != Pt(3, 2) {
		t.Errorf("expected (3,2), got %v", got)
	}
	if ComparePoints(Pt(9, 0), Pt(0, 1)) >= 0 {
		t.Error("row-major order should put (9,0) before (0,1)")
	}
}
