package grid

// Point is a grid coordinate
type Point struct {
	X, Y int
}

// Pt is a convenience constructor for Point
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns the component-wise sum
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Scale returns the point n steps along p treated as a direction
func (p Point) Scale(n int) Point {
	return Point{X: p.X * n, Y: p.Y * n}
}

// Step returns the coordinate n cells away from p in direction dir
func (p Point) Step(dir Point, n int) Point {
	return p.Add(dir.Scale(n))
}

// Less orders points row-major (Y first, then X)
func (p Point) Less(other Point) bool {
	if p.Y != other.Y {
		return p.Y < other.Y
	}
	return p.X < other.X
}

// ComparePoints is a row-major comparison for slices.SortFunc
func ComparePoints(a, b Point) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}

// Cardinal directions, clockwise from north. North is -Y so that row 0 is the top of the grid.
var (
	North = Point{0, -1}
	East  = Point{1, 0}
	South = Point{0, 1}
	West  = Point{-1, 0}
)

// Cardinals lists the four directions clockwise from north
var Cardinals = [4]Point{North, East, South, West}

// Compass lists all eight directions clockwise from north
var Compass = [8]Point{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}
