package grid

// Tile is the ground layer of a cell ("floor", "wall", ...)
type Tile string

// Item is an object lying on a cell
type Item string

// Occupant is a creature or feature standing on a cell
type Occupant string

// Semantic tile names the generators and evaluators rely on
const (
	Floor    Tile = "floor"
	Wall     Tile = "wall"
	Door     Tile = "door"
	Entrance Tile = "entrance"
	Exit     Tile = "exit"
)

// NoTile, NoItem and NoOccupant mark an absent tag
const (
	NoTile     Tile     = ""
	NoItem     Item     = ""
	NoOccupant Occupant = ""
)

func (t Tile) Name() string     { return string(t) }
func (i Item) Name() string     { return string(i) }
func (o Occupant) Name() string { return string(o) }
