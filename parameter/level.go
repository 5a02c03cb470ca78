package parameter

// Dungeon dimensions and population content
const (
	DungeonWidth  = 50
	DungeonHeight = 50

	// OccupantChance is the per-cell probability of spawning an occupant
	OccupantChance = 0.05

	// DefaultStrategy names the generation strategy used when none is configured
	DefaultStrategy = "DesirableProperties"
)

// Default catalogs
var (
	DefaultTiles     = []string{"floor", "wall", "door", "entrance", "exit"}
	DefaultItems     = []string{"gold"}
	DefaultOccupants = []string{"monster", "treasure", "trap", "teleporter"}
)
