package parameter

// ListOfWalls defaults
const (
	// WallCoverage drives the wall count: w*h / (100 - coverage*100)
	WallCoverage = 0.33

	// WallDoorChance is the probability a wall carries a door
	WallDoorChance = 0.1
)

// WallPatterns defaults
const (
	PatternWidth  = 5
	PatternHeight = 5

	// PatternOccupantChance is the fixed per-cell occupant roll for stamped patterns
	PatternOccupantChance = 0.05
)

// DesirableProperties defaults
const (
	RoomNumber = 6
	RoomSize   = 9
	RoomDoors  = 10
	Monsters   = 8

	// MazeBranching is the probability of continuing straight while carving
	MazeBranching = 0.75

	// RoomPlacementAttempts bounds retries per room before giving up
	RoomPlacementAttempts = 10

	// RoomMinSize is the smallest room side
	RoomMinSize = 3
)
