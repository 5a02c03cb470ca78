// Package config loads the TOML run configuration and turns it into engine inputs
package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/dungeon-pcg/parameter"
)

// DefaultPath is read when no --config flag is given and the file exists
const DefaultPath = "dungeon.toml"

// Config mirrors the TOML sections one to one
type Config struct {
	Main      Main              `toml:"main"`
	Cells     Cells             `toml:"cells"`
	MuLambda  MuLambda          `toml:"mu-lambda"`
	Walls     ListOfWalls       `toml:"list-of-walls"`
	Patterns  WallPatterns      `toml:"wallpatterns"`
	Desirable Desirable         `toml:"desirable_patterns"`
	Glyphs    map[string]string `toml:"glyphs"`
}

// Main holds dungeon dimensions and run-wide settings
type Main struct {
	TilesWidth  int    `toml:"tiles_width"`
	TilesHeight int    `toml:"tiles_height"`
	Threads     int    `toml:"threads"` // 0 = 2 x NumCPU
	Seed        uint64 `toml:"seed"`    // 0 = entropy
}

// Cells lists the tag catalogs
type Cells struct {
	Tiles          []string `toml:"tiles"`
	Items          []string `toml:"items"`
	Occupants      []string `toml:"occupants"`
	OccupantChance float64  `toml:"occupant_chance"`
}

// MuLambda configures the engine and the fitness function
type MuLambda struct {
	Mu                int       `toml:"mu"`
	Lambda            int       `toml:"lambda"`
	Mutation          float64   `toml:"mutation"`
	Iterations        int       `toml:"iterations"`
	Parents           string    `toml:"parents"`
	Strategy          string    `toml:"strategy"`
	Evaluations       []string  `toml:"evaluations"`
	EvaluationWeights []float64 `toml:"evaluation_weights"`
}

type ListOfWalls struct {
	Coverage   float64 `toml:"coverage"`
	DoorChance float64 `toml:"door_chance"`
}

// WallPatterns holds the pattern size, tile symbols and the pattern library
// Tiles mixes the width/height integers with tile name -> symbol strings
type WallPatterns struct {
	Tiles map[string]any      `toml:"tiles"`
	Rooms map[string][]string `toml:"rooms"`
}

type Desirable struct {
	RoomNumber int     `toml:"room_number"`
	RoomSize   int     `toml:"room_size"`
	Doors      int     `toml:"doors"`
	Monsters   int     `toml:"monsters"`
	Branching  float64 `toml:"branching"`
}

// Default returns the built-in configuration; every call allocates fresh slices and maps
func Default() *Config {
	return &Config{
		Main: Main{
			TilesWidth:  parameter.DungeonWidth,
			TilesHeight: parameter.DungeonHeight,
		},
		Cells: Cells{
			Tiles:          slices.Clone(parameter.DefaultTiles),
			Items:          slices.Clone(parameter.DefaultItems),
			Occupants:      slices.Clone(parameter.DefaultOccupants),
			OccupantChance: parameter.OccupantChance,
		},
		MuLambda: MuLambda{
			Mu:                parameter.GAMu,
			Lambda:            parameter.GALambda,
			Mutation:          parameter.GAMutationRate,
			Iterations:        parameter.GAIterations,
			Parents:           parameter.GAParents,
			Strategy:          parameter.DefaultStrategy,
			Evaluations:       slices.Clone(parameter.GAEvaluations),
			EvaluationWeights: slices.Clone(parameter.GAEvaluationWeights),
		},
		Walls: ListOfWalls{
			Coverage:   parameter.WallCoverage,
			DoorChance: parameter.WallDoorChance,
		},
		Patterns: defaultPatterns(),
		Desirable: Desirable{
			RoomNumber: parameter.RoomNumber,
			RoomSize:   parameter.RoomSize,
			Doors:      parameter.RoomDoors,
			Monsters:   parameter.Monsters,
			Branching:  parameter.MazeBranching,
		},
	}
}

func defaultPatterns() WallPatterns {
	return WallPatterns{
		Tiles: map[string]any{
			"width":  int64(parameter.PatternWidth),
			"height": int64(parameter.PatternHeight),
			"floor":  ".",
			"wall":   "#",
			"door":   "+",
		},
		Rooms: map[string][]string{
			"open": {
				".....",
				".....",
				".....",
				".....",
				".....",
			},
			"pillar": {
				".....",
				".....",
				"..#..",
				".....",
				".....",
			},
			"corner": {
				"###..",
				"#....",
				"#....",
				".....",
				".....",
			},
			"gate": {
				"##+##",
				".....",
				".....",
				".....",
				".....",
			},
			"cell": {
				"#####",
				"#...#",
				"+...#",
				"#...#",
				"#####",
			},
		},
	}
}

// Load reads path over the defaults and validates the result
// Tables replace their defaults wholesale, except [glyphs] which only overrides
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML text over the defaults and validates the result
func Parse(text string) (*Config, error) {
	cfg := Default()
	defaults := cfg.Patterns
	cfg.Patterns = WallPatterns{}

	md, err := toml.Decode(text, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key", undecoded[0])
	}

	if cfg.Patterns.Tiles == nil {
		cfg.Patterns.Tiles = defaults.Tiles
	}
	if cfg.Patterns.Rooms == nil {
		cfg.Patterns.Rooms = defaults.Rooms
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Encode writes cfg as TOML, used to print the effective configuration
func (c *Config) Encode() (string, error) {
	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(c); err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}
	return sb.String(), nil
}
