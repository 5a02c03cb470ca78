package strategy

import (
	"fmt"
	"math/rand/v2"

	"github.com/lixenwraith/dungeon-pcg/genetic"
	"github.com/lixenwraith/dungeon-pcg/genetic/fitness"
	"github.com/lixenwraith/dungeon-pcg/grid"
)

// Kind selects a generation strategy
type Kind uint8

const (
	KindRandomSeed Kind = iota
	KindListOfWalls
	KindWallPatterns
	KindDesirableProperties
)

var kindNames = [...]string{
	KindRandomSeed:          "RandomSeed",
	KindListOfWalls:         "ListOfWalls",
	KindWallPatterns:        "WallPatterns",
	KindDesirableProperties: "DesirableProperties",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Kinds lists every strategy in declaration order
func Kinds() []Kind {
	return []Kind{KindRandomSeed, KindListOfWalls, KindWallPatterns, KindDesirableProperties}
}

// ParseKind maps a configured strategy name to its Kind
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown strategy %q", name)
}

// Params carries the per-strategy settings; only the selected strategy's block is read
type Params struct {
	Walls     WallParams
	Patterns  PatternParams
	Desirable DesirableParams
}

var _ genetic.Genotype[*Individual, *grid.Dungeon] = (*Individual)(nil)

// Individual is one genotype of any strategy
// Exactly one of the strategy fields is set, matching kind
type Individual struct {
	kind      Kind
	random    *RandomSeed
	walls     *ListOfWalls
	patterns  *WallPatterns
	desirable *DesirableProperties
}

// New builds the blank template individual for kind
func New(kind Kind, seed *Seed, params Params) (*Individual, error) {
	switch kind {
	case KindRandomSeed:
		return &Individual{kind: kind, random: NewRandomSeed(seed)}, nil

	case KindListOfWalls:
		if err := seed.RequireTiles(grid.Floor, grid.Wall, grid.Door, grid.Entrance, grid.Exit); err != nil {
			return nil, fmt.Errorf("%s: %w", kind, err)
		}
		if err := params.Walls.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", kind, err)
		}
		return &Individual{kind: kind, walls: NewListOfWalls(seed, params.Walls)}, nil

	case KindWallPatterns:
		wp, err := NewWallPatterns(seed, params.Patterns)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", kind, err)
		}
		return &Individual{kind: kind, patterns: wp}, nil

	case KindDesirableProperties:
		if err := seed.RequireTiles(grid.Floor, grid.Wall, grid.Door, grid.Entrance, grid.Exit); err != nil {
			return nil, fmt.Errorf("%s: %w", kind, err)
		}
		if err := params.Desirable.Validate(seed.Width, seed.Height); err != nil {
			return nil, fmt.Errorf("%s: %w", kind, err)
		}
		return &Individual{kind: kind, desirable: NewDesirableProperties(seed, params.Desirable)}, nil
	}
	return nil, fmt.Errorf("unknown strategy %v", kind)
}

func (ind *Individual) Kind() Kind {
	return ind.kind
}

func (ind *Individual) Initialize(rng *rand.Rand) *Individual {
	out := &Individual{kind: ind.kind}
	switch ind.kind {
	case KindRandomSeed:
		out.random = ind.random.Initialize(rng)
	case KindListOfWalls:
		out.walls = ind.walls.Initialize(rng)
	case KindWallPatterns:
		out.patterns = ind.patterns.Initialize(rng)
	case KindDesirableProperties:
		out.desirable = ind.desirable.Initialize(rng)
	}
	return out
}

func (ind *Individual) Mutate(rng *rand.Rand, rate float64) {
	switch ind.kind {
	case KindRandomSeed:
		ind.random.Mutate(rng, rate)
	case KindListOfWalls:
		ind.walls.Mutate(rng, rate)
	case KindWallPatterns:
		ind.patterns.Mutate(rng, rate)
	case KindDesirableProperties:
		ind.desirable.Mutate(rng, rate)
	}
}

func (ind *Individual) Generate() *grid.Dungeon {
	var d *grid.Dungeon
	var seed *Seed
	switch ind.kind {
	case KindRandomSeed:
		d, seed = ind.random.Generate(), ind.random.seed
	case KindListOfWalls:
		d, seed = ind.walls.Generate(), ind.walls.seed
	case KindWallPatterns:
		d, seed = ind.patterns.Generate(), ind.patterns.seed
	case KindDesirableProperties:
		d, seed = ind.desirable.Generate(), ind.desirable.seed
	default:
		panic(fmt.Sprintf("strategy: generate on %v", ind.kind))
	}
	d.MustMatch(seed.Width, seed.Height)
	return d
}

func (ind *Individual) Clone() *Individual {
	out := &Individual{kind: ind.kind}
	switch ind.kind {
	case KindRandomSeed:
		out.random = ind.random.Clone()
	case KindListOfWalls:
		out.walls = ind.walls.Clone()
	case KindWallPatterns:
		out.patterns = ind.patterns.Clone()
	case KindDesirableProperties:
		out.desirable = ind.desirable.Clone()
	}
	return out
}

// Evaluate scores a generated dungeon with the weighted evaluators
func (ind *Individual) Evaluate(d *grid.Dungeon, agg *fitness.Aggregator[*grid.Dungeon]) float64 {
	return agg.Calculate(d)
}

// Fitness generates and scores in one step
func (ind *Individual) Fitness(agg *fitness.Aggregator[*grid.Dungeon]) float64 {
	return ind.Evaluate(ind.Generate(), agg)
}
