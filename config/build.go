package config

import (
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/lixenwraith/dungeon-pcg/catalog"
	"github.com/lixenwraith/dungeon-pcg/evaluate"
	"github.com/lixenwraith/dungeon-pcg/genetic"
	"github.com/lixenwraith/dungeon-pcg/genetic/fitness"
	"github.com/lixenwraith/dungeon-pcg/grid"
	"github.com/lixenwraith/dungeon-pcg/strategy"
)

// Setup is everything a run needs, resolved from a Config
type Setup struct {
	Kind       strategy.Kind
	Seed       *strategy.Seed
	Template   *strategy.Individual
	Aggregator *fitness.Aggregator[*grid.Dungeon]
	Engine     genetic.EngineConfig
	// Glyphs overrides the view's rune per tag name
	Glyphs map[string]rune
}

// Validate reports the first configuration error, naming the offending key
func (c *Config) Validate() error {
	_, err := c.Build()
	return err
}

// Build resolves the configuration into engine inputs
// Only the selected strategy's section is interpreted
func (c *Config) Build() (*Setup, error) {
	seed, err := c.seed()
	if err != nil {
		return nil, err
	}
	engine, err := c.engine()
	if err != nil {
		return nil, err
	}
	kind, err := strategy.ParseKind(c.MuLambda.Strategy)
	if err != nil {
		return nil, fmt.Errorf("mu-lambda.strategy: %w", err)
	}
	template, err := c.template(kind, seed)
	if err != nil {
		return nil, err
	}
	agg, err := c.aggregator()
	if err != nil {
		return nil, err
	}
	glyphs, err := c.glyphs()
	if err != nil {
		return nil, err
	}
	return &Setup{
		Kind:       kind,
		Seed:       seed,
		Template:   template,
		Aggregator: agg,
		Engine:     engine,
		Glyphs:     glyphs,
	}, nil
}

func (c *Config) seed() (*strategy.Seed, error) {
	if c.Main.TilesWidth < 1 {
		return nil, fmt.Errorf("main.tiles_width: must be positive, got %d", c.Main.TilesWidth)
	}
	if c.Main.TilesHeight < 1 {
		return nil, fmt.Errorf("main.tiles_height: must be positive, got %d", c.Main.TilesHeight)
	}
	if c.Cells.OccupantChance < 0 || c.Cells.OccupantChance > 1 {
		return nil, fmt.Errorf("cells.occupant_chance: must be within [0,1], got %v", c.Cells.OccupantChance)
	}

	tiles, err := catalog.New(tags[grid.Tile](c.Cells.Tiles)...)
	if err != nil {
		return nil, fmt.Errorf("cells.tiles: %w", err)
	}
	if tiles.Len() == 0 {
		return nil, fmt.Errorf("cells.tiles: at least one tile is required")
	}
	items, err := catalog.New(tags[grid.Item](c.Cells.Items)...)
	if err != nil {
		return nil, fmt.Errorf("cells.items: %w", err)
	}
	occupants, err := catalog.New(tags[grid.Occupant](c.Cells.Occupants)...)
	if err != nil {
		return nil, fmt.Errorf("cells.occupants: %w", err)
	}

	seed, err := strategy.NewSeed(c.Main.TilesWidth, c.Main.TilesHeight, tiles, items, occupants, c.Cells.OccupantChance)
	if err != nil {
		return nil, fmt.Errorf("main: %w", err)
	}
	return seed, nil
}

func tags[T ~string](names []string) []T {
	out := make([]T, len(names))
	for i, n := range names {
		out[i] = T(n)
	}
	return out
}

func (c *Config) engine() (genetic.EngineConfig, error) {
	m := c.MuLambda
	cfg := genetic.EngineConfig{
		Mu:           m.Mu,
		Lambda:       m.Lambda,
		MutationRate: m.Mutation,
		Iterations:   m.Iterations,
		Parallelism:  c.Main.Threads,
		Seed:         c.Main.Seed,
	}

	switch {
	case m.Mu < 1:
		return cfg, fmt.Errorf("mu-lambda.mu: must be at least 1, got %d", m.Mu)
	case m.Lambda < 0:
		return cfg, fmt.Errorf("mu-lambda.lambda: must not be negative, got %d", m.Lambda)
	case m.Mutation < 0 || m.Mutation > 1:
		return cfg, fmt.Errorf("mu-lambda.mutation: must be within [0,1], got %v", m.Mutation)
	case m.Iterations < 1:
		return cfg, fmt.Errorf("mu-lambda.iterations: must be at least 1, got %d", m.Iterations)
	case c.Main.Threads < 0:
		return cfg, fmt.Errorf("main.threads: must not be negative, got %d", c.Main.Threads)
	}

	parents, ok := genetic.ParseParentSource(m.Parents)
	if !ok {
		return cfg, fmt.Errorf("mu-lambda.parents: unknown parent source %q", m.Parents)
	}
	cfg.Parents = parents
	return cfg, nil
}

func (c *Config) template(kind strategy.Kind, seed *strategy.Seed) (*strategy.Individual, error) {
	params := strategy.Params{
		Walls: strategy.WallParams{
			Coverage:   c.Walls.Coverage,
			DoorChance: c.Walls.DoorChance,
		},
		Desirable: strategy.DesirableParams{
			RoomNumber: c.Desirable.RoomNumber,
			RoomSize:   c.Desirable.RoomSize,
			Doors:      c.Desirable.Doors,
			Monsters:   c.Desirable.Monsters,
			Branching:  c.Desirable.Branching,
		},
	}

	section := ""
	switch kind {
	case strategy.KindListOfWalls:
		section = "list-of-walls"
	case strategy.KindDesirableProperties:
		section = "desirable_patterns"
	case strategy.KindWallPatterns:
		patterns, err := c.Patterns.params()
		if err != nil {
			return nil, err
		}
		params.Patterns = patterns
	}

	template, err := strategy.New(kind, seed, params)
	if err != nil {
		if section != "" {
			return nil, fmt.Errorf("%s: %w", section, err)
		}
		return nil, err
	}
	return template, nil
}

// params splits [wallpatterns.tiles] into the pattern size and the symbol table
func (w WallPatterns) params() (strategy.PatternParams, error) {
	p := strategy.PatternParams{
		Symbols: make(map[string]string),
		Rooms:   w.Rooms,
	}
	var err error
	if p.Width, err = intKey(w.Tiles, "width"); err != nil {
		return p, err
	}
	if p.Height, err = intKey(w.Tiles, "height"); err != nil {
		return p, err
	}
	for name, v := range w.Tiles {
		if name == "width" || name == "height" {
			continue
		}
		symbol, ok := v.(string)
		if !ok {
			return p, fmt.Errorf("wallpatterns.tiles.%s: expected a symbol string, got %T", name, v)
		}
		p.Symbols[name] = symbol
	}
	return p, nil
}

func intKey(table map[string]any, key string) (int, error) {
	v, ok := table[key]
	if !ok {
		return 0, fmt.Errorf("wallpatterns.tiles.%s: missing", key)
	}
	n, ok := v.(int64)
	if !ok {
		return 0, fmt.Errorf("wallpatterns.tiles.%s: expected an integer, got %T", key, v)
	}
	return int(n), nil
}

func (c *Config) aggregator() (*fitness.Aggregator[*grid.Dungeon], error) {
	m := c.MuLambda
	if len(m.Evaluations) == 0 {
		return nil, fmt.Errorf("mu-lambda.evaluations: at least one evaluation is required")
	}
	if len(m.Evaluations) != len(m.EvaluationWeights) {
		return nil, fmt.Errorf("mu-lambda.evaluation_weights: %d weights for %d evaluations",
			len(m.EvaluationWeights), len(m.Evaluations))
	}

	evaluators := evaluate.Registry()
	terms := make([]fitness.Term[*grid.Dungeon], 0, len(m.Evaluations))
	for i, name := range m.Evaluations {
		fn, err := evaluators.Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("mu-lambda.evaluations[%d]: %w", i, err)
		}
		terms = append(terms, fitness.Term[*grid.Dungeon]{Name: name, Fn: fn, Weight: m.EvaluationWeights[i]})
	}

	agg, err := fitness.NewAggregator(terms...)
	if err != nil {
		return nil, fmt.Errorf("mu-lambda.evaluations: %w", err)
	}
	return agg, nil
}

func (c *Config) glyphs() (map[string]rune, error) {
	names := make([]string, 0, len(c.Glyphs))
	for name := range c.Glyphs {
		names = append(names, name)
	}
	slices.Sort(names)

	out := make(map[string]rune, len(names))
	for _, name := range names {
		g := c.Glyphs[name]
		if utf8.RuneCountInString(g) != 1 {
			return nil, fmt.Errorf("glyphs.%s: %q must be a single character", name, g)
		}
		r, _ := utf8.DecodeRuneInString(g)
		out[name] = r
	}
	return out, nil
}
