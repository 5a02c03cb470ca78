package genetic

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"runtime"
	"slices"

	"github.com/sourcegraph/conc/panics"
	"github.com/sourcegraph/conc/pool"

	"github.com/lixenwraith/dungeon-pcg/genetic/tracking"
	"github.com/lixenwraith/dungeon-pcg/parameter"
)

// --- Algorithm Engine ---

// MuLambda runs a (mu+lambda) evolution strategy
// Each generation the whole population is scored in parallel, ranked best first,
// the top Mu survive and Lambda mutated offspring refill the population
type MuLambda[G Genotype[G, P], P any] struct {
	template G
	score    ScoreFunc[P]

	// Configuration
	config      EngineConfig
	parallelism int

	// State
	rng        *rand.Rand
	population []Member[G]
	collector  *tracking.Collector
	observer   func(tracking.GenerationStats)
}

// EngineConfig holds configuration parameters for the algorithm
type EngineConfig struct {
	// Mu is the number of survivors kept each generation
	Mu int
	// Lambda is the number of offspring bred each generation
	Lambda int
	// MutationRate is the fraction of a genotype perturbed per mutation (0-1)
	MutationRate float64
	// Iterations is the number of generations scored
	Iterations int
	// Parallelism bounds concurrent evaluations (0 for 2 x NumCPU)
	Parallelism int
	// Seed for random number generation (0 for random seed)
	Seed uint64
	// Parents selects which ranks breed offspring
	Parents ParentSource
}

// DefaultConfig returns a reasonable default configuration.
func DefaultConfig() EngineConfig {
	return EngineConfig{
		Mu:           parameter.GAMu,
		Lambda:       parameter.GALambda,
		MutationRate: parameter.GAMutationRate,
		Iterations:   parameter.GAIterations,
		Parallelism:  0,
		Seed:         0,
		Parents:      ParentSource(parameter.GAParents),
	}
}

// Validate reports the first out-of-range field
func (c EngineConfig) Validate() error {
	switch {
	case c.Mu < 1:
		return fmt.Errorf("mu must be at least 1, got %d", c.Mu)
	case c.Lambda < 0:
		return fmt.Errorf("lambda must not be negative, got %d", c.Lambda)
	case c.MutationRate < 0 || c.MutationRate > 1 || math.IsNaN(c.MutationRate):
		return fmt.Errorf("mutation rate must be within [0,1], got %v", c.MutationRate)
	case c.Iterations < 1:
		return fmt.Errorf("iterations must be at least 1, got %d", c.Iterations)
	case c.Parallelism < 0:
		return fmt.Errorf("parallelism must not be negative, got %d", c.Parallelism)
	}
	if _, ok := ParseParentSource(string(c.Parents)); !ok {
		return fmt.Errorf("unknown parent source %q", c.Parents)
	}
	return nil
}

// NewMuLambda creates an engine breeding from template and ranking by score
func NewMuLambda[G Genotype[G, P], P any](template G, score func(P) float64, config EngineConfig) (*MuLambda[G, P], error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if score == nil {
		return nil, errors.New("score function is required")
	}
	config.Parents, _ = ParseParentSource(string(config.Parents))

	// Initialize random number generator
	var rng *rand.Rand
	if config.Seed == 0 {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	} else {
		rng = rand.New(rand.NewPCG(config.Seed, config.Seed))
	}

	parallelism := config.Parallelism
	if parallelism == 0 {
		parallelism = parameter.GAParallelismPerCPU * runtime.NumCPU()
	}

	return &MuLambda[G, P]{
		template:    template,
		score:       score,
		config:      config,
		parallelism: parallelism,
		rng:         rng,
		collector:   tracking.NewCollector(config.Iterations),
	}, nil
}

// SetObserver registers a callback receiving each generation's statistics
// The callback runs on the engine goroutine between generations
func (e *MuLambda[G, P]) SetObserver(fn func(tracking.GenerationStats)) {
	e.observer = fn
}

// Run executes all generations and returns the final population ranked best first
func (e *MuLambda[G, P]) Run(ctx context.Context) ([]Member[G], error) {
	e.initializePopulation()

	for iteration := 0; iteration < e.config.Iterations; iteration++ {
		// Check context cancellation
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if err := e.evaluateGeneration(ctx, iteration); err != nil {
			return nil, err
		}

		stats := e.recordStats(iteration)
		log.Printf("mu-lambda: generation %d/%d best=%.3f avg=%.3f worst=%.3f",
			iteration+1, e.config.Iterations, stats.Best, stats.Average, stats.Worst)
		if e.observer != nil {
			e.observer(stats)
		}

		// Final generation is returned as ranked, without breeding
		if iteration < e.config.Iterations-1 {
			e.prune()
		}
	}

	return slices.Clone(e.population), nil
}

// initializePopulation creates mu+lambda random individuals
func (e *MuLambda[G, P]) initializePopulation() {
	total := e.config.Mu + e.config.Lambda
	e.population = make([]Member[G], total)
	for i := range e.population {
		e.population[i] = Member[G]{
			Genotype: e.template.Initialize(e.rng),
			Stat:     EmptyStatistic(),
		}
	}
	e.collector.Reset()
}

// evaluateGeneration scores every individual on the worker pool and ranks them
// Returns only after every task has finished
func (e *MuLambda[G, P]) evaluateGeneration(ctx context.Context, iteration int) error {
	// Shuffle to avoid positional bias in scheduling
	e.rng.Shuffle(len(e.population), func(i, j int) {
		e.population[i], e.population[j] = e.population[j], e.population[i]
	})

	scored := make([]Member[G], len(e.population))
	p := pool.New().WithMaxGoroutines(e.parallelism).WithErrors().WithFirstError()
	for i, m := range e.population {
		p.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := e.evaluate(m, iteration)
			if err != nil {
				return err
			}
			scored[i] = result
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return err
	}

	// Best first; stable so equal fitness keeps shuffled order
	slices.SortStableFunc(scored, func(a, b Member[G]) int {
		return cmp.Compare(b.Stat.Fitness, a.Stat.Fitness)
	})
	e.population = scored
	return nil
}

// evaluate clones, generates and scores one individual
func (e *MuLambda[G, P]) evaluate(m Member[G], iteration int) (Member[G], error) {
	var fitness float64
	recovered := panics.Try(func() {
		phenotype := m.Genotype.Clone().Generate()
		fitness = e.score(phenotype)
	})
	if recovered != nil {
		return m, &EvaluationError{Iteration: iteration, Err: recovered.AsError()}
	}
	if math.IsNaN(fitness) {
		return m, fmt.Errorf("generation %d: %w", iteration, ErrIncomparableFitness)
	}

	m.Stat = Statistic{Iteration: iteration, Fitness: fitness}
	return m, nil
}

// prune keeps the top mu and breeds lambda offspring behind them
func (e *MuLambda[G, P]) prune() {
	mu := e.config.Mu
	next := make([]Member[G], 0, len(e.population))
	next = append(next, e.population[:mu]...)

	laggards := e.population[mu:]
	for i := 0; i < e.config.Lambda; i++ {
		var parent Member[G]
		if e.config.Parents == ParentsLaggards && len(laggards) > 0 {
			parent = laggards[i%len(laggards)]
		} else {
			parent = next[i%mu]
		}

		child := parent.Genotype.Clone()
		child.Mutate(e.rng, e.config.MutationRate)
		next = append(next, Member[G]{Genotype: child, Stat: EmptyStatistic()})
	}

	e.population = next
}

// recordStats computes and stores statistics for the ranked population
func (e *MuLambda[G, P]) recordStats(iteration int) tracking.GenerationStats {
	for _, m := range e.population {
		e.collector.Collect(m.Stat.Fitness)
	}
	return e.collector.Finalize(iteration)
}

// History returns the per-generation statistics of the last run
func (e *MuLambda[G, P]) History() []tracking.GenerationStats {
	return e.collector.History()
}

// GetBest returns the best ranked member of the last evaluated generation
func (e *MuLambda[G, P]) GetBest() (Member[G], error) {
	if len(e.population) == 0 || len(e.History()) == 0 {
		return Member[G]{}, errors.New("no evaluated members available")
	}
	return e.population[0], nil
}
