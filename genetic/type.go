package genetic

import (
	"math/rand/v2"
)

// --- Core Protocol ---

// Genotype is the evolvable encoding of one candidate
// G is the concrete genotype type, P the phenotype it generates
type Genotype[G any, P any] interface {
	// Initialize returns a fully formed random individual built from a blank template
	Initialize(rng *rand.Rand) G
	// Mutate perturbs a fraction rate (0-1) of the genotype's components in place
	Mutate(rng *rand.Rand, rate float64)
	// Generate maps the genotype to its phenotype
	// It must not consume randomness; repeated calls yield identical results
	Generate() P
	// Clone returns a deep copy sharing no mutable state with the receiver
	Clone() G
}

// ScoreFunc computes the fitness of a phenotype (higher = better)
type ScoreFunc[P any] func(phenotype P) float64

// --- Core Data Structures ---

// Statistic is per-individual evaluation metadata
type Statistic struct {
	// Iteration is the generation index at which the fitness was computed
	Iteration int
	// Fitness is the weighted score, -1 until evaluated
	Fitness float64
}

// EmptyStatistic marks an individual not yet evaluated this generation
func EmptyStatistic() Statistic {
	return Statistic{Iteration: 0, Fitness: -1}
}

// Member pairs a genotype with its latest statistic
type Member[G any] struct {
	Genotype G
	Stat     Statistic
}

// ParentSource selects which ranks breed the offspring of a generation
type ParentSource string

const (
	// ParentsSurvivors breeds offspring round-robin from the kept top mu
	ParentsSurvivors ParentSource = "survivors"
	// ParentsLaggards breeds offspring from the ranks below mu, replacing each in place
	ParentsLaggards ParentSource = "laggards"
)

// ParseParentSource maps a configuration value to a ParentSource; empty selects survivors
func ParseParentSource(s string) (ParentSource, bool) {
	switch ParentSource(s) {
	case "", ParentsSurvivors:
		return ParentsSurvivors, true
	case ParentsLaggards:
		return ParentsLaggards, true
	}
	return "", false
}
