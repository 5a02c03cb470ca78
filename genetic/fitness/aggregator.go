package fitness

import (
	"fmt"

	"github.com/lixenwraith/dungeon-pcg/genetic/tracking"
)

// Evaluator scores one structural property of a phenotype
type Evaluator[P any] func(phenotype P) float64

// Term is a named evaluator with its weight; a negative weight turns a count into a penalty
type Term[P any] struct {
	Name   string
	Fn     Evaluator[P]
	Weight float64
}

// Aggregator calculates fitness as the weighted sum of its terms
type Aggregator[P any] struct {
	terms []Term[P]
}

// NewAggregator builds an aggregator; every term needs a name and a function
func NewAggregator[P any](terms ...Term[P]) (*Aggregator[P], error) {
	for i, t := range terms {
		if t.Name == "" {
			return nil, fmt.Errorf("term %d has no name", i)
		}
		if t.Fn == nil {
			return nil, fmt.Errorf("term %q has no evaluator", t.Name)
		}
	}
	return &Aggregator[P]{terms: terms}, nil
}

// Terms returns the configured terms in evaluation order
func (a *Aggregator[P]) Terms() []Term[P] {
	out := make([]Term[P], len(a.terms))
	copy(out, a.terms)
	return out
}

// Measure runs every evaluator and returns the raw, unweighted values
func (a *Aggregator[P]) Measure(phenotype P) tracking.MetricBundle {
	metrics := make(tracking.MetricBundle, len(a.terms))
	for _, t := range a.terms {
		metrics[t.Name] = t.Fn(phenotype)
	}
	return metrics
}

// Weigh combines raw metrics into a fitness value, summing in term order
func (a *Aggregator[P]) Weigh(metrics tracking.MetricBundle) float64 {
	var fitness float64
	for _, t := range a.terms {
		raw, ok := metrics[t.Name]
		if !ok {
			continue
		}
		fitness += t.Weight * raw
	}
	return fitness
}

// Calculate returns the weighted fitness of phenotype
func (a *Aggregator[P]) Calculate(phenotype P) float64 {
	var fitness float64
	for _, t := range a.terms {
		fitness += t.Weight * t.Fn(phenotype)
	}
	return fitness
}
