package genetic

import (
	"errors"
	"fmt"
)

// ErrIncomparableFitness is returned when an evaluation produces NaN
var ErrIncomparableFitness = errors.New("incomparable fitness value")

// EvaluationError reports a panic raised while generating or scoring an individual
type EvaluationError struct {
	Iteration int
	Err       error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluation failed in generation %d: %v", e.Iteration, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}
