package parameter

// Mu-lambda engine defaults
const (
	// GAMu is the number of survivors kept per generation
	GAMu = 100

	// GALambda is the number of offspring bred per generation
	GALambda = 100

	// GAMutationRate is the fraction of genotype components perturbed per mutation (0.0-1.0)
	GAMutationRate = 0.33

	// GAIterations is the number of generations evaluated per run
	GAIterations = 100

	// GAParallelismPerCPU scales worker count with available cores when no thread count is configured
	GAParallelismPerCPU = 2

	// GAParents selects offspring parents: "survivors" or "laggards"
	GAParents = "survivors"
)

// Evaluator defaults
var (
	GAEvaluations       = []string{"check_1x1_rooms", "rooms_are_accessible"}
	GAEvaluationWeights = []float64{-1.0, 10.0}
)
