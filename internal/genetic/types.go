package genetic

// Chromosome is one candidate ordering of all pending tasks: a permutation
// of indices into the optimizer's task slice. Each index appears exactly
// once. A chromosome lives only inside one optimization run.
type Chromosome []int

// Config holds the genetic-algorithm knobs.
type Config struct {
	PopulationSize     int
	Generations        int
	MutationRate       float64 // per-chromosome swap probability
	CrossoverRate      float64 // probability of recombining vs copying a parent
	EliteSize          int     // chromosomes carried unchanged per generation
	TournamentSize     int
	PlateauGenerations int // stop early after this many generations without improvement
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		PopulationSize:     100,
		Generations:        50,
		MutationRate:       0.1,
		CrossoverRate:      0.9,
		EliteSize:          20,
		TournamentSize:     5,
		PlateauGenerations: 15,
	}
}

// Weights are the tunable fitness constants. The deadline penalty must
// dominate every other term so deadline-violating orderings always rank
// below deadline-respecting ones.
type Weights struct {
	PriorityReward        float64 // per priority point per remaining slot
	DeadlinePenalty       float64 // fixed, per violated deadline
	PreferenceBonus       float64 // fixed, per satisfied time preference
	OverflowPenalty       float64 // per priority point of an overflowed task
	FragmentationPenalty  float64 // per idle minute between non-break slots
	ClockToleranceMinutes int     // window around an explicit clock preference
}

// DefaultWeights returns the calibrated fitness constants.
func DefaultWeights() Weights {
	return Weights{
		PriorityReward:        10,
		DeadlinePenalty:       1_000_000,
		PreferenceBonus:       25,
		OverflowPenalty:       50,
		FragmentationPenalty:  0.5,
		ClockToleranceMinutes: 30,
	}
}
