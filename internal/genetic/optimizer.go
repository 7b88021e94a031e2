package genetic

import (
	"context"
	"math"
	"math/rand"
	"runtime"
	"sort"
	"sync"
	"time"

	"smart-day-planner/internal/model"
)

// Optimizer runs the genetic-algorithm search over task orderings.
// Generations are sequential; only fitness evaluation within one
// generation runs in parallel. All randomness flows through the *rand.Rand
// passed to Run, so a run is exactly reproducible given the same seed.
type Optimizer struct {
	cfg  Config
	eval *Evaluator
}

// NewOptimizer creates an optimizer. Zero or negative config fields fall
// back to the defaults.
func NewOptimizer(cfg Config, weights Weights) *Optimizer {
	def := DefaultConfig()
	if cfg.PopulationSize <= 0 {
		cfg.PopulationSize = def.PopulationSize
	}
	if cfg.Generations <= 0 {
		cfg.Generations = def.Generations
	}
	if cfg.MutationRate <= 0 {
		cfg.MutationRate = def.MutationRate
	}
	if cfg.CrossoverRate <= 0 {
		cfg.CrossoverRate = def.CrossoverRate
	}
	if cfg.EliteSize <= 0 {
		cfg.EliteSize = def.EliteSize
	}
	if cfg.EliteSize > cfg.PopulationSize/2 {
		cfg.EliteSize = cfg.PopulationSize/2 + 1
	}
	if cfg.TournamentSize <= 0 {
		cfg.TournamentSize = def.TournamentSize
	}
	if cfg.TournamentSize > cfg.PopulationSize {
		cfg.TournamentSize = cfg.PopulationSize
	}
	if cfg.PlateauGenerations <= 0 {
		cfg.PlateauGenerations = def.PlateauGenerations
	}

	return &Optimizer{cfg: cfg, eval: NewEvaluator(weights)}
}

// Run searches for the best ordering of tasks for one day. It returns the
// best chromosome observed across all generations together with its score.
// An empty task set returns an empty chromosome immediately. When ctx is
// cancelled or its deadline passes mid-run, the best found so far is
// returned; exhausting time is never an error.
func (o *Optimizer) Run(ctx context.Context, tasks []model.Task, day time.Time, prefs model.Preferences, rng *rand.Rand) (Chromosome, float64) {
	n := len(tasks)
	if n == 0 {
		return Chromosome{}, 0
	}

	population := make([]Chromosome, o.cfg.PopulationSize)
	for i := range population {
		population[i] = randomChromosome(rng, n)
	}

	bestScore := math.Inf(-1)
	var best Chromosome
	plateau := 0

	for gen := 0; gen < o.cfg.Generations; gen++ {
		if ctx.Err() != nil {
			break
		}

		scores := o.evaluateAll(population, tasks, prefs, day)

		order := rankByScore(scores)

		if top := scores[order[0]]; top > bestScore {
			bestScore = top
			best = population[order[0]].Clone()
			plateau = 0
		} else {
			plateau++
			if plateau >= o.cfg.PlateauGenerations {
				break
			}
		}

		next := make([]Chromosome, 0, o.cfg.PopulationSize)
		for i := 0; i < o.cfg.EliteSize; i++ {
			next = append(next, population[order[i]].Clone())
		}

		for len(next) < o.cfg.PopulationSize {
			p1 := o.tournament(rng, population, scores)
			p2 := o.tournament(rng, population, scores)

			var child Chromosome
			if rng.Float64() < o.cfg.CrossoverRate {
				child = orderedCrossover(rng, p1, p2)
			} else {
				child = p1.Clone()
			}

			if rng.Float64() < o.cfg.MutationRate {
				swapMutate(rng, child)
			}

			next = append(next, child)
		}

		population = next
	}

	if best == nil {
		// Cancelled before the first evaluation finished.
		best = population[0].Clone()
		bestScore = o.eval.Evaluate(best, tasks, prefs, day)
	}

	return best, bestScore
}

// evaluateAll scores the whole population. Chromosomes within a generation
// have no data dependency, so scoring fans out across CPUs.
func (o *Optimizer) evaluateAll(population []Chromosome, tasks []model.Task, prefs model.Preferences, day time.Time) []float64 {
	scores := make([]float64, len(population))

	workers := runtime.NumCPU()
	if workers > len(population) {
		workers = len(population)
	}

	var wg sync.WaitGroup
	jobs := make(chan int)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				scores[i] = o.eval.Evaluate(population[i], tasks, prefs, day)
			}
		}()
	}
	for i := range population {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return scores
}

// tournament picks TournamentSize candidates uniformly and keeps the best.
func (o *Optimizer) tournament(rng *rand.Rand, population []Chromosome, scores []float64) Chromosome {
	bestIdx := rng.Intn(len(population))
	for i := 1; i < o.cfg.TournamentSize; i++ {
		idx := rng.Intn(len(population))
		if scores[idx] > scores[bestIdx] {
			bestIdx = idx
		}
	}
	return population[bestIdx]
}

// rankByScore returns population indices sorted by descending score.
// Equal scores keep their population order so ranking is deterministic.
func rankByScore(scores []float64) []int {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})
	return order
}
