package genetic

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
)

// Option configures an Evolve run.
type Option func(*config)

type config struct {
	crossover     Crossover
	crossoverRate float64
	mutation      Mutation
	mutationRate  float64
	selection     Selection
	rng           *rand.Rand
}

// WithCrossover sets the crossover operator and its per-pair application
// rate. Panics when rate is outside [0, 1].
func WithCrossover(op Crossover, rate float64) Option {
	if rate < 0 || rate > 1 {
		panic("genetic: crossover rate must be in [0, 1]")
	}
	return func(c *config) {
		c.crossover = op
		c.crossoverRate = rate
	}
}

// WithMutation sets the mutation operator and its per-individual
// application rate. Panics when rate is outside [0, 1].
func WithMutation(op Mutation, rate float64) Option {
	if rate < 0 || rate > 1 {
		panic("genetic: mutation rate must be in [0, 1]")
	}
	return func(c *config) {
		c.mutation = op
		c.mutationRate = rate
	}
}

// WithSelection sets the parent-selection policy.
func WithSelection(s Selection) Option {
	return func(c *config) { c.selection = s }
}

// WithRand injects the random source. Supply a seeded *rand.Rand for
// reproducible runs.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic("genetic: rand source must not be nil")
	}
	return func(c *config) { c.rng = rng }
}

func gatherConfig(opts []Option) config {
	c := config{
		crossover:     OnePointCrossover{},
		crossoverRate: 0.9,
		mutation:      BinaryMutation{},
		mutationRate:  0.02,
		selection:     TournamentSelection{Arity: 2},
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return c
}

// Evolve breeds pop generation by generation until cond reports stop,
// then returns the final population. Each generation keeps the elite
// fraction unchanged and fills the rest with selected, crossed, and
// mutated offspring.
func Evolve(pop *Population, cond StoppingCondition, opts ...Option) (*Population, error) {
	if pop == nil || pop.Len() == 0 {
		return nil, errors.Wrap(ErrEmptyPopulation, "evolve")
	}
	c := gatherConfig(opts)

	for gen := 0; !cond(gen, pop); gen++ {
		next := pop.nextGeneration()

		for next.Len() < next.Capacity() {
			p1, err := c.selection.Select(c.rng, pop)
			if err != nil {
				return nil, err
			}
			p2, err := c.selection.Select(c.rng, pop)
			if err != nil {
				return nil, err
			}

			if c.rng.Float64() < c.crossoverRate {
				p1, p2, err = c.crossover.Cross(c.rng, p1, p2)
				if err != nil {
					return nil, err
				}
			}
			if c.rng.Float64() < c.mutationRate {
				if p1, err = c.mutation.Mutate(c.rng, p1); err != nil {
					return nil, err
				}
			}
			if c.rng.Float64() < c.mutationRate {
				if p2, err = c.mutation.Mutate(c.rng, p2); err != nil {
					return nil, err
				}
			}

			if err = next.Add(p1); err != nil {
				break
			}
			if next.Len() < next.Capacity() {
				if err = next.Add(p2); err != nil {
					break
				}
			}
		}
		pop = next
	}
	return pop, nil
}
