package genetic

import (
	"math/rand"
	"sort"

	"github.com/pkg/errors"
)

// Sentinel errors for genetic-algorithm input validation.
var (
	// ErrInvalidRate indicates an elitism rate outside [0, 1).
	ErrInvalidRate = errors.New("genetic: rate out of range")

	// ErrInvalidCapacity indicates a population capacity below 1.
	ErrInvalidCapacity = errors.New("genetic: capacity must be positive")

	// ErrLengthMismatch indicates crossover over chromosomes of
	// different length.
	ErrLengthMismatch = errors.New("genetic: chromosome length mismatch")

	// ErrEmptyPopulation indicates evolution or selection over a
	// population with no individuals.
	ErrEmptyPopulation = errors.New("genetic: empty population")

	// ErrPopulationFull indicates an Add beyond the population capacity.
	ErrPopulationFull = errors.New("genetic: population at capacity")
)

// Chromosome is one candidate solution. Higher fitness is fitter.
// Implementations must be immutable; operators return new chromosomes.
type Chromosome interface {
	Fitness() float64
}

// Crossover combines two parents into two children.
type Crossover interface {
	Cross(rng *rand.Rand, a, b Chromosome) (Chromosome, Chromosome, error)
}

// Mutation derives a mutated copy of a chromosome.
type Mutation interface {
	Mutate(rng *rand.Rand, c Chromosome) (Chromosome, error)
}

// Selection picks one parent from a population.
type Selection interface {
	Select(rng *rand.Rand, p *Population) (Chromosome, error)
}

// StoppingCondition reports whether evolution should stop before
// breeding generation gen from p.
type StoppingCondition func(gen int, p *Population) bool

// FixedGenerations stops after n generations.
func FixedGenerations(n int) StoppingCondition {
	return func(gen int, _ *Population) bool { return gen >= n }
}

// FitnessThreshold stops once the fittest individual reaches target.
func FitnessThreshold(target float64) StoppingCondition {
	return func(_ int, p *Population) bool {
		best := p.Fittest()
		return best != nil && best.Fitness() >= target
	}
}

// Population is a bounded set of chromosomes bred one generation at a
// time. The elitism rate is the fraction of the fittest individuals
// copied unchanged into the next generation.
type Population struct {
	capacity    int
	elitismRate float64
	members     []Chromosome
}

// NewPopulation creates an empty population with the given capacity and
// elitism rate. The rate must lie in [0, 1).
func NewPopulation(capacity int, elitismRate float64) (*Population, error) {
	if capacity < 1 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "got %d", capacity)
	}
	if elitismRate < 0 || elitismRate >= 1 {
		return nil, errors.Wrapf(ErrInvalidRate, "elitism %g", elitismRate)
	}
	return &Population{
		capacity:    capacity,
		elitismRate: elitismRate,
		members:     make([]Chromosome, 0, capacity),
	}, nil
}

// MustPopulation is NewPopulation that panics on invalid arguments.
func MustPopulation(capacity int, elitismRate float64) *Population {
	p, err := NewPopulation(capacity, elitismRate)
	if err != nil {
		panic(err)
	}
	return p
}

// Add appends one chromosome. It fails with ErrPopulationFull at capacity.
func (p *Population) Add(c Chromosome) error {
	if len(p.members) >= p.capacity {
		return errors.Wrapf(ErrPopulationFull, "capacity %d", p.capacity)
	}
	p.members = append(p.members, c)
	return nil
}

// Len returns the current number of individuals.
func (p *Population) Len() int { return len(p.members) }

// Capacity returns the population limit.
func (p *Population) Capacity() int { return p.capacity }

// Chromosomes returns a copy of the member slice.
func (p *Population) Chromosomes() []Chromosome {
	out := make([]Chromosome, len(p.members))
	copy(out, p.members)
	return out
}

// Fittest returns the individual with the highest fitness, or nil for an
// empty population.
func (p *Population) Fittest() Chromosome {
	var best Chromosome
	for _, c := range p.members {
		if best == nil || c.Fitness() > best.Fitness() {
			best = c
		}
	}
	return best
}

// nextGeneration starts the successor population, pre-seeded with the
// elite fraction of the current one.
func (p *Population) nextGeneration() *Population {
	next := &Population{
		capacity:    p.capacity,
		elitismRate: p.elitismRate,
		members:     make([]Chromosome, 0, p.capacity),
	}

	elite := int(float64(p.capacity) * p.elitismRate)
	if elite > len(p.members) {
		elite = len(p.members)
	}
	if elite > 0 {
		sorted := p.Chromosomes()
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].Fitness() > sorted[j].Fitness()
		})
		next.members = append(next.members, sorted[:elite]...)
	}
	return next
}
