package genetic

import (
	"math/rand"

	"github.com/pkg/errors"
)

// TournamentSelection draws Arity random individuals and returns the
// fittest of them. Larger arity raises selection pressure.
type TournamentSelection struct {
	// Arity is the tournament size; values below 2 behave as 2.
	Arity int
}

// Select runs one tournament over p.
func (s TournamentSelection) Select(rng *rand.Rand, p *Population) (Chromosome, error) {
	if p.Len() == 0 {
		return nil, errors.Wrap(ErrEmptyPopulation, "tournament selection")
	}
	arity := s.Arity
	if arity < 2 {
		arity = 2
	}

	members := p.members
	best := members[rng.Intn(len(members))]
	for i := 1; i < arity; i++ {
		c := members[rng.Intn(len(members))]
		if c.Fitness() > best.Fitness() {
			best = c
		}
	}
	return best, nil
}
