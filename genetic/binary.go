package genetic

import (
	"math/rand"

	"github.com/pkg/errors"
)

// FitnessFunc scores a bit string. Higher is fitter.
type FitnessFunc func(bits []int) float64

// BinaryChromosome is an immutable bit-string chromosome. Fitness is
// computed once at construction.
type BinaryChromosome struct {
	bits    []int
	fitness float64
	score   FitnessFunc
}

// NewBinaryChromosome copies bits and scores them with f. Every element
// of bits must be 0 or 1; anything else panics (programmer error).
func NewBinaryChromosome(bits []int, f FitnessFunc) *BinaryChromosome {
	own := make([]int, len(bits))
	for i, b := range bits {
		if b != 0 && b != 1 {
			panic("genetic: binary chromosome bit must be 0 or 1")
		}
		own[i] = b
	}
	return &BinaryChromosome{bits: own, fitness: f(own), score: f}
}

// RandomBinaryChromosome draws n uniform bits from rng and scores them.
func RandomBinaryChromosome(rng *rand.Rand, n int, f FitnessFunc) *BinaryChromosome {
	bits := make([]int, n)
	for i := range bits {
		bits[i] = rng.Intn(2)
	}
	return NewBinaryChromosome(bits, f)
}

// Fitness returns the cached score.
func (c *BinaryChromosome) Fitness() float64 { return c.fitness }

// Len returns the number of bits.
func (c *BinaryChromosome) Len() int { return len(c.bits) }

// Bits returns a copy of the bit string.
func (c *BinaryChromosome) Bits() []int {
	out := make([]int, len(c.bits))
	copy(out, c.bits)
	return out
}

// OnePointCrossover swaps the tails of two equal-length binary parents
// at one random cut point.
type OnePointCrossover struct{}

// Cross produces two children by exchanging everything after a cut point
// drawn uniformly from [1, len-1]. Both parents must be
// *BinaryChromosome of the same length.
func (OnePointCrossover) Cross(rng *rand.Rand, a, b Chromosome) (Chromosome, Chromosome, error) {
	ba, ok := a.(*BinaryChromosome)
	if !ok {
		return nil, nil, errors.Wrapf(ErrLengthMismatch, "first parent %T is not binary", a)
	}
	bb, ok := b.(*BinaryChromosome)
	if !ok {
		return nil, nil, errors.Wrapf(ErrLengthMismatch, "second parent %T is not binary", b)
	}
	n := len(ba.bits)
	if n != len(bb.bits) {
		return nil, nil, errors.Wrapf(ErrLengthMismatch, "%d vs %d bits", n, len(bb.bits))
	}
	if n < 2 {
		return a, b, nil
	}

	cut := 1 + rng.Intn(n-1)
	c1 := make([]int, n)
	c2 := make([]int, n)
	copy(c1, ba.bits[:cut])
	copy(c1[cut:], bb.bits[cut:])
	copy(c2, bb.bits[:cut])
	copy(c2[cut:], ba.bits[cut:])
	return NewBinaryChromosome(c1, ba.score), NewBinaryChromosome(c2, bb.score), nil
}

// BinaryMutation flips exactly one randomly chosen bit.
type BinaryMutation struct{}

// Mutate returns a copy of c with one bit inverted. c must be a
// *BinaryChromosome.
func (BinaryMutation) Mutate(rng *rand.Rand, c Chromosome) (Chromosome, error) {
	bc, ok := c.(*BinaryChromosome)
	if !ok {
		return nil, errors.Wrapf(ErrLengthMismatch, "%T is not binary", c)
	}
	if len(bc.bits) == 0 {
		return c, nil
	}
	bits := bc.Bits()
	i := rng.Intn(len(bits))
	bits[i] = 1 - bits[i]
	return NewBinaryChromosome(bits, bc.score), nil
}
