package stat

import "math"

// Summary accumulates descriptive statistics over a stream of float64
// observations in constant memory. The zero value is ready to use.
type Summary struct {
	n    uint64
	sum  float64
	min  float64
	max  float64
	mean float64
	m2   float64
}

// Add folds one observation into the accumulator.
func (s *Summary) Add(v float64) {
	s.n++
	s.sum += v
	if s.n == 1 {
		s.min = v
		s.max = v
	} else {
		if v < s.min {
			s.min = v
		}
		if v > s.max {
			s.max = v
		}
	}

	// Welford's online mean/variance update.
	delta := v - s.mean
	s.mean += delta / float64(s.n)
	s.m2 += delta * (v - s.mean)
}

// AddAll folds every value in vs into the accumulator.
func (s *Summary) AddAll(vs ...float64) {
	for _, v := range vs {
		s.Add(v)
	}
}

// N returns the number of observations seen.
func (s *Summary) N() uint64 { return s.n }

// Sum returns the running sum. Zero observations yield 0.
func (s *Summary) Sum() float64 { return s.sum }

// Min returns the smallest observation, or NaN before any Add.
func (s *Summary) Min() float64 {
	if s.n == 0 {
		return math.NaN()
	}
	return s.min
}

// Max returns the largest observation, or NaN before any Add.
func (s *Summary) Max() float64 {
	if s.n == 0 {
		return math.NaN()
	}
	return s.max
}

// Mean returns the arithmetic mean, or NaN before any Add.
func (s *Summary) Mean() float64 {
	if s.n == 0 {
		return math.NaN()
	}
	return s.mean
}

// Variance returns the unbiased sample variance (dividing by n-1).
// It is NaN for fewer than two observations.
func (s *Summary) Variance() float64 {
	if s.n < 2 {
		return math.NaN()
	}
	return s.m2 / float64(s.n-1)
}

// PopulationVariance returns the biased variance (dividing by n).
// It is NaN before any Add.
func (s *Summary) PopulationVariance() float64 {
	if s.n == 0 {
		return math.NaN()
	}
	return s.m2 / float64(s.n)
}

// StdDev returns the square root of the sample variance.
func (s *Summary) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// Reset returns the accumulator to its zero state.
func (s *Summary) Reset() {
	*s = Summary{}
}
