// Package stat provides streaming descriptive statistics.
//
// The central type is Summary, a single-pass accumulator over float64
// observations. It tracks count, sum, extrema, mean, and variance in O(1)
// memory using Welford's online update, which keeps the variance
// numerically stable even when the mean is large relative to the spread.
//
//	var s stat.Summary
//	for _, v := range samples {
//	    s.Add(v)
//	}
//	fmt.Println(s.Mean(), s.StdDev())
//
// Summary is not safe for concurrent use; guard it externally or keep one
// per goroutine and merge results yourself.
//
// Empty-accumulator queries return NaN (Mean, Variance, StdDev, Min, Max)
// rather than panicking, so callers can feed results straight into
// further float64 arithmetic.
package stat
