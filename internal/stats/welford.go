package stats

import "math"

// Accumulator keeps running statistics over a stream of observations using
// Welford's online algorithm for the variance.
// Reference: https://en.wikipedia.org/wiki/Algorithms_for_calculating_variance#Welford's_online_algorithm
type Accumulator struct {
	count int
	mean  float64
	m2    float64 // sum of squared differences from the mean
	sum   float64
	min   float64
	max   float64
}

// Update adds one observation
func (a *Accumulator) Update(v float64) {
	a.count++
	a.sum += v
	if a.count == 1 || v < a.min {
		a.min = v
	}
	if a.count == 1 || v > a.max {
		a.max = v
	}

	delta := v - a.mean
	a.mean += delta / float64(a.count)
	delta2 := v - a.mean
	a.m2 += delta * delta2
}

// Count returns the number of observations
func (a *Accumulator) Count() int {
	return a.count
}

// Sum returns the total of all observations
func (a *Accumulator) Sum() float64 {
	return a.sum
}

// Mean returns Sum divided by Count, 0 when empty.
func (a *Accumulator) Mean() float64 {
	if a.count == 0 {
		return 0
	}
	return a.sum / float64(a.count)
}

// StdDev returns the population standard deviation.
// Returns 0 if fewer than 2 observations.
func (a *Accumulator) StdDev() float64 {
	if a.count < 2 {
		return 0
	}
	return math.Sqrt(a.m2 / float64(a.count))
}

// Min returns the smallest observation, 0 when empty.
func (a *Accumulator) Min() float64 {
	return a.min
}

// Max returns the largest observation, 0 when empty.
func (a *Accumulator) Max() float64 {
	return a.max
}
