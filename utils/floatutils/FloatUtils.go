// Package floatutils provides utilities for working with floats
package floatutils

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Default tolerances for Close, chosen to match the usual tolerances
// of numerical libraries
const (
	closeRTol float64 = 1e-5
	closeATol float64 = 1e-8
)

// ArgMax returns the index of the maximum value in a slice of float64.
// If multiple equal max values exist, the first one is returned.
func ArgMax(values []float64) int {
	max, idx := values[0], 0
	for i, value := range values {
		if value > max {
			max = value
			idx = i
		}
	}
	return idx
}

// MaxSlice gets the maximum value and indices of the maximum values in
// a slice of float64.
func MaxSlice(values []float64) (max float64, indices []int) {
	max, indices = values[0], []int{0}

	for i, value := range values[1:] {
		if value > max {
			max = value
			indices = []int{i + 1}
		} else if value == max {
			indices = append(indices, i+1)
		}
	}
	return
}

// Close returns whether a and b are equal within floating tolerance
func Close(a, b float64) bool {
	return math.Abs(a-b) <= closeATol+closeRTol*math.Abs(b)
}

// CloseMaxima returns the indices of all values that are within
// floating tolerance of the maximum value in the slice. The returned
// slice always contains at least one index.
func CloseMaxima(values []float64) []int {
	max := floats.Max(values)

	var indices []int
	for i, value := range values {
		if Close(value, max) {
			indices = append(indices, i)
		}
	}
	return indices
}

// Softmax computes the softmax of values at the given temperature:
//
//	p_i = exp(values_i / temperature) / Σ_j exp(values_j / temperature)
//
// No overflow protection is performed. As temperature approaches 0 the
// exponentials may overflow to +Inf or produce NaN, and the returned
// probabilities will be non-finite. Callers choosing very low
// temperatures own this hazard.
func Softmax(values []float64, temperature float64) []float64 {
	exp := make([]float64, len(values))
	for i, value := range values {
		exp[i] = math.Exp(value / temperature)
	}

	sum := floats.Sum(exp)
	floats.Scale(1/sum, exp)
	return exp
}

// AllFinite returns whether every value in the slice is finite
func AllFinite(values []float64) bool {
	for _, value := range values {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return false
		}
	}
	return true
}
