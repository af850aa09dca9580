package mdn

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Softmax converts raw mixture-weight logits into a probability
// distribution, adjusted by temperature t.
//
// Steps:
//  1. e_i = w_i / t
//  2. subtract max(e) from every element — protects exp from overflow
//     on large logits and leaves the result unchanged
//  3. exponentiate
//  4. normalize by the sum
//
// For any finite w and t > 0 the output is non-negative and sums to 1
// within floating tolerance. The input is not modified.
//
// Errors: ErrEmptyLogits if w is empty, ErrTemperature if t <= 0.
//
// Complexity: O(len(w)).
func Softmax(w []float64, t float64) ([]float64, error) {
	if len(w) == 0 {
		return nil, ErrEmptyLogits
	}
	if t <= 0 {
		return nil, ErrTemperature
	}

	e := make([]float64, len(w))
	for i, v := range w {
		e[i] = v / t
	}

	maxE := floats.Max(e)
	for i := range e {
		e[i] = math.Exp(e[i] - maxE)
	}
	floats.Scale(1/floats.Sum(e), e)

	return e, nil
}
