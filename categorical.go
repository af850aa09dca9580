package mdn

// CategoricalDraw inverts the cumulative sum of dist at draw value r:
// it walks the distribution accumulating probability mass and returns
// the first index at which the running sum reaches or exceeds r.
//
// r is expected in [0,1). Sample produces it from the configured
// random source once per call; tests may pass a fixed r directly for
// reproducible selection. r == 0 always selects index 0 when the
// first entry carries positive mass.
//
// Errors: ErrCategoricalExhausted when no index satisfies the
// threshold, i.e. the distribution sums to less than r. That only
// happens on malformed input; it is never retried.
//
// Complexity: O(len(dist)).
func CategoricalDraw(dist []float64, r float64) (int, error) {
	accumulate := 0.0
	for i, p := range dist {
		accumulate += p
		if accumulate >= r {
			return i, nil
		}
	}

	return -1, ErrCategoricalExhausted
}
