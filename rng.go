// Package mdn - RNG policy for the sampling entry points.
//
// Goals:
//   - Determinism on demand: same seed ⇒ identical samples across runs.
//   - Fresh entropy by default: production callers who pass no source
//     get a new draw every call, never a pinned constant.
//   - Encapsulation: one factory; no hidden time-based sources outside
//     the documented seed==0 policy.
//
// Concurrency:
//   - *rand.Rand is NOT goroutine-safe. Do not share one across
//     goroutines; create one per worker with NewRand.
//
// golang.org/x/exp/rand is used instead of math/rand because its
// Source type is what the gonum distributions accept, so the component
// choice and the Gaussian draws can share one stream.
package mdn

import (
	"time"

	"golang.org/x/exp/rand"
)

// NewRand returns a generator for Options.Rand.
// Policy: seed != 0 ⇒ deterministic stream seeded verbatim;
// seed == 0 ⇒ seeded from the wall clock for fresh entropy.
//
// Complexity: O(1).
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}
