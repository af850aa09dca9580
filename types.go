package mdn

import (
	"errors"

	"golang.org/x/exp/rand"
)

// Sentinel errors returned by this package. Every failure is final:
// no operation retries, logs, or returns a partial sample.
var (
	// ErrMixtureShape indicates a non-positive outputDim or numMixes.
	ErrMixtureShape = errors.New("mdn: outputDim and numMixes must be positive")

	// ErrParamVectorLength indicates a parameter vector whose length does
	// not equal numMixes*outputDim*2 + numMixes.
	ErrParamVectorLength = errors.New("mdn: parameter vector length does not match mixture shape")

	// ErrEmptyLogits indicates an empty weight-logit vector.
	ErrEmptyLogits = errors.New("mdn: logit vector must be non-empty")

	// ErrTemperature indicates Temperature <= 0 or SigmaTemperature < 0.
	ErrTemperature = errors.New("mdn: temperature out of range")

	// ErrCategoricalExhausted indicates the cumulative sum of the
	// distribution never reached the draw value (malformed distribution).
	ErrCategoricalExhausted = errors.New("mdn: categorical draw exhausted the distribution")

	// ErrDimensionMismatch indicates a point whose length differs from outputDim.
	ErrDimensionMismatch = errors.New("mdn: point dimension does not match outputDim")

	// ErrNonPositiveSigma indicates a component covariance that is not
	// positive definite (a zero or negative sigma entry).
	ErrNonPositiveSigma = errors.New("mdn: component sigmas must be positive")
)

// Options configures Sample.
//
// Fields:
//   - Temperature      — softmax temperature for the component choice.
//     Must be > 0. Values below 1 sharpen the choice toward the heaviest
//     component; values above 1 flatten it toward uniform.
//   - SigmaTemperature — multiplicative scale applied to the selected
//     component's sigmas before drawing. Must be >= 0; 0 collapses the
//     draw onto the component mean.
//   - Rand             — random source for the component choice and the
//     Gaussian draw. Nil means a fresh time-seeded generator per call.
//     A *rand.Rand is not safe for concurrent use; give each goroutine
//     its own (see NewRand).
//
// Example:
//
//	opts := mdn.DefaultOptions()
//	opts.SigmaTemperature = 0.5 // tighter samples, same component mix
//	opts.Rand = mdn.NewRand(42) // reproducible
//	sample, err := mdn.Sample(params, outputDim, numMixes, &opts)
type Options struct {
	Temperature      float64
	SigmaTemperature float64
	Rand             *rand.Rand
}

// DefaultOptions returns the neutral configuration: both temperatures
// at 1.0 (sample the distribution exactly as the network predicts it)
// and no fixed random source.
func DefaultOptions() Options {
	return Options{Temperature: 1.0, SigmaTemperature: 1.0}
}
