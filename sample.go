package mdn

// Sample draws one vector of length outputDim from the mixture
// distribution encoded in a flat MDN parameter vector.
//
// Pipeline: split the vector into means ‖ sigmas ‖ weight logits,
// soften the logits with opts.Temperature, draw one component index,
// scale that component's sigmas by opts.SigmaTemperature, build its
// diagonal covariance, and draw from the resulting Gaussian. Any
// failure in an inner stage propagates unchanged; there are no
// retries and no partial results.
//
// A nil opts is equivalent to DefaultOptions(). When opts.Rand is nil
// a fresh time-seeded generator is created for the call; supply one
// via NewRand for reproducible output or to reuse a stream across
// calls. The generator is the only shared resource — concurrent
// callers must not share a single *rand.Rand.
//
// Errors: ErrMixtureShape, ErrParamVectorLength, ErrTemperature,
// ErrCategoricalExhausted.
//
// Complexity: O(numMixes + outputDim).
func Sample(params []float64, outputDim, numMixes int, opts *Options) ([]float64, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	// SigmaTemperature multiplies a non-negative quantity, so 0 is a
	// valid (deterministic) setting; only negative values are rejected.
	if o.SigmaTemperature < 0 {
		return nil, ErrTemperature
	}

	mus, sigmas, logits, err := SplitMixtureParams(params, outputDim, numMixes)
	if err != nil {
		return nil, err
	}

	dist, err := Softmax(logits, o.Temperature)
	if err != nil {
		return nil, err
	}

	rng := o.Rand
	if rng == nil {
		rng = NewRand(0)
	}

	m, err := CategoricalDraw(dist, rng.Float64())
	if err != nil {
		return nil, err
	}

	muVec := mus[m*outputDim : (m+1)*outputDim]
	sigVec := make([]float64, outputDim)
	for i, v := range sigmas[m*outputDim : (m+1)*outputDim] {
		sigVec[i] = v * o.SigmaTemperature
	}

	return normalDraw(muVec, diagCovariance(sigVec), rng), nil
}
