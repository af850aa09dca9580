package mdn

// SplitMixtureParams partitions a flat MDN parameter vector into its
// three blocks. The layout is fixed by the network head: the first
// numMixes*outputDim entries are concatenated per-component means, the
// next numMixes*outputDim are per-component sigmas in the same order,
// and the final numMixes entries are raw mixture-weight logits.
//
// The returned slices alias params; treat them as read-only views.
//
// The vector length must equal numMixes*outputDim*2 + numMixes exactly.
// An under- or over-length vector fails with ErrParamVectorLength
// rather than being truncated or padded.
//
// Complexity: O(1).
func SplitMixtureParams(params []float64, outputDim, numMixes int) (mus, sigmas, logits []float64, err error) {
	if outputDim <= 0 || numMixes <= 0 {
		return nil, nil, nil, ErrMixtureShape
	}

	block := numMixes * outputDim
	if len(params) != 2*block+numMixes {
		return nil, nil, nil, ErrParamVectorLength
	}

	mus = params[:block]
	sigmas = params[block : 2*block]
	logits = params[2*block:]

	return mus, sigmas, logits, nil
}
