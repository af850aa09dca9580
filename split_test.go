package mdn_test

import (
	"testing"

	mdn "github.com/andySigler/keras-mdn-layer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSplitMixtureParams_RecoversBlocks verifies that a vector built
// from three known blocks is split back into exactly those blocks.
func TestSplitMixtureParams_RecoversBlocks(t *testing.T) {
	const (
		outputDim = 2
		numMixes  = 3
	)
	mus := []float64{1, 2, 3, 4, 5, 6}
	sigmas := []float64{10, 20, 30, 40, 50, 60}
	logits := []float64{0.1, 0.2, 0.3}

	params := make([]float64, 0, len(mus)+len(sigmas)+len(logits))
	params = append(params, mus...)
	params = append(params, sigmas...)
	params = append(params, logits...)

	gotMus, gotSigmas, gotLogits, err := mdn.SplitMixtureParams(params, outputDim, numMixes)
	require.NoError(t, err, "well-formed vector must split")
	assert.Equal(t, mus, gotMus, "mean block must be returned unchanged")
	assert.Equal(t, sigmas, gotSigmas, "sigma block must be returned unchanged")
	assert.Equal(t, logits, gotLogits, "logit block must be returned unchanged")
}

// TestSplitMixtureParams_LengthMismatch ensures an off-by-one vector
// fails with ErrParamVectorLength instead of truncating silently.
func TestSplitMixtureParams_LengthMismatch(t *testing.T) {
	// numMixes=2, outputDim=1 ⇒ expected length 2*2*1+2 = 6.
	short := make([]float64, 5)
	long := make([]float64, 7)

	_, _, _, err := mdn.SplitMixtureParams(short, 1, 2)
	assert.ErrorIs(t, err, mdn.ErrParamVectorLength, "under-length vector must error")

	_, _, _, err = mdn.SplitMixtureParams(long, 1, 2)
	assert.ErrorIs(t, err, mdn.ErrParamVectorLength, "over-length vector must error")
}

// TestSplitMixtureParams_BadShape ensures non-positive descriptors are
// rejected before any slicing.
func TestSplitMixtureParams_BadShape(t *testing.T) {
	params := make([]float64, 6)

	_, _, _, err := mdn.SplitMixtureParams(params, 0, 2)
	assert.ErrorIs(t, err, mdn.ErrMixtureShape, "outputDim=0 must error")

	_, _, _, err = mdn.SplitMixtureParams(params, 1, -1)
	assert.ErrorIs(t, err, mdn.ErrMixtureShape, "negative numMixes must error")
}

// TestSplitMixtureParams_SingleComponent covers the smallest legal
// shape: one component, one dimension.
func TestSplitMixtureParams_SingleComponent(t *testing.T) {
	params := []float64{5.0, 0.25, 0.0}

	mus, sigmas, logits, err := mdn.SplitMixtureParams(params, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{5.0}, mus)
	assert.Equal(t, []float64{0.25}, sigmas)
	assert.Equal(t, []float64{0.0}, logits)
}
