// Package mdn turns the raw output of a Mixture Density Network — one
// flat vector of mixture parameters — into concrete samples from the
// probability distribution it encodes.
//
// 🚀 What is an MDN?
//
//	A Mixture Density Network does not predict a single value: its
//	final layer parameterizes a whole mixture of Gaussians — per
//	component a mean vector, a sigma vector, and a mixture weight.
//	To actually use such a model you must sample: pick a component
//	from the (softmaxed) weights, then draw from that component's
//	axis-aligned Gaussian. That sampling step is this package.
//
// ✨ Key features:
//   - independent temperature controls: Temperature sharpens or
//     flattens the component choice, SigmaTemperature scales the
//     spread within the chosen component
//   - numerically stable softmax (max-subtraction before exp)
//   - strict parameter validation — a wrong-length vector fails fast
//     with ErrParamVectorLength instead of truncating silently
//   - injectable randomness (Options.Rand, NewRand) for reproducible
//     tests; fresh entropy per call by default
//   - mixture log-density evaluation (LogProb) for scoring points
//     against the predicted distribution
//
// ⚙️ Usage:
//
//	import mdn "github.com/andySigler/keras-mdn-layer"
//
//	// params is the flattened MDN output: means ‖ sigmas ‖ weight logits,
//	// length numMixes*outputDim*2 + numMixes.
//	opts := mdn.DefaultOptions()
//	opts.Temperature = 0.8      // favor likely components a bit more
//	opts.SigmaTemperature = 1.0 // keep the trained spread
//
//	sample, err := mdn.Sample(params, outputDim, numMixes, &opts)
//	if err != nil {
//	  // handle ErrParamVectorLength, ErrTemperature, ...
//	}
//
// Conventions:
//
//	The sigma block of the parameter vector is placed on the covariance
//	diagonal verbatim (keras-mdn-layer convention) — entries are
//	covariances, not standard deviations. Covariance is always
//	diagonal: mixture components are axis-aligned Gaussians.
//
// Performance:
//
//	Every operation is O(numMixes + outputDim) time and allocates only
//	its result. No shared state; concurrent calls are safe as long as
//	each caller owns its Options.Rand.
package mdn
