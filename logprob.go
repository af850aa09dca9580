package mdn

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distmv"
)

// LogProb evaluates the log-density of point x under the mixture
// encoded in params:
//
//	log p(x) = logsumexp_k( log π_k + log N_k(x) )
//
// with π = Softmax(weight logits, 1) and N_k the k-th component's
// multivariate normal, using the same sigma-as-covariance-diagonal
// convention as Sample. The logsumexp keeps the result stable when
// every component assigns x a tiny density.
//
// Useful for scoring held-out points against the predicted
// distribution without drawing samples.
//
// Errors: ErrMixtureShape, ErrParamVectorLength, ErrDimensionMismatch
// when len(x) != outputDim, and ErrNonPositiveSigma when a component
// covariance is not positive definite — the density is undefined
// there, unlike sampling, which tolerates a collapsed axis.
//
// Complexity: O(numMixes * outputDim).
func LogProb(params, x []float64, outputDim, numMixes int) (float64, error) {
	mus, sigmas, logits, err := SplitMixtureParams(params, outputDim, numMixes)
	if err != nil {
		return 0, err
	}
	if len(x) != outputDim {
		return 0, ErrDimensionMismatch
	}

	pis, err := Softmax(logits, 1.0)
	if err != nil {
		return 0, err
	}

	lp := make([]float64, numMixes)
	for k := 0; k < numMixes; k++ {
		mu := mus[k*outputDim : (k+1)*outputDim]
		cov := diagCovariance(sigmas[k*outputDim : (k+1)*outputDim])

		comp, ok := distmv.NewNormal(mu, cov, nil)
		if !ok {
			return 0, ErrNonPositiveSigma
		}
		lp[k] = math.Log(pis[k]) + comp.LogProb(x)
	}

	return floats.LogSumExp(lp), nil
}
