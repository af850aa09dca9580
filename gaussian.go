package mdn

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// diagCovariance builds the n×n covariance matrix of one mixture
// component: the entries of sig on the diagonal, zero everywhere else.
// The network's sigma activations land on the diagonal verbatim
// (keras-mdn-layer convention), so each entry is a covariance and the
// per-axis standard deviation is its square root.
func diagCovariance(sig []float64) *mat.SymDense {
	cov := mat.NewSymDense(len(sig), nil)
	for i, v := range sig {
		cov.SetSym(i, i, v)
	}

	return cov
}

// normalDraw draws one vector from the multivariate normal with mean
// mu and the given diagonal covariance. Diagonal covariance means the
// axes are independent, so the draw decomposes into one univariate
// Normal per axis. This also keeps the zero-variance boundary exact:
// a zero diagonal entry collapses that axis onto its mean, which a
// Cholesky-based sampler would reject.
func normalDraw(mu []float64, cov *mat.SymDense, rng *rand.Rand) []float64 {
	out := make([]float64, len(mu))
	for i := range mu {
		n := distuv.Normal{Mu: mu[i], Sigma: math.Sqrt(cov.At(i, i)), Src: rng}
		out[i] = n.Rand()
	}

	return out
}
