package dist

import (
	"fmt"
	"math"

	"github.com/sartorproj/gosharpe/solve"
)

const mleExpandMax = 64

// FNoncentrality estimates the non-centrality parameter of a non-central F
// distribution with df1 and df2 degrees of freedom from a single observed
// statistic fs. Supported methods are "unbiased", "MLE", and "KRS".
//
// The unbiased estimate can be negative; MLE and KRS never are.
func FNoncentrality(fs, df1, df2 float64, method string) (float64, error) {
	if !(df1 > 0) || !(df2 > 0) {
		return 0, fmt.Errorf("%w: degrees of freedom (%v, %v) must be positive", ErrDomain, df1, df2)
	}
	if math.IsNaN(fs) || math.IsInf(fs, 0) || fs < 0 {
		return 0, fmt.Errorf("%w: F statistic %v must be finite and non-negative", ErrInvalidArgument, fs)
	}

	switch method {
	case "unbiased":
		return fNoncentralityUnbiased(fs, df1, df2)
	case "MLE":
		return fNoncentralityMLE(fs, df1, df2)
	case "KRS":
		return fNoncentralityKRS(fs, df1, df2)
	default:
		return 0, fmt.Errorf("%w: unknown non-centrality estimator %q", ErrInvalidArgument, method)
	}
}

// FNoncentralityEach applies an estimator elementwise over a batch of F
// statistics. Elements are independent; the first failure aborts.
func FNoncentralityEach(fs []float64, df1, df2 float64, method string) ([]float64, error) {
	out := make([]float64, len(fs))
	for i, f := range fs {
		est, err := FNoncentrality(f, df1, df2, method)
		if err != nil {
			return nil, err
		}
		out[i] = est
	}
	return out, nil
}

func fNoncentralityUnbiased(fs, df1, df2 float64) (float64, error) {
	if df2 <= 2 {
		return 0, fmt.Errorf("%w: df2 %v too small for the unbiased estimator", ErrDomain, df2)
	}
	return fs*(df2-2)*df1/df2 - df1, nil
}

// fNoncentralityMLE maximizes the non-central F log density over
// non-centrality values. For fs <= 1 the likelihood is maximized at the
// boundary, so zero is returned without searching. Otherwise the upper
// search bound is found by doubling until the log density stops
// increasing, then the maximizer runs on [0, bound].
func fNoncentralityMLE(fs, df1, df2 float64) (float64, error) {
	if fs <= 1 {
		return 0, nil
	}

	logf := func(lambda float64) float64 {
		return NoncentralF{DF1: df1, DF2: df2, Lambda: lambda}.LogPDF(fs)
	}

	hi := math.Max(1, fs*df1)
	for it := 0; logf(2*hi) > logf(hi); it++ {
		if it >= mleExpandMax {
			return 0, fmt.Errorf("%w: no likelihood bound after %d doublings (fs=%v, df1=%v, df2=%v)",
				solve.ErrConvergence, mleExpandMax, fs, df1, df2)
		}
		hi *= 2
	}

	// The maximum sits at or below 2*hi once the doubling stalls.
	lambda, err := solve.MaximizeBounded(logf, 0, 2*hi)
	if err != nil {
		return 0, err
	}
	return math.Max(0, lambda), nil
}

func fNoncentralityKRS(fs, df1, df2 float64) (float64, error) {
	if df2 <= 2 {
		return 0, fmt.Errorf("%w: df2 %v too small for the KRS estimator", ErrDomain, df2)
	}
	delta0 := (df2-2)*fs*df1/df2 - df1
	phi2 := 2 * (fs * df1 / df2) * (df2 - 2) / (df1 + 2)
	return math.Max(delta0, phi2), nil
}
