package dist

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestFNoncentralityUnbiasedClosedForm(t *testing.T) {
	// delta = fs*(df2-2)*df1/df2 - df1.
	got, err := FNoncentrality(2, 5, 52, "unbiased")
	require.NoError(t, err)
	assert.InDelta(t, 2*50*5/52.0-5, got, 1e-12)

	// Small statistics push the closed form negative; it is not clamped.
	got, err = FNoncentrality(0.1, 5, 52, "unbiased")
	require.NoError(t, err)
	assert.Less(t, got, 0.0)
}

func TestFNoncentralityMLEBoundary(t *testing.T) {
	for _, fs := range []float64{0, 0.3, 0.99, 1} {
		got, err := FNoncentrality(fs, 4, 60, "MLE")
		require.NoError(t, err)
		assert.Equal(t, 0.0, got, "fs=%v", fs)
	}
}

func TestFNoncentralityMLEFirstOrderCondition(t *testing.T) {
	for _, fs := range []float64{1.5, 2.5, 6} {
		lambda, err := FNoncentrality(fs, 5, 100, "MLE")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, lambda, 0.0)

		logf := func(l float64) float64 {
			return NoncentralF{DF1: 5, DF2: 100, Lambda: l}.LogPDF(fs)
		}
		at := logf(lambda)
		assert.GreaterOrEqual(t, at+1e-6, logf(lambda+0.05), "fs=%v", fs)
		if lambda > 0.05 {
			assert.GreaterOrEqual(t, at+1e-6, logf(lambda-0.05), "fs=%v", fs)
		}
	}
}

func TestFNoncentralityKRS(t *testing.T) {
	// KRS never falls below the unbiased estimate and never goes negative.
	for _, fs := range []float64{0.05, 0.5, 1, 2, 8} {
		krs, err := FNoncentrality(fs, 5, 52, "KRS")
		require.NoError(t, err)
		unb, err := FNoncentrality(fs, 5, 52, "unbiased")
		require.NoError(t, err)

		assert.GreaterOrEqual(t, krs, unb, "fs=%v", fs)
		assert.GreaterOrEqual(t, krs, 0.0, "fs=%v", fs)
	}
}

func TestFNoncentralityErrors(t *testing.T) {
	_, err := FNoncentrality(2, 5, 52, "bogus")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = FNoncentrality(-1, 5, 52, "unbiased")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = FNoncentrality(2, 0, 52, "unbiased")
	assert.ErrorIs(t, err, ErrDomain)

	for _, method := range []string{"unbiased", "KRS"} {
		_, err = FNoncentrality(2, 5, 2, method)
		assert.ErrorIs(t, err, ErrDomain, "method %s", method)
	}
}

func TestFNoncentralityEach(t *testing.T) {
	fs := []float64{0.5, 1.2, 3}
	got, err := FNoncentralityEach(fs, 5, 52, "KRS")
	require.NoError(t, err)
	require.Len(t, got, len(fs))
	for i, f := range fs {
		single, err := FNoncentrality(f, 5, 52, "KRS")
		require.NoError(t, err)
		assert.Equal(t, single, got[i])
	}

	_, err = FNoncentralityEach([]float64{1, -2}, 5, 52, "KRS")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestFNoncentralityUnbiasedRecoversLambda(t *testing.T) {
	// Draw noncentral F statistics with a known noncentrality and check the
	// unbiased estimator in the mean.
	df1, df2, lambda := 5.0, 50.0, 8.0
	src := rand.NewPCG(17, 23)
	znorm := distuv.Normal{Mu: math.Sqrt(lambda), Sigma: 1, Src: src}
	chiTop := distuv.ChiSquared{K: df1 - 1, Src: src}
	chiBot := distuv.ChiSquared{K: df2, Src: src}

	m := 4000
	fs := make([]float64, m)
	for i := range fs {
		z := znorm.Rand()
		fs[i] = ((chiTop.Rand() + z*z) / df1) / (chiBot.Rand() / df2)
	}

	est, err := FNoncentralityEach(fs, df1, df2, "unbiased")
	require.NoError(t, err)
	mean := 0.0
	for _, e := range est {
		mean += e
	}
	mean /= float64(m)

	assert.InDelta(t, lambda, mean, 0.7)
}
