package sropt

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/gosharpe/dist"
)

// returnsMatrix draws an n-by-q matrix of independent normal returns.
func returnsMatrix(n, q int, mu, sigma float64, src rand.Source) *mat.Dense {
	norm := distuv.Normal{Mu: mu, Sigma: sigma, Src: src}
	data := make([]float64, n*q)
	for i := range data {
		data[i] = norm.Rand()
	}
	return mat.NewDense(n, q, data)
}

func TestFromReturnsConsistency(t *testing.T) {
	x := returnsMatrix(500, 4, 0.001, 0.01, rand.NewPCG(2, 4))
	sr, err := FromReturns(x, 253, 0, "yr")
	require.NoError(t, err)

	assert.Equal(t, 4, sr.NumAssets)
	assert.Equal(t, 500, sr.NumObs)
	assert.Equal(t, "yr", sr.Epoch)

	t2 := sr.HotellingT2()
	assert.Greater(t, t2, 0.0)
	assert.InDelta(t, math.Sqrt(t2/500)*math.Sqrt(253), sr.Value, 1e-10)

	w, err := sr.Weights()
	require.NoError(t, err)
	assert.Len(t, w, 4)
}

func TestFromReturnsValidation(t *testing.T) {
	// Fewer observations than assets.
	x := returnsMatrix(3, 4, 0, 0.01, rand.NewPCG(1, 1))
	_, err := FromReturns(x, 253, 0, "yr")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	x = returnsMatrix(10, 2, 0, 0.01, rand.NewPCG(1, 2))
	_, err = FromReturns(x, 0, 0, "yr")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	// A repeated column makes the covariance singular.
	data := make([]float64, 20*2)
	norm := distuv.Normal{Mu: 0, Sigma: 0.01, Src: rand.NewPCG(1, 3)}
	for i := 0; i < 20; i++ {
		v := norm.Rand()
		data[2*i] = v
		data[2*i+1] = v
	}
	_, err = FromReturns(mat.NewDense(20, 2, data), 253, 0, "yr")
	assert.ErrorIs(t, err, dist.ErrDomain)
}

func TestFromValue(t *testing.T) {
	sr, err := FromValue(1.2, 5, 1000, 0.1, 253, "yr")
	require.NoError(t, err)

	zeta := (1.2 + 0.1) / math.Sqrt(253)
	assert.InDelta(t, 1000*zeta*zeta, sr.HotellingT2(), 1e-10)

	_, err = sr.Weights()
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = FromValue(1.2, 5, 5, 0, 253, "yr")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = FromValue(1.2, 0, 10, 0, 253, "yr")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = FromValue(1.2, 2, 10, 0, 0, "yr")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestHotellingT2Clamp(t *testing.T) {
	// Drag pushes the net value negative; the reconstructed optimum floors
	// at zero instead of going imaginary.
	sr, err := FromValue(-0.5, 3, 100, 0.2, 253, "yr")
	require.NoError(t, err)
	assert.Equal(t, 0.0, sr.HotellingT2())
}

func TestInferenceZeroSignal(t *testing.T) {
	x := returnsMatrix(6000, 6, 0, 0.01, rand.NewPCG(31, 7))
	sr, err := FromReturns(x, 253, 0, "yr")
	require.NoError(t, err)

	unbiased, err := sr.Inference("unbiased")
	require.NoError(t, err)
	assert.Less(t, math.Abs(unbiased), 1.5)

	mle, err := sr.Inference("MLE")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, mle, 0.0)

	krs, err := sr.Inference("KRS")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, krs, 0.0)
	assert.GreaterOrEqual(t, krs, unbiased)

	_, err = sr.Inference("bayes")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestInferenceShrinksRawValue(t *testing.T) {
	x := returnsMatrix(2000, 5, 0.002, 0.01, rand.NewPCG(8, 15))
	sr, err := FromReturns(x, 253, 0, "yr")
	require.NoError(t, err)

	// The raw optimum overfits; the moment-based estimators pull it
	// toward zero.
	unbiased, err := sr.Inference("unbiased")
	require.NoError(t, err)
	assert.Less(t, unbiased, sr.Value)

	krs, err := sr.Inference("KRS")
	require.NoError(t, err)
	assert.Less(t, krs, sr.Value)

	// The MLE tracks the unbiased estimate closely at this signal level.
	mle, err := sr.Inference("MLE")
	require.NoError(t, err)
	assert.InDelta(t, unbiased, mle, 0.3)
}

func TestConfIntInvertsTheCDF(t *testing.T) {
	x := returnsMatrix(2000, 5, 0.002, 0.01, rand.NewPCG(8, 15))
	sr, err := FromReturns(x, 253, 0, "yr")
	require.NoError(t, err)

	ci, err := sr.ConfInt(0.95)
	require.NoError(t, err)
	assert.LessOrEqual(t, ci.Lower, ci.Upper)
	assert.GreaterOrEqual(t, ci.Lower, 0.0)

	// Map a bound back to its noncentrality and check the tail target.
	f, df1, df2 := sr.fstat()
	toLambda := func(bound float64) float64 {
		zeta := bound / math.Sqrt(253)
		return 2000 * zeta * zeta
	}
	up := dist.NoncentralF{DF1: df1, DF2: df2, Lambda: toLambda(ci.Upper)}.CDF(f)
	assert.InDelta(t, 0.025, up, 1e-6)
	if ci.Lower > 0 {
		lo := dist.NoncentralF{DF1: df1, DF2: df2, Lambda: toLambda(ci.Lower)}.CDF(f)
		assert.InDelta(t, 0.975, lo, 1e-6)
	}
}

func TestConfIntWeakSignalPinsLowerAtZero(t *testing.T) {
	// An optimum near the central F median leaves the lower bound at zero.
	sr, err := FromValue(0.45, 6, 6000, 0, 253, "yr")
	require.NoError(t, err)

	ci, err := sr.ConfInt(0.95)
	require.NoError(t, err)
	assert.Equal(t, 0.0, ci.Lower)
	assert.Greater(t, ci.Upper, 0.0)

	// A zero optimum pins both bounds.
	flat, err := FromValue(0, 6, 6000, 0, 253, "yr")
	require.NoError(t, err)
	ci, err = flat.ConfInt(0.95)
	require.NoError(t, err)
	assert.Equal(t, 0.0, ci.Lower)
	assert.Equal(t, 0.0, ci.Upper)
}

func TestConfIntValidation(t *testing.T) {
	sr, err := FromValue(1.0, 3, 100, 0, 253, "yr")
	require.NoError(t, err)

	for _, level := range []float64{0, 1, -1, 2} {
		_, err := sr.ConfInt(level)
		assert.ErrorIs(t, err, ErrInvalidArgument, "level %v", level)
	}
}

func TestPValue(t *testing.T) {
	strong := returnsMatrix(2000, 5, 0.002, 0.01, rand.NewPCG(8, 15))
	sr, err := FromReturns(strong, 253, 0, "yr")
	require.NoError(t, err)
	assert.Less(t, sr.PValue(), 1e-6)

	weak := returnsMatrix(6000, 6, 0, 0.01, rand.NewPCG(31, 7))
	sr, err = FromReturns(weak, 253, 0, "yr")
	require.NoError(t, err)
	p := sr.PValue()
	assert.GreaterOrEqual(t, p, 0.0)
	assert.LessOrEqual(t, p, 1.0)
}

func TestReannualizeRoundTrip(t *testing.T) {
	sr, err := FromValue(1.4, 4, 500, 0.1, 253, "yr")
	require.NoError(t, err)

	monthly, err := sr.Reannualize(12, "mo")
	require.NoError(t, err)
	assert.Equal(t, "mo", monthly.Epoch)
	// The underlying T-squared is annualization-invariant.
	assert.InDelta(t, sr.HotellingT2(), monthly.HotellingT2(), 1e-10)

	back, err := monthly.Reannualize(253, "yr")
	require.NoError(t, err)
	assert.InDelta(t, sr.Value, back.Value, 1e-12)
	assert.InDelta(t, sr.Drag, back.Drag, 1e-12)

	_, err = sr.Reannualize(-3, "")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
