package sropt

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/gosharpe/dist"
	"github.com/sartorproj/gosharpe/sharpe"
	"github.com/sartorproj/gosharpe/solve"
)

// ErrInvalidArgument indicates a dimension mismatch, malformed confidence
// level, or unrecognized estimator name.
var ErrInvalidArgument = errors.New("invalid argument")

// Statistic is an observed maximal Sharpe ratio over q assets, annualized
// and net of a drag term. It is the square root of the per-observation
// Hotelling T-squared divided by the sample size, scaled by sqrt(OPE),
// minus Drag.
type Statistic struct {
	Value     float64 // annualized maximal Sharpe, net of drag
	NumAssets int     // number of assets q
	NumObs    int     // number of observations n
	Drag      float64 // annualized drag subtracted from the raw optimum
	OPE       float64 // observations per epoch (annualization factor)
	Epoch     string  // epoch label, e.g. "yr"

	t2      float64
	hasT2   bool
	weights []float64
}

// FromReturns builds the statistic from an n-by-q matrix of per-observation
// asset returns. The Markowitz weights solve Sigma w = mu with the
// Bessel-corrected sample covariance, giving T2 = n * mu' w. Requires
// n > q and a positive definite covariance.
func FromReturns(x *mat.Dense, ope, drag float64, epoch string) (*Statistic, error) {
	n, q := x.Dims()
	if q < 1 {
		return nil, fmt.Errorf("%w: need at least 1 asset, got %d", ErrInvalidArgument, q)
	}
	if n <= q {
		return nil, fmt.Errorf("%w: need more observations than assets, got %d observations for %d assets",
			ErrInvalidArgument, n, q)
	}
	if !(ope > 0) {
		return nil, fmt.Errorf("%w: observations per epoch %v must be positive", ErrInvalidArgument, ope)
	}

	mu := mat.NewVecDense(q, nil)
	col := make([]float64, n)
	for j := 0; j < q; j++ {
		mat.Col(col, j, x)
		mu.SetVec(j, stat.Mean(col, nil))
	}

	var sigma mat.SymDense
	stat.CovarianceMatrix(&sigma, x, nil)

	var chol mat.Cholesky
	if ok := chol.Factorize(&sigma); !ok {
		return nil, fmt.Errorf("%w: sample covariance is not positive definite", dist.ErrDomain)
	}
	w := mat.NewVecDense(q, nil)
	if err := chol.SolveVecTo(w, mu); err != nil {
		return nil, fmt.Errorf("%w: covariance solve failed: %v", dist.ErrDomain, err)
	}

	t2 := float64(n) * mat.Dot(mu, w)
	zeta := math.Sqrt(t2 / float64(n))

	return &Statistic{
		Value:     zeta*math.Sqrt(ope) - drag,
		NumAssets: q,
		NumObs:    n,
		Drag:      drag,
		OPE:       ope,
		Epoch:     epochOrDefault(epoch),
		t2:        t2,
		hasT2:     true,
		weights:   w.RawVector().Data,
	}, nil
}

// FromValue wraps an already-observed maximal Sharpe ratio. The underlying
// T-squared is reconstructed on demand, so a value driven negative by drag
// is treated as a zero optimum there.
func FromValue(value float64, numAssets, numObs int, drag, ope float64, epoch string) (*Statistic, error) {
	if numAssets < 1 {
		return nil, fmt.Errorf("%w: need at least 1 asset, got %d", ErrInvalidArgument, numAssets)
	}
	if numObs <= numAssets {
		return nil, fmt.Errorf("%w: need more observations than assets, got %d observations for %d assets",
			ErrInvalidArgument, numObs, numAssets)
	}
	if !(ope > 0) {
		return nil, fmt.Errorf("%w: observations per epoch %v must be positive", ErrInvalidArgument, ope)
	}
	return &Statistic{
		Value:     value,
		NumAssets: numAssets,
		NumObs:    numObs,
		Drag:      drag,
		OPE:       ope,
		Epoch:     epochOrDefault(epoch),
	}, nil
}

func epochOrDefault(epoch string) string {
	if epoch == "" {
		return "yr"
	}
	return epoch
}

// Weights returns a copy of the Markowitz portfolio weights solved at
// construction. Only statistics built by FromReturns carry them.
func (s *Statistic) Weights() ([]float64, error) {
	if s.weights == nil {
		return nil, fmt.Errorf("%w: statistic was not built from a returns matrix", ErrInvalidArgument)
	}
	out := make([]float64, len(s.weights))
	copy(out, s.weights)
	return out, nil
}

// HotellingT2 returns the Hotelling T-squared of the asset means. When the
// statistic was built from a returns matrix the exact value is cached;
// otherwise it is reconstructed from Value, clamping the drag-adjusted
// optimum at zero.
func (s *Statistic) HotellingT2() float64 {
	if s.hasT2 {
		return s.t2
	}
	zeta := (s.Value + s.Drag) / math.Sqrt(s.OPE)
	if zeta < 0 {
		zeta = 0
	}
	return float64(s.NumObs) * zeta * zeta
}

// fstat converts the T-squared to its F statistic on (q, n-q) degrees of
// freedom.
func (s *Statistic) fstat() (f, df1, df2 float64) {
	n := float64(s.NumObs)
	df1 = float64(s.NumAssets)
	df2 = n - df1
	f = s.HotellingT2() * df2 / (df1 * (n - 1))
	return f, df1, df2
}

// Inference estimates the population maximal Sharpe ratio, annualized and
// net of drag. method selects the noncentrality estimator: "unbiased",
// "MLE" or "KRS". The unbiased estimate can be negative; its sign survives
// through a signed square root.
func (s *Statistic) Inference(method string) (float64, error) {
	f, df1, df2 := s.fstat()
	lambda, err := dist.FNoncentrality(f, df1, df2, method)
	if err != nil {
		if errors.Is(err, dist.ErrInvalidArgument) {
			return 0, fmt.Errorf("%w: unknown inference method %q", ErrInvalidArgument, method)
		}
		return 0, err
	}

	zeta2 := lambda / float64(s.NumObs)
	zeta := math.Copysign(math.Sqrt(math.Abs(zeta2)), zeta2)
	return zeta*math.Sqrt(s.OPE) - s.Drag, nil
}

// ConfInt returns a two-sided confidence interval for the population
// maximal Sharpe ratio by inverting the non-central F CDF in its
// noncentrality at both tail targets. Bounds pinned at a zero
// noncentrality map to -Drag.
func (s *Statistic) ConfInt(level float64) (sharpe.ConfidenceInterval, error) {
	if !(level > 0 && level < 1) {
		return sharpe.ConfidenceInterval{}, fmt.Errorf("%w: confidence level %v not in (0,1)", ErrInvalidArgument, level)
	}

	alpha := 1 - level
	ci := sharpe.ConfidenceInterval{LevelLo: alpha / 2, LevelHi: 1 - alpha/2}
	f, df1, df2 := s.fstat()

	cdf := func(lambda float64) float64 {
		return dist.NoncentralF{DF1: df1, DF2: df2, Lambda: lambda}.CDF(f)
	}

	// cdf is non-increasing in lambda with its maximum at zero, so a pinned
	// bound shows up as the tail target being unreachable from lambda = 0.
	atZero := cdf(0)

	var upper float64
	if atZero > alpha/2 {
		guess := math.Max(1, df1*f)
		u, err := solve.InvertDecreasing(alpha/2, cdf, 0, guess)
		if err != nil {
			return sharpe.ConfidenceInterval{}, err
		}
		upper = u
	}

	var lower float64
	if upper > 0 && atZero > 1-alpha/2 {
		l, err := solve.InvertDecreasing(1-alpha/2, cdf, 0, upper)
		if err != nil {
			return sharpe.ConfidenceInterval{}, err
		}
		lower = l
	}

	n := float64(s.NumObs)
	scale := math.Sqrt(s.OPE)
	ci.Lower = math.Sqrt(lower/n)*scale - s.Drag
	ci.Upper = math.Sqrt(upper/n)*scale - s.Drag
	return ci, nil
}

// PValue returns the p-value against the hypothesis that all assets have
// zero signal-to-noise, from the upper tail of the central F statistic.
func (s *Statistic) PValue() float64 {
	f, df1, df2 := s.fstat()
	return 1 - distuv.F{D1: df1, D2: df2}.CDF(f)
}

// Reannualize returns a copy of the statistic re-expressed at a new
// annualization factor. The drag rescales along with the value so the
// underlying T-squared is unchanged. An empty newEpoch keeps the current
// label.
func (s *Statistic) Reannualize(newOpe float64, newEpoch string) (*Statistic, error) {
	if !(newOpe > 0) {
		return nil, fmt.Errorf("%w: observations per epoch %v must be positive", ErrInvalidArgument, newOpe)
	}
	ratio := math.Sqrt(newOpe / s.OPE)
	out := *s
	out.Value = s.Value * ratio
	out.Drag = s.Drag * ratio
	out.OPE = newOpe
	if newEpoch != "" {
		out.Epoch = newEpoch
	}
	return &out, nil
}

// String formats the statistic for display.
func (s *Statistic) String() string {
	return fmt.Sprintf("SRopt: %.4f/%s (assets=%d, df=%d, p=%.4f)",
		s.Value, s.Epoch, s.NumAssets, s.NumObs-s.NumAssets, s.PValue())
}
