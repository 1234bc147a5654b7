package sharpe

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/gosharpe/dist"
	"github.com/sartorproj/gosharpe/solve"
	"github.com/sartorproj/gosharpe/timeseries"
)

// ErrInvalidArgument indicates an unrecognized method name, malformed
// confidence level, or degenerate input data.
var ErrInvalidArgument = errors.New("invalid argument")

// Statistic is an observed annualized Sharpe ratio together with the
// bookkeeping needed for inference on it. The invariant
//
//	Value == t * Rescale * sqrt(OPE)
//
// ties the value to the latent t statistic t. Fields are fixed at
// construction; the only sanctioned transform is Reannualize, which
// returns an updated copy.
type Statistic struct {
	Value    float64 // annualized Sharpe ratio
	DF       int     // degrees of freedom of the latent t statistic
	RiskFree float64 // per-observation risk-free offset used at construction
	OPE      float64 // observations per epoch (annualization factor)
	Rescale  float64 // rescaling constant, typically 1/sqrt(n)
	Epoch    string  // epoch label, e.g. "yr"
}

// ConfidenceInterval is a two-sided interval with its nominal tail levels.
// Lower <= Upper whenever the search converged.
type ConfidenceInterval struct {
	Lower   float64
	Upper   float64
	LevelLo float64
	LevelHi float64
}

// ModelSummary carries the fitted-model inputs for FromModel: a point
// estimate (e.g. a regression intercept), the residual scale, and the
// residual degrees of freedom.
type ModelSummary struct {
	PointEstimate float64
	Scale         float64
	ResidualDF    int
}

// FromReturns builds the statistic from raw per-observation returns using
// Bessel-corrected moments: value = (mean - riskFree)/stddev * sqrt(ope).
func FromReturns(x []float64, riskFree, ope float64, epoch string) (*Statistic, error) {
	if len(x) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 observations, got %d", ErrInvalidArgument, len(x))
	}
	if !(ope > 0) {
		return nil, fmt.Errorf("%w: observations per epoch %v must be positive", ErrInvalidArgument, ope)
	}
	mu := stat.Mean(x, nil)
	sigma := math.Sqrt(stat.Variance(x, nil))
	if !(sigma > 0) {
		return nil, fmt.Errorf("%w: returns have zero dispersion", ErrInvalidArgument)
	}

	n := float64(len(x))
	return &Statistic{
		Value:    (mu - riskFree) / sigma * math.Sqrt(ope),
		DF:       len(x) - 1,
		RiskFree: riskFree,
		OPE:      ope,
		Rescale:  1 / math.Sqrt(n),
		Epoch:    epochOrDefault(epoch),
	}, nil
}

// FromModel builds the statistic from a fitted model summary. The implied
// sample size is the residual degrees of freedom plus one.
func FromModel(m ModelSummary, riskFree, ope float64, epoch string) (*Statistic, error) {
	if m.ResidualDF < 1 {
		return nil, fmt.Errorf("%w: residual degrees of freedom %d must be positive", ErrInvalidArgument, m.ResidualDF)
	}
	if !(m.Scale > 0) {
		return nil, fmt.Errorf("%w: model scale %v must be positive", ErrInvalidArgument, m.Scale)
	}
	if !(ope > 0) {
		return nil, fmt.Errorf("%w: observations per epoch %v must be positive", ErrInvalidArgument, ope)
	}

	n := float64(m.ResidualDF + 1)
	return &Statistic{
		Value:    (m.PointEstimate - riskFree) / m.Scale * math.Sqrt(ope),
		DF:       m.ResidualDF,
		RiskFree: riskFree,
		OPE:      ope,
		Rescale:  1 / math.Sqrt(n),
		Epoch:    epochOrDefault(epoch),
	}, nil
}

// FromSeries builds the statistic from a time-indexed return series. When
// ope is not positive the annualization factor is inferred from the
// timestamp spacing.
func FromSeries(s *timeseries.Series, riskFree, ope float64, epoch string) (*Statistic, error) {
	if ope <= 0 {
		inferred, err := s.ObservationsPerYear()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
		ope = inferred
	}
	return FromReturns(s.Values, riskFree, ope, epoch)
}

func epochOrDefault(epoch string) string {
	if epoch == "" {
		return "yr"
	}
	return epoch
}

// TStat returns the latent t statistic, Value / (Rescale * sqrt(OPE)).
func (s *Statistic) TStat() float64 {
	return s.Value / (s.Rescale * math.Sqrt(s.OPE))
}

// srScale converts t-statistic units back to annualized Sharpe units.
func (s *Statistic) srScale() float64 {
	return s.Rescale * math.Sqrt(s.OPE)
}

// tbias is the multiplier c with E[T] = c * delta for a non-central t on
// df degrees of freedom. It exceeds one and tends to one as df grows.
func tbias(df float64) float64 {
	lg1, _ := math.Lgamma((df - 1) / 2)
	lg2, _ := math.Lgamma(df / 2)
	return math.Sqrt(df/2) * math.Exp(lg1-lg2)
}

// StdError returns the standard error of the statistic in annualized
// Sharpe units. Method "t" is the Johnson-Welch normal approximation
// sqrt(1 + t^2/(2 df)); "exact" uses the non-central t variance with the
// observed t plugged in for the non-centrality, and needs df > 2.
func (s *Statistic) StdError(method string) (float64, error) {
	t := s.TStat()
	df := float64(s.DF)

	switch method {
	case "t":
		return math.Sqrt(1+t*t/(2*df)) * s.srScale(), nil
	case "exact":
		if s.DF <= 2 {
			return 0, fmt.Errorf("%w: df %d too small for the exact variance", dist.ErrDomain, s.DF)
		}
		c := tbias(df)
		v := df/(df-2)*(1+t*t) - t*t*c*c
		return math.Sqrt(v) * s.srScale(), nil
	default:
		return 0, fmt.Errorf("%w: unknown standard error method %q", ErrInvalidArgument, method)
	}
}

// ConfInt returns a two-sided confidence interval at the given level.
//
// Method "exact" inverts the non-central t CDF in its non-centrality at
// both tail targets and rescales the bounds to Sharpe units. Methods "t"
// and "Z" are Wald intervals on the t-method standard error, with "Z"
// debiasing the center by the exact small-sample mean multiplier. Method
// "F" combines that bias constant with the exact-method standard error.
func (s *Statistic) ConfInt(level float64, method string) (ConfidenceInterval, error) {
	if !(level > 0 && level < 1) {
		return ConfidenceInterval{}, fmt.Errorf("%w: confidence level %v not in (0,1)", ErrInvalidArgument, level)
	}

	alpha := 1 - level
	ci := ConfidenceInterval{LevelLo: alpha / 2, LevelHi: 1 - alpha/2}
	t := s.TStat()
	df := float64(s.DF)

	switch method {
	case "exact":
		cdf := func(rho float64) float64 {
			return dist.NoncentralT{DF: df, Delta: rho}.CDF(t)
		}
		width := 4 + math.Abs(t)
		upper, err := solve.InvertDecreasing(alpha/2, cdf, t-width, t+width)
		if err != nil {
			return ConfidenceInterval{}, err
		}
		lower, err := solve.InvertDecreasing(1-alpha/2, cdf, t-width, upper)
		if err != nil {
			return ConfidenceInterval{}, err
		}
		ci.Lower = lower * s.srScale()
		ci.Upper = upper * s.srScale()
	case "t":
		z := distuv.UnitNormal.Quantile(1 - alpha/2)
		se, err := s.StdError("t")
		if err != nil {
			return ConfidenceInterval{}, err
		}
		ci.Lower = s.Value - z*se
		ci.Upper = s.Value + z*se
	case "Z":
		z := distuv.UnitNormal.Quantile(1 - alpha/2)
		se, err := s.StdError("t")
		if err != nil {
			return ConfidenceInterval{}, err
		}
		center := s.Value / tbias(df)
		ci.Lower = center - z*se
		ci.Upper = center + z*se
	case "F":
		z := distuv.UnitNormal.Quantile(1 - alpha/2)
		se, err := s.StdError("exact")
		if err != nil {
			return ConfidenceInterval{}, err
		}
		c := tbias(df)
		center := s.Value / c
		ci.Lower = center - z*se/c
		ci.Upper = center + z*se/c
	default:
		return ConfidenceInterval{}, fmt.Errorf("%w: unknown confidence interval method %q", ErrInvalidArgument, method)
	}

	return ci, nil
}

// PValue returns the two-sided p-value against the hypothesis of zero
// signal-to-noise, from the central t tail of the latent statistic.
func (s *Statistic) PValue() float64 {
	t := s.TStat()
	td := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(s.DF)}
	p := 2 * td.CDF(-math.Abs(t))
	return math.Min(1, p)
}

// Reannualize returns a copy of the statistic re-expressed at a new
// annualization factor, holding the latent t statistic fixed. An empty
// newEpoch keeps the current label.
func (s *Statistic) Reannualize(newOpe float64, newEpoch string) (*Statistic, error) {
	if !(newOpe > 0) {
		return nil, fmt.Errorf("%w: observations per epoch %v must be positive", ErrInvalidArgument, newOpe)
	}
	out := *s
	out.Value = s.Value * math.Sqrt(newOpe/s.OPE)
	out.OPE = newOpe
	if newEpoch != "" {
		out.Epoch = newEpoch
	}
	return &out, nil
}

// String formats the statistic for display.
func (s *Statistic) String() string {
	return fmt.Sprintf("SR: %.4f/%s (df=%d, p=%.4f)", s.Value, s.Epoch, s.DF, s.PValue())
}
