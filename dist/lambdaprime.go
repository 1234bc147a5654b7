package dist

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// LambdaPrime is the rescaled non-central t family Z = K*T, where T is
// non-central t with df degrees of freedom and non-centrality rho/K. It is
// the sampling distribution of an observed Sharpe ratio with population
// signal-to-noise ratio rho, with K = 1/sqrt(n).
//
// A LambdaPrime is valid at construction and immutable afterwards.
type LambdaPrime struct {
	df  float64
	k   float64
	rho float64
}

// NewLambdaPrime validates the parameters and returns the family member.
// df must be a positive integer and k a positive real; k small enough that
// rho/k overflows is rejected, which guards against the rescaling constant
// underflowing for very large sample sizes.
func NewLambdaPrime(df int, k, rho float64) (*LambdaPrime, error) {
	if df <= 0 {
		return nil, fmt.Errorf("%w: df %d must be positive", ErrDomain, df)
	}
	if !(k > 0) {
		return nil, fmt.Errorf("%w: rescaling constant %v must be positive", ErrDomain, k)
	}
	if nc := rho / k; math.IsNaN(nc) || math.IsInf(nc, 0) {
		return nil, fmt.Errorf("%w: non-centrality %v/%v is not finite", ErrDomain, rho, k)
	}
	return &LambdaPrime{df: float64(df), k: k, rho: rho}, nil
}

// DF returns the degrees of freedom.
func (d *LambdaPrime) DF() float64 { return d.df }

// K returns the rescaling constant.
func (d *LambdaPrime) K() float64 { return d.k }

// Rho returns the non-centrality (signal-to-noise) parameter.
func (d *LambdaPrime) Rho() float64 { return d.rho }

func (d *LambdaPrime) t() NoncentralT {
	return NoncentralT{DF: d.df, Delta: d.rho / d.k}
}

// PDF returns the density at z.
func (d *LambdaPrime) PDF(z float64) float64 {
	return d.t().PDF(z/d.k) / d.k
}

// CDF returns the probability that a draw is at or below z. It is
// non-decreasing in z and, for fixed z, non-increasing in rho.
func (d *LambdaPrime) CDF(z float64) float64 {
	return d.t().CDF(z / d.k)
}

// Survival returns the upper-tail complement of CDF.
func (d *LambdaPrime) Survival(z float64) float64 {
	return d.t().Survival(z / d.k)
}

// Quantile returns z with CDF(z) = p.
func (d *LambdaPrime) Quantile(p float64) (float64, error) {
	q, err := d.t().Quantile(p)
	if err != nil {
		return 0, err
	}
	return d.k * q, nil
}

// UpperQuantile returns z with Survival(z) = p.
func (d *LambdaPrime) UpperQuantile(p float64) (float64, error) {
	return d.Quantile(1 - p)
}

// Rand draws a single variate using src; a nil src uses the shared global
// source.
func (d *LambdaPrime) Rand(src rand.Source) float64 {
	t := NoncentralT{DF: d.df, Delta: d.rho / d.k, Src: src}
	return d.k * t.Rand()
}

// Sample draws n independent variates.
func (d *LambdaPrime) Sample(n int, src rand.Source) []float64 {
	t := NoncentralT{DF: d.df, Delta: d.rho / d.k, Src: src}
	out := make([]float64, n)
	for i := range out {
		out[i] = d.k * t.Rand()
	}
	return out
}

// PDFEach returns PDF(zs[i]) for each i.
func (d *LambdaPrime) PDFEach(zs []float64) []float64 {
	out := make([]float64, len(zs))
	for i, z := range zs {
		out[i] = d.PDF(z)
	}
	return out
}

// CDFEach returns CDF(zs[i]) for each i.
func (d *LambdaPrime) CDFEach(zs []float64) []float64 {
	out := make([]float64, len(zs))
	for i, z := range zs {
		out[i] = d.CDF(z)
	}
	return out
}

// QuantileEach returns Quantile(ps[i]) for each i, stopping at the first
// failed inversion.
func (d *LambdaPrime) QuantileEach(ps []float64) ([]float64, error) {
	out := make([]float64, len(ps))
	for i, p := range ps {
		q, err := d.Quantile(p)
		if err != nil {
			return nil, err
		}
		out[i] = q
	}
	return out, nil
}
