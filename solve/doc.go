// Package solve provides bounded scalar searches for inverting monotone
// curves and maximizing unimodal functions.
//
// The inversion routines exist to back out distribution parameters from
// probability statements: given a CDF evaluated as a function of its
// non-centrality parameter, InvertDecreasing finds the parameter value at
// which the curve crosses a target probability. This is the engine behind
// confidence-interval construction for both the Sharpe ratio and the
// maximal Sharpe ratio statistic.
//
// # Curve Inversion
//
// Invert a monotone non-increasing curve at a target level:
//
//	cdf := func(rho float64) float64 {
//	    return dist.NoncentralT{DF: 100, Delta: rho}.CDF(2.5)
//	}
//	upper, err := solve.InvertDecreasing(0.025, cdf, 0, 8)
//
// The bracket is widened automatically by doubling until it straddles the
// target, then narrowed by bisection. InvertIncreasing is the mirror image
// for non-decreasing curves such as a CDF in its argument.
//
// # Bounded Maximization
//
// Maximize a unimodal function on a closed interval by golden-section
// search:
//
//	best, err := solve.MaximizeBounded(logLik, 0, hi)
//
// All searches carry a hard iteration cap and a numeric tolerance; a search
// that exhausts its cap fails with ErrConvergence rather than returning a
// partial result.
package solve
