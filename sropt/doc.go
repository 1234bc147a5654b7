// Package sropt implements inference on the maximal Sharpe ratio of a
// portfolio, the in-sample optimum over linear combinations of several
// assets.
//
// The observed statistic is the square root of the Hotelling T-squared
// of the asset mean vector, annualized and net of an optional drag term
// for trading costs. Under normal returns T2 scaled to an F statistic
// follows a non-central F distribution whose non-centrality is n times
// the squared population maximal signal-to-noise ratio, which makes
// confidence intervals and point estimates of the population optimum
// tractable through the dist package.
//
// Construction from a returns matrix:
//
//	sr, err := sropt.FromReturns(returns, 253, 0, "yr")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(sr)
//
// FromReturns also solves for the Markowitz portfolio weights, which
// remain available through Weights. An already-computed statistic can be
// wrapped with FromValue when the underlying returns are unavailable.
//
// Inference on the population optimum:
//
//	ci, err := sr.ConfInt(0.95)
//	est, err := sr.Inference("KRS")
//
// Inference supports the estimators "unbiased", "MLE" and "KRS". The
// unbiased estimator can be negative in weak-signal samples; its sign is
// preserved through a signed square root so that averaging over repeated
// samples stays meaningful.
package sropt
