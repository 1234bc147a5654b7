// Package sharpe provides inference on the Sharpe ratio of a single
// return stream.
//
// An observed Sharpe ratio is a rescaled non-central t statistic, which is
// what makes exact inference possible: the Statistic type carries the
// observed value together with its degrees of freedom, annualization
// factor, and rescaling constant, and every operation works through the
// latent t statistic.
//
// # Construction
//
// A Statistic can be built from raw returns, from a fitted model summary,
// or from a time-indexed series:
//
//	sr, err := sharpe.FromReturns(returns, 0, 253, "yr")
//
//	// From a regression intercept with its residual scale and df
//	sr, err := sharpe.FromModel(sharpe.ModelSummary{
//	    PointEstimate: 0.0006, Scale: 0.012, ResidualDF: 251,
//	}, 0, 253, "yr")
//
//	// From a dated series, inferring the annualization factor
//	sr, err := sharpe.FromSeries(series, 0, 0, "")
//
// # Inference
//
// Standard errors come in a normal-approximation and an exact flavor:
//
//	se, err := sr.StdError("t")      // Johnson-Welch approximation
//	se, err := sr.StdError("exact")  // exact non-central t variance
//
// Confidence intervals support four methods:
//
//	ci, err := sr.ConfInt(0.95, "exact") // CDF inversion in the non-centrality
//	ci, err := sr.ConfInt(0.95, "t")     // Wald, t-method standard error
//	ci, err := sr.ConfInt(0.95, "Z")     // Wald with bias-corrected center
//	ci, err := sr.ConfInt(0.95, "F")     // exact SE with bias constant
//
// The "exact" method inverts the non-central t CDF in its non-centrality
// parameter at both tail targets, which is valid because the CDF is
// monotone decreasing in the non-centrality.
//
// # Re-annualization
//
// Reannualize re-expresses the statistic at a different epoch while
// holding the underlying t statistic fixed:
//
//	monthly, err := sr.Reannualize(12, "mo")
package sharpe
