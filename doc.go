// Package gosharpe provides statistical inference on Sharpe-ratio-type statistics.
//
// GoSharpe is a Go package for point estimation, distribution functions,
// standard errors, confidence intervals, and non-centrality estimation for
// the Sharpe ratio, the maximal Sharpe ratio of the Markowitz portfolio, and
// the related non-central t, F, and Hotelling T-squared distributions.
//
// # Features
//
//   - Lambda-prime (rescaled non-central t) distribution: density, CDF,
//     quantile, and sampling
//   - Non-central t and non-central F distribution functions
//   - Sharpe ratio statistics with exact and approximate standard errors
//     and confidence intervals
//   - Maximal Sharpe ratio (Hotelling T-squared) statistics for portfolios
//   - Unbiased, maximum-likelihood, and KRS shrinkage estimators of the
//     non-centrality parameter
//
// # Quick Start
//
// Build a Sharpe statistic from daily returns and invert its confidence
// interval:
//
//	sr, _ := sharpe.FromReturns(returns, 0, 253, "yr")
//	ci, _ := sr.ConfInt(0.95, "exact")
//
// Build a maximal Sharpe statistic from a matrix of portfolio returns:
//
//	opt, _ := sropt.FromReturns(x, 253, 0, "yr")
//	zeta, _ := opt.Inference("KRS")
//
// # Packages
//
// The library is organized into the following packages:
//
//   - dist: non-central t, non-central F, and lambda-prime distributions,
//     plus non-centrality estimators
//   - solve: monotone curve inversion and bounded 1-D maximization
//   - sharpe: Sharpe ratio statistics and inference
//   - sropt: maximal Sharpe ratio (optimal portfolio) statistics
//   - timeseries: return series ingestion and annualization
//
// # References
//
//   - Johnson, N.L., & Welch, B.L. (1940). Applications of the non-central
//     t-distribution
//   - Kubokawa, T., Robert, C.P., & Saleh, A.K.Md.E. (1993). Estimation of
//     noncentrality parameters
//   - Lecoutre, B. (2007). Another look at confidence intervals for the
//     noncentral t distribution
package gosharpe
