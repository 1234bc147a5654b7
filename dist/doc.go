// Package dist provides the non-central distribution families behind
// Sharpe-ratio inference.
//
// The central distributions (normal, Student's t, F, chi-squared, beta)
// come from gonum's distuv package; this package builds the non-central
// members on top of them: the non-central t, the non-central F, and the
// lambda-prime family, a rescaled non-central t that is the sampling
// distribution of an observed Sharpe ratio.
//
// # Lambda-Prime Distribution
//
// A lambda-prime variable is Z = K*T where T is non-central t with df
// degrees of freedom and non-centrality rho/K. K is a fixed positive
// rescaling constant tied to sample size, typically 1/sqrt(n):
//
//	lp, err := dist.NewLambdaPrime(252, 1/math.Sqrt(253), 1.2)
//	p := lp.CDF(1.0)
//	z, err := lp.Quantile(0.975)
//	draws := lp.Sample(1000, nil)
//
// The CDF is monotone non-increasing in rho for a fixed argument; that
// monotonicity is what confidence-interval inversion relies on.
//
// # Non-Centrality Estimation
//
// Estimate the non-centrality parameter of a non-central F distribution
// from an observed statistic:
//
//	lambda, err := dist.FNoncentrality(fs, 6, 5994, "KRS")
//
// Three estimators are available: "unbiased" (closed form, may be
// negative), "MLE" (bounded likelihood maximization, zero at the boundary
// for statistics at or below one), and "KRS" (Kubokawa-Robert-Saleh
// shrinkage, never negative). FNoncentralityEach applies an estimator
// elementwise over a batch of statistics.
package dist
