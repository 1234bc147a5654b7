// Package timeseries provides return series data structures and utilities.
//
// This package includes the Series type for time-indexed returns or prices,
// conversion between price and return series, CSV loading, and inference of
// the annualization factor from timestamp spacing.
//
// # Creating Series
//
// Create a series from returns:
//
//	series := timeseries.New(returns)
//
//	// With explicit timestamps
//	series, err := timeseries.NewWithTimestamps(timestamps, returns)
//
//	// From a CSV file with "date" and "return" columns
//	series, err := timeseries.LoadCSV("returns.csv", nil)
//
// # Prices to Returns
//
// A series of prices converts to returns directly:
//
//	rets := prices.LogReturns()     // log price relatives
//	rets := prices.SimpleReturns()  // arithmetic returns
//	excess := rets.Excess(0.0001)   // remove a per-observation offset
//
// # Annualization
//
// When the observations-per-epoch factor is not known, it is inferred from
// the timestamps as 365.25 over the mean gap in days:
//
//	ope, err := series.ObservationsPerYear()
//	// daily data -> ~365, weekly -> ~52, monthly -> ~12
//
// This is what sharpe.FromSeries uses when no explicit factor is supplied.
package timeseries
