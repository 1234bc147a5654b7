// Package timeseries provides return series data structures for
// Sharpe-ratio inference.
package timeseries

import (
	"errors"
	"math"
	"time"
)

// Series represents a time-indexed series of returns or prices.
type Series struct {
	Timestamps []time.Time
	Values     []float64
	Name       string
}

// New creates a series from values alone, with synthetic daily timestamps.
func New(values []float64) *Series {
	timestamps := make([]time.Time, len(values))
	base := time.Now()
	for i := range timestamps {
		timestamps[i] = base.Add(time.Duration(i) * 24 * time.Hour)
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}
}

// NewWithTimestamps creates a series with explicit timestamps.
func NewWithTimestamps(timestamps []time.Time, values []float64) (*Series, error) {
	if len(timestamps) != len(values) {
		return nil, errors.New("timestamps and values must have the same length")
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}, nil
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Mean calculates the arithmetic mean of the series.
func (s *Series) Mean() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range s.Values {
		sum += v
	}
	return sum / float64(len(s.Values))
}

// Variance calculates the Bessel-corrected sample variance of the series.
func (s *Series) Variance() float64 {
	if len(s.Values) < 2 {
		return 0
	}
	mean := s.Mean()
	sumSq := 0.0
	for _, v := range s.Values {
		diff := v - mean
		sumSq += diff * diff
	}
	return sumSq / float64(len(s.Values)-1)
}

// Std calculates the standard deviation of the series.
func (s *Series) Std() float64 {
	return math.Sqrt(s.Variance())
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	timestamps := make([]time.Time, len(s.Timestamps))
	copy(timestamps, s.Timestamps)

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
	}
}

// ObservationsPerYear infers the annualization factor from timestamp
// spacing: 365.25 divided by the mean gap between observations in days.
func (s *Series) ObservationsPerYear() (float64, error) {
	n := len(s.Timestamps)
	if n < 2 || n != len(s.Values) {
		return 0, errors.New("series needs at least two timestamped observations to infer spacing")
	}
	span := s.Timestamps[n-1].Sub(s.Timestamps[0])
	meanGapDays := span.Hours() / 24 / float64(n-1)
	if meanGapDays <= 0 {
		return 0, errors.New("timestamps are not increasing")
	}
	return 365.25 / meanGapDays, nil
}

// LogReturns treats the series as prices and returns the series of log
// returns, one observation shorter.
func (s *Series) LogReturns() *Series {
	if len(s.Values) < 2 {
		return &Series{Values: []float64{}}
	}

	result := make([]float64, len(s.Values)-1)
	for i := 1; i < len(s.Values); i++ {
		if s.Values[i] > 0 && s.Values[i-1] > 0 {
			result[i-1] = math.Log(s.Values[i] / s.Values[i-1])
		} else {
			result[i-1] = math.NaN()
		}
	}

	timestamps := make([]time.Time, len(result))
	if len(s.Timestamps) > 1 {
		copy(timestamps, s.Timestamps[1:])
	}

	return &Series{
		Timestamps: timestamps,
		Values:     result,
		Name:       s.Name + "_logret",
	}
}

// SimpleReturns treats the series as prices and returns the series of
// simple returns, one observation shorter.
func (s *Series) SimpleReturns() *Series {
	if len(s.Values) < 2 {
		return &Series{Values: []float64{}}
	}

	result := make([]float64, len(s.Values)-1)
	for i := 1; i < len(s.Values); i++ {
		if s.Values[i-1] != 0 {
			result[i-1] = s.Values[i]/s.Values[i-1] - 1
		} else {
			result[i-1] = math.NaN()
		}
	}

	timestamps := make([]time.Time, len(result))
	if len(s.Timestamps) > 1 {
		copy(timestamps, s.Timestamps[1:])
	}

	return &Series{
		Timestamps: timestamps,
		Values:     result,
		Name:       s.Name + "_ret",
	}
}

// Excess returns a copy of the series with a constant per-observation
// offset subtracted from every value.
func (s *Series) Excess(offset float64) *Series {
	out := s.Copy()
	for i := range out.Values {
		out.Values[i] -= offset
	}
	out.Name = s.Name + "_excess"
	return out
}
