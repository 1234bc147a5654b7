package dist

import (
	"math"
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestNoncentralFCentralCase(t *testing.T) {
	central := distuv.F{D1: 4, D2: 30}
	d := NoncentralF{DF1: 4, DF2: 30, Lambda: 0}

	for _, x := range []float64{0.1, 0.5, 1, 2, 5} {
		assert.InDelta(t, central.CDF(x), d.CDF(x), 1e-12, "cdf at %v", x)
		assert.InDelta(t, central.Prob(x), d.PDF(x), 1e-12, "pdf at %v", x)
	}
	assert.Equal(t, 0.0, d.CDF(-1))
	assert.Equal(t, 0.0, d.CDF(0))
}

func TestNoncentralFCDFMonotone(t *testing.T) {
	d := NoncentralF{DF1: 5, DF2: 40, Lambda: 6}

	prev := 0.0
	for x := 0.05; x <= 12; x += 0.2 {
		p := d.CDF(x)
		if p < prev-1e-12 || p < 0 || p > 1 {
			t.Fatalf("CDF misbehaved at x=%v: %v -> %v", x, prev, p)
		}
		prev = p
	}

	// Non-increasing in lambda for fixed x.
	prev = 1.0
	for lambda := 0.0; lambda <= 60; lambda += 1.5 {
		p := NoncentralF{DF1: 5, DF2: 40, Lambda: lambda}.CDF(2)
		if p > prev+1e-12 {
			t.Fatalf("CDF increased in lambda at %v: %v -> %v", lambda, prev, p)
		}
		prev = p
	}
}

func TestNoncentralFAgainstSquaredT(t *testing.T) {
	// T noncentral t(df, delta) implies T^2 noncentral F(1, df, delta^2).
	delta := 1.5
	nct := NoncentralT{DF: 12, Delta: delta}
	ncf := NoncentralF{DF1: 1, DF2: 12, Lambda: delta * delta}

	for _, x := range []float64{0.5, 1, 1.8, 3} {
		want := nct.CDF(x) - nct.CDF(-x)
		assert.InDelta(t, want, ncf.CDF(x*x), 1e-9, "x=%v", x)
	}
}

func TestNoncentralFPDFMatchesCDF(t *testing.T) {
	d := NoncentralF{DF1: 6, DF2: 50, Lambda: 4}
	a, b := 0.5, 2.5
	n := 400
	h := (b - a) / float64(n)
	sum := d.PDF(a) + d.PDF(b)
	for i := 1; i < n; i++ {
		x := a + float64(i)*h
		if i%2 == 1 {
			sum += 4 * d.PDF(x)
		} else {
			sum += 2 * d.PDF(x)
		}
	}
	integral := sum * h / 3

	assert.InDelta(t, d.CDF(b)-d.CDF(a), integral, 1e-7)
}

func TestNoncentralFLargeLambda(t *testing.T) {
	// Mass should sit near the mean (df1+lambda)*df2/(df1*(df2-2)).
	d := NoncentralF{DF1: 6, DF2: 6000, Lambda: 2000}
	mean := (6 + 2000.0) * 6000 / (6 * 5998)
	assert.Less(t, d.CDF(mean/2), 0.01)
	assert.Greater(t, d.CDF(mean*1.5), 0.99)
	assert.InDelta(t, 0.5, d.CDF(mean), 0.2)
}

func TestNoncentralFSamplingKS(t *testing.T) {
	df1, df2, lambda := 5.0, 40.0, 3.0
	d := NoncentralF{DF1: df1, DF2: df2, Lambda: lambda}

	src := rand.NewPCG(3, 9)
	znorm := distuv.Normal{Mu: math.Sqrt(lambda), Sigma: 1, Src: src}
	chiTop := distuv.ChiSquared{K: df1 - 1, Src: src}
	chiBot := distuv.ChiSquared{K: df2, Src: src}

	n := 100000
	draws := make([]float64, n)
	for i := range draws {
		z := znorm.Rand()
		top := (chiTop.Rand() + z*z) / df1
		draws[i] = top / (chiBot.Rand() / df2)
	}
	sort.Float64s(draws)

	sup := 0.0
	for i, x := range draws {
		p := d.CDF(x)
		if diff := math.Abs(p - float64(i)/float64(n)); diff > sup {
			sup = diff
		}
		if diff := math.Abs(p - float64(i+1)/float64(n)); diff > sup {
			sup = diff
		}
	}
	if sup > 0.01 {
		t.Errorf("KS distance %v between empirical and analytic CDF", sup)
	}
}
