package solve

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrConvergence indicates a bounded search exhausted its iteration cap
	// before satisfying its tolerance.
	ErrConvergence = errors.New("search exceeded iteration cap")

	// ErrInvalidArgument indicates a malformed target or bracket.
	ErrInvalidArgument = errors.New("invalid argument")
)

const (
	tol       = 1e-10
	maxExpand = 64
	maxBisect = 200
	maxGolden = 256
)

// InvertDecreasing finds x with f(x) = target for a monotone non-increasing
// f. The initial bracket [lo, hi] is widened by doubling on either side
// until f(lo) >= target >= f(hi), then narrowed by bisection. target must
// lie in (0, 1).
func InvertDecreasing(target float64, f func(float64) float64, lo, hi float64) (float64, error) {
	if !(target > 0 && target < 1) {
		return 0, fmt.Errorf("%w: target probability %v not in (0,1)", ErrInvalidArgument, target)
	}
	return invert(target, f, lo, hi, true)
}

// InvertIncreasing finds x with f(x) = target for a monotone non-decreasing
// f, widening the bracket and bisecting as InvertDecreasing does. Unlike
// InvertDecreasing the target is not restricted to (0, 1), so the routine
// can invert any monotone curve.
func InvertIncreasing(target float64, f func(float64) float64, lo, hi float64) (float64, error) {
	return invert(target, f, lo, hi, false)
}

func invert(target float64, f func(float64) float64, lo, hi float64, decreasing bool) (float64, error) {
	if !(hi > lo) {
		return 0, fmt.Errorf("%w: bracket [%v, %v] is empty", ErrInvalidArgument, lo, hi)
	}

	// Orient so that g is non-increasing with g(lo) >= target >= g(hi).
	g := f
	if !decreasing {
		g = func(x float64) float64 { return -f(x) }
		target = -target
	}

	width := hi - lo
	for it := 0; g(hi) > target; it++ {
		if it >= maxExpand {
			return 0, fmt.Errorf("%w: no upper bracket after %d doublings (hi=%v, target=%v)",
				ErrConvergence, maxExpand, hi, target)
		}
		hi += width
		width *= 2
	}
	width = hi - lo
	for it := 0; g(lo) < target; it++ {
		if it >= maxExpand {
			return 0, fmt.Errorf("%w: no lower bracket after %d doublings (lo=%v, target=%v)",
				ErrConvergence, maxExpand, lo, target)
		}
		lo -= width
		width *= 2
	}

	for it := 0; it < maxBisect; it++ {
		mid := 0.5 * (lo + hi)
		if hi-lo <= tol*(1+math.Abs(mid)) {
			return mid, nil
		}
		if g(mid) >= target {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 0, fmt.Errorf("%w: bisection did not reach tolerance in %d iterations on [%v, %v]",
		ErrConvergence, maxBisect, lo, hi)
}

// MaximizeBounded finds the maximizer of a unimodal f on [lo, hi] by
// golden-section search.
func MaximizeBounded(f func(float64) float64, lo, hi float64) (float64, error) {
	if !(hi > lo) {
		return 0, fmt.Errorf("%w: bracket [%v, %v] is empty", ErrInvalidArgument, lo, hi)
	}

	const invPhi = 0.6180339887498949
	a, b := lo, hi
	x1 := b - invPhi*(b-a)
	x2 := a + invPhi*(b-a)
	f1, f2 := f(x1), f(x2)

	for it := 0; it < maxGolden; it++ {
		if b-a <= tol*(1+math.Abs(a)+math.Abs(b)) {
			return 0.5 * (a + b), nil
		}
		if f1 >= f2 {
			b, x2, f2 = x2, x1, f1
			x1 = b - invPhi*(b-a)
			f1 = f(x1)
		} else {
			a, x1, f1 = x1, x2, f2
			x2 = a + invPhi*(b-a)
			f2 = f(x2)
		}
	}
	return 0, fmt.Errorf("%w: golden section did not reach tolerance in %d iterations on [%v, %v]",
		ErrConvergence, maxGolden, a, b)
}
