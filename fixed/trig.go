package fixed

import "math"

// Constants stored to enough precision that re-deriving them at higher
// ComputeScale only requires bumping the literal, not rederiving it from
// math.Pi (which is float64-precision only and would cap every downstream
// computation at ~15 digits regardless of ComputeScale).
const piLiteral = "3.14159265358979323846264338327950288419716939937510582097494459230781640628620899862803482534211706798"

// Pi, HalfPi, ThreePiOverTwo, TwoPi are recomputed lazily so they always
// reflect the current ComputeScale.
func Pi() Fixed            { return MustParse(truncate(piLiteral, ComputeScale)) }
func HalfPi() Fixed        { return Pi().Half() }
func ThreePiOverTwo() Fixed { return Pi().Mul(NewFromInt64(3)).Half() }
func TwoPi() Fixed         { return Pi().Mul(NewFromInt64(2)) }

func truncate(literal string, scale int) string {
	dot := -1
	for i, c := range literal {
		if c == '.' {
			dot = i
			break
		}
	}
	if dot < 0 || len(literal)-dot-1 <= scale {
		return literal
	}
	return literal[:dot+1+scale]
}

// Sqrt computes the square root via Newton's method seeded from float64,
// iterated to ComputeScale precision. A negative input saturates to 0
// rather than erroring (§7's documented defensive fallback).
func (a Fixed) Sqrt() Fixed {
	if a.Sign() <= 0 {
		return Zero
	}
	seed := math.Sqrt(a.Float64())
	if seed <= 0 || math.IsNaN(seed) || math.IsInf(seed, 0) {
		seed = 1
	}
	x := NewFromFloat64(seed)
	two := NewFromInt64(2)
	// Newton's method doubles the number of correct digits each step; a
	// float64 seed carries ~15 correct digits, so a handful of iterations
	// comfortably covers any realistic ComputeScale.
	for i := 0; i < 64; i++ {
		next := x.Add(a.Div(x)).Div(two)
		if next.rawCmp(x) == 0 {
			break
		}
		x = next
	}
	return x
}

// asinSeries sums the Taylor series for asin at 0, valid (and
// fast-converging) for |x| <= 0.5, per §4.A.
func asinSeries(x Fixed) Fixed {
	// asin(x) = sum_{n=0}^inf C(2n,n) / (4^n (2n+1)) x^(2n+1)
	term := x
	sum := x
	xSq := x.Mul(x)
	coeff := NewFromInt64(1)
	threshold := thresholdFixed()
	for n := 0; n < 400; n++ {
		k := NewFromInt64(int64(2*n + 1))
		kk := NewFromInt64(int64(2*n + 2))
		coeff = coeff.Mul(k).Div(kk)
		term = term.Mul(xSq)
		add := coeff.Mul(term).Div(NewFromInt64(int64(2*n + 3)))
		sum = sum.Add(add)
		if add.Abs().rawCmp(threshold) < 0 {
			break
		}
	}
	return sum
}

func thresholdFixed() Fixed {
	// 10^-(ComputeScale-2): small enough to be well under the precision we
	// keep, large enough to terminate quickly for any realistic scale.
	return fromUnscaled(pow10(2))
}

// Asin computes arcsine via a Taylor series near 0 and a Puiseux-style
// reduction (asin(x) = pi/2 - 2*asin(sqrt((1-x)/2))) for |x| close to 1,
// per §4.A. Out-of-domain input saturates to ±pi/2 (§7).
func (a Fixed) Asin() Fixed {
	if a.Sign() < 0 {
		return a.Neg().Asin().Neg()
	}
	one := NewFromInt64(1)
	if a.rawCmp(one) > 0 {
		return HalfPi()
	}
	half := NewFromInt64(1).Div(NewFromInt64(2))
	if a.rawCmp(half) <= 0 {
		return asinSeries(a)
	}
	// Near 1: asin(x) = pi/2 - 2*asin(sqrt((1-x)/2))
	inner := one.Sub(a).Div(NewFromInt64(2)).Sqrt()
	return HalfPi().Sub(asinSeries(inner).Mul(NewFromInt64(2)))
}

// Acos computes arccosine as pi/2 - asin(x).
func (a Fixed) Acos() Fixed { return HalfPi().Sub(a.Asin()) }

// Atan computes arctangent via atan(x) = asin(x/sqrt(1+x^2)).
func (a Fixed) Atan() Fixed {
	denom := NewFromInt64(1).Add(a.Mul(a)).Sqrt()
	return a.Div(denom).Asin()
}

// Atan2Mod2Pi computes the angle of (x, y) in [0, 2π), matching the
// semantics of atan2 but normalized to the circle's canonical range.
// atan2(0, 0) is a domain error (§7).
func Atan2Mod2Pi(y, x Fixed) (Fixed, error) {
	if y.Sign() == 0 && x.Sign() == 0 {
		return Zero, DomainError{Op: "Atan2Mod2Pi", Msg: "atan2(0,0) is undefined"}
	}
	zero := Zero
	switch {
	case x.Sign() > 0 && y.Sign() >= 0:
		return y.Div(x).Atan(), nil
	case x.Sign() > 0 && y.Sign() < 0:
		return y.Div(x).Atan().Add(TwoPi()), nil
	case x.Sign() < 0:
		return y.Div(x).Atan().Add(Pi()), nil
	case x.Sign() == 0 && y.Sign() > 0:
		return HalfPi(), nil
	default: // x == 0, y < 0
		_ = zero
		return ThreePiOverTwo(), nil
	}
}

// sinSeries sums the Taylor series for sin at 0. x is assumed already in a
// moderate range (the caller reduces mod 2π via Mod2Pi first); the series
// still converges for any finite x, just more slowly the larger |x| is.
func (a Fixed) sinSeries() Fixed {
	term := a
	sum := a
	xSq := a.Mul(a)
	threshold := thresholdFixed()
	for n := 1; n < 400; n++ {
		denom := NewFromInt64(int64(2*n) * int64(2*n+1))
		term = term.Mul(xSq).Div(denom).Neg()
		sum = sum.Add(term)
		if term.Abs().rawCmp(threshold) < 0 {
			break
		}
	}
	return sum
}

// Sin computes sine via Taylor series at 0 after reducing the argument to
// [-pi, pi] around the nearest multiple of 2π, for faster convergence.
func (a Fixed) Sin() Fixed {
	r := a.Mod2Pi()
	pi := Pi()
	if r.rawCmp(pi) > 0 {
		r = r.Sub(TwoPi())
	}
	return r.sinSeries()
}

// Cos computes cosine as sin(x + pi/2).
func (a Fixed) Cos() Fixed { return a.Add(HalfPi()).Sin() }

// Mod2Pi normalizes a into [0, 2π) by repeated subtraction/addition of 2π
// rather than exact division/modulo: a value may compare-equal to 2π (per
// the fuzzy Equal/Cmp) while its exact value is a hair under it, and an
// exact-division based reduction would disagree with that fuzzy identity
// at the boundary. The loop uses exact (raw) comparisons, so termination
// and the final range are both exact.
func (a Fixed) Mod2Pi() Fixed {
	r := a
	two := TwoPi()
	zero := Zero
	for r.rawCmp(zero) < 0 {
		r = r.Add(two)
	}
	for r.rawCmp(two) >= 0 {
		r = r.Sub(two)
	}
	return r
}
