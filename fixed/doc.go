// Package fixed implements a deterministic fixed-point decimal scalar with
// fuzzy equality and hashing, plus the small set of hand-rolled
// transcendental functions the geometry layers need (sqrt, asin/acos/atan,
// atan2 normalized to [0, 2π), sin/cos).
//
// # Why fixed-point
//
// The circle-puzzle closure engine depends on structurally equal circles
// colliding as map keys. float64 can't give that guarantee across a long
// chain of rotations and intersections, so Fixed keeps every value as a
// math/big.Int scaled to ComputeScale decimal places and only ever rounds
// down to CompareScale for the purposes of equality, ordering, and hashing:
//
//	x := fixed.MustParse("1.5")
//	y := fixed.MustParse("1.5000000000000000000000000000000000001")
//	x.Equal(y) // true: both round to the same value at CompareScale
//
// # Quick start
//
//	a := fixed.MustParse("0.5")
//	b := fixed.MustParse("0.25")
//	sum := a.Add(b)      // exact at ComputeScale, no rounding needed
//	prod := a.Mul(b)     // rounded half-even to ComputeScale
//	theta := fixed.NewAngle(fixed.MustParse("1.0"))
//	s := theta.Sin()     // memoized after first call
//
// # Offset
//
// A process-lifetime random Offset (see Offset) is folded into every
// comparison, so that two values landing on opposite sides of a rounding
// cutoff agree on which side they're on with overwhelming probability. The
// offset is sampled once per process and must never be mutated afterward:
// doing so would silently invalidate every hash and equality computed so
// far.
package fixed
