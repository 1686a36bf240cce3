package spherical

import (
	"github.com/wkretschmer/circlepuzzle/arcs"
	"github.com/wkretschmer/circlepuzzle/fixed"
)

// ArcsOnCircle pairs a Circle with a boolean mask over its angular range,
// measured counterclockwise from Zero, a point on Circle (§3). Unlike the
// planar case, there's no global angular convention on the sphere, so
// each ArcsOnCircle carries its own reference point.
type ArcsOnCircle struct {
	Circle   Circle
	Zero     Point
	UnitArcs arcs.UnitArcs
}

func (a ArcsOnCircle) NonEmpty() bool { return a.UnitArcs.NonEmpty() }

// AngleOf returns p's angle around a.Circle, measured counterclockwise
// from a.Zero.
func (a ArcsOnCircle) AngleOf(p Point) (fixed.Fixed, error) {
	return CCWAngle(a.Circle.Center, a.Zero, p)
}

// mirror reinterprets u's mask as if measured in the opposite rotational
// sense (θ ↦ 2π−θ around the same zero point), needed when reconciling
// two ArcsOnCircle values for the same circle whose Centers are each
// other's negation (the two dual representations traverse the circle in
// opposite senses; §4.C).
func mirror(u arcs.UnitArcs) arcs.UnitArcs {
	n := len(u)
	if n == 0 {
		return u
	}
	twoPi := fixed.TwoPi()
	type reflected struct {
		boundary fixed.Fixed
		fromIdx  int
	}
	rs := make([]reflected, n)
	for i, e := range u {
		rs[i] = reflected{boundary: twoPi.Sub(e.Boundary).Mod2Pi(), fromIdx: i}
	}
	for i := 1; i < n; i++ {
		for j := i; j > 0 && rs[j].boundary.Less(rs[j-1].boundary); j-- {
			rs[j], rs[j-1] = rs[j-1], rs[j]
		}
	}
	out := make(arcs.UnitArcs, n)
	for newIdx, r := range rs {
		prev := (r.fromIdx - 1 + n) % n
		out[newIdx] = arcs.Entry{Boundary: r.boundary, Present: u[prev].Present}
	}
	return out.Union(arcs.Empty())
}

// reconcileToFrame returns b's mask expressed in a's (Circle, Zero)
// frame: mirrored first if a and b use opposite dual representations of
// the same circle, then rotated so its zero aligns with a.Zero (§4.C).
func reconcileToFrame(a, b ArcsOnCircle) arcs.UnitArcs {
	bArcs := b.UnitArcs
	bZero := b.Zero
	if !a.Circle.Center.Equal(b.Circle.Center) {
		bArcs = mirror(bArcs)
	}
	delta, err := CCWAngle(a.Circle.Center, bZero, a.Zero)
	if err != nil {
		return bArcs
	}
	return bArcs.Rotate(fixed.Zero.Sub(delta))
}
