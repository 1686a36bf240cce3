package planar

import (
	"github.com/wkretschmer/circlepuzzle/arcs"
	"github.com/wkretschmer/circlepuzzle/fixed"
)

// CircleIntersections returns the (up to two) points where c1 and c2
// cross, following the classical two-circle intersection construction
// (§4.C): with d the distance between centers, a = (d²+r1²−r2²)/(2d) is
// the distance from c1's center to the radical line along the center
// axis, and h = √(r1²−a²) is the half-chord length. ok is false when the
// circles are concentric (d == 0) or don't cross (h² < 0).
func CircleIntersections(c1, c2 Circle) (p1, p2 Point, ok bool) {
	dx := c2.Center.X.Sub(c1.Center.X)
	dy := c2.Center.Y.Sub(c1.Center.Y)
	d2 := dx.Mul(dx).Add(dy.Mul(dy))
	if d2.Sign() == 0 {
		return Point{}, Point{}, false
	}
	d := d2.Sqrt()

	r1, r2 := c1.Radius, c2.Radius
	a := d2.Add(r1.Mul(r1)).Sub(r2.Mul(r2)).Div(d.Add(d))
	h2 := r1.Mul(r1).Sub(a.Mul(a))
	if h2.Sign() < 0 {
		return Point{}, Point{}, false
	}
	h := h2.Sqrt()

	mx := c1.Center.X.Add(dx.Mul(a).Div(d))
	my := c1.Center.Y.Add(dy.Mul(a).Div(d))

	ox := dy.Mul(h).Div(d)
	oy := dx.Mul(h).Div(d)

	p1 = Point{X: mx.Sub(ox), Y: my.Add(oy)}
	p2 = Point{X: mx.Add(ox), Y: my.Sub(oy)}
	return p1, p2, true
}

// intersectionAngles returns the angles (on c, counterclockwise) at which c
// meets other: two angles for a crossing, one when the circles are
// tangent, nil when they don't meet.
func intersectionAngles(c, other Circle) []fixed.Fixed {
	p1, p2, ok := CircleIntersections(c, other)
	if !ok {
		return nil
	}
	a1, err1 := c.AngleOf(p1)
	a2, err2 := c.AngleOf(p2)
	if err1 != nil || err2 != nil {
		return nil
	}
	if a1.Equal(a2) {
		return []fixed.Fixed{a1.Value()}
	}
	return []fixed.Fixed{a1.Value(), a2.Value()}
}

// containedInDisk reports whether p lies strictly inside d (§4.C's
// Disk.containsCompare == -1: the squared distance to the center is less
// than the squared radius).
func containedInDisk(d Disk, p Point) bool {
	dx := p.X.Sub(d.Center.X)
	dy := p.Y.Sub(d.Center.Y)
	dist2 := dx.Mul(dx).Add(dy.Mul(dy))
	r2 := d.Radius.Mul(d.Radius)
	return dist2.Cmp(r2) < 0
}

// IntersectWithDisk restricts a's mask to the portion of a.Circle that
// lies inside d (§4.C). When a.Circle and d are the same circle, a
// boundary is never "inside" an open disk, so the result is empty. When
// the circles are concentric or don't cross, the whole circle is either
// inside or outside d; a single sample point resolves which.
func IntersectWithDisk(a ArcsOnCircle, d Disk) ArcsOnCircle {
	if a.Circle.Equal(d) {
		return ArcsOnCircle{Circle: a.Circle, UnitArcs: arcs.Empty()}
	}
	splits := intersectionAngles(a.Circle, d)
	if len(splits) < 2 {
		sample := a.Circle.PointAt(fixed.NewAngle(fixed.Zero))
		if containedInDisk(d, sample) {
			return a
		}
		return ArcsOnCircle{Circle: a.Circle, UnitArcs: arcs.Empty()}
	}

	candidate := arcs.Of(splits[0], splits[1])
	span := splits[1].Sub(splits[0]).Mod2Pi()
	midAngle := splits[0].Add(span.Half()).Mod2Pi()
	mid := a.Circle.PointAt(fixed.NewAngle(midAngle))

	inside := candidate
	if !containedInDisk(d, mid) {
		inside = arcs.FullCircle().Difference(candidate)
	}
	return ArcsOnCircle{Circle: a.Circle, UnitArcs: inside.Intersection(a.UnitArcs)}
}
