package spherical

import (
	"github.com/wkretschmer/circlepuzzle/arcs"
	"github.com/wkretschmer/circlepuzzle/fixed"
)

// CircleIntersections returns the (up to two) points where c1 and c2
// cross (§4.C): with q = c1.Center·c2.Center, q²=1 means the centers are
// equal or antipodal (no transverse intersection); otherwise x0 = a·c1 +
// b·c2 is the point in the plane spanned by both centers that lies on both
// circles' planes, and the crossings are x0 ± t·(c1×c2) when |x0| < 1.
func CircleIntersections(c1, c2 Circle) (p1, p2 Point, ok bool) {
	q := Dot(c1.Center, c2.Center)
	oneMinusQ2 := fixed.NewFromInt64(1).Sub(q.Mul(q))
	if oneMinusQ2.Sign() == 0 {
		return Point{}, Point{}, false
	}

	cosR1, cosR2 := c1.Radius.Cos(), c2.Radius.Cos()
	a := cosR1.Sub(q.Mul(cosR2)).Div(oneMinusQ2)
	b := cosR2.Sub(q.Mul(cosR1)).Div(oneMinusQ2)
	x0 := c1.Center.Scale(a).Add(c2.Center.Scale(b))

	x0Norm2 := Dot(x0, x0)
	if x0Norm2.Cmp(fixed.NewFromInt64(1)) >= 0 {
		return Point{}, Point{}, false
	}

	cp := Cross(c1.Center, c2.Center)
	cpNorm2 := Dot(cp, cp)
	if cpNorm2.Sign() == 0 {
		return Point{}, Point{}, false
	}

	tSquared := fixed.NewFromInt64(1).Sub(x0Norm2).Div(cpNorm2)
	t := tSquared.Sqrt()

	offset := cp.Scale(t)
	return x0.Sub(offset), x0.Add(offset), true
}

func circleIntersectionAngles(c Circle, zero Point, other Circle) []fixed.Fixed {
	p1, p2, ok := CircleIntersections(c, other)
	if !ok {
		return nil
	}
	a1, err1 := CCWAngle(c.Center, zero, p1)
	a2, err2 := CCWAngle(c.Center, zero, p2)
	if err1 != nil || err2 != nil {
		return nil
	}
	if a1.Equal(a2) {
		return []fixed.Fixed{a1}
	}
	return []fixed.Fixed{a1, a2}
}

// IntersectWithDisk restricts a's mask to the portion of a.Circle lying
// inside d (§4.C). Mirrors the planar algorithm: same-circle boundary is
// never strictly inside an open disk; a non-crossing circle is wholly
// inside or outside, resolved by a single sample point.
func IntersectWithDisk(a ArcsOnCircle, d Disk) ArcsOnCircle {
	dCircle := d.Circle()
	if a.Circle.Equal(dCircle) {
		return ArcsOnCircle{Circle: a.Circle, Zero: a.Zero, UnitArcs: arcs.Empty()}
	}
	splits := circleIntersectionAngles(a.Circle, a.Zero, dCircle)
	if len(splits) < 2 {
		if d.ContainsStrictly(a.Zero) {
			return a
		}
		return ArcsOnCircle{Circle: a.Circle, Zero: a.Zero, UnitArcs: arcs.Empty()}
	}

	candidate := arcs.Of(splits[0], splits[1])
	span := splits[1].Sub(splits[0]).Mod2Pi()
	midAngle := splits[0].Add(span.Half()).Mod2Pi()
	mid := PointAtAngle(a.Circle.Center, a.Circle.Radius, a.Zero, midAngle)

	inside := candidate
	if !d.ContainsStrictly(mid) {
		inside = arcs.FullCircle().Difference(candidate)
	}
	return ArcsOnCircle{Circle: a.Circle, Zero: a.Zero, UnitArcs: inside.Intersection(a.UnitArcs)}
}
