package spherical

import (
	"github.com/wkretschmer/circlepuzzle/arcs"
	"github.com/wkretschmer/circlepuzzle/fixed"
)

// G implements geom.Geometry for the unit sphere. Like planar.G it is
// zero-size and stateless.
type G struct{}

func (G) CircleEqual(a, b Circle) bool      { return a.Equal(b) }
func (G) CircleHash(c Circle) uint64        { return c.Hash() }
func (G) CircleRadius(c Circle) fixed.Fixed { return c.Radius }

func (G) EmptyArcs(c Circle) ArcsOnCircle {
	return ArcsOnCircle{Circle: c, Zero: canonicalZero(c.Center, c.Radius), UnitArcs: arcs.Empty()}
}

func (G) FullArcs(c Circle) ArcsOnCircle {
	return ArcsOnCircle{Circle: c, Zero: canonicalZero(c.Center, c.Radius), UnitArcs: arcs.FullCircle()}
}

func (G) AOCCircle(a ArcsOnCircle) Circle { return a.Circle }

func (G) DiskCircle(d Disk) Circle { return d.Circle() }
func (G) DiskCenter(d Disk) Point  { return d.Center }
func (G) ContainsStrictly(d Disk, p Point) bool { return d.ContainsStrictly(p) }

func (G) RotatePoint(p, center Point, theta fixed.Angle) Point { return RotatePoint(p, center, theta) }

// RotateArcsOnCircle rigidly rotates the circle's center and zero
// reference about center by theta; the mask itself, expressed relative
// to the circle's own center and zero, is unaffected by a rigid rotation
// of the ambient embedding, because the zero reference turns with it
// (§4.C).
func (g G) RotateArcsOnCircle(a ArcsOnCircle, center Point, theta fixed.Angle) ArcsOnCircle {
	rc := Circle{Center: RotatePoint(a.Circle.Center, center, theta), Radius: a.Circle.Radius}
	rz := RotatePoint(a.Zero, center, theta)
	return ArcsOnCircle{Circle: rc, Zero: rz, UnitArcs: a.UnitArcs}
}

func (g G) RotateArc(a Arc, center Point, theta fixed.Angle) Arc {
	rc := Circle{Center: RotatePoint(a.Circle.Center, center, theta), Radius: a.Circle.Radius}
	if a.Full {
		return FullCircleArc(rc)
	}
	return Arc{
		Circle:     rc,
		StartPoint: RotatePoint(a.StartPoint, center, theta),
		EndPoint:   RotatePoint(a.EndPoint, center, theta),
	}
}

func (G) SameCircleUnion(a, b ArcsOnCircle) ArcsOnCircle {
	return ArcsOnCircle{Circle: a.Circle, Zero: a.Zero, UnitArcs: a.UnitArcs.Union(reconcileToFrame(a, b))}
}

func (G) SameCircleDifference(a, b ArcsOnCircle) ArcsOnCircle {
	return ArcsOnCircle{Circle: a.Circle, Zero: a.Zero, UnitArcs: a.UnitArcs.Difference(reconcileToFrame(a, b))}
}

func (G) ArcsNonEmpty(a ArcsOnCircle) bool { return a.NonEmpty() }

func (G) IntersectWithDisk(a ArcsOnCircle, d Disk) ArcsOnCircle { return IntersectWithDisk(a, d) }

// IntersectionAnglesWith returns the angles, on a's own circle (relative
// to a.Zero), at which a's circle crosses other's circle at a point
// lying within other's present arcs (§4.E step 1).
func (G) IntersectionAnglesWith(a, other ArcsOnCircle) []fixed.Fixed {
	raw := circleIntersectionAngles(a.Circle, a.Zero, other.Circle)
	out := make([]fixed.Fixed, 0, len(raw))
	for _, angle := range raw {
		p := PointAtAngle(a.Circle.Center, a.Circle.Radius, a.Zero, angle)
		oa, err := other.AngleOf(p)
		if err != nil {
			continue
		}
		in := other.UnitArcs.Contains(oa)
		if !in {
			// Contains is half-open; a crossing at the closing end of a
			// present range still lies on the (closed) arc.
			at := oa.Mod2Pi()
			for i, e := range other.UnitArcs {
				prev := other.UnitArcs[(i+len(other.UnitArcs)-1)%len(other.UnitArcs)]
				if prev.Present && e.Boundary.Equal(at) {
					in = true
				}
			}
		}
		if in {
			out = append(out, angle)
		}
	}
	return out
}

func (G) MaterializeArc(a ArcsOnCircle, start, end fixed.Fixed) Arc {
	if start.Sign() == 0 && end.Sign() == 0 {
		return FullCircleArc(a.Circle)
	}
	sp := PointAtAngle(a.Circle.Center, a.Circle.Radius, a.Zero, start)
	ep := PointAtAngle(a.Circle.Center, a.Circle.Radius, a.Zero, end)
	return NewArc(a.Circle, sp, ep)
}

func (G) SplitIntersections(a ArcsOnCircle, splits []fixed.Fixed) [][2]fixed.Fixed {
	return a.UnitArcs.SplitAtIntersections(splits)
}

func (G) ArcStartPoint(a Arc) Point    { return a.StartPoint }
func (G) ArcEndPoint(a Arc) Point      { return a.EndPoint }
func (G) ArcMidPoint(a Arc) Point      { return a.MidPoint() }
func (G) ArcCircle(a Arc) Circle       { return a.Circle }
func (G) ArcJoin(a, b Arc) (Arc, bool) { return a.Join(b) }
func (G) ArcEqual(a, b Arc) bool       { return a.Equal(b) }
func (G) ArcHash(a Arc) uint64         { return a.Hash() }

// TangentAngleAtStart/End return the counterclockwise angle (about the
// endpoint, from a deterministic local reference direction) to the arc's
// supporting circle's center, plus π/2 at the start and minus π/2 at the
// end. This is the direction the arc leaves that endpoint turned by π; the
// shift is the same for every arc at a point, so the cyclic order of arcs
// around the point is that of their leaving directions (§4.E).
func (G) TangentAngleAtStart(a Arc) fixed.Fixed {
	base, err := CCWAngle(a.StartPoint, canonicalRef(a.StartPoint), a.Circle.Center)
	if err != nil {
		base = fixed.Zero
	}
	return base.Add(fixed.HalfPi()).Mod2Pi()
}

func (G) TangentAngleAtEnd(a Arc) fixed.Fixed {
	base, err := CCWAngle(a.EndPoint, canonicalRef(a.EndPoint), a.Circle.Center)
	if err != nil {
		base = fixed.Zero
	}
	return base.Sub(fixed.HalfPi()).Mod2Pi()
}

func (G) PointsEqual(a, b Point) bool { return a.Equal(b) }
func (G) PointHash(p Point) uint64    { return p.Hash() }
