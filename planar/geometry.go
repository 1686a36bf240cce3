package planar

import (
	"github.com/wkretschmer/circlepuzzle/arcs"
	"github.com/wkretschmer/circlepuzzle/fixed"
)

// G implements geom.Geometry for the Euclidean plane. It carries no state;
// every method is a pure function of its arguments (see package geom's
// doc.go for why the trait is shaped this way).
type G struct{}

func (G) CircleEqual(a, b Circle) bool    { return a.Equal(b) }
func (G) CircleHash(c Circle) uint64      { return c.Hash() }
func (G) CircleRadius(c Circle) fixed.Fixed { return c.Radius }

func (G) EmptyArcs(c Circle) ArcsOnCircle { return ArcsOnCircle{Circle: c, UnitArcs: arcs.Empty()} }
func (G) FullArcs(c Circle) ArcsOnCircle  { return ArcsOnCircle{Circle: c, UnitArcs: arcs.FullCircle()} }
func (G) AOCCircle(a ArcsOnCircle) Circle { return a.Circle }

func (G) DiskCircle(d Circle) Circle { return d }
func (G) DiskCenter(d Circle) Point  { return d.Center }
func (G) ContainsStrictly(d Circle, p Point) bool { return containedInDisk(d, p) }

func (G) RotatePoint(p, center Point, theta fixed.Angle) Point {
	dx := p.X.Sub(center.X)
	dy := p.Y.Sub(center.Y)
	cos, sin := theta.Cos(), theta.Sin()
	return Point{
		X: center.X.Add(dx.Mul(cos).Sub(dy.Mul(sin))),
		Y: center.Y.Add(dx.Mul(sin).Add(dy.Mul(cos))),
	}
}

// RotateArcsOnCircle rotates the circle's center about center by theta
// and rotates the UnitArcs mask by theta as well: planar mask angles are
// measured from the fixed +x direction, which does not turn with the
// plane, so every angle on the rotated circle shifts by theta (§4.C).
func (g G) RotateArcsOnCircle(a ArcsOnCircle, center Point, theta fixed.Angle) ArcsOnCircle {
	rotatedCenter := g.RotatePoint(a.Circle.Center, center, theta)
	return ArcsOnCircle{
		Circle:   Circle{Center: rotatedCenter, Radius: a.Circle.Radius},
		UnitArcs: a.UnitArcs.Rotate(theta.Value()),
	}
}

func (g G) RotateArc(a Arc, center Point, theta fixed.Angle) Arc {
	rotatedCenter := g.RotatePoint(a.Circle.Center, center, theta)
	rc := Circle{Center: rotatedCenter, Radius: a.Circle.Radius}
	if a.Full {
		return FullCircleArc(rc)
	}
	return Arc{
		Circle: rc,
		Start:  fixed.NewAngle(a.Start.Value().Add(theta.Value())),
		End:    fixed.NewAngle(a.End.Value().Add(theta.Value())),
	}
}

func (G) SameCircleUnion(a, b ArcsOnCircle) ArcsOnCircle {
	return ArcsOnCircle{Circle: a.Circle, UnitArcs: a.UnitArcs.Union(b.UnitArcs)}
}

func (G) SameCircleDifference(a, b ArcsOnCircle) ArcsOnCircle {
	return ArcsOnCircle{Circle: a.Circle, UnitArcs: a.UnitArcs.Difference(b.UnitArcs)}
}

func (G) ArcsNonEmpty(a ArcsOnCircle) bool { return a.NonEmpty() }

func (G) IntersectWithDisk(a ArcsOnCircle, d Circle) ArcsOnCircle { return IntersectWithDisk(a, d) }

// IntersectionAnglesWith returns the angles, on a's own circle, at which
// a's circle crosses other's circle at a point lying within other's
// present arcs (§4.E step 1).
func (G) IntersectionAnglesWith(a, other ArcsOnCircle) []fixed.Fixed {
	raw := intersectionAngles(a.Circle, other.Circle)
	out := make([]fixed.Fixed, 0, len(raw))
	for _, angle := range raw {
		p := a.Circle.PointAt(fixed.NewAngle(angle))
		oa, err := other.Circle.AngleOf(p)
		if err != nil {
			continue
		}
		in := other.UnitArcs.Contains(oa.Value())
		if !in {
			// Contains is half-open; a crossing at the closing end of a
			// present range still lies on the (closed) arc.
			at := oa.Value().Mod2Pi()
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
	return NewArc(a.Circle, fixed.NewAngle(start), fixed.NewAngle(end))
}

func (G) SplitIntersections(a ArcsOnCircle, splits []fixed.Fixed) [][2]fixed.Fixed {
	return a.UnitArcs.SplitAtIntersections(splits)
}

func (G) ArcStartPoint(a Arc) Point { return a.StartPoint() }
func (G) ArcEndPoint(a Arc) Point   { return a.EndPoint() }
func (G) ArcMidPoint(a Arc) Point   { return a.MidPoint() }
func (G) ArcCircle(a Arc) Circle    { return a.Circle }
func (G) ArcJoin(a, b Arc) (Arc, bool) { return a.Join(b) }
func (G) ArcEqual(a, b Arc) bool    { return a.Equal(b) }
func (G) ArcHash(a Arc) uint64      { return a.Hash() }

// TangentAngleAtStart/End give the direction, measured counterclockwise
// from the positive x axis, in which the arc leaves each endpoint. On the
// plane the counterclockwise tangent to a circle at angle θ points in
// direction θ+π/2, so the arc leaves its start heading θ+π/2; at its end
// the value is θ−π/2, the direction that leads from the end point back
// along the arc (§4.E).
func (G) TangentAngleAtStart(a Arc) fixed.Fixed {
	return a.Start.Value().Add(fixed.HalfPi()).Mod2Pi()
}

func (G) TangentAngleAtEnd(a Arc) fixed.Fixed {
	return a.End.Value().Sub(fixed.HalfPi()).Mod2Pi()
}

func (G) PointsEqual(a, b Point) bool { return a.Equal(b) }
func (G) PointHash(p Point) uint64    { return p.Hash() }
