package planar

import (
	"github.com/wkretschmer/circlepuzzle/arcs"
	"github.com/wkretschmer/circlepuzzle/fixed"
)

// Point is a coordinate pair in the Euclidean plane (§3).
type Point struct {
	X, Y fixed.Fixed
}

// P builds a Point from x, y.
func P(x, y fixed.Fixed) Point { return Point{X: x, Y: y} }

// Equal reports whether two points are the same under Fixed's fuzzy
// equality, component-wise (§4.C: equality "derived from Fixed's
// component-wise").
func (p Point) Equal(q Point) bool { return p.X.Equal(q.X) && p.Y.Equal(q.Y) }

// Hash is consistent with Equal.
func (p Point) Hash() uint64 { return combineHash(p.X.Hash(), p.Y.Hash()) }

// Circle is a circle with a center and a positive radius (§3). Disk is an
// alias: on the plane a disk's boundary and the circle it's built from
// carry no extra information.
type Circle struct {
	Center Point
	Radius fixed.Fixed
}

// Disk is the same record as Circle in the planar geometry (§3).
type Disk = Circle

// NewCircle builds a Circle; radius must be positive (unchecked here —
// the caller, typically Move construction, is responsible).
func NewCircle(center Point, radius fixed.Fixed) Circle {
	return Circle{Center: center, Radius: radius}
}

// Equal reports whether two circles are the same circle.
func (c Circle) Equal(d Circle) bool {
	return c.Center.Equal(d.Center) && c.Radius.Equal(d.Radius)
}

// Hash is consistent with Equal.
func (c Circle) Hash() uint64 { return combineHash(c.Center.Hash(), c.Radius.Hash()) }

// PointAt returns the point on c at the given angle, measured
// counterclockwise from the positive x direction through c.Center.
func (c Circle) PointAt(angle fixed.Angle) Point {
	return Point{
		X: c.Center.X.Add(c.Radius.Mul(angle.Cos())),
		Y: c.Center.Y.Add(c.Radius.Mul(angle.Sin())),
	}
}

// AngleOf returns the angle of p around c, assuming p lies on (or very
// near) c. Returns an error only if p coincides with c.Center, which
// cannot happen for a point actually on the circle (radius > 0).
func (c Circle) AngleOf(p Point) (fixed.Angle, error) {
	dx := p.X.Sub(c.Center.X)
	dy := p.Y.Sub(c.Center.Y)
	v, err := fixed.Atan2Mod2Pi(dy, dx)
	if err != nil {
		return fixed.Angle{}, err
	}
	return fixed.NewAngle(v), nil
}

// Arc is an arc of a Circle from Start to End, measured counterclockwise.
// Full marks the special case of an arc covering the entire circle (the
// (0,0) sentinel from UnitArcs.SplitAtIntersections), in which case Start
// and End are both the zero angle and carry no further meaning.
type Arc struct {
	Circle     Circle
	Start, End fixed.Angle
	Full       bool
}

// NewArc builds a non-full arc running counterclockwise from start to end.
func NewArc(c Circle, start, end fixed.Angle) Arc {
	return Arc{Circle: c, Start: start, End: end}
}

// FullCircleArc builds the sentinel arc covering the entire circle.
func FullCircleArc(c Circle) Arc {
	return Arc{Circle: c, Start: fixed.NewAngle(fixed.Zero), End: fixed.NewAngle(fixed.Zero), Full: true}
}

// StartPoint, EndPoint, MidPoint implement §4.C's Arc accessors.
func (a Arc) StartPoint() Point { return a.Circle.PointAt(a.Start) }
func (a Arc) EndPoint() Point   { return a.Circle.PointAt(a.End) }
func (a Arc) MidPoint() Point {
	if a.Full {
		return a.Circle.PointAt(fixed.NewAngle(fixed.Pi()))
	}
	span := a.End.Value().Sub(a.Start.Value()).Mod2Pi()
	mid := a.Start.Value().Add(span.Half()).Mod2Pi()
	return a.Circle.PointAt(fixed.NewAngle(mid))
}

// Join merges a and b into a single arc when they share a circle and one's
// end coincides with the other's start, folding adjacent same-circle arcs
// the way Part canonicalization requires (§3, §9).
func (a Arc) Join(b Arc) (Arc, bool) {
	if a.Full || b.Full || !a.Circle.Equal(b.Circle) {
		return Arc{}, false
	}
	if a.End.Equal(b.Start) {
		return joinedOrFull(a.Circle, a.Start, b.End), true
	}
	if b.End.Equal(a.Start) {
		return joinedOrFull(a.Circle, b.Start, a.End), true
	}
	return Arc{}, false
}

func joinedOrFull(c Circle, start, end fixed.Angle) Arc {
	if start.Equal(end) {
		return FullCircleArc(c)
	}
	return NewArc(c, start, end)
}

// Equal reports whether a and b are the same arc (same circle, same
// endpoints, orientation-sensitive). Part canonicalization does not
// reorient arcs; parts hold arcs as materialized, counterclockwise.
func (a Arc) Equal(b Arc) bool {
	if !a.Circle.Equal(b.Circle) {
		return false
	}
	if a.Full || b.Full {
		return a.Full == b.Full
	}
	return a.Start.Equal(b.Start) && a.End.Equal(b.End)
}

// Hash is consistent with Equal.
func (a Arc) Hash() uint64 {
	if a.Full {
		return combineHash(a.Circle.Hash(), 0xf011c1e)
	}
	return combineHash(a.Circle.Hash(), combineHash(a.Start.Hash(), a.End.Hash()))
}

// ArcsOnCircle pairs a Circle with a boolean mask over its angular range
// (§3).
type ArcsOnCircle struct {
	Circle   Circle
	UnitArcs arcs.UnitArcs
}

// NonEmpty reports whether any portion of the circle is present.
func (a ArcsOnCircle) NonEmpty() bool { return a.UnitArcs.NonEmpty() }

// combineHash folds two hashes into one, used throughout this package to
// build composite Point/Circle/Arc hashes from their Fixed components.
func combineHash(a, b uint64) uint64 {
	// FNV-1a style fold; cheap and good enough for bucket selection — the
	// HashMap these feed always backs hash collisions with a real Equal
	// check.
	h := a ^ 0xcbf29ce484222325
	h *= 1099511628211
	h ^= b
	h *= 1099511628211
	return h
}
