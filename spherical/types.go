package spherical

import "github.com/wkretschmer/circlepuzzle/fixed"

// Point is a unit vector on the sphere, x²+y²+z²=1 (§3).
type Point struct {
	X, Y, Z fixed.Fixed
}

// V builds a Point from raw coordinates (the caller is responsible for
// unit length; every constructor in this package that derives a new Point
// from existing unit Points preserves the invariant algebraically).
func V(x, y, z fixed.Fixed) Point { return Point{X: x, Y: y, Z: z} }

func (p Point) Add(q Point) Point {
	return Point{X: p.X.Add(q.X), Y: p.Y.Add(q.Y), Z: p.Z.Add(q.Z)}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X.Sub(q.X), Y: p.Y.Sub(q.Y), Z: p.Z.Sub(q.Z)}
}

func (p Point) Neg() Point { return Point{X: p.X.Neg(), Y: p.Y.Neg(), Z: p.Z.Neg()} }

func (p Point) Scale(k fixed.Fixed) Point {
	return Point{X: p.X.Mul(k), Y: p.Y.Mul(k), Z: p.Z.Mul(k)}
}

// Dot returns the dot product p·q.
func Dot(p, q Point) fixed.Fixed {
	return p.X.Mul(q.X).Add(p.Y.Mul(q.Y)).Add(p.Z.Mul(q.Z))
}

// Cross returns the cross product p×q.
func Cross(p, q Point) Point {
	return Point{
		X: p.Y.Mul(q.Z).Sub(p.Z.Mul(q.Y)),
		Y: p.Z.Mul(q.X).Sub(p.X.Mul(q.Z)),
		Z: p.X.Mul(q.Y).Sub(p.Y.Mul(q.X)),
	}
}

// Norm returns |p|.
func (p Point) Norm() fixed.Fixed { return Dot(p, p).Sqrt() }

// Normalize returns p scaled to unit length. Only called on vectors that
// are provably non-zero by construction (perpendicular components of
// non-parallel unit vectors), so no zero-length fallback is defined.
func (p Point) Normalize() Point { return p.Scale(fixed.NewFromInt64(1).Div(p.Norm())) }

// Equal reports whether p and q are the same point under Fixed's fuzzy,
// component-wise equality.
func (p Point) Equal(q Point) bool { return p.X.Equal(q.X) && p.Y.Equal(q.Y) && p.Z.Equal(q.Z) }

// Hash is consistent with Equal.
func (p Point) Hash() uint64 {
	return combineHash(combineHash(p.X.Hash(), p.Y.Hash()), p.Z.Hash())
}

func combineHash(a, b uint64) uint64 {
	h := a ^ 0xcbf29ce484222325
	h *= 1099511628211
	h ^= b
	h *= 1099511628211
	return h
}

// projectPerp returns the component of v orthogonal to the unit vector
// pivot.
func projectPerp(pivot, v Point) Point {
	return v.Sub(pivot.Scale(Dot(pivot, v)))
}

var (
	xAxis = Point{X: fixed.NewFromInt64(1), Y: fixed.Zero, Z: fixed.Zero}
	yAxis = Point{X: fixed.Zero, Y: fixed.NewFromInt64(1), Z: fixed.Zero}
	zero3 = Point{X: fixed.Zero, Y: fixed.Zero, Z: fixed.Zero}
)

// canonicalRef picks a deterministic unit vector orthogonal to center,
// used to seed a circle's own zero reference point (EmptyArcs, FullArcs)
// and as the local angular reference at a point for tangent-angle
// computation (§4.E spherical tangent angles).
func canonicalRef(center Point) Point {
	cand := projectPerp(center, xAxis)
	if cand.Equal(zero3) {
		cand = projectPerp(center, yAxis)
	}
	return cand.Normalize()
}

// canonicalZero returns a deterministic point on the circle (center,
// radius), used as the zero reference for freshly constructed
// ArcsOnCircle values that don't already have one to inherit.
func canonicalZero(center Point, radius fixed.Fixed) Point {
	ref := canonicalRef(center)
	return center.Scale(radius.Cos()).Add(ref.Scale(radius.Sin()))
}

// PointAtAngle returns the point on the circle (center, radius) at
// angular offset theta, measured counterclockwise (about center, by the
// right-hand rule) from zero, a point already known to lie on that
// circle.
func PointAtAngle(center Point, radius fixed.Fixed, zero Point, theta fixed.Fixed) Point {
	ref := projectPerp(center, zero).Normalize()
	other := Cross(center, ref)
	angle := fixed.NewAngle(theta)
	dir := ref.Scale(angle.Cos()).Add(other.Scale(angle.Sin()))
	return center.Scale(radius.Cos()).Add(dir.Scale(radius.Sin()))
}

// CCWAngle returns the angle, in [0, 2π), through which e is reached by
// rotating s counterclockwise about pivot (right-hand rule), per §4.C's
// "counterclockwise angle on the sphere about a pivot." Both s and e are
// projected onto the plane perpendicular to pivot; the result is obtained
// directly via atan2Mod2Pi rather than the convex-angle-plus-sign-check
// construction the spec describes, since they coincide: with ps, pe the
// perpendicular projections, atan2Mod2Pi(dot(cross(ps,pe),pivot),
// dot(ps,pe)) is exactly that angle when pivot is a unit vector.
func CCWAngle(pivot, s, e Point) (fixed.Fixed, error) {
	ps := projectPerp(pivot, s)
	pe := projectPerp(pivot, e)
	y := Dot(Cross(ps, pe), pivot)
	x := Dot(ps, pe)
	return fixed.Atan2Mod2Pi(y, x)
}

// RotatePoint rotates p about the unit-vector axis by theta, via
// Rodrigues' rotation formula (§4.C).
func RotatePoint(p, axis Point, theta fixed.Angle) Point {
	cos, sin := theta.Cos(), theta.Sin()
	term1 := p.Scale(cos)
	term2 := Cross(axis, p).Scale(sin)
	term3 := axis.Scale(Dot(axis, p).Mul(fixed.NewFromInt64(1).Sub(cos)))
	return term1.Add(term2).Add(term3)
}

// Circle is a circle on the sphere: the set of points at angular distance
// radius from center. The dual representation (−center, π−radius)
// denotes the same locus (§3); Equal/Hash below treat both as the same
// circle.
type Circle struct {
	Center Point
	Radius fixed.Fixed
}

// NewCircle builds a Circle; radius must lie in (0, π) (unchecked here).
func NewCircle(center Point, radius fixed.Fixed) Circle {
	return Circle{Center: center, Radius: radius}
}

// dual returns the other canonical representation of the same circle.
func (c Circle) dual() Circle {
	return Circle{Center: c.Center.Neg(), Radius: fixed.Pi().Sub(c.Radius)}
}

// Equal reports whether c and d denote the same circle, under either
// dual representation.
func (c Circle) Equal(d Circle) bool {
	direct := c.Center.Equal(d.Center) && c.Radius.Equal(d.Radius)
	dl := c.dual()
	opposite := dl.Center.Equal(d.Center) && dl.Radius.Equal(d.Radius)
	return direct || opposite
}

// Hash sums the hash of both canonical representations so that either
// representation of the same circle collides (§4.C, §9).
func (c Circle) Hash() uint64 {
	h1 := combineHash(c.Center.Hash(), c.Radius.Hash())
	dl := c.dual()
	h2 := combineHash(dl.Center.Hash(), dl.Radius.Hash())
	return h1 + h2
}

// Disk is the region a Move rotates: a fixed (center, radius)
// representation with no dual canonicalization, since a Move's disk is
// supplied directly by the caller and never looked up by identity (§3,
// see geom.Geometry's Dk doc).
type Disk struct {
	Center Point
	Radius fixed.Fixed
}

// NewDisk builds a Disk; radius must lie in (0, π) (unchecked here).
func NewDisk(center Point, radius fixed.Fixed) Disk {
	return Disk{Center: center, Radius: radius}
}

// Circle returns the boundary circle of d.
func (d Disk) Circle() Circle { return Circle{Center: d.Center, Radius: d.Radius} }

// ContainsStrictly reports whether p lies strictly inside d: its angular
// distance from d.Center is less than d.Radius, i.e. dot(center,p) >
// cos(radius) (§4.C's Disk.containsCompare == -1).
func (d Disk) ContainsStrictly(p Point) bool {
	return Dot(d.Center, p).Cmp(d.Radius.Cos()) > 0
}

// Arc is an arc of a Circle running counterclockwise from StartPoint to
// EndPoint. Full marks the sentinel full-circle arc, in which case
// StartPoint and EndPoint are both Circle's canonical zero and carry no
// further meaning.
type Arc struct {
	Circle               Circle
	StartPoint, EndPoint Point
	Full                 bool
}

// NewArc builds a non-full arc.
func NewArc(c Circle, start, end Point) Arc {
	return Arc{Circle: c, StartPoint: start, EndPoint: end}
}

// FullCircleArc builds the sentinel arc covering the entire circle.
func FullCircleArc(c Circle) Arc {
	z := canonicalZero(c.Center, c.Radius)
	return Arc{Circle: c, StartPoint: z, EndPoint: z, Full: true}
}

func (a Arc) MidPoint() Point {
	if a.Full {
		return a.StartPoint
	}
	theta, err := CCWAngle(a.Circle.Center, a.StartPoint, a.EndPoint)
	if err != nil {
		return a.StartPoint
	}
	return PointAtAngle(a.Circle.Center, a.Circle.Radius, a.StartPoint, theta.Half())
}

// Join merges a and b into a single arc when they share a circle and
// one's end coincides with the other's start (§3, §9).
func (a Arc) Join(b Arc) (Arc, bool) {
	if a.Full || b.Full || !a.Circle.Equal(b.Circle) {
		return Arc{}, false
	}
	if a.EndPoint.Equal(b.StartPoint) {
		return joinedOrFull(a.Circle, a.StartPoint, b.EndPoint), true
	}
	if b.EndPoint.Equal(a.StartPoint) {
		return joinedOrFull(a.Circle, b.StartPoint, a.EndPoint), true
	}
	return Arc{}, false
}

func joinedOrFull(c Circle, start, end Point) Arc {
	if start.Equal(end) {
		return FullCircleArc(c)
	}
	return NewArc(c, start, end)
}

// Equal reports whether a and b are the same arc.
func (a Arc) Equal(b Arc) bool {
	if !a.Circle.Equal(b.Circle) {
		return false
	}
	if a.Full || b.Full {
		return a.Full == b.Full
	}
	return a.StartPoint.Equal(b.StartPoint) && a.EndPoint.Equal(b.EndPoint)
}

// Hash is consistent with Equal.
func (a Arc) Hash() uint64 {
	if a.Full {
		return combineHash(a.Circle.Hash(), 0xf011c1e)
	}
	return combineHash(a.Circle.Hash(), combineHash(a.StartPoint.Hash(), a.EndPoint.Hash()))
}
