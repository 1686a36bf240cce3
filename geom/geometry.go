package geom

import "github.com/wkretschmer/circlepuzzle/fixed"

// Geometry bundles the primitive operations the cut-set closure engine and
// the face-extraction engine need (§4.C), parameterized over a concrete
// geometry's point, circle, disk, arc, and arcs-on-circle types so the
// engines compile specialized per geometry (see doc.go).
//
// Pt  - a point in the ambient space (plane or sphere).
// Ci  - a circle (a disk's boundary); must collide under Equal/Hash the
//       way Fixed's fuzzy comparison does, since the closure engine's
//       correctness depends on equal circles landing in the same bucket.
// Dk  - a disk (the region a Move rotates); planar Dk == Ci, spherical Dk
//       is its own record since a Move's disk keeps one fixed
//       representation rather than collapsing dual reps.
// Ar  - a single arc on a circle, with concrete endpoints.
// AOC - an ArcsOnCircle: a circle paired with a UnitArcs boolean mask.
type Geometry[Pt, Ci, Dk, Ar, AOC any] interface {
	// Circle identity (§9: hash-based identity of circles).
	CircleEqual(a, b Ci) bool
	CircleHash(c Ci) uint64
	CircleRadius(c Ci) fixed.Fixed

	// ArcsOnCircle constructors anchored to a circle.
	EmptyArcs(c Ci) AOC
	FullArcs(c Ci) AOC
	AOCCircle(a AOC) Ci

	// Disks.
	DiskCircle(d Dk) Ci
	DiskCenter(d Dk) Pt
	// ContainsStrictly reports whether p lies strictly inside d's
	// interior (Disk.containsCompare == -1 in §4.C terms).
	ContainsStrictly(d Dk, p Pt) bool

	// Rotation (§4.C Rotatable). theta is a fixed.Angle rather than a bare
	// fixed.Fixed so a Move's precomputed nonzeroAngles carry their
	// memoized sin/cos through every rotation the closure engine performs
	// against them, rather than recomputing trig on every call (§3's "each
	// with sine/cosine memoized").
	RotatePoint(p Pt, center Pt, theta fixed.Angle) Pt
	RotateArcsOnCircle(a AOC, center Pt, theta fixed.Angle) AOC
	RotateArc(a Ar, center Pt, theta fixed.Angle) Ar

	// Same-circle ArcsOnCircle algebra (§4.C).
	SameCircleUnion(a, b AOC) AOC
	SameCircleDifference(a, b AOC) AOC
	ArcsNonEmpty(a AOC) bool
	IntersectWithDisk(a AOC, d Dk) AOC

	// Flattening (§4.E step 1): angles, measured on a's own circle, at
	// which a's circle meets other's circle at a point that lies inside
	// other's present arcs.
	IntersectionAnglesWith(a AOC, other AOC) []fixed.Fixed
	// MaterializeArc builds a concrete Ar for the (start, end) angle pair
	// returned by UnitArcs.SplitAtIntersections, measured in a's own
	// angular frame (spherical ArcsOnCircle carries its own zero
	// reference point; planar implicitly measures from the positive x
	// axis); (0,0) means "the whole circle."
	MaterializeArc(a AOC, start, end fixed.Fixed) Ar

	// SplitIntersections runs a's own UnitArcs.SplitAtIntersections(splits)
	// (§4.E step 1), exposed through the trait since AOC's underlying mask
	// isn't otherwise reachable outside its package.
	SplitIntersections(a AOC, splits []fixed.Fixed) [][2]fixed.Fixed

	// Arc accessors (§4.C).
	ArcStartPoint(a Ar) Pt
	ArcEndPoint(a Ar) Pt
	ArcMidPoint(a Ar) Pt
	ArcCircle(a Ar) Ci
	ArcJoin(a, b Ar) (Ar, bool)
	ArcEqual(a, b Ar) bool
	ArcHash(a Ar) uint64

	// Per-point ordering (§4.E step 2): tangent direction an arc leaves a
	// point in, depending on whether the arc starts or ends there.
	TangentAngleAtStart(a Ar) fixed.Fixed
	TangentAngleAtEnd(a Ar) fixed.Fixed

	PointsEqual(a, b Pt) bool
	PointHash(p Pt) uint64
}
