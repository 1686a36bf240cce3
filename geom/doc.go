// Package geom declares the geometry trait the closure and face-extraction
// engines (package puzzle) are parameterized over, plus the hash-bucketed
// map those engines use for "equal circles collide" identity (§9).
//
// # Why a trait instead of an interface with dynamic geometry values
//
// Both supported geometries (planar, spherical) share the same algebra —
// rotate a disk boundary, intersect arcs with a disk, merge arcs on a
// shared circle, flatten an arrangement, walk faces — but differ in what a
// Point/Circle/Arc actually *is* (a 2D coordinate pair vs. a unit vector in
// R^3 with a dual canonical representation). Rather than define one
// concrete Point/Circle/Arc type wide enough for both (which would leak
// spherical-only fields like the dual-representation hash into the planar
// path, or vice versa), Geometry is a generic interface parameterized by
// the five associated value types (Pt, Ci, Dk, Ar, AOC). puzzle.Closure
// and the face-extraction helpers (flatten, extractParts) are generic over
// the same five type parameters and take the Geometry as an interface
// value, so Point/Circle values are handled at their concrete types with
// no per-call type switch.
//
// A Geometry implementation is expected to be a zero-size value (see
// planar.G, spherical.G): all of its methods are pure functions of their
// arguments, so the "trait object" itself carries no state. Calls to its
// methods go through the geom.Geometry interface; the Go compiler does
// not always devirtualize them.
package geom
