// Package arcs implements UnitArcs, a boolean-valued set algebra over
// closed arcs on the unit circle modulo 2π (§4.B). A UnitArcs is a
// non-empty, boundary-sorted list of (boundary, present) entries: walking
// the list in order, the "present" flag of entry i tells you whether the
// half-open segment from boundary i to boundary i+1 (wrapping past the
// last entry back to 2π) belongs to the set.
//
//	full := arcs.FullCircle()
//	half := arcs.Of(fixed.Zero, fixed.Pi())
//	rotated := full.Intersection(half).Rotate(fixed.Pi().Half())
//
// Every public operation returns a simplified list (no two adjacent
// entries share the same flag) except SplitAtIntersections, which
// deliberately keeps phantom boundaries that don't change the flag so
// callers can recover exact split points.
package arcs
