package arcs

import (
	"sort"

	"github.com/wkretschmer/circlepuzzle/fixed"
)

// mergeRaw walks a and b's boundary lists in lockstep, emitting one entry
// per distinct boundary with the flag given by keep(currentA, currentB).
// It does not simplify: callers that want a public, simplified set
// operation wrap this in simplify(); SplitAtIntersections deliberately
// skips that step to keep phantom split boundaries around.
func mergeRaw(a, b UnitArcs, keep func(pa, pb bool) bool) UnitArcs {
	curA, curB := a[0].Present, b[0].Present
	i, j := 0, 0
	var out UnitArcs
	for i < len(a) || j < len(b) {
		var boundary fixed.Fixed
		takeA, takeB := false, false
		switch {
		case i >= len(a):
			boundary, takeB = b[j].Boundary, true
		case j >= len(b):
			boundary, takeA = a[i].Boundary, true
		case a[i].Boundary.Equal(b[j].Boundary):
			boundary, takeA, takeB = a[i].Boundary, true, true
		case a[i].Boundary.Less(b[j].Boundary):
			boundary, takeA = a[i].Boundary, true
		default:
			boundary, takeB = b[j].Boundary, true
		}
		if takeA {
			curA = a[i].Present
			i++
		}
		if takeB {
			curB = b[j].Present
			j++
		}
		out = append(out, Entry{Boundary: boundary, Present: keep(curA, curB)})
	}
	return out
}

func mergeOp(a, b UnitArcs, keep func(pa, pb bool) bool) UnitArcs {
	return mergeRaw(a, b, keep).simplify()
}

// Union returns the set of angles present in a or b.
func (a UnitArcs) Union(b UnitArcs) UnitArcs {
	return mergeOp(a, b, func(pa, pb bool) bool { return pa || pb })
}

// Intersection returns the set of angles present in both a and b.
func (a UnitArcs) Intersection(b UnitArcs) UnitArcs {
	return mergeOp(a, b, func(pa, pb bool) bool { return pa && pb })
}

// Difference returns the set of angles present in a but not b.
func (a UnitArcs) Difference(b UnitArcs) UnitArcs {
	return mergeOp(a, b, func(pa, pb bool) bool { return pa && !pb })
}

// SymmetricDifference returns the set of angles present in exactly one of
// a, b.
func (a UnitArcs) SymmetricDifference(b UnitArcs) UnitArcs {
	return mergeOp(a, b, func(pa, pb bool) bool { return pa != pb })
}

func dedupeSorted(xs []fixed.Fixed) []fixed.Fixed {
	sort.Slice(xs, func(i, j int) bool { return xs[i].Less(xs[j]) })
	var out []fixed.Fixed
	for _, x := range xs {
		if len(out) == 0 || !out[len(out)-1].Equal(x) {
			out = append(out, x)
		}
	}
	return out
}

func containsZero(splits []fixed.Fixed) bool {
	for _, s := range splits {
		if fixed.NewAngle(s).Value().Sign() == 0 {
			return true
		}
	}
	return false
}

// SplitAtIntersections enumerates the present arcs of u as concrete
// (start, end) angle pairs, introducing a phantom boundary at every angle
// in splits (even where the present flag doesn't change there) so callers
// can recover exact split points for arrangement construction (§4.B,
// §4.E step 1).
//
// Two special cases apply: a present arc covering the entire circle with
// no splits is reported as the single pair (0, 0) meaning "full circle";
// and a present arc that straddles angle 0 — with 0 itself not among the
// requested splits — is reported as one wraparound pair rather than two.
func (u UnitArcs) SplitAtIntersections(splits []fixed.Fixed) [][2]fixed.Fixed {
	boundarySet := make([]fixed.Fixed, 0, len(splits)+1)
	boundarySet = append(boundarySet, fixed.Zero)
	for _, s := range splits {
		boundarySet = append(boundarySet, fixed.NewAngle(s).Value())
	}
	boundarySet = dedupeSorted(boundarySet)

	phantom := make(UnitArcs, len(boundarySet))
	for i, b := range boundarySet {
		phantom[i] = Entry{Boundary: b, Present: false}
	}

	merged := mergeRaw(u, phantom, func(pa, pb bool) bool { return pa })

	if len(splits) == 0 && len(merged) == 1 && merged[0].Present {
		return [][2]fixed.Fixed{{fixed.Zero, fixed.Zero}}
	}

	n := len(merged)
	var segments [][2]fixed.Fixed
	for i := 0; i < n; i++ {
		if !merged[i].Present {
			continue
		}
		start := merged[i].Boundary
		end := fixed.TwoPi()
		if i+1 < n {
			end = merged[i+1].Boundary
		}
		segments = append(segments, [2]fixed.Fixed{start, end})
	}

	if len(segments) >= 2 && merged[0].Present && merged[n-1].Present && !containsZero(splits) {
		first := segments[0]
		last := segments[len(segments)-1]
		segments = segments[1 : len(segments)-1]
		segments = append(segments, [2]fixed.Fixed{last[0], first[1]})
	}
	return segments
}
