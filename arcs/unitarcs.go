package arcs

import (
	"sort"

	"github.com/wkretschmer/circlepuzzle/fixed"
)

// Entry is one boundary of a UnitArcs list: the "present" flag applies to
// the segment starting at Boundary and running to the next entry's
// boundary (or to 2π, for the last entry).
type Entry struct {
	Boundary fixed.Fixed
	Present  bool
}

// UnitArcs is a non-empty list of Entry with a boundary of 0 first and
// strictly increasing boundaries thereafter (§3).
type UnitArcs []Entry

// Empty is the set containing no angles.
func Empty() UnitArcs { return UnitArcs{{Boundary: fixed.Zero, Present: false}} }

// FullCircle is the set containing every angle.
func FullCircle() UnitArcs { return UnitArcs{{Boundary: fixed.Zero, Present: true}} }

// inArc reports whether x lies in the half-open arc [s, e) going
// counterclockwise, wrapping past 2π back to 0 when s > e.
func inArc(s, e, x fixed.Fixed) bool {
	if s.Less(e) {
		return !x.Less(s) && x.Less(e)
	}
	return !x.Less(s) || x.Less(e)
}

// Of builds the canonical two-boundary UnitArcs representing the closed
// arc running counterclockwise from start to end. Coincident (start, end)
// under Fixed's fuzzy equality degenerates to Empty, since a zero-measure
// arc has no distinguishable interior under the closure semantics in §3.
func Of(start, end fixed.Fixed) UnitArcs {
	s := fixed.NewAngle(start).Value()
	e := fixed.NewAngle(end).Value()
	if s.Equal(e) {
		return Empty()
	}
	boundaries := []fixed.Fixed{fixed.Zero, s, e}
	sort.Slice(boundaries, func(i, j int) bool { return boundaries[i].Less(boundaries[j]) })
	var uniq []fixed.Fixed
	for _, b := range boundaries {
		if len(uniq) == 0 || !uniq[len(uniq)-1].Equal(b) {
			uniq = append(uniq, b)
		}
	}
	out := make(UnitArcs, len(uniq))
	for i, b := range uniq {
		out[i] = Entry{Boundary: b, Present: inArc(s, e, b)}
	}
	return out.simplify()
}

// simplify drops adjacent entries (excluding the wraparound pair) that
// share the same flag, per §3's "no two adjacent entries share the same
// flag" definition of a simplified list.
func (u UnitArcs) simplify() UnitArcs {
	if len(u) == 0 {
		return u
	}
	out := UnitArcs{u[0]}
	for i := 1; i < len(u); i++ {
		if u[i].Present == out[len(out)-1].Present {
			continue
		}
		out = append(out, u[i])
	}
	return out
}

// NonEmpty reports whether any entry is present.
func (u UnitArcs) NonEmpty() bool {
	for _, e := range u {
		if e.Present {
			return true
		}
	}
	return false
}

// Contains reports the present flag covering angle, per §4.B: locate the
// largest boundary <= angle and return its flag; angle == 0 exactly uses
// the last entry's flag instead (the wraparound convention).
func (u UnitArcs) Contains(angle fixed.Fixed) bool {
	a := angle.Mod2Pi()
	if a.Sign() == 0 {
		return u[len(u)-1].Present
	}
	lo, hi, best := 0, len(u)-1, 0
	for lo <= hi {
		mid := (lo + hi) / 2
		if u[mid].Boundary.Cmp(a) <= 0 {
			best = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return u[best].Present
}

// Rotate shifts every boundary by theta (mod 2π), reinserting a boundary
// at 0 so the invariant that the first entry's boundary is 0 is preserved
// (§4.B).
func (u UnitArcs) Rotate(theta fixed.Fixed) UnitArcs {
	th := theta.Mod2Pi()
	if th.Sign() == 0 {
		return u
	}
	type shiftedEntry struct {
		boundary fixed.Fixed
		present  bool
	}
	shifted := make([]shiftedEntry, len(u))
	for i, e := range u {
		shifted[i] = shiftedEntry{e.Boundary.Add(th).Mod2Pi(), e.Present}
	}
	sort.Slice(shifted, func(i, j int) bool { return shifted[i].boundary.Less(shifted[j].boundary) })

	zeroFlag := u.Contains(fixed.TwoPi().Sub(th))
	out := UnitArcs{{Boundary: fixed.Zero, Present: zeroFlag}}
	for _, s := range shifted {
		if s.boundary.Sign() == 0 {
			continue
		}
		out = append(out, Entry{Boundary: s.boundary, Present: s.present})
	}
	return out.simplify()
}
