package puzzle

import (
	"sort"

	"github.com/wkretschmer/circlepuzzle/fixed"
	"github.com/wkretschmer/circlepuzzle/geom"
)

// dirEntry names one arc's incidence at one of its endpoints: arcID
// indexes a flattened arc, startsHere is true at the arc's start point
// and false at its end point (§4.E step 2).
type dirEntry struct {
	arcID      int
	startsHere bool
}

// flatten runs face-extraction step 1: split every circle's present arcs
// at every point where it meets another circle's present arcs, and
// materialize the resulting segments as concrete Ar values.
func flatten[Pt, Ci, Dk, Ar, AOC any](g geom.Geometry[Pt, Ci, Dk, Ar, AOC], allCuts *geom.HashMap[Ci, AOC]) []Ar {
	type group struct {
		circle Ci
		arcs   AOC
	}
	groups := make([]group, 0, allCuts.Len())
	allCuts.Range(func(c Ci, a AOC) bool {
		groups = append(groups, group{circle: c, arcs: a})
		return true
	})

	var flat []Ar
	for i, gi := range groups {
		var splits []fixed.Fixed
		for j, gj := range groups {
			if i == j {
				continue
			}
			splits = append(splits, g.IntersectionAnglesWith(gi.arcs, gj.arcs)...)
		}
		for _, seg := range g.SplitIntersections(gi.arcs, splits) {
			flat = append(flat, g.MaterializeArc(gi.arcs, seg[0], seg[1]))
		}
	}
	return flat
}

// entryAngle is the tangent direction (§4.E) the arc behind e leaves its
// incident point in.
func entryAngle[Pt, Ci, Dk, Ar, AOC any](g geom.Geometry[Pt, Ci, Dk, Ar, AOC], flat []Ar, e dirEntry) fixed.Fixed {
	a := flat[e.arcID]
	if e.startsHere {
		return g.TangentAngleAtStart(a)
	}
	return g.TangentAngleAtEnd(a)
}

// lessEntry orders two arcs incident to the same point by tangent
// direction, with the tie-break rules of §4.E for arcs tangent at that
// point (same direction).
func lessEntry[Pt, Ci, Dk, Ar, AOC any](g geom.Geometry[Pt, Ci, Dk, Ar, AOC], flat []Ar, x, y dirEntry) bool {
	ax, ay := entryAngle(g, flat, x), entryAngle(g, flat, y)
	if !ax.Equal(ay) {
		return ax.Less(ay)
	}
	rx := g.CircleRadius(g.ArcCircle(flat[x.arcID]))
	ry := g.CircleRadius(g.ArcCircle(flat[y.arcID]))
	switch {
	case x.startsHere && y.startsHere:
		return rx.Cmp(ry) > 0
	case !x.startsHere && !y.startsHere:
		return rx.Cmp(ry) < 0
	default:
		return !x.startsHere && y.startsHere
	}
}

// pointAdj is the ordered, once-built set of directed entries incident to
// one point (§9: "store arcs once in a vector and index them from both
// endpoint buckets by id; remove entries by id").
type pointAdj struct {
	order   []dirEntry
	removed []bool
	index   map[dirEntry]int
}

func newPointAdj(order []dirEntry) *pointAdj {
	idx := make(map[dirEntry]int, len(order))
	for i, e := range order {
		idx[e] = i
	}
	return &pointAdj{order: order, removed: make([]bool, len(order)), index: idx}
}

func (p *pointAdj) first() (dirEntry, bool) {
	for i, e := range p.order {
		if !p.removed[i] {
			return e, true
		}
	}
	return dirEntry{}, false
}

func (p *pointAdj) remove(e dirEntry) {
	if i, ok := p.index[e]; ok {
		p.removed[i] = true
	}
}

// higher returns the strictly next non-removed entry after e in cyclic
// order, wrapping past the end of the list back to its start.
func (p *pointAdj) higher(e dirEntry) (dirEntry, bool) {
	start, ok := p.index[e]
	if !ok {
		return dirEntry{}, false
	}
	n := len(p.order)
	for k := 1; k <= n; k++ {
		i := (start + k) % n
		if !p.removed[i] {
			return p.order[i], true
		}
	}
	return dirEntry{}, false
}

// buildAdjacency groups flat's directed entries by incident point and
// sorts each point's entries once (§4.E step 2, §9's "built once per
// intersection point").
func buildAdjacency[Pt, Ci, Dk, Ar, AOC any](g geom.Geometry[Pt, Ci, Dk, Ar, AOC], flat []Ar) *geom.HashMap[Pt, *pointAdj] {
	raw := geom.NewHashMap[Pt, []dirEntry](g.PointHash, g.PointsEqual)
	add := func(p Pt, e dirEntry) {
		cur, _ := raw.Get(p)
		raw.Set(p, append(cur, e))
	}
	for id, a := range flat {
		add(g.ArcStartPoint(a), dirEntry{arcID: id, startsHere: true})
		add(g.ArcEndPoint(a), dirEntry{arcID: id, startsHere: false})
	}

	adj := geom.NewHashMap[Pt, *pointAdj](g.PointHash, g.PointsEqual)
	raw.Range(func(p Pt, entries []dirEntry) bool {
		sorted := append([]dirEntry(nil), entries...)
		sort.Slice(sorted, func(i, j int) bool { return lessEntry(g, flat, sorted[i], sorted[j]) })
		adj.Set(p, newPointAdj(sorted))
		return true
	})
	return adj
}

// extractParts runs face-extraction steps 2-3: builds the per-point
// adjacency structure and walks it to recover every face's boundary as a
// Part. An arc whose two endpoints coincide (an isolated circle with no
// other cuts) is a self-loop: its single point has degree 2 in one arc,
// the classic DCEL self-loop case, and is special-cased directly into the
// two singleton faces it bounds rather than driving it through the
// general rotation-order walk (which assumes a genuine vertex rotation).
func extractParts[Pt, Ci, Dk, Ar, AOC any](g geom.Geometry[Pt, Ci, Dk, Ar, AOC], flat []Ar) []Part[Ar] {
	var parts []Part[Ar]
	var segments []Ar
	for _, a := range flat {
		if g.PointsEqual(g.ArcStartPoint(a), g.ArcEndPoint(a)) {
			parts = append(parts, NewPart(g, []Ar{a}), NewPart(g, []Ar{a}))
			continue
		}
		segments = append(segments, a)
	}

	adj := buildAdjacency(g, segments)
	for _, p := range adj.Keys() {
		pa, _ := adj.Get(p)
		for {
			start, ok := pa.first()
			if !ok {
				break
			}
			var loop []Ar
			cur, curPoint := start, p
			for {
				curAdj, _ := adj.Get(curPoint)
				curAdj.remove(cur)
				a := segments[cur.arcID]
				loop = append(loop, a)

				var q Pt
				if cur.startsHere {
					q = g.ArcEndPoint(a)
				} else {
					q = g.ArcStartPoint(a)
				}
				// Under the simply-connected assumption (§9 Open
				// Question ii), a face boundary visits p at most once,
				// so returning to p closes the walk (§4.E step 3).
				// start's entry was already removed above, so a
				// succ == start check here could never hold and the
				// walk would never terminate.
				if g.PointsEqual(q, p) {
					break
				}

				qAdj, _ := adj.Get(q)
				anchor := dirEntry{arcID: cur.arcID, startsHere: !cur.startsHere}
				succ, _ := qAdj.higher(anchor)
				curPoint, cur = q, succ
			}
			parts = append(parts, NewPart(g, loop))
		}
	}
	return parts
}
