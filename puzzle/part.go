package puzzle

import "github.com/wkretschmer/circlepuzzle/geom"

// Part is an unordered loop of Arcs forming the boundary of a connected
// face (§3). Arcs holds the canonical boundary: no two adjacent arcs
// (including the wraparound pair) share a circle, since canonicalize
// folds those together via Arc.Join. Equality and hashing (PartEqual,
// PartHash) depend only on the set of arcs, ignoring both traversal
// order and the direction each was walked in.
type Part[Ar any] struct {
	Arcs []Ar
}

// NewPart builds a Part from a raw boundary walk, canonicalizing it.
func NewPart[Pt, Ci, Dk, Ar, AOC any](g geom.Geometry[Pt, Ci, Dk, Ar, AOC], loop []Ar) Part[Ar] {
	return Part[Ar]{Arcs: canonicalizeBoundary(g, loop)}
}

// canonicalizeBoundary folds adjacent arcs (including the wraparound
// pair between the last and first) that share a circle into one, via
// Arc.Join, repeating until no more folds apply (§9's boundary
// simplifier). Expressed iteratively, not recursively, per §9's
// "Recursion → iteration" note.
func canonicalizeBoundary[Pt, Ci, Dk, Ar, AOC any](g geom.Geometry[Pt, Ci, Dk, Ar, AOC], loop []Ar) []Ar {
	cur := append([]Ar(nil), loop...)
	for {
		n := len(cur)
		if n <= 1 {
			return cur
		}
		merged := false
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			if i == j {
				continue
			}
			joined, ok := g.ArcJoin(cur[i], cur[j])
			if !ok {
				continue
			}
			next := make([]Ar, 0, n-1)
			for k, a := range cur {
				switch k {
				case j:
					// dropped; folded into i
				case i:
					next = append(next, joined)
				default:
					next = append(next, a)
				}
			}
			cur = next
			merged = true
			break
		}
		if !merged {
			return cur
		}
	}
}

// PartEqual reports whether a and b are the same Part: same arcs, as a
// set, regardless of order.
func PartEqual[Pt, Ci, Dk, Ar, AOC any](g geom.Geometry[Pt, Ci, Dk, Ar, AOC], a, b Part[Ar]) bool {
	if len(a.Arcs) != len(b.Arcs) {
		return false
	}
	used := make([]bool, len(b.Arcs))
	for _, x := range a.Arcs {
		found := false
		for j, y := range b.Arcs {
			if used[j] {
				continue
			}
			if g.ArcEqual(x, y) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// PartHash sums each arc's hash, so it doesn't depend on arc order
// (consistent with PartEqual's set semantics).
func PartHash[Pt, Ci, Dk, Ar, AOC any](g geom.Geometry[Pt, Ci, Dk, Ar, AOC], p Part[Ar]) uint64 {
	var h uint64
	for _, a := range p.Arcs {
		h += g.ArcHash(a)
	}
	return h
}
