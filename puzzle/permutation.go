package puzzle

import (
	"strconv"
	"strings"

	"github.com/wkretschmer/circlepuzzle/geom"
)

// partTable assigns each part a stable id in [0,N) and looks images back
// up by canonical arc-set equality (§4.E step 4).
func partTable[Pt, Ci, Dk, Ar, AOC any](g geom.Geometry[Pt, Ci, Dk, Ar, AOC], parts []Part[Ar]) *geom.HashMap[Part[Ar], int] {
	t := geom.NewHashMap[Part[Ar], int](
		func(p Part[Ar]) uint64 { return PartHash(g, p) },
		func(a, b Part[Ar]) bool { return PartEqual(g, a, b) },
	)
	for i, p := range parts {
		t.Set(p, i)
	}
	return t
}

// rotatedBy decides whether m's disk moves part p, per §4.E step 4's
// endpoint/midpoint/start-point tests keyed on the part's arc count.
func rotatedBy[Pt, Ci, Dk, Ar, AOC any](g geom.Geometry[Pt, Ci, Dk, Ar, AOC], p Part[Ar], disk Dk) bool {
	switch len(p.Arcs) {
	case 0:
		return false
	case 1:
		return g.ContainsStrictly(disk, g.ArcStartPoint(p.Arcs[0]))
	case 2:
		for _, a := range p.Arcs {
			if g.ContainsStrictly(disk, g.ArcMidPoint(a)) {
				return true
			}
		}
		return false
	default:
		for _, a := range p.Arcs {
			if g.ContainsStrictly(disk, g.ArcStartPoint(a)) || g.ContainsStrictly(disk, g.ArcEndPoint(a)) {
				return true
			}
		}
		return false
	}
}

// Permutations computes, for each move, the permutation it induces on
// parts' stable ids (§4.E step 4).
func Permutations[Pt, Ci, Dk, Ar, AOC any](g geom.Geometry[Pt, Ci, Dk, Ar, AOC], moves []Move[Dk], parts []Part[Ar]) [][]int {
	table := partTable(g, parts)
	perms := make([][]int, len(moves))
	for mi, m := range moves {
		center := g.DiskCenter(m.Disk)
		perm := make([]int, len(parts))
		for pi, p := range parts {
			id := pi
			if rotatedBy(g, p, m.Disk) {
				rotatedArcs := make([]Ar, len(p.Arcs))
				for i, a := range p.Arcs {
					rotatedArcs[i] = g.RotateArc(a, center, m.Angle)
				}
				if got, ok := table.Get(NewPart(g, rotatedArcs)); ok {
					id = got
				}
			}
			perm[pi] = id
		}
		perms[mi] = perm
	}
	return perms
}

// PermutationString renders perm in the 1-indexed transformation-group
// literal format external algebra systems expect (§6).
func PermutationString(perm []int) string {
	parts := make([]string, len(perm))
	for i, v := range perm {
		parts[i] = strconv.Itoa(v + 1)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
