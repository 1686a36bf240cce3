package puzzle

import (
	"errors"

	"github.com/wkretschmer/circlepuzzle/geom"
)

// ErrTooManyCuts is returned by Closure (and the Puzzle façade built on
// it) once the number of distinct cut circles exceeds a caller-supplied
// ceiling. The closure engine itself has no bailout for a jumbling
// puzzle (§7); this lets a caller detect one instead of exhausting
// memory.
var ErrTooManyCuts = errors.New("puzzle: exceeded configured max cut count")

// dedupeMoves drops later moves whose disk and increment match an earlier
// one, per §4.D's "distinct moves (duplicates deduplicated)".
func dedupeMoves[Pt, Ci, Dk, Ar, AOC any](g geom.Geometry[Pt, Ci, Dk, Ar, AOC], moves []Move[Dk]) []Move[Dk] {
	out := make([]Move[Dk], 0, len(moves))
	for _, m := range moves {
		dup := false
		for _, seen := range out {
			if sameMove(g, m, seen) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, m)
		}
	}
	return out
}

func sameMove[Pt, Ci, Dk, Ar, AOC any](g geom.Geometry[Pt, Ci, Dk, Ar, AOC], a, b Move[Dk]) bool {
	return a.Increment == b.Increment &&
		g.PointsEqual(g.DiskCenter(a.Disk), g.DiskCenter(b.Disk)) &&
		g.CircleEqual(g.DiskCircle(a.Disk), g.DiskCircle(b.Disk))
}

func newCutsMap[Pt, Ci, Dk, Ar, AOC any](g geom.Geometry[Pt, Ci, Dk, Ar, AOC]) *geom.HashMap[Ci, AOC] {
	return geom.NewHashMap[Ci, AOC](g.CircleHash, g.CircleEqual)
}

// Closure runs the cut-set closure engine (§4.D): a worklist fixed-point
// that closes the generating disks' boundary arcs under the group the
// moves generate. It returns the deduplicated move list (indices into it
// are used by the face-extraction engine's permutation step) alongside
// the final allCuts mapping. Does not terminate for jumbling inputs
// (§5, §7) unless maxCuts is positive, in which case Closure returns
// ErrTooManyCuts as soon as the number of distinct cut circles exceeds
// it; maxCuts <= 0 means unlimited.
func Closure[Pt, Ci, Dk, Ar, AOC any](g geom.Geometry[Pt, Ci, Dk, Ar, AOC], moves []Move[Dk], maxCuts int) (*geom.HashMap[Ci, AOC], []Move[Dk], error) {
	ms := dedupeMoves(g, moves)

	allCuts := newCutsMap(g)
	overLimit := func() bool { return maxCuts > 0 && allCuts.Len() > maxCuts }

	for _, m := range ms {
		c := g.DiskCircle(m.Disk)
		allCuts.Set(c, g.FullArcs(c))
	}
	if overLimit() {
		return nil, nil, ErrTooManyCuts
	}

	toProcess := make([]*geom.HashMap[Ci, AOC], len(ms))
	for i, m := range ms {
		own := g.DiskCircle(m.Disk)
		wl := newCutsMap(g)
		allCuts.Range(func(c Ci, a AOC) bool {
			if !g.CircleEqual(c, own) {
				wl.Set(c, a)
			}
			return true
		})
		toProcess[i] = wl
	}

	for {
		idx := -1
		for i, wl := range toProcess {
			if wl.Len() > 0 {
				idx = i
				break
			}
		}
		if idx < 0 {
			break
		}

		m := ms[idx]
		wl := toProcess[idx]
		type pending struct {
			circle Ci
			arcs   AOC
		}
		entries := make([]pending, 0, wl.Len())
		wl.Range(func(c Ci, a AOC) bool {
			entries = append(entries, pending{circle: c, arcs: a})
			return true
		})

		center := g.DiskCenter(m.Disk)
		for _, e := range entries {
			segment := g.IntersectWithDisk(e.arcs, m.Disk)
			if !g.ArcsNonEmpty(segment) {
				continue
			}
			for _, theta := range m.NonzeroAngles {
				rotated := g.RotateArcsOnCircle(segment, center, theta)
				rc := g.AOCCircle(rotated)
				existing, ok := allCuts.Get(rc)
				if !ok {
					existing = g.EmptyArcs(rc)
				}
				allCuts.Set(rc, g.SameCircleUnion(existing, rotated))
				if overLimit() {
					return nil, nil, ErrTooManyCuts
				}

				newArcs := g.SameCircleDifference(rotated, existing)
				if !g.ArcsNonEmpty(newArcs) {
					continue
				}
				for j := range ms {
					if j == idx {
						continue
					}
					target := toProcess[j]
					cur, ok := target.Get(rc)
					if ok {
						target.Set(rc, g.SameCircleUnion(cur, newArcs))
					} else {
						target.Set(rc, newArcs)
					}
				}
			}
		}

		toProcess[idx] = newCutsMap(g)
	}

	return allCuts, ms, nil
}
