package puzzle

import "github.com/wkretschmer/circlepuzzle/geom"

// Puzzle wires the closure and face-extraction engines together behind
// the six derived views §4.F names, each computed at most once and
// memoized (§9's "one-shot guard"). A Puzzle is immutable after its
// first view is read; WithMaxCuts must be called before that.
type Puzzle[Pt, Ci, Dk, Ar, AOC any] struct {
	g       geom.Geometry[Pt, Ci, Dk, Ar, AOC]
	moves   []Move[Dk]
	maxCuts int

	groupedCuts     *geom.HashMap[Ci, AOC]
	groupedCutsDone bool
	groupedCutsErr  error

	flatCuts     []Ar
	flatCutsDone bool

	parts     []Part[Ar]
	partsDone bool

	partIds     *geom.HashMap[Part[Ar], int]
	partIdsDone bool

	partPermutations     [][]int
	partPermutationsDone bool

	permutationStrings     []string
	permutationStringsDone bool
}

// New builds a Puzzle from a geometry and its generating moves. moves may
// contain duplicates; the closure engine deduplicates them (§4.D).
func New[Pt, Ci, Dk, Ar, AOC any](g geom.Geometry[Pt, Ci, Dk, Ar, AOC], moves []Move[Dk]) *Puzzle[Pt, Ci, Dk, Ar, AOC] {
	return &Puzzle[Pt, Ci, Dk, Ar, AOC]{g: g, moves: moves}
}

// WithMaxCuts sets a ceiling on the number of distinct cut circles the
// closure engine may discover before it gives up with ErrTooManyCuts,
// guarding against non-terminating jumbling inputs (§7). Must be called
// before any view is read; it has no effect afterward. n <= 0 means
// unlimited (the default).
func (p *Puzzle[Pt, Ci, Dk, Ar, AOC]) WithMaxCuts(n int) *Puzzle[Pt, Ci, Dk, Ar, AOC] {
	p.maxCuts = n
	return p
}

// GroupedCuts is the closure engine's output: the final allCuts mapping
// of circle to its present arcs (§4.D).
func (p *Puzzle[Pt, Ci, Dk, Ar, AOC]) GroupedCuts() (*geom.HashMap[Ci, AOC], error) {
	if !p.groupedCutsDone {
		cuts, ms, err := Closure(p.g, p.moves, p.maxCuts)
		p.groupedCuts, p.moves, p.groupedCutsErr = cuts, ms, err
		p.groupedCutsDone = true
	}
	return p.groupedCuts, p.groupedCutsErr
}

// FlatCuts is face-extraction step 1's output: every cut split at its
// intersections and materialized as a concrete arc.
func (p *Puzzle[Pt, Ci, Dk, Ar, AOC]) FlatCuts() ([]Ar, error) {
	if !p.flatCutsDone {
		cuts, err := p.GroupedCuts()
		if err != nil {
			return nil, err
		}
		p.flatCuts = flatten(p.g, cuts)
		p.flatCutsDone = true
	}
	return p.flatCuts, nil
}

// Parts is the set of faces recovered by walking the flattened
// arrangement (§4.E steps 2-3).
func (p *Puzzle[Pt, Ci, Dk, Ar, AOC]) Parts() ([]Part[Ar], error) {
	if !p.partsDone {
		flat, err := p.FlatCuts()
		if err != nil {
			return nil, err
		}
		p.parts = extractParts(p.g, flat)
		p.partsDone = true
	}
	return p.parts, nil
}

// PartIds maps each part to its stable id in [0,N).
func (p *Puzzle[Pt, Ci, Dk, Ar, AOC]) PartIds() (*geom.HashMap[Part[Ar], int], error) {
	if !p.partIdsDone {
		parts, err := p.Parts()
		if err != nil {
			return nil, err
		}
		p.partIds = partTable(p.g, parts)
		p.partIdsDone = true
	}
	return p.partIds, nil
}

// PartPermutations gives, for each move in declaration order (after
// dedup), the permutation it induces on part ids (§4.E step 4).
func (p *Puzzle[Pt, Ci, Dk, Ar, AOC]) PartPermutations() ([][]int, error) {
	if !p.partPermutationsDone {
		parts, err := p.Parts()
		if err != nil {
			return nil, err
		}
		p.partPermutations = Permutations(p.g, p.moves, parts)
		p.partPermutationsDone = true
	}
	return p.partPermutations, nil
}

// PermutationStrings renders PartPermutations in the external
// transformation-group literal syntax (§6).
func (p *Puzzle[Pt, Ci, Dk, Ar, AOC]) PermutationStrings() ([]string, error) {
	if !p.permutationStringsDone {
		perms, err := p.PartPermutations()
		if err != nil {
			return nil, err
		}
		out := make([]string, len(perms))
		for i, perm := range perms {
			out[i] = PermutationString(perm)
		}
		p.permutationStrings = out
		p.permutationStringsDone = true
	}
	return p.permutationStrings, nil
}
