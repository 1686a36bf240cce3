package planar

import "github.com/wkretschmer/circlepuzzle/puzzle"

// Move is a planar generator: a disk (here, a Circle bounding it) plus
// the increment it rotates by (§3, §6).
type Move = puzzle.Move[Circle]

// NewMove validates increment >= 2 and precomputes Move's derived
// angles (§7).
func NewMove(disk Circle, increment int) (Move, error) {
	return puzzle.NewMove[Circle](disk, increment)
}

// Puzzle is the planar instantiation of the geometry-agnostic façade
// (§4.F).
type Puzzle = puzzle.Puzzle[Point, Circle, Circle, Arc, ArcsOnCircle]

// NewPuzzle builds a planar Puzzle from its generating moves.
func NewPuzzle(moves []Move) *Puzzle {
	return puzzle.New[Point, Circle, Circle, Arc, ArcsOnCircle](G{}, moves)
}
