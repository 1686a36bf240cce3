package spherical

import "github.com/wkretschmer/circlepuzzle/puzzle"

// Move is a spherical generator: a Disk plus the increment it rotates
// by (§3, §6).
type Move = puzzle.Move[Disk]

// NewMove validates increment >= 2 and precomputes Move's derived
// angles (§7).
func NewMove(disk Disk, increment int) (Move, error) {
	return puzzle.NewMove[Disk](disk, increment)
}

// Puzzle is the spherical instantiation of the geometry-agnostic façade
// (§4.F).
type Puzzle = puzzle.Puzzle[Point, Circle, Disk, Arc, ArcsOnCircle]

// NewPuzzle builds a spherical Puzzle from its generating moves.
func NewPuzzle(moves []Move) *Puzzle {
	return puzzle.New[Point, Circle, Disk, Arc, ArcsOnCircle](G{}, moves)
}
