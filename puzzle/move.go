package puzzle

import "github.com/wkretschmer/circlepuzzle/fixed"

// Move is an atomic rotation (disk, increment) acting as a 2π/increment
// counterclockwise rotation on the disk's interior (§3, GLOSSARY).
// Angle and NonzeroAngles are derived once at construction so every
// later rotation the closure and face-extraction engines perform reuses
// their memoized sine/cosine instead of recomputing it.
type Move[Dk any] struct {
	Disk          Dk
	Increment     int
	Angle         fixed.Angle
	NonzeroAngles []fixed.Angle
}

// NewMove validates increment >= 2 (§7: constructing a Move with
// increment < 2 is a domain error) and precomputes the derived angles.
func NewMove[Dk any](disk Dk, increment int) (Move[Dk], error) {
	if increment < 2 {
		return Move[Dk]{}, fixed.DomainError{Op: "NewMove", Msg: "increment must be >= 2"}
	}
	angle := fixed.NewAngle(fixed.TwoPi().Div(fixed.NewFromInt64(int64(increment))))
	nonzero := make([]fixed.Angle, increment-1)
	for k := 1; k < increment; k++ {
		nonzero[k-1] = fixed.NewAngle(angle.Value().Mul(fixed.NewFromInt64(int64(k))))
	}
	return Move[Dk]{Disk: disk, Increment: increment, Angle: angle, NonzeroAngles: nonzero}, nil
}
