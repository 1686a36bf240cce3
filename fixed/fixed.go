package fixed

import (
	"crypto/rand"
	"fmt"
	"hash/fnv"
	"math/big"
	"strings"
)

// ComputeScale is the number of decimal places Fixed values are stored and
// computed at. CompareScale is the number of decimal places used for
// equality, ordering, and hashing; it must stay strictly less than
// ComputeScale so the gap absorbs rounding noise. Both are startup
// constants: change them before constructing any Fixed value, never after.
var (
	ComputeScale = 40
	CompareScale = 20
)

// Fixed is an immutable signed decimal held at ComputeScale places.
type Fixed struct {
	// unscaled is the value times 10^ComputeScale.
	unscaled *big.Int
}

var bigTen = big.NewInt(10)

func pow10(n int) *big.Int {
	if n <= 0 {
		return big.NewInt(1)
	}
	return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
}

// computeFactor returns 10^ComputeScale for the current ComputeScale,
// recomputed on every call.
func computeFactor() *big.Int { return pow10(ComputeScale) }

// Zero is the additive identity.
var Zero = Fixed{unscaled: big.NewInt(0)}

// fromUnscaled wraps a pre-scaled big.Int without copying semantics leaking:
// callers must pass a big.Int they no longer mutate.
func fromUnscaled(u *big.Int) Fixed { return Fixed{unscaled: u} }

// NewFromInt64 builds a Fixed representing the given integer.
func NewFromInt64(v int64) Fixed {
	u := new(big.Int).Mul(big.NewInt(v), computeFactor())
	return fromUnscaled(u)
}

// MustParse parses a decimal literal like "-12.03125" into a Fixed at
// ComputeScale precision, rounding half-even if the literal has more
// fractional digits than ComputeScale. It panics on malformed input; it
// exists for constants and tests, not for parsing untrusted input.
func MustParse(s string) Fixed {
	f, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return f
}

// Parse parses a decimal literal such as "3.14159" or "-2" into a Fixed.
func Parse(s string) (Fixed, error) {
	s = strings.TrimSpace(s)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	} else if strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	intPart, fracPart, hasFrac := s, "", false
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
		hasFrac = true
	}
	if intPart == "" {
		intPart = "0"
	}
	digits := intPart
	scale := 0
	if hasFrac {
		digits += fracPart
		scale = len(fracPart)
	}
	mag, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return Fixed{}, fmt.Errorf("fixed: invalid decimal literal %q", s)
	}
	if scale < ComputeScale {
		mag.Mul(mag, pow10(ComputeScale-scale))
	} else if scale > ComputeScale {
		mag = roundHalfEven(mag, pow10(scale-ComputeScale))
	}
	if neg {
		mag.Neg(mag)
	}
	return fromUnscaled(mag), nil
}

// roundHalfEven divides num/den (den > 0) rounding half-to-even, matching
// BigDecimal's ROUND_HALF_EVEN used throughout §4.A's arithmetic.
func roundHalfEven(num, den *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(num, den, new(big.Int))
	if r.Sign() == 0 {
		return q
	}
	twiceR := new(big.Int).Lsh(new(big.Int).Abs(r), 1)
	cmp := twiceR.Cmp(den)
	if cmp > 0 || (cmp == 0 && q.Bit(0) == 1) {
		if num.Sign() < 0 {
			q.Sub(q, big.NewInt(1))
		} else {
			q.Add(q, big.NewInt(1))
		}
	}
	return q
}

// Add returns a+b. Exact: both operands are already at ComputeScale.
func (a Fixed) Add(b Fixed) Fixed {
	return fromUnscaled(new(big.Int).Add(a.unscaled, b.unscaled))
}

// Sub returns a-b. Exact.
func (a Fixed) Sub(b Fixed) Fixed {
	return fromUnscaled(new(big.Int).Sub(a.unscaled, b.unscaled))
}

// Neg returns -a.
func (a Fixed) Neg() Fixed {
	if a.unscaled.Sign() == 0 {
		return a
	}
	return fromUnscaled(new(big.Int).Neg(a.unscaled))
}

// Mul returns a*b rounded half-even to ComputeScale.
func (a Fixed) Mul(b Fixed) Fixed {
	raw := new(big.Int).Mul(a.unscaled, b.unscaled)
	return fromUnscaled(roundHalfEven(raw, computeFactor()))
}

// Div returns a/b rounded half-even to ComputeScale. Panics on division by
// zero (a domain error in every caller; see §7).
func (a Fixed) Div(b Fixed) Fixed {
	if b.unscaled.Sign() == 0 {
		panic(DomainError{Op: "Fixed.Div", Msg: "division by zero"})
	}
	num := new(big.Int).Mul(a.unscaled, computeFactor())
	return fromUnscaled(roundHalfEven(num, b.unscaled))
}

// Sign returns -1, 0, or 1 for the exact (unrounded) sign of the value.
func (a Fixed) Sign() int { return a.unscaled.Sign() }

// Abs returns the exact absolute value.
func (a Fixed) Abs() Fixed {
	if a.unscaled.Sign() < 0 {
		return a.Neg()
	}
	return a
}

// Half returns a/2 via Div: exact when the unscaled value is even, and
// rounded half-even to ComputeScale when it is odd.
func (a Fixed) Half() Fixed { return a.Div(NewFromInt64(2)) }

// rawCmp compares exact (unrounded) values; used internally by algorithms
// that need a genuine ordering rather than the fuzzy public one (Newton
// iteration, Taylor convergence, angle-range reduction).
func (a Fixed) rawCmp(b Fixed) int { return a.unscaled.Cmp(b.unscaled) }

// rawLess reports whether a < b using exact comparison.
func (a Fixed) rawLess(b Fixed) bool { return a.rawCmp(b) < 0 }

// roundedKey is floor((x+Offset) * 10^CompareScale), the integer both
// Equal/Hash/Cmp key off of.
func (a Fixed) roundedKey() *big.Int {
	shift := ComputeScale - CompareScale
	sum := new(big.Int).Add(a.unscaled, Offset.unscaled)
	return new(big.Int).Div(sum, pow10(shift)) // Div: Euclidean == floor for positive divisor
}

// Equal reports whether a and b round to the same value at CompareScale
// after the shared per-process Offset is applied.
func (a Fixed) Equal(b Fixed) bool {
	return a.roundedKey().Cmp(b.roundedKey()) == 0
}

// Cmp compares a and b using the same rounded-with-offset value Equal and
// Hash use, so a total order agrees with fuzzy equality.
func (a Fixed) Cmp(b Fixed) int {
	return a.roundedKey().Cmp(b.roundedKey())
}

// Less reports a < b under Cmp.
func (a Fixed) Less(b Fixed) bool { return a.Cmp(b) < 0 }

// Hash returns a 64-bit hash consistent with Equal.
func (a Fixed) Hash() uint64 {
	h := fnv.New64a()
	h.Write(a.roundedKey().Bytes())
	if a.roundedKey().Sign() < 0 {
		h.Write([]byte{'-'})
	}
	return h.Sum64()
}

// Float64 converts to the nearest float64, used only to seed iterative
// algorithms (Sqrt's initial guess) — never for comparison or storage.
func (a Fixed) Float64() float64 {
	f := new(big.Float).SetInt(a.unscaled)
	quotient := new(big.Float).Quo(f, new(big.Float).SetInt(computeFactor()))
	v, _ := quotient.Float64()
	return v
}

// NewFromFloat64 builds a Fixed from a float64, truncating toward zero at
// ComputeScale. Intended for test fixtures and external construction from
// literals that are naturally float64 (puzzle-definition call sites), not
// for results that must be exact.
func NewFromFloat64(v float64) Fixed {
	bf := new(big.Float).SetPrec(200).SetFloat64(v)
	bf.Mul(bf, new(big.Float).SetInt(computeFactor()))
	i, _ := bf.Int(nil)
	return fromUnscaled(i)
}

// String renders the value as a decimal literal with all ComputeScale
// fractional digits; not used for equality or hashing.
func (a Fixed) String() string {
	neg := a.unscaled.Sign() < 0
	mag := new(big.Int).Abs(a.unscaled)
	s := mag.String()
	for len(s) <= ComputeScale {
		s = "0" + s
	}
	intPart := s[:len(s)-ComputeScale]
	fracPart := s[len(s)-ComputeScale:]
	out := intPart + "." + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// DomainError marks a fail-fast condition per §7 (atan2(0,0), division by
// zero, a Move with increment < 2). NewAngle does not raise it: a value
// outside [0, 2π) is reduced modulo 2π instead of being rejected.
type DomainError struct {
	Op  string
	Msg string
}

func (e DomainError) Error() string { return fmt.Sprintf("fixed: %s: %s", e.Op, e.Msg) }

// Offset is the per-process random fuzz folded into every comparison
// (§3, §4.A). It is sampled once at package init and must not be mutated:
// changing it after any hash has been taken invalidates every previously
// computed identity.
var Offset = newOffset()

func newOffset() Fixed {
	shift := ComputeScale - CompareScale
	limit := pow10(shift)
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		// crypto/rand failure is not recoverable in a way that preserves
		// determinism guarantees; fall back to zero offset rather than
		// panic, since a zero offset is still a valid (if unlucky) choice.
		return Zero
	}
	return fromUnscaled(n)
}
