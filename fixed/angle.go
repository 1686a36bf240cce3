package fixed

// Angle is a Fixed normalized to [0, 2π), with its sine and cosine computed
// lazily and memoized — §3's "Angle" type. Angle is a value type but
// carries a pointer to its memo so copies share the cache; constructing an
// Angle is the only place normalization happens, so every Angle in
// circulation is already in range.
type Angle struct {
	value Fixed
	memo  *trigMemo
}

type trigMemo struct {
	sin, cos *Fixed
}

// NewAngle normalizes v into [0, 2π) and returns the resulting Angle.
func NewAngle(v Fixed) Angle {
	return Angle{value: v.Mod2Pi(), memo: &trigMemo{}}
}

// Value returns the underlying Fixed in [0, 2π).
func (a Angle) Value() Fixed { return a.value }

// Sin returns sin(a), computed once and memoized.
func (a Angle) Sin() Fixed {
	if a.memo == nil {
		return a.value.Sin()
	}
	if a.memo.sin == nil {
		s := a.value.Sin()
		a.memo.sin = &s
	}
	return *a.memo.sin
}

// Cos returns cos(a), computed once and memoized.
func (a Angle) Cos() Fixed {
	if a.memo == nil {
		return a.value.Cos()
	}
	if a.memo.cos == nil {
		c := a.value.Cos()
		a.memo.cos = &c
	}
	return *a.memo.cos
}

// Add returns the angle a+b, normalized back into [0, 2π).
func (a Angle) Add(b Angle) Angle { return NewAngle(a.value.Add(b.value)) }

// Sub returns the angle a-b, normalized back into [0, 2π).
func (a Angle) Sub(b Angle) Angle { return NewAngle(a.value.Sub(b.value)) }

// Equal reports whether a and b denote the same angle under Fixed's fuzzy
// equality.
func (a Angle) Equal(b Angle) bool { return a.value.Equal(b.value) }

// Less reports a < b under Fixed's ordering.
func (a Angle) Less(b Angle) bool { return a.value.Less(b.value) }

// Hash is consistent with Equal.
func (a Angle) Hash() uint64 { return a.value.Hash() }
