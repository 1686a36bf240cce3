package fixed

import "testing"

func TestAddExact(t *testing.T) {
	a := MustParse("1.5")
	b := MustParse("2.25")
	got := a.Add(b)
	want := MustParse("3.75")
	if !got.Equal(want) {
		t.Fatalf("1.5+2.25 = %v, want %v", got, want)
	}
}

func TestSubNeg(t *testing.T) {
	a := MustParse("1")
	b := MustParse("2")
	got := a.Sub(b)
	if got.Sign() >= 0 {
		t.Fatalf("1-2 should be negative, got %v", got)
	}
}

func TestMulRounding(t *testing.T) {
	a := MustParse("0.1")
	b := MustParse("0.2")
	got := a.Mul(b)
	want := MustParse("0.02")
	if !got.Equal(want) {
		t.Fatalf("0.1*0.2 = %v, want %v", got, want)
	}
}

func TestDivByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on division by zero")
		}
	}()
	MustParse("1").Div(Zero)
}

func TestEqualHashConsistency(t *testing.T) {
	// a == b => hash(a) == hash(b) (§8 invariant).
	pairs := [][2]string{
		{"1.00000000000000000000001", "1.00000000000000000000002"},
		{"0", "0.000000000000000000000000001"},
		{"-5.5", "-5.5"},
	}
	for _, p := range pairs {
		a := MustParse(p[0])
		b := MustParse(p[1])
		if a.Equal(b) && a.Hash() != b.Hash() {
			t.Fatalf("a=%s b=%s equal but hash differs", p[0], p[1])
		}
	}
}

func TestEqualityTransitive(t *testing.T) {
	a := MustParse("1.000000000000000000001")
	b := MustParse("1.000000000000000000002")
	c := MustParse("1.000000000000000000003")
	if a.Equal(b) && b.Equal(c) && !a.Equal(c) {
		t.Fatalf("equality not transitive across rounding window: a=%v b=%v c=%v", a, b, c)
	}
}

func TestCmpOrderMatchesEqual(t *testing.T) {
	a := MustParse("1")
	b := MustParse("2")
	if a.Cmp(b) >= 0 {
		t.Fatalf("expected 1 < 2")
	}
	if !a.Equal(a) || a.Cmp(a) != 0 {
		t.Fatalf("expected reflexive equality/order")
	}
}

func TestParseRoundTrip(t *testing.T) {
	got := MustParse("-3.25").String()
	want := MustParse(got)
	if !want.Equal(MustParse("-3.25")) {
		t.Fatalf("round trip through String failed: %v", got)
	}
}
