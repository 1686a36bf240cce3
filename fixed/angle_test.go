package fixed

import "testing"

func TestAngleNormalizes(t *testing.T) {
	a := NewAngle(MustParse("10"))
	if a.Value().rawCmp(Zero) < 0 || a.Value().rawCmp(TwoPi()) >= 0 {
		t.Fatalf("angle not normalized: %v", a.Value())
	}
}

func TestAngleMemoization(t *testing.T) {
	a := NewAngle(MustParse("1"))
	s1 := a.Sin()
	s2 := a.Sin()
	if !s1.Equal(s2) {
		t.Fatalf("memoized sin changed between calls")
	}
}

func TestAngleEqualAcrossCopies(t *testing.T) {
	a := NewAngle(MustParse("1.23"))
	b := a
	if !a.Equal(b) {
		t.Fatalf("copies of an Angle should be equal")
	}
	if a.Sin() != b.Sin() {
		// both should compute the exact same Fixed value
		if !a.Sin().Equal(b.Sin()) {
			t.Fatalf("copies disagree on memoized sin")
		}
	}
}
