package fixed

import "testing"

func closeEnough(t *testing.T, got Fixed, wantFloat float64, tol float64) {
	t.Helper()
	diff := got.Float64() - wantFloat
	if diff < 0 {
		diff = -diff
	}
	if diff > tol {
		t.Fatalf("got %v (%.10f), want ~%.10f (diff %.2e)", got, got.Float64(), wantFloat, diff)
	}
}

func TestSqrt(t *testing.T) {
	closeEnough(t, MustParse("2").Sqrt(), 1.4142135623730951, 1e-12)
	closeEnough(t, MustParse("4").Sqrt(), 2.0, 1e-12)
	if !MustParse("-1").Sqrt().Equal(Zero) {
		t.Fatalf("sqrt of negative should saturate to 0")
	}
}

func TestAsinAcos(t *testing.T) {
	closeEnough(t, MustParse("0.5").Asin(), 0.5235987755982989, 1e-10)
	closeEnough(t, MustParse("1").Asin(), 1.5707963267948966, 1e-9)
	closeEnough(t, MustParse("0").Acos(), 1.5707963267948966, 1e-10)
	closeEnough(t, MustParse("-0.5").Asin(), -0.5235987755982989, 1e-10)
}

func TestAtan2Mod2PiQuadrants(t *testing.T) {
	one := MustParse("1")
	zero := Zero
	neg := one.Neg()

	v, err := Atan2Mod2Pi(zero, one)
	if err != nil || v.Float64() != 0 {
		t.Fatalf("atan2(0,1) = %v, err=%v", v, err)
	}
	v, err = Atan2Mod2Pi(one, zero)
	if err != nil {
		t.Fatalf("atan2(1,0) errored: %v", err)
	}
	closeEnough(t, v, 1.5707963267948966, 1e-9)

	v, err = Atan2Mod2Pi(neg, zero)
	if err != nil {
		t.Fatalf("atan2(-1,0) errored: %v", err)
	}
	closeEnough(t, v, 4.71238898038469, 1e-9)

	if _, err := Atan2Mod2Pi(zero, zero); err == nil {
		t.Fatal("expected domain error for atan2(0,0)")
	}
}

func TestSinCos(t *testing.T) {
	closeEnough(t, Zero.Sin(), 0, 1e-10)
	closeEnough(t, Zero.Cos(), 1, 1e-10)
	closeEnough(t, HalfPi().Sin(), 1, 1e-9)
	closeEnough(t, Pi().Sin(), 0, 1e-9)
	closeEnough(t, Pi().Cos(), -1, 1e-9)
}

func TestMod2PiRange(t *testing.T) {
	vals := []Fixed{
		MustParse("-1"),
		MustParse("100"),
		TwoPi(),
		MustParse("0"),
	}
	for _, v := range vals {
		r := v.Mod2Pi()
		if r.rawCmp(Zero) < 0 || r.rawCmp(TwoPi()) >= 0 {
			t.Fatalf("Mod2Pi(%v) = %v not in [0, 2pi)", v, r)
		}
	}
}
