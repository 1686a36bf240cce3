package planar

import (
	"testing"

	"github.com/wkretschmer/circlepuzzle/fixed"
)

func mustF(s string) fixed.Fixed { return fixed.MustParse(s) }

func TestCirclePointAtRoundTrip(t *testing.T) {
	c := NewCircle(P(mustF("1"), mustF("2")), mustF("3"))
	for _, deg := range []string{"0", "0.5", "1", "2", "3.14159265358979"} {
		angle := fixed.NewAngle(mustF(deg))
		p := c.PointAt(angle)
		got, err := c.AngleOf(p)
		if err != nil {
			t.Fatalf("AngleOf(%s): %v", deg, err)
		}
		if !got.Equal(angle) {
			t.Errorf("round trip at %s: got angle %s, want %s", deg, got.Value(), angle.Value())
		}
	}
}

func TestCircleEqual(t *testing.T) {
	a := NewCircle(P(mustF("0"), mustF("0")), mustF("1"))
	b := NewCircle(P(mustF("0"), mustF("0")), mustF("1"))
	c := NewCircle(P(mustF("0"), mustF("0")), mustF("2"))
	if !a.Equal(b) {
		t.Error("expected equal circles")
	}
	if a.Equal(c) {
		t.Error("expected distinct circles")
	}
	if a.Hash() != b.Hash() {
		t.Error("equal circles must hash equal")
	}
}

func TestArcJoin(t *testing.T) {
	c := NewCircle(P(mustF("0"), mustF("0")), mustF("1"))
	a1 := NewArc(c, fixed.NewAngle(mustF("0")), fixed.NewAngle(mustF("1")))
	a2 := NewArc(c, fixed.NewAngle(mustF("1")), fixed.NewAngle(mustF("2")))
	joined, ok := a1.Join(a2)
	if !ok {
		t.Fatal("expected join to succeed")
	}
	if !joined.Start.Equal(fixed.NewAngle(mustF("0"))) || !joined.End.Equal(fixed.NewAngle(mustF("2"))) {
		t.Errorf("unexpected joined arc: %+v", joined)
	}

	a3 := NewArc(c, fixed.NewAngle(mustF("2")), fixed.NewAngle(mustF("2.5")))
	if _, ok := a1.Join(a3); ok {
		t.Error("expected non-adjacent arcs not to join")
	}
}

func TestArcJoinWrapsToFullCircle(t *testing.T) {
	c := NewCircle(P(mustF("0"), mustF("0")), mustF("1"))
	pi := fixed.Pi()
	a1 := NewArc(c, fixed.NewAngle(mustF("0")), fixed.NewAngle(pi))
	a2 := NewArc(c, fixed.NewAngle(pi), fixed.NewAngle(mustF("0")))
	joined, ok := a1.Join(a2)
	if !ok {
		t.Fatal("expected join to succeed")
	}
	if !joined.Full {
		t.Errorf("expected a full-circle arc, got %+v", joined)
	}
}

func TestArcEqualFullCircle(t *testing.T) {
	c := NewCircle(P(mustF("0"), mustF("0")), mustF("1"))
	a := FullCircleArc(c)
	b := FullCircleArc(c)
	if !a.Equal(b) {
		t.Error("expected equal full-circle arcs")
	}
	if a.Hash() != b.Hash() {
		t.Error("equal full-circle arcs must hash equal")
	}
	other := NewArc(c, fixed.NewAngle(mustF("0")), fixed.NewAngle(mustF("1")))
	if a.Equal(other) {
		t.Error("full-circle arc must not equal a partial arc")
	}
}

func TestPointEqualAndHash(t *testing.T) {
	a := P(mustF("1"), mustF("2"))
	b := P(mustF("1"), mustF("2"))
	if !a.Equal(b) {
		t.Error("expected equal points")
	}
	if a.Hash() != b.Hash() {
		t.Error("equal points must hash equal")
	}
}
