package spherical

import (
	"testing"

	"github.com/wkretschmer/circlepuzzle/arcs"
	"github.com/wkretschmer/circlepuzzle/fixed"
)

func TestRotateArcsOnCircleMovesCenterKeepsMask(t *testing.T) {
	var g G
	c := NewCircle(onEquator, fixed.HalfPi())
	mask := arcs.Of(mustF("0"), mustF("1"))
	aoc := ArcsOnCircle{Circle: c, Zero: canonicalZero(c.Center, c.Radius), UnitArcs: mask}

	rotated := g.RotateArcsOnCircle(aoc, northPole, fixed.NewAngle(fixed.HalfPi()))
	wantCenter := RotatePoint(onEquator, northPole, fixed.NewAngle(fixed.HalfPi()))
	if !rotated.Circle.Center.Equal(wantCenter) {
		t.Errorf("rotated center: got %+v, want %+v", rotated.Circle.Center, wantCenter)
	}
	if !rotated.Circle.Radius.Equal(c.Radius) {
		t.Error("rotation must not change radius")
	}
	if len(rotated.UnitArcs) != len(mask) {
		t.Error("rotation must not change the mask itself, only the embedding")
	}
}

func TestRotateArcFullTurnIsIdentity(t *testing.T) {
	var g G
	c := NewCircle(onEquator, fixed.HalfPi())
	a := NewArc(c, canonicalZero(c.Center, c.Radius), PointAtAngle(c.Center, c.Radius, canonicalZero(c.Center, c.Radius), mustF("1")))
	got := g.RotateArc(a, northPole, fixed.NewAngle(fixed.TwoPi()))
	if !g.ArcEqual(got, a) {
		t.Errorf("full turn should be identity: got %+v, want %+v", got, a)
	}
}

func TestContainsStrictly(t *testing.T) {
	var g G
	d := NewDisk(northPole, fixed.HalfPi())
	if !g.ContainsStrictly(d, northPole) {
		t.Error("center must be strictly inside its own disk")
	}
	if g.ContainsStrictly(d, southPole) {
		t.Error("antipode must not be strictly inside a hemisphere disk")
	}
}

func TestSameCircleUnionDifferenceSameRepresentation(t *testing.T) {
	var g G
	c := NewCircle(northPole, fixed.HalfPi())
	zero := canonicalZero(c.Center, c.Radius)
	a := ArcsOnCircle{Circle: c, Zero: zero, UnitArcs: arcs.Of(mustF("0"), mustF("1"))}
	b := ArcsOnCircle{Circle: c, Zero: zero, UnitArcs: arcs.Of(mustF("0.5"), mustF("1.5"))}

	u := g.SameCircleUnion(a, b)
	if !g.ArcsNonEmpty(u) {
		t.Error("union of overlapping arcs must be non-empty")
	}

	d := g.SameCircleDifference(a, a)
	if g.ArcsNonEmpty(d) {
		t.Error("an arc minus itself must be empty")
	}
}

func TestSameCircleUnionReconcilesOppositeRepresentation(t *testing.T) {
	var g G
	c := NewCircle(northPole, fixed.HalfPi())
	zero := canonicalZero(c.Center, c.Radius)
	a := ArcsOnCircle{Circle: c, Zero: zero, UnitArcs: arcs.FullCircle()}

	dual := c.dual()
	dualZero := zero // the same physical point also lies on the dual representation's locus
	b := ArcsOnCircle{Circle: dual, Zero: dualZero, UnitArcs: arcs.Of(mustF("0"), mustF("1"))}

	u := g.SameCircleUnion(a, b)
	if !g.ArcsNonEmpty(u) {
		t.Error("union against the dual representation must still be non-empty")
	}
	if !u.Circle.Equal(a.Circle) {
		t.Error("union must be expressed in a's own circle representation")
	}
}

func TestTangentAnglesNormalized(t *testing.T) {
	var g G
	c := NewCircle(northPole, fixed.HalfPi())
	zero := canonicalZero(c.Center, c.Radius)
	other := PointAtAngle(c.Center, c.Radius, zero, fixed.HalfPi())
	a := NewArc(c, zero, other)

	start := g.TangentAngleAtStart(a)
	if start.Sign() < 0 {
		t.Error("tangent angle must be normalized non-negative")
	}
	end := g.TangentAngleAtEnd(a)
	if end.Sign() < 0 {
		t.Error("tangent angle must be normalized non-negative")
	}
}
