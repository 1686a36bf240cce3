package puzzle

import (
	"testing"

	"github.com/wkretschmer/circlepuzzle/arcs"
	"github.com/wkretschmer/circlepuzzle/fixed"
	"github.com/wkretschmer/circlepuzzle/geom"
	"github.com/wkretschmer/circlepuzzle/planar"
	"github.com/wkretschmer/circlepuzzle/spherical"
)

func TestFlattenLoneCircleIsOneFullArc(t *testing.T) {
	var g planar.G
	c := planar.NewCircle(planar.P(mustF("0"), mustF("0")), mustF("1"))
	cuts := geomCutsOf(g, c, arcs.FullCircle())

	flat := flatten[planar.Point, planar.Circle, planar.Circle, planar.Arc, planar.ArcsOnCircle](g, cuts)
	if len(flat) != 1 {
		t.Fatalf("expected one flat arc, got %d", len(flat))
	}
	if !flat[0].Full {
		t.Errorf("expected the flat arc to be the full-circle sentinel, got %+v", flat[0])
	}
}

func TestExtractPartsLoneCircleGivesTwoSingletonFaces(t *testing.T) {
	var g planar.G
	c := planar.NewCircle(planar.P(mustF("0"), mustF("0")), mustF("1"))
	flat := []planar.Arc{planar.FullCircleArc(c)}

	parts := extractParts[planar.Point, planar.Circle, planar.Circle, planar.Arc, planar.ArcsOnCircle](g, flat)
	if len(parts) != 2 {
		t.Fatalf("expected 2 parts (interior, exterior), got %d", len(parts))
	}
	for _, p := range parts {
		if len(p.Arcs) != 1 {
			t.Errorf("expected each part to have a single boundary arc, got %d", len(p.Arcs))
		}
	}
}

func geomCutsOf(g planar.G, c planar.Circle, u arcs.UnitArcs) *geom.HashMap[planar.Circle, planar.ArcsOnCircle] {
	m := newCutsMap[planar.Point, planar.Circle, planar.Circle, planar.Arc, planar.ArcsOnCircle](g)
	m.Set(c, planar.ArcsOnCircle{Circle: c, UnitArcs: u})
	return m
}

// TestSphericalTangentTieBreakStartStart hand-works a case from §4.E's
// tangent tie-break rules on the sphere: two circles through the same
// point p with the same tangent direction there (they're tangent to each
// other at p, not just incident), both arcs starting at p. Centers c1,
// c2 are built as cos(r)*p + sin(r)*u for a shared perpendicular u, so
// Cross(c, p) = sin(r)*Cross(u, p) points the same way for every radius
// in (0,π) — the two circles are tangent at p regardless of r1 vs r2.
//
// This only exercises the representation-consistent case the closure
// engine actually produces (every Circle value it discovers keeps
// whichever of the two dual representations (§3) its originating move
// disk used, rotated but never re-dualized). The opposite-dual tie-break
// DESIGN.md's Open Questions section leaves open — whether lessEntry
// should reduce one side's radius to its supplement before comparing
// when the two tangent circles are stored in opposite dual
// representations — is not exercised here; see that section.
func TestSphericalTangentTieBreakStartStart(t *testing.T) {
	var g spherical.G
	p := spherical.Point{X: fixed.NewFromInt64(1), Y: fixed.Zero, Z: fixed.Zero}
	u := spherical.Point{X: fixed.Zero, Y: fixed.NewFromInt64(1), Z: fixed.Zero}

	rSmall := fixed.Pi().Div(fixed.NewFromInt64(6)) // 30°
	rLarge := fixed.Pi().Div(fixed.NewFromInt64(3)) // 60°

	newTangentCircle := func(r fixed.Fixed) spherical.Circle {
		center := p.Scale(r.Cos()).Add(u.Scale(r.Sin()))
		return spherical.NewCircle(center, r)
	}

	flat := []spherical.Arc{
		spherical.NewArc(newTangentCircle(rSmall), p, p),
		spherical.NewArc(newTangentCircle(rLarge), p, p),
	}
	small := dirEntry{arcID: 0, startsHere: true}
	large := dirEntry{arcID: 1, startsHere: true}

	angleSmall := entryAngle[spherical.Point, spherical.Circle, spherical.Disk, spherical.Arc, spherical.ArcsOnCircle](g, flat, small)
	angleLarge := entryAngle[spherical.Point, spherical.Circle, spherical.Disk, spherical.Arc, spherical.ArcsOnCircle](g, flat, large)
	if !angleSmall.Equal(angleLarge) {
		t.Fatalf("expected both arcs to leave p in the same tangent direction, got %v vs %v", angleSmall, angleLarge)
	}

	// §4.E: "Both start at p: the one with smaller radius sorts greater."
	// So the larger-radius arc sorts first (less), the smaller-radius arc
	// sorts after it.
	if !lessEntry[spherical.Point, spherical.Circle, spherical.Disk, spherical.Arc, spherical.ArcsOnCircle](g, flat, large, small) {
		t.Errorf("expected the larger-radius arc to sort before the smaller-radius arc")
	}
	if lessEntry[spherical.Point, spherical.Circle, spherical.Disk, spherical.Arc, spherical.ArcsOnCircle](g, flat, small, large) {
		t.Errorf("expected the smaller-radius arc not to sort before the larger-radius arc")
	}
}
