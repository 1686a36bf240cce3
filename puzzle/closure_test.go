package puzzle

import (
	"testing"

	"github.com/wkretschmer/circlepuzzle/planar"
)

func TestClosureLoneDiskHasOnlyItsOwnCircle(t *testing.T) {
	var g planar.G
	c := planar.NewCircle(planar.P(mustF("0"), mustF("0")), mustF("1"))
	m, err := planar.NewMove(c, 5)
	if err != nil {
		t.Fatalf("NewMove: %v", err)
	}

	cuts, ms, err := Closure[planar.Point, planar.Circle, planar.Circle, planar.Arc, planar.ArcsOnCircle](g, []planar.Move{m}, 0)
	if err != nil {
		t.Fatalf("Closure: %v", err)
	}
	if len(ms) != 1 {
		t.Fatalf("expected 1 deduplicated move, got %d", len(ms))
	}
	if cuts.Len() != 1 {
		t.Fatalf("expected exactly one cut circle, got %d", cuts.Len())
	}
	arcs, ok := cuts.Get(c)
	if !ok {
		t.Fatal("expected the disk's own circle in allCuts")
	}
	if !arcs.NonEmpty() {
		t.Error("the disk's own boundary must be present")
	}
}

func TestClosureDeduplicatesIdenticalMoves(t *testing.T) {
	var g planar.G
	c := planar.NewCircle(planar.P(mustF("0"), mustF("0")), mustF("1"))
	m, err := planar.NewMove(c, 3)
	if err != nil {
		t.Fatalf("NewMove: %v", err)
	}

	_, ms1, err := Closure[planar.Point, planar.Circle, planar.Circle, planar.Arc, planar.ArcsOnCircle](g, []planar.Move{m, m}, 0)
	if err != nil {
		t.Fatalf("Closure: %v", err)
	}
	_, ms2, err := Closure[planar.Point, planar.Circle, planar.Circle, planar.Arc, planar.ArcsOnCircle](g, []planar.Move{m}, 0)
	if err != nil {
		t.Fatalf("Closure: %v", err)
	}
	if len(ms1) != len(ms2) {
		t.Errorf("expected [m,m] to dedupe to the same move count as [m]: got %d vs %d", len(ms1), len(ms2))
	}
}

func TestClosureRespectsMaxCuts(t *testing.T) {
	var g planar.G
	c1 := planar.NewCircle(planar.P(mustF("-1"), mustF("0")), mustF("2.5"))
	c2 := planar.NewCircle(planar.P(mustF("1"), mustF("0")), mustF("2.5"))
	m1, _ := planar.NewMove(c1, 3)
	m2, _ := planar.NewMove(c2, 3)

	_, _, err := Closure[planar.Point, planar.Circle, planar.Circle, planar.Arc, planar.ArcsOnCircle](g, []planar.Move{m1, m2}, 1)
	if err != ErrTooManyCuts {
		t.Errorf("expected ErrTooManyCuts with a ceiling of 1, got %v", err)
	}
}
