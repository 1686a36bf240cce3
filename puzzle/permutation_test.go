package puzzle

import (
	"testing"

	"github.com/wkretschmer/circlepuzzle/planar"
)

func TestPermutationStringFormat(t *testing.T) {
	got := PermutationString([]int{2, 0, 1})
	want := "[3,1,2]"
	if got != want {
		t.Errorf("PermutationString: got %s, want %s", got, want)
	}
}

func TestPermutationsLoneDiskIsIdentity(t *testing.T) {
	var g planar.G
	c := planar.NewCircle(planar.P(mustF("0"), mustF("0")), mustF("1"))
	m, err := planar.NewMove(c, 5)
	if err != nil {
		t.Fatalf("NewMove: %v", err)
	}
	flat := []planar.Arc{planar.FullCircleArc(c)}
	parts := extractParts[planar.Point, planar.Circle, planar.Circle, planar.Arc, planar.ArcsOnCircle](g, flat)

	perms := Permutations[planar.Point, planar.Circle, planar.Circle, planar.Arc, planar.ArcsOnCircle](g, []planar.Move{m}, parts)
	if len(perms) != 1 {
		t.Fatalf("expected one permutation, got %d", len(perms))
	}
	for i, v := range perms[0] {
		if v != i {
			t.Errorf("expected the identity permutation on a lone, un-rotatable boundary, got %v", perms[0])
			break
		}
	}
}
