package puzzle

import (
	"testing"

	"github.com/wkretschmer/circlepuzzle/planar"
)

func TestPuzzleLoneDiskEndToEnd(t *testing.T) {
	c := planar.NewCircle(planar.P(mustF("0"), mustF("0")), mustF("1"))
	m, err := planar.NewMove(c, 6)
	if err != nil {
		t.Fatalf("NewMove: %v", err)
	}

	pz := planar.NewPuzzle([]planar.Move{m})
	parts, err := pz.Parts()
	if err != nil {
		t.Fatalf("Parts: %v", err)
	}
	if len(parts) != 2 {
		t.Fatalf("expected 2 parts for a disk intersecting nothing, got %d", len(parts))
	}

	strs, err := pz.PermutationStrings()
	if err != nil {
		t.Fatalf("PermutationStrings: %v", err)
	}
	if len(strs) != 1 {
		t.Fatalf("expected one permutation string, got %d", len(strs))
	}
	if strs[0] != "[1,2]" {
		t.Errorf("expected the identity [1,2], got %s", strs[0])
	}
}

func TestPuzzleMemoizesGroupedCuts(t *testing.T) {
	c := planar.NewCircle(planar.P(mustF("0"), mustF("0")), mustF("1"))
	m, _ := planar.NewMove(c, 3)
	pz := planar.NewPuzzle([]planar.Move{m})

	cuts1, err := pz.GroupedCuts()
	if err != nil {
		t.Fatalf("GroupedCuts: %v", err)
	}
	cuts2, err := pz.GroupedCuts()
	if err != nil {
		t.Fatalf("GroupedCuts: %v", err)
	}
	if cuts1 != cuts2 {
		t.Error("expected the second call to return the memoized instance")
	}
}

func TestPuzzleWithMaxCutsSurfacesError(t *testing.T) {
	c1 := planar.NewCircle(planar.P(mustF("-1"), mustF("0")), mustF("2.5"))
	c2 := planar.NewCircle(planar.P(mustF("1"), mustF("0")), mustF("2.5"))
	m1, _ := planar.NewMove(c1, 3)
	m2, _ := planar.NewMove(c2, 3)

	pz := planar.NewPuzzle([]planar.Move{m1, m2}).WithMaxCuts(1)
	if _, err := pz.Parts(); err != ErrTooManyCuts {
		t.Errorf("expected ErrTooManyCuts, got %v", err)
	}
}

func isPermutation(perm []int) bool {
	seen := make([]bool, len(perm))
	for _, v := range perm {
		if v < 0 || v >= len(perm) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

func applyNTimes(perm []int, n int) []int {
	id := make([]int, len(perm))
	for i := range id {
		id[i] = i
	}
	cur := id
	for k := 0; k < n; k++ {
		next := make([]int, len(perm))
		for i, v := range cur {
			next[i] = perm[v]
		}
		cur = next
	}
	return cur
}

func TestTwoMovePlanarPermutationsAreValid(t *testing.T) {
	c1 := planar.NewCircle(planar.P(mustF("-1"), mustF("0")), mustF("2.5"))
	c2 := planar.NewCircle(planar.P(mustF("1"), mustF("0")), mustF("2.5"))
	m1, _ := planar.NewMove(c1, 3)
	m2, _ := planar.NewMove(c2, 3)

	pz := planar.NewPuzzle([]planar.Move{m1, m2})
	perms, err := pz.PartPermutations()
	if err != nil {
		t.Fatalf("PartPermutations: %v", err)
	}
	if len(perms) != 2 {
		t.Fatalf("expected 2 permutations, got %d", len(perms))
	}
	for i, perm := range perms {
		if !isPermutation(perm) {
			t.Errorf("move %d: not a valid permutation of [0,%d): %v", i, len(perm), perm)
		}
		cubed := applyNTimes(perm, 3)
		for k, v := range cubed {
			if v != k {
				t.Errorf("move %d: cube should be the identity, got %v", i, cubed)
				break
			}
		}
	}
}
