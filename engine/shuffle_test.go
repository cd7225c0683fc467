package engine

import (
	"math/rand"
	"testing"
)

func TestShufflePermutes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	in := []string{"a", "b", "c", "d", "e", "f", "g"}

	out := Shuffle(rng, in)

	if len(out) != len(in) {
		t.Fatalf("expected %d elements, got %d", len(in), len(out))
	}
	counts := make(map[string]int)
	for _, v := range out {
		counts[v]++
	}
	for _, v := range in {
		if counts[v] != 1 {
			t.Fatalf("element %q appears %d times", v, counts[v])
		}
	}
}

func TestShuffleDoesNotMutateInput(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	in := []int{1, 2, 3, 4, 5, 6, 7, 8}

	for i := 0; i < 20; i++ {
		Shuffle(rng, in)
	}

	for i, v := range in {
		if v != i+1 {
			t.Fatalf("input mutated at index %d: got %d", i, v)
		}
	}
}

func TestShuffleSmallInputs(t *testing.T) {
	if out := Shuffle[int](nil, nil); len(out) != 0 {
		t.Fatalf("empty input produced %d elements", len(out))
	}
	if out := Shuffle(nil, []string{"solo"}); len(out) != 1 || out[0] != "solo" {
		t.Fatalf("singleton input changed: %v", out)
	}
}

func TestShuffleReachesAllPermutations(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	seen := make(map[[3]int]int)

	for i := 0; i < 6000; i++ {
		out := Shuffle(rng, []int{0, 1, 2})
		seen[[3]int{out[0], out[1], out[2]}]++
	}

	if len(seen) != 6 {
		t.Fatalf("expected all 6 permutations of 3 elements, saw %d", len(seen))
	}
	for perm, count := range seen {
		if count < 600 {
			t.Fatalf("permutation %v badly underrepresented: %d of 6000", perm, count)
		}
	}
}
