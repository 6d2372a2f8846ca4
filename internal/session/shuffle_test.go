package session

import (
	"math/rand"
	"reflect"
	"sort"
	"testing"
)

func TestShuffleIsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	in := []string{"a", "b", "c", "d", "e", "f", "g"}

	out := Shuffle(rng, in)

	if len(out) != len(in) {
		t.Fatalf("len = %d, want %d", len(out), len(in))
	}
	sortedIn := append([]string(nil), in...)
	sortedOut := append([]string(nil), out...)
	sort.Strings(sortedIn)
	sort.Strings(sortedOut)
	if !reflect.DeepEqual(sortedIn, sortedOut) {
		t.Errorf("output %v is not a permutation of %v", out, in)
	}
}

func TestShuffleDoesNotMutateInput(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	in := []string{"a", "b", "c", "d", "e"}
	orig := append([]string(nil), in...)

	for i := 0; i < 20; i++ {
		Shuffle(rng, in)
	}
	if !reflect.DeepEqual(in, orig) {
		t.Errorf("input mutated: %v", in)
	}
}

// TestShuffleVaries checks that repeated shuffles produce more than one
// ordering. Statistical, not exhaustive: 50 shuffles of 7 elements
// landing on a single ordering would be astronomically unlikely.
func TestShuffleVaries(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	in := []string{"a", "b", "c", "d", "e", "f", "g"}

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		out := Shuffle(rng, in)
		key := ""
		for _, s := range out {
			key += s
		}
		seen[key] = true
	}
	if len(seen) < 2 {
		t.Errorf("50 shuffles produced %d distinct orderings", len(seen))
	}
}

func TestShuffleSmallInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	if got := Shuffle(rng, []string{}); len(got) != 0 {
		t.Errorf("empty shuffle = %v", got)
	}
	if got := Shuffle(rng, []string{"only"}); len(got) != 1 || got[0] != "only" {
		t.Errorf("single shuffle = %v", got)
	}
}
