package engine

import (
	"math/rand"
	"testing"
)

func TestBagIsAlwaysAPermutation(t *testing.T) {
	bag := NewBag(rand.New(rand.NewSource(7)), 14)
	for n := 0; n < 500; n++ {
		bag.Next()
		var counts [KindCount]int
		for _, k := range bag.Slots() {
			counts[k]++
		}
		for k, c := range counts {
			if c != BagCopies {
				t.Fatalf("after %d draws kind %v has %d copies, expected %d", n+1, Kind(k), c, BagCopies)
			}
		}
	}
}

func TestBagWindowBound(t *testing.T) {
	for _, history := range []int{4, 14, 27} {
		bag := NewBag(rand.New(rand.NewSource(int64(history))), history)
		draws := make([]Kind, 5000)
		for i := range draws {
			draws[i] = bag.Next()
		}

		window := history + 1
		for start := 0; start+window <= len(draws); start++ {
			var counts [KindCount]int
			for _, k := range draws[start : start+window] {
				counts[k]++
				if counts[k] > BagCopies {
					t.Fatalf("H=%d: kind %v appears %d times in window starting at %d", history, k, counts[k], start)
				}
			}
		}

		run := 1
		for i := 1; i < len(draws); i++ {
			if draws[i] == draws[i-1] {
				run++
			} else {
				run = 1
			}
			if run > BagCopies {
				t.Fatalf("H=%d: kind %v repeated %d times in a row", history, draws[i], run)
			}
		}
	}
}

func TestBagDeterminism(t *testing.T) {
	a := NewBag(rand.New(rand.NewSource(42)), 14)
	b := NewBag(rand.New(rand.NewSource(42)), 14)
	for i := 0; i < 200; i++ {
		if ka, kb := a.Next(), b.Next(); ka != kb {
			t.Fatalf("draw %d differs: %v vs %v", i, ka, kb)
		}
	}
}

func TestBagDistribution(t *testing.T) {
	const draws = 70000
	bag := NewBag(rand.New(rand.NewSource(3)), 14)
	var counts [KindCount]int
	for i := 0; i < draws; i++ {
		counts[bag.Next()]++
	}
	for k, c := range counts {
		share := float64(c) / draws
		if share < 0.12 || share > 0.165 {
			t.Errorf("kind %v share = %.3f, expected close to 1/7", Kind(k), share)
		}
	}
}

func TestBagRejectsBadHistory(t *testing.T) {
	for _, history := range []int{0, BagSize} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewBag(history=%d) should panic", history)
				}
			}()
			NewBag(rand.New(rand.NewSource(1)), history)
		}()
	}
}
