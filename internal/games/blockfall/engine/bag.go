package engine

import (
	"fmt"
	"math/rand"
)

const (
	// BagCopies is how many copies of each kind the bag holds.
	BagCopies = 4
	// BagSize is the total number of slots in the bag.
	BagSize = BagCopies * KindCount
)

// Source supplies the next piece kind.
type Source interface {
	Next() Kind
}

// Bag is a piece randomizer over four copies of every kind.
//
// The last History slots form a ring of recently drawn pieces. Each draw
// swaps a uniformly chosen slot from the remaining draw zone into the
// oldest ring position and yields it, so any History+1 consecutive draws
// are distinct copies.
type Bag struct {
	slots   [BagSize]Kind
	history int
	ring    int
	rng     *rand.Rand
}

// NewBag creates a bag with a history window of the given size.
// It panics when history is outside [1, BagSize-1].
func NewBag(rng *rand.Rand, history int) *Bag {
	if history < 1 || history >= BagSize {
		panic(fmt.Sprintf("engine: bag history %d out of range [1, %d]", history, BagSize-1))
	}

	b := &Bag{history: history, ring: history, rng: rng}
	for i := range b.slots {
		b.slots[i] = Kind(i % KindCount)
	}
	for k := history; k > 0; k-- {
		i := BagSize - k
		j := rng.Intn(i + 1)
		b.slots[i], b.slots[j] = b.slots[j], b.slots[i]
	}
	return b
}

// Next draws the next kind.
func (b *Bag) Next() Kind {
	i := BagSize - b.ring
	j := b.rng.Intn(BagSize - b.history)
	b.slots[i], b.slots[j] = b.slots[j], b.slots[i]
	b.ring = b.ring%b.history + 1
	return b.slots[i]
}

// History returns the size of the anti-repetition window.
func (b *Bag) History() int {
	return b.history
}

// Slots returns a copy of the bag contents.
func (b *Bag) Slots() [BagSize]Kind {
	return b.slots
}
