package scratch

import "math"

// matchCounter returns the match count of the card with the given ID.
type matchCounter func(id int) int

// Points maps a match count to its score.
//
// The first match is worth one point and every further match doubles it, so
// k matches score 2^(k-1). Zero matches score nothing. Counts above 64 cannot
// be represented and saturate at math.MaxUint64.
func Points(matches int) uint64 {
	switch {
	case matches <= 0:
		return 0
	case matches > 64:
		return math.MaxUint64
	default:
		return 1 << (matches - 1)
	}
}

// wonRange returns the inclusive range of IDs a card wins copies of, clipped
// to the deck. last < first means the card wins nothing.
func wonRange(id, matches, size int) (first, last int) {
	return id + 1, min(id+matches, size-1)
}

// cascadeWorklist counts card instances by expanding every copy.
//
// The pile is seeded with one entry per original card. Entries are processed
// in order; each appends one entry per card it wins, and the pile keeps
// growing until the cursor reaches its end. Every instance is visited exactly
// once, so the work done equals the answer.
func cascadeWorklist(size int, matches matchCounter) int {
	pile := make([]int, size, 2*size)
	for id := range pile {
		pile[id] = id
	}

	for cursor := 0; cursor < len(pile); cursor++ {
		id := pile[cursor]
		first, last := wonRange(id, matches(id), size)
		for won := first; won <= last; won++ {
			pile = append(pile, won)
		}
	}

	return len(pile)
}

// cascadeMultiplier counts card instances by carrying copy counts forward.
//
// copies[id] is final once every lower ID has been visited, because only
// lower IDs can win copies of id. Each card then adds its own copy count to
// every card it wins.
func cascadeMultiplier(size int, matches matchCounter) int {
	copies := make([]int, size)
	for id := range copies {
		copies[id] = 1
	}

	total := 0
	for id := 0; id < size; id++ {
		total += copies[id]
		first, last := wonRange(id, matches(id), size)
		for won := first; won <= last; won++ {
			copies[won] += copies[id]
		}
	}

	return total
}
