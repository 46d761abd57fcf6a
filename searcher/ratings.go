package searcher

import (
	"cmp"
	"slices"
)

// RepeatRating rates a position seen recently. It loses against any
// sequence that does not repeat.
const RepeatRating = -99999.0

// Ratings rates one line of play, deepest position first: index 0 is the
// furthest position reached and the last index is the rated position itself.
type Ratings []float64

// CompareRatings ranks two rating sequences and returns a positive number
// when a ranks above b, a negative number when b ranks above a and zero when
// they are equivalent. In order of priority:
//  1. the higher deepest rating wins,
//  2. the shorter sequence wins, as it reaches the same rating sooner,
//  3. the lexicographically greater sequence wins, keeping the rating high
//     at every step along the way.
//
// So [4 3 2] > [3 1] > [3 2 2] > [3 2 1] > [-99999].
func CompareRatings(a, b Ratings) int {
	if len(a) == 0 || len(b) == 0 {
		return cmp.Compare(len(a), len(b))
	}
	if c := cmp.Compare(a[0], b[0]); c != 0 {
		return c
	}
	if len(a) != len(b) {
		return cmp.Compare(len(b), len(a))
	}
	return slices.Compare(a, b)
}
