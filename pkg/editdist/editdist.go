// Package editdist computes Levenshtein distances between token sequences,
// with optional attribution of the individual edit operations and full
// alignment extraction.
//
// Tokens are any comparable type; word-level metrics use []string and
// character-level metrics use []rune. Every function is total over finite
// inputs — empty sequences included — allocates its own working tables, and
// is safe for concurrent use.
package editdist

import "slices"

// Gap marks the absent side of an insertion or deletion pair in an
// Alignment.
const Gap = -1

// OpCounts decomposes an edit distance into the operations along one
// optimal edit path. Distance always equals
// Substitutions + Deletions + Insertions.
type OpCounts struct {
	Substitutions int `json:"substitutions"`
	Deletions     int `json:"deletions"`
	Insertions    int `json:"insertions"`
	Distance      int `json:"distance"`
}

// Pair links one reference token to one hypothesis token by index. Gap on
// either side marks a deletion (hypothesis side absent) or an insertion
// (reference side absent) at that point in the edit path.
type Pair struct {
	Ref int `json:"ref"`
	Hyp int `json:"hyp"`
}

// Alignment is a minimum-cost edit path between two token sequences, read
// left to right. Every reference index and every hypothesis index appears
// exactly once across the whole alignment.
type Alignment []Pair

// Distance returns the minimum number of single-token substitutions,
// deletions, and insertions needed to turn a into b.
//
// It runs the single-row dynamic program: O(len(a)·len(b)) time and
// O(min(len(a), len(b))) memory, with the arguments swapped internally so
// the shorter sequence drives the row width. Distance is symmetric in its
// arguments.
func Distance[T comparable](a, b []T) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	if len(b) == 0 {
		return len(a)
	}

	row := make([]int, len(b)+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(a); i++ {
		prev := row[0] // cost of (i-1, 0)
		row[0] = i
		for j := 1; j <= len(b); j++ {
			cur := row[j]
			if a[i-1] == b[j-1] {
				row[j] = prev
			} else {
				row[j] = min(prev, row[j], row[j-1]) + 1
			}
			prev = cur
		}
	}
	return row[len(b)]
}

// DistanceDetailed returns the edit distance between a and b decomposed
// into substitution, deletion, and insertion counts.
//
// It fills the full DP table together with a parallel table of accumulated
// operation counts: each cell inherits the counts of the predecessor that
// produced its minimum cost. Cost ties resolve deterministically in the
// order match > substitution > deletion > insertion, so repeated runs
// attribute operations identically.
func DistanceDetailed[T comparable](a, b []T) OpCounts {
	n, m := len(a), len(b)
	w := m + 1
	cost := make([]int, (n+1)*w)
	ops := make([]OpCounts, (n+1)*w)

	for i := 1; i <= n; i++ {
		cost[i*w] = i
		ops[i*w] = OpCounts{Deletions: i, Distance: i}
	}
	for j := 1; j <= m; j++ {
		cost[j] = j
		ops[j] = OpCounts{Insertions: j, Distance: j}
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			diag := (i-1)*w + (j - 1)
			up := (i-1)*w + j
			left := i*w + (j - 1)
			here := i*w + j

			if a[i-1] == b[j-1] {
				cost[here] = cost[diag]
				ops[here] = ops[diag]
				continue
			}

			sub, del, ins := cost[diag]+1, cost[up]+1, cost[left]+1
			switch {
			case sub <= del && sub <= ins:
				c := ops[diag]
				c.Substitutions++
				c.Distance++
				cost[here], ops[here] = sub, c
			case del <= ins:
				c := ops[up]
				c.Deletions++
				c.Distance++
				cost[here], ops[here] = del, c
			default:
				c := ops[left]
				c.Insertions++
				c.Distance++
				cost[here], ops[here] = ins, c
			}
		}
	}
	return ops[n*w+m]
}

// Align returns a minimum-cost alignment between a and b, obtained by
// backtracking through the full DP table from (len(a), len(b)) to (0, 0)
// with the same match > substitution > deletion > insertion tie-break used
// by DistanceDetailed.
func Align[T comparable](a, b []T) Alignment {
	n, m := len(a), len(b)
	w := m + 1
	cost := costTable(a, b)

	pairs := make(Alignment, 0, max(n, m))
	i, j := n, m
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && a[i-1] == b[j-1]:
			pairs = append(pairs, Pair{Ref: i - 1, Hyp: j - 1})
			i--
			j--
		case i > 0 && j > 0 && cost[i*w+j] == cost[(i-1)*w+(j-1)]+1:
			pairs = append(pairs, Pair{Ref: i - 1, Hyp: j - 1})
			i--
			j--
		case i > 0 && cost[i*w+j] == cost[(i-1)*w+j]+1:
			pairs = append(pairs, Pair{Ref: i - 1, Hyp: Gap})
			i--
		default:
			pairs = append(pairs, Pair{Ref: Gap, Hyp: j - 1})
			j--
		}
	}

	// Backtracking emits the path back-to-front.
	slices.Reverse(pairs)
	return pairs
}

// costTable fills the full (len(a)+1)×(len(b)+1) edit-cost table, flattened
// row-major.
func costTable[T comparable](a, b []T) []int {
	n, m := len(a), len(b)
	w := m + 1
	cost := make([]int, (n+1)*w)

	for i := 1; i <= n; i++ {
		cost[i*w] = i
	}
	for j := 1; j <= m; j++ {
		cost[j] = j
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if a[i-1] == b[j-1] {
				cost[i*w+j] = cost[(i-1)*w+(j-1)]
			} else {
				cost[i*w+j] = min(cost[(i-1)*w+(j-1)], cost[(i-1)*w+j], cost[i*w+(j-1)]) + 1
			}
		}
	}
	return cost
}
