package stats

import "cmp"

// Popular is the most frequent value of a column and the number of rows
// holding it.
type Popular[T cmp.Ordered] struct {
	Value T
	Count int
}

// Mode returns the most frequent value. Ties go to the smallest value so the
// result does not depend on row or map order. ok is false for no values.
func Mode[T cmp.Ordered](values []T) (p Popular[T], ok bool) {
	if len(values) == 0 {
		return p, false
	}

	counts := make(map[T]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	first := true
	for v, n := range counts {
		if first || n > p.Count || (n == p.Count && v < p.Value) {
			p = Popular[T]{Value: v, Count: n}
			first = false
		}
	}
	return p, true
}
