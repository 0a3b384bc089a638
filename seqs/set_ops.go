package seqs

// Union returns every value present in a or b, deduplicated, ordered by first
// appearance in a and then in b.
func Union[T comparable](a, b []T) []T {
	return Dedupe(append(append(make([]T, 0, len(a)+len(b)), a...), b...))
}

// Intersect returns every value present in both a and b, deduplicated,
// ordered by first appearance in a.
func Intersect[T comparable](a, b []T) []T {
	inB := toSet(b)
	out := make([]T, 0)
	for _, v := range Dedupe(a) {
		if _, ok := inB[v]; ok {
			out = append(out, v)
		}
	}

	return out
}

// Difference returns every value present in a but not in b, deduplicated,
// ordered by first appearance in a.
func Difference[T comparable](a, b []T) []T {
	inB := toSet(b)
	out := make([]T, 0)
	for _, v := range Dedupe(a) {
		if _, ok := inB[v]; !ok {
			out = append(out, v)
		}
	}

	return out
}

// SymmetricDifference returns every value present in exactly one of a and b,
// deduplicated, a's exclusives first, then b's.
func SymmetricDifference[T comparable](a, b []T) []T {
	return append(Difference(a, b), Difference(b, a)...)
}

func toSet[T comparable](seq []T) map[T]struct{} {
	set := make(map[T]struct{}, len(seq))
	for _, v := range seq {
		set[v] = struct{}{}
	}

	return set
}
