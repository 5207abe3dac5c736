package slices

// Find searches for a given element in a slice of elements of the same type.
// It relaxes comparison between primitives with underlying types.
func Find[E ~[]T, T any](l E, pred func(T) bool) (T, bool) {
	for _, x := range l {
		if pred(x) {
			return x, true
		}
	}
	var x T
	return x, false
}

// OneOf checks whether x is among xs.
func OneOf[T comparable](x T, xs ...T) bool {
	for _, x2 := range xs {
		if x == x2 {
			return true
		}
	}

	return false
}

// UniqueBy keeps the first element of l for every key, preserving order.
func UniqueBy[E ~[]T, T any, K comparable](l E, key func(T) K) E {
	seen := make(map[K]struct{}, len(l))
	res := make(E, 0, len(l))
	for _, x := range l {
		k := key(x)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		res = append(res, x)
	}
	return res
}
