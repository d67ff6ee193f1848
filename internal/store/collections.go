package store

// Helpers that build new slices so published snapshots are never written through.

func prepend[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, item)
	return append(out, items...)
}

// replace returns a copy of items with fn applied to every match, and whether anything matched.
// When nothing matches the original slice is returned.
func replace[T any](items []T, match func(T) bool, fn func(T) T) ([]T, bool) {
	var out []T
	for i, item := range items {
		if !match(item) {
			continue
		}
		if out == nil {
			out = make([]T, len(items))
			copy(out, items)
		}
		out[i] = fn(item)
	}
	if out == nil {
		return items, false
	}
	return out, true
}

// remove returns a copy of items without the matches, and whether anything was removed.
func remove[T any](items []T, match func(T) bool) ([]T, bool) {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if !match(item) {
			out = append(out, item)
		}
	}
	if len(out) == len(items) {
		return items, false
	}
	return out, true
}

func find[T any](items []T, match func(T) bool) (T, bool) {
	for _, item := range items {
		if match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}
