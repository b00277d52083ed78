// Package mathx holds small numeric helpers shared by the widget packages.
package mathx

import "cmp"

// Clamp limits v to the inclusive range [lo, hi].
// When lo > hi the result is lo; callers are expected to guard empty ranges.
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Sign returns -1, 0 or +1 according to the sign of v.
func Sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
