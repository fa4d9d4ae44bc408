package utils

// Clamp limits v to the closed range [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SubOrZero returns a-b, or 0 if that would be negative.
func SubOrZero(a, b int) int {
	if a < b {
		return 0
	}
	return a - b
}
