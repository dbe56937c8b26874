package world

// FloorDiv divides rounding toward negative infinity. b must be positive.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && (a < 0) {
		q--
	}
	return q
}

// Mod returns the euclidean remainder in [0, b). b must be positive.
func Mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

func AbsInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
