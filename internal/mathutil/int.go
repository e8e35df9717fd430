package mathutil

// IntMin returns the smaller of two ints.
func IntMin(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// IntMax returns the larger of two ints.
func IntMax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// IntClamp limits v to [lo, hi].
func IntClamp(v, lo, hi int) int {
	return IntMax(lo, IntMin(v, hi))
}

// TickInterval converts a base cadence into a difficulty-scaled tick count.
// Higher difficulty shortens the interval; the result is never below 1.
func TickInterval(base int, difficulty float64) int {
	if difficulty <= 0 {
		return IntMax(base, 1)
	}
	return IntMax(int(float64(base)/difficulty), 1)
}

// ScaledCount multiplies a base count by difficulty, truncating, with a floor of 1.
func ScaledCount(base int, difficulty float64) int {
	return IntMax(int(float64(base)*difficulty), 1)
}
