package mathutil

import "math"

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// Normalize returns the unit vector of (dx, dy). ok is false for a zero-length
// vector, in which case the caller picks its own fallback.
func Normalize(dx, dy float64) (nx, ny float64, ok bool) {
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return 0, 0, false
	}
	return dx / dist, dy / dist, true
}

// AimVelocity returns a velocity of the given speed pointing from (x, y) to
// (tx, ty). A zero-length aim falls back to straight down.
func AimVelocity(x, y, tx, ty, speed float64) (vx, vy float64) {
	nx, ny, ok := Normalize(tx-x, ty-y)
	if !ok {
		return 0, speed
	}
	return nx * speed, ny * speed
}

// Polar returns the point at angle/radius around (cx, cy).
func Polar(cx, cy, angle, radius float64) (x, y float64) {
	return cx + math.Cos(angle)*radius, cy + math.Sin(angle)*radius
}
