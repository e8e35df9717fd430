// Package hazard holds the non-projectile dangers of the dodge phase:
// gravity wells that push the player around and lasers that sweep the arena.
package hazard

import (
	"math"
)

// forceScale is the distance at which a well exerts exactly its strength.
const forceScale = 100.0

// GravityWell pulls the player towards it, or pushes the player away when
// Repel is set, for Duration ticks.
type GravityWell struct {
	X, Y        float64
	Strength    float64
	Repel       bool
	Duration    int
	Elapsed     int
	Active      bool
	Radius      float64
	MinDistance float64
}

// NewGravityWell creates an active well. minDistance floors the distance
// used in the force law.
func NewGravityWell(x, y, strength float64, repel bool, duration int, radius, minDistance float64) *GravityWell {
	return &GravityWell{
		X:           x,
		Y:           y,
		Strength:    strength,
		Repel:       repel,
		Duration:    duration,
		Active:      duration > 0,
		Radius:      radius,
		MinDistance: minDistance,
	}
}

// Update advances the well by one tick.
func (w *GravityWell) Update() {
	w.Elapsed++
	if w.Elapsed >= w.Duration {
		w.Active = false
	}
}

// ApplyForce returns the force the well exerts on a player at (px, py).
// The magnitude is strength*100/max(distance, MinDistance); a player sitting
// exactly on the well feels no force.
func (w *GravityWell) ApplyForce(px, py float64) (fx, fy float64) {
	if !w.Active {
		return 0, 0
	}

	dx := w.X - px
	dy := w.Y - py
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return 0, 0
	}

	magnitude := w.Strength * (forceScale / math.Max(dist, w.MinDistance))
	if w.Repel {
		magnitude = -magnitude
	}

	return dx / dist * magnitude, dy / dist * magnitude
}

// Pulse is the visual radius multiplier for the current tick.
func (w *GravityWell) Pulse() float64 {
	return 1 + 0.2*math.Sin(float64(w.Elapsed)*0.2)
}
