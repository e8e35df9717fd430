package hazard

import (
	"heartdodge/internal/collision"
)

// LaserState is the phase of a laser beam. Beams only move forward through
// the states.
type LaserState int

const (
	LaserWarning LaserState = iota
	LaserActive
	LaserDone
)

func (s LaserState) String() string {
	switch s {
	case LaserWarning:
		return "warning"
	case LaserActive:
		return "active"
	case LaserDone:
		return "done"
	}
	return "unknown"
}

// LaserBeam telegraphs a line across the arena, then fires a wide beam along
// it. Pos is the coordinate on the perpendicular axis (y for horizontal
// beams, x for vertical ones).
type LaserBeam struct {
	Horizontal   bool
	Pos          float64
	State        LaserState
	Elapsed      int
	WarningTicks int
	ActiveTicks  int
	Width        float64
	arena        collision.Rect
}

// NewLaserBeam creates a beam in the warning state.
func NewLaserBeam(arena collision.Rect, horizontal bool, pos float64, warningTicks, activeTicks int, width float64) *LaserBeam {
	return &LaserBeam{
		Horizontal:   horizontal,
		Pos:          pos,
		State:        LaserWarning,
		WarningTicks: warningTicks,
		ActiveTicks:  activeTicks,
		Width:        width,
		arena:        arena,
	}
}

// Update advances the beam by one tick.
func (l *LaserBeam) Update() {
	if l.State == LaserDone {
		return
	}
	l.Elapsed++
	switch {
	case l.State == LaserWarning && l.Elapsed >= l.WarningTicks:
		l.State = LaserActive
		l.Elapsed = 0
	case l.State == LaserActive && l.Elapsed >= l.ActiveTicks:
		l.State = LaserDone
	}
}

// Done reports whether the beam can be removed.
func (l *LaserBeam) Done() bool {
	return l.State == LaserDone
}

// BeamRect is the full-width area the beam covers while active.
func (l *LaserBeam) BeamRect() collision.Rect {
	half := l.Width / 2
	if l.Horizontal {
		return collision.NewRect(l.arena.Left, l.Pos-half, l.arena.Width, l.Width)
	}
	return collision.NewRect(l.Pos-half, l.arena.Top, l.Width, l.arena.Height)
}

// CheckCollision reports whether box is hit by the beam. Only active beams hit.
func (l *LaserBeam) CheckCollision(box *collision.BoundingBox) bool {
	if l.State != LaserActive {
		return false
	}
	return l.BeamRect().IntersectsBox(box)
}
