package attack

import (
	"heartdodge/internal/collision"
	"heartdodge/internal/hazard"
	"heartdodge/internal/projectile"
)

// DrawableKind tells the renderer how to draw an entry.
type DrawableKind int

const (
	DrawBullet DrawableKind = iota
	DrawBlade
	DrawLaserWarning
	DrawLaserBeam
	DrawWell
)

// Drawable is a read-only copy of something on screen. Only the fields that
// matter for Kind are set.
type Drawable struct {
	Kind DrawableKind

	// Bullets and blades.
	Shape projectile.Kind
	Box   collision.BoundingBox
	Blade projectile.BladeState
	Scale float64

	// Lasers.
	Horizontal bool
	Beam       collision.Rect
	Line       float64

	// Wells.
	X, Y   float64
	Radius float64
	Repel  bool
	Pulse  float64
}

// Drawables snapshots every live projectile and hazard. The result shares no
// state with the manager.
func (m *Manager) Drawables() []Drawable {
	var out []Drawable

	for _, p := range m.stage.Field().Snapshot() {
		d := Drawable{Kind: DrawBullet, Shape: p.Kind(), Box: *p.Box(), Scale: 1}
		if b, ok := p.(*projectile.Blade); ok {
			d.Kind = DrawBlade
			d.Blade = b.State
			d.Scale = b.Scale()
		}
		out = append(out, d)
	}

	for _, l := range m.stage.Lasers() {
		d := Drawable{Horizontal: l.Horizontal, Beam: l.BeamRect(), Line: l.Pos}
		switch l.State {
		case hazard.LaserWarning:
			d.Kind = DrawLaserWarning
		case hazard.LaserActive:
			d.Kind = DrawLaserBeam
		default:
			continue
		}
		out = append(out, d)
	}

	for _, w := range m.stage.Wells() {
		if !w.Active {
			continue
		}
		out = append(out, Drawable{
			Kind:   DrawWell,
			X:      w.X,
			Y:      w.Y,
			Radius: w.Radius,
			Repel:  w.Repel,
			Pulse:  w.Pulse(),
		})
	}
	return out
}
