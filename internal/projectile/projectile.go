// Package projectile holds the moving shapes spawned by attack patterns and
// the shared collection they live in for the duration of a battle.
package projectile

import (
	"heartdodge/internal/collision"
)

// Kind identifies a projectile variant.
type Kind int

const (
	KindLine Kind = iota
	KindCircle
	KindTargeting
	KindSpiral
	KindBouncing
	KindWave
	KindBlade
	KindRing
	KindCross
)

var kindNames = [...]string{
	KindLine:      "line",
	KindCircle:    "circle",
	KindTargeting: "targeting",
	KindSpiral:    "spiral",
	KindBouncing:  "bouncing",
	KindWave:      "wave",
	KindBlade:     "blade",
	KindRing:      "ring",
	KindCross:     "cross",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Projectile is a moving collision box. Every variant in this package
// satisfies it; the unexported methods keep the set closed.
type Projectile interface {
	ID() uint64
	Kind() Kind
	Box() *collision.BoundingBox
	// Advance moves the projectile by one tick and marks it dead when it
	// leaves its allowed region.
	Advance()
	Expired() bool
	Kill()

	body() *Bullet
}

// Bullet is a straight-line projectile with constant velocity. Other variants
// embed it for identity, box and lifetime bookkeeping.
type Bullet struct {
	id        uint64
	kind      Kind
	box       collision.BoundingBox
	VX, VY    float64
	bounds    collision.Rect
	hasBounds bool
	dead      bool
}

// NewBullet creates a bullet centred at (x, y).
func NewBullet(kind Kind, x, y, vx, vy, width, height float64) *Bullet {
	return &Bullet{
		kind: kind,
		box:  collision.BoundingBox{X: x, Y: y, Width: width, Height: height},
		VX:   vx,
		VY:   vy,
	}
}

func (b *Bullet) ID() uint64                  { return b.id }
func (b *Bullet) Kind() Kind                  { return b.kind }
func (b *Bullet) Box() *collision.BoundingBox { return &b.box }
func (b *Bullet) Expired() bool               { return b.dead }
func (b *Bullet) Kill()                       { b.dead = true }
func (b *Bullet) body() *Bullet               { return b }

// Position returns the centre of the bullet.
func (b *Bullet) Position() (float64, float64) {
	return b.box.X, b.box.Y
}

// SetKillRegion binds the region outside of which the bullet dies.
func (b *Bullet) SetKillRegion(region collision.Rect) {
	b.bounds = region
	b.hasBounds = true
}

func (b *Bullet) Advance() {
	b.box.MoveBy(b.VX, b.VY)
	b.checkBounds()
}

func (b *Bullet) checkBounds() {
	if b.hasBounds && !b.bounds.ContainsBox(&b.box) {
		b.dead = true
	}
}
