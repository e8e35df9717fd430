package projectile

import (
	"heartdodge/internal/collision"
)

// Field is the shared collection of live projectiles for one battle.
// Projectiles added while the field is being iterated are held back and
// merged once the iteration finishes, so patterns may spawn from inside an
// Each callback.
type Field struct {
	items      []Projectile
	pending    []Projectile
	nextID     uint64
	iterating  int
	killRegion collision.Rect
}

// NewField creates an empty field. Straight bullets added to it die once
// they leave arena expanded by margin.
func NewField(arena collision.Rect, margin float64) *Field {
	return &Field{killRegion: arena.Expand(margin)}
}

// Add registers a projectile, assigns its ID and binds the kill region.
func (f *Field) Add(p Projectile) Projectile {
	f.nextID++
	b := p.body()
	b.id = f.nextID
	b.SetKillRegion(f.killRegion)

	if f.iterating > 0 {
		f.pending = append(f.pending, p)
	} else {
		f.items = append(f.items, p)
	}
	return p
}

// Spawn creates and adds a straight bullet, returning it as the handle.
func (f *Field) Spawn(kind Kind, x, y, vx, vy, width, height float64) *Bullet {
	b := NewBullet(kind, x, y, vx, vy, width, height)
	f.Add(b)
	return b
}

// Update advances every live projectile once and removes the ones that
// expired during the move.
func (f *Field) Update() {
	f.Each(func(p Projectile) {
		p.Advance()
	})
	f.Sweep()
}

// Each calls fn for every live projectile over a stable snapshot.
func (f *Field) Each(fn func(Projectile)) {
	f.iterating++
	for _, p := range f.items {
		if !p.Expired() {
			fn(p)
		}
	}
	f.iterating--
	if f.iterating == 0 && len(f.pending) > 0 {
		f.items = append(f.items, f.pending...)
		f.pending = f.pending[:0]
	}
}

// Sweep removes expired projectiles.
func (f *Field) Sweep() {
	if f.iterating > 0 {
		return
	}
	live := f.items[:0]
	for _, p := range f.items {
		if !p.Expired() {
			live = append(live, p)
		}
	}
	for i := len(live); i < len(f.items); i++ {
		f.items[i] = nil
	}
	f.items = live
}

// Clear discards every projectile immediately.
func (f *Field) Clear() {
	f.items = nil
	f.pending = nil
}

// Len returns the number of live projectiles, including pending ones.
func (f *Field) Len() int {
	n := 0
	for _, p := range f.items {
		if !p.Expired() {
			n++
		}
	}
	for _, p := range f.pending {
		if !p.Expired() {
			n++
		}
	}
	return n
}

// Snapshot returns the live projectiles in insertion order.
func (f *Field) Snapshot() []Projectile {
	out := make([]Projectile, 0, len(f.items)+len(f.pending))
	for _, p := range f.items {
		if !p.Expired() {
			out = append(out, p)
		}
	}
	for _, p := range f.pending {
		if !p.Expired() {
			out = append(out, p)
		}
	}
	return out
}

// Colliding returns the live projectiles whose box overlaps box.
func (f *Field) Colliding(box *collision.BoundingBox) []Projectile {
	var hits []Projectile
	for _, p := range f.items {
		if !p.Expired() && p.Box().Intersects(box) {
			hits = append(hits, p)
		}
	}
	return hits
}
