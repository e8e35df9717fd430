package pattern

import (
	"fmt"
	"math/rand"

	"heartdodge/internal/collision"
	"heartdodge/internal/config"
	"heartdodge/internal/hazard"
	"heartdodge/internal/projectile"
)

// Counters holds the private timing state of one (pattern, slot) pair.
type Counters struct {
	Spawn int
}

// tick increments the spawn counter and reports whether interval was
// reached, resetting the counter when it was.
func (c *Counters) tick(interval int) bool {
	c.Spawn++
	if c.Spawn >= interval {
		c.Spawn = 0
		return true
	}
	return false
}

type counterKey struct {
	id   ID
	slot Slot
}

type crossState struct {
	built   bool
	cx, cy  float64
	angle   float64
	members []*projectile.Cross
}

// Stage is where patterns run: it owns the hazards, the per-pattern counters
// and a reference to the shared projectile field.
type Stage struct {
	cfg      *config.Config
	arena    collision.Rect
	field    *projectile.Field
	rng      *rand.Rand
	counters map[counterKey]*Counters
	lasers   []*hazard.LaserBeam
	wells    []*hazard.GravityWell
	gravity  bool
	cross    crossState
}

// NewStage creates a stage for the given arena. rng drives every random
// choice the patterns make.
func NewStage(cfg *config.Config, arena collision.Rect, field *projectile.Field, rng *rand.Rand) *Stage {
	return &Stage{
		cfg:      cfg,
		arena:    arena,
		field:    field,
		rng:      rng,
		counters: make(map[counterKey]*Counters),
	}
}

// Field returns the shared projectile collection.
func (s *Stage) Field() *projectile.Field {
	return s.field
}

// Counters returns the counters of a (pattern, slot) pair, creating them on
// first use.
func (s *Stage) Counters(id ID, slot Slot) *Counters {
	k := counterKey{id, slot}
	c, ok := s.counters[k]
	if !ok {
		c = &Counters{}
		s.counters[k] = c
	}
	return c
}

// ResetCounters zeroes every pattern counter.
func (s *Stage) ResetCounters() {
	s.counters = make(map[counterKey]*Counters)
}

// Clear discards every projectile and hazard spawned so far.
func (s *Stage) Clear() {
	s.field.Clear()
	s.lasers = nil
	s.wells = nil
	s.gravity = false
	s.cross = crossState{}
}

// Execute runs one tick of a pattern in the given slot.
func (s *Stage) Execute(id ID, slot Slot, ctx Context) {
	c := s.Counters(id, slot)
	switch id {
	case LineRain:
		s.lineRain(c, ctx)
	case CircleBurst:
		s.circleBurst(c, ctx)
	case Targeting:
		s.targeting(c, ctx)
	case BouncingWalls:
		s.bouncingWalls(c, ctx)
	case Spiral:
		s.spiral(c, ctx)
	case LaserWarning:
		s.laserWarning(c, ctx)
	case SnakeWave:
		s.snakeWave(c, ctx)
	case HomingBlades:
		s.homingBlades(c, ctx)
	case ExpandingRing:
		s.expandingRing(c, ctx)
	case GravityWells:
		s.gravityWells(c, ctx)
	case RotatingCross:
		s.rotatingCross(c, ctx)
	default:
		panic(fmt.Sprintf("pattern: invalid pattern id %d", int(id)))
	}
}

// Lasers returns the live laser beams.
func (s *Stage) Lasers() []*hazard.LaserBeam {
	return s.lasers
}

// Wells returns the gravity wells of the running pattern.
func (s *Stage) Wells() []*hazard.GravityWell {
	return s.wells
}

// GravityMode reports whether a gravity pattern has run since the last clear.
func (s *Stage) GravityMode() bool {
	return s.gravity || len(s.wells) > 0
}

// GravityActive reports whether at least one well currently exerts force.
func (s *Stage) GravityActive() bool {
	for _, w := range s.wells {
		if w.Active {
			return true
		}
	}
	return false
}

// GravityForce sums the force of every well on a player at (px, py).
func (s *Stage) GravityForce(px, py float64) (fx, fy float64) {
	for _, w := range s.wells {
		wx, wy := w.ApplyForce(px, py)
		fx += wx
		fy += wy
	}
	return fx, fy
}

// LaserHit reports whether any active beam overlaps box.
func (s *Stage) LaserHit(box *collision.BoundingBox) bool {
	for _, l := range s.lasers {
		if l.CheckCollision(box) {
			return true
		}
	}
	return false
}

// randInt returns an integer coordinate in [lo, hi]; lo when the range is empty.
func (s *Stage) randInt(lo, hi float64) float64 {
	l, h := int(lo), int(hi)
	if h <= l {
		return float64(l)
	}
	return float64(l + s.rng.Intn(h-l+1))
}

// uniform returns a float in [lo, hi).
func (s *Stage) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
