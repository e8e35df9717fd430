package projectile

import (
	"math"
	"testing"

	"heartdodge/internal/collision"
)

var testArena = collision.NewRect(100, 100, 400, 240)

func TestBulletAdvancesByVelocityOncePerTick(t *testing.T) {
	f := NewField(testArena, 100)
	b := f.Spawn(KindCircle, 300, 220, 1.5, -2, 8, 8)

	for i := 1; i <= 5; i++ {
		f.Update()
		x, y := b.Position()
		wantX := 300 + 1.5*float64(i)
		wantY := 220 - 2*float64(i)
		if math.Abs(x-wantX) > 1e-9 || math.Abs(y-wantY) > 1e-9 {
			t.Fatalf("tick %d: position (%v, %v), want (%v, %v)", i, x, y, wantX, wantY)
		}
	}
}

func TestBulletRemovedOnTickItLeavesKillRegion(t *testing.T) {
	f := NewField(testArena, 100)
	// Kill region bottom is 440; box half height is 4, so the bullet is still
	// contained while its centre is <= 436.
	b := f.Spawn(KindLine, 300, 430, 0, 3, 8, 8)

	f.Update() // centre 433
	if b.Expired() || f.Len() != 1 {
		t.Fatal("bullet removed before crossing the boundary")
	}
	f.Update() // centre 436, bottom edge exactly on boundary
	if b.Expired() {
		t.Fatal("bullet touching the boundary should still be alive")
	}
	f.Update() // centre 439, crossed
	if !b.Expired() {
		t.Fatal("bullet should be dead after crossing")
	}
	if f.Len() != 0 {
		t.Errorf("field should have swept the bullet, len = %d", f.Len())
	}
}

func TestFieldDefersAdditionsDuringIteration(t *testing.T) {
	f := NewField(testArena, 100)
	f.Spawn(KindCircle, 300, 220, 0, 0, 8, 8)

	visited := 0
	f.Each(func(p Projectile) {
		visited++
		f.Spawn(KindCircle, 310, 220, 0, 0, 8, 8)
	})
	if visited != 1 {
		t.Errorf("callback saw %d projectiles, want 1", visited)
	}
	if f.Len() != 2 {
		t.Errorf("pending spawn not merged, len = %d", f.Len())
	}
}

func TestFieldAssignsUniqueIDs(t *testing.T) {
	f := NewField(testArena, 100)
	a := f.Spawn(KindCircle, 300, 220, 0, 0, 8, 8)
	b := f.Spawn(KindCircle, 300, 220, 0, 0, 8, 8)
	if a.ID() == 0 || a.ID() == b.ID() {
		t.Errorf("ids not unique: %d, %d", a.ID(), b.ID())
	}
}

func TestFieldCollidingAndClear(t *testing.T) {
	f := NewField(testArena, 100)
	f.Spawn(KindCircle, 300, 220, 0, 0, 8, 8)
	f.Spawn(KindCircle, 400, 220, 0, 0, 8, 8)

	hits := f.Colliding(collision.NewBoundingBox(302, 222, 16, 16))
	if len(hits) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(hits))
	}
	hits[0].Kill()
	if len(f.Colliding(collision.NewBoundingBox(302, 222, 16, 16))) != 0 {
		t.Error("killed projectile should not collide")
	}

	f.Clear()
	if f.Len() != 0 || len(f.Snapshot()) != 0 {
		t.Error("Clear should discard everything")
	}
}

func TestBouncingReflectsAndExpires(t *testing.T) {
	b := NewBouncing(115, 220, -10, 0, 20, testArena, 2)

	b.Advance() // left edge 95 -> clamps to wall
	if b.VX <= 0 || b.Bounces != 1 {
		t.Fatalf("expected reflection off the left wall, vx=%v bounces=%d", b.VX, b.Bounces)
	}
	if minX, _, _, _ := b.Box().GetBounds(); minX != testArena.Left {
		t.Errorf("box should be clamped to the wall, minX = %v", minX)
	}

	b.VX = 1000
	b.Advance()
	if b.Bounces != 2 || !b.Expired() {
		t.Errorf("bullet should die at its bounce limit, bounces=%d expired=%v", b.Bounces, b.Expired())
	}
}

func TestWaveFollowsSine(t *testing.T) {
	w := NewWave(90, 200, 3, 30, 0.1, 6, testArena)
	for i := 1; i <= 10; i++ {
		w.Advance()
		x, y := w.Position()
		wantY := 200 + math.Sin(float64(i)*0.1)*30
		if math.Abs(x-(90+3*float64(i))) > 1e-9 || math.Abs(y-wantY) > 1e-9 {
			t.Fatalf("tick %d: (%v, %v), want (%v, %v)", i, x, y, 90+3*float64(i), wantY)
		}
	}
}

func TestWaveDiesPastRightEdge(t *testing.T) {
	w := NewWave(testArena.Right()+20, 200, 3, 0, 0, 6, testArena)
	w.Advance() // centre 523, left edge 517 <= 520
	if w.Expired() {
		t.Fatal("wave died before fully passing the margin")
	}
	w.Advance() // left edge 520
	w.Advance() // left edge 523 > 520
	if !w.Expired() {
		t.Error("wave should be dead past right edge + margin")
	}
}

func TestBladeUsesTargetFromEndOfAiming(t *testing.T) {
	exit := testArena.Expand(50)
	b := NewBlade(300, 120, 30, 15, 3, 2, exit)

	b.SetTarget(0, 120) // stale target
	b.Advance()
	b.SetTarget(300, 300) // latest target: straight down
	b.Advance()
	b.Advance() // aiming ends, heading locked
	if b.State != BladeCharging {
		t.Fatalf("state = %v, want charging", b.State)
	}
	b.SetTarget(0, 0)
	if b.TargetX != 300 || b.TargetY != 300 {
		t.Error("charging blade must ignore new targets")
	}
	if math.Abs(b.VX) > 1e-9 || math.Abs(b.VY-15) > 1e-9 {
		t.Fatalf("velocity = (%v, %v), want (0, 15)", b.VX, b.VY)
	}

	b.Advance()
	b.Advance()
	if b.State != BladeFlying {
		t.Fatalf("state = %v, want flying", b.State)
	}
	_, y0 := b.Position()
	b.Advance()
	if _, y1 := b.Position(); y1-y0 != 15 {
		t.Errorf("flying blade moved %v, want 15", y1-y0)
	}
}

func TestBladeZeroLengthAimFallsBackToDown(t *testing.T) {
	b := NewBlade(300, 200, 30, 10, 1, 1, testArena.Expand(50))
	b.SetTarget(300, 200)
	b.Advance()
	if b.VX != 0 || b.VY != 10 {
		t.Errorf("velocity = (%v, %v), want (0, 10)", b.VX, b.VY)
	}
}

func TestRingExpandsAndDiesPastLimit(t *testing.T) {
	r := NewRing(300, 220, 0, 10, 20, 8, 8)
	r.Expand(4)
	if x, y := r.Position(); math.Abs(x-314) > 1e-9 || math.Abs(y-220) > 1e-9 {
		t.Errorf("position (%v, %v), want (314, 220)", x, y)
	}
	r.Expand(4) // 18
	r.Expand(4) // 22 > 20
	if !r.Expired() {
		t.Error("ring bullet should die past its max radius")
	}
}

func TestCrossRotatesAroundSharedCentre(t *testing.T) {
	c := NewCross(300, 220, 1, math.Pi/2, 50, 8, 8)
	c.Rotate(300, 220, math.Pi/2)
	x, y := c.Position()
	if math.Abs(x-250) > 1e-9 || math.Abs(y-220) > 1e-9 {
		t.Errorf("position (%v, %v), want (250, 220)", x, y)
	}
}
