package projectile

import (
	"math"

	"heartdodge/internal/collision"
	"heartdodge/internal/mathutil"
)

// Bouncing reflects off the arena walls and dies after MaxBounces reflections.
type Bouncing struct {
	Bullet
	arena      collision.Rect
	MaxBounces int
	Bounces    int
}

// NewBouncing creates a square bouncing bullet confined to arena.
func NewBouncing(x, y, vx, vy, size float64, arena collision.Rect, maxBounces int) *Bouncing {
	return &Bouncing{
		Bullet:     *NewBullet(KindBouncing, x, y, vx, vy, size, size),
		arena:      arena,
		MaxBounces: maxBounces,
	}
}

func (b *Bouncing) Advance() {
	b.box.MoveBy(b.VX, b.VY)
	half := b.box.Width / 2
	halfH := b.box.Height / 2

	minX, minY, maxX, maxY := b.box.GetBounds()
	if minX <= b.arena.Left {
		b.box.X = b.arena.Left + half
		b.VX = math.Abs(b.VX)
		b.Bounces++
	} else if maxX >= b.arena.Right() {
		b.box.X = b.arena.Right() - half
		b.VX = -math.Abs(b.VX)
		b.Bounces++
	}

	if minY <= b.arena.Top {
		b.box.Y = b.arena.Top + halfH
		b.VY = math.Abs(b.VY)
		b.Bounces++
	} else if maxY >= b.arena.Bottom() {
		b.box.Y = b.arena.Bottom() - halfH
		b.VY = -math.Abs(b.VY)
		b.Bounces++
	}

	if b.Bounces >= b.MaxBounces {
		b.dead = true
	}
}

// waveExitMargin is how far past an arena side a wave bullet travels before dying.
const waveExitMargin = 20

// Wave drifts horizontally while oscillating around its starting row.
type Wave struct {
	Bullet
	StartY    float64
	Amplitude float64
	Frequency float64
	Ticks     int
	arena     collision.Rect
}

// NewWave creates a wave bullet of the given radius.
func NewWave(x, y, speedX, amplitude, frequency, radius float64, arena collision.Rect) *Wave {
	return &Wave{
		Bullet:    *NewBullet(KindWave, x, y, speedX, 0, radius*2, radius*2),
		StartY:    y,
		Amplitude: amplitude,
		Frequency: frequency,
		arena:     arena,
	}
}

func (w *Wave) Advance() {
	w.Ticks++
	w.box.X += w.VX
	w.box.Y = w.StartY + math.Sin(float64(w.Ticks)*w.Frequency)*w.Amplitude

	minX, _, maxX, _ := w.box.GetBounds()
	if maxX < w.arena.Left-waveExitMargin || minX > w.arena.Right()+waveExitMargin {
		w.dead = true
	}
}

// BladeState is the phase of a homing blade.
type BladeState int

const (
	BladeAiming BladeState = iota
	BladeCharging
	BladeFlying
)

func (s BladeState) String() string {
	switch s {
	case BladeAiming:
		return "aiming"
	case BladeCharging:
		return "charging"
	case BladeFlying:
		return "flying"
	}
	return "unknown"
}

// Blade hovers while tracking a target, locks its heading when aiming ends,
// pauses to charge, then flies straight until it leaves the exit region.
type Blade struct {
	Bullet
	State            BladeState
	Timer            int
	AimTicks         int
	ChargeTicks      int
	Speed            float64
	TargetX, TargetY float64
	exit             collision.Rect
}

// NewBlade creates an aiming blade. exit is the region the blade may fly in.
func NewBlade(x, y, size, speed float64, aimTicks, chargeTicks int, exit collision.Rect) *Blade {
	return &Blade{
		Bullet:      *NewBullet(KindBlade, x, y, 0, 0, size, size),
		State:       BladeAiming,
		AimTicks:    aimTicks,
		ChargeTicks: chargeTicks,
		Speed:       speed,
		exit:        exit,
	}
}

// SetTarget latches a new target. Only aiming blades accept it.
func (b *Blade) SetTarget(x, y float64) {
	if b.State != BladeAiming {
		return
	}
	b.TargetX, b.TargetY = x, y
}

// Scale is the visual pulse of an aiming blade.
func (b *Blade) Scale() float64 {
	if b.State != BladeAiming {
		return 1
	}
	return 1 + 0.1*math.Sin(float64(b.Timer)*0.3)
}

func (b *Blade) Advance() {
	switch b.State {
	case BladeAiming:
		b.Timer++
		if b.Timer >= b.AimTicks {
			b.State = BladeCharging
			b.Timer = 0
			b.VX, b.VY = mathutil.AimVelocity(b.box.X, b.box.Y, b.TargetX, b.TargetY, b.Speed)
		}
	case BladeCharging:
		b.Timer++
		if b.Timer >= b.ChargeTicks {
			b.State = BladeFlying
		}
	case BladeFlying:
		b.box.MoveBy(b.VX, b.VY)
		if !b.exit.Box().Contains(collision.Point{X: b.box.X, Y: b.box.Y}) {
			b.dead = true
		}
	}
}

// Ring sits on an expanding circle around a fixed centre. Its radius is
// driven by the expanding ring pattern, not by Advance.
type Ring struct {
	Bullet
	CenterX, CenterY float64
	Angle            float64
	Radius           float64
	MaxRadius        float64
}

// NewRing places a ring bullet at angle/radius around the centre.
func NewRing(cx, cy, angle, radius, maxRadius, width, height float64) *Ring {
	x, y := mathutil.Polar(cx, cy, angle, radius)
	return &Ring{
		Bullet:    *NewBullet(KindRing, x, y, 0, 0, width, height),
		CenterX:   cx,
		CenterY:   cy,
		Angle:     angle,
		Radius:    radius,
		MaxRadius: maxRadius,
	}
}

// Expand grows the radius by step and repositions the bullet.
func (r *Ring) Expand(step float64) {
	r.Radius += step
	r.box.MoveTo(mathutil.Polar(r.CenterX, r.CenterY, r.Angle, r.Radius))
	if r.Radius > r.MaxRadius {
		r.dead = true
	}
}

// Cross is one bullet of a rotating cross. Arm and Distance are fixed at
// spawn; the rotation angle is shared by the whole cross.
type Cross struct {
	Bullet
	Arm       int
	BaseAngle float64
	Distance  float64
}

// NewCross creates a cross bullet at its unrotated position.
func NewCross(cx, cy float64, arm int, baseAngle, distance, width, height float64) *Cross {
	x, y := mathutil.Polar(cx, cy, baseAngle, distance)
	return &Cross{
		Bullet:    *NewBullet(KindCross, x, y, 0, 0, width, height),
		Arm:       arm,
		BaseAngle: baseAngle,
		Distance:  distance,
	}
}

// Rotate places the bullet on its arm for the shared rotation angle.
func (c *Cross) Rotate(cx, cy, angle float64) {
	c.box.MoveTo(mathutil.Polar(cx, cy, c.BaseAngle+angle, c.Distance))
}
