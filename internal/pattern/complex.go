package pattern

import (
	"math"

	"heartdodge/internal/hazard"
	"heartdodge/internal/projectile"
)

// snakeWave sends a column of sine-wave bullets in from the left edge.
func (s *Stage) snakeWave(c *Counters, ctx Context) {
	cfg := s.cfg.Patterns.SnakeWave
	if !c.tick(cfg.Interval) {
		return
	}

	x := s.arena.Left - 10
	for y := s.arena.Top + 10; y < s.arena.Bottom()-10; y += cfg.RowSpacing {
		w := projectile.NewWave(x, y, cfg.Speed*ctx.Difficulty, cfg.Amplitude, cfg.Frequency, cfg.Radius, s.arena)
		s.field.Add(w)
	}
}

// homingBlades keeps aiming blades latched on the player and periodically
// spawns new ones on distinct arena edges.
func (s *Stage) homingBlades(c *Counters, ctx Context) {
	cfg := s.cfg.Patterns.HomingBlades

	s.field.Each(func(p projectile.Projectile) {
		if b, ok := p.(*projectile.Blade); ok && b.State == projectile.BladeAiming {
			b.SetTarget(ctx.PlayerX, ctx.PlayerY)
		}
	})

	if !c.tick(cfg.Interval) {
		return
	}

	a := s.arena
	exit := a.Expand(cfg.ExitMargin)
	count := cfg.MinBlades + s.rng.Intn(cfg.MaxBlades-cfg.MinBlades+1)
	edges := s.rng.Perm(4)[:count]
	for _, edge := range edges {
		var x, y float64
		switch edge {
		case 0: // top
			x, y = s.randInt(a.Left+30, a.Right()-30), a.Top+20
		case 1: // bottom
			x, y = s.randInt(a.Left+30, a.Right()-30), a.Bottom()-20
		case 2: // left
			x, y = a.Left+20, s.randInt(a.Top+30, a.Bottom()-30)
		default: // right
			x, y = a.Right()-20, s.randInt(a.Top+30, a.Bottom()-30)
		}
		b := projectile.NewBlade(x, y, cfg.Size, cfg.Speed, cfg.AimTicks, cfg.ChargeTicks, exit)
		b.SetTarget(ctx.PlayerX, ctx.PlayerY)
		s.field.Add(b)
	}
}

// expandingRing periodically drops a gapped ring at a random point; every
// ring bullet grows its radius each tick.
func (s *Stage) expandingRing(c *Counters, ctx Context) {
	cfg := s.cfg.Patterns.ExpandingRing

	if c.tick(cfg.Interval) {
		a := s.arena
		cx := s.randInt(a.Left+50, a.Right()-50)
		cy := s.randInt(a.Top+50, a.Bottom()-50)

		gaps := make(map[int]bool, cfg.Gaps)
		for _, i := range s.rng.Perm(cfg.Points)[:cfg.Gaps] {
			gaps[i] = true
		}

		size := s.cfg.Projectiles.Circle
		for i := 0; i < cfg.Points; i++ {
			if gaps[i] {
				continue
			}
			angle := 2 * math.Pi * float64(i) / float64(cfg.Points)
			s.field.Add(projectile.NewRing(cx, cy, angle, cfg.StartRadius, a.MaxDimension(), size.Width, size.Height))
		}
	}

	step := cfg.ExpandSpeed * ctx.Difficulty
	s.field.Each(func(p projectile.Projectile) {
		if r, ok := p.(*projectile.Ring); ok {
			r.Expand(step)
		}
	})
}

// gravityWells keeps a well at the arena centre and fires jittered bullets
// from the corners towards it.
func (s *Stage) gravityWells(c *Counters, ctx Context) {
	cfg := s.cfg.Patterns.GravityWells
	a := s.arena

	if len(s.wells) == 0 {
		repel := s.rng.Intn(2) == 0
		s.wells = append(s.wells, hazard.NewGravityWell(a.CenterX(), a.CenterY(), cfg.Strength, repel,
			s.cfg.Patterns.AttackDuration, cfg.Radius, cfg.MinDistance))
	}
	for _, w := range s.wells {
		w.Update()
	}
	s.gravity = true

	if !c.tick(cfg.Interval) {
		return
	}

	cornerX := a.Left
	if s.rng.Intn(2) == 1 {
		cornerX = a.Right()
	}
	cornerY := a.Top
	if s.rng.Intn(2) == 1 {
		cornerY = a.Bottom()
	}

	angle := math.Atan2(a.CenterY()-cornerY, a.CenterX()-cornerX)
	angle += s.uniform(-cfg.JitterRadians, cfg.JitterRadians)
	speed := s.cfg.GetBulletSpeed() * cfg.SpeedFactor
	size := s.cfg.Projectiles.Circle
	s.field.Spawn(projectile.KindCircle, cornerX, cornerY, math.Cos(angle)*speed, math.Sin(angle)*speed, size.Width, size.Height)
}

// rotatingCross builds a cross of bullets around the arena centre on its
// first tick, spins it every tick, and periodically drops extra bullets from
// the top edge.
func (s *Stage) rotatingCross(c *Counters, ctx Context) {
	cfg := s.cfg.Patterns.RotatingCross
	size := s.cfg.Projectiles.Circle

	if !s.cross.built {
		s.cross = crossState{built: true, cx: s.arena.CenterX(), cy: s.arena.CenterY()}
		for arm := 0; arm < cfg.Arms; arm++ {
			base := 2 * math.Pi * float64(arm) / float64(cfg.Arms)
			for j := 0; j < cfg.BulletsPerArm; j++ {
				dist := cfg.BaseDistance + float64(j)*cfg.Spacing
				b := projectile.NewCross(s.cross.cx, s.cross.cy, arm, base, dist, size.Width, size.Height)
				s.field.Add(b)
				s.cross.members = append(s.cross.members, b)
			}
		}
	}

	s.cross.angle += cfg.AngleStep * ctx.Difficulty
	for _, b := range s.cross.members {
		if !b.Expired() {
			b.Rotate(s.cross.cx, s.cross.cy, s.cross.angle)
		}
	}

	if !c.tick(cfg.Interval) {
		return
	}

	speed := s.cfg.GetBulletSpeed() * cfg.FallingSpeedFactor
	for i := 0; i < cfg.FallingCount; i++ {
		x := s.randInt(s.arena.Left+20, s.arena.Right()-20)
		s.field.Spawn(projectile.KindCircle, x, s.arena.Top-10, 0, speed, size.Width, size.Height)
	}
}

// CrossAngle returns the shared rotation angle of the cross.
func (s *Stage) CrossAngle() float64 {
	return s.cross.angle
}
