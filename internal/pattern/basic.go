package pattern

import (
	"math"

	"heartdodge/internal/hazard"
	"heartdodge/internal/mathutil"
	"heartdodge/internal/projectile"
)

// lineRain drops horizontal bars from above the arena.
func (s *Stage) lineRain(c *Counters, ctx Context) {
	cfg := s.cfg.Patterns.LineRain
	if !c.tick(mathutil.TickInterval(cfg.Interval, ctx.Difficulty)) {
		return
	}

	size := s.cfg.Projectiles.Line
	speed := s.cfg.GetBulletSpeed() * ctx.Difficulty
	for i := 0; i < cfg.BulletCount; i++ {
		left := s.randInt(s.arena.Left+20, s.arena.Right()-60)
		top := s.arena.Top - 20
		s.field.Spawn(projectile.KindLine, left+size.Width/2, top+size.Height/2, 0, speed, size.Width, size.Height)
	}
}

// circleBurst fires an evenly spaced ring of bullets from the arena centre.
func (s *Stage) circleBurst(c *Counters, ctx Context) {
	cfg := s.cfg.Patterns.CircleBurst
	if !c.tick(mathutil.TickInterval(cfg.Interval, ctx.Difficulty)) {
		return
	}

	size := s.cfg.Projectiles.Circle
	cx, cy := s.arena.CenterX(), s.arena.CenterY()
	count := mathutil.ScaledCount(cfg.Count, ctx.Difficulty)
	speed := s.cfg.GetBulletSpeed() * cfg.SpeedFactor
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		s.field.Spawn(projectile.KindCircle, cx, cy, math.Cos(angle)*speed, math.Sin(angle)*speed, size.Width, size.Height)
	}
}

// targeting shoots from a random subset of arena corners at the player's
// current position. Bullets are aimed once and never re-aimed.
func (s *Stage) targeting(c *Counters, ctx Context) {
	cfg := s.cfg.Patterns.Targeting
	if !c.tick(mathutil.TickInterval(cfg.Interval, ctx.Difficulty)) {
		return
	}

	size := s.cfg.Projectiles.Targeting
	speed := s.cfg.GetBulletSpeed() * ctx.Difficulty
	corners := s.arena.Corners()
	s.rng.Shuffle(len(corners), func(i, j int) { corners[i], corners[j] = corners[j], corners[i] })
	for _, corner := range corners[:mathutil.IntMin(cfg.BulletsPerShot, len(corners))] {
		vx, vy := mathutil.AimVelocity(corner.X, corner.Y, ctx.PlayerX, ctx.PlayerY, speed)
		s.field.Spawn(projectile.KindTargeting, corner.X, corner.Y, vx, vy, size.Width, size.Height)
	}
}

// bouncingWalls launches a large square from a random edge that ricochets
// around the arena.
func (s *Stage) bouncingWalls(c *Counters, ctx Context) {
	cfg := s.cfg.Patterns.BouncingWalls
	if !c.tick(mathutil.TickInterval(cfg.Interval, ctx.Difficulty)) {
		return
	}

	a := s.arena
	sign := func() float64 {
		if s.rng.Intn(2) == 0 {
			return -3
		}
		return 3
	}

	// Coordinates below are the square's top-left corner.
	var x, y, vx, vy float64
	switch s.rng.Intn(4) {
	case 0: // top
		x = s.randInt(a.Left+20, a.Right()-40)
		y = a.Top + 10
		vx, vy = sign(), s.uniform(2, 4)
	case 1: // bottom
		x = s.randInt(a.Left+20, a.Right()-40)
		y = a.Bottom() - 30
		vx, vy = sign(), s.uniform(-4, -2)
	case 2: // left
		x = a.Left + 10
		y = s.randInt(a.Top+20, a.Bottom()-40)
		vx, vy = s.uniform(2, 4), sign()
	default: // right
		x = a.Right() - 30
		y = s.randInt(a.Top+20, a.Bottom()-40)
		vx, vy = s.uniform(-4, -2), sign()
	}

	bounces := cfg.MinBounces + s.rng.Intn(cfg.MaxBounces-cfg.MinBounces+1)
	half := cfg.Size / 2
	b := projectile.NewBouncing(x+half, y+half, vx*ctx.Difficulty, vy*ctx.Difficulty, cfg.Size, a, bounces)
	s.field.Add(b)
}

// spiral emits bullets from the centre at an angle that turns with the
// pattern's elapsed time.
func (s *Stage) spiral(c *Counters, ctx Context) {
	cfg := s.cfg.Patterns.Spiral
	if !c.tick(cfg.Interval) {
		return
	}

	size := s.cfg.Projectiles.Circle
	cx, cy := s.arena.CenterX(), s.arena.CenterY()
	speed := s.cfg.GetBulletSpeed() * cfg.SpeedFactor
	base := float64(ctx.Elapsed) * cfg.AngleStep
	for i := 0; i < cfg.Arms; i++ {
		angle := base + 2*math.Pi*float64(i)/float64(cfg.Arms)
		s.field.Spawn(projectile.KindSpiral, cx, cy, math.Cos(angle)*speed, math.Sin(angle)*speed, size.Width, size.Height)
	}
}

// laserWarning advances every beam, drops finished ones, and periodically
// telegraphs a new beam across the arena.
func (s *Stage) laserWarning(c *Counters, ctx Context) {
	cfg := s.cfg.Patterns.LaserWarning

	live := s.lasers[:0]
	for _, l := range s.lasers {
		l.Update()
		if !l.Done() {
			live = append(live, l)
		}
	}
	s.lasers = live

	if !c.tick(cfg.Interval) {
		return
	}

	horizontal := s.rng.Intn(2) == 0
	var pos float64
	if horizontal {
		pos = s.randInt(s.arena.Top+cfg.EdgeMargin, s.arena.Bottom()-cfg.EdgeMargin)
	} else {
		pos = s.randInt(s.arena.Left+cfg.EdgeMargin, s.arena.Right()-cfg.EdgeMargin)
	}
	s.lasers = append(s.lasers, hazard.NewLaserBeam(s.arena, horizontal, pos, cfg.WarningTicks, cfg.ActiveTicks, cfg.BeamWidth))
}
