// Package battle runs one encounter: the player's menu turn, the fight
// timing bar, the hand-off pauses and the dodge phase driven by the attack
// manager.
package battle

import (
	"log"
	"math"
	"math/rand"

	"heartdodge/internal/attack"
	"heartdodge/internal/collision"
	"heartdodge/internal/config"
	"heartdodge/internal/enemy"
	"heartdodge/internal/monitoring"
	"heartdodge/internal/pattern"
	"heartdodge/internal/player"
	"heartdodge/internal/projectile"
)

// Mode is the battle's current phase.
type Mode int

const (
	ModeMenu Mode = iota
	ModeFightAttack
	ModeSafetyPause
	ModeWarmup
	ModeDodge
	ModeVictory // enemy defeated, waiting out the victory delay
	ModeEnded
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeFightAttack:
		return "fight_attack"
	case ModeSafetyPause:
		return "safety_pause"
	case ModeWarmup:
		return "warmup"
	case ModeDodge:
		return "dodge"
	case ModeVictory:
		return "victory"
	case ModeEnded:
		return "ended"
	}
	return "unknown"
}

// Outcome is how a battle finished.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeVictory
	OutcomeSpared
	OutcomeDefeat
)

func (o Outcome) String() string {
	switch o {
	case OutcomeVictory:
		return "victory"
	case OutcomeSpared:
		return "spared"
	case OutcomeDefeat:
		return "defeat"
	}
	return "none"
}

// Command is a discrete player input.
type Command int

const (
	CmdLeft Command = iota
	CmdRight
	CmdUp
	CmdDown
	CmdConfirm
	CmdCancel
)

// Stats summarise the player's side of the encounter.
type Stats struct {
	Ticks       int
	Hits        int
	DamageTaken int
}

// ArenaRect returns the arena for the configured screen.
func ArenaRect(cfg *config.Config) collision.Rect {
	return collision.CenteredRect(
		float64(cfg.GetScreenWidth()), float64(cfg.GetScreenHeight()),
		cfg.Arena.Width, cfg.Arena.Height, cfg.Arena.YOffset,
	)
}

// Battle is one encounter between the heart and an enemy.
type Battle struct {
	cfg     *config.Config
	arena   collision.Rect
	rng     *rand.Rand
	field   *projectile.Field
	manager *attack.Manager
	monitor *monitoring.BattleMonitor

	Enemy *enemy.Enemy
	Heart *player.Heart
	Menu  Menu

	mode    Mode
	outcome Outcome

	fightPos float64
	fightDir float64

	pauseTimer   int
	warmupTimer  int
	bannerTimer  int
	victoryTimer int

	stats Stats
}

// New starts a battle in the menu. The heart is moved into the arena.
func New(cfg *config.Config, e *enemy.Enemy, heart *player.Heart, rng *rand.Rand) *Battle {
	arena := ArenaRect(cfg)
	field := projectile.NewField(arena, cfg.Arena.KillMargin)

	b := &Battle{
		cfg:     cfg,
		arena:   arena,
		rng:     rng,
		field:   field,
		manager: attack.NewManager(cfg, arena, field, rng),
		Enemy:   e,
		Heart:   heart,
		mode:    ModeMenu,
	}
	heart.SetArena(arena)
	b.manager.OnPatternStart = b.patternStarted

	log.Printf("[Battle] Encounter with %s (boss=%v, hp=%d)", e.Name, e.Boss, e.HP)
	return b
}

// SetMonitor attaches a monitor that receives tick timings and combat counters.
func (b *Battle) SetMonitor(m *monitoring.BattleMonitor) {
	b.monitor = m
}

func (b *Battle) Arena() collision.Rect     { return b.arena }
func (b *Battle) Manager() *attack.Manager  { return b.manager }
func (b *Battle) Mode() Mode                { return b.mode }
func (b *Battle) Outcome() Outcome          { return b.outcome }
func (b *Battle) Stats() Stats              { return b.stats }
func (b *Battle) FightBarPosition() float64 { return b.fightPos }
func (b *Battle) Finished() bool            { return b.mode == ModeEnded }
func (b *Battle) PhaseBannerVisible() bool  { return b.bannerTimer > 0 }
func (b *Battle) Field() *projectile.Field  { return b.field }

// CanPlayerMove reports whether movement input is honoured.
func (b *Battle) CanPlayerMove() bool {
	return b.mode == ModeDodge || b.mode == ModeWarmup
}

// WarmupTicksLeft returns the remaining warmup, zero outside warmup.
func (b *Battle) WarmupTicksLeft() int {
	if b.mode != ModeWarmup {
		return 0
	}
	return b.warmupTimer
}

func (b *Battle) setMode(m Mode) {
	if b.mode == m {
		return
	}
	log.Printf("[Battle] %s -> %s", b.mode, m)
	b.mode = m
}

func (b *Battle) patternStarted(primary, secondary pattern.ID, combined bool) {
	if b.monitor != nil {
		b.monitor.RecordPatternStart()
		if combined {
			b.monitor.RecordPatternStart()
		}
	}
}

// Update advances the battle by one tick. dirX and dirY are the movement
// input in [-1, 1]; they only matter while the heart may move.
func (b *Battle) Update(dirX, dirY float64) {
	if b.mode == ModeEnded {
		return
	}
	if b.monitor != nil {
		timer := b.monitor.StartTick()
		defer timer.EndTick()
	}

	b.stats.Ticks++
	b.Heart.Tick()

	if b.bannerTimer > 0 {
		b.bannerTimer--
	}

	if b.mode == ModeVictory {
		b.victoryTimer--
		if b.victoryTimer <= 0 {
			b.finish(OutcomeVictory)
		}
		return
	}

	if b.CanPlayerMove() {
		b.Heart.Move(dirX, dirY)
		if b.mode == ModeDodge && b.manager.IsGravityActive() {
			px, py := b.Heart.Position()
			b.Heart.Push(b.manager.GravityForce(px, py))
		}
	}

	switch b.mode {
	case ModeSafetyPause:
		b.pauseTimer--
		if b.pauseTimer <= 0 {
			b.startWarmup()
		}
	case ModeWarmup:
		b.warmupTimer--
		if b.warmupTimer <= 0 {
			b.startEnemyAttack()
		}
	case ModeFightAttack:
		b.advanceFightBar()
	case ModeDodge:
		b.field.Update()
		px, py := b.Heart.Position()
		if !b.manager.Tick(px, py) {
			b.endDodge()
		}
	}

	if b.mode == ModeDodge {
		b.checkCollisions()
	}

	if b.monitor != nil {
		b.monitor.RecordProjectiles(b.field.Len())
	}

	if !b.Heart.Alive() {
		b.manager.Reset()
		b.finish(OutcomeDefeat)
	}
}

func (b *Battle) checkCollisions() {
	damage := b.Enemy.AttackDamage
	box := b.Heart.Box()

	for _, p := range b.field.Colliding(box) {
		if b.hit(damage) {
			p.Kill()
		}
	}
	if b.manager.LaserCollision(box) {
		b.hit(damage)
	}
	b.field.Sweep()
}

func (b *Battle) hit(damage int) bool {
	before := b.Heart.HP
	if !b.Heart.ApplyDamage(damage) {
		return false
	}
	b.stats.Hits++
	b.stats.DamageTaken += before - b.Heart.HP
	if b.monitor != nil {
		b.monitor.RecordHit()
	}
	return true
}

func (b *Battle) advanceFightBar() {
	b.fightPos += b.cfg.Battle.FightBarSpeed * b.fightDir
	if b.fightPos >= 1 {
		b.fightPos = 1
		b.fightDir = -1
	} else if b.fightPos <= 0 {
		b.fightPos = 0
		b.fightDir = 1
	}
}

// DamageMultiplier maps a fight bar position to the damage multiplier: 1 at
// the centre, falling linearly to the configured floor at either end.
func DamageMultiplier(cfg *config.Config, pos float64) float64 {
	dist := math.Abs(pos-0.5) / 0.5
	m := 1 - cfg.Battle.MaxDamagePenalty*dist
	if m < cfg.Battle.MinDamageMultiplier {
		m = cfg.Battle.MinDamageMultiplier
	}
	return m
}

func (b *Battle) startFight() {
	b.fightPos = 0
	b.fightDir = 1
	b.setMode(ModeFightAttack)
}

func (b *Battle) resolveFight() Result {
	damage := int(float64(b.cfg.Battle.PlayerAttackDamage) * DamageMultiplier(b.cfg, b.fightPos))
	dead := b.Enemy.TakeDamage(damage)
	b.setMode(ModeMenu)

	if b.Enemy.ConsumePhase2() {
		b.bannerTimer = b.cfg.Battle.PhaseBannerTicks
		log.Printf("[Battle] %s entered phase 2", b.Enemy.Name)
	}

	if dead {
		b.victoryTimer = b.cfg.Battle.VictoryDelayTicks
		b.setMode(ModeVictory)
		return Result{Kind: ResultEnemyKilled, Damage: damage}
	}

	b.startSafetyPause()
	return Result{Kind: ResultFightDamage, Damage: damage}
}

func (b *Battle) startSafetyPause() {
	b.pauseTimer = b.cfg.Battle.SafetyPauseTicks
	b.setMode(ModeSafetyPause)
}

func (b *Battle) startWarmup() {
	b.warmupTimer = b.cfg.Battle.WarmupTicks
	b.setMode(ModeWarmup)
}

// PatternCount returns how many patterns the enemy's next round holds.
func (b *Battle) PatternCount() int {
	bc := b.cfg.Battle
	if !b.Enemy.Boss {
		return bc.MobPatternsPerRound
	}
	if b.Enemy.Phase == 1 {
		return bc.BossPhase1Patterns
	}
	return bc.BossPhase2MinPatterns + b.rng.Intn(bc.BossPhase2MaxPatterns-bc.BossPhase2MinPatterns+1)
}

func (b *Battle) startEnemyAttack() {
	n := b.PatternCount()
	if b.Enemy.Boss && b.Enemy.Phase == 2 {
		b.manager.SetDifficulty(b.cfg.Battle.BossPhase2Difficulty)
	}
	b.manager.StartRound(n)
	b.setMode(ModeDodge)
}

func (b *Battle) endDodge() {
	b.manager.Reset()
	b.setMode(ModeMenu)
}

func (b *Battle) finish(o Outcome) {
	b.outcome = o
	b.setMode(ModeEnded)
	log.Printf("[Battle] Encounter with %s over: %s after %d ticks", b.Enemy.Name, o, b.stats.Ticks)
}
