// Package attack schedules rounds of patterns: it samples a queue, runs each
// pattern for a fixed duration, clears the arena between patterns and
// reports whether the enemy's turn is still going.
package attack

import (
	"log"
	"math/rand"
	"strings"

	"heartdodge/internal/collision"
	"heartdodge/internal/config"
	"heartdodge/internal/pattern"
	"heartdodge/internal/projectile"
)

// State is the scheduler's position within a round.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateGap
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running-pattern"
	case StateGap:
		return "gap"
	case StateComplete:
		return "round-complete"
	}
	return "unknown"
}

// IdleLabel is shown when no pattern is running.
const IdleLabel = "Waiting"

// Manager runs the enemy's attack rounds.
type Manager struct {
	cfg   *config.Config
	rng   *rand.Rand
	stage *pattern.Stage

	state      State
	queue      []pattern.ID
	index      int
	secondary  pattern.ID
	hasSecond  bool
	patternAge int
	gapAge     int
	difficulty float64

	// OnPatternStart, when set, is called each time a queued pattern begins.
	OnPatternStart func(primary pattern.ID, secondary pattern.ID, combined bool)
}

// NewManager creates an idle manager that spawns into field. rng drives
// queue sampling, combination rolls and every pattern's random choices.
func NewManager(cfg *config.Config, arena collision.Rect, field *projectile.Field, rng *rand.Rand) *Manager {
	return &Manager{
		cfg:        cfg,
		rng:        rng,
		stage:      pattern.NewStage(cfg, arena, field, rng),
		difficulty: 1.0,
	}
}

// StartRound samples a queue of count patterns and starts the first one.
// Up to the size of the pattern set the queue holds distinct patterns; any
// remainder is drawn with replacement.
func (m *Manager) StartRound(count int) {
	if count < 1 {
		count = 1
	}

	all := pattern.All()
	m.queue = m.queue[:0]
	for _, i := range m.rng.Perm(len(all)) {
		if len(m.queue) == count {
			break
		}
		m.queue = append(m.queue, all[i])
	}
	for len(m.queue) < count {
		m.queue = append(m.queue, all[m.rng.Intn(len(all))])
	}

	m.stage.Clear()
	m.index = 0
	m.gapAge = 0
	m.beginPattern()

	log.Printf("[AttackManager] Round started: %s", m.queueLabels())
}

// StartRoundWith starts a round with an explicit queue. It is used by
// scripted encounters and tests; ids must be valid.
func (m *Manager) StartRoundWith(ids ...pattern.ID) {
	if len(ids) == 0 {
		m.Reset()
		return
	}
	for _, id := range ids {
		if !id.Valid() {
			panic("attack: invalid pattern id in queue")
		}
	}
	m.queue = append(m.queue[:0], ids...)
	m.stage.Clear()
	m.index = 0
	m.gapAge = 0
	m.beginPattern()
}

// beginPattern resets pattern-local state and rolls the secondary slot for
// the pattern at the head of the queue.
func (m *Manager) beginPattern() {
	m.state = StateRunning
	m.patternAge = 0
	m.stage.ResetCounters()

	m.hasSecond = false
	primary := m.queue[m.index]
	if primary.IsBasic() && m.rng.Float64() < m.cfg.Patterns.CombineChance {
		var candidates []pattern.ID
		for _, id := range pattern.Basic() {
			if id != primary {
				candidates = append(candidates, id)
			}
		}
		m.secondary = candidates[m.rng.Intn(len(candidates))]
		m.hasSecond = true
	}

	if m.OnPatternStart != nil {
		m.OnPatternStart(primary, m.secondary, m.hasSecond)
	}
}

// Tick advances the scheduler by one tick and reports whether the round is
// still active afterwards.
func (m *Manager) Tick(playerX, playerY float64) bool {
	switch m.state {
	case StateGap:
		m.gapAge++
		if m.gapAge >= m.cfg.Patterns.GapDuration {
			m.gapAge = 0
			m.index++
			if m.index >= len(m.queue) {
				m.state = StateComplete
				m.hasSecond = false
				log.Printf("[AttackManager] Round complete")
				return false
			}
			m.beginPattern()
			log.Printf("[AttackManager] Next pattern: %s", m.CurrentPatternLabel())
		}
		return true

	case StateRunning:
		m.patternAge++
		if m.patternAge >= m.cfg.Patterns.AttackDuration {
			m.stage.Clear()
			m.state = StateGap
			m.gapAge = 0
			return true
		}

		ctx := pattern.Context{
			PlayerX:    playerX,
			PlayerY:    playerY,
			Difficulty: m.difficulty,
			Elapsed:    m.patternAge,
		}
		m.stage.Execute(m.queue[m.index], pattern.Primary, ctx)
		if m.hasSecond {
			m.stage.Execute(m.secondary, pattern.Secondary, ctx)
		}
		return true
	}
	return false
}

// Reset discards the queue and everything spawned, returning to idle.
// Difficulty is kept.
func (m *Manager) Reset() {
	m.stage.Clear()
	m.stage.ResetCounters()
	m.queue = m.queue[:0]
	m.index = 0
	m.patternAge = 0
	m.gapAge = 0
	m.hasSecond = false
	m.state = StateIdle
}

// SetDifficulty sets the difficulty, clamped to the configured range.
func (m *Manager) SetDifficulty(d float64) {
	m.difficulty = m.cfg.ClampDifficulty(d)
}

func (m *Manager) Difficulty() float64 {
	return m.difficulty
}

func (m *Manager) State() State {
	return m.state
}

// RoundActive reports whether a round is running or between patterns.
func (m *Manager) RoundActive() bool {
	return m.state == StateRunning || m.state == StateGap
}

// Queue returns a copy of the current round's pattern queue.
func (m *Manager) Queue() []pattern.ID {
	return append([]pattern.ID(nil), m.queue...)
}

// Current returns the running primary and, when combined, the secondary
// pattern. ok is false when no pattern is queued.
func (m *Manager) Current() (primary, secondary pattern.ID, combined, ok bool) {
	if !m.RoundActive() {
		return 0, 0, false, false
	}
	return m.queue[m.index], m.secondary, m.hasSecond, true
}

// RemainingPatternCount is the number of queued patterns not yet finished,
// including the current one.
func (m *Manager) RemainingPatternCount() int {
	if !m.RoundActive() {
		return 0
	}
	return len(m.queue) - m.index
}

// CurrentPatternLabel returns the display name of the running pattern,
// "Primary + Secondary" when combined.
func (m *Manager) CurrentPatternLabel() string {
	primary, secondary, combined, ok := m.Current()
	if !ok {
		return IdleLabel
	}
	if combined {
		return primary.Label() + " + " + secondary.Label()
	}
	return primary.Label()
}

// IsGravityActive reports whether gravity should currently act on the player.
func (m *Manager) IsGravityActive() bool {
	return m.stage.GravityMode() && m.stage.GravityActive()
}

// GravityForce returns the summed well force on a player at (px, py).
func (m *Manager) GravityForce(px, py float64) (fx, fy float64) {
	return m.stage.GravityForce(px, py)
}

// LaserCollision reports whether an active beam overlaps box.
func (m *Manager) LaserCollision(box *collision.BoundingBox) bool {
	return m.stage.LaserHit(box)
}

// Field returns the shared projectile collection.
func (m *Manager) Field() *projectile.Field {
	return m.stage.Field()
}

func (m *Manager) queueLabels() string {
	labels := make([]string, len(m.queue))
	for i, id := range m.queue {
		labels[i] = id.Label()
	}
	return strings.Join(labels, ", ")
}
