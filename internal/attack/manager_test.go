package attack

import (
	"math/rand"
	"strings"
	"testing"

	"heartdodge/internal/collision"
	"heartdodge/internal/config"
	"heartdodge/internal/pattern"
	"heartdodge/internal/projectile"
)

var testArena = collision.NewRect(200, 140, 400, 240)

func newTestManager(t *testing.T, seed int64, combine float64) (*Manager, *projectile.Field) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Patterns.CombineChance = combine
	field := projectile.NewField(testArena, cfg.Arena.KillMargin)
	return NewManager(cfg, testArena, field, rand.New(rand.NewSource(seed))), field
}

func TestStartRoundSamplesDistinctPatterns(t *testing.T) {
	m, _ := newTestManager(t, 1, 0)
	for round := 0; round < 50; round++ {
		m.StartRound(3)
		q := m.Queue()
		if len(q) != 3 {
			t.Fatalf("queue length = %d, want 3", len(q))
		}
		seen := map[pattern.ID]bool{}
		for _, id := range q {
			if seen[id] {
				t.Fatalf("duplicate pattern %s in %v", id, q)
			}
			seen[id] = true
		}
	}
}

func TestStartRoundBeyondPoolSize(t *testing.T) {
	m, _ := newTestManager(t, 2, 0)
	m.StartRound(15)
	q := m.Queue()
	if len(q) != 15 {
		t.Fatalf("queue length = %d, want 15", len(q))
	}
	for _, id := range q {
		if !id.Valid() {
			t.Errorf("invalid id %d in queue", int(id))
		}
	}
	if m.RemainingPatternCount() != 15 {
		t.Errorf("remaining = %d, want 15", m.RemainingPatternCount())
	}
}

func TestStartRoundClampsToOne(t *testing.T) {
	m, _ := newTestManager(t, 3, 0)
	m.StartRound(0)
	if len(m.Queue()) != 1 {
		t.Errorf("queue length = %d, want 1", len(m.Queue()))
	}
}

func TestSecondaryNeverMatchesPrimary(t *testing.T) {
	m, _ := newTestManager(t, 4, 1)
	for _, id := range pattern.All() {
		for i := 0; i < 20; i++ {
			m.StartRoundWith(id)
			primary, secondary, combined, ok := m.Current()
			if !ok || primary != id {
				t.Fatalf("current = %v, want %v", primary, id)
			}
			if !id.IsBasic() {
				if combined {
					t.Fatalf("complex pattern %s was combined", id)
				}
				continue
			}
			if !combined {
				t.Fatalf("basic pattern %s not combined at chance 1", id)
			}
			if secondary == primary || !secondary.IsBasic() {
				t.Fatalf("bad secondary %s for %s", secondary, primary)
			}
		}
	}
}

func TestLabels(t *testing.T) {
	m, _ := newTestManager(t, 5, 1)
	if got := m.CurrentPatternLabel(); got != IdleLabel {
		t.Errorf("idle label = %q, want %q", got, IdleLabel)
	}

	m.StartRoundWith(pattern.LineRain)
	label := m.CurrentPatternLabel()
	if !strings.HasPrefix(label, "Line Rain + ") {
		t.Errorf("combined label = %q", label)
	}

	m.StartRoundWith(pattern.SnakeWave)
	if got := m.CurrentPatternLabel(); got != "Snake Wave" {
		t.Errorf("label = %q, want Snake Wave", got)
	}
}

func TestDifficultyClampedAndKeptAcrossReset(t *testing.T) {
	m, _ := newTestManager(t, 6, 0)
	tests := []struct {
		in, want float64
	}{
		{0.1, 0.5},
		{1.3, 1.3},
		{9, 3},
	}
	for _, tt := range tests {
		m.SetDifficulty(tt.in)
		if got := m.Difficulty(); got != tt.want {
			t.Errorf("SetDifficulty(%v) -> %v, want %v", tt.in, got, tt.want)
		}
	}

	m.SetDifficulty(2)
	m.StartRound(2)
	m.Reset()
	m.StartRound(2)
	if m.Difficulty() != 2 {
		t.Errorf("difficulty after reset = %v, want 2", m.Difficulty())
	}
}

// Round of one line_rain pattern at difficulty 1, driven the way the battle
// drives it: field update first, then the scheduler.
func TestLineRainRoundEndToEnd(t *testing.T) {
	m, field := newTestManager(t, 7, 0)
	cfg := config.DefaultConfig()
	m.StartRoundWith(pattern.LineRain)

	tick := func() bool {
		field.Update()
		return m.Tick(testArena.CenterX(), testArena.CenterY())
	}

	for i := 1; i < cfg.Patterns.LineRain.Interval; i++ {
		tick()
	}
	if field.Len() != 0 {
		t.Fatalf("bullets before the interval: %d", field.Len())
	}
	tick()
	if field.Len() != cfg.Patterns.LineRain.BulletCount {
		t.Fatalf("bullets after interval = %d, want %d", field.Len(), cfg.Patterns.LineRain.BulletCount)
	}
	for _, p := range field.Snapshot() {
		if top := p.Box().Y - p.Box().Height/2; top != testArena.Top-20 {
			t.Errorf("bullet top = %v, want %v", top, testArena.Top-20)
		}
	}

	for i := cfg.Patterns.LineRain.Interval; i < cfg.Patterns.AttackDuration; i++ {
		if !tick() {
			t.Fatalf("round ended early at tick %d", i+1)
		}
	}
	if m.State() != StateGap {
		t.Fatalf("state after attack duration = %v, want gap", m.State())
	}
	if field.Len() != 0 {
		t.Fatalf("gap entered with %d bullets", field.Len())
	}

	for i := 1; i < cfg.Patterns.GapDuration; i++ {
		if !tick() {
			t.Fatalf("round ended during gap at tick %d", i)
		}
		if field.Len() != 0 {
			t.Fatal("projectiles spawned during gap")
		}
	}
	if tick() {
		t.Fatal("round still active after the gap with an exhausted queue")
	}
	if m.State() != StateComplete || m.RemainingPatternCount() != 0 {
		t.Errorf("state = %v remaining = %d", m.State(), m.RemainingPatternCount())
	}
	if m.Tick(0, 0) {
		t.Error("complete round should stay inactive until restarted")
	}
}

func TestGapAdvancesExactlyOnePosition(t *testing.T) {
	m, _ := newTestManager(t, 8, 0)
	cfg := config.DefaultConfig()
	m.StartRoundWith(pattern.Spiral, pattern.CircleBurst, pattern.SnakeWave)

	var started []pattern.ID
	m.OnPatternStart = func(p, _ pattern.ID, _ bool) { started = append(started, p) }

	for i := 0; i < cfg.Patterns.AttackDuration+cfg.Patterns.GapDuration; i++ {
		m.Tick(0, 0)
	}
	if len(started) != 1 || started[0] != pattern.CircleBurst {
		t.Fatalf("patterns started = %v, want [circle_burst]", started)
	}
	if m.RemainingPatternCount() != 2 {
		t.Errorf("remaining = %d, want 2", m.RemainingPatternCount())
	}
}

func TestResetClearsEverything(t *testing.T) {
	m, field := newTestManager(t, 9, 0)
	m.StartRoundWith(pattern.CircleBurst)
	for i := 0; i < 60; i++ {
		m.Tick(0, 0)
	}
	if field.Len() == 0 {
		t.Fatal("expected a burst before reset")
	}

	m.Reset()
	if field.Len() != 0 || m.State() != StateIdle || m.RoundActive() {
		t.Errorf("reset left len=%d state=%v", field.Len(), m.State())
	}
	if m.CurrentPatternLabel() != IdleLabel {
		t.Errorf("label after reset = %q", m.CurrentPatternLabel())
	}
}

func TestGravityOnlyDuringGravityPattern(t *testing.T) {
	m, _ := newTestManager(t, 10, 0)
	m.StartRoundWith(pattern.GravityWells)
	if m.IsGravityActive() {
		t.Fatal("gravity active before the first tick")
	}
	m.Tick(0, 0)
	if !m.IsGravityActive() {
		t.Fatal("gravity inactive while the well pattern runs")
	}
	fx, fy := m.GravityForce(testArena.CenterX()+50, testArena.CenterY())
	if fx == 0 || fy != 0 {
		t.Errorf("force = (%v, %v), want horizontal force", fx, fy)
	}

	for i := 1; i < config.DefaultConfig().Patterns.AttackDuration; i++ {
		m.Tick(0, 0)
	}
	if m.IsGravityActive() {
		t.Error("gravity still active in the gap")
	}
}

func TestDrawablesSnapshot(t *testing.T) {
	m, field := newTestManager(t, 11, 0)
	m.StartRoundWith(pattern.HomingBlades)
	for i := 0; i < 90; i++ {
		m.Tick(300, 200)
	}

	ds := m.Drawables()
	if len(ds) != field.Len() {
		t.Fatalf("drawables = %d, projectiles = %d", len(ds), field.Len())
	}
	for _, d := range ds {
		if d.Kind != DrawBlade || d.Blade != projectile.BladeAiming {
			t.Errorf("drawable = %+v, want aiming blade", d)
		}
	}

	ds[0].Box.X = -1000
	if field.Snapshot()[0].Box().X == -1000 {
		t.Error("drawable shares state with the projectile")
	}
}

func TestLaserDrawablesAndCollision(t *testing.T) {
	m, _ := newTestManager(t, 12, 0)
	m.StartRoundWith(pattern.LaserWarning)
	for i := 0; i < 60; i++ {
		m.Tick(0, 0)
	}
	ds := m.Drawables()
	if len(ds) != 1 || ds[0].Kind != DrawLaserWarning {
		t.Fatalf("drawables = %+v, want one laser warning", ds)
	}

	everything := testArena.Box()
	if m.LaserCollision(everything) {
		t.Error("warning laser should not hit")
	}
	for i := 0; i < 30; i++ {
		m.Tick(0, 0)
	}
	if !m.LaserCollision(everything) {
		t.Error("active laser should hit a box covering the arena")
	}
}
