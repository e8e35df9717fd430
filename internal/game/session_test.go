package game

import (
	"math/rand"
	"strings"
	"testing"

	"heartdodge/internal/battle"
	"heartdodge/internal/config"
	"heartdodge/internal/enemy"
	"heartdodge/internal/records"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	roster, err := enemy.LoadRoster("../../enemies.yaml")
	if err != nil {
		t.Fatalf("LoadRoster: %v", err)
	}
	store, err := records.NewStore(nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return NewSession(config.DefaultConfig(), roster, store, rand.New(rand.NewSource(1)))
}

func step(s *Session, cmds ...battle.Command) {
	s.Step(cmds, 0, 0)
}

func TestSessionStartsWithRosterOrderAndItems(t *testing.T) {
	s := newTestSession(t)
	b := s.Battle()
	if b.Enemy.Key != "bandit" {
		t.Errorf("first enemy = %q, want bandit", b.Enemy.Key)
	}
	if len(b.Heart.Items) != len(startingItems) {
		t.Errorf("items = %d, want %d", len(b.Heart.Items), len(startingItems))
	}
	if msg := s.Message(); !strings.Contains(msg.Text, "Bandit") || msg.Ticks != messageTicks {
		t.Errorf("intro message = %+v", msg)
	}
}

func TestSpareRecordsEntryAndShowsSummary(t *testing.T) {
	s := newTestSession(t)

	step(s, battle.CmdRight)   // ACT
	step(s, battle.CmdConfirm) // open
	step(s, battle.CmdDown)    // Talk
	step(s, battle.CmdConfirm)
	if !s.Battle().Enemy.Sparable {
		t.Fatal("talking should make the enemy sparable")
	}
	step(s, battle.CmdRight, battle.CmdRight) // MERCY
	step(s, battle.CmdConfirm)

	if !s.InSummary() {
		t.Fatal("expected summary after sparing")
	}
	entry, rank := s.LastEntry()
	if entry.Outcome != records.OutcomeSpared || rank != 1 {
		t.Errorf("entry = %+v rank %d", entry, rank)
	}
	if entry.Score != 800 {
		t.Errorf("score = %d, want 800", entry.Score)
	}
	if len(s.Records()) != 1 {
		t.Errorf("records = %d, want 1", len(s.Records()))
	}

	lines := SummaryLines(s)
	if !strings.Contains(strings.Join(lines, "\n"), "New record! Rank #1") {
		t.Errorf("summary lines missing rank: %v", lines)
	}

	// Other keys wait on the summary.
	step(s, battle.CmdLeft)
	if !s.InSummary() {
		t.Fatal("only confirm should leave the summary")
	}
	step(s, battle.CmdConfirm)
	if s.InSummary() || s.Battle().Enemy.Key != "forest_guardian" {
		t.Fatalf("expected next encounter, got summary=%v enemy=%q", s.InSummary(), s.Battle().Enemy.Key)
	}
}

func TestQueuedConfigAppliesAtNextEncounter(t *testing.T) {
	s := newTestSession(t)

	cfg := config.DefaultConfig()
	cfg.Player.MaxHP = 50
	s.QueueConfig(cfg)
	if s.Battle().Heart.MaxHP == 50 {
		t.Fatal("running battle must keep its config")
	}

	step(s, battle.CmdRight, battle.CmdRight) // MERCY, not sparable
	step(s, battle.CmdRight)
	step(s, battle.CmdConfirm)
	if !strings.Contains(s.Message().Text, "doesn't want to stop") {
		t.Errorf("message = %q", s.Message().Text)
	}

	s.startEncounter()
	if s.Battle().Heart.MaxHP != 50 {
		t.Errorf("max hp = %d, want 50 after reload", s.Battle().Heart.MaxHP)
	}
}

func TestItemMessage(t *testing.T) {
	s := newTestSession(t)
	s.Battle().Heart.HP -= 4

	step(s, battle.CmdRight, battle.CmdRight) // ITEM
	step(s, battle.CmdConfirm)
	step(s, battle.CmdConfirm)

	if got := s.Message().Text; got != "You used Healing Candy and recovered 4 HP." {
		t.Errorf("message = %q", got)
	}
	if s.Battle().Mode() != battle.ModeSafetyPause {
		t.Errorf("mode = %v, want safety pause", s.Battle().Mode())
	}
}

func TestLayoutFollowsReloadedScreenSize(t *testing.T) {
	s := newTestSession(t)
	g := NewGame(s, nil)

	if w, h := g.Layout(0, 0); w != 800 || h != 600 {
		t.Fatalf("initial layout = %dx%d, want 800x600", w, h)
	}

	cfg := config.DefaultConfig()
	cfg.Display.ScreenWidth = 1024
	cfg.Display.ScreenHeight = 768
	s.QueueConfig(cfg)
	s.startEncounter()

	w, h := g.Layout(0, 0)
	if w != 1024 || h != 768 {
		t.Errorf("layout = %dx%d, want 1024x768", w, h)
	}
	if cx := s.Battle().Arena().CenterX(); cx != float64(w)/2 {
		t.Errorf("arena centre x = %v, want %v", cx, float64(w)/2)
	}
}
