package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig should validate, got %v", err)
	}
}

func TestLoadConfigFromRepository(t *testing.T) {
	cfg, err := LoadConfig("../../config.yaml")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Patterns.AttackDuration != 300 {
		t.Errorf("attack_duration = %d, want 300", cfg.Patterns.AttackDuration)
	}
	if cfg.Patterns.RotatingCross.BulletsPerArm != 8 {
		t.Errorf("rotating_cross.bullets_per_arm = %d, want 8", cfg.Patterns.RotatingCross.BulletsPerArm)
	}
	if GlobalConfig != cfg {
		t.Error("LoadConfig should set GlobalConfig")
	}
}

func TestParseConfigKeepsDefaultsForMissingKeys(t *testing.T) {
	cfg, err := ParseConfig([]byte("patterns:\n  gap_duration: 10\n"))
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}
	if cfg.Patterns.GapDuration != 10 {
		t.Errorf("gap_duration = %d, want 10", cfg.Patterns.GapDuration)
	}
	if cfg.Patterns.AttackDuration != DefaultConfig().Patterns.AttackDuration {
		t.Errorf("attack_duration should keep its default, got %d", cfg.Patterns.AttackDuration)
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Patterns.AttackDuration = 0
	cfg.Patterns.CombineChance = 1.5
	cfg.Player.Size = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"attack_duration", "combine_chance", "player.size"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestParseConfigRejectsBadYAML(t *testing.T) {
	if _, err := ParseConfig([]byte("patterns: [not, a, map")); err == nil {
		t.Error("expected parse error")
	}
}

func TestClampDifficulty(t *testing.T) {
	cfg := DefaultConfig()
	tests := map[float64]float64{0.1: 0.5, 1.0: 1.0, 2.5: 2.5, 7: 3.0}
	for in, want := range tests {
		if got := cfg.ClampDifficulty(in); got != want {
			t.Errorf("ClampDifficulty(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestWatcherDeliversReloadedConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("patterns:\n  gap_duration: 30\n"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("patterns:\n  gap_duration: 45\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-w.Configs:
		if cfg.Patterns.GapDuration != 45 {
			t.Errorf("reloaded gap_duration = %d, want 45", cfg.Patterns.GapDuration)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcherReadsFileAfterTruncateThenWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("patterns:\n  gap_duration: 30\n"), 0644); err != nil {
		t.Fatal(err)
	}
	before := GlobalConfig

	w, err := NewWatcher(path)
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	defer w.Close()

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	time.Sleep(20 * time.Millisecond)
	if _, err := f.WriteString("patterns:\n  gap_duration: 45\n"); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	var last *Config
	deadline := time.After(500 * time.Millisecond)
drain:
	for {
		select {
		case cfg := <-w.Configs:
			last = cfg
		case err := <-w.Errors:
			t.Errorf("watcher error: %v", err)
		case <-deadline:
			break drain
		}
	}

	if last == nil {
		t.Fatal("no config delivered")
	}
	if last.Patterns.GapDuration != 45 {
		t.Errorf("delivered gap_duration = %d, want 45", last.Patterns.GapDuration)
	}
	if GlobalConfig != before {
		t.Error("reload must not replace GlobalConfig")
	}
}

func TestReadConfigFileRejectsEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("  \n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := readConfigFile(path); err == nil || !strings.Contains(err.Error(), "empty") {
		t.Errorf("readConfigFile(empty) error = %v, want empty-file error", err)
	}
}

func TestValidateRejectsNegativeRingGaps(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Patterns.ExpandingRing.Gaps = -1
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "expanding_ring.gaps") {
		t.Errorf("Validate() = %v, want expanding_ring.gaps error", err)
	}

	cfg = DefaultConfig()
	cfg.Patterns.HomingBlades.MinBlades = -2
	cfg.Patterns.HomingBlades.MaxBlades = -1
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "homing_blades") {
		t.Errorf("Validate() = %v, want homing_blades error", err)
	}
}

func TestRepositoryConfigHasNoUnusedKeys(t *testing.T) {
	data, err := os.ReadFile("../../config.yaml")
	if err != nil {
		t.Fatal(err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		t.Errorf("config.yaml has keys the Config does not read: %v", err)
	}
}
