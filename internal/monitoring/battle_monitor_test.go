package monitoring

import (
	"sync"
	"testing"
	"time"
)

func TestNewBattleMonitor(t *testing.T) {
	bm := NewBattleMonitor(100)

	if bm == nil {
		t.Fatal("NewBattleMonitor returned nil")
	}
	if time.Since(bm.startTime) > time.Second {
		t.Error("Start time should be recent")
	}
	if m := bm.GetCurrentMetrics(); m.Ticks != 0 || m.HitsRegistered != 0 {
		t.Errorf("Expected zeroed metrics, got %+v", m)
	}
}

func TestBattleMonitorTickTiming(t *testing.T) {
	bm := NewBattleMonitor(0)

	timer := bm.StartTick()
	time.Sleep(5 * time.Millisecond)
	timer.EndTick()

	timer = bm.StartTick()
	timer.EndTick()

	m := bm.GetCurrentMetrics()
	if m.Ticks != 2 {
		t.Errorf("Expected 2 ticks, got %d", m.Ticks)
	}
	if m.PeakTick < 5*time.Millisecond {
		t.Errorf("Expected peak tick of at least 5ms, got %v", m.PeakTick)
	}
	if m.AverageTick <= 0 || m.AverageTick > m.PeakTick {
		t.Errorf("Average %v should be positive and at most the peak %v", m.AverageTick, m.PeakTick)
	}
}

func TestBattleMonitorCounters(t *testing.T) {
	bm := NewBattleMonitor(10)

	bm.RecordProjectiles(12)
	bm.RecordProjectiles(4)
	bm.RecordHit()
	bm.RecordHit()
	bm.RecordPatternStart()

	m := bm.GetCurrentMetrics()
	if m.ProjectilesActive != 4 || m.ProjectilesPeak != 12 {
		t.Errorf("Expected active 4 peak 12, got active %d peak %d", m.ProjectilesActive, m.ProjectilesPeak)
	}
	if m.HitsRegistered != 2 || m.PatternsStarted != 1 {
		t.Errorf("Expected 2 hits and 1 pattern, got %d and %d", m.HitsRegistered, m.PatternsStarted)
	}

	stats := bm.GetDetailedStats()
	for _, key := range []string{"tick_count", "projectiles_peak", "hits_registered", "memory_alloc_mb"} {
		if _, ok := stats[key]; !ok {
			t.Errorf("Detailed stats missing %q", key)
		}
	}
}

func TestBattleMonitorAlerts(t *testing.T) {
	bm := NewBattleMonitor(10)

	if alerts := bm.CheckAlerts(); len(alerts) != 0 {
		t.Errorf("Expected no alerts on a fresh monitor, got %+v", alerts)
	}

	bm.RecordProjectiles(11)
	alerts := bm.CheckAlerts()
	if len(alerts) != 1 || alerts[0].Type != "projectile_flood" {
		t.Errorf("Expected a projectile_flood alert, got %+v", alerts)
	}

	bm.tickTime.Store(uint64(50 * time.Millisecond))
	found := false
	for _, a := range bm.CheckAlerts() {
		if a.Type == "slow_tick" {
			found = true
		}
	}
	if !found {
		t.Error("Expected a slow_tick alert")
	}
}

func TestBattleMonitorReset(t *testing.T) {
	bm := NewBattleMonitor(10)
	bm.StartTick().EndTick()
	bm.RecordHit()
	bm.RecordProjectiles(3)

	bm.Reset()
	m := bm.GetCurrentMetrics()
	if m != (Metrics{}) {
		t.Errorf("Expected zeroed metrics after reset, got %+v", m)
	}
}

func TestBattleMonitorConcurrentRecording(t *testing.T) {
	bm := NewBattleMonitor(0)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				bm.RecordHit()
				bm.RecordProjectiles(n*100 + j)
			}
		}(i)
	}
	wg.Wait()

	m := bm.GetCurrentMetrics()
	if m.HitsRegistered != 800 {
		t.Errorf("Expected 800 hits, got %d", m.HitsRegistered)
	}
	if m.ProjectilesPeak != 799 {
		t.Errorf("Expected peak 799, got %d", m.ProjectilesPeak)
	}
}
