package monitoring

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// tickBudget is one frame at 60 ticks per second.
const tickBudget = time.Second / 60

// BattleMonitor tracks simulation timing and combat counters
type BattleMonitor struct {
	// Tick metrics
	tickCount     atomic.Uint64
	tickTime      atomic.Uint64 // nanoseconds, last tick
	totalTickTime atomic.Uint64 // nanoseconds, all ticks
	peakTickTime  atomic.Uint64

	// Combat metrics
	projectilesActive atomic.Int32
	projectilesPeak   atomic.Int32
	hitsRegistered    atomic.Uint64
	patternsStarted   atomic.Uint64

	// Statistics
	mutex         sync.RWMutex
	avgTickTime   float64
	startTime     time.Time
	projectileCap int32
}

// NewBattleMonitor creates a monitor that raises an alert once more than
// projectileCap projectiles are live at the same time.
func NewBattleMonitor(projectileCap int32) *BattleMonitor {
	return &BattleMonitor{
		startTime:     time.Now(),
		projectileCap: projectileCap,
	}
}

// TickTimer measures one simulation tick
type TickTimer struct {
	monitor   *BattleMonitor
	startTime time.Time
}

// StartTick begins tick timing
func (bm *BattleMonitor) StartTick() *TickTimer {
	return &TickTimer{
		monitor:   bm,
		startTime: time.Now(),
	}
}

// EndTick completes tick timing
func (tt *TickTimer) EndTick() {
	elapsed := uint64(time.Since(tt.startTime).Nanoseconds())
	m := tt.monitor
	m.tickTime.Store(elapsed)
	total := m.totalTickTime.Add(elapsed)
	count := m.tickCount.Add(1)

	for {
		peak := m.peakTickTime.Load()
		if elapsed <= peak || m.peakTickTime.CompareAndSwap(peak, elapsed) {
			break
		}
	}

	m.mutex.Lock()
	m.avgTickTime = float64(total) / float64(count)
	m.mutex.Unlock()
}

// RecordProjectiles stores the live projectile count for the current tick
func (bm *BattleMonitor) RecordProjectiles(n int) {
	v := int32(n)
	bm.projectilesActive.Store(v)
	for {
		peak := bm.projectilesPeak.Load()
		if v <= peak || bm.projectilesPeak.CompareAndSwap(peak, v) {
			break
		}
	}
}

// RecordHit counts a hit that actually damaged the player
func (bm *BattleMonitor) RecordHit() {
	bm.hitsRegistered.Add(1)
}

// RecordPatternStart counts a pattern beginning to run
func (bm *BattleMonitor) RecordPatternStart() {
	bm.patternsStarted.Add(1)
}

// Metrics is a point-in-time copy of the monitor
type Metrics struct {
	Ticks             uint64
	LastTick          time.Duration
	AverageTick       time.Duration
	PeakTick          time.Duration
	ProjectilesActive int32
	ProjectilesPeak   int32
	HitsRegistered    uint64
	PatternsStarted   uint64
}

// GetCurrentMetrics returns current battle metrics
func (bm *BattleMonitor) GetCurrentMetrics() Metrics {
	bm.mutex.RLock()
	avg := bm.avgTickTime
	bm.mutex.RUnlock()

	return Metrics{
		Ticks:             bm.tickCount.Load(),
		LastTick:          time.Duration(bm.tickTime.Load()),
		AverageTick:       time.Duration(avg),
		PeakTick:          time.Duration(bm.peakTickTime.Load()),
		ProjectilesActive: bm.projectilesActive.Load(),
		ProjectilesPeak:   bm.projectilesPeak.Load(),
		HitsRegistered:    bm.hitsRegistered.Load(),
		PatternsStarted:   bm.patternsStarted.Load(),
	}
}

// GetDetailedStats returns detailed statistics for debug output
func (bm *BattleMonitor) GetDetailedStats() map[string]interface{} {
	m := bm.GetCurrentMetrics()

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	bm.mutex.RLock()
	uptime := time.Since(bm.startTime)
	bm.mutex.RUnlock()

	return map[string]interface{}{
		"uptime_seconds":     uptime.Seconds(),
		"tick_count":         m.Ticks,
		"avg_tick_time_ms":   float64(m.AverageTick) / float64(time.Millisecond),
		"peak_tick_time_ms":  float64(m.PeakTick) / float64(time.Millisecond),
		"projectiles_active": m.ProjectilesActive,
		"projectiles_peak":   m.ProjectilesPeak,
		"hits_registered":    m.HitsRegistered,
		"patterns_started":   m.PatternsStarted,
		"memory_alloc_mb":    memStats.Alloc / 1024 / 1024,
		"gc_cycles":          memStats.NumGC,
	}
}

// Alert represents a performance warning
type Alert struct {
	Type      string
	Message   string
	Value     float64
	Threshold float64
	Timestamp time.Time
}

// CheckAlerts returns warnings for slow ticks and projectile floods
func (bm *BattleMonitor) CheckAlerts() []Alert {
	alerts := make([]Alert, 0)
	now := time.Now()

	if last := time.Duration(bm.tickTime.Load()); last > tickBudget {
		alerts = append(alerts, Alert{
			Type:      "slow_tick",
			Message:   "Tick exceeded the frame budget",
			Value:     float64(last) / float64(time.Millisecond),
			Threshold: float64(tickBudget) / float64(time.Millisecond),
			Timestamp: now,
		})
	}

	if bm.projectileCap > 0 {
		if n := bm.projectilesActive.Load(); n > bm.projectileCap {
			alerts = append(alerts, Alert{
				Type:      "projectile_flood",
				Message:   "Live projectile count above cap",
				Value:     float64(n),
				Threshold: float64(bm.projectileCap),
				Timestamp: now,
			})
		}
	}

	return alerts
}

// Reset resets all counters
func (bm *BattleMonitor) Reset() {
	bm.tickCount.Store(0)
	bm.tickTime.Store(0)
	bm.totalTickTime.Store(0)
	bm.peakTickTime.Store(0)
	bm.projectilesActive.Store(0)
	bm.projectilesPeak.Store(0)
	bm.hitsRegistered.Store(0)
	bm.patternsStarted.Store(0)

	bm.mutex.Lock()
	bm.avgTickTime = 0
	bm.startTime = time.Now()
	bm.mutex.Unlock()
}
