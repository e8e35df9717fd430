package config

import (
	"errors"
	"fmt"
	"os"

	"heartdodge/internal/mathutil"

	"gopkg.in/yaml.v3"
)

// Config holds all battle tuning values
type Config struct {
	Display     DisplayConfig    `yaml:"display"`
	Arena       ArenaConfig      `yaml:"arena"`
	Projectiles ProjectileConfig `yaml:"projectiles"`
	Patterns    PatternConfig    `yaml:"patterns"`
	Battle      BattleConfig     `yaml:"battle"`
	Player      PlayerConfig     `yaml:"player"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
}

type ArenaConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	YOffset    float64 `yaml:"y_offset"`    // Lift above screen centre, leaves room for the menu
	KillMargin float64 `yaml:"kill_margin"` // Projectiles die once they leave arena+margin
}

type ProjectileConfig struct {
	BaseSpeed       float64    `yaml:"base_speed"`
	SpeedMultiplier float64    `yaml:"speed_multiplier"`
	Line            SizeConfig `yaml:"line"`
	Circle          SizeConfig `yaml:"circle"`
	Targeting       SizeConfig `yaml:"targeting"`
}

type SizeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PatternConfig holds scheduler timings and per-pattern spawn tuning.
// All durations and intervals are in ticks.
type PatternConfig struct {
	AttackDuration int     `yaml:"attack_duration"`
	GapDuration    int     `yaml:"gap_duration"`
	CombineChance  float64 `yaml:"combine_chance"`
	MinDifficulty  float64 `yaml:"min_difficulty"`
	MaxDifficulty  float64 `yaml:"max_difficulty"`

	LineRain      LineRainConfig      `yaml:"line_rain"`
	CircleBurst   CircleBurstConfig   `yaml:"circle_burst"`
	Targeting     TargetingConfig     `yaml:"targeting"`
	BouncingWalls BouncingWallsConfig `yaml:"bouncing_walls"`
	Spiral        SpiralConfig        `yaml:"spiral"`
	LaserWarning  LaserWarningConfig  `yaml:"laser_warning"`
	SnakeWave     SnakeWaveConfig     `yaml:"snake_wave"`
	HomingBlades  HomingBladesConfig  `yaml:"homing_blades"`
	ExpandingRing ExpandingRingConfig `yaml:"expanding_ring"`
	GravityWells  GravityWellsConfig  `yaml:"gravity_wells"`
	RotatingCross RotatingCrossConfig `yaml:"rotating_cross"`
}

type LineRainConfig struct {
	Interval    int `yaml:"interval"`
	BulletCount int `yaml:"bullet_count"`
}

type CircleBurstConfig struct {
	Interval    int     `yaml:"interval"`
	Count       int     `yaml:"count"`
	SpeedFactor float64 `yaml:"speed_factor"`
}

type TargetingConfig struct {
	Interval       int `yaml:"interval"`
	BulletsPerShot int `yaml:"bullets_per_shot"`
}

type BouncingWallsConfig struct {
	Interval   int     `yaml:"interval"`
	Size       float64 `yaml:"size"`
	MinBounces int     `yaml:"min_bounces"`
	MaxBounces int     `yaml:"max_bounces"`
}

type SpiralConfig struct {
	Interval    int     `yaml:"interval"`
	Arms        int     `yaml:"arms"`
	AngleStep   float64 `yaml:"angle_step"` // Radians per elapsed pattern tick
	SpeedFactor float64 `yaml:"speed_factor"`
}

type LaserWarningConfig struct {
	Interval     int     `yaml:"interval"`
	WarningTicks int     `yaml:"warning_ticks"`
	ActiveTicks  int     `yaml:"active_ticks"`
	BeamWidth    float64 `yaml:"beam_width"`
	EdgeMargin   float64 `yaml:"edge_margin"`
}

type SnakeWaveConfig struct {
	Interval   int     `yaml:"interval"`
	RowSpacing float64 `yaml:"row_spacing"`
	Speed      float64 `yaml:"speed"`
	Amplitude  float64 `yaml:"amplitude"`
	Frequency  float64 `yaml:"frequency"`
	Radius     float64 `yaml:"radius"`
}

type HomingBladesConfig struct {
	Interval    int     `yaml:"interval"`
	MinBlades   int     `yaml:"min_blades"`
	MaxBlades   int     `yaml:"max_blades"`
	AimTicks    int     `yaml:"aim_ticks"`
	ChargeTicks int     `yaml:"charge_ticks"`
	Speed       float64 `yaml:"speed"`
	Size        float64 `yaml:"size"`
	ExitMargin  float64 `yaml:"exit_margin"`
}

type ExpandingRingConfig struct {
	Interval    int     `yaml:"interval"`
	Points      int     `yaml:"points"`
	Gaps        int     `yaml:"gaps"`
	StartRadius float64 `yaml:"start_radius"`
	ExpandSpeed float64 `yaml:"expand_speed"`
}

type GravityWellsConfig struct {
	Interval      int     `yaml:"interval"`
	Strength      float64 `yaml:"strength"`
	MinDistance   float64 `yaml:"min_distance"`
	Radius        float64 `yaml:"radius"`
	JitterRadians float64 `yaml:"jitter_radians"`
	SpeedFactor   float64 `yaml:"speed_factor"`
}

type RotatingCrossConfig struct {
	Interval           int     `yaml:"interval"`
	Arms               int     `yaml:"arms"`
	BulletsPerArm      int     `yaml:"bullets_per_arm"`
	BaseDistance       float64 `yaml:"base_distance"`
	Spacing            float64 `yaml:"spacing"`
	AngleStep          float64 `yaml:"angle_step"` // Radians per tick at difficulty 1
	FallingCount       int     `yaml:"falling_count"`
	FallingSpeedFactor float64 `yaml:"falling_speed_factor"`
}

type BattleConfig struct {
	SafetyPauseTicks      int     `yaml:"safety_pause_ticks"`
	WarmupTicks           int     `yaml:"warmup_ticks"`
	InvulnerabilityTicks  int     `yaml:"invulnerability_ticks"`
	FightBarSpeed         float64 `yaml:"fight_bar_speed"`
	PlayerAttackDamage    int     `yaml:"player_attack_damage"`
	MaxDamagePenalty      float64 `yaml:"max_damage_penalty"`
	MinDamageMultiplier   float64 `yaml:"min_damage_multiplier"`
	MobPatternsPerRound   int     `yaml:"mob_patterns_per_round"`
	BossPhase1Patterns    int     `yaml:"boss_phase1_patterns"`
	BossPhase2MinPatterns int     `yaml:"boss_phase2_min_patterns"`
	BossPhase2MaxPatterns int     `yaml:"boss_phase2_max_patterns"`
	BossPhase2Difficulty  float64 `yaml:"boss_phase2_difficulty"`
	PhaseBannerTicks      int     `yaml:"phase_banner_ticks"`
	VictoryDelayTicks     int     `yaml:"victory_delay_ticks"`
}

type PlayerConfig struct {
	Size  float64 `yaml:"size"`
	Speed float64 `yaml:"speed"`
	MaxHP int     `yaml:"max_hp"`
}

var GlobalConfig *Config

// DefaultConfig returns a complete configuration so a battle can run without
// a config file.
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			ScreenWidth:  800,
			ScreenHeight: 600,
			WindowTitle:  "Heart Dodge",
		},
		Arena: ArenaConfig{Width: 400, Height: 240, YOffset: 40, KillMargin: 100},
		Projectiles: ProjectileConfig{
			BaseSpeed:       3,
			SpeedMultiplier: 1,
			Line:            SizeConfig{Width: 40, Height: 6},
			Circle:          SizeConfig{Width: 8, Height: 8},
			Targeting:       SizeConfig{Width: 10, Height: 10},
		},
		Patterns: PatternConfig{
			AttackDuration: 300,
			GapDuration:    60,
			CombineChance:  0.3,
			MinDifficulty:  0.5,
			MaxDifficulty:  3.0,
			LineRain:       LineRainConfig{Interval: 40, BulletCount: 3},
			CircleBurst:    CircleBurstConfig{Interval: 60, Count: 12, SpeedFactor: 1.5},
			Targeting:      TargetingConfig{Interval: 45, BulletsPerShot: 2},
			BouncingWalls:  BouncingWallsConfig{Interval: 60, Size: 20, MinBounces: 3, MaxBounces: 4},
			Spiral:         SpiralConfig{Interval: 3, Arms: 2, AngleStep: 0.1, SpeedFactor: 1.2},
			LaserWarning: LaserWarningConfig{
				Interval: 60, WarningTicks: 30, ActiveTicks: 15, BeamWidth: 30, EdgeMargin: 20,
			},
			SnakeWave: SnakeWaveConfig{
				Interval: 40, RowSpacing: 40, Speed: 3, Amplitude: 30, Frequency: 0.1, Radius: 6,
			},
			HomingBlades: HomingBladesConfig{
				Interval: 90, MinBlades: 2, MaxBlades: 3, AimTicks: 60, ChargeTicks: 15,
				Speed: 15, Size: 30, ExitMargin: 50,
			},
			ExpandingRing: ExpandingRingConfig{
				Interval: 100, Points: 16, Gaps: 2, StartRadius: 10, ExpandSpeed: 2,
			},
			GravityWells: GravityWellsConfig{
				Interval: 30, Strength: 0.4, MinDistance: 10, Radius: 40, JitterRadians: 0.5, SpeedFactor: 1.2,
			},
			RotatingCross: RotatingCrossConfig{
				Interval: 60, Arms: 4, BulletsPerArm: 8, BaseDistance: 30, Spacing: 25,
				AngleStep: 0.02, FallingCount: 2, FallingSpeedFactor: 0.8,
			},
		},
		Battle: BattleConfig{
			SafetyPauseTicks:      60,
			WarmupTicks:           90,
			InvulnerabilityTicks:  60,
			FightBarSpeed:         0.03,
			PlayerAttackDamage:    20,
			MaxDamagePenalty:      0.8,
			MinDamageMultiplier:   0.2,
			MobPatternsPerRound:   1,
			BossPhase1Patterns:    1,
			BossPhase2MinPatterns: 2,
			BossPhase2MaxPatterns: 4,
			BossPhase2Difficulty:  1.3,
			PhaseBannerTicks:      120,
			VictoryDelayTicks:     60,
		},
		Player: PlayerConfig{Size: 16, Speed: 4, MaxHP: 20},
	}
}

// LoadConfig loads the configuration from a YAML file. Keys missing from the
// file keep their DefaultConfig values.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config, err := ParseConfig(data)
	if err != nil {
		return nil, err
	}

	// Set global config for easy access
	GlobalConfig = config

	return config, nil
}

// ParseConfig decodes YAML on top of DefaultConfig and validates the result.
func ParseConfig(data []byte) (*Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	return config
}

// Validate reports every value that would stall or break the tick model.
func (c *Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("arena.width", c.Arena.Width)
	positive("arena.height", c.Arena.Height)
	positive("projectiles.base_speed", c.Projectiles.BaseSpeed)
	positive("patterns.attack_duration", float64(c.Patterns.AttackDuration))
	positive("patterns.gap_duration", float64(c.Patterns.GapDuration))
	positive("patterns.min_difficulty", c.Patterns.MinDifficulty)
	positive("patterns.line_rain.interval", float64(c.Patterns.LineRain.Interval))
	positive("patterns.circle_burst.interval", float64(c.Patterns.CircleBurst.Interval))
	positive("patterns.circle_burst.count", float64(c.Patterns.CircleBurst.Count))
	positive("patterns.targeting.interval", float64(c.Patterns.Targeting.Interval))
	positive("patterns.bouncing_walls.interval", float64(c.Patterns.BouncingWalls.Interval))
	positive("patterns.spiral.interval", float64(c.Patterns.Spiral.Interval))
	positive("patterns.laser_warning.interval", float64(c.Patterns.LaserWarning.Interval))
	positive("patterns.snake_wave.interval", float64(c.Patterns.SnakeWave.Interval))
	positive("patterns.snake_wave.row_spacing", c.Patterns.SnakeWave.RowSpacing)
	positive("patterns.homing_blades.interval", float64(c.Patterns.HomingBlades.Interval))
	positive("patterns.expanding_ring.interval", float64(c.Patterns.ExpandingRing.Interval))
	positive("patterns.expanding_ring.points", float64(c.Patterns.ExpandingRing.Points))
	positive("patterns.gravity_wells.interval", float64(c.Patterns.GravityWells.Interval))
	positive("patterns.gravity_wells.min_distance", c.Patterns.GravityWells.MinDistance)
	positive("patterns.rotating_cross.interval", float64(c.Patterns.RotatingCross.Interval))
	positive("battle.fight_bar_speed", c.Battle.FightBarSpeed)
	positive("player.size", c.Player.Size)
	positive("player.max_hp", float64(c.Player.MaxHP))

	if c.Patterns.MaxDifficulty < c.Patterns.MinDifficulty {
		errs = append(errs, fmt.Errorf("patterns.max_difficulty %v is below min_difficulty %v",
			c.Patterns.MaxDifficulty, c.Patterns.MinDifficulty))
	}
	if c.Patterns.CombineChance < 0 || c.Patterns.CombineChance > 1 {
		errs = append(errs, fmt.Errorf("patterns.combine_chance must be in [0,1], got %v", c.Patterns.CombineChance))
	}
	if c.Patterns.BouncingWalls.MaxBounces < c.Patterns.BouncingWalls.MinBounces {
		errs = append(errs, errors.New("patterns.bouncing_walls.max_bounces is below min_bounces"))
	}
	if c.Patterns.HomingBlades.MinBlades < 1 || c.Patterns.HomingBlades.MaxBlades > 4 ||
		c.Patterns.HomingBlades.MaxBlades < c.Patterns.HomingBlades.MinBlades {
		errs = append(errs, errors.New("patterns.homing_blades blade counts must satisfy 1 <= min <= max <= 4"))
	}
	if c.Patterns.ExpandingRing.Gaps < 0 || c.Patterns.ExpandingRing.Gaps >= c.Patterns.ExpandingRing.Points {
		errs = append(errs, errors.New("patterns.expanding_ring.gaps must be in [0, points)"))
	}
	if c.Battle.BossPhase2MaxPatterns < c.Battle.BossPhase2MinPatterns {
		errs = append(errs, errors.New("battle.boss_phase2_max_patterns is below boss_phase2_min_patterns"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

// GetBulletSpeed returns the base projectile speed with the global multiplier applied.
func (c *Config) GetBulletSpeed() float64 {
	return c.Projectiles.BaseSpeed * c.Projectiles.SpeedMultiplier
}

// ClampDifficulty bounds a difficulty value to the configured range.
func (c *Config) ClampDifficulty(d float64) float64 {
	return mathutil.Clamp(d, c.Patterns.MinDifficulty, c.Patterns.MaxDifficulty)
}
