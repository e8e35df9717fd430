// Package pattern implements the attack pattern library: eleven spawn and
// motion algorithms that fill the battle arena with projectiles and hazards.
package pattern

import "fmt"

// ID identifies one pattern. The set is closed; values outside it are
// programming errors.
type ID int

const (
	LineRain ID = iota
	CircleBurst
	Targeting
	BouncingWalls
	Spiral
	LaserWarning
	SnakeWave
	HomingBlades
	ExpandingRing
	GravityWells
	RotatingCross

	numPatterns
)

// Count is the size of the pattern set.
const Count = int(numPatterns)

var patternInfo = [numPatterns]struct {
	key   string
	label string
	basic bool
}{
	LineRain:      {"line_rain", "Line Rain", true},
	CircleBurst:   {"circle_burst", "Circle Burst", true},
	Targeting:     {"targeting", "Targeting", true},
	BouncingWalls: {"bouncing_walls", "Bouncing Walls", true},
	Spiral:        {"spiral", "Spiral", true},
	LaserWarning:  {"laser_warning", "Laser Warning", true},
	SnakeWave:     {"snake_wave", "Snake Wave", false},
	HomingBlades:  {"homing_blades", "Homing Blades", false},
	ExpandingRing: {"expanding_ring", "Expanding Ring", false},
	GravityWells:  {"gravity_wells", "Gravity Wells", false},
	RotatingCross: {"rotating_cross", "Rotating Cross", false},
}

// Valid reports whether id belongs to the pattern set.
func (id ID) Valid() bool {
	return id >= 0 && id < numPatterns
}

// String returns the snake_case key of the pattern.
func (id ID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("pattern(%d)", int(id))
	}
	return patternInfo[id].key
}

// Label returns the display name of the pattern.
func (id ID) Label() string {
	mustValid(id)
	return patternInfo[id].label
}

// IsBasic reports whether the pattern may be combined with a secondary one.
func (id ID) IsBasic() bool {
	mustValid(id)
	return patternInfo[id].basic
}

// All returns every pattern in declaration order.
func All() []ID {
	ids := make([]ID, 0, Count)
	for id := ID(0); id < numPatterns; id++ {
		ids = append(ids, id)
	}
	return ids
}

// Basic returns the patterns eligible for combination.
func Basic() []ID {
	var ids []ID
	for _, id := range All() {
		if patternInfo[id].basic {
			ids = append(ids, id)
		}
	}
	return ids
}

// Complex returns the patterns that always run alone.
func Complex() []ID {
	var ids []ID
	for _, id := range All() {
		if !patternInfo[id].basic {
			ids = append(ids, id)
		}
	}
	return ids
}

// Parse looks a pattern up by its snake_case key.
func Parse(key string) (ID, error) {
	for _, id := range All() {
		if patternInfo[id].key == key {
			return id, nil
		}
	}
	return 0, fmt.Errorf("unknown pattern %q", key)
}

func mustValid(id ID) {
	if !id.Valid() {
		panic(fmt.Sprintf("pattern: invalid pattern id %d", int(id)))
	}
}

// Slot distinguishes the primary pattern of a tick from a combined secondary
// one. Each (pattern, slot) pair owns its own counters.
type Slot int

const (
	Primary Slot = iota
	Secondary
)

// Context is the per-tick input every pattern handler receives.
type Context struct {
	PlayerX, PlayerY float64
	Difficulty       float64
	// Elapsed is the number of ticks since the running pattern started.
	Elapsed int
}
