package enemy

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Definition holds the configuration for an enemy type from YAML
type Definition struct {
	Name            string  `yaml:"name"`
	MaxHP           int     `yaml:"max_hp"`
	AttackDamage    int     `yaml:"attack_damage"`
	Boss            bool    `yaml:"boss"`
	Phase2Threshold float64 `yaml:"phase2_threshold"` // Fraction of max hp at which a boss enters phase 2
	Description     string  `yaml:"description"`
}

// RosterConfig holds the complete enemy configuration from YAML
type RosterConfig struct {
	Enemies map[string]Definition `yaml:"enemies"`
}

// Global enemy roster
var Roster *RosterConfig

// validateRoster checks every definition can fight a battle.
func validateRoster(config *RosterConfig) error {
	var problems []string
	for _, key := range config.Keys() {
		def := config.Enemies[key]
		if def.Name == "" {
			problems = append(problems, fmt.Sprintf("enemy '%s' has no name", key))
		}
		if def.MaxHP <= 0 {
			problems = append(problems, fmt.Sprintf("enemy '%s' max_hp must be positive", key))
		}
		if def.AttackDamage < 0 {
			problems = append(problems, fmt.Sprintf("enemy '%s' attack_damage is negative", key))
		}
		if def.Boss && (def.Phase2Threshold <= 0 || def.Phase2Threshold >= 1) {
			problems = append(problems, fmt.Sprintf("boss '%s' phase2_threshold must be in (0,1)", key))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("enemy configuration problems detected:\n%s", strings.Join(problems, "\n"))
	}
	return nil
}

// LoadRoster loads enemy definitions from a YAML file
func LoadRoster(filename string) (*RosterConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy roster file: %w", err)
	}

	var config RosterConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse enemy roster YAML: %w", err)
	}
	if len(config.Enemies) == 0 {
		return nil, fmt.Errorf("enemy roster %s defines no enemies", filename)
	}

	if err := validateRoster(&config); err != nil {
		return nil, err
	}

	// Set global roster for easy access
	Roster = &config

	return &config, nil
}

// MustLoadRoster loads the enemy roster and panics on error
func MustLoadRoster(filename string) *RosterConfig {
	config, err := LoadRoster(filename)
	if err != nil {
		panic("Failed to load enemy roster: " + err.Error())
	}
	return config
}

// Get returns the definition with the given key
func (c *RosterConfig) Get(key string) (*Definition, error) {
	def, exists := c.Enemies[key]
	if !exists {
		return nil, fmt.Errorf("enemy with key '%s' not found", key)
	}
	return &def, nil
}

// Keys returns all enemy keys in sorted order
func (c *RosterConfig) Keys() []string {
	keys := make([]string, 0, len(c.Enemies))
	for key := range c.Enemies {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
