// Package enemy defines the opponent of a battle: its roster entry and the
// runtime state the battle mutates (hp, boss phase, sparable flag).
package enemy

import (
	"fmt"
)

// Enemy is one opponent in a battle.
type Enemy struct {
	Key             string
	Name            string
	HP              int
	MaxHP           int
	AttackDamage    int
	Boss            bool
	Phase           int
	Phase2Threshold float64
	Description     string

	// Phase2Triggered is raised when a boss crosses its threshold and stays
	// up until the battle consumes it.
	Phase2Triggered bool
	Sparable        bool
}

// New creates an enemy at full health from a roster definition
func New(key string, def *Definition) *Enemy {
	return &Enemy{
		Key:             key,
		Name:            def.Name,
		HP:              def.MaxHP,
		MaxHP:           def.MaxHP,
		AttackDamage:    def.AttackDamage,
		Boss:            def.Boss,
		Phase:           1,
		Phase2Threshold: def.Phase2Threshold,
		Description:     def.Description,
	}
}

// NewFromRoster creates an enemy from the global roster
func NewFromRoster(key string) (*Enemy, error) {
	if Roster == nil {
		return nil, fmt.Errorf("enemy roster not loaded")
	}
	def, err := Roster.Get(key)
	if err != nil {
		return nil, err
	}
	return New(key, def), nil
}

// TakeDamage subtracts damage, floored at zero hp, and reports whether the
// enemy died. Bosses switch to phase 2 once hp drops to the threshold.
func (e *Enemy) TakeDamage(damage int) bool {
	e.HP -= damage
	if e.HP < 0 {
		e.HP = 0
	}

	if e.Boss && e.Phase == 1 && float64(e.HP) <= float64(e.MaxHP)*e.Phase2Threshold {
		e.Phase = 2
		e.Phase2Triggered = true
	}

	return e.HP <= 0
}

// ConsumePhase2 reports whether the phase change is still unannounced and
// clears the flag.
func (e *Enemy) ConsumePhase2() bool {
	if !e.Phase2Triggered {
		return false
	}
	e.Phase2Triggered = false
	return true
}

// HPPercent returns remaining hp as a fraction of max hp
func (e *Enemy) HPPercent() float64 {
	if e.MaxHP <= 0 {
		return 0
	}
	return float64(e.HP) / float64(e.MaxHP)
}

// CheckInfo is the text shown by the ACT > Check command.
func (e *Enemy) CheckInfo() string {
	if e.Boss {
		return fmt.Sprintf("%s - BOSS\nHP: %d/%d\nATK: %d\nPhase: %d", e.Name, e.HP, e.MaxHP, e.AttackDamage, e.Phase)
	}
	info := fmt.Sprintf("%s\nHP: %d/%d\nATK: %d", e.Name, e.HP, e.MaxHP, e.AttackDamage)
	if e.Description != "" {
		info += "\n" + e.Description
	}
	return info
}
