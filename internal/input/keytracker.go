// Package input turns keyboard state into battle commands and a movement
// direction.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// PressedFunc reports whether a key is held this frame. ebiten.IsKeyPressed
// satisfies it.
type PressedFunc func(ebiten.Key) bool

// KeyStateTracker tracks the previous state of a set of keys.
type KeyStateTracker struct {
	prevPressed map[ebiten.Key]bool
}

func NewKeyStateTracker() *KeyStateTracker {
	return &KeyStateTracker{prevPressed: make(map[ebiten.Key]bool)}
}

// IsKeyJustPressed returns true if the key was not pressed last frame but is pressed this frame.
func (k *KeyStateTracker) IsKeyJustPressed(key ebiten.Key, pressed PressedFunc) bool {
	now := pressed(key)
	justPressed := now && !k.prevPressed[key]
	k.prevPressed[key] = now
	return justPressed
}
