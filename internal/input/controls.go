package input

import (
	"heartdodge/internal/battle"

	"github.com/hajimehoshi/ebiten/v2"
)

type binding struct {
	key ebiten.Key
	cmd battle.Command
}

// Menu keys in priority order. Arrows and WASD both navigate.
var commandBindings = []binding{
	{ebiten.KeyArrowLeft, battle.CmdLeft},
	{ebiten.KeyA, battle.CmdLeft},
	{ebiten.KeyArrowRight, battle.CmdRight},
	{ebiten.KeyD, battle.CmdRight},
	{ebiten.KeyArrowUp, battle.CmdUp},
	{ebiten.KeyW, battle.CmdUp},
	{ebiten.KeyArrowDown, battle.CmdDown},
	{ebiten.KeyS, battle.CmdDown},
	{ebiten.KeyZ, battle.CmdConfirm},
	{ebiten.KeyEnter, battle.CmdConfirm},
	{ebiten.KeySpace, battle.CmdConfirm},
	{ebiten.KeyX, battle.CmdCancel},
	{ebiten.KeyEscape, battle.CmdCancel},
	{ebiten.KeyBackspace, battle.CmdCancel},
}

// Controls maps keyboard state to commands. One instance should be polled
// once per tick.
type Controls struct {
	pressed PressedFunc
	tracker *KeyStateTracker
}

// NewControls reads keys through pressed. Pass nil to use ebiten's keyboard.
func NewControls(pressed PressedFunc) *Controls {
	if pressed == nil {
		pressed = ebiten.IsKeyPressed
	}
	return &Controls{pressed: pressed, tracker: NewKeyStateTracker()}
}

// Commands returns the commands whose keys went down this tick. Two keys
// bound to the same command produce it once.
func (c *Controls) Commands() []battle.Command {
	var out []battle.Command
	seen := make(map[battle.Command]bool)
	for _, b := range commandBindings {
		// Every key must be polled so its previous state stays current.
		if c.tracker.IsKeyJustPressed(b.key, c.pressed) && !seen[b.cmd] {
			seen[b.cmd] = true
			out = append(out, b.cmd)
		}
	}
	return out
}

// Direction returns the held movement direction, each axis in {-1, 0, 1}.
func (c *Controls) Direction() (float64, float64) {
	var dx, dy float64
	if c.pressed(ebiten.KeyArrowLeft) || c.pressed(ebiten.KeyA) {
		dx--
	}
	if c.pressed(ebiten.KeyArrowRight) || c.pressed(ebiten.KeyD) {
		dx++
	}
	if c.pressed(ebiten.KeyArrowUp) || c.pressed(ebiten.KeyW) {
		dy--
	}
	if c.pressed(ebiten.KeyArrowDown) || c.pressed(ebiten.KeyS) {
		dy++
	}
	return dx, dy
}

// JustPressed reports a single key edge, for keys outside the battle
// bindings such as the debug toggle.
func (c *Controls) JustPressed(key ebiten.Key) bool {
	return c.tracker.IsKeyJustPressed(key, c.pressed)
}
