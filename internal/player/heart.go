// Package player models the heart the player steers inside the arena during
// the enemy's turn, along with its hp and battle inventory.
package player

import (
	"heartdodge/internal/collision"
	"heartdodge/internal/config"
	"heartdodge/internal/mathutil"
)

// Item is a consumable usable from the ITEM menu.
type Item struct {
	Name      string `yaml:"name"`
	HealValue int    `yaml:"heal_value"`
}

// Heart is the player's avatar in a battle. Its position is the centre of
// its square collision box.
type Heart struct {
	box   collision.BoundingBox
	arena collision.Rect
	Speed float64

	HP           int
	MaxHP        int
	invulnerable int
	invulnTicks  int

	Items []Item
}

// NewHeart creates a heart at full health centred in arena.
func NewHeart(cfg *config.Config, arena collision.Rect) *Heart {
	h := &Heart{
		box:         *collision.NewBoundingBox(arena.CenterX(), arena.CenterY(), cfg.Player.Size, cfg.Player.Size),
		arena:       arena,
		Speed:       cfg.Player.Speed,
		HP:          cfg.Player.MaxHP,
		MaxHP:       cfg.Player.MaxHP,
		invulnTicks: cfg.Battle.InvulnerabilityTicks,
	}
	return h
}

// Position returns the centre of the heart.
func (h *Heart) Position() (float64, float64) {
	return h.box.X, h.box.Y
}

// Box returns the heart's collision box.
func (h *Heart) Box() *collision.BoundingBox {
	return &h.box
}

func (h *Heart) Size() float64 {
	return h.box.Width
}

// SetArena confines the heart to arena and centres it there.
func (h *Heart) SetArena(arena collision.Rect) {
	h.arena = arena
	h.Recenter()
}

// Recenter moves the heart back to the middle of the arena.
func (h *Heart) Recenter() {
	h.box.MoveTo(h.arena.CenterX(), h.arena.CenterY())
}

// Move steps the heart by dirX*Speed, dirY*Speed. Each axis is applied only
// when the heart would stay fully inside the arena.
func (h *Heart) Move(dirX, dirY float64) {
	half := h.box.Width / 2
	halfH := h.box.Height / 2

	if nx := h.box.X + dirX*h.Speed; nx-half >= h.arena.Left && nx+half <= h.arena.Right() {
		h.box.X = nx
	}
	if ny := h.box.Y + dirY*h.Speed; ny-halfH >= h.arena.Top && ny+halfH <= h.arena.Bottom() {
		h.box.Y = ny
	}
}

// Push displaces the heart by an external force and clamps it back inside
// the arena.
func (h *Heart) Push(fx, fy float64) {
	x, y := h.arena.ClampCenter(h.box.X+fx, h.box.Y+fy, h.box.Width/2, h.box.Height/2)
	h.box.MoveTo(x, y)
}

// ApplyDamage subtracts damage unless the heart is invulnerable. It reports
// whether the damage was applied; an applied hit starts invulnerability.
func (h *Heart) ApplyDamage(damage int) bool {
	if h.invulnerable > 0 {
		return false
	}
	h.HP -= damage
	if h.HP < 0 {
		h.HP = 0
	}
	h.invulnerable = h.invulnTicks
	return true
}

// Tick counts down invulnerability.
func (h *Heart) Tick() {
	if h.invulnerable > 0 {
		h.invulnerable--
	}
}

// Invulnerable reports whether hits are currently ignored.
func (h *Heart) Invulnerable() bool {
	return h.invulnerable > 0
}

// InvulnerableTicks returns the remaining invulnerability.
func (h *Heart) InvulnerableTicks() int {
	return h.invulnerable
}

func (h *Heart) Alive() bool {
	return h.HP > 0
}

// Heal restores up to amount hp and returns how much was restored.
func (h *Heart) Heal(amount int) int {
	before := h.HP
	h.HP = mathutil.IntClamp(h.HP+amount, 0, h.MaxHP)
	return h.HP - before
}

// AddItem puts an item into the inventory.
func (h *Heart) AddItem(item Item) {
	h.Items = append(h.Items, item)
}

func (h *Heart) HasItems() bool {
	return len(h.Items) > 0
}

// UseItem removes the item at index and heals by its value. ok is false for
// an out-of-range index.
func (h *Heart) UseItem(index int) (item Item, ok bool) {
	if index < 0 || index >= len(h.Items) {
		return Item{}, false
	}
	item = h.Items[index]
	h.Items = append(h.Items[:index], h.Items[index+1:]...)
	h.Heal(item.HealValue)
	return item, true
}
