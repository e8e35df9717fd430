// Package render draws a battle with ebiten: the arena, every drawable the
// attack manager exposes, the heart and the HUD.
package render

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"heartdodge/internal/attack"
	"heartdodge/internal/battle"
	"heartdodge/internal/collision"
	"heartdodge/internal/projectile"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Palette
var (
	ColorBackground   = color.RGBA{0, 0, 0, 255}
	ColorArena        = color.RGBA{255, 255, 255, 255}
	ColorHeart        = color.RGBA{255, 0, 0, 255}
	ColorBullet       = color.RGBA{255, 255, 255, 255}
	ColorBouncing     = color.RGBA{255, 200, 0, 255}
	ColorWave         = color.RGBA{100, 255, 100, 255}
	ColorRing         = color.RGBA{255, 100, 255, 255}
	ColorCross        = color.RGBA{100, 200, 255, 255}
	ColorBladeAim     = color.RGBA{255, 255, 0, 255}
	ColorBladeCharge  = color.RGBA{255, 128, 0, 255}
	ColorBladeFly     = color.RGBA{255, 50, 50, 255}
	ColorLaserWarning = color.RGBA{255, 0, 0, 160}
	ColorLaserBeam    = color.RGBA{255, 80, 80, 230}
	ColorWellAttract  = color.RGBA{120, 60, 255, 140}
	ColorWellRepel    = color.RGBA{255, 120, 40, 140}
	ColorText         = color.RGBA{255, 255, 255, 255}
	ColorHighlight    = color.RGBA{255, 255, 0, 255}
	ColorMercy        = color.RGBA{255, 255, 0, 255}
	ColorMobHP        = color.RGBA{100, 255, 100, 255}
	ColorBossHP       = color.RGBA{255, 100, 0, 255}
	ColorBossHPLow    = color.RGBA{255, 0, 100, 255}
	ColorBarBack      = color.RGBA{40, 40, 40, 255}
)

const (
	enemyBarWidth  = 300
	enemyBarHeight = 15
	fightBarHeight = 24
	laserDash      = 10
	laserGap       = 6
)

// Renderer draws one battle frame.
type Renderer struct {
	face font.Face
}

func NewRenderer() *Renderer {
	return &Renderer{face: basicfont.Face7x13}
}

// Draw renders the battle. message is shown under the menu; debug, when
// non-empty, is printed in the top-left corner.
func (r *Renderer) Draw(screen *ebiten.Image, b *battle.Battle, message, debug string) {
	screen.Fill(ColorBackground)

	arena := b.Arena()
	r.drawEnemyBar(screen, b, arena)
	vector.StrokeRect(screen, float32(arena.Left), float32(arena.Top), float32(arena.Width), float32(arena.Height), 3, ColorArena, false)

	switch b.Mode() {
	case battle.ModeFightAttack:
		r.drawFightBar(screen, b, arena)
	case battle.ModeSafetyPause:
		r.drawCentred(screen, arena, "The enemy is preparing...", ColorHighlight)
	case battle.ModeWarmup:
		r.drawHeart(screen, b)
		r.drawCentred(screen, arena, "Get ready!", ColorWave)
		secs := b.WarmupTicksLeft()/60 + 1
		r.drawTextCentred(screen, arena.CenterX(), arena.CenterY()+24, fmt.Sprintf("Attack in %ds", secs), ColorWave)
	case battle.ModeDodge:
		r.drawDrawables(screen, b.Manager().Drawables())
		r.drawHeart(screen, b)
		ebitenutil.DebugPrintAt(screen, b.Manager().CurrentPatternLabel(), int(arena.Left), int(arena.Bottom())+4)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Attacks left: %d", b.Manager().RemainingPatternCount()),
			int(arena.Right())-110, int(arena.Bottom())+4)
	}

	r.drawHeartHP(screen, b, arena)
	r.drawMenu(screen, b, arena)

	if b.PhaseBannerVisible() {
		r.drawCentred(screen, arena, "PHASE 2", ColorBossHPLow)
	}
	if message != "" {
		for i, line := range strings.Split(message, "\n") {
			ebitenutil.DebugPrintAt(screen, line, int(arena.Left), int(arena.Bottom())+60+i*14)
		}
	}
	if debug != "" {
		ebitenutil.DebugPrintAt(screen, debug, 4, 4)
	}
}

// DrawSummary renders the screen between encounters.
func (r *Renderer) DrawSummary(screen *ebiten.Image, title string, lines []string) {
	screen.Fill(ColorBackground)
	w := screen.Bounds().Dx()
	r.drawTextCentred(screen, float64(w)/2, 80, title, ColorHighlight)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 120, 120+i*16)
	}
}

func (r *Renderer) drawEnemyBar(screen *ebiten.Image, b *battle.Battle, arena collision.Rect) {
	e := b.Enemy
	x := float32(arena.CenterX() - enemyBarWidth/2)
	y := float32(arena.Top - 25)

	nameColor := ColorText
	if e.Boss {
		nameColor = ColorHighlight
	}
	r.drawTextCentred(screen, arena.CenterX(), arena.Top-45, e.Name, nameColor)
	if e.Boss {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Phase %d", e.Phase), int(x)+enemyBarWidth+8, int(y))
	}

	vector.DrawFilledRect(screen, x, y, enemyBarWidth, enemyBarHeight, ColorBarBack, false)
	vector.DrawFilledRect(screen, x, y, float32(BarWidth(enemyBarWidth, e.HP, e.MaxHP)), enemyBarHeight, EnemyBarColor(e.Boss, e.HPPercent()), false)
	vector.StrokeRect(screen, x, y, enemyBarWidth, enemyBarHeight, 2, ColorText, false)
}

func (r *Renderer) drawHeartHP(screen *ebiten.Image, b *battle.Battle, arena collision.Rect) {
	h := b.Heart
	x := float32(arena.Left)
	y := float32(arena.Bottom() + 22)
	ebitenutil.DebugPrintAt(screen, "HP", int(x), int(y))
	vector.DrawFilledRect(screen, x+24, y+2, 100, 12, ColorBarBack, false)
	vector.DrawFilledRect(screen, x+24, y+2, float32(BarWidth(100, h.HP, h.MaxHP)), 12, ColorHighlight, false)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d/%d", h.HP, h.MaxHP), int(x)+132, int(y))
}

func (r *Renderer) drawMenu(screen *ebiten.Image, b *battle.Battle, arena collision.Rect) {
	y := int(arena.Bottom()) + 42
	buttons := b.Menu.Buttons()
	step := int(arena.Width) / len(buttons)
	for i, label := range buttons {
		clr := ColorText
		if b.Mode() == battle.ModeMenu && i == b.Menu.Selected {
			clr = ColorHighlight
			label = "> " + label
		}
		if buttons[i] == battle.ButtonMercy && b.Enemy.Sparable {
			clr = ColorMercy
		}
		ebitext.Draw(screen, label, r.face, int(arena.Left)+i*step+8, y+r.face.Metrics().Ascent.Round(), clr)
	}

	if !b.Menu.SubmenuActive() {
		return
	}
	items, selected := b.Menu.Submenu()
	bx := float32(arena.Left + 20)
	by := float32(arena.Top + 20)
	vector.DrawFilledRect(screen, bx, by, 200, float32(24+len(items)*16), ColorBackground, false)
	vector.StrokeRect(screen, bx, by, 200, float32(24+len(items)*16), 2, ColorText, false)
	if len(items) == 0 {
		ebitenutil.DebugPrintAt(screen, "(empty)", int(bx)+12, int(by)+8)
		return
	}
	for i, item := range items {
		prefix := "  "
		if i == selected {
			prefix = "> "
		}
		ebitenutil.DebugPrintAt(screen, prefix+item, int(bx)+12, int(by)+8+i*16)
	}
}

func (r *Renderer) drawFightBar(screen *ebiten.Image, b *battle.Battle, arena collision.Rect) {
	x := float32(arena.Left + 20)
	w := float32(arena.Width - 40)
	y := float32(arena.CenterY() - fightBarHeight/2)

	vector.DrawFilledRect(screen, x, y, w, fightBarHeight, ColorBarBack, false)
	// Centre zone deals full damage.
	vector.DrawFilledRect(screen, x+w/2-6, y, 12, fightBarHeight, ColorMobHP, false)
	vector.StrokeRect(screen, x, y, w, fightBarHeight, 2, ColorText, false)

	cursor := x + w*float32(b.FightBarPosition())
	vector.StrokeLine(screen, cursor, y-6, cursor, y+fightBarHeight+6, 3, ColorText, false)
	r.drawTextCentred(screen, arena.CenterX(), float64(y)-20, "Press Z in the centre!", ColorText)
}

func (r *Renderer) drawHeart(screen *ebiten.Image, b *battle.Battle) {
	if !HeartVisible(b.Heart.InvulnerableTicks()) {
		return
	}
	x, y := b.Heart.Position()
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(b.Heart.Size()/2), ColorHeart, true)
}

func (r *Renderer) drawDrawables(screen *ebiten.Image, ds []attack.Drawable) {
	// Wells and beams go under the bullets.
	for _, d := range ds {
		switch d.Kind {
		case attack.DrawWell:
			clr := ColorWellAttract
			if d.Repel {
				clr = ColorWellRepel
			}
			rad := float32(d.Radius * d.Pulse)
			vector.DrawFilledCircle(screen, float32(d.X), float32(d.Y), rad, clr, true)
			vector.StrokeCircle(screen, float32(d.X), float32(d.Y), rad+4, 2, clr, true)
		case attack.DrawLaserWarning:
			for _, seg := range LaserDashes(d.Beam, d.Horizontal) {
				vector.StrokeLine(screen, seg[0], seg[1], seg[2], seg[3], 2, ColorLaserWarning, false)
			}
		case attack.DrawLaserBeam:
			vector.DrawFilledRect(screen, float32(d.Beam.Left), float32(d.Beam.Top), float32(d.Beam.Width), float32(d.Beam.Height), ColorLaserBeam, false)
		}
	}

	for _, d := range ds {
		switch d.Kind {
		case attack.DrawBullet:
			drawBullet(screen, d)
		case attack.DrawBlade:
			drawBlade(screen, d)
		}
	}
}

func drawBullet(screen *ebiten.Image, d attack.Drawable) {
	clr := ShapeColor(d.Shape)
	switch d.Shape {
	case projectile.KindLine, projectile.KindBouncing, projectile.KindTargeting:
		vector.DrawFilledRect(screen, float32(d.Box.X-d.Box.Width/2), float32(d.Box.Y-d.Box.Height/2),
			float32(d.Box.Width), float32(d.Box.Height), clr, false)
	default:
		vector.DrawFilledCircle(screen, float32(d.Box.X), float32(d.Box.Y), float32(d.Box.Width/2), clr, true)
	}
}

func drawBlade(screen *ebiten.Image, d attack.Drawable) {
	clr := ColorBladeFly
	switch d.Blade {
	case projectile.BladeAiming:
		clr = ColorBladeAim
	case projectile.BladeCharging:
		clr = ColorBladeCharge
	}
	half := float32(d.Box.Width / 2 * d.Scale)
	cx, cy := float32(d.Box.X), float32(d.Box.Y)
	// Diamond outline.
	vector.StrokeLine(screen, cx, cy-half, cx+half, cy, 2, clr, true)
	vector.StrokeLine(screen, cx+half, cy, cx, cy+half, 2, clr, true)
	vector.StrokeLine(screen, cx, cy+half, cx-half, cy, 2, clr, true)
	vector.StrokeLine(screen, cx-half, cy, cx, cy-half, 2, clr, true)
}

func (r *Renderer) drawCentred(screen *ebiten.Image, arena collision.Rect, s string, clr color.Color) {
	r.drawTextCentred(screen, arena.CenterX(), arena.CenterY(), s, clr)
}

func (r *Renderer) drawTextCentred(screen *ebiten.Image, cx, y float64, s string, clr color.Color) {
	w := font.MeasureString(r.face, s).Round()
	ebitext.Draw(screen, s, r.face, int(cx)-w/2, int(y), clr)
}

// HeartVisible reports whether the heart is drawn this frame. It blinks in
// six-tick steps while invulnerable.
func HeartVisible(invulnTicks int) bool {
	return invulnTicks <= 0 || (invulnTicks/6)%2 == 1
}

// ShapeColor picks the fill color of a projectile kind.
func ShapeColor(k projectile.Kind) color.RGBA {
	switch k {
	case projectile.KindBouncing:
		return ColorBouncing
	case projectile.KindWave:
		return ColorWave
	case projectile.KindRing:
		return ColorRing
	case projectile.KindCross:
		return ColorCross
	}
	return ColorBullet
}

// EnemyBarColor picks the enemy hp bar color: green for mobs, orange for a
// healthy boss and pink once it is at half hp or below.
func EnemyBarColor(boss bool, hpPercent float64) color.RGBA {
	if !boss {
		return ColorMobHP
	}
	if hpPercent > 0.5 {
		return ColorBossHP
	}
	return ColorBossHPLow
}

// BarWidth scales full to the share hp/max, clamped to [0, full].
func BarWidth(full float64, hp, max int) float64 {
	if max <= 0 || hp <= 0 {
		return 0
	}
	return full * math.Min(float64(hp)/float64(max), 1)
}

// LaserDashes splits the beam's centre line into dash segments, each as
// x0, y0, x1, y1.
func LaserDashes(beam collision.Rect, horizontal bool) [][4]float32 {
	var segs [][4]float32
	if horizontal {
		y := float32(beam.CenterY())
		for x := beam.Left; x < beam.Right(); x += laserDash + laserGap {
			end := math.Min(x+laserDash, beam.Right())
			segs = append(segs, [4]float32{float32(x), y, float32(end), y})
		}
		return segs
	}
	x := float32(beam.CenterX())
	for y := beam.Top; y < beam.Bottom(); y += laserDash + laserGap {
		end := math.Min(y+laserDash, beam.Bottom())
		segs = append(segs, [4]float32{x, float32(y), x, float32(end)})
	}
	return segs
}
