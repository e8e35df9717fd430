// Package game wires the battle session into an ebiten game loop.
package game

import (
	"fmt"
	"log"

	"heartdodge/internal/config"
	"heartdodge/internal/input"
	"heartdodge/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game implements ebiten.Game on top of a Session.
type Game struct {
	session  *Session
	controls *input.Controls
	renderer *render.Renderer
	watcher  *config.Watcher

	showDebug bool
}

// NewGame wraps session. watcher may be nil when hot reload is unavailable.
func NewGame(session *Session, watcher *config.Watcher) *Game {
	return &Game{
		session:  session,
		controls: input.NewControls(nil),
		renderer: render.NewRenderer(),
		watcher:  watcher,
	}
}

// Update advances one tick
func (g *Game) Update() error {
	g.pollWatcher()

	if g.controls.JustPressed(ebiten.KeyF3) {
		g.showDebug = !g.showDebug
	}

	cmds := g.controls.Commands()
	dx, dy := g.controls.Direction()
	g.session.Step(cmds, dx, dy)
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	select {
	case cfg, ok := <-g.watcher.Configs:
		if ok {
			log.Printf("[Config] Reloaded, applying at the next encounter")
			g.session.QueueConfig(cfg)
		}
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("[Config] Reload failed: %v", err)
		}
	default:
	}
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.session.InSummary() {
		g.renderer.DrawSummary(screen, "Encounter over", SummaryLines(g.session))
		return
	}

	msg := g.session.Message()
	text := ""
	if msg.Ticks > 0 {
		text = msg.Text
	}
	debug := ""
	if g.showDebug {
		m := g.session.Monitor().GetCurrentMetrics()
		debug = fmt.Sprintf("TPS %.0f  tick %v (peak %v)  projectiles %d/%d  hits %d",
			ebiten.ActualTPS(), m.AverageTick, m.PeakTick, m.ProjectilesActive, m.ProjectilesPeak, m.HitsRegistered)
	}
	g.renderer.Draw(screen, g.session.Battle(), text, debug)
}

// Layout returns the logical screen size of the running encounter's config.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	cfg := g.session.Config()
	return cfg.GetScreenWidth(), cfg.GetScreenHeight()
}

// SummaryLines describes the last encounter and the record table.
func SummaryLines(s *Session) []string {
	last, rank := s.LastEntry()
	lines := []string{
		fmt.Sprintf("%s: %s", last.Enemy, last.Outcome),
		fmt.Sprintf("Survived %ds, took %d damage in %d hits", last.Ticks/60, last.DamageTaken, last.Hits),
		fmt.Sprintf("Score: %d", last.Score),
	}
	if rank > 0 {
		lines = append(lines, fmt.Sprintf("New record! Rank #%d", rank))
	}
	lines = append(lines, "", "Records:")
	for i, e := range s.Records() {
		lines = append(lines, fmt.Sprintf("%2d. %-16s %-8s %6d  %s", i+1, e.Enemy, e.Outcome, e.Score, e.Date.Format("2006-01-02")))
	}
	lines = append(lines, "", "Press Z for the next encounter")
	return lines
}
