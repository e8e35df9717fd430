package main

import (
	"log"
	"math/rand"
	"time"

	"heartdodge/internal/config"
	"heartdodge/internal/enemy"
	"heartdodge/internal/game"
	"heartdodge/internal/records"

	"github.com/hajimehoshi/ebiten/v2"
)

const configPath = "config.yaml"

func main() {
	// Load configuration
	cfg := config.MustLoadConfig(configPath)

	// Load enemy roster
	roster := enemy.MustLoadRoster("enemies.yaml")

	watcher, err := config.NewWatcher(configPath)
	if err != nil {
		log.Printf("Warning: config hot reload disabled: %v", err)
		watcher = nil
	} else {
		defer watcher.Close()
	}

	store := records.Open("heartdodge")
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	session := game.NewSession(cfg, roster, store, rng)

	// Set window properties from config
	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g := game.NewGame(session, watcher)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
