//go:build ebiten

package main

import (
	"errors"
	"log"
	"os"

	"cgol/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := app.Parse("ca", cfg, os.Args[1:]); err != nil {
		log.Fatalf("config: %v", err)
	}

	game, err := app.New(cfg)
	if err != nil {
		log.Fatalf("session: %v", err)
	}

	w, h := game.Layout(0, 0)
	ebiten.SetWindowTitle("cgol - " + cfg.Engine)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
