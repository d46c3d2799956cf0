//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"neural-bg/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.Width <= 0 || cfg.Height <= 0 {
		log.Fatalf("invalid window size %dx%d", cfg.Width, cfg.Height)
	}

	game := app.New(cfg.Backdrop, cfg.Width, cfg.Height)

	ebiten.SetWindowTitle("neural-bg")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
