//go:build ebiten

package main

import (
	"errors"
	"log"
	"os"

	"sandmaker/internal/app"
	"sandmaker/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.Load(os.Args[0], os.Args[1:], os.Getenv, os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
	logger := core.NewLogger(cfg.LogLevel, os.Stderr)

	world, err := cfg.NewWorld(logger)
	if err != nil {
		log.Fatal(err)
	}
	game := app.New(world, cfg, logger)
	size := world.Size()

	ebiten.SetWindowTitle("sandmaker")
	ebiten.SetWindowSize(size.W*cfg.CellSize+cfg.HUDWidth, size.H*cfg.CellSize)
	logger.Infof("starting %dx%d sandbox at %d tps", size.W, size.H, cfg.TPS)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
