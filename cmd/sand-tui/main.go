package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"sandmaker/internal/app"
	"sandmaker/internal/core"
	"sandmaker/internal/tui"
)

func main() {
	cfg, err := app.Load(os.Args[0], os.Args[1:], os.Getenv, os.Stderr)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	// The terminal is the display; logs go to a file when requested.
	var logOut io.Writer = io.Discard
	if path := os.Getenv("SANDMAKER_LOG_FILE"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err == nil {
			defer f.Close()
			logOut = f
		}
	}
	logger := core.NewLogger(cfg.LogLevel, logOut)

	// Fit the grid to the terminal unless a size was given.
	cols, rows := screen.Size()
	if !cfg.IsSet("grid-w") {
		cfg.Width = max(cols, 3)
	}
	if !cfg.IsSet("grid-h") {
		cfg.Height = max((rows-1)*2, 3)
	}

	world, err := cfg.NewWorld(logger)
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}
	front := tui.New(screen, world, tui.Options{TPS: cfg.TPS, Seed: cfg.Seed}, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = front.Run(ctx)
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}
