//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"voidlife/internal/app"
	"voidlife/internal/pattern"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	lib := pattern.Builtins()
	if cfg.PatternsDir != "" {
		if err := lib.LoadDir(context.Background(), cfg.PatternsDir, cfg.PatternMaxSide); err != nil {
			log.Printf("patterns: %v", err)
		}
	}

	session := app.NewSession(*cfg, lib)
	game := app.New(session)

	ebiten.SetWindowTitle("voidlife")
	// Rendering runs every frame; the session paces generations itself.
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(game.WindowSize())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
