package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"voidlife/internal/app"
	"voidlife/internal/pattern"

	"github.com/gdamore/tcell/v2"
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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("terminal: %v", err)
	}
	screen.EnableMouse()

	w, h := screen.Size()
	session := app.NewSession(app.TerminalConfig(*cfg, w, max(1, h-1)), lib)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := app.RunTerminal(ctx, screen, session, 33*time.Millisecond); err != nil {
		log.Fatal(err)
	}
}
