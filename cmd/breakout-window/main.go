// breakout-window plays Breakout in a desktop window.
//
// Usage:
//
//	breakout-window [flags] [variant]
//
// Controls: Left/Right move, P/Space pause, N new game, D debug info,
// Q/Esc quit.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/platform/session"
	"github.com/vovakirdan/tui-breakout/internal/platform/window"
	"github.com/vovakirdan/tui-breakout/internal/storage"

	// Register the layouts
	_ "github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

func main() {
	var (
		cfgPath    = flag.String("config", "", "Path to config file (YAML or TOML)")
		difficulty = flag.String("difficulty", "", "Difficulty preset: easy, normal, hard")
		dbPath     = flag.String("db", storage.DefaultPath, "Path to scores database")
		scale      = flag.Int("scale", 2, "Window size as a multiple of the playfield")
		autopilot  = flag.Bool("autopilot", false, "Let the paddle follow the ball")
		verbose    = flag.Bool("v", false, "Log debug messages")
	)
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout-window",
	})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	variant := "classic"
	if flag.NArg() > 0 {
		variant = flag.Arg(0)
	}

	base, err := config.LoadBreakout(*cfgPath)
	if err != nil {
		logger.Fatal("cannot load config", "error", err)
	}
	preset, err := config.ParsePreset(*difficulty)
	if err != nil {
		logger.Fatal("bad difficulty", "error", err)
	}
	config.ApplyBreakoutPreset(&base, preset)

	store, err := storage.Open(*dbPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	game, _, err := session.Create(variant, base, session.Options{
		Store:     store,
		Logger:    logger,
		Autopilot: *autopilot,
	})
	if err != nil {
		if store != nil {
			store.Close()
		}
		logger.Fatal("cannot create game", "error", err)
	}

	runErr := window.Run(game, window.Options{Scale: *scale, Logger: logger})

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintln(os.Stderr, runErr)
		os.Exit(1)
	}
}
