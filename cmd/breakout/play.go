package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	termui "github.com/vovakirdan/tui-breakout/internal/platform/term"
	"github.com/vovakirdan/tui-breakout/internal/platform/session"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var (
	flagBackend   string
	flagAutopilot bool
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a game",
	Long: `Start playing. Without a variant, a menu lets you pick a layout and
view high scores; with one, the game starts right away.

Controls:
  Left/Right, A/D  - Move paddle
  P/Space          - Pause
  N                - New game
  Shift+D, F3      - Debug info
  Q/Ctrl+C         - Quit

Backends:
  tui    - Bubble Tea (default)
  tcell  - Direct terminal output, writing only cells that changed

Examples:
  breakout play
  breakout play classic
  breakout play mini --difficulty easy
  breakout play wide --backend tcell
  breakout play classic --autopilot`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "tui", "Terminal backend: tui or tcell")
	playCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Let the paddle follow the ball")
}

func runPlay(_ *cobra.Command, args []string) {
	if flagBackend != "tui" && flagBackend != "tcell" {
		fatalf("unknown backend %q", flagBackend)
	}

	base, err := loadConfig()
	if err != nil {
		fatalf("%v", err)
	}

	// The terminal belongs to the game, so logs only go to --log-file
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fatalf("%v", err)
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if len(args) == 0 {
		if flagBackend != "tui" {
			fatalf("the menu needs the tui backend; name a variant to use %s", flagBackend)
		}
		err := tui.RunSession(tui.SessionConfig{
			Store:  store,
			Logger: logger,
			Base:   base,
			Width:  width,
			Height: height,
		})
		if err != nil {
			fatalf("running session: %v", err)
		}
		return
	}

	variant := args[0]
	if !registry.Exists(variant) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variant)
		fmt.Fprintln(os.Stderr, "Run 'breakout list' to see available layouts.")
		os.Exit(1)
	}

	game, rec, err := session.Create(variant, base, session.Options{
		Store:     store,
		Logger:    logger,
		Autopilot: flagAutopilot,
	})
	if err != nil {
		fatalf("creating game: %v", err)
	}

	switch flagBackend {
	case "tcell":
		err = playTcell(game, logger)
	default:
		err = tui.Run(game, tui.Options{Width: width, Height: height})
	}
	if err != nil {
		fatalf("running game: %v", err)
	}

	state := game.State()
	fmt.Printf("Score: %d  Bricks: %d\n", state.Score, state.Cleared)
	if run, ok := rec.LastRun(); ok && store != nil {
		if best, err := store.HighScore(run.Variant); err == nil {
			fmt.Printf("Best on %s: %d\n", run.Variant, best)
		}
	}
}

func playTcell(game registry.Game, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = termui.Run(ctx, screen, game, termui.Options{Logger: logger})
	if errors.Is(err, context.Canceled) {
		logger.Info("interrupted")
		return nil
	}
	return err
}
