package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Variants offered by the platform. Each one adjusts the loaded base
// configuration, so user config files and difficulty presets still apply.
var Variants = []registry.Variant{
	{
		ID:          "classic",
		Title:       "Breakout",
		Description: "14x8 bricks on a 600x400 field",
	},
	{
		ID:          "wide",
		Title:       "Breakout Wide",
		Description: "18 columns on an 800 pixel wide field",
		Configure: func(cfg *config.BreakoutConfig) {
			cfg.Screen.Width = 800
			cfg.Bricks.Columns = 18
		},
	},
	{
		ID:          "tall",
		Title:       "Breakout Tall",
		Description: "12 rows of bricks and a deeper field",
		Configure: func(cfg *config.BreakoutConfig) {
			cfg.Screen.Height = 520
			cfg.Bricks.Rows = 12
		},
	},
	{
		ID:          "mini",
		Title:       "Breakout Mini",
		Description: "7x4 bricks for small terminals",
		Configure: func(cfg *config.BreakoutConfig) {
			cfg.Screen.Width = 320
			cfg.Screen.Height = 300
			cfg.Bricks.Columns = 7
			cfg.Bricks.Rows = 4
		},
	},
}

// factory adapts New to the registry.
func factory(id, title string, cfg config.BreakoutConfig, opts registry.Options) (registry.Game, error) {
	gameOpts := []Option{
		WithVariant(id, title),
		WithAutopilot(opts.Autopilot),
	}
	if opts.Clock != nil {
		gameOpts = append(gameOpts, WithClock(opts.Clock))
	}
	// New never fires the hook, so g is set before the first call
	var g *Game
	if fn := opts.OnTransition; fn != nil {
		gameOpts = append(gameOpts, WithTransitionHook(func(from, to State, _ Context) {
			fn(from.String(), to.String(), g.State())
		}))
	}
	g, err := New(cfg, gameOpts...)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Register the variants with the registry
func init() {
	for _, v := range Variants {
		registry.Register(v, factory)
	}
}
