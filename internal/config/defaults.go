package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Screen: ScreenConfig{
			Width:  600,
			Height: 400,
		},
		Walls: WallsConfig{
			Thickness: 20,
		},
		Bricks: BricksConfig{
			Columns: 14,
			Rows:    8,
			Height:  15,
		},
		Paddle: PaddleConfig{
			Speed: 15,
		},
		Ball: BallConfig{
			Speed: 7.5, // Half the paddle speed
		},
		Gameplay: GameplayConfig{
			Lives:           3,
			ReinsertDelayMS: 2000,
			UpdateRate:      20,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
