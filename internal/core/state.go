package core

// GameState represents the current state of a game as seen by a frontend.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
	Cleared  int  // Bricks destroyed in the current game
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Continue is false once the game has finished; the loop stops
	// scheduling ticks until a new game is started.
	Continue bool
}
