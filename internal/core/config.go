package core

// RuntimeConfig contains configuration passed to the game at
// initialization. The game uses this to adapt to screen size and for
// deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic particle spawns
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of the game as reported to the
// platform layer.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether a life just ended this tick
	Paused   bool // Whether the simulation is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// The game resets itself immediately on game over, so when GameOver is
// set State.Score already reads zero; FinalScore carries the score the
// run ended with for score persistence.
type StepResult struct {
	State      GameState
	FinalScore int
}
