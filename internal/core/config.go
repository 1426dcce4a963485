package core

// RuntimeConfig contains configuration passed to the campaign at initialization.
// The campaign uses it to scale the world onto the terminal and to seed levels.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (0 = use the configured interval)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 20,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a campaign.
// Returned by State() to communicate status to the platform.
type GameState struct {
	Score    int  // Kills across all cleared levels plus the current one
	GameOver bool // Whether the campaign has ended (won or lost)
	Won      bool // Whether the final level was cleared
	Paused   bool // Whether the campaign is paused
	Exit     bool // Whether the player asked to leave for the main menu
}

// StepResult is returned by Step() after each simulation tick.
type StepResult struct {
	State GameState
}
