package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended and waits for a restart
	Paused   bool // Whether the game is paused
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventNone EventKind = iota
	// EventGameOver reports a run that just ended. The game has already
	// reset itself; Score carries the final score of the finished run.
	EventGameOver
)

// Event is a notification produced by a simulation tick.
// The platform decides how to present it.
type Event struct {
	Kind  EventKind
	Score int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// GameOver returns the game-over event of this tick, if any.
func (r StepResult) GameOver() (Event, bool) {
	for _, ev := range r.Events {
		if ev.Kind == EventGameOver {
			return ev, true
		}
	}
	return Event{}, false
}
