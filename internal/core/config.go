package core

// RuntimeConfig contains configuration passed to the game at initialization.
// Frontends use it to describe their drawing surface and for deterministic
// simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal) or pixels
	ScreenH  int   // Screen height in characters (terminal) or pixels
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for level generation
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

// Cue identifies a short sound effect requested by the simulation.
type Cue int

const (
	CueJump Cue = iota
	CueCollect
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueCollect:
		return "collect"
	default:
		return "unknown"
	}
}
