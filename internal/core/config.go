package core

// RuntimeConfig contains the host parameters handed to a game session.
// Screen dimensions are in terminal cells; the simulation itself runs in
// world units and is scaled at render time.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frame driver ticks per second (default 60)
	Seed     int64 // RNG seed for obstacle generation
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
