package core

// RuntimeConfig contains configuration passed to the platform at startup.
// The simulation itself runs in fixed world coordinates; the screen size
// only affects how the world is projected onto terminal cells.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Platform refresh ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic obstacle placement
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
