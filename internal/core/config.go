package core

import "time"

// RuntimeConfig contains configuration passed to the simulation host at start.
// Hosts use this to adapt to screen size and for deterministic initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic body placement
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

// TickInterval returns the wall-clock duration of one tick.
func (c RuntimeConfig) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// Dt returns the simulated time covered by one tick, in seconds,
// scaled by timeScale.
func (c RuntimeConfig) Dt(timeScale float64) float64 {
	return c.TickInterval().Seconds() * timeScale
}
