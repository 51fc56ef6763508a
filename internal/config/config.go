// Package config provides YAML-based simulation configuration loading
// and validation for the gravity simulator.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned (wrapped) when a configuration value is out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Merge radius modes.
const (
	MergeRadiusStale = "stale" // absorber keeps its pre-merge radius
	MergeRadiusArea  = "area"  // absorber radius becomes sqrt(rA² + rB²)
)

// GravityConfig contains all configuration for a simulation instance.
type GravityConfig struct {
	World      WorldConfig      `yaml:"world"`
	Sun        SunConfig        `yaml:"sun"`
	Bodies     BodiesConfig     `yaml:"bodies"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Prediction PredictionConfig `yaml:"prediction"`
	Selection  SelectionConfig  `yaml:"selection"`
	Camera     CameraConfig     `yaml:"camera"`
}

// WorldConfig defines the rectangle bodies are scattered over at start.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SunConfig defines the fixed central body.
type SunConfig struct {
	Mass float64 `yaml:"mass"`
}

// BodiesConfig defines the randomly generated bodies.
type BodiesConfig struct {
	Count        int     `yaml:"count"`
	MaxMass      float64 `yaml:"max_mass"`      // masses are drawn from (1, max_mass)
	InitialSpeed float64 `yaml:"initial_speed"` // each velocity component in [-speed, speed]
}

// PhysicsConfig defines the force law and integration knobs.
type PhysicsConfig struct {
	GravitationalConstant float64 `yaml:"gravitational_constant"`
	MinDistance           float64 `yaml:"min_distance"` // distance floor for the force law
	MergeRadius           string  `yaml:"merge_radius"` // "stale" or "area"
	TimeScale             float64 `yaml:"time_scale"`   // simulated seconds per wall second
}

// PredictionConfig defines the detached forward simulation run while paused.
type PredictionConfig struct {
	Iterations  int `yaml:"iterations"`
	SampleEvery int `yaml:"sample_every"`
}

// SelectionConfig defines click-to-select behavior.
type SelectionConfig struct {
	Tolerance float64 `yaml:"tolerance"` // max distance from a body's surface, world units
}

// CameraConfig defines camera panning.
type CameraConfig struct {
	PanStep float64 `yaml:"pan_step"` // world units moved per pan tick
}

// Validate checks every value the simulation depends on.
// The returned error wraps ErrInvalidConfig and names the offending field.
func (c GravityConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return invalid("world size must be positive, got %gx%g", c.World.Width, c.World.Height)
	case c.Sun.Mass <= 0:
		return invalid("sun.mass must be positive, got %g", c.Sun.Mass)
	case c.Bodies.Count <= 0:
		return invalid("bodies.count must be positive, got %d", c.Bodies.Count)
	case c.Bodies.MaxMass <= 1:
		return invalid("bodies.max_mass must be greater than 1, got %g", c.Bodies.MaxMass)
	case c.Bodies.InitialSpeed < 0:
		return invalid("bodies.initial_speed must not be negative, got %g", c.Bodies.InitialSpeed)
	case c.Physics.GravitationalConstant <= 0:
		return invalid("physics.gravitational_constant must be positive, got %g", c.Physics.GravitationalConstant)
	case c.Physics.MinDistance < 0:
		return invalid("physics.min_distance must not be negative, got %g", c.Physics.MinDistance)
	case c.Physics.MergeRadius != MergeRadiusStale && c.Physics.MergeRadius != MergeRadiusArea:
		return invalid("physics.merge_radius must be %q or %q, got %q", MergeRadiusStale, MergeRadiusArea, c.Physics.MergeRadius)
	case c.Physics.TimeScale <= 0:
		return invalid("physics.time_scale must be positive, got %g", c.Physics.TimeScale)
	case c.Prediction.Iterations <= 0:
		return invalid("prediction.iterations must be positive, got %d", c.Prediction.Iterations)
	case c.Prediction.SampleEvery <= 0:
		return invalid("prediction.sample_every must be positive, got %d", c.Prediction.SampleEvery)
	case c.Selection.Tolerance < 0:
		return invalid("selection.tolerance must not be negative, got %g", c.Selection.Tolerance)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("config: %w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
