// Package scenarios holds the built-in simulation presets.
// Importing it registers every preset with the registry.
package scenarios

import (
	"github.com/vovakirdan/tui-gravity/internal/config"
	"github.com/vovakirdan/tui-gravity/internal/registry"
)

// DefaultID is the scenario used when none is requested.
const DefaultID = "classic"

// preset is a scenario described by a config transform.
type preset struct {
	id          string
	title       string
	description string
	apply       func(cfg *config.GravityConfig)
}

func (p preset) ID() string          { return p.id }
func (p preset) Title() string       { return p.title }
func (p preset) Description() string { return p.description }

func (p preset) Apply(cfg *config.GravityConfig) {
	if p.apply != nil {
		p.apply(cfg)
	}
}

var builtins = []preset{
	{
		id:          DefaultID,
		title:       "Classic",
		description: "The loaded configuration as-is",
	},
	{
		id:          "still",
		title:       "Still Start",
		description: "Every body starts at rest and falls toward the sun",
		apply: func(cfg *config.GravityConfig) {
			cfg.Bodies.InitialSpeed = 0
		},
	},
	{
		id:          "crowded",
		title:       "Crowded",
		description: "Three times the bodies at a third of the mass",
		apply: func(cfg *config.GravityConfig) {
			cfg.Bodies.Count *= 3
			cfg.Bodies.MaxMass = max(2, cfg.Bodies.MaxMass/3)
		},
	},
	{
		id:          "heavy-sun",
		title:       "Heavy Sun",
		description: "A sun five times heavier",
		apply: func(cfg *config.GravityConfig) {
			cfg.Sun.Mass *= 5
		},
	},
	{
		id:          "sparse",
		title:       "Sparse",
		description: "A quarter of the bodies, moving twice as fast",
		apply: func(cfg *config.GravityConfig) {
			cfg.Bodies.Count = max(1, cfg.Bodies.Count/4)
			cfg.Bodies.InitialSpeed *= 2
		},
	},
}

func init() {
	for _, p := range builtins {
		registry.Register(p.id, func() registry.Scenario {
			return p
		})
	}
}
