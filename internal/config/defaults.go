package config

import (
	_ "embed"
)

//go:embed defaults/gravity.yaml
var defaultGravityYAML []byte

// DefaultGravityConfig returns the default simulation configuration.
func DefaultGravityConfig() GravityConfig {
	return GravityConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Sun: SunConfig{
			Mass: 5000,
		},
		Bodies: BodiesConfig{
			Count:        100,
			MaxMass:      50,
			InitialSpeed: 20,
		},
		Physics: PhysicsConfig{
			GravitationalConstant: 100,
			MinDistance:           0.001,
			MergeRadius:           MergeRadiusStale,
			TimeScale:             1,
		},
		Prediction: PredictionConfig{
			Iterations:  10000,
			SampleEvery: 100,
		},
		Selection: SelectionConfig{
			Tolerance: 5,
		},
		Camera: CameraConfig{
			PanStep: 10,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultGravityYAML
}
