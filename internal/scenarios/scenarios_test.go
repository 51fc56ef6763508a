package scenarios

import (
	"testing"

	"github.com/vovakirdan/tui-gravity/internal/config"
	"github.com/vovakirdan/tui-gravity/internal/registry"
)

func TestBuiltinsRegistered(t *testing.T) {
	for _, id := range []string{"classic", "still", "crowded", "heavy-sun", "sparse"} {
		if !registry.Exists(id) {
			t.Errorf("scenario %q not registered", id)
		}
	}
}

func TestBuiltinsProduceValidConfig(t *testing.T) {
	base := config.DefaultGravityConfig()

	for _, info := range registry.List() {
		t.Run(info.ID, func(t *testing.T) {
			if _, err := registry.Configure(info.ID, base); err != nil {
				t.Errorf("Configure(%q) failed: %v", info.ID, err)
			}
		})
	}
}

func TestScenarioEffects(t *testing.T) {
	base := config.DefaultGravityConfig()

	tests := []struct {
		id    string
		check func(c config.GravityConfig) bool
	}{
		{"classic", func(c config.GravityConfig) bool { return c == base }},
		{"still", func(c config.GravityConfig) bool { return c.Bodies.InitialSpeed == 0 }},
		{"crowded", func(c config.GravityConfig) bool { return c.Bodies.Count == 3*base.Bodies.Count }},
		{"heavy-sun", func(c config.GravityConfig) bool { return c.Sun.Mass == 5*base.Sun.Mass }},
		{"sparse", func(c config.GravityConfig) bool {
			return c.Bodies.Count == base.Bodies.Count/4 && c.Bodies.InitialSpeed == 2*base.Bodies.InitialSpeed
		}},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			cfg, err := registry.Configure(tc.id, base)
			if err != nil {
				t.Fatalf("Configure() failed: %v", err)
			}
			if !tc.check(cfg) {
				t.Errorf("unexpected config for %s: %+v", tc.id, cfg)
			}
		})
	}
}
