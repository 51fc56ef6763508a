// Package registry provides a global registry for simulation scenarios.
// Scenarios register themselves in init() functions, allowing the commands
// to discover and apply them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-gravity/internal/config"
)

// Scenario is a named preset layered over the loaded configuration.
type Scenario interface {
	// ID returns a unique identifier (e.g., "classic", "crowded").
	// Used for CLI flags and run storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Description returns a one-line summary shown by `gravity list`.
	Description() string

	// Apply adjusts cfg in place. Values the scenario does not care about
	// are left as loaded, so user configuration still applies.
	Apply(cfg *config.GravityConfig)
}

// ScenarioInfo contains metadata about a registered scenario.
type ScenarioInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory is a function that creates a new instance of a scenario.
type Factory func() Scenario

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]ScenarioInfo)
	mu        sync.RWMutex
)

// Register adds a scenario factory to the registry.
// Panics if a scenario with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: scenario %q already registered", id))
	}

	factories[id] = f

	sc := f()
	infos[id] = ScenarioInfo{ID: id, Title: sc.Title(), Description: sc.Description()}
}

// List returns information about all registered scenarios, sorted by ID.
func List() []ScenarioInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ScenarioInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a scenario by its ID.
func Create(id string) (Scenario, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown scenario %q", id)
	}

	return f(), nil
}

// Exists checks if a scenario with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Configure returns base with the named scenario applied and validated.
func Configure(id string, base config.GravityConfig) (config.GravityConfig, error) {
	sc, err := Create(id)
	if err != nil {
		return base, err
	}
	cfg := base
	sc.Apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return base, fmt.Errorf("registry: scenario %q: %w", id, err)
	}
	return cfg, nil
}
