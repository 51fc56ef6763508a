package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-gravity/internal/config"
)

type fakeScenario struct {
	id    string
	count int
}

func (f fakeScenario) ID() string          { return f.id }
func (f fakeScenario) Title() string       { return "Fake " + f.id }
func (f fakeScenario) Description() string { return "test scenario" }
func (f fakeScenario) Apply(cfg *config.GravityConfig) {
	cfg.Bodies.Count = f.count
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test-basic", func() Scenario { return fakeScenario{id: "test-basic", count: 7} })

	if !Exists("test-basic") {
		t.Fatal("registered scenario does not exist")
	}

	sc, err := Create("test-basic")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if sc.ID() != "test-basic" {
		t.Errorf("ID() = %q, expected test-basic", sc.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "test-basic" {
			found = true
			if info.Title != "Fake test-basic" {
				t.Errorf("Title = %q", info.Title)
			}
		}
	}
	if !found {
		t.Error("List() missing registered scenario")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", func() Scenario { return fakeScenario{id: "test-dup", count: 1} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("test-dup", func() Scenario { return fakeScenario{id: "test-dup", count: 1} })
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-scenario"); err == nil {
		t.Error("expected error for unknown scenario")
	}
}

func TestConfigure(t *testing.T) {
	Register("test-count", func() Scenario { return fakeScenario{id: "test-count", count: 3} })
	Register("test-broken", func() Scenario { return fakeScenario{id: "test-broken", count: 0} })

	base := config.DefaultGravityConfig()

	cfg, err := Configure("test-count", base)
	if err != nil {
		t.Fatalf("Configure() failed: %v", err)
	}
	if cfg.Bodies.Count != 3 {
		t.Errorf("Count = %d, expected 3", cfg.Bodies.Count)
	}
	if base.Bodies.Count != 100 {
		t.Errorf("base modified: Count = %d", base.Bodies.Count)
	}

	_, err = Configure("test-broken", base)
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}
