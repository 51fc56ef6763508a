package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-gravity/internal/config"
	"github.com/vovakirdan/tui-gravity/internal/core"
	"github.com/vovakirdan/tui-gravity/internal/storage"
)

func testOptions(store *storage.Store) Options {
	cfg := config.DefaultGravityConfig()
	cfg.Bodies.Count = 15
	cfg.Prediction.Iterations = 200
	cfg.Prediction.SampleEvery = 20
	return Options{
		Scenario: "classic",
		Config:   cfg,
		Runtime:  core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 99},
		Store:    store,
	}
}

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	m, err := NewModel(testOptions(store))
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

// send feeds msg through Update and returns the resulting model.
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestModelInvalidConfig(t *testing.T) {
	opts := testOptions(nil)
	opts.Config.Bodies.Count = 0
	if _, err := NewModel(opts); err == nil {
		t.Error("expected error for invalid config")
	}
}

func TestModelTickAdvances(t *testing.T) {
	m := newTestModel(t, nil)

	for i := 0; i < 3; i++ {
		m = send(t, m, TickMsg{})
	}

	if got := m.Simulation().Stats().Tick; got != 3 {
		t.Errorf("Tick = %d, expected 3", got)
	}
}

func TestModelPauseAndStep(t *testing.T) {
	m := newTestModel(t, nil)

	m = send(t, m, runeKey('p'))
	m = send(t, m, TickMsg{})
	if !m.Simulation().Paused() {
		t.Fatal("simulation not paused")
	}
	ticks := m.Simulation().Stats().Tick

	m = send(t, m, TickMsg{})
	if m.Simulation().Stats().Tick != ticks {
		t.Error("paused tick advanced physics")
	}

	m = send(t, m, runeKey('n'))
	m = send(t, m, TickMsg{})
	if got := m.Simulation().Stats().Tick; got != ticks+1 {
		t.Errorf("Tick = %d after step, expected %d", got, ticks+1)
	}
}

func TestModelPanTranslatesBodies(t *testing.T) {
	a := newTestModel(t, nil)
	b := newTestModel(t, nil)

	a = send(t, a, runeKey('l'))
	a = send(t, a, TickMsg{})
	b = send(t, b, TickMsg{})

	pa, pb := a.Simulation().Bodies(), b.Simulation().Bodies()
	step := testOptions(nil).Config.Camera.PanStep
	for i := range pa {
		if pa[i].Position.X != pb[i].Position.X-step {
			t.Fatalf("body %d x = %v, expected %v", pa[i].ID, pa[i].Position.X, pb[i].Position.X-step)
		}
	}
}

func TestModelMouseSelects(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(t, m, runeKey('p'))
	m = send(t, m, TickMsg{})

	var target struct{ x, y int }
	vp := m.viewport()
	for _, b := range m.Simulation().Bodies() {
		if b.Sun {
			continue
		}
		if cx, cy, ok := vp.ToCell(b.Position.X, b.Position.Y); ok {
			target.x, target.y = cx, cy
			break
		}
	}

	m = send(t, m, tea.MouseMsg{
		X:      target.x,
		Y:      target.y,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	m = send(t, m, TickMsg{})

	if _, ok := m.Simulation().Selected(); !ok {
		t.Fatal("click on a body cell selected nothing")
	}
	if _, ok := m.Simulation().Prediction(); !ok {
		t.Error("no prediction computed for the paused selection")
	}
}

func TestModelHelpToggle(t *testing.T) {
	m := newTestModel(t, nil)
	short := m.areaHeight()

	m = send(t, m, runeKey('?'))
	m = send(t, m, TickMsg{})

	if !m.help.ShowAll {
		t.Fatal("full help not shown")
	}
	if m.areaHeight() >= short {
		t.Errorf("area height %d not reduced from %d by full help", m.areaHeight(), short)
	}
}

func TestModelSavesRunOnQuit(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	for i := 0; i < 5; i++ {
		m = send(t, m, TickMsg{})
	}
	m = send(t, m, runeKey('q'))

	if m.View() != "" {
		t.Error("view not empty after quit")
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 saved run, got %d", len(runs))
	}
	r := runs[0]
	if r.Scenario != "classic" || r.Seed != 99 || r.Ticks != 5 || r.InitialBodies != 16 {
		t.Errorf("unexpected run record: %+v", r)
	}
	if len(r.StateHash) != 16 {
		t.Errorf("StateHash = %q, expected 16 hex digits", r.StateHash)
	}
}

func TestModelViewShowsStatus(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(t, m, TickMsg{})

	if out := m.View(); out == "" {
		t.Error("empty view")
	}
}

func TestModelPausedHint(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(t, m, runeKey('p'))
	m = send(t, m, TickMsg{})

	m.render()
	if !strings.Contains(m.screen.String(), pausedHint) {
		t.Error("paused view without selection should show the hint")
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	opts := testOptions(nil)
	opts.ScreenshotDir = dir
	m, err := NewModel(opts)
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "classic_") {
		t.Fatalf("expected one classic_ screenshot, got %v", entries)
	}
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if rows := strings.Count(string(data), "\n") + 1; rows != m.areaHeight() {
		t.Errorf("screenshot has %d rows, expected %d", rows, m.areaHeight())
	}
	if m.quitting {
		t.Error("screenshot should not quit")
	}
}
