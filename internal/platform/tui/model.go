package tui

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/tui-gravity/internal/config"
	"github.com/vovakirdan/tui-gravity/internal/core"
	"github.com/vovakirdan/tui-gravity/internal/sim"
	"github.com/vovakirdan/tui-gravity/internal/storage"
)

// Options configures a simulation view.
type Options struct {
	Scenario string               // scenario ID recorded with the run
	Config   config.GravityConfig // scenario already applied
	Runtime  core.RuntimeConfig
	Store    *storage.Store // optional; runs are not saved when nil

	// ScreenshotDir receives ctrl+s captures. Defaults to ~/.gravity/screenshots.
	ScreenshotDir string
}

const pausedHint = "click a body to predict its orbit"

// Model is the Bubble Tea model for running a simulation.
type Model struct {
	sim      *sim.Simulation
	screen   *core.Screen
	store    *storage.Store
	runtime  core.RuntimeConfig
	cfg      config.GravityConfig
	scenario string
	input    core.InputFrame
	shotDir  string
	keys     KeyMap
	help     help.Model
	quitting bool
	saved    bool // Whether the current run has been saved
}

// NewModel creates a model with a freshly initialized simulation.
// A zero seed is replaced by a time based one.
func NewModel(opts Options) (Model, error) {
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}

	s := sim.New()
	if err := s.Initialize(opts.Config, rt.Seed); err != nil {
		return Model{}, err
	}

	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		shotDir = filepath.Join(os.Getenv("HOME"), ".gravity", "screenshots")
	}

	m := Model{
		sim:      s,
		screen:   core.NewScreen(rt.ScreenW, rt.ScreenH),
		store:    opts.Store,
		runtime:  rt,
		cfg:      opts.Config,
		scenario: opts.Scenario,
		input:    core.NewInputFrame(),
		shotDir:  shotDir,
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
	m.help.Width = rt.ScreenW
	return m, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.input.Click(msg.X, msg.Y)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.screen.Resize(msg.Width, m.areaHeight())
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records key actions for the next tick. Quit is immediate.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}
	if m.keys.MapKeyToFrame(msg, &m.input) {
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick applies the collected input and advances the simulation.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.input.Has(core.ActionRestart) {
		m.restart()
	}
	if m.input.Has(core.ActionHelp) {
		m.help.ShowAll = !m.help.ShowAll
	}
	if m.input.Has(core.ActionPause) {
		m.sim.TogglePause()
	}

	vp := m.viewport()
	for _, c := range m.input.Clicks {
		if !vp.Area.Contains(c.X, c.Y) {
			continue
		}
		x, y := vp.ToWorld(c.X, c.Y)
		m.sim.ClickWithin(r2.Vec{X: x, Y: y}, m.clickTolerance(vp))
	}

	dt := m.runtime.Dt(m.cfg.Physics.TimeScale)
	if m.input.Has(core.ActionStep) && m.sim.Paused() {
		m.sim.StepOnce(dt)
	}

	dx, dy := m.input.Pan()
	camera := r2.Vec{
		X: -float64(dx) * m.cfg.Camera.PanStep,
		Y: -float64(dy) * m.cfg.Camera.PanStep,
	}
	m.sim.TickCamera(dt, camera)

	m.input.Clear()
	return m, tickCmd(m.runtime.TickInterval())
}

// restart saves the current run and reinitializes with a new seed.
func (m *Model) restart() {
	m.saveRun()
	seed := time.Now().UnixNano()
	if err := m.sim.Initialize(m.cfg, seed); err != nil {
		// The config was accepted once; keep the old run going.
		return
	}
	m.runtime.Seed = seed
	m.saved = false
}

// clickTolerance widens the configured tolerance to half a cell diagonal,
// so every visible body can be picked with the mouse.
func (m Model) clickTolerance(vp core.Viewport) float64 {
	return max(m.cfg.Selection.Tolerance, math.Hypot(vp.CellW(), vp.CellH())/2)
}

// saveRun records the run summary once. Runs that never ticked are skipped.
func (m *Model) saveRun() {
	if m.store == nil || m.saved || m.sim.Stats().Tick == 0 {
		return
	}
	rec, err := SummarizeRun(m.scenario, m.sim)
	if err == nil {
		//nolint:errcheck // Best-effort save, the session ends regardless
		m.store.SaveRun(rec)
	}
	m.saved = true
}

// saveScreenshot writes the uncolored simulation area to a text file.
func (m *Model) saveScreenshot() {
	m.render()

	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(m.shotDir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", m.scenario, timestamp))

	//nolint:errcheck // Best-effort save, the simulation continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// SummarizeRun builds the storage record for a simulation's current state.
func SummarizeRun(scenario string, s *sim.Simulation) (storage.RunRecord, error) {
	digest, err := s.Digest()
	if err != nil {
		return storage.RunRecord{}, err
	}
	st := s.Stats()
	return storage.RunRecord{
		Scenario:      scenario,
		Seed:          s.Seed(),
		Ticks:         st.Tick,
		InitialBodies: s.Config().Bodies.Count + 1,
		FinalBodies:   st.Bodies,
		Merges:        st.Merges,
		LargestMass:   st.LargestMass,
		StateHash:     fmt.Sprintf("%016x", digest),
	}, nil
}

// areaHeight returns the rows left for the simulation after the footer.
func (m Model) areaHeight() int {
	footer := 1 + lipgloss.Height(m.help.View(m.keys))
	return core.Max(1, m.runtime.ScreenH-footer)
}

// viewport maps the whole configured world onto the simulation area.
func (m Model) viewport() core.Viewport {
	area := core.NewRect(0, 0, m.runtime.ScreenW, m.areaHeight())
	return core.NewViewport(m.cfg.World.Width, m.cfg.World.Height, area)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.render()

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(renderStatus(m.scenario, m.sim.Stats(), m.runtime.ScreenW))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// render draws the simulation into the screen buffer.
// A paused run without a selection shows how to request a prediction.
func (m Model) render() {
	m.screen.Resize(m.runtime.ScreenW, m.areaHeight())
	m.screen.Clear()
	drawables, orbit := m.sim.RenderSnapshot()
	DrawSimulation(m.screen, m.viewport(), drawables, orbit)

	if m.sim.Paused() {
		if _, ok := m.sim.Selected(); !ok {
			m.screen.DrawTextCentered(0, pausedHint, core.ColorYellow)
		}
	}
}

// Simulation returns the simulation driven by this model.
func (m Model) Simulation() *sim.Simulation {
	return m.sim
}

// Run starts the Bubble Tea program with a new model.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks select bodies
	)

	_, err = p.Run()
	return err
}
