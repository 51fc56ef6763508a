package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/tui-gravity/internal/core"
	"github.com/vovakirdan/tui-gravity/internal/platform/tui"
	"github.com/vovakirdan/tui-gravity/internal/sim"
)

var (
	flagTicks  int
	flagSelect string
	flagNoSave bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [scenario]",
	Short: "Run a simulation headless and print a summary",
	Long: `Run a fixed number of ticks without a terminal UI.

With --select, the body nearest to the given world point is selected after
the last tick, the simulation is paused and its orbit is predicted.

Examples:
  gravity simulate
  gravity simulate crowded --ticks 5000 --seed 7
  gravity simulate --select 400,250 -v`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 600, "Number of ticks to simulate")
	simulateCmd.Flags().StringVar(&flagSelect, "select", "", "World point x,y to click after the last tick")
	simulateCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the run in the database")
}

// parsePoint parses "x,y" into a world point.
func parsePoint(s string) (r2.Vec, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return r2.Vec{}, fmt.Errorf("invalid point %q: expected x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return r2.Vec{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return r2.Vec{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return r2.Vec{X: x, Y: y}, nil
}

func runSimulate(_ *cobra.Command, args []string) {
	scenario := scenarioArg(args)
	cfg := mustResolveConfig(scenario)

	if flagTicks < 0 {
		fmt.Fprintf(os.Stderr, "Error: --ticks must not be negative, got %d\n", flagTicks)
		os.Exit(1)
	}

	var click *r2.Vec
	if flagSelect != "" {
		p, err := parsePoint(flagSelect)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		click = &p
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "gravity",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := sim.New()
	if err := s.Initialize(cfg, seed); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rt := core.RuntimeConfig{TickRate: flagFPS}
	dt := rt.Dt(cfg.Physics.TimeScale)
	logger.Info("simulation initialized",
		"scenario", scenario,
		"seed", seed,
		"bodies", s.Stats().Bodies,
		"dt", dt,
	)

	progressEvery := max(1, flagTicks/10)
	start := time.Now()
	for i := 1; i <= flagTicks; i++ {
		s.Tick(dt)
		if i%progressEvery == 0 {
			st := s.Stats()
			logger.Debug("progress", "tick", st.Tick, "bodies", st.Bodies, "merges", st.Merges)
		}
	}

	if click != nil {
		predictOrbit(logger, s, *click, dt)
	}

	st := s.Stats()
	digest, err := s.Digest()
	if err != nil {
		logger.Error("cannot compute state digest", "error", err)
	}
	logger.Info("simulation finished",
		"ticks", st.Tick,
		"bodies", st.Bodies,
		"merges", st.Merges,
		"largest", fmt.Sprintf("%.2f", st.LargestMass),
		"digest", fmt.Sprintf("%016x", digest),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)

	if flagNoSave {
		return
	}
	store := openStore()
	if store == nil {
		return
	}
	defer store.Close()

	rec, err := tui.SummarizeRun(scenario, s)
	if err != nil {
		logger.Warn("run not saved", "error", err)
		return
	}
	id, err := store.SaveRun(rec)
	if err != nil {
		logger.Warn("run not saved", "error", err)
		return
	}
	logger.Debug("run saved", "id", id)
}

// predictOrbit selects the body near p, pauses and logs the predicted orbit.
func predictOrbit(logger *log.Logger, s *sim.Simulation, p r2.Vec, dt float64) {
	s.Click(p)
	selected, ok := s.Selected()
	if !ok {
		logger.Warn("no body near selection point", "x", p.X, "y", p.Y)
		return
	}

	s.Pause()
	s.Tick(dt)
	points, _ := s.Prediction()

	logger.Info("orbit predicted",
		"body", selected.ID,
		"mass", fmt.Sprintf("%.2f", selected.Mass),
		"points", len(points),
	)
	for i, pt := range points {
		logger.Debug("orbit point", "i", i, "x", fmt.Sprintf("%.1f", pt.X), "y", fmt.Sprintf("%.1f", pt.Y))
	}
}
