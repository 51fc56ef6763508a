package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-gravity/internal/core"
	"github.com/vovakirdan/tui-gravity/internal/platform/tui"
	"github.com/vovakirdan/tui-gravity/internal/storage"
)

var runCmd = &cobra.Command{
	Use:   "run [scenario]",
	Short: "Run a simulation",
	Long: `Run a simulation in the terminal.

Controls:
  Space/P        - Pause (shows the predicted orbit of the selected body)
  N              - Single step while paused
  Arrows/hjkl    - Pan the camera
  Mouse click    - Select a body
  R              - Restart with a new seed
  ?              - Toggle help
  Ctrl+S         - Save a screenshot to ~/.gravity/screenshots
  Q/Ctrl+C       - Quit

Examples:
  gravity run
  gravity run heavy-sun
  gravity run crowded --seed 42 --fps 30
  gravity run --config ./my-gravity.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRun,
}

// terminalConfig returns the runtime config for the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the run history, warning instead of failing.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		return nil
	}
	return store
}

func runRun(_ *cobra.Command, args []string) {
	scenario := scenarioArg(args)
	cfg := mustResolveConfig(scenario)

	store := openStore()

	runErr := tui.Run(tui.Options{
		Scenario: scenario,
		Config:   cfg,
		Runtime:  terminalConfig(),
		Store:    store,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", runErr)
		os.Exit(1)
	}
}
