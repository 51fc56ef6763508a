// gravity is a terminal N-body gravity simulator.
//
// Usage:
//
//	gravity list                - List available scenarios
//	gravity run [scenario]      - Run a simulation in the terminal
//	gravity menu                - Pick scenarios interactively
//	gravity simulate [scenario] - Run headless and print a summary
//	gravity serve               - Start SSH server for remote viewing
//	gravity runs [scenario]     - Show recorded runs
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible runs
//	--db <path>       - Set database path (default: ~/.gravity/runs.db)
//	--config <path>   - Use a custom gravity.yaml
//	--bodies <n>      - Override the body count
//	--scenario <id>   - Scenario when none is given (default: classic)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-gravity/internal/config"
	"github.com/vovakirdan/tui-gravity/internal/registry"
	"github.com/vovakirdan/tui-gravity/internal/scenarios"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagBodies   int
	flagScenario string
	flagVerbose  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gravity",
	Short: "Gravity - an N-body simulator in your terminal",
	Long: `Gravity simulates a sun and a swarm of bodies that attract each other,
collide and merge, drawn directly in your terminal.

Available commands:
  list      - Show all scenarios
  run       - Run a simulation
  menu      - Interactive scenario picker
  simulate  - Run headless and print a summary
  serve     - Start SSH server for remote viewing
  runs      - View recorded runs

Examples:
  gravity list
  gravity run
  gravity run crowded --seed 42
  gravity simulate still --ticks 2000
  gravity serve --ssh :2222
  gravity runs --browse`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gravity/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom gravity config YAML")
	rootCmd.PersistentFlags().IntVar(&flagBodies, "bodies", 0, "Override the number of bodies (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagScenario, "scenario", scenarios.DefaultID, "Scenario used when none is given as argument")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
}

// scenarioArg returns the optional scenario argument or the --scenario flag.
func scenarioArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return flagScenario
}

// resolveConfig loads the configuration file, applies the scenario
// and the --bodies override, and validates the result.
func resolveConfig(scenario string) (config.GravityConfig, error) {
	base, err := config.Load(flagConfig)
	if err != nil {
		return base, err
	}

	cfg, err := registry.Configure(scenario, base)
	if err != nil {
		return cfg, err
	}

	if flagBodies > 0 {
		cfg.Bodies.Count = flagBodies
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// mustResolveConfig is resolveConfig for commands, exiting on error.
func mustResolveConfig(scenario string) config.GravityConfig {
	if !registry.Exists(scenario) {
		fmt.Fprintf(os.Stderr, "Error: unknown scenario %q\n", scenario)
		fmt.Fprintln(os.Stderr, "Run 'gravity list' to see available scenarios.")
		os.Exit(1)
	}

	cfg, err := resolveConfig(scenario)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
