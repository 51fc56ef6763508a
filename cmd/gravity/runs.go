package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-gravity/internal/platform/tui"
	"github.com/vovakirdan/tui-gravity/internal/registry"
	"github.com/vovakirdan/tui-gravity/internal/storage"
)

var (
	flagBrowse bool
	flagLimit  int
	flagClear  bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [scenario]",
	Short: "Show recorded runs",
	Long: `Display recent runs, optionally for one scenario.

Examples:
  gravity runs
  gravity runs crowded --limit 5
  gravity runs --browse
  gravity runs still --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive run browser")
	runsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the runs of the given scenario")
}

func runRuns(_ *cobra.Command, args []string) {
	var scenario string
	if len(args) > 0 {
		scenario = args[0]
		if !registry.Exists(scenario) {
			fmt.Fprintf(os.Stderr, "Error: unknown scenario %q\n", scenario)
			fmt.Fprintln(os.Stderr, "Run 'gravity list' to see available scenarios.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		clearRuns(store, scenario)
	case flagBrowse:
		rt := terminalConfig()
		if err := tui.RunRunsBrowser(store, scenario, rt.ScreenW, rt.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		printRuns(store, scenario)
	}
}

func clearRuns(store *storage.Store, scenario string) {
	if scenario == "" {
		fmt.Fprintln(os.Stderr, "Error: --clear needs a scenario")
		os.Exit(1)
	}
	if err := store.ClearRuns(scenario); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Cleared runs of %s.\n", scenario)
}

func printRuns(store *storage.Store, scenario string) {
	var (
		runs []storage.RunRecord
		err  error
	)
	if scenario == "" {
		runs, err = store.RecentRuns(flagLimit)
	} else {
		runs, err = store.RunsByScenario(scenario, flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Start one with 'gravity run' or 'gravity simulate'.")
		return
	}

	fmt.Printf("  %-5s  %-10s  %-20s  %-7s  %-9s  %-6s  %-8s  %s\n",
		"ID", "Scenario", "Seed", "Ticks", "Bodies", "Merges", "Largest", "Date")
	fmt.Printf("  %-5s  %-10s  %-20s  %-7s  %-9s  %-6s  %-8s  %s\n",
		"--", "--------", "----", "-----", "------", "------", "-------", "----")
	for _, r := range runs {
		fmt.Printf("  %-5d  %-10s  %-20d  %-7d  %-9s  %-6d  %-8.1f  %s\n",
			r.ID, r.Scenario, r.Seed, r.Ticks,
			fmt.Sprintf("%d->%d", r.InitialBodies, r.FinalBodies),
			r.Merges, r.LargestMass, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	printStats(store, scenario)
}

func printStats(store *storage.Store, scenario string) {
	fmt.Println()
	if scenario != "" {
		st, err := store.ScenarioStats(scenario)
		if err == nil {
			fmt.Printf("%s: %d runs, %d ticks total, %.1f merges on average, largest body %.1f\n",
				scenario, st.Runs, st.TotalTicks, st.AvgMerges, st.LargestMass)
		}
		return
	}

	all, err := store.AllScenarioStats()
	if err != nil {
		return
	}
	for _, info := range registry.List() {
		if st, ok := all[info.ID]; ok {
			fmt.Printf("%-10s %d runs, last %s\n", info.ID, st.Runs, st.LastRun.Format("2006-01-02 15:04"))
		}
	}
}
