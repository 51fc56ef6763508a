package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-gravity/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a scenario picker menu",
	Long: `Start the simulator in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start a scenario.
After quitting a simulation, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Start scenario
  Tab          - Browse run history
  Q            - Quit`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	rt := terminalConfig()

	for {
		res, err := tui.RunMenu(rt)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		rt = res.Config

		switch {
		case res.Quit:
			return

		case res.WantRuns:
			if err := tui.RunRunsBrowser(store, "", rt.ScreenW, rt.ScreenH); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}

		default:
			cfg, err := resolveConfig(res.Scenario)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}
			if err := tui.Run(tui.Options{
				Scenario: res.Scenario,
				Config:   cfg,
				Runtime:  rt,
				Store:    store,
			}); err != nil {
				fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", err)
				return
			}
		}
	}
}
