package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ontop/internal/platform/tui"
	"github.com/vovakirdan/ontop/internal/storage"
)

var flagPlain bool

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Browse the run log",
	Long: `Show recorded runs: recent runs on every level, and the fastest
wins and totals per level.

Examples:
  ontop runs
  ontop runs --plain
  ontop runs clear olympus`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

var runsClearCmd = &cobra.Command{
	Use:   "clear [level]",
	Short: "Delete recorded runs for a level, or all of them",
	Args:  cobra.MaximumNArgs(1),
	Run:   runRunsClear,
}

func init() {
	runsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print the log instead of opening the browser")
	runsCmd.AddCommand(runsClearCmd)
}

func runRuns(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening database: %v", err)
	}
	defer store.Close()

	if flagPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		if err := printRuns(store); err != nil {
			store.Close()
			fatal("%v", err)
		}
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	if err := tui.RunRuns(store, width, height); err != nil {
		store.Close()
		fatal("%v", err)
	}
}

func printRuns(store *storage.Store) error {
	stats, err := store.Stats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'ontop' to play!")
		return nil
	}

	fmt.Println("Levels")
	fmt.Println()
	fmt.Printf("  %-12s  %4s  %4s  %6s  %6s  %5s\n", "Level", "Runs", "Wins", "Deaths", "Best", "Kills")
	fmt.Printf("  %-12s  %4s  %4s  %6s  %6s  %5s\n", "-----", "----", "----", "------", "----", "-----")
	for _, st := range stats {
		best := "-"
		if st.BestTime > 0 {
			best = fmt.Sprintf("%.1fs", st.BestTime.Seconds())
		}
		fmt.Printf("  %-12s  %4d  %4d  %6d  %6s  %5d\n", st.Level, st.Runs, st.Wins, st.Deaths, best, st.Kills)
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println("Recent runs")
	fmt.Println()
	for _, r := range runs {
		outcome := r.Outcome
		if r.Cause != "" {
			outcome += " (" + r.Cause + ")"
		}
		fmt.Printf("  %-16s  %-12s  %-16s  %6.1fs  %d kills\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Level, outcome, r.Duration.Seconds(), r.Kills)
	}
	return nil
}

func runRunsClear(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening database: %v", err)
	}
	defer store.Close()

	lvl := ""
	if len(args) == 1 {
		lvl = args[0]
	}
	if err := store.ClearRuns(lvl); err != nil {
		store.Close()
		fatal("%v", err)
	}

	if lvl == "" {
		fmt.Println("Cleared all runs.")
		return
	}
	fmt.Printf("Cleared runs for %s.\n", lvl)
}
