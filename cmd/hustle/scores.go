package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tile-hustle/internal/games/hustle"
	"github.com/vovakirdan/tile-hustle/internal/platform/tui"
	"github.com/vovakirdan/tile-hustle/internal/storage"
)

var (
	flagRecent bool
	flagLimit  int
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best and recent runs",
	Long: `Display the run history. In a terminal this opens an interactive
table (Tab switches between best and recent runs); otherwise a plain
listing is printed.

Examples:
  hustle scores
  hustle scores --recent --limit 5
  hustle scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the latest runs instead of the best")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs in the plain listing")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history")
}

func runScores(_ *cobra.Command, _ []string) {
	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(hustle.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, hustle.ID, "Tile Hustle", width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printRuns(store)
}

// printRuns writes a plain-text run listing for pipes and scripts.
func printRuns(store *storage.Store) {
	var runs []storage.Run
	var err error
	view := tui.ViewTop
	if flagRecent {
		view = tui.ViewRecent
		runs, err = store.RecentRuns(hustle.ID, flagLimit)
	} else {
		runs, err = store.TopRuns(hustle.ID, flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s - Tile Hustle\n", view)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'hustle' to record the first run!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-5s  %-8s  %s\n", "Rank", "Points", "Level", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-5s  %-8s  %s\n", "----", "------", "-----", "----", "----")

	for _, row := range tui.RunRows(runs) {
		fmt.Printf("  %-4s  %-6s  %-5s  %-8s  %s\n", row[0], row[1], row[2], row[3], row[4])
	}

	stats, err := store.Stats(hustle.ID)
	if err == nil && stats.RunsCount > 0 {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Deepest level: %03d  Played: %s\n",
			stats.RunsCount, stats.HighScore, stats.DeepestLevel, tui.FormatDuration(stats.TotalTime))
	}
}
