// hustle is a top-down tile game for the terminal: roam the map, jump on
// NPCs for points and teleport deeper once you have enough of them.
//
// Usage:
//
//	hustle                   - Play (same as hustle play)
//	hustle play              - Play, optionally from another level
//	hustle scores            - Show best and recent runs
//	hustle levels            - List the available maps
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible NPC placement
//	--db <path>      - Set database path (default: ~/.hustle/runs.db)
//	--config <path>  - Use a custom hustle.yaml
//	--maps <dir>     - Load maps and tile metadata from a directory
//	--log <path>     - Log file (default: ~/.hustle/hustle.log, "-" for stderr)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagMaps    string
	flagLogPath string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hustle",
	Short: "Tile Hustle - a top-down tile game in your terminal",
	Long: `Tile Hustle is a top-down tile game played in the terminal.

Walk the map, jump onto NPCs to collect points and step on a portal
tile to teleport to the next level once you have collected enough.

Available commands:
  play     - Play the game (default)
  scores   - View best and recent runs
  levels   - List the available maps

Examples:
  hustle
  hustle play --start-level 2
  hustle play --maps ./maps --watch
  hustle scores`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hustle/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom hustle.yaml")
	rootCmd.PersistentFlags().StringVar(&flagMaps, "maps", "", "Directory with mapNNN.txt files (default: built-in maps)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.hustle/hustle.log", `Log file path ("-" for stderr)`)
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}
