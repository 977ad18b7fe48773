package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-hustle/internal/config"
	"github.com/vovakirdan/tile-hustle/internal/games/hustle"
	"github.com/vovakirdan/tile-hustle/internal/games/hustle/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the available maps",
	Long: `Shows every mapNNN.txt in the map source with its size and the
points needed to teleport onward from it.

Examples:
  hustle levels
  hustle levels --maps ./maps`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadHustle(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
	}

	fsys := levels.Embedded()
	source := "built-in maps"
	dir := cfg.Levels.Dir
	if flagMaps != "" {
		dir = expandHome(flagMaps)
	}
	if dir != "" {
		fsys = os.DirFS(dir)
		source = dir
	}

	var opts []levels.Option
	if cfg.Tiles.Metadata != "" {
		opts = append(opts, levels.WithTileFile(cfg.Tiles.Metadata))
	}
	loader := levels.NewLoader(fsys, hustle.TuningFromConfig(cfg), opts...)

	infos, err := loader.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing maps: %v\n", err)
		os.Exit(1)
	}

	if len(infos) == 0 {
		fmt.Printf("No maps found in %s.\n", source)
		return
	}

	fmt.Printf("Levels (%s):\n", source)
	fmt.Println()

	// Print header
	fmt.Printf("  %-5s  %-12s  %-7s  %s\n", "Index", "File", "Size", "Points to advance")
	fmt.Printf("  %-5s  %-12s  %-7s  %s\n", "-----", "----", "----", "-----------------")

	for _, info := range infos {
		size := fmt.Sprintf("%dx%d", info.Width, info.Height)
		fmt.Printf("  %-5d  %-12s  %-7s  %d\n", info.Index, info.Name, size, info.Required)
	}

	fmt.Println()
	fmt.Println("Run 'hustle play --start-level <index>' to start elsewhere.")
}
