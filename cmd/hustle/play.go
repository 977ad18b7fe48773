package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tile-hustle/internal/config"
	"github.com/vovakirdan/tile-hustle/internal/core"
	"github.com/vovakirdan/tile-hustle/internal/games/hustle"
	"github.com/vovakirdan/tile-hustle/internal/platform/tui"
	"github.com/vovakirdan/tile-hustle/internal/registry"
	"github.com/vovakirdan/tile-hustle/internal/storage"
)

var (
	flagStartLevel int
	flagDifficulty string
	flagWatch      bool
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Tile Hustle",
	Long: `Start a game of Tile Hustle.

Controls:
  W/A/S/D, arrows   - Walk
  Shift + direction - Sprint (uses energy)
  Space             - Jump (land on an NPC to score)
  R                 - Back to the level spawn
  I                 - Debug info and minimap
  P                 - Pause
  Ctrl+S            - Save a screenshot
  Q/Esc             - Quit

Difficulty options (NPC speed and jump rate):
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, NPCs keep their configured speed

Examples:
  hustle play
  hustle play --start-level 1
  hustle play --difficulty hard
  hustle play --maps ./maps --watch
  hustle play --config ./my-hustle.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the play flags on cmd. The root command plays too.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagStartLevel, "start-level", 0, "Index of the first level (default from config)")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload tile metadata when files in --maps change")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound cues")
}

func runPlay(cmd *cobra.Command, _ []string) {
	logger, logCloser, err := newLogger(flagLogPath, flagVerbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	cfg, err := config.LoadHustle(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
	}

	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (easy, normal, hard, fixed)\n", flagDifficulty)
			os.Exit(1)
		}
		config.ApplyHustlePreset(&cfg, preset)
	}
	if cmd.Flags().Changed("start-level") {
		if flagStartLevel < 0 {
			fmt.Fprintln(os.Stderr, "Error: --start-level must not be negative")
			os.Exit(1)
		}
		cfg.Levels.Start = flagStartLevel
	}
	if flagMaps != "" {
		cfg.Levels.Dir = expandHome(flagMaps)
	}
	if flagWatch && cfg.Levels.Dir == "" {
		fmt.Fprintln(os.Stderr, "Warning: --watch needs --maps or levels.dir, built-in maps are not watched")
	}

	opts := hustle.Options{
		Config: cfg,
		Watch:  flagWatch,
		Logger: logger,
	}
	if flagMute {
		opts.Audio = hustle.NopAudio{}
	}
	hustle.Configure(opts)

	game, err := registry.Create(hustle.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	tuiOpts := tui.Options{
		HoldWindow: time.Duration(cfg.Input.HoldWindow * float64(time.Second)),
		Logger:     logger,
	}
	if dir := config.UserDir(); dir != "" {
		tuiOpts.ScreenshotDir = filepath.Join(dir, "screenshots")
	}

	logger.Info("starting", "level", cfg.Levels.Start, "maps", cfg.Levels.Dir, "fps", flagFPS)
	runErr := tui.Run(game, store, rc, tuiOpts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
