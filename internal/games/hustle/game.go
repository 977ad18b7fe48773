// Package hustle provides Tile Hustle for the platform: it wires the world
// simulation to map loading, textures, audio and the terminal screen.
package hustle

import (
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile-hustle/internal/config"
	"github.com/vovakirdan/tile-hustle/internal/core"
	"github.com/vovakirdan/tile-hustle/internal/games/hustle/levels"
	"github.com/vovakirdan/tile-hustle/internal/games/hustle/world"
	"github.com/vovakirdan/tile-hustle/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "hustle"

// Options configures games created by the registry.
type Options struct {
	Config config.HustleConfig
	Maps   fs.FS  // Map source; nil means Config.Levels.Dir or the built-in maps
	Watch  bool   // Reload tile metadata when files in Config.Levels.Dir change
	Logger *log.Logger
	Audio  AudioProvider // nil means LogAudio on Logger
}

// Package-level options, set by the CLI before the platform creates the game.
var options = Options{Config: config.DefaultHustleConfig()}

// Configure sets the options used by games created afterwards.
func Configure(o Options) {
	options = o
}

// CurrentOptions returns the options new games are created with.
func CurrentOptions() Options {
	return options
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New(options)
	})
}

// Game implements registry.Game for Tile Hustle.
type Game struct {
	opts       Options
	tuning     world.Tuning
	log        *log.Logger
	audio      AudioProvider
	textures   TextureProvider
	difficulty *config.DifficultyManager

	loader  *levels.Loader
	watcher *levels.Watcher
	sim     *world.Sim

	screenW  int
	screenH  int
	fps      float64
	paused   bool
	showInfo bool
}

// New creates a game. Nothing is loaded until Reset.
func New(o Options) *Game {
	logger := o.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	audio := o.Audio
	if audio == nil {
		audio = NewLogAudio(logger)
	}
	return &Game{
		opts:   o,
		tuning: TuningFromConfig(o.Config),
		log:    logger,
		audio:  audio,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tile Hustle"
}

// Reset starts a new session on the configured start level.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false

	c := g.opts.Config
	g.textures = NewAtlas(c.Textures, g.log)
	g.difficulty = config.NewDifficultyManager(c.Difficulty)

	loaderOpts := []levels.Option{levels.WithLogger(g.log)}
	if c.Tiles.Metadata != "" {
		loaderOpts = append(loaderOpts, levels.WithTileFile(c.Tiles.Metadata))
	}
	g.loader = levels.NewLoader(g.mapSource(), g.tuning, loaderOpts...)
	g.startWatcher()

	g.sim = world.NewSim(g.loader, c.Levels.Start, g.tuning, cfg.Seed)
	g.updateViewport()

	g.log.Info("session started", "level", g.sim.Level.Source, "seed", cfg.Seed, "npcs", len(g.sim.NPCs))
	g.audio.Play(SoundGameStart)
	g.audio.PlayMusic(MusicForLevel(g.sim.Level.Index))
}

func (g *Game) mapSource() fs.FS {
	switch {
	case g.opts.Maps != nil:
		return g.opts.Maps
	case g.opts.Config.Levels.Dir != "":
		return os.DirFS(g.opts.Config.Levels.Dir)
	default:
		return levels.Embedded()
	}
}

func (g *Game) startWatcher() {
	dir := g.opts.Config.Levels.Dir
	if !g.opts.Watch || dir == "" || g.watcher != nil {
		return
	}
	w, err := levels.NewWatcher(dir)
	if err != nil {
		g.log.Warn("map watcher unavailable", "dir", dir, "err", err)
		return
	}
	g.watcher = w
	g.log.Info("watching maps", "dir", dir)
}

// Resize adapts the view to a new screen size without restarting.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	g.updateViewport()
}

func (g *Game) updateViewport() {
	if g.sim == nil {
		return
	}
	cols, rows := viewSize(g.screenW, g.screenH)
	ts := g.tuning.TileSize
	g.sim.SetViewport(float64(cols)*ts, float64(rows)*ts)
}

// Step advances the simulation by the frame's elapsed time.
func (g *Game) Step(in core.InputFrame, frame core.Frame) core.StepResult {
	g.fps = frame.FPS

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if in.Has(core.ActionToggleInfo) {
		g.showInfo = !g.showInfo
	}
	if g.paused || g.sim == nil {
		return core.StepResult{State: g.State()}
	}

	g.drainWatcher()
	g.applyDifficulty()

	res := g.sim.Tick(IntentFromInput(in), frame.DT)
	g.handleEvents(res)

	return core.StepResult{State: g.State()}
}

// IntentFromInput maps platform actions to a player intent.
func IntentFromInput(in core.InputFrame) world.Intent {
	return world.Intent{
		Up:     in.Has(core.ActionUp),
		Down:   in.Has(core.ActionDown),
		Left:   in.Has(core.ActionLeft),
		Right:  in.Has(core.ActionRight),
		Sprint: in.Has(core.ActionSprint),
		Jump:   in.Has(core.ActionJump),
		Reset:  in.Has(core.ActionReset),
	}
}

// drainWatcher applies pending file changes without blocking.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.log.Warn("map watcher error", "err", err)
			}
		default:
			return
		}
	}
}

func (g *Game) reload(name string) {
	if levels.IsTileFile(name) {
		tiles := g.loader.ReloadTiles()
		g.sim.ReloadTiles(tiles)
		g.log.Info("tile metadata reloaded", "file", name, "tiles", tiles.Len())
		return
	}
	g.log.Info("map changed, applies on next load", "file", name)
}

func (g *Game) applyDifficulty() {
	score, ticks := g.sim.Score, int(g.sim.Ticks())
	g.sim.SetNPCSpeed(g.difficulty.Speed(g.tuning.NPCSpeed, score, ticks))
	g.sim.Tuning.NPCJumpChance = g.difficulty.JumpChance(g.tuning.NPCJumpChance, score, ticks)
}

func (g *Game) handleEvents(res world.TickResult) {
	for _, e := range res.Events {
		for _, cue := range cuesFor(e) {
			g.audio.Play(cue)
		}
		switch e.Kind {
		case world.EventLevelChanged:
			g.log.Info("level changed", "level", e.Level, "dir", e.Dir, "score", g.sim.Score)
			g.audio.PlayMusic(MusicForLevel(e.Level))
		case world.EventTeleportFailed:
			g.log.Debug("no level beyond teleport", "level", e.Level, "dir", e.Dir)
		case world.EventSprintExhausted:
			g.log.Debug("sprint exhausted", "cooldown", g.tuning.SprintCooldown)
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{Paused: g.paused}
	if g.sim != nil {
		st.Score = g.sim.Score
		st.Level = g.sim.Level.Index
		st.MaxLevel = g.sim.MaxLevel
	}
	return st
}

// Sim exposes the running simulation.
func (g *Game) Sim() *world.Sim {
	return g.sim
}

// ShowInfo reports whether the debug overlay is visible.
func (g *Game) ShowInfo() bool {
	return g.showInfo
}

// Close stops the map watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	err := g.watcher.Close()
	g.watcher = nil
	return err
}

// TuningFromConfig converts the YAML config into simulation constants.
func TuningFromConfig(c config.HustleConfig) world.Tuning {
	return world.Tuning{
		TileSize:            c.World.TileSize,
		WalkSpeed:           c.Player.WalkSpeed,
		SprintSpeed:         c.Player.SprintSpeed,
		EnergyMax:           c.Sprint.MaxEnergy,
		EnergyRegen:         c.Sprint.RegenRate,
		EnergyUse:           c.Sprint.UseRate,
		SprintCooldown:      c.Sprint.Cooldown,
		JumpDuration:        c.World.JumpDuration,
		PlayerJumpHeight:    c.Player.JumpHeight,
		NPCJumpHeight:       c.NPC.JumpHeight,
		NPCSpeed:            c.NPC.Speed,
		NPCJumpChance:       c.NPC.JumpChance,
		NPCWindow:           c.NPC.UpdateWindow,
		NPCTarget:           c.NPC.TargetCount,
		TeleportDuration:    c.Teleport.Duration,
		PointsPerLevel:      c.Teleport.PointsPerLevel,
		MaxDT:               c.World.MaxDT,
		SpawnTile:           world.TileID(c.Tiles.Spawn),
		OpenTile:            world.TileID(c.Tiles.Open),
		BoundaryTile:        world.TileID(c.Tiles.Boundary),
		TeleportForwardTile: world.TileID(c.Teleport.ForwardTile),
		TeleportBackTile:    world.TileID(c.Teleport.BackwardTile),
	}
}
