// Package config provides YAML-based game configuration loading and
// difficulty management for Tile Hustle.
package config

// HustleConfig contains all configuration for Tile Hustle.
type HustleConfig struct {
	World      HustleWorld              `yaml:"world"`
	Player     HustlePlayer             `yaml:"player"`
	Sprint     HustleSprint             `yaml:"sprint"`
	NPC        HustleNPC                `yaml:"npc"`
	Teleport   HustleTeleport           `yaml:"teleport"`
	Tiles      HustleTiles              `yaml:"tiles"`
	Levels     HustleLevels             `yaml:"levels"`
	Input      HustleInput              `yaml:"input"`
	Difficulty DifficultyConfig         `yaml:"difficulty"`
	Textures   map[string]TextureConfig `yaml:"textures"`
}

// HustleWorld defines world-wide simulation parameters.
type HustleWorld struct {
	TileSize     float64 `yaml:"tile_size"`     // Pixels per tile
	MaxDT        float64 `yaml:"max_dt"`        // Largest step in seconds
	JumpDuration float64 `yaml:"jump_duration"` // Seconds, player and NPCs
}

// HustlePlayer defines player movement parameters.
type HustlePlayer struct {
	WalkSpeed   float64 `yaml:"walk_speed"`   // Tiles per second
	SprintSpeed float64 `yaml:"sprint_speed"` // Tiles per second
	JumpHeight  float64 `yaml:"jump_height"`  // Pixels
}

// HustleSprint defines the sprint energy model.
type HustleSprint struct {
	MaxEnergy float64 `yaml:"max_energy"`
	RegenRate float64 `yaml:"regen_rate"` // Energy per second
	UseRate   float64 `yaml:"use_rate"`   // Energy per second
	Cooldown  float64 `yaml:"cooldown"`   // Seconds
}

// HustleNPC defines NPC behavior.
type HustleNPC struct {
	Speed        float64 `yaml:"speed"`         // Tiles per second
	JumpChance   float64 `yaml:"jump_chance"`   // Per update
	JumpHeight   float64 `yaml:"jump_height"`   // Pixels
	UpdateWindow float64 `yaml:"update_window"` // Tiles on each axis
	TargetCount  int     `yaml:"target_count"`
}

// HustleTeleport defines level transitions.
type HustleTeleport struct {
	Duration       float64 `yaml:"duration"` // Countdown in seconds
	PointsPerLevel int     `yaml:"points_per_level"`
	ForwardTile    int     `yaml:"forward_tile"`
	BackwardTile   int     `yaml:"backward_tile"`
}

// HustleTiles defines the special tile ids.
type HustleTiles struct {
	Spawn    int    `yaml:"spawn"`
	Open     int    `yaml:"open"`     // Padding for short rows
	Boundary int    `yaml:"boundary"` // Border ring, always collidable
	Metadata string `yaml:"metadata"` // File name inside the map source
}

// HustleLevels defines where maps come from.
type HustleLevels struct {
	Dir   string `yaml:"dir"`   // Empty means the built-in maps
	Start int    `yaml:"start"` // Index of the first level
}

// HustleInput defines keyboard handling.
type HustleInput struct {
	HoldWindow float64 `yaml:"hold_window"` // Seconds a key counts as held after a press
}

// TextureConfig is a two-cell glyph for one texture key.
type TextureConfig struct {
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier      float64 `yaml:"speed_multiplier"`       // Added to NPC speed at max difficulty
	JumpChanceMultiplier float64 `yaml:"jump_chance_multiplier"` // Added to NPC jump chance at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
