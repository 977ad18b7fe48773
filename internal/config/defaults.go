package config

import (
	_ "embed"
)

//go:embed defaults/hustle.yaml
var defaultHustleYAML []byte

// DefaultHustleConfig returns the default Tile Hustle configuration.
func DefaultHustleConfig() HustleConfig {
	return HustleConfig{
		World: HustleWorld{
			TileSize:     16,
			MaxDT:        0.1,
			JumpDuration: 1.0,
		},
		Player: HustlePlayer{
			WalkSpeed:   10,
			SprintSpeed: 25,
			JumpHeight:  30,
		},
		Sprint: HustleSprint{
			MaxEnergy: 100,
			RegenRate: 15,
			UseRate:   20,
			Cooldown:  3.0,
		},
		NPC: HustleNPC{
			Speed:        1.5,
			JumpChance:   0.01,
			JumpHeight:   20,
			UpdateWindow: 20,
			TargetCount:  5,
		},
		Teleport: HustleTeleport{
			Duration:       0.9,
			PointsPerLevel: 5,
			ForwardTile:    6,
			BackwardTile:   7,
		},
		Tiles: HustleTiles{
			Spawn:    0,
			Open:     1,
			Boundary: 9,
			Metadata: "mapdata.json",
		},
		Levels: HustleLevels{
			Dir:   "",
			Start: 0,
		},
		Input: HustleInput{
			HoldWindow: 0.25,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 60,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:      1.0,
				JumpChanceMultiplier: 2.0,
			},
		},
		Textures: DefaultTextures(),
	}
}

// DefaultTextures returns the built-in glyph atlas.
func DefaultTextures() map[string]TextureConfig {
	return map[string]TextureConfig{
		"player_default":   {Glyph: "@@", Color: "bright_white"},
		"player_up":        {Glyph: "^^", Color: "bright_white"},
		"player_down":      {Glyph: "vv", Color: "bright_white"},
		"player_left":      {Glyph: "<@", Color: "bright_white"},
		"player_right":     {Glyph: "@>", Color: "bright_white"},
		"player_jump":      {Glyph: `/\`, Color: "bright_yellow"},
		"npc_left":         {Glyph: "<&", Color: "bright_red"},
		"npc_right":        {Glyph: "&>", Color: "bright_red"},
		"tile_bridge":      {Glyph: "==", Color: "brown"},
		"tile_grass":       {Glyph: "  ", Color: "green"},
		"tile_grass_alt":   {Glyph: "''", Color: "green"},
		"tile_stone":       {Glyph: "##", Color: "gray"},
		"tile_water":       {Glyph: "~~", Color: "blue"},
		"tile_tree":        {Glyph: "TT", Color: "bright_green"},
		"tile_portal":      {Glyph: "()", Color: "bright_magenta"},
		"tile_portal_back": {Glyph: ")(", Color: "magenta"},
		"tile_border":      {Glyph: "██", Color: "gray"},
		"tile_bedrock":     {Glyph: "▓▓", Color: "gray"},
	}
}
