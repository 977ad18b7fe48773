// Package world contains the Tile Hustle simulation: the tile collision
// oracle, movement resolution, the sprint and jump models, player and NPC
// behavior, the encounter pass and the level transition protocol.
//
// Nothing in this package performs I/O. Levels are supplied through a
// LevelSource and every effect of a tick is reported as an Event.
package world

// Tuning holds every constant the simulation reads.
// Positions and speeds are in tiles, heights are in pixels.
type Tuning struct {
	TileSize float64 // Pixels per tile

	WalkSpeed   float64 // Tiles per second
	SprintSpeed float64 // Tiles per second while sprinting

	EnergyMax      float64
	EnergyRegen    float64 // Energy per second while not sprinting
	EnergyUse      float64 // Energy per second while sprinting
	SprintCooldown float64 // Seconds locked out after the bar empties

	JumpDuration     float64 // Seconds, shared by player and NPCs
	PlayerJumpHeight float64
	NPCJumpHeight    float64

	NPCSpeed      float64 // Tiles per second
	NPCJumpChance float64 // Probability per update
	NPCWindow     float64 // NPCs update only when both axis deltas are below this
	NPCTarget     int     // Live population the top-up maintains

	TeleportDuration float64
	PointsPerLevel   int

	MaxDT float64 // Upper bound for a single step

	SpawnTile           TileID
	OpenTile            TileID // Padding for short rows
	BoundaryTile        TileID // Ring around every grid, always collidable
	TeleportForwardTile TileID
	TeleportBackTile    TileID
}

// DefaultTuning returns the stock game constants.
func DefaultTuning() Tuning {
	return Tuning{
		TileSize: 16,

		WalkSpeed:   10,
		SprintSpeed: 25,

		EnergyMax:      100,
		EnergyRegen:    15,
		EnergyUse:      20,
		SprintCooldown: 3.0,

		JumpDuration:     1.0,
		PlayerJumpHeight: 30,
		NPCJumpHeight:    20,

		NPCSpeed:      1.5,
		NPCJumpChance: 0.01,
		NPCWindow:     20,
		NPCTarget:     5,

		TeleportDuration: 0.9,
		PointsPerLevel:   5,

		MaxDT: 0.1,

		SpawnTile:           0,
		OpenTile:            1,
		BoundaryTile:        9,
		TeleportForwardTile: 6,
		TeleportBackTile:    7,
	}
}
