package world

import (
	"math/rand"

	"github.com/vovakirdan/tile-hustle/internal/core"
)

// NPC is a wandering character that chases the player.
type NPC struct {
	Pos    Vec2
	Facing Facing
	Jump   Arc
}

// NewNPC creates an NPC at pos facing right.
func NewNPC(pos Vec2) *NPC {
	return &NPC{Pos: pos, Facing: FacingRight}
}

// Update advances the NPC by one tick: a random jump, then a
// collision-respecting step toward target. It reports whether a jump
// started this tick.
func (n *NPC) Update(dt float64, target Vec2, lvl *Level, speed float64, rng *rand.Rand, t Tuning) bool {
	jumped := false
	if !n.Jump.Active && rng.Float64() < t.NPCJumpChance {
		jumped = n.Jump.Start(t.NPCJumpHeight, t.JumpDuration)
	}
	n.Jump.Advance(dt)

	dir := target.Sub(n.Pos)
	if dir.IsZero() {
		return jumped
	}
	switch {
	case dir.X > 0:
		n.Facing = FacingRight
	case dir.X < 0:
		n.Facing = FacingLeft
	}
	n.Pos = Resolve(n.Pos, dir, speed, dt, lvl.Blocked)
	return jumped
}

// Near reports whether the NPC is inside the update window around pos.
func (n *NPC) Near(pos Vec2, window float64) bool {
	d := n.Pos.Sub(pos)
	return abs(d.X) < window && abs(d.Y) < window
}

// Bounds returns the NPC footprint in pixels.
func (n *NPC) Bounds(tileSize float64) core.RectF {
	return tileBounds(n.Pos, tileSize)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
