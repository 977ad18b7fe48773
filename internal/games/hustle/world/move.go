package world

import "github.com/vovakirdan/tile-hustle/internal/core"

// Vec2 is a position or direction in tile units.
type Vec2 = core.Vec2

// BlockedFunc reports whether a tile-space position may not be occupied.
type BlockedFunc func(x, y float64) bool

// Resolve moves pos along dir at speed for dt seconds.
// The axes are resolved independently, X first: each axis step is committed
// only when its destination is free, so diagonal movement into a wall
// slides along it. A zero dir leaves pos unchanged.
func Resolve(pos, dir Vec2, speed, dt float64, blocked BlockedFunc) Vec2 {
	if dir.IsZero() {
		return pos
	}
	step := dir.Normalize().Scale(speed * dt)

	if nx := pos.X + step.X; !blocked(nx, pos.Y) {
		pos.X = nx
	}
	if ny := pos.Y + step.Y; !blocked(pos.X, ny) {
		pos.Y = ny
	}
	return pos
}
