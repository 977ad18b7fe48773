package world

import "github.com/vovakirdan/tile-hustle/internal/core"

// Facing is the direction an entity last moved in.
type Facing int

const (
	FacingDown Facing = iota
	FacingUp
	FacingLeft
	FacingRight
)

func (f Facing) String() string {
	switch f {
	case FacingUp:
		return "up"
	case FacingDown:
		return "down"
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	default:
		return "unknown"
	}
}

// Pose selects the player sprite.
type Pose int

const (
	PoseDefault Pose = iota
	PoseUp
	PoseDown
	PoseLeft
	PoseRight
	PoseJump
)

func (p Pose) String() string {
	switch p {
	case PoseUp:
		return "up"
	case PoseDown:
		return "down"
	case PoseLeft:
		return "left"
	case PoseRight:
		return "right"
	case PoseJump:
		return "jump"
	default:
		return "default"
	}
}

func facingPose(f Facing) Pose {
	switch f {
	case FacingUp:
		return PoseUp
	case FacingLeft:
		return PoseLeft
	case FacingRight:
		return PoseRight
	default:
		return PoseDown
	}
}

// Direction is a pending level transition.
type Direction int

const (
	DirNone Direction = iota
	DirForward
	DirBackward
)

func (d Direction) String() string {
	switch d {
	case DirForward:
		return "forward"
	case DirBackward:
		return "backward"
	default:
		return "none"
	}
}

// Intent is the player's input for one tick.
type Intent struct {
	Up, Down, Left, Right bool
	Sprint                bool // Sprint modifier held
	Jump                  bool
	Reset                 bool
}

// Moving reports whether any movement key is held.
func (in Intent) Moving() bool {
	return in.Up || in.Down || in.Left || in.Right
}

// Teleport is the countdown toward a level transition.
type Teleport struct {
	Timer   float64
	Pending Direction
}

// Player is the user-controlled entity.
type Player struct {
	Pos      Vec2
	Facing   Facing
	Pose     Pose
	Jump     Arc
	Sprint   Sprint
	Teleport Teleport
}

// NewPlayer creates a player standing at spawn with a full sprint bar.
func NewPlayer(spawn Vec2, t Tuning) *Player {
	return &Player{
		Pos:    spawn,
		Facing: FacingDown,
		Pose:   PoseDefault,
		Sprint: Sprint{Energy: t.EnergyMax},
	}
}

// Update advances the player by one tick and returns the transition
// direction when the teleport countdown finishes this tick.
//
// A reset relocates the player to the level spawn and cancels the jump,
// then ends the tick. Sprint and teleport state survive a reset.
func (p *Player) Update(in Intent, dt float64, lvl *Level, t Tuning) Direction {
	if in.Reset {
		p.Pos = lvl.Spawn
		p.Jump.Cancel()
		return DirNone
	}

	p.Sprint.Regenerate(dt, t.EnergyRegen, t.EnergyMax)

	// Fixed check order; the last pressed key decides facing.
	var move Vec2
	pressed := false
	if in.Up {
		move.Y--
		p.Facing, pressed = FacingUp, true
	}
	if in.Down {
		move.Y++
		p.Facing, pressed = FacingDown, true
	}
	if in.Left {
		move.X--
		p.Facing, pressed = FacingLeft, true
	}
	if in.Right {
		move.X++
		p.Facing, pressed = FacingRight, true
	}

	speed := t.WalkSpeed
	if p.Sprint.Spend(pressed && in.Sprint, dt, t.EnergyUse, t.SprintCooldown) {
		speed = t.SprintSpeed
	}

	if in.Jump {
		p.Jump.Start(t.PlayerJumpHeight, t.JumpDuration)
	}
	airborne := p.Jump.Active
	p.Jump.Advance(dt)

	if !move.IsZero() {
		p.Pos = Resolve(p.Pos, move, speed, dt, lvl.Blocked)
		if airborne {
			p.Pose = PoseJump
		} else {
			p.Pose = facingPose(p.Facing)
		}
	}

	return p.advanceTeleport(dt)
}

func (p *Player) advanceTeleport(dt float64) Direction {
	if p.Teleport.Pending == DirNone {
		return DirNone
	}
	p.Teleport.Timer -= dt
	if p.Teleport.Timer > 0 {
		return DirNone
	}
	dir := p.Teleport.Pending
	p.Teleport = Teleport{}
	return dir
}

// BeginTeleport starts the transition countdown. It does nothing while a
// countdown is already running.
func (p *Player) BeginTeleport(dir Direction, duration float64) bool {
	if dir == DirNone || p.Teleporting() {
		return false
	}
	p.Teleport = Teleport{Timer: duration, Pending: dir}
	return true
}

// Teleporting reports whether a transition countdown is running.
func (p *Player) Teleporting() bool {
	return p.Teleport.Pending != DirNone
}

// Bounds returns the player's ground footprint in pixels.
func (p *Player) Bounds(tileSize float64) core.RectF {
	return tileBounds(p.Pos, tileSize)
}

func tileBounds(pos Vec2, tileSize float64) core.RectF {
	return core.RectF{X: pos.X * tileSize, Y: pos.Y * tileSize, W: tileSize, H: tileSize}
}
