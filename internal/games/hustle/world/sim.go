package world

import (
	"math/rand"

	"github.com/vovakirdan/tile-hustle/internal/core"
)

// Sim owns the whole simulation state and advances it one tick at a time.
// All mutation happens inside Tick; a Sim is not safe for concurrent use.
type Sim struct {
	Tuning   Tuning
	Score    int
	MaxLevel int // Deepest level index entered
	Level    *Level
	Player   *Player
	NPCs     []*NPC
	Camera   Camera

	src      LevelSource
	rng      *rand.Rand
	npcSpeed float64
	ticks    uint64
}

// NewSim loads level start from src, places the player on its spawn and
// populates NPCs.
func NewSim(src LevelSource, start int, t Tuning, seed int64) *Sim {
	lvl := src.Load(start)
	s := &Sim{
		Tuning:   t,
		MaxLevel: lvl.Index,
		Level:    lvl,
		Player:   NewPlayer(lvl.Spawn, t),
		src:      src,
		rng:      rand.New(rand.NewSource(seed)),
		npcSpeed: t.NPCSpeed,
	}
	s.NPCs = Populate(lvl, t.NPCTarget, s.rng)
	s.Camera.Follow(s.Player.Pos, t.TileSize)
	return s
}

// Tick advances the simulation by dt seconds, clamped to [0, MaxDT].
//
// Order: player, camera, nearby NPCs, encounter pass, population top-up,
// teleport trigger, transition. NPCs chase the player's position after the
// player has moved this tick.
func (s *Sim) Tick(in Intent, dt float64) TickResult {
	dt = core.ClampF(dt, 0, s.Tuning.MaxDT)
	s.ticks++

	var res TickResult
	p := s.Player
	t := s.Tuning

	wasJumping := p.Jump.Active
	wasExhausted := p.Sprint.Exhausted()
	transition := p.Update(in, dt, s.Level, t)

	if in.Reset {
		res.add(Event{Kind: EventReset, Pos: p.Pos, Level: s.Level.Index})
	} else {
		if in.Jump && !wasJumping {
			res.add(Event{Kind: EventJump, Pos: p.Pos, Level: s.Level.Index})
		}
		if !wasExhausted && p.Sprint.Exhausted() {
			res.add(Event{Kind: EventSprintExhausted, Pos: p.Pos, Level: s.Level.Index})
		}
	}

	s.Camera.Follow(p.Pos, t.TileSize)

	for _, n := range s.NPCs {
		if !n.Near(p.Pos, t.NPCWindow) {
			continue
		}
		if n.Update(dt, p.Pos, s.Level, s.npcSpeed, s.rng, t) {
			res.add(Event{Kind: EventNPCJump, Pos: n.Pos, Level: s.Level.Index})
		}
	}

	if hits := DetectEncounters(p, s.NPCs, t.TileSize); len(hits) > 0 {
		for _, i := range hits {
			res.add(Event{Kind: EventNPCDefeated, Pos: s.NPCs[i].Pos, Level: s.Level.Index})
		}
		s.Score += len(hits)
		s.NPCs = RemoveDefeated(s.NPCs, hits)
	}

	s.topUp()

	if transition == DirNone {
		s.checkTeleport(&res)
	} else {
		s.applyTransition(transition, &res)
	}

	return res
}

func (s *Sim) topUp() {
	if missing := s.Tuning.NPCTarget - len(s.NPCs); missing > 0 {
		s.NPCs = append(s.NPCs, Populate(s.Level, missing, s.rng)...)
	}
}

// checkTeleport starts a countdown when the player stands on a teleport
// tile. Forward teleports need enough points; backward ones do not.
func (s *Sim) checkTeleport(res *TickResult) {
	p := s.Player
	if p.Teleporting() {
		return
	}
	id, ok := s.Level.TileAt(p.Pos)
	if !ok {
		return
	}

	dir := DirNone
	switch id {
	case s.Tuning.TeleportForwardTile:
		if s.Score >= s.RequiredPoints() {
			dir = DirForward
		}
	case s.Tuning.TeleportBackTile:
		dir = DirBackward
	}

	if p.BeginTeleport(dir, s.Tuning.TeleportDuration) {
		res.add(Event{Kind: EventTeleportStart, Pos: p.Pos, Dir: dir, Level: s.Level.Index})
	}
}

// applyTransition swaps in the neighboring level. A missing neighbor
// leaves everything as it is.
func (s *Sim) applyTransition(dir Direction, res *TickResult) {
	next := NeighborIndex(s.Level.Index, dir)
	if !s.src.Has(next) {
		res.add(Event{Kind: EventTeleportFailed, Pos: s.Player.Pos, Dir: dir, Level: s.Level.Index})
		return
	}

	lvl := s.src.Load(next)
	s.Level = lvl
	s.MaxLevel = max(s.MaxLevel, lvl.Index)
	s.Player.Pos = lvl.Spawn
	s.NPCs = Populate(lvl, s.Tuning.NPCTarget, s.rng)
	s.Camera.Follow(s.Player.Pos, s.Tuning.TileSize)
	res.add(Event{Kind: EventLevelChanged, Pos: s.Player.Pos, Dir: dir, Level: lvl.Index})
}

// RequiredPoints is the score needed to teleport forward from the current level.
func (s *Sim) RequiredPoints() int {
	return RequiredPoints(s.Level.Index, s.Tuning.PointsPerLevel)
}

// ReloadTiles swaps the tile metadata of the current level.
// Positions are not touched.
func (s *Sim) ReloadTiles(tiles *TileTable) {
	s.Level.Tiles = tiles
}

// SetNPCSpeed changes the NPC chase speed.
func (s *Sim) SetNPCSpeed(speed float64) {
	s.npcSpeed = speed
}

// NPCSpeed returns the current NPC chase speed.
func (s *Sim) NPCSpeed() float64 {
	return s.npcSpeed
}

// SetViewport sets the camera view size in pixels.
func (s *Sim) SetViewport(w, h float64) {
	s.Camera.ViewW, s.Camera.ViewH = w, h
	s.Camera.Follow(s.Player.Pos, s.Tuning.TileSize)
}

// Ticks returns the number of ticks run so far.
func (s *Sim) Ticks() uint64 {
	return s.ticks
}

// Snapshot is a comparable copy of the simulation's observable state.
type Snapshot struct {
	Score    int
	Level    int
	Player   Vec2
	Energy   float64
	Jumping  bool
	Teleport Teleport
	NPCs     []Vec2
}

// Snapshot captures the current state.
func (s *Sim) Snapshot() Snapshot {
	npcs := make([]Vec2, len(s.NPCs))
	for i, n := range s.NPCs {
		npcs[i] = n.Pos
	}
	return Snapshot{
		Score:    s.Score,
		Level:    s.Level.Index,
		Player:   s.Player.Pos,
		Energy:   s.Player.Sprint.Energy,
		Jumping:  s.Player.Jump.Active,
		Teleport: s.Player.Teleport,
		NPCs:     npcs,
	}
}
