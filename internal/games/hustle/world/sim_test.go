package world

import (
	"reflect"
	"testing"
)

// portalRows has the spawn at bordered (1, 1), a forward portal at (2, 1)
// and a backward portal at (3, 1).
func portalRows() [][]TileID {
	return [][]TileID{
		{tSpawn, tPortal, tBack, tGrass},
		{tGrass, tGrass, tGrass, tGrass},
		{tGrass, tGrass, tGrass, tGrass},
	}
}

func TestSimStartsOnSpawn(t *testing.T) {
	tun := DefaultTuning()
	src := newSource(tun, map[int][][]TileID{0: openRows(6, 6, 2, 3)})
	s := NewSim(src, 0, tun, 1)

	if s.Player.Pos != (Vec2{X: 3, Y: 4}) {
		t.Errorf("player = %+v, expected spawn (3, 4)", s.Player.Pos)
	}
	if len(s.NPCs) != tun.NPCTarget {
		t.Errorf("NPCs = %d, expected %d", len(s.NPCs), tun.NPCTarget)
	}
	if s.Score != 0 || s.Level.Index != 0 {
		t.Errorf("Score/Level = %d/%d, expected 0/0", s.Score, s.Level.Index)
	}
}

func TestSimForwardTeleportGate(t *testing.T) {
	tun := quietTuning()
	src := newSource(tun, map[int][][]TileID{
		0: portalRows(),
		1: openRows(3, 3, 1, 1),
	})
	s := NewSim(src, 0, tun, 1)
	s.Player.Pos = Vec2{X: 2, Y: 1}

	s.Score = RequiredPoints(0, tun.PointsPerLevel) - 1
	res := s.Tick(Intent{}, 0.1)
	if s.Player.Teleporting() || res.Has(EventTeleportStart) {
		t.Fatal("teleport started below the score threshold")
	}

	s.Score++
	res = s.Tick(Intent{}, 0.1)
	if !s.Player.Teleporting() || !res.Has(EventTeleportStart) {
		t.Fatal("teleport should start at exactly the threshold")
	}
	if s.Player.Teleport.Pending != DirForward {
		t.Errorf("pending = %v, expected forward", s.Player.Teleport.Pending)
	}

	changed := false
	for i := 0; i < 20 && !changed; i++ {
		res = s.Tick(Intent{}, 0.1)
		if res.Count(EventTeleportStart) > 0 {
			t.Fatal("teleport restarted while counting down")
		}
		changed = res.Has(EventLevelChanged)
	}
	if !changed {
		t.Fatal("level never changed")
	}
	if s.Level.Index != 1 || s.MaxLevel != 1 {
		t.Errorf("Level/MaxLevel = %d/%d, expected 1/1", s.Level.Index, s.MaxLevel)
	}
	if s.Player.Pos != s.Level.Spawn {
		t.Errorf("player = %+v, expected new spawn %+v", s.Player.Pos, s.Level.Spawn)
	}
	if s.Player.Teleporting() {
		t.Error("teleport state should be clear after the transition")
	}
	if s.Score != RequiredPoints(0, tun.PointsPerLevel) {
		t.Errorf("Score = %d, expected it to survive the transition", s.Score)
	}
}

func TestSimBackwardTeleportIgnoresScore(t *testing.T) {
	tun := quietTuning()
	src := newSource(tun, map[int][][]TileID{
		0: openRows(3, 3, 1, 1),
		1: portalRows(),
	})
	s := NewSim(src, 1, tun, 1)
	s.Player.Pos = Vec2{X: 3, Y: 1}

	res := s.Tick(Intent{}, 0.1)
	if !res.Has(EventTeleportStart) || s.Player.Teleport.Pending != DirBackward {
		t.Fatalf("teleport = %+v, expected backward countdown with zero score", s.Player.Teleport)
	}

	for i := 0; i < 20 && s.Level.Index == 1; i++ {
		s.Tick(Intent{}, 0.1)
	}
	if s.Level.Index != 0 {
		t.Errorf("Level = %d, expected 0", s.Level.Index)
	}
	if s.MaxLevel != 1 {
		t.Errorf("MaxLevel = %d, expected deepest level 1 to be kept", s.MaxLevel)
	}
}

func TestSimBackwardFromFirstLevelReloads(t *testing.T) {
	tun := quietTuning()
	src := newSource(tun, map[int][][]TileID{0: portalRows()})
	s := NewSim(src, 0, tun, 1)
	old := s.Level
	s.Player.Pos = Vec2{X: 3, Y: 1}

	var last TickResult
	for i := 0; i < 20 && !last.Has(EventLevelChanged); i++ {
		last = s.Tick(Intent{}, 0.1)
	}
	if !last.Has(EventLevelChanged) {
		t.Fatal("backward teleport on level 0 should reload level 0")
	}
	if s.Level == old || s.Level.Index != 0 {
		t.Errorf("Level = %p index %d, expected a fresh level 0", s.Level, s.Level.Index)
	}
	if s.Player.Pos != s.Level.Spawn {
		t.Errorf("player = %+v, expected spawn", s.Player.Pos)
	}
}

func TestSimMissingNeighborIsNoop(t *testing.T) {
	tun := quietTuning()
	tun.NPCTarget = 2
	tun.NPCWindow = 0 // freeze NPCs
	src := newSource(tun, map[int][][]TileID{0: portalRows()})
	s := NewSim(src, 0, tun, 1)
	s.Score = 100
	s.Player.Pos = Vec2{X: 2, Y: 1}

	res := s.Tick(Intent{}, 0.1)
	if !res.Has(EventTeleportStart) {
		t.Fatal("teleport should start")
	}

	grid, npcs, pos := s.Level.Grid, append([]*NPC(nil), s.NPCs...), s.Player.Pos
	failed := false
	for i := 0; i < 20 && !failed; i++ {
		res = s.Tick(Intent{}, 0.1)
		failed = res.Has(EventTeleportFailed)
	}
	if !failed {
		t.Fatal("expected the transition to fail")
	}
	if res.Has(EventLevelChanged) || res.Has(EventTeleportStart) {
		t.Errorf("events = %+v, expected only the failure", res.Events)
	}
	if s.Level.Grid != grid || s.Level.Index != 0 {
		t.Error("level should be unchanged")
	}
	if s.Player.Pos != pos {
		t.Errorf("player = %+v, expected %+v", s.Player.Pos, pos)
	}
	if !reflect.DeepEqual(s.NPCs, npcs) {
		t.Error("NPC set should be unchanged")
	}
	if s.Player.Teleporting() {
		t.Error("teleporting should be cleared")
	}
}

func TestSimEncounterScoresAndTopsUp(t *testing.T) {
	tun := quietTuning()
	tun.NPCTarget = 1
	tun.NPCWindow = 0
	src := newSource(tun, map[int][][]TileID{0: openRows(6, 6, 0, 0)})
	s := NewSim(src, 0, tun, 1)

	victim := NewNPC(s.Player.Pos)
	s.NPCs = []*NPC{victim}

	// Grounded overlap does nothing
	res := s.Tick(Intent{}, 0.1)
	if s.Score != 0 || res.Has(EventNPCDefeated) {
		t.Fatal("grounded overlap should not score")
	}

	res = s.Tick(Intent{Jump: true}, 0.1)
	if !res.Has(EventJump) {
		t.Error("expected a jump event")
	}
	if s.Score != 1 || res.Count(EventNPCDefeated) != 1 {
		t.Fatalf("Score = %d, defeats = %d, expected 1/1", s.Score, res.Count(EventNPCDefeated))
	}
	if len(s.NPCs) != 1 || s.NPCs[0] == victim {
		t.Errorf("NPCs = %v, expected one fresh NPC after top-up", s.NPCs)
	}
}

func TestSimMultipleEncountersInOneTick(t *testing.T) {
	tun := quietTuning()
	tun.NPCWindow = 0
	src := newSource(tun, map[int][][]TileID{0: openRows(6, 6, 0, 0)})
	s := NewSim(src, 0, tun, 1)

	p := s.Player.Pos
	s.NPCs = []*NPC{
		NewNPC(p),
		NewNPC(Vec2{X: p.X + 0.5, Y: p.Y}),
		NewNPC(Vec2{X: p.X + 3, Y: p.Y + 3}),
	}

	res := s.Tick(Intent{Jump: true}, 0.1)
	if s.Score != 2 || res.Count(EventNPCDefeated) != 2 {
		t.Errorf("Score = %d, expected 2", s.Score)
	}
	if len(s.NPCs) != 1 {
		t.Errorf("NPCs = %d, expected the far one to survive", len(s.NPCs))
	}
}

func TestSimPopulationTopUp(t *testing.T) {
	tun := DefaultTuning()
	tun.NPCWindow = 0
	src := newSource(tun, map[int][][]TileID{0: openRows(10, 10, 0, 0)})
	s := NewSim(src, 0, tun, 9)

	s.NPCs = s.NPCs[:1]
	s.Tick(Intent{}, 0.1)
	if len(s.NPCs) != tun.NPCTarget {
		t.Errorf("NPCs = %d, expected top-up to %d", len(s.NPCs), tun.NPCTarget)
	}

	s.Tick(Intent{}, 0.1)
	if len(s.NPCs) > tun.NPCTarget {
		t.Errorf("NPCs = %d, should never exceed %d", len(s.NPCs), tun.NPCTarget)
	}
}

func TestSimPopulationLimitedBySafeTiles(t *testing.T) {
	tun := DefaultTuning()
	src := newSource(tun, map[int][][]TileID{0: {{tSpawn, tGrass, tGrass, tStone}}})
	s := NewSim(src, 0, tun, 1)
	if len(s.NPCs) != 2 {
		t.Errorf("NPCs = %d, expected the 2 safe tiles", len(s.NPCs))
	}
}

func TestSimClampsDT(t *testing.T) {
	tun := quietTuning()
	src := newSource(tun, map[int][][]TileID{0: openRows(3, 3, 1, 1)})
	s := NewSim(src, 0, tun, 1)

	s.Tick(Intent{Jump: true}, 5)
	if s.Player.Jump.Elapsed != tun.MaxDT {
		t.Errorf("jump elapsed = %v, expected clamp to %v", s.Player.Jump.Elapsed, tun.MaxDT)
	}

	before := s.Player.Pos
	s.Tick(Intent{}, -1)
	if s.Player.Pos != before || s.Player.Jump.Elapsed != tun.MaxDT {
		t.Error("negative dt should be treated as zero")
	}
}

func TestSimResetEvent(t *testing.T) {
	tun := quietTuning()
	src := newSource(tun, map[int][][]TileID{0: openRows(5, 5, 2, 2)})
	s := NewSim(src, 0, tun, 1)
	s.Player.Pos = Vec2{X: 1, Y: 1}

	res := s.Tick(Intent{Reset: true, Jump: true}, 0.1)
	if !res.Has(EventReset) || res.Has(EventJump) {
		t.Errorf("events = %+v, expected reset only", res.Events)
	}
	if s.Player.Pos != s.Level.Spawn {
		t.Errorf("player = %+v, expected spawn", s.Player.Pos)
	}
}

func TestSimSprintExhaustedEvent(t *testing.T) {
	tun := quietTuning()
	src := newSource(tun, map[int][][]TileID{0: openRows(300, 1, 0, 0)})
	s := NewSim(src, 0, tun, 1)

	exhausted := 0
	for i := 0; i < 60; i++ {
		res := s.Tick(Intent{Right: true, Sprint: true}, 0.1)
		exhausted += res.Count(EventSprintExhausted)
	}
	if exhausted != 1 {
		t.Errorf("sprint exhausted %d times, expected once", exhausted)
	}
}

func TestSimReloadTiles(t *testing.T) {
	tun := quietTuning()
	src := newSource(tun, map[int][][]TileID{0: openRows(5, 5, 2, 2)})
	s := NewSim(src, 0, tun, 1)
	pos := s.Player.Pos

	if s.Level.Blocked(pos.X+1, pos.Y) {
		t.Fatal("grass should be open before reload")
	}

	tiles := testTiles()
	tiles.Set(tGrass, TileInfo{Name: "hedge", Collidable: true})
	s.ReloadTiles(tiles)

	if s.Player.Pos != pos {
		t.Error("reload should not move the player")
	}
	if !s.Level.Blocked(pos.X+1, pos.Y) {
		t.Error("reloaded metadata should make grass collidable")
	}

	s.Tick(Intent{Right: true}, 0.1)
	if s.Player.Pos != pos {
		t.Errorf("player = %+v, expected to be walled in", s.Player.Pos)
	}
}

func TestSimNPCsChaseAfterPlayerMoves(t *testing.T) {
	tun := quietTuning()
	src := newSource(tun, map[int][][]TileID{0: openRows(20, 3, 0, 1)})
	s := NewSim(src, 0, tun, 1)
	n := NewNPC(Vec2{X: 10, Y: 2})
	s.NPCs = []*NPC{n}

	// The NPC stands where the player ends up this tick, so it only stays
	// put if it chases the updated position.
	s.Player.Pos = Vec2{X: 10, Y: 1}
	s.Tick(Intent{Down: true}, 0.1)

	if s.Player.Pos.Y != 2 {
		t.Fatalf("player = %+v, expected to reach y=2", s.Player.Pos)
	}
	if n.Pos != (Vec2{X: 10, Y: 2}) {
		t.Errorf("NPC = %+v, expected to stay put on the player's new position", n.Pos)
	}
}

func TestSimNPCOutsideWindowIsFrozen(t *testing.T) {
	tun := quietTuning()
	src := newSource(tun, map[int][][]TileID{0: openRows(40, 3, 0, 0)})
	s := NewSim(src, 0, tun, 1)
	far := NewNPC(Vec2{X: 30, Y: 1})
	nearby := NewNPC(Vec2{X: 10, Y: 1})
	s.NPCs = []*NPC{far, nearby}

	s.Tick(Intent{}, 0.1)

	if far.Pos.X != 30 {
		t.Errorf("far NPC moved to %+v", far.Pos)
	}
	if nearby.Pos.X >= 10 {
		t.Errorf("near NPC at %+v, expected to chase", nearby.Pos)
	}
}

func TestSimDeterministic(t *testing.T) {
	tun := DefaultTuning()
	tun.NPCJumpChance = 0.2
	levels := map[int][][]TileID{
		0: openRows(12, 12, 5, 5),
		1: openRows(8, 8, 1, 1),
	}

	script := func(i int) Intent {
		return Intent{
			Up:     i%7 < 2,
			Down:   i%11 > 8,
			Left:   i%5 == 0,
			Right:  i%3 == 0,
			Sprint: i%4 == 0,
			Jump:   i%13 == 0,
		}
	}

	run := func() []Snapshot {
		s := NewSim(newSource(tun, levels), 0, tun, 42)
		var snaps []Snapshot
		for i := 0; i < 300; i++ {
			s.Tick(script(i), 1.0/60)
			snaps = append(snaps, s.Snapshot())
		}
		return snaps
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Error("two runs with the same seed and input diverged")
	}
}
