package world

import "testing"

func TestNewLevelDefaultGridSpawn(t *testing.T) {
	rows := [][]TileID{{1, 1, 1}, {1, 0, 1}, {1, 1, 1}}
	lvl := NewLevel(rows, testTiles(), 0, "default", DefaultTuning())

	if lvl.Grid.Width != 5 || lvl.Grid.Height != 5 {
		t.Fatalf("grid = %dx%d, expected 5x5", lvl.Grid.Width, lvl.Grid.Height)
	}
	// Center of the 3x3 source shifted by the border ring
	if lvl.Spawn != (Vec2{X: 2, Y: 2}) {
		t.Errorf("Spawn = %+v, expected (2, 2)", lvl.Spawn)
	}
	if id, ok := lvl.TileAt(lvl.Spawn); !ok || id != tSpawn {
		t.Errorf("TileAt(spawn) = %d, %v, expected spawn tile", id, ok)
	}
}

func TestNewLevelSpawnFallback(t *testing.T) {
	lvl := testLevel(openRows(3, 3, -1, -1))
	if lvl.Spawn != (Vec2{X: 1, Y: 1}) {
		t.Errorf("Spawn = %+v, expected fallback (1, 1)", lvl.Spawn)
	}
}

func TestLevelTileAt(t *testing.T) {
	lvl := testLevel([][]TileID{{tGrass, tPortal}})
	if id, ok := lvl.TileAt(Vec2{X: 2.7, Y: 1.2}); !ok || id != tPortal {
		t.Errorf("TileAt() = %d, %v, expected portal", id, ok)
	}
	if _, ok := lvl.TileAt(Vec2{X: -0.2, Y: 1}); ok {
		t.Error("TileAt() of a negative position should fail")
	}
}

func TestRequiredPoints(t *testing.T) {
	tests := []struct {
		index, want int
	}{
		{0, 5},
		{1, 10},
		{4, 25},
	}
	for _, tt := range tests {
		if got := RequiredPoints(tt.index, 5); got != tt.want {
			t.Errorf("RequiredPoints(%d, 5) = %d, expected %d", tt.index, got, tt.want)
		}
	}
}

func TestNeighborIndex(t *testing.T) {
	tests := []struct {
		index int
		dir   Direction
		want  int
	}{
		{0, DirForward, 1},
		{3, DirForward, 4},
		{3, DirBackward, 2},
		{0, DirBackward, 0},
		{2, DirNone, 2},
	}
	for _, tt := range tests {
		if got := NeighborIndex(tt.index, tt.dir); got != tt.want {
			t.Errorf("NeighborIndex(%d, %v) = %d, expected %d", tt.index, tt.dir, got, tt.want)
		}
	}
}

func TestCameraFollow(t *testing.T) {
	c := Camera{ViewW: 320, ViewH: 160}
	c.Follow(Vec2{X: 10, Y: 5}, 16)
	if c.X != 0 || c.Y != 0 {
		t.Errorf("camera = (%v, %v), expected (0, 0)", c.X, c.Y)
	}

	x, y := c.ToView(Vec2{X: 10, Y: 5}, 16)
	if x != 160 || y != 80 {
		t.Errorf("ToView(target) = (%v, %v), expected view centre (160, 80)", x, y)
	}
}
