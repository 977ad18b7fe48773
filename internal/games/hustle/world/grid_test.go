package world

import "testing"

func TestNewGridBordersAndPads(t *testing.T) {
	rows := [][]TileID{
		{2, 2, 2},
		{3},
	}
	g := NewGrid(rows, tGrass, tBoundary)

	if g.Width != 5 || g.Height != 4 {
		t.Fatalf("size = %dx%d, expected 5x4", g.Width, g.Height)
	}
	for y := 0; y < g.Height; y++ {
		if len(g.Cells[y]) != g.Width {
			t.Errorf("row %d has %d cells, expected %d", y, len(g.Cells[y]), g.Width)
		}
	}

	// Ring of boundary tiles
	for x := 0; x < g.Width; x++ {
		if g.Cells[0][x] != tBoundary || g.Cells[g.Height-1][x] != tBoundary {
			t.Errorf("column %d: top/bottom border missing", x)
		}
	}
	for y := 0; y < g.Height; y++ {
		if g.Cells[y][0] != tBoundary || g.Cells[y][g.Width-1] != tBoundary {
			t.Errorf("row %d: left/right border missing", y)
		}
	}

	// Short row padded with the open tile
	if g.Cells[2][1] != 3 || g.Cells[2][2] != tGrass || g.Cells[2][3] != tGrass {
		t.Errorf("padded row = %v, expected [9 3 1 1 9]", g.Cells[2])
	}
	if len(rows[1]) != 1 {
		t.Error("NewGrid should not modify its input")
	}
}

func TestNewGridEmpty(t *testing.T) {
	g := NewGrid(nil, tGrass, tBoundary)
	if g.Width != 2 || g.Height != 2 {
		t.Fatalf("size = %dx%d, expected 2x2", g.Width, g.Height)
	}
}

func TestBlockedOutOfBounds(t *testing.T) {
	g := NewGrid(openRows(3, 3, -1, -1), tGrass, tBoundary)
	tiles := NewTileTable(-1) // no collidable ids at all

	positions := []struct {
		name string
		x, y float64
	}{
		{"left", -0.5, 2},
		{"top", 2, -0.01},
		{"right edge", 5, 2},
		{"far right", 100, 2},
		{"bottom edge", 2, 5},
		{"both negative", -3, -3},
	}
	for _, p := range positions {
		t.Run(p.name, func(t *testing.T) {
			if !g.Blocked(tiles, p.x, p.y) {
				t.Errorf("Blocked(%v, %v) = false, expected true", p.x, p.y)
			}
		})
	}

	if g.Blocked(tiles, 4.99, 4.99) {
		t.Error("last in-bounds position should not be blocked by bounds")
	}
}

func TestBlockedByMetadata(t *testing.T) {
	rows := [][]TileID{
		{tGrass, tStone, tWater, 42},
	}
	g := NewGrid(rows, tGrass, tBoundary)
	tiles := testTiles()

	tests := []struct {
		name string
		x    float64
		want bool
	}{
		{"grass", 1.5, false},
		{"stone", 2.0, true},
		{"stone far edge", 2.999, true},
		{"water", 3.25, true},
		{"unmapped id", 4.5, false},
		{"boundary", 0.5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Blocked(tiles, tt.x, 1.5); got != tt.want {
				t.Errorf("Blocked(%v, 1.5) = %v, expected %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestBoundaryAlwaysCollidable(t *testing.T) {
	tiles := NewTileTable(tBoundary)
	tiles.Set(tBoundary, TileInfo{Name: "fence", Collidable: false})

	info := tiles.Info(tBoundary)
	if !info.Collidable {
		t.Error("boundary tile must be collidable even when metadata says otherwise")
	}
	if info.Name != "fence" {
		t.Errorf("boundary name = %q, expected metadata name", info.Name)
	}

	if NewTileTable(tBoundary).Name(tBoundary) != "Border" {
		t.Error("boundary without metadata should be named Border")
	}
}

func TestTileTableUnknown(t *testing.T) {
	tiles := testTiles()
	info := tiles.Info(77)
	if info.Name != "Unknown" || info.Collidable {
		t.Errorf("Info(77) = %+v, expected non-collidable Unknown", info)
	}

	var nilTable *TileTable
	if nilTable.Collidable(tStone) || nilTable.Len() != 0 {
		t.Error("nil table should report nothing collidable")
	}

	ids := tiles.IDs()
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("IDs() not sorted: %v", ids)
		}
	}
}

func TestGridFind(t *testing.T) {
	rows := [][]TileID{
		{1, 1, 1},
		{1, 0, 0},
	}
	g := NewGrid(rows, tGrass, tBoundary)

	cx, cy, ok := g.Find(tSpawn)
	if !ok || cx != 2 || cy != 2 {
		t.Errorf("Find(0) = (%d, %d, %v), expected first match (2, 2)", cx, cy, ok)
	}
	if _, _, ok := g.Find(55); ok {
		t.Error("Find of a missing id should fail")
	}
}
