package world

import "fmt"

const (
	tSpawn    TileID = 0
	tGrass    TileID = 1
	tStone    TileID = 2
	tWater    TileID = 3
	tPortal   TileID = 6
	tBack     TileID = 7
	tBoundary TileID = 9
)

func testTiles() *TileTable {
	tt := NewTileTable(tBoundary)
	tt.Set(tSpawn, TileInfo{Name: "bridge"})
	tt.Set(tGrass, TileInfo{Name: "grass"})
	tt.Set(tStone, TileInfo{Name: "stone", Collidable: true})
	tt.Set(tWater, TileInfo{Name: "water", Collidable: true})
	tt.Set(tPortal, TileInfo{Name: "portal"})
	tt.Set(tBack, TileInfo{Name: "portal_back"})
	return tt
}

func testLevel(rows [][]TileID) *Level {
	return NewLevel(rows, testTiles(), 0, "test", DefaultTuning())
}

// openRows returns a w x h block of grass with the spawn tile at (sx, sy).
func openRows(w, h, sx, sy int) [][]TileID {
	rows := make([][]TileID, h)
	for y := range rows {
		rows[y] = make([]TileID, w)
		for x := range rows[y] {
			rows[y][x] = tGrass
		}
	}
	if sx >= 0 && sy >= 0 {
		rows[sy][sx] = tSpawn
	}
	return rows
}

// mapSource serves fixed grids by index.
type mapSource struct {
	levels map[int][][]TileID
	tiles  *TileTable
	tuning Tuning
	loads  int
}

func (m *mapSource) Has(index int) bool {
	_, ok := m.levels[index]
	return ok
}

func (m *mapSource) Load(index int) *Level {
	m.loads++
	rows, ok := m.levels[index]
	if !ok {
		rows = [][]TileID{{1, 1, 1}, {1, 0, 1}, {1, 1, 1}}
	}
	return NewLevel(rows, m.tiles, index, fmt.Sprintf("map%03d.txt", index), m.tuning)
}

func newSource(t Tuning, levels map[int][][]TileID) *mapSource {
	return &mapSource{levels: levels, tiles: testTiles(), tuning: t}
}

// quietTuning disables NPC population and movement so tests control NPCs.
func quietTuning() Tuning {
	t := DefaultTuning()
	t.NPCTarget = 0
	t.NPCJumpChance = 0
	return t
}
