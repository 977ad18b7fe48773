package world

// Level is one loaded map: its bordered grid, tile metadata, ordinal index
// and cached spawn position.
type Level struct {
	Grid      *Grid
	Tiles     *TileTable
	Index     int
	Source    string // Identifier the level was loaded from
	Spawn     Vec2
	SpawnTile TileID
}

// LevelSource supplies levels by ordinal index.
type LevelSource interface {
	// Has reports whether a level exists at index.
	Has(index int) bool
	// Load builds the level at index. It never fails; implementations fall
	// back to a built-in grid.
	Load(index int) *Level
}

// NewLevel borders rows and locates the spawn tile. The first spawn tile
// in row-major order wins; without one the spawn is cell (1, 1).
func NewLevel(rows [][]TileID, tiles *TileTable, index int, source string, t Tuning) *Level {
	g := NewGrid(rows, t.OpenTile, t.BoundaryTile)
	spawn := Vec2{X: 1, Y: 1}
	if cx, cy, ok := g.Find(t.SpawnTile); ok {
		spawn = cellPos(cx, cy)
	}
	return &Level{
		Grid:      g,
		Tiles:     tiles,
		Index:     index,
		Source:    source,
		Spawn:     spawn,
		SpawnTile: t.SpawnTile,
	}
}

// Blocked reports whether position (x, y) is blocked in this level.
func (l *Level) Blocked(x, y float64) bool {
	return l.Grid.Blocked(l.Tiles, x, y)
}

// TileAt returns the tile under pos.
func (l *Level) TileAt(pos Vec2) (TileID, bool) {
	cx, cy, ok := l.Grid.CellAt(pos.X, pos.Y)
	if !ok {
		return 0, false
	}
	return l.Grid.Cells[cy][cx], true
}

// RequiredPoints is the score needed to teleport forward out of level index.
func RequiredPoints(index, perLevel int) int {
	return (index + 1) * perLevel
}

// NeighborIndex returns the level a transition in dir leads to.
// Going back from level 0 stays on level 0.
func NeighborIndex(index int, dir Direction) int {
	switch dir {
	case DirForward:
		return index + 1
	case DirBackward:
		return max(0, index-1)
	default:
		return index
	}
}
