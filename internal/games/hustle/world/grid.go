package world

// Grid is a bordered rectangular tile map, rows then columns.
// It is immutable after NewGrid.
type Grid struct {
	Cells  [][]TileID
	Width  int
	Height int
}

// NewGrid pads short rows with open and surrounds the result with one ring
// of boundary tiles. The input rows are not modified.
func NewGrid(rows [][]TileID, open, boundary TileID) *Grid {
	inner := 0
	for _, row := range rows {
		inner = max(inner, len(row))
	}

	w, h := inner+2, len(rows)+2
	cells := make([][]TileID, h)
	for y := range cells {
		cells[y] = make([]TileID, w)
		for x := range cells[y] {
			cells[y][x] = boundary
		}
	}

	for y, row := range rows {
		for x := 0; x < inner; x++ {
			id := open
			if x < len(row) {
				id = row[x]
			}
			cells[y+1][x+1] = id
		}
	}

	return &Grid{Cells: cells, Width: w, Height: h}
}

// InBounds reports whether cell (cx, cy) lies inside the grid.
func (g *Grid) InBounds(cx, cy int) bool {
	return cx >= 0 && cx < g.Width && cy >= 0 && cy < g.Height
}

// At returns the tile at cell (cx, cy).
func (g *Grid) At(cx, cy int) (TileID, bool) {
	if !g.InBounds(cx, cy) {
		return 0, false
	}
	return g.Cells[cy][cx], true
}

// CellAt converts a tile-space position to the cell containing it.
// Conversion truncates toward zero; negative positions are never in bounds.
func (g *Grid) CellAt(x, y float64) (cx, cy int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	cx, cy = int(x), int(y)
	return cx, cy, g.InBounds(cx, cy)
}

// Blocked reports whether position (x, y) may not be occupied.
// Out-of-bounds positions are always blocked.
func (g *Grid) Blocked(tiles *TileTable, x, y float64) bool {
	cx, cy, ok := g.CellAt(x, y)
	if !ok {
		return true
	}
	return tiles.Collidable(g.Cells[cy][cx])
}

// Find returns the first cell holding id in row-major order.
func (g *Grid) Find(id TileID) (cx, cy int, ok bool) {
	for y, row := range g.Cells {
		for x, cell := range row {
			if cell == id {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}
