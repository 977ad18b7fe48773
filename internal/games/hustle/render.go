package hustle

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tile-hustle/internal/core"
	"github.com/vovakirdan/tile-hustle/internal/games/hustle/world"
)

// Screen layout
const (
	hudRows    = 2  // Status lines under the map
	minScreenW = 24 // Smallest usable screen
	minScreenH = 8
	sprintBarW = 16
	minimapW   = 20 // Minimap interior in cells
	minimapH   = 8
)

// viewSize returns the map view in tiles for a screen in cells.
// Every tile is two cells wide.
func viewSize(screenW, screenH int) (cols, rows int) {
	return max(0, screenW/2), max(0, screenH-hudRows)
}

// view maps tiles to screen cells. Origin is the tile drawn at the top-left.
type view struct {
	originX, originY int
	cols, rows       int
}

func (g *Game) newView(cols, rows int) view {
	ts := g.tuning.TileSize
	cam := g.sim.Camera
	return view{
		originX: int(math.Floor(cam.X / ts)),
		originY: int(math.Floor(cam.Y / ts)),
		cols:    cols,
		rows:    rows,
	}
}

// cell returns the screen tile for a world position, lifted by height pixels.
func (v view) cell(pos world.Vec2, height, tileSize float64) (sx, sy int, ok bool) {
	sx = int(math.Floor(pos.X)) - v.originX
	sy = int(math.Floor(pos.Y)) - v.originY - int(math.Round(height/tileSize))
	ok = sx >= 0 && sx < v.cols && sy >= 0 && sy < v.rows
	return sx, sy, ok
}

func drawTexture(dst *core.Screen, sx, sy int, tex Texture) {
	dst.SetColored(sx*2, sy, tex.Glyph[0], tex.Color)
	dst.SetColored(sx*2+1, sy, tex.Glyph[1], tex.Color)
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.sim == nil {
		return
	}
	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		drawCenteredText(dst, "Window too small", dst.Height()/2)
		return
	}

	cols, rows := viewSize(dst.Width(), dst.Height())
	v := g.newView(cols, rows)

	g.renderTiles(dst, v)
	g.renderNPCs(dst, v)
	g.renderPlayer(dst, v)
	g.renderHUD(dst, rows)

	if g.showInfo {
		g.renderDebug(dst)
		g.renderMinimap(dst)
	}
	if g.paused {
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderTiles(dst *core.Screen, v view) {
	lvl := g.sim.Level
	for sy := 0; sy < v.rows; sy++ {
		for sx := 0; sx < v.cols; sx++ {
			id, ok := lvl.Grid.At(v.originX+sx, v.originY+sy)
			if !ok {
				continue
			}
			key := TileTextureKey(id, lvl.Tiles.Info(id))
			drawTexture(dst, sx, sy, g.textures.Texture(key))
		}
	}
}

func (g *Game) renderNPCs(dst *core.Screen, v view) {
	ts := g.tuning.TileSize
	for _, n := range g.sim.NPCs {
		sx, sy, ok := v.cell(n.Pos, n.Jump.Height(), ts)
		if !ok {
			continue
		}
		drawTexture(dst, sx, sy, g.textures.Texture(NPCTextureKey(n.Facing)))
	}
}

func (g *Game) renderPlayer(dst *core.Screen, v view) {
	p := g.sim.Player
	sx, sy, ok := v.cell(p.Pos, p.Jump.Height(), g.tuning.TileSize)
	if !ok {
		return
	}
	drawTexture(dst, sx, sy, g.textures.Texture(PlayerTextureKey(p.Pose)))
}

// renderHUD draws the points line and the sprint bar below the map.
func (g *Game) renderHUD(dst *core.Screen, y int) {
	s := g.sim
	p := s.Player

	status := fmt.Sprintf(" Points: %d | Level: %d | Next: %d", s.Score, s.Level.Index, s.RequiredPoints())
	if p.Teleporting() {
		status += fmt.Sprintf(" | Teleport %s %.1fs", p.Teleport.Pending, max(0, p.Teleport.Timer))
	}
	dst.DrawTextColored(0, y, status, core.ColorCyan)

	label := " Sprint "
	dst.DrawTextColored(0, y+1, label, core.ColorWhite)
	x := len(label)
	dst.DrawTextColored(x, y+1, sprintBar(p.Sprint.Energy, g.tuning.EnergyMax), sprintColor(p.Sprint))
	if p.Sprint.Cooldown > 0 {
		dst.DrawTextColored(x+sprintBarW+1, y+1, fmt.Sprintf("Cooldown: %.1fs", p.Sprint.Cooldown), core.ColorBrightRed)
	}
}

// sprintBar draws energy as a fixed-width bar.
func sprintBar(energy, maxEnergy float64) string {
	filled := 0
	if maxEnergy > 0 {
		filled = int(math.Round(energy / maxEnergy * sprintBarW))
	}
	filled = core.Clamp(filled, 0, sprintBarW)
	return strings.Repeat("█", filled) + strings.Repeat("░", sprintBarW-filled)
}

func sprintColor(s world.Sprint) core.Color {
	switch {
	case s.Cooldown > 0:
		return core.ColorRed
	case s.Sprinting:
		return core.ColorYellow
	default:
		return core.ColorGreen
	}
}

// renderDebug draws the info lines in the top-left corner.
func (g *Game) renderDebug(dst *core.Screen) {
	p := g.sim.Player
	lvl := g.sim.Level

	lines := []string{
		fmt.Sprintf("FPS: %d", int(g.fps)),
		fmt.Sprintf("Pos: (%.1f, %.1f)", p.Pos.X, p.Pos.Y),
	}
	if cx, cy, ok := lvl.Grid.CellAt(p.Pos.X, p.Pos.Y); ok {
		id, _ := lvl.Grid.At(cx, cy)
		lines = append(lines, fmt.Sprintf("Block: %s (%d, %d)", lvl.Tiles.Name(id), cx, cy))
	}
	lines = append(lines, "Status: "+strings.Join(playerStatus(p), ", "))

	for i, line := range lines {
		dst.DrawTextColored(0, i, line, core.ColorBrightWhite)
	}
}

func playerStatus(p *world.Player) []string {
	var status []string
	if p.Jump.Active {
		status = append(status, "Jumping")
	}
	if p.Sprint.Sprinting {
		status = append(status, "Sprinting")
	}
	if p.Teleporting() {
		status = append(status, "Teleporting")
	}
	return status
}

// renderMinimap draws the whole level scaled into a box in the top-right
// corner: the player and the NPCs within the update window.
func (g *Game) renderMinimap(dst *core.Screen) {
	x0 := dst.Width() - minimapW - 2
	box := core.NewRect(x0, 0, minimapW+2, minimapH+2)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorGray)

	grid := g.sim.Level.Grid
	dot := func(pos world.Vec2, r rune, c core.Color) {
		mx := core.Clamp(int(pos.X/float64(grid.Width)*minimapW), 0, minimapW-1)
		my := core.Clamp(int(pos.Y/float64(grid.Height)*minimapH), 0, minimapH-1)
		dst.SetColored(x0+1+mx, 1+my, r, c)
	}

	p := g.sim.Player
	for _, n := range g.sim.NPCs {
		if n.Near(p.Pos, g.tuning.NPCWindow) {
			dot(n.Pos, '•', core.ColorBrightGreen)
		}
	}
	dot(p.Pos, 'o', core.ColorBrightRed)
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	drawCenteredText(dst, line1, box.Y+1)
	drawCenteredText(dst, line2, box.Y+3)
}

func drawCenteredText(dst *core.Screen, text string, y int) {
	x := (dst.Width() - len([]rune(text))) / 2
	dst.DrawTextColored(max(0, x), y, text, core.ColorBrightWhite)
}
