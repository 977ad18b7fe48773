package world

import "math/rand"

// SafeTiles lists interior cells an NPC may be placed on: not collidable
// and not the spawn tile. The border ring is excluded. Order is row-major.
func SafeTiles(lvl *Level, spawn TileID) []Vec2 {
	g := lvl.Grid
	var safe []Vec2
	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			id := g.Cells[y][x]
			if id == spawn || lvl.Tiles.Collidable(id) {
				continue
			}
			safe = append(safe, cellPos(x, y))
		}
	}
	return safe
}

// Populate creates up to n NPCs on distinct safe tiles chosen at random.
// Fewer are returned when the level has fewer safe tiles.
func Populate(lvl *Level, n int, rng *rand.Rand) []*NPC {
	if n <= 0 {
		return nil
	}
	safe := SafeTiles(lvl, lvl.SpawnTile)
	n = min(n, len(safe))

	// Partial Fisher-Yates: the first n entries become the sample.
	npcs := make([]*NPC, 0, n)
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(safe)-i)
		safe[i], safe[j] = safe[j], safe[i]
		npcs = append(npcs, NewNPC(safe[i]))
	}
	return npcs
}

func cellPos(cx, cy int) Vec2 {
	return Vec2{X: float64(cx), Y: float64(cy)}
}
