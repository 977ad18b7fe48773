package world

// DetectEncounters returns the indices of NPCs the player lands on.
// An NPC counts when its footprint overlaps the player's while the player
// is mid-jump; nothing counts while the player is on the ground.
func DetectEncounters(player *Player, npcs []*NPC, tileSize float64) []int {
	if !player.Jump.Active {
		return nil
	}
	pb := player.Bounds(tileSize)

	var hits []int
	for i, n := range npcs {
		if pb.Intersects(n.Bounds(tileSize)) {
			hits = append(hits, i)
		}
	}
	return hits
}

// RemoveDefeated returns the NPCs whose indices are not in idx.
// The input slice is left untouched.
func RemoveDefeated(npcs []*NPC, idx []int) []*NPC {
	if len(idx) == 0 {
		return npcs
	}
	defeated := make(map[int]bool, len(idx))
	for _, i := range idx {
		defeated[i] = true
	}

	survivors := make([]*NPC, 0, len(npcs))
	for i, n := range npcs {
		if !defeated[i] {
			survivors = append(survivors, n)
		}
	}
	return survivors
}
