package world

import (
	"reflect"
	"testing"
)

func jumpingPlayer(pos Vec2) *Player {
	p := NewPlayer(pos, DefaultTuning())
	p.Jump.Start(30, 1)
	return p
}

func TestDetectEncounters(t *testing.T) {
	npcs := []*NPC{
		NewNPC(Vec2{X: 3.5, Y: 3.5}), // overlaps
		NewNPC(Vec2{X: 4, Y: 3}),     // touches the right edge only
		NewNPC(Vec2{X: 10, Y: 10}),   // far away
		NewNPC(Vec2{X: 2.2, Y: 3.9}), // overlaps
	}

	t.Run("jumping", func(t *testing.T) {
		got := DetectEncounters(jumpingPlayer(Vec2{X: 3, Y: 3}), npcs, 16)
		if want := []int{0, 3}; !reflect.DeepEqual(got, want) {
			t.Errorf("DetectEncounters() = %v, expected %v", got, want)
		}
	})

	t.Run("grounded", func(t *testing.T) {
		p := NewPlayer(Vec2{X: 3, Y: 3}, DefaultTuning())
		if got := DetectEncounters(p, npcs, 16); len(got) != 0 {
			t.Errorf("DetectEncounters() = %v, expected none while grounded", got)
		}
	})
}

func TestDetectEncountersDoesNotMutate(t *testing.T) {
	npcs := []*NPC{NewNPC(Vec2{X: 3, Y: 3})}
	DetectEncounters(jumpingPlayer(Vec2{X: 3, Y: 3}), npcs, 16)
	if len(npcs) != 1 {
		t.Error("DetectEncounters should not change the NPC slice")
	}
}

func TestRemoveDefeated(t *testing.T) {
	a, b, c, d := NewNPC(Vec2{}), NewNPC(Vec2{}), NewNPC(Vec2{}), NewNPC(Vec2{})
	npcs := []*NPC{a, b, c, d}

	got := RemoveDefeated(npcs, []int{0, 2})
	if len(got) != 2 || got[0] != b || got[1] != d {
		t.Errorf("RemoveDefeated() kept %v, expected [b d]", got)
	}
	if npcs[0] != a || npcs[2] != c {
		t.Error("RemoveDefeated should not modify its input")
	}

	if got := RemoveDefeated(npcs, nil); len(got) != 4 {
		t.Errorf("RemoveDefeated(nil) kept %d, expected all 4", len(got))
	}

	if got := RemoveDefeated(npcs, []int{0, 1, 2, 3}); len(got) != 0 {
		t.Errorf("RemoveDefeated(all) kept %d, expected 0", len(got))
	}
}
