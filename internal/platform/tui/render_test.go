package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tile-hustle/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(8, 2)
	s.DrawText(0, 0, "Points")
	s.SetColored(0, 1, '#', core.ColorGray)
	s.SetColored(1, 1, '#', core.ColorGray)
	s.SetColored(2, 1, '?', core.ColorBrightMagenta)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out)
	}
	if !strings.Contains(lines[0], "Points") {
		t.Errorf("line 0 = %q, expected Points", lines[0])
	}
	if !strings.Contains(lines[1], "##") || !strings.Contains(lines[1], "?") {
		t.Errorf("line 1 = %q, expected ## and ?", lines[1])
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(250)).Render("x"); got != "x" {
		t.Errorf("unknown colour rendered %q, expected plain x", got)
	}
}
