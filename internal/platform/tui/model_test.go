package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tile-hustle/internal/core"
	"github.com/vovakirdan/tile-hustle/internal/storage"
)

// fakeGame records the input it sees.
type fakeGame struct {
	resets  int
	inputs  []core.InputFrame
	state   core.GameState
	resized [2]int
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }

func (g *fakeGame) Step(in core.InputFrame, _ core.Frame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) State() core.GameState { return g.state }

func (g *fakeGame) Resize(w, h int) { g.resized = [2]int{w, h} }

func newTestModel(t *testing.T, game *fakeGame, store *storage.Store, opts Options) (Model, *time.Time) {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = 7
	m := NewModel(game, store, cfg, opts)
	now := time.Unix(1000, 0)
	m.now = func() time.Time { return now }
	m.started = now
	return m, &now
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelTogglesApplyOnce(t *testing.T) {
	game := &fakeGame{}
	m, now := newTestModel(t, game, nil, Options{})

	m = update(t, m, runeKey('p'))
	m = update(t, m, TickMsg(*now))
	m = update(t, m, TickMsg(now.Add(16*time.Millisecond)))

	if len(game.inputs) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(game.inputs))
	}
	if !game.inputs[0].Has(core.ActionPause) {
		t.Error("first tick should carry Pause")
	}
	if game.inputs[1].Has(core.ActionPause) {
		t.Error("Pause should not repeat on the next tick")
	}
}

func TestModelHeldMovementExpires(t *testing.T) {
	game := &fakeGame{}
	m, now := newTestModel(t, game, nil, Options{HoldWindow: 100 * time.Millisecond})

	m = update(t, m, runeKey('d'))
	m = update(t, m, TickMsg(now.Add(50*time.Millisecond)))
	m = update(t, m, TickMsg(now.Add(200*time.Millisecond)))

	if !game.inputs[0].Has(core.ActionRight) {
		t.Error("Right should be held inside the window")
	}
	if game.inputs[1].Has(core.ActionRight) {
		t.Error("Right should expire after the window")
	}
}

func TestModelResizeUsesResizer(t *testing.T) {
	game := &fakeGame{}
	m, _ := newTestModel(t, game, nil, Options{})

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if game.resized != [2]int{100, 30} {
		t.Errorf("resized = %v, expected [100 30]", game.resized)
	}
	if game.resets != 0 {
		t.Errorf("a Resizer should not be reset, got %d resets", game.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, expected 100x30", m.screen.Width(), m.screen.Height())
	}
}

func TestModelQuitSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := &fakeGame{state: core.GameState{Score: 9, MaxLevel: 2}}
	m, now := newTestModel(t, game, store, Options{})

	m = update(t, m, TickMsg(*now))
	*now = now.Add(90 * time.Second)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	m.saveRun()

	runs, err := store.TopRuns("fake", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 saved run, got %d", len(runs))
	}
	r := runs[0]
	if r.Score != 9 || r.MaxLevel != 2 || r.Seed != 7 || r.Duration != 90*time.Second {
		t.Errorf("saved run = %+v", r)
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	game := &fakeGame{}
	m, _ := newTestModel(t, game, nil, Options{ScreenshotDir: dir})

	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 screenshot, got %d", len(entries))
	}
	if !strings.HasPrefix(entries[0].Name(), "fake_") {
		t.Errorf("screenshot name = %q", entries[0].Name())
	}
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.Contains(string(data), "fake") {
		t.Errorf("screenshot missing rendered text: %q", data)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{-time.Second, "0:00"},
		{65 * time.Second, "1:05"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, expected %q", tt.d, got, tt.want)
		}
	}
}

func TestRunRows(t *testing.T) {
	created := time.Date(2026, time.March, 4, 15, 6, 0, 0, time.UTC)
	rows := RunRows([]storage.Run{{Score: 12, MaxLevel: 3, Duration: 75 * time.Second, CreatedAt: created}})

	want := []string{"#1", "12", "003", "1:15", "Mar 04 15:06"}
	if len(rows) != 1 || len(rows[0]) != len(want) {
		t.Fatalf("rows = %v", rows)
	}
	for i, w := range want {
		if rows[0][i] != w {
			t.Errorf("column %d = %q, expected %q", i, rows[0][i], w)
		}
	}
}
