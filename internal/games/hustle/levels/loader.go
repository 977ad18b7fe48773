package levels

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile-hustle/internal/games/hustle/world"
)

var (
	// missingGrid replaces a level file that does not exist.
	missingGrid = [][]world.TileID{{1, 1, 1}, {1, 0, 1}, {1, 1, 1}}
	// brokenGrid replaces a level file that cannot be parsed.
	brokenGrid = [][]world.TileID{{1, 0, 1}, {1, 1, 1}}
)

// Loader builds levels from map files in a file system.
// It implements world.LevelSource.
type Loader struct {
	fsys     fs.FS
	tuning   world.Tuning
	tileFile string
	tiles    *world.TileTable
	log      *log.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithTileFile overrides the metadata file name.
func WithTileFile(name string) Option {
	return func(l *Loader) { l.tileFile = name }
}

// WithLogger sets the logger for fallback warnings.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loader) { l.log = logger }
}

// NewLoader creates a loader over fsys and reads the tile metadata once.
func NewLoader(fsys fs.FS, t world.Tuning, opts ...Option) *Loader {
	l := &Loader{
		fsys:     fsys,
		tuning:   t,
		tileFile: TileFile,
		log:      log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.ReloadTiles()
	return l
}

// Has reports whether the map file for index exists.
func (l *Loader) Has(index int) bool {
	if index < 0 {
		return false
	}
	_, err := fs.Stat(l.fsys, LevelName(index))
	return err == nil
}

// Load builds level index. Missing or unreadable files fall back to a
// built-in grid and log a warning.
func (l *Loader) Load(index int) *world.Level {
	name := LevelName(index)
	rows, err := l.readGrid(name)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		l.log.Warn("level not found, using default grid", "level", name)
		rows = missingGrid
	case err != nil:
		l.log.Warn("level unreadable, using minimal grid", "level", name, "err", err)
		rows = brokenGrid
	}
	return world.NewLevel(rows, l.tiles, LevelIndex(name), name, l.tuning)
}

func (l *Loader) readGrid(name string) ([][]world.TileID, error) {
	f, err := l.fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := ParseGrid(f)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("levels: %s: empty grid", name)
	}
	return rows, nil
}

// Tiles returns the current tile metadata.
func (l *Loader) Tiles() *world.TileTable {
	return l.tiles
}

// ReloadTiles re-reads the tile metadata. Levels loaded afterwards use the
// new table; the returned table can be handed to a running simulation.
func (l *Loader) ReloadTiles() *world.TileTable {
	tiles, err := LoadTileTable(l.fsys, l.tileFile, l.tuning.BoundaryTile)
	if err != nil {
		l.log.Warn("tile metadata unavailable, nothing is collidable but the border", "file", l.tileFile, "err", err)
	}
	l.tiles = tiles
	return tiles
}

// Info describes one level file.
type Info struct {
	Index    int
	Name     string
	Width    int // Bordered size
	Height   int
	Required int // Points needed to teleport onward
}

// List describes every map file in the loader's file system, by index.
func (l *Loader) List() ([]Info, error) {
	entries, err := fs.ReadDir(l.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("levels: list maps: %w", err)
	}

	var infos []Info
	for _, e := range entries {
		if e.IsDir() || !levelNameRe.MatchString(e.Name()) {
			continue
		}
		idx := LevelIndex(e.Name())
		if e.Name() != LevelName(idx) {
			continue // e.g. map3.txt is not reachable by teleport
		}
		lvl := l.Load(idx)
		infos = append(infos, Info{
			Index:    idx,
			Name:     e.Name(),
			Width:    lvl.Grid.Width,
			Height:   lvl.Grid.Height,
			Required: world.RequiredPoints(idx, l.tuning.PointsPerLevel),
		})
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Index < infos[j].Index })
	return infos, nil
}
