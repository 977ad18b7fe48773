package levels

import (
	"fmt"
	"io/fs"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tile-hustle/internal/games/hustle/world"
)

// TileFile is the default tile metadata file name.
const TileFile = "mapdata.json"

// tileDoc is the metadata file layout. JSON documents parse as YAML, so
// one decoder serves both mapdata.json and mapdata.yaml.
type tileDoc struct {
	Tiles map[string]tileRecord `yaml:"tiles"`
}

type tileRecord struct {
	Name       string `yaml:"name"`
	Collidable bool   `yaml:"collidable"`
	Texture    string `yaml:"texture"`
}

// ParseTileTable decodes tile metadata. Entries whose key is not a
// non-negative integer are rejected.
func ParseTileTable(data []byte, boundary world.TileID) (*world.TileTable, error) {
	var doc tileDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("levels: parse tile metadata: %w", err)
	}

	table := world.NewTileTable(boundary)
	for key, rec := range doc.Tiles {
		id, err := strconv.Atoi(key)
		if err != nil || id < 0 {
			return nil, fmt.Errorf("levels: tile id %q is not a non-negative integer", key)
		}
		name := rec.Name
		if name == "" {
			name = world.UnknownTile.Name
		}
		table.Set(world.TileID(id), world.TileInfo{
			Name:       name,
			Collidable: rec.Collidable,
			Texture:    rec.Texture,
		})
	}
	return table, nil
}

// LoadTileTable reads tile metadata from fsys. On any failure it returns an
// empty table together with the error, so callers can log and carry on.
func LoadTileTable(fsys fs.FS, name string, boundary world.TileID) (*world.TileTable, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return world.NewTileTable(boundary), fmt.Errorf("levels: read tile metadata: %w", err)
	}
	table, err := ParseTileTable(data, boundary)
	if err != nil {
		return world.NewTileTable(boundary), err
	}
	return table, nil
}
