package world

import "sort"

// TileID identifies a tile kind in a grid.
type TileID int

// TileInfo is the metadata of one tile kind.
type TileInfo struct {
	Name       string
	Collidable bool
	Texture    string // Texture key, empty means "tile:<id>"
}

// UnknownTile is returned for ids that have no metadata.
var UnknownTile = TileInfo{Name: "Unknown"}

// TileTable maps tile ids to their metadata.
// Ids missing from the table are not collidable, except the boundary id
// which is always collidable.
type TileTable struct {
	infos    map[TileID]TileInfo
	boundary TileID
}

// NewTileTable creates an empty table that treats boundary as collidable.
func NewTileTable(boundary TileID) *TileTable {
	return &TileTable{
		infos:    make(map[TileID]TileInfo),
		boundary: boundary,
	}
}

// Set stores the metadata for id.
func (t *TileTable) Set(id TileID, info TileInfo) {
	t.infos[id] = info
}

// Info returns the metadata for id.
func (t *TileTable) Info(id TileID) TileInfo {
	if t == nil {
		return UnknownTile
	}
	info, ok := t.infos[id]
	if id == t.boundary {
		if !ok {
			info.Name = "Border"
		}
		info.Collidable = true
		return info
	}
	if !ok {
		return UnknownTile
	}
	return info
}

// Collidable reports whether entities are blocked by tile id.
func (t *TileTable) Collidable(id TileID) bool {
	return t.Info(id).Collidable
}

// Name returns the display name for id.
func (t *TileTable) Name(id TileID) string {
	return t.Info(id).Name
}

// Len returns the number of ids with explicit metadata.
func (t *TileTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.infos)
}

// IDs returns the ids with explicit metadata in ascending order.
func (t *TileTable) IDs() []TileID {
	if t == nil {
		return nil
	}
	ids := make([]TileID, 0, len(t.infos))
	for id := range t.infos {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
