package hustle

import (
	"io"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile-hustle/internal/config"
	"github.com/vovakirdan/tile-hustle/internal/core"
	"github.com/vovakirdan/tile-hustle/internal/games/hustle/world"
)

// Texture is a two-cell glyph. Each tile and entity is drawn two terminal
// columns wide so that it looks roughly square.
type Texture struct {
	Glyph [2]rune
	Color core.Color
}

// TextureProvider resolves texture keys to glyphs.
// Implementations must return a usable texture for every key.
type TextureProvider interface {
	Texture(key string) Texture
}

// MissingTexture is drawn for keys the atlas does not know.
var MissingTexture = Texture{Glyph: [2]rune{'?', '?'}, Color: core.ColorBrightMagenta}

// Atlas is a TextureProvider backed by the textures section of the config.
type Atlas struct {
	textures map[string]Texture
	missed   map[string]bool
	log      *log.Logger
}

// NewAtlas builds an atlas from config entries. Entries with an empty
// glyph are skipped; unknown colour names fall back to the default colour.
func NewAtlas(entries map[string]config.TextureConfig, logger *log.Logger) *Atlas {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	a := &Atlas{
		textures: make(map[string]Texture, len(entries)),
		missed:   make(map[string]bool),
		log:      logger,
	}
	for key, e := range entries {
		glyph := []rune(e.Glyph)
		if len(glyph) == 0 {
			logger.Warn("texture has no glyph", "key", key)
			continue
		}
		tex := Texture{Glyph: [2]rune{glyph[0], glyph[0]}}
		if len(glyph) > 1 {
			tex.Glyph[1] = glyph[1]
		}
		if e.Color != "" {
			c, ok := core.ParseColor(e.Color)
			if !ok {
				logger.Warn("unknown texture color", "key", key, "color", e.Color)
			}
			tex.Color = c
		}
		a.textures[key] = tex
	}
	return a
}

// Texture returns the glyph for key, or MissingTexture. Each missing key
// is logged once.
func (a *Atlas) Texture(key string) Texture {
	if tex, ok := a.textures[key]; ok {
		return tex
	}
	if !a.missed[key] {
		a.missed[key] = true
		a.log.Warn("texture not found, using placeholder", "key", key)
	}
	return MissingTexture
}

// Len returns the number of known textures.
func (a *Atlas) Len() int {
	return len(a.textures)
}

// TileTextureKey returns the texture key for a tile kind: the metadata
// texture reference, or "tile:<id>" without one.
func TileTextureKey(id world.TileID, info world.TileInfo) string {
	if info.Texture != "" {
		return info.Texture
	}
	return "tile:" + strconv.Itoa(int(id))
}

// PlayerTextureKey returns the texture key for a player pose.
func PlayerTextureKey(p world.Pose) string {
	return "player_" + p.String()
}

// NPCTextureKey returns the texture key for an NPC facing.
// NPCs only have left and right sprites.
func NPCTextureKey(f world.Facing) string {
	if f == world.FacingLeft {
		return "npc_left"
	}
	return "npc_right"
}
