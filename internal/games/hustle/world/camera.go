package world

// Camera is the top-left corner of the view in pixels.
type Camera struct {
	X, Y  float64
	ViewW float64 // View size in pixels
	ViewH float64
}

// Follow centers the view on target.
func (c *Camera) Follow(target Vec2, tileSize float64) {
	c.X = target.X*tileSize - c.ViewW/2
	c.Y = target.Y*tileSize - c.ViewH/2
}

// ToView converts a tile-space position to view pixels.
func (c Camera) ToView(pos Vec2, tileSize float64) (x, y float64) {
	return pos.X*tileSize - c.X, pos.Y*tileSize - c.Y
}
