package levels

import (
	"embed"
	"io/fs"
)

//go:embed maps/*.txt maps/mapdata.json
var embedded embed.FS

// Embedded returns the built-in level set.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "maps")
	if err != nil {
		panic("levels: embedded maps missing: " + err.Error())
	}
	return sub
}
