// Package levels loads Tile Hustle maps and tile metadata.
// It depends on world but world does not depend on levels.
package levels

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/vovakirdan/tile-hustle/internal/games/hustle/world"
)

var levelNameRe = regexp.MustCompile(`map(\d+)\.txt`)

// ParseGrid reads a map: whitespace-separated non-negative tile ids, one
// row per line. Blank lines are skipped and rows may differ in length.
func ParseGrid(r io.Reader) ([][]world.TileID, error) {
	var rows [][]world.TileID
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]world.TileID, len(fields))
		for i, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("line %d: tile %q: %w", line, f, err)
			}
			if n < 0 {
				return nil, fmt.Errorf("line %d: negative tile id %d", line, n)
			}
			row[i] = world.TileID(n)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading grid: %w", err)
	}
	return rows, nil
}

// LevelIndex extracts the ordinal from a level identifier such as
// "maps/map003.txt". Identifiers without one are level 0.
func LevelIndex(name string) int {
	m := levelNameRe.FindStringSubmatch(name)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// LevelName returns the file name of level index.
func LevelName(index int) string {
	return fmt.Sprintf("map%03d.txt", index)
}
