package decoder

import (
	"github.com/rejdeboer/tagpro-telemetry/pkg/reader"
)

// DecodeMap decodes a map tiles blob into rows of width tiles. The blob is a
// run-length encoding: a 6-bit tile code followed by a footer holding the run
// length minus one. Runs wrap across rows; the height is the number of rows.
func DecodeMap(buf []byte, width int, opts ...Option) ([][]Tile, error) {
	o := buildOptions(opts)
	if width < 1 {
		if o.strict {
			return nil, malformed("invalid map width %d", width)
		}
		return [][]Tile{}, nil
	}
	if o.strict && len(buf) == 0 {
		return nil, malformed("empty map blob")
	}

	r := reader.FromBuffer(buf)
	rows := [][]Tile{}
	x, total := 0, 0

	// past the end, zero reads pad the last row with empty tiles
	for !r.End() || x > 0 {
		tile := remapTile(r.ReadFixed(6))
		run := r.ReadFooter() + 1
		if o.maxTiles > 0 && uint64(total)+uint64(run) > uint64(o.maxTiles) {
			return nil, malformed("map has more than %d tiles", o.maxTiles)
		}
		total += int(run)

		for range run {
			if x == 0 {
				rows = append(rows, make([]Tile, 0, width))
			}
			rows[len(rows)-1] = append(rows[len(rows)-1], tile)

			x++
			if x == width {
				x = 0
			}
		}
	}

	return rows, nil
}
