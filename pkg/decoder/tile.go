package decoder

type Tile int

const (
	TileEmpty Tile = 0

	TileWall   Tile = 10
	TileWallLL Tile = 11
	TileWallUL Tile = 12
	TileWallUR Tile = 13
	TileWallLR Tile = 14

	TileFloor Tile = 20

	TileFlagRed  Tile = 30
	TileFlagBlue Tile = 40
	TileBoost    Tile = 50

	TilePowerup     Tile = 60
	TileJukeJuice   Tile = 61
	TileRollingBomb Tile = 62
	TileTagPro      Tile = 63
	TileTopSpeed    Tile = 64

	TileSpike  Tile = 70
	TileButton Tile = 80

	TileGateOpen  Tile = 90
	TileGateGreen Tile = 91
	TileGateRed   Tile = 92
	TileGateBlue  Tile = 93

	TileBomb Tile = 100

	TileTeamRed  Tile = 110
	TileTeamBlue Tile = 120

	TilePortalEntry Tile = 130
	TilePortalExit  Tile = 131

	TileBoostRed  Tile = 140
	TileBoostBlue Tile = 150

	TileFlagNeutral Tile = 160
	TileFlagTemp    Tile = 161

	TileEndzoneRed  Tile = 170
	TileEndzoneBlue Tile = 180

	TilePotatoRed     Tile = 190
	TilePotatoBlue    Tile = 200
	TilePotatoNeutral Tile = 210
	TileMarsball      Tile = 211

	TileGravityWell Tile = 220
	TileTeamNeutral Tile = 230
)

// TilePixels is the width and height of one tile in pixels.
const TilePixels = 40

// remapTile turns a 6-bit stream tile code into its Tile value. Nothing is
// validated; codes above the known ranges follow the last branch.
func remapTile(code uint) Tile {
	c := Tile(code)
	switch {
	case c == 0:
		return TileEmpty
	case c < 6:
		return c + 9
	case c < 13:
		return (c - 4) * 10
	case c < 17:
		return c + 77
	case c < 20:
		return (c - 7) * 10
	case c < 22:
		return c + 110
	default:
		return (c - 8) * 10
	}
}
