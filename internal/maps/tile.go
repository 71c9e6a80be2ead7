// Package maps provides the map banks: named collections of fixed-size stage
// grids loaded from YAML files.
package maps

// Grid dimensions shared by every stage of every bank.
const (
	CapacityX = 64
	CapacityY = 20
)

// Tile is the content of a single stage cell.
type Tile uint8

const (
	Empty Tile = iota
	StoneWall
	BrickWall
	BrokenBrick // Brick shot away; regrows after a while
	Ladder
	Chest
	Biomass
	HeroStart
	DevilStart1
	DevilStart2
)

var glyphToTile = map[rune]Tile{
	' ': Empty,
	'#': StoneWall,
	'=': BrickWall,
	'H': Ladder,
	'$': Chest,
	'~': Biomass,
	'P': HeroStart,
	'1': DevilStart1,
	'2': DevilStart2,
}

// TileForGlyph maps a layout character to its tile.
func TileForGlyph(r rune) (Tile, bool) {
	t, ok := glyphToTile[r]
	return t, ok
}

// Solid reports whether actors cannot enter the tile.
func (t Tile) Solid() bool {
	return t == StoneWall || t == BrickWall
}

// Climbable reports whether actors can move vertically through the tile.
func (t Tile) Climbable() bool {
	return t == Ladder
}

// Supports reports whether an actor standing directly above the tile stays put.
func (t Tile) Supports() bool {
	return t.Solid() || t.Climbable()
}

func (t Tile) String() string {
	switch t {
	case Empty:
		return "empty"
	case StoneWall:
		return "stone"
	case BrickWall:
		return "brick"
	case BrokenBrick:
		return "broken brick"
	case Ladder:
		return "ladder"
	case Chest:
		return "chest"
	case Biomass:
		return "biomass"
	case HeroStart:
		return "hero start"
	case DevilStart1:
		return "devil 1 start"
	case DevilStart2:
		return "devil 2 start"
	default:
		return "unknown"
	}
}
