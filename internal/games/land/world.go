package land

import "github.com/vovakirdan/land/internal/maps"

// World is the stage grid as seen by the actors.
// Cells outside the grid read as stone.
type World interface {
	Tile(x, y int) maps.Tile
	SetTile(x, y int, t maps.Tile)
	Find(t maps.Tile) (x, y int, ok bool)
	Count(t maps.Tile) int
}

// Direction is a horizontal heading.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

// DX returns the x step of the direction.
func (d Direction) DX() int {
	switch d {
	case DirLeft:
		return -1
	case DirRight:
		return 1
	}
	return 0
}

// Actors are two cells wide: (x, y) and (x+1, y).

func passable(w World, x, y int) bool {
	return !w.Tile(x, y).Solid() && !w.Tile(x+1, y).Solid()
}

func onLadder(w World, x, y int) bool {
	return w.Tile(x, y).Climbable() || w.Tile(x+1, y).Climbable()
}

func supported(w World, x, y int) bool {
	return onLadder(w, x, y) || w.Tile(x, y+1).Supports() || w.Tile(x+1, y+1).Supports()
}

// A climb may start at the foot of a ladder.
func canClimbUp(w World, x, y int) bool {
	return (onLadder(w, x, y) || onLadder(w, x, y-1)) && passable(w, x, y-1)
}

func canClimbDown(w World, x, y int) bool {
	ladderBelow := w.Tile(x, y+1).Climbable() || w.Tile(x+1, y+1).Climbable()
	return (ladderBelow || onLadder(w, x, y)) && passable(w, x, y+1)
}

// overlaps reports whether two actors share a cell.
func overlaps(ax, ay, bx, by int) bool {
	return ay == by && (ax == bx || ax == bx+1 || ax+1 == bx || ax+1 == bx+1)
}
