package maps

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned by grid and bank operations.
var (
	ErrOutOfRange   = errors.New("maps: cell out of range")
	ErrBadLayout    = errors.New("maps: bad layout")
	ErrUnknownBank  = errors.New("maps: unknown bank")
	ErrUnknownStage = errors.New("maps: unknown stage")
)

// Grid is a CapacityX x CapacityY stage.
// Cells are stored in row-major order: index = y*CapacityX + x.
type Grid struct {
	cells []Tile
}

// NewGrid creates a grid with every cell empty.
func NewGrid() Grid {
	return Grid{cells: make([]Tile, CapacityX*CapacityY)}
}

// InBounds returns true if the coordinate is within the grid boundaries.
func InBounds(x, y int) bool {
	return x >= 0 && x < CapacityX && y >= 0 && y < CapacityY
}

// At returns the tile at (x, y).
func (g Grid) At(x, y int) (Tile, error) {
	if !InBounds(x, y) || g.cells == nil {
		return Empty, fmt.Errorf("%w: (%d, %d)", ErrOutOfRange, x, y)
	}
	return g.cells[y*CapacityX+x], nil
}

// Set replaces the tile at (x, y).
func (g Grid) Set(x, y int, t Tile) error {
	if !InBounds(x, y) || g.cells == nil {
		return fmt.Errorf("%w: (%d, %d)", ErrOutOfRange, x, y)
	}
	g.cells[y*CapacityX+x] = t
	return nil
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	cells := make([]Tile, len(g.cells))
	copy(cells, g.cells)
	return Grid{cells: cells}
}

// Find returns the first cell holding t, scanning rows top to bottom.
func (g Grid) Find(t Tile) (x, y int, ok bool) {
	for i, c := range g.cells {
		if c == t {
			return i % CapacityX, i / CapacityX, true
		}
	}
	return 0, 0, false
}

// Count returns the number of cells holding t.
func (g Grid) Count(t Tile) int {
	n := 0
	for _, c := range g.cells {
		if c == t {
			n++
		}
	}
	return n
}

// ParseLayout converts CapacityY lines of glyphs into a grid.
// Lines shorter than CapacityX are padded with empty cells.
func ParseLayout(layout string) (Grid, error) {
	lines := strings.Split(strings.TrimRight(layout, "\n"), "\n")
	if len(lines) != CapacityY {
		return Grid{}, fmt.Errorf("%w: %d rows, want %d", ErrBadLayout, len(lines), CapacityY)
	}

	g := NewGrid()
	for y, line := range lines {
		line = strings.TrimRight(line, "\r")
		x := 0
		for _, r := range line {
			if x >= CapacityX {
				return Grid{}, fmt.Errorf("%w: row %d longer than %d", ErrBadLayout, y, CapacityX)
			}
			t, ok := TileForGlyph(r)
			if !ok {
				return Grid{}, fmt.Errorf("%w: unknown glyph %q at (%d, %d)", ErrBadLayout, r, x, y)
			}
			g.cells[y*CapacityX+x] = t
			x++
		}
	}
	return g, nil
}
