package land

import (
	"github.com/vovakirdan/land/internal/core"
)

// Pixel geometry of the playfield. The HUD takes the first HUDRows rows.
const (
	CellW   = 16
	CellH   = 32
	HUDRows = 2
)

// Canvas is the drawing surface of the controllers, addressed in pixels.
type Canvas interface {
	Clear(scheme BackColor)
	DrawSprite(kind SpriteKind, scheme BackColor, px, py int)
	DrawText(px, py int, text string, fg core.Color)
}

// ScreenCanvas draws on a terminal screen, one cell per CellW x CellH pixels.
type ScreenCanvas struct {
	screen  *core.Screen
	sprites *SpriteSet
}

// NewScreenCanvas creates a canvas over dst.
func NewScreenCanvas(dst *core.Screen, sprites *SpriteSet) *ScreenCanvas {
	return &ScreenCanvas{screen: dst, sprites: sprites}
}

// Clear fills the screen with the scheme background.
func (c *ScreenCanvas) Clear(scheme BackColor) {
	c.screen.ClearColor(scheme.Background())
}

// DrawSprite draws a sprite with its top-left corner at (px, py).
func (c *ScreenCanvas) DrawSprite(kind SpriteKind, scheme BackColor, px, py int) {
	sp := c.sprites.Lookup(kind, scheme)
	x, y := px/CellW, py/CellH
	for i, line := range sp.Lines {
		c.drawRunes(x, y+i, line, sp.Fg, scheme.Background())
	}
}

// DrawText draws text starting at (px, py) on the current background.
func (c *ScreenCanvas) DrawText(px, py int, text string, fg core.Color) {
	c.screen.DrawTextColor(px/CellW, py/CellH, text, fg)
}

func (c *ScreenCanvas) drawRunes(x, y int, text string, fg, bg core.Color) {
	i := 0
	for _, r := range text {
		c.screen.SetCell(x+i, y, core.Cell{Rune: r, Fg: fg, Bg: bg})
		i++
	}
}
