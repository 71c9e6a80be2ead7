package land

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/land/internal/config"
	"github.com/vovakirdan/land/internal/core"
	"github.com/vovakirdan/land/internal/i18n"
	"github.com/vovakirdan/land/internal/maps"
)

// stage builds a bordered layout. rows[y] maps a row to its content, which
// starts at x = 1.
func stage(rows map[int]string) string {
	lines := make([]string, maps.CapacityY)
	inner := strings.Repeat(" ", maps.CapacityX-2)
	for y := range lines {
		if y == 0 || y == maps.CapacityY-1 {
			lines[y] = strings.Repeat("#", maps.CapacityX)
			continue
		}
		row := rows[y] + inner
		lines[y] = "#" + row[:maps.CapacityX-2] + "#"
	}
	return strings.Join(lines, "\n")
}

// Devils are kept in a sealed pocket at the top-left.
var devilPocket = map[int]string{
	1: "=1 2 =",
	2: "======",
}

func withPocket(rows map[int]string) map[int]string {
	out := map[int]string{}
	for y, r := range devilPocket {
		out[y] = r
	}
	for y, r := range rows {
		out[y] = r
	}
	return out
}

// flatStage: hero at (2, 18), chests at x = 5, 8, 11 and biomass at 18-19.
var flatStage = stage(withPocket(map[int]string{
	18: " P  $  $  $      ~~",
}))

// biomassStage: chests at x = 5, 8 and 24 with biomass at 18-19 between
// them, so walking right into the biomass never clears the stage.
var biomassStage = stage(withPocket(map[int]string{
	18: " P  $  $" + strings.Repeat(" ", 9) + "~~" + strings.Repeat(" ", 4) + "$",
}))

// oneChestStage: a single chest at x = 5.
var oneChestStage = stage(withPocket(map[int]string{
	18: " P  $",
}))

func testBank(t *testing.T, id string, layouts ...string) maps.Bank {
	t.Helper()
	b := maps.Bank{ID: id, Name: "Test " + id}
	for i, l := range layouts {
		g, err := maps.ParseLayout(l)
		if err != nil {
			t.Fatalf("stage %d: %v", i+1, err)
		}
		b.Stages = append(b.Stages, maps.Stage{Name: id, Grid: g})
	}
	return b
}

func testLibrary(t *testing.T, banks ...maps.Bank) *maps.Library {
	t.Helper()
	lib, err := maps.NewLibrary(banks...)
	if err != nil {
		t.Fatalf("NewLibrary: %v", err)
	}
	return lib
}

func testSettings(t *testing.T, layouts ...string) *Settings {
	t.Helper()
	if len(layouts) == 0 {
		layouts = []string{flatStage, oneChestStage}
	}
	cfg := config.DefaultLandConfig()
	return &Settings{
		TimeUnit: 100 * time.Millisecond,
		TickRate: 60,
		Range:    1,
		Version:  "test",
		Config:   cfg,
		Library:  testLibrary(t, testBank(t, "test", layouts...)),
		Catalog:  i18n.Default(),
	}
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// gridWorld is a World over a bare grid.
type gridWorld struct {
	grid maps.Grid
}

func newGridWorld(t *testing.T, layout string) *gridWorld {
	t.Helper()
	g, err := maps.ParseLayout(layout)
	if err != nil {
		t.Fatal(err)
	}
	return &gridWorld{grid: g}
}

func (w *gridWorld) Tile(x, y int) maps.Tile {
	tile, err := w.grid.At(x, y)
	if err != nil {
		return maps.StoneWall
	}
	return tile
}

func (w *gridWorld) SetTile(x, y int, t maps.Tile) { _ = w.grid.Set(x, y, t) }

func (w *gridWorld) Find(t maps.Tile) (int, int, bool) { return w.grid.Find(t) }

func (w *gridWorld) Count(t maps.Tile) int { return w.grid.Count(t) }

type spriteCall struct {
	kind   SpriteKind
	px, py int
}

type textCall struct {
	px, py int
	text   string
}

// recordCanvas records draw calls.
type recordCanvas struct {
	clears  int
	sprites []spriteCall
	texts   []textCall
}

func (c *recordCanvas) Clear(BackColor) { c.clears++ }

func (c *recordCanvas) DrawSprite(kind SpriteKind, _ BackColor, px, py int) {
	c.sprites = append(c.sprites, spriteCall{kind, px, py})
}

func (c *recordCanvas) DrawText(px, py int, text string, _ core.Color) {
	c.texts = append(c.texts, textCall{px, py, text})
}

func (c *recordCanvas) spriteAt(px, py int) (SpriteKind, bool) {
	var kind SpriteKind
	found := false
	for _, s := range c.sprites {
		if s.px == px && s.py == py {
			kind, found = s.kind, true // last one drawn wins
		}
	}
	return kind, found
}

func (c *recordCanvas) count(kind SpriteKind) int {
	n := 0
	for _, s := range c.sprites {
		if s.kind == kind {
			n++
		}
	}
	return n
}

func (c *recordCanvas) textAt(px, py int) (string, bool) {
	for _, tc := range c.texts {
		if tc.px == px && tc.py == py {
			return tc.text, true
		}
	}
	return "", false
}

func (c *recordCanvas) hasText(sub string) bool {
	for _, tc := range c.texts {
		if strings.Contains(tc.text, sub) {
			return true
		}
	}
	return false
}
