package land

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/land/internal/core"
	"github.com/vovakirdan/land/internal/i18n"
	"github.com/vovakirdan/land/internal/maps"
)

// HUD layout in cells.
const (
	hudRangeLabelX    = 16
	hudRangeX         = 22
	hudAttemptsLabelX = 27
	hudAttemptsX      = 36
	hudStageLabelX    = 42
	hudStageX         = 46
)

// Room owns the stage being played: its grid, the score, the attempts left
// and the actors. It turns actor signals into stage transitions.
type Room struct {
	settings *Settings
	logger   *log.Logger

	grid     maps.Grid
	score    int
	attempts int
	stage    int
	enabled  bool
	finished bool // playingFinished already raised this session

	// generation changes on every stage load so Update can stop stepping
	// actors that were reset under it.
	generation int

	edges core.EdgeDetector

	hero    *Hero
	bullet  *Bullet
	devil1  *Devil
	devil2  *Devil
	wall    *Wall
	biomass *Biomass

	PlayingFinished Signal[Event]
}

// NewRoom creates the room and its actors, wires their signals and resets
// it to stage 1.
func NewRoom(settings *Settings, logger *log.Logger) *Room {
	if logger == nil {
		logger = discardLogger()
	}
	timing := settings.Config.Timing

	r := &Room{settings: settings, logger: logger}
	r.wall = NewWall(r, timing)
	r.biomass = NewBiomass(timing)
	r.bullet = NewBullet(r, r.wall, timing)
	r.hero = NewHero(r, r.bullet, timing)
	r.devil1 = NewDevil(r, r.hero, DevilFirst, timing)
	r.devil2 = NewDevil(r, r.hero, DevilSecond, timing)
	r.bullet.SetTargets(r.devil1, r.devil2)

	r.hero.ChestHappened.Connect(func(Event) { r.onHeroChestHappened() })
	r.hero.LifeFired.Connect(func(Event) { r.onHeroLifeFired() })
	r.hero.RoomFinished.Connect(func(Event) { r.onHeroRoomFinished() })
	r.hero.ReportPosition.Connect(func(p Position) { r.onCheckCollision(p.X, p.Y) })
	r.devil1.LifeFired.Connect(func(Event) { r.onHeroLifeFired() })
	r.devil2.LifeFired.Connect(func(Event) { r.onHeroLifeFired() })

	r.Reset()
	return r
}

// Reset starts a new session at stage 1.
func (r *Room) Reset() {
	r.score = 0
	r.stage = 1
	r.attempts = r.settings.Config.Gameplay.Attempts
	r.finished = false
	r.edges.Reset()

	ticks := r.settings.Config.DevilTicks(r.settings.Range)
	r.devil1.SetStepTicks(ticks)
	r.devil2.SetStepTicks(ticks)

	r.SetStage(r.stage)
}

// SetStage loads a fresh copy of stage n of the active bank and resets
// the actors.
func (r *Room) SetStage(n int) {
	r.stage = n
	grid, err := r.settings.Library.Grid(r.settings.MapBank, n)
	if err != nil {
		r.logger.Error("cannot load stage", "bank", r.settings.MapBank, "stage", n, "err", err)
		grid = maps.NewGrid()
	}
	r.grid = grid
	r.generation++

	r.hero.Reset()
	r.bullet.Reset(1, 1, DirNone)
	r.devil1.Reset()
	r.devil2.Reset()
	r.wall.Reset()
	r.biomass.Reset()

	r.logger.Debug("stage loaded", "bank", r.settings.Bank().ID, "stage", n, "chests", grid.Count(maps.Chest))
}

// SetNextStage advances to the next stage, wrapping to 1 after the last.
func (r *Room) SetNextStage() {
	if r.stage >= r.settings.Library.StageCount(r.settings.MapBank) {
		r.stage = 1
	} else {
		r.stage++
	}
	r.SetStage(r.stage)
}

// SetEnabled shows or hides the room and all of its actors.
func (r *Room) SetEnabled(b bool) {
	r.enabled = b
	r.hero.Show(b)
	r.biomass.SetEnabled(b)
	r.bullet.Show(b)
	r.wall.SetEnabled(b)
	r.devil1.Show(b)
	r.devil2.Show(b)
	if b {
		r.edges.Reset()
	}
}

// Enabled reports whether the room is being played.
func (r *Room) Enabled() bool { return r.enabled }

// Score returns the session score.
func (r *Room) Score() int { return r.score }

// Stage returns the current 1-based stage index.
func (r *Room) Stage() int { return r.stage }

// Attempts returns the attempts left.
func (r *Room) Attempts() int { return r.attempts }

// Tile returns the tile at (x, y); cells outside the grid read as stone.
func (r *Room) Tile(x, y int) maps.Tile {
	t, err := r.grid.At(x, y)
	if err != nil {
		return maps.StoneWall
	}
	return t
}

// SetTile replaces the tile at (x, y). Cells outside the grid are ignored.
func (r *Room) SetTile(x, y int, t maps.Tile) {
	if err := r.grid.Set(x, y, t); err != nil {
		r.logger.Debug("set tile", "err", err)
	}
}

// Find returns the first cell holding t.
func (r *Room) Find(t maps.Tile) (x, y int, ok bool) {
	return r.grid.Find(t)
}

// Count returns the number of cells holding t.
func (r *Room) Count(t maps.Tile) int {
	return r.grid.Count(t)
}

// onCheckCollision tests both devils against the hero cells (x, y) and
// (x+1, y). Nothing changes once a devil has caught the hero.
func (r *Room) onCheckCollision(x, y int) {
	if r.devil1.HasCaught || r.devil2.HasCaught {
		return
	}
	r.devil1.HasCaught = overlaps(r.devil1.X, r.devil1.Y, x, y)
	r.devil2.HasCaught = overlaps(r.devil2.X, r.devil2.Y, x, y)
	if r.devil1.HasCaught || r.devil2.HasCaught {
		r.hero.Hide()
		r.logger.Debug("hero caught", "x", x, "y", y)
	}
}

func (r *Room) onHeroLifeFired() {
	if r.finished {
		return
	}
	r.attempts--
	if r.attempts <= 0 {
		r.attempts = 0
		r.finishPlaying()
		return
	}
	r.SetStage(r.stage)
}

func (r *Room) onHeroChestHappened() {
	gp := r.settings.Config.Gameplay
	r.score += gp.ChestBonus
	if r.score > gp.ScoreLimit {
		r.score = 0
	}
}

func (r *Room) onHeroRoomFinished() {
	r.SetNextStage()
}

func (r *Room) finishPlaying() {
	if r.finished {
		return
	}
	r.finished = true
	r.logger.Debug("playing finished", "score", r.score, "stage", r.stage, "attempts", r.attempts)
	r.PlayingFinished.Emit(Event{})
}

// Update handles the room keys and steps the actors.
func (r *Room) Update(in core.InputFrame) {
	if !r.enabled {
		return
	}

	handled := true
	switch {
	case r.edges.Pressed(in, core.ActionQuit):
		r.finishPlaying()
	case r.edges.Pressed(in, core.ActionNextStage):
		r.score -= r.settings.Config.Gameplay.SkipPenalty
		if r.score < 0 {
			r.score = 0
		}
		r.SetNextStage()
	case r.edges.Pressed(in, core.ActionRetry):
		r.onHeroLifeFired()
	default:
		handled = false
	}
	r.edges.Advance(in)
	if handled {
		return
	}

	gen := r.generation
	steps := []func(){
		func() { r.hero.Update(in) },
		r.bullet.Update,
		r.devil1.Update,
		r.devil2.Update,
		r.wall.Update,
		r.biomass.Update,
	}
	for _, step := range steps {
		step()
		if gen != r.generation || !r.enabled {
			return
		}
	}
}

// Draw renders the HUD, the grid and the actors.
func (r *Room) Draw(c Canvas) {
	scheme := r.settings.BackColor
	fg := scheme.Foreground()
	c.Clear(scheme)

	drawScores(c, r.settings, r.score)
	c.DrawSprite(SpriteRangeLabel, scheme, hudRangeLabelX*CellW, 0)
	c.DrawSprite(SpriteAttemptsLabel, scheme, hudAttemptsLabelX*CellW, 0)
	c.DrawSprite(SpriteStageLabel, scheme, hudStageLabelX*CellW, 0)
	for i := 0; i < maps.CapacityX; i++ {
		c.DrawSprite(SpriteDelimiter, scheme, i*CellW, 1*CellH)
	}
	c.DrawText(hudRangeX*CellW, 0, fmt.Sprintf("%02d", r.settings.Range), fg)
	c.DrawText(hudAttemptsX*CellW, 0, fmt.Sprintf("%02d", r.attempts), fg)
	c.DrawText(hudStageX*CellW, 0, fmt.Sprintf("%02d", r.stage), fg)

	frame := r.biomass.Frame()
	for x := 0; x < maps.CapacityX; x++ {
		for y := 0; y < maps.CapacityY; y++ {
			c.DrawSprite(TileSprite(r.Tile(x, y), frame), scheme, x*CellW, (y+HUDRows)*CellH)
		}
	}

	r.drawActors(c, scheme)
}

func (r *Room) drawActors(c Canvas, scheme BackColor) {
	if !r.enabled {
		return
	}
	at := func(x, y int) (int, int) { return x * CellW, (y + HUDRows) * CellH }

	caught := r.devil1.HasCaught || r.devil2.HasCaught
	switch {
	case caught:
		px, py := at(r.hero.X, r.hero.Y)
		c.DrawSprite(SpriteHeroDefeat, scheme, px, py)
	case r.hero.Visible():
		kind := SpriteHero
		if r.hero.Facing() == DirLeft {
			kind = SpriteHeroLeft
		}
		px, py := at(r.hero.X, r.hero.Y)
		c.DrawSprite(kind, scheme, px, py)
	}

	for _, d := range []*Devil{r.devil1, r.devil2} {
		if !d.Visible() {
			continue
		}
		kind := SpriteDevil
		if d.HasCaught {
			kind = SpriteDevilCaught
		}
		px, py := at(d.X, d.Y)
		c.DrawSprite(kind, scheme, px, py)
	}

	if r.bullet.Active() {
		px, py := at(r.bullet.X, r.bullet.Y)
		c.DrawSprite(SpriteBullet, scheme, px, py)
	}
}

// drawScores draws the score pair shared by the room and the splash.
func drawScores(c Canvas, s *Settings, score int) {
	hi := s.HighScore
	if score > hi {
		hi = score
	}
	text := fmt.Sprintf("%05d %s %05d", score, s.Catalog.Get(i18n.LabelHi), hi)
	c.DrawText(0, 0, text, s.BackColor.Foreground())
}
