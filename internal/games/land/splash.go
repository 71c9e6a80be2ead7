package land

import (
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/land/internal/core"
	"github.com/vovakirdan/land/internal/i18n"
	"github.com/vovakirdan/land/internal/maps"
)

// DisplayMode is the sub-screen shown by the splash.
type DisplayMode int

const (
	ModeIdle DisplayMode = iota
	ModeStartSelection
)

func (m DisplayMode) String() string {
	if m == ModeStartSelection {
		return "start selection"
	}
	return "idle"
}

// Splash layout in cells.
const (
	logoX      = 4
	logoY      = 2
	infoX      = 1
	infoY      = 10
	infoWidth  = maps.CapacityX - 2
	bankLineY  = 19
	versionY   = 20
	rangeX     = 20
	rangeY     = 8
	frameWidth = maps.CapacityX
	frameRows  = maps.CapacityY + HUDRows
)

// Splash is the title screen. In Idle it blinks the color scheme; a trigger
// key opens the range selection, which either starts a session or times out
// back to Idle.
type Splash struct {
	settings *Settings
	edges    core.EdgeDetector

	mode      DisplayMode
	visible   bool
	blink     time.Duration // Left until the next scheme toggle
	selection time.Duration // Left before the selection times out

	idleKeys   mapset.Set[core.Action]
	selectKeys mapset.Set[core.Action]

	PlayingStarted Signal[int]
}

// NewSplash creates an idle splash.
func NewSplash(settings *Settings) *Splash {
	s := &Splash{
		settings:   settings,
		idleKeys:   mapset.New[core.Action](),
		selectKeys: mapset.New[core.Action](),
	}
	s.idleKeys.Put(core.ActionConfirm)
	s.idleKeys.Put(core.ActionCancel)
	for d := 0; d <= 7; d++ {
		s.idleKeys.Put(core.DigitAction(d))
	}
	s.selectKeys.Put(core.ActionConfirm)
	for d := 0; d <= 9; d++ {
		s.selectKeys.Put(core.DigitAction(d))
	}
	s.resetTimers()
	return s
}

// Mode returns the current display mode.
func (s *Splash) Mode() DisplayMode { return s.mode }

// Visible reports whether the splash is shown.
func (s *Splash) Visible() bool { return s.visible }

// SetVisible shows or hides the splash. Becoming visible restarts the timers.
func (s *Splash) SetVisible(b bool) {
	if b && !s.visible {
		s.resetTimers()
		s.edges.Reset()
	}
	s.visible = b
}

func (s *Splash) resetTimers() {
	s.blink = s.settings.Units(s.settings.Config.Timing.SplashBlinkUnits)
	s.selection = 0
}

// Update processes one frame that lasted elapsed.
func (s *Splash) Update(in core.InputFrame, elapsed time.Duration) {
	if !s.visible {
		return
	}
	defer s.edges.Advance(in)

	if s.mode == ModeIdle {
		s.updateIdle(in, elapsed)
	} else {
		s.updateSelection(in, elapsed)
	}
}

func (s *Splash) updateIdle(in core.InputFrame, elapsed time.Duration) {
	if _, ok := s.edges.FirstPressed(in, s.idleKeys.Has); ok {
		s.mode = ModeStartSelection
		s.selection = s.settings.Units(s.settings.Config.Timing.SelectionUnits)
		return
	}

	s.blink -= elapsed
	if s.blink < 0 {
		s.settings.BackColor = s.settings.BackColor.Toggle()
		s.blink = s.settings.Units(s.settings.Config.Timing.SplashBlinkUnits)
	}
}

func (s *Splash) updateSelection(in core.InputFrame, elapsed time.Duration) {
	if a, ok := s.edges.FirstPressed(in, s.selectKeys.Has); ok {
		s.mode = ModeIdle
		rng := s.settings.Range
		if d, isDigit := a.Digit(); isDigit {
			rng = d
		}
		s.PlayingStarted.Emit(rng)
		return
	}

	s.selection -= elapsed
	if s.selection < 0 {
		s.mode = ModeIdle
	}
}

// Draw renders the current sub-screen.
func (s *Splash) Draw(c Canvas) {
	scheme := s.settings.BackColor
	c.Clear(scheme)
	if s.mode == ModeIdle {
		s.drawIdle(c, scheme)
	} else {
		s.drawSelection(c, scheme)
	}
}

func (s *Splash) drawIdle(c Canvas, scheme BackColor) {
	cat := s.settings.Catalog
	fg := scheme.Foreground()

	drawScores(c, s.settings, s.settings.LastScore)
	c.DrawSprite(SpriteLogo, scheme, logoX*CellW, logoY*CellH)

	y := infoY
	for _, key := range []string{i18n.InfoRetro, i18n.InfoPort, i18n.InfoKeys} {
		for _, line := range strings.Split(ansi.Wordwrap(cat.Get(key), infoWidth, ""), "\n") {
			c.DrawText(infoX*CellW, y*CellH, line, fg)
			y++
		}
	}

	c.DrawText(infoX*CellW, bankLineY*CellH, cat.Get(i18n.BankLine, s.settings.Bank().Name), fg)
	version := cat.Get(i18n.Version, s.settings.Version)
	c.DrawText((maps.CapacityX-1-ansi.StringWidth(version))*CellW, versionY*CellH, version, fg)
}

func (s *Splash) drawSelection(c Canvas, scheme BackColor) {
	for i := 0; i < frameWidth; i++ {
		for j := 0; j < frameRows; j++ {
			if i == 0 || i == frameWidth-1 || j == 0 || j == frameRows-1 {
				c.DrawSprite(SpriteStoneWall, scheme, i*CellW, j*CellH)
			}
		}
	}
	c.DrawSprite(SpriteYourRangeLabel, scheme, rangeX*CellW, rangeY*CellH)
}
