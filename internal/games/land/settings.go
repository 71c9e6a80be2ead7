package land

import (
	"time"

	"github.com/vovakirdan/land/internal/config"
	"github.com/vovakirdan/land/internal/core"
	"github.com/vovakirdan/land/internal/i18n"
	"github.com/vovakirdan/land/internal/maps"
)

// BackColor is the color scheme of the whole screen.
type BackColor int

const (
	BackBlack BackColor = iota
	BackWhite
)

// Toggle returns the other scheme.
func (b BackColor) Toggle() BackColor {
	if b == BackWhite {
		return BackBlack
	}
	return BackWhite
}

// Background returns the screen background color of the scheme.
func (b BackColor) Background() core.Color {
	if b == BackWhite {
		return core.ColorBrightWhite
	}
	return core.ColorBlack
}

// Foreground returns the text color of the scheme.
func (b BackColor) Foreground() core.Color {
	if b == BackWhite {
		return core.ColorBlack
	}
	return core.ColorBrightWhite
}

// Settings is the context shared by the splash, the room and the host.
//
// Only the splash toggles BackColor. Only the host changes MapBank, Range,
// HighScore and LastScore.
type Settings struct {
	BackColor BackColor
	MapBank   int
	TimeUnit  time.Duration // Splash timers count in these units
	TickRate  int
	Range     int
	Version   string
	HighScore int
	LastScore int // Score of the last finished session, shown on the splash

	Config  config.LandConfig
	Library *maps.Library
	Catalog *i18n.Catalog
}

// Units converts a number of time units to a duration.
func (s *Settings) Units(n int) time.Duration {
	return time.Duration(n) * s.TimeUnit
}

// FrameTime returns the duration of one simulation tick.
func (s *Settings) FrameTime() time.Duration {
	if s.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(s.TickRate)
}

// Bank returns the active map bank.
func (s *Settings) Bank() maps.Bank {
	b, _ := s.Library.Bank(s.MapBank)
	return b
}

// NextBank selects the following bank, wrapping to the first.
func (s *Settings) NextBank() {
	if n := s.Library.Len(); n > 0 {
		s.MapBank = (s.MapBank + 1) % n
	}
}
