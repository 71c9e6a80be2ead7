// Package land implements LAND, a retro platform game: the hero collects
// the chests of each stage while two devils chase it.
//
// The host Game switches between two controllers sharing one Settings
// context: the Splash (title screen and range selection) and the Room
// (the stage being played).
package land

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/land/internal/config"
	"github.com/vovakirdan/land/internal/core"
	"github.com/vovakirdan/land/internal/i18n"
	"github.com/vovakirdan/land/internal/maps"
	"github.com/vovakirdan/land/internal/registry"
)

// ID is the registry and score storage identifier of the game.
const ID = "land"

// Minimum screen size: the stage grid plus the HUD rows.
const (
	MinScreenW = maps.CapacityX
	MinScreenH = maps.CapacityY + HUDRows
)

func init() {
	registry.Register(ID, func() registry.Game { return New(Options{}) })
}

// Options customizes a game instance. Zero values select the defaults.
type Options struct {
	ConfigPath string                  // Config file; empty uses the search order
	Config     *config.LandConfig      // Preloaded config, wins over ConfigPath
	Preset     config.DifficultyPreset // Overrides the configured default range
	Library    *maps.Library           // Preloaded banks, wins over the config maps dir
	BankID     string                  // Initial bank, wins over the config
	Lang       string                  // Catalog language
	Catalog    *i18n.Catalog           // Preloaded catalog, wins over Lang
	Version    string
	Logger     *log.Logger
}

// Game is the LAND host: it owns the settings, routes frames to the splash
// or the room and reports finished sessions.
type Game struct {
	opts    Options
	logger  *log.Logger
	runtime core.RuntimeConfig

	settings *Settings
	sprites  *SpriteSet
	splash   *Splash
	room     *Room
	edges    core.EdgeDetector

	tickCount      int
	highScore      int
	gameOver       bool
	finished       *core.SessionResult
	screenTooSmall bool
}

// New creates a game with the given options.
func New(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = discardLogger()
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}
	return &Game{opts: opts, logger: logger}
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return "LAND" }

// Reset builds the settings and both controllers and shows the splash.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.screenTooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH
	g.tickCount = 0
	g.gameOver = false
	g.finished = nil
	g.edges.Reset()

	cfg := g.loadConfig()
	g.settings = &Settings{
		BackColor: BackBlack,
		TimeUnit:  cfg.TimeUnit(),
		TickRate:  runtime.TickRate,
		Range:     cfg.Range.Default,
		Version:   g.opts.Version,
		HighScore: g.highScore,
		Config:    cfg,
		Library:   g.loadLibrary(cfg),
		Catalog:   g.loadCatalog(),
	}
	g.settings.MapBank = g.initialBank(cfg)
	g.sprites = NewSpriteSet(g.settings.Catalog)

	g.splash = NewSplash(g.settings)
	g.room = NewRoom(g.settings, g.logger)
	g.splash.PlayingStarted.Connect(g.onPlayingStarted)
	g.room.PlayingFinished.Connect(func(Event) { g.onPlayingFinished() })

	g.room.SetEnabled(false)
	g.splash.SetVisible(true)
}

func (g *Game) loadConfig() config.LandConfig {
	var cfg config.LandConfig
	if g.opts.Config != nil {
		cfg = *g.opts.Config
	} else {
		loaded, err := config.LoadLand(g.opts.ConfigPath)
		if err != nil {
			g.logger.Warn("using default config", "err", err)
			loaded = config.DefaultLandConfig()
		}
		cfg = loaded
	}
	if g.opts.Preset != "" {
		config.ApplyPreset(&cfg, g.opts.Preset)
	}
	return cfg
}

func (g *Game) loadLibrary(cfg config.LandConfig) *maps.Library {
	if g.opts.Library != nil {
		return g.opts.Library
	}
	lib, err := maps.Load(cfg.Maps.Dir)
	if err == nil {
		return lib
	}
	g.logger.Warn("using built-in map banks", "dir", cfg.Maps.Dir, "err", err)
	lib, err = maps.LoadDefault()
	if err != nil {
		panic(fmt.Sprintf("land: built-in map banks: %v", err))
	}
	return lib
}

func (g *Game) loadCatalog() *i18n.Catalog {
	if g.opts.Catalog != nil {
		return g.opts.Catalog
	}
	cat, err := i18n.New(g.opts.Lang)
	if err != nil {
		g.logger.Warn("using default language", "err", err)
		return i18n.Default()
	}
	return cat
}

func (g *Game) initialBank(cfg config.LandConfig) int {
	id := g.opts.BankID
	if id == "" {
		id = cfg.Maps.Bank
	}
	if id == "" {
		return 0
	}
	if i, ok := g.settings.Library.IndexOf(id); ok {
		return i
	}
	g.logger.Warn("unknown map bank", "bank", id)
	return 0
}

// SetHighScore sets the best score shown in the HUD.
func (g *Game) SetHighScore(score int) {
	g.highScore = score
	if g.settings != nil {
		g.settings.HighScore = score
	}
}

// Resize records a new screen size. A running session is kept; drawing is
// suspended while the screen is too small.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW, g.runtime.ScreenH = width, height
	g.screenTooSmall = width < MinScreenW || height < MinScreenH
}

// Settings returns the shared settings.
func (g *Game) Settings() *Settings { return g.settings }

// Playing reports whether a session is running.
func (g *Game) Playing() bool { return g.room != nil && g.room.Enabled() }

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.finished = nil
	if g.screenTooSmall || g.gameOver {
		return core.StepResult{State: g.State()}
	}
	g.tickCount++

	if g.room.Enabled() {
		g.room.Update(in)
	} else {
		g.updateSplash(in)
	}
	g.edges.Advance(in)

	return core.StepResult{State: g.State(), Finished: g.finished}
}

func (g *Game) updateSplash(in core.InputFrame) {
	switch {
	case g.edges.Pressed(in, core.ActionQuit):
		g.gameOver = true
		return
	case g.edges.Pressed(in, core.ActionNextBank):
		g.settings.NextBank()
		g.logger.Debug("map bank changed", "bank", g.settings.Bank().ID)
	}
	g.splash.Update(in, g.settings.FrameTime())
}

func (g *Game) onPlayingStarted(rng int) {
	g.settings.Range = core.Clamp(rng, 0, 9)
	g.room.Reset()
	g.room.SetEnabled(true)
	g.splash.SetVisible(false)
	g.logger.Debug("playing started", "range", g.settings.Range, "bank", g.settings.Bank().ID)
}

func (g *Game) onPlayingFinished() {
	result := core.SessionResult{
		Score:   g.room.Score(),
		Stage:   g.room.Stage(),
		Variant: g.settings.Bank().ID,
		Range:   g.settings.Range,
	}
	g.finished = &result
	g.settings.LastScore = result.Score
	if result.Score > g.settings.HighScore {
		g.SetHighScore(result.Score)
	}

	g.room.SetEnabled(false)
	g.splash.SetVisible(true)
	g.logger.Debug("session finished", "score", result.Score, "stage", result.Stage, "bank", result.Variant)
}

// Render draws the active controller.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH)
		w := max(len(msg), len(hint)) + 4
		dst.DrawBox(core.NewRect((dst.Width()-w)/2, dst.Height()/2-2, w, 5))
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	canvas := NewScreenCanvas(dst, g.sprites)
	if g.room.Enabled() {
		g.room.Draw(canvas)
	} else {
		g.splash.Draw(canvas)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	switch {
	case g.room != nil && g.room.Enabled():
		score = g.room.Score()
	case g.settings != nil:
		score = g.settings.LastScore
	}
	return core.GameState{Score: score, GameOver: g.gameOver}
}
