// Package config provides YAML-based configuration loading and difficulty
// presets for LAND.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned for configs with out-of-range values.
var ErrInvalidConfig = errors.New("config: invalid value")

// LandConfig contains all configuration for the game.
type LandConfig struct {
	Gameplay LandGameplay `yaml:"gameplay"`
	Timing   LandTiming   `yaml:"timing"`
	Maps     LandMaps     `yaml:"maps"`
	Range    RangeConfig  `yaml:"range"`
}

// LandGameplay defines scoring and attempt rules.
type LandGameplay struct {
	Attempts    int `yaml:"attempts"`     // Attempts per session
	ChestBonus  int `yaml:"chest_bonus"`  // Points per chest
	SkipPenalty int `yaml:"skip_penalty"` // Points lost when skipping a stage
	ScoreLimit  int `yaml:"score_limit"`  // Score wraps to 0 above this
}

// LandTiming defines screen timers and actor speeds.
// Splash timers are in time units; actor speeds are in simulation ticks.
type LandTiming struct {
	UnitMs            int `yaml:"unit_ms"`            // Length of one time unit
	SplashBlinkUnits  int `yaml:"splash_blink_units"` // Background toggle period on the splash
	SelectionUnits    int `yaml:"selection_units"`    // Range selection timeout
	FallEveryTicks    int `yaml:"fall_every_ticks"`
	DevilEveryTicks   int `yaml:"devil_every_ticks"` // Devil step period at range 0
	BulletEveryTicks  int `yaml:"bullet_every_ticks"`
	DefeatTicks       int `yaml:"defeat_ticks"` // Defeat animation before the life is lost
	BrickRegrowTicks  int `yaml:"brick_regrow_ticks"`
	BiomassEveryTicks int `yaml:"biomass_every_ticks"` // Biomass animation period
}

// LandMaps selects the map banks.
type LandMaps struct {
	Bank string `yaml:"bank"` // Initial bank ID; empty means the first bank
	Dir  string `yaml:"dir"`  // Directory of bank files; empty means built-in banks
}

// RangeConfig defines how the chosen range speeds up the devils.
type RangeConfig struct {
	Default       int `yaml:"default"`         // Range used when the player just confirms
	StepTicks     int `yaml:"step_ticks"`      // Devil period reduction per range step
	MinDevilTicks int `yaml:"min_devil_ticks"` // Fastest devil period
}

// Validate reports every field whose value the game cannot run with.
// Periods and counts must be positive; bonuses and penalties not negative.
func (c LandConfig) Validate() error {
	var errs []error
	check := func(ok bool, field string, v int) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s = %d", ErrInvalidConfig, field, v))
		}
	}

	g, t, r := c.Gameplay, c.Timing, c.Range
	check(g.Attempts > 0, "gameplay.attempts", g.Attempts)
	check(g.ChestBonus >= 0, "gameplay.chest_bonus", g.ChestBonus)
	check(g.SkipPenalty >= 0, "gameplay.skip_penalty", g.SkipPenalty)
	check(g.ScoreLimit > 0, "gameplay.score_limit", g.ScoreLimit)

	check(t.UnitMs > 0, "timing.unit_ms", t.UnitMs)
	check(t.SplashBlinkUnits > 0, "timing.splash_blink_units", t.SplashBlinkUnits)
	check(t.SelectionUnits > 0, "timing.selection_units", t.SelectionUnits)
	check(t.FallEveryTicks > 0, "timing.fall_every_ticks", t.FallEveryTicks)
	check(t.DevilEveryTicks > 0, "timing.devil_every_ticks", t.DevilEveryTicks)
	check(t.BulletEveryTicks > 0, "timing.bullet_every_ticks", t.BulletEveryTicks)
	check(t.DefeatTicks > 0, "timing.defeat_ticks", t.DefeatTicks)
	check(t.BrickRegrowTicks > 0, "timing.brick_regrow_ticks", t.BrickRegrowTicks)
	check(t.BiomassEveryTicks > 0, "timing.biomass_every_ticks", t.BiomassEveryTicks)

	check(r.Default >= 0 && r.Default <= 9, "range.default", r.Default)
	check(r.StepTicks >= 0, "range.step_ticks", r.StepTicks)
	check(r.MinDevilTicks > 0, "range.min_devil_ticks", r.MinDevilTicks)

	return errors.Join(errs...)
}

// DevilTicks returns the devil step period for a range.
func (c LandConfig) DevilTicks(rng int) int {
	ticks := c.Timing.DevilEveryTicks - rng*c.Range.StepTicks
	if ticks < c.Range.MinDevilTicks {
		ticks = c.Range.MinDevilTicks
	}
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset returns the preset with the given name.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, true
	}
	return "", false
}

// RangeForPreset returns the default range for a difficulty preset.
func RangeForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 1
	case DifficultyNormal:
		return 4
	case DifficultyHard:
		return 7
	default:
		return 1
	}
}

// ApplyPreset sets the default range from a difficulty preset.
func ApplyPreset(cfg *LandConfig, preset DifficultyPreset) {
	cfg.Range.Default = RangeForPreset(preset)
}
