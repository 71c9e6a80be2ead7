package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/land.yaml
var defaultLandYAML []byte

// DefaultLandConfig returns the default configuration.
func DefaultLandConfig() LandConfig {
	return LandConfig{
		Gameplay: LandGameplay{
			Attempts:    20,
			ChestBonus:  13,
			SkipPenalty: 100,
			ScoreLimit:  99999,
		},
		Timing: LandTiming{
			UnitMs:            100,
			SplashBlinkUnits:  20,
			SelectionUnits:    40,
			FallEveryTicks:    6,
			DevilEveryTicks:   14,
			BulletEveryTicks:  2,
			DefeatTicks:       45, // 0.75s at 60fps
			BrickRegrowTicks:  300,
			BiomassEveryTicks: 20,
		},
		Range: RangeConfig{
			Default:       1,
			StepTicks:     1,
			MinDevilTicks: 4,
		},
	}
}

// TimeUnit returns the duration of one time unit.
func (c LandConfig) TimeUnit() time.Duration {
	if c.Timing.UnitMs <= 0 {
		return 100 * time.Millisecond
	}
	return time.Duration(c.Timing.UnitMs) * time.Millisecond
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultLandYAML
}
