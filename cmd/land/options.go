package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/land/internal/config"
	"github.com/vovakirdan/land/internal/games/land"
	"github.com/vovakirdan/land/internal/i18n"
	"github.com/vovakirdan/land/internal/maps"
)

// gameOptions resolves the global flags into game options shared by every
// instance. Banks and the catalog are loaded once.
func gameOptions(preset, bank string, logger *log.Logger) (land.Options, error) {
	opts := land.Options{
		ConfigPath: flagConfig,
		BankID:     bank,
		Version:    version,
		Logger:     logger,
	}

	cfg, err := config.LoadLand(flagConfig)
	if err != nil {
		return opts, err
	}
	opts.Config = &cfg

	if preset != "" {
		p, ok := config.ParsePreset(preset)
		if !ok {
			return opts, fmt.Errorf("unknown difficulty %q (use easy, normal or hard)", preset)
		}
		opts.Preset = p
	}

	lib, err := loadLibrary(cfg)
	if err != nil {
		return opts, err
	}
	opts.Library = lib
	if bank != "" {
		if _, ok := lib.IndexOf(bank); !ok {
			return opts, fmt.Errorf("%w: %q", maps.ErrUnknownBank, bank)
		}
	}

	lang := flagLang
	if lang == "" {
		lang = os.Getenv("LANG")
	}
	cat, err := i18n.New(lang)
	if err != nil {
		if flagLang != "" {
			return opts, err
		}
		cat = i18n.Default()
	}
	opts.Catalog = cat

	return opts, nil
}

// loadLibrary loads --maps, then the configured maps directory, then the
// built-in banks.
func loadLibrary(cfg config.LandConfig) (*maps.Library, error) {
	dir := flagMapsDir
	if dir == "" {
		dir = cfg.Maps.Dir
	}
	return maps.Load(dir)
}
