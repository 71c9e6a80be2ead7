package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/land/internal/config"
	"github.com/vovakirdan/land/internal/games/land"
	"github.com/vovakirdan/land/internal/storage"
)

var banksCmd = &cobra.Command{
	Use:   "banks",
	Short: "List the map banks",
	Long: `List the map banks that LAND can play, with the furthest stage
reached in each one.

Banks come from --maps, then maps.dir of the config file, then the
built-in set. Press F10 on the title screen to switch banks.

Examples:
  land banks
  land banks --maps ./my-banks`,
	Args: cobra.NoArgs,
	RunE: runBanks,
}

func runBanks(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadLand(flagConfig)
	if err != nil {
		return err
	}
	lib, err := loadLibrary(cfg)
	if err != nil {
		return err
	}

	// Progress is optional here.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		store = nil
	} else {
		defer store.Close()
	}

	colorTitle.Println("Map banks:")
	fmt.Println()

	var lines []string
	width := 0
	for i := 0; i < lib.Len(); i++ {
		bank, err := lib.Bank(i)
		if err != nil {
			return err
		}
		id := colorScore.Sprintf("%-12s", bank.ID)
		line := fmt.Sprintf("  %s %-24s %2d stages", id, bank.Name, lib.StageCount(i))
		if store != nil {
			if best, err := store.BestStage(land.ID, bank.ID); err == nil && best > 0 {
				line += colorSubtle.Sprintf("  best %02d", best)
			}
		}
		lines = append(lines, line)
		width = max(width, utf8.RuneCountInString(color.ClearCode(line)))
	}

	for _, line := range lines {
		fmt.Println(line)
	}
	fmt.Println(strings.Repeat("-", width))
	fmt.Println("Start with: land play --bank <id>")
	return nil
}
