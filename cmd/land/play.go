package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/land/internal/core"
	"github.com/vovakirdan/land/internal/games/land"
	"github.com/vovakirdan/land/internal/platform/tui"
	"github.com/vovakirdan/land/internal/storage"
)

var (
	flagDifficulty string
	flagBank       string
	flagHelpRow    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play LAND in this terminal",
	Long: `Start LAND on the title screen.

Title screen:
  Enter/Space/Esc/0-7  - Open the range selection
  0-9                  - Pick a range and start (Enter keeps the current one)
  F10                  - Next map bank
  Q                    - Quit

In game:
  Arrows/WASD  - Move and climb
  F/X          - Fire
  R            - Retry the stage (costs an attempt)
  ;            - Skip the stage (costs 100 points)
  Q            - Back to the title screen
  Ctrl+S       - Screenshot to ~/.land/screenshots
  Ctrl+C       - Quit

Difficulty options set the default range:
  easy   - range 1
  normal - range 4
  hard   - range 7

Examples:
  land play
  land play --bank caverns
  land play --difficulty hard --lang ru
  land play --maps ./my-banks`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagBank, "bank", "", "Initial map bank ID")
	playCmd.Flags().BoolVar(&flagHelpRow, "help-row", false, "Show the key help below the game")
}

func runPlay(_ *cobra.Command, _ []string) error {
	// Logs would corrupt the alternate screen, so only --log-file gets them.
	logger, closeLog, err := newLogger("land", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	opts, err := gameOptions(flagDifficulty, flagBank, logger)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	if width < land.MinScreenW || height < land.MinScreenH {
		fmt.Fprintf(os.Stderr, "Warning: LAND needs a %dx%d terminal, this one is %dx%d\n",
			land.MinScreenW, land.MinScreenH, width, height)
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(land.New(opts), cfg, tui.ModelOptions{
		Store:    store,
		Logger:   logger,
		ShowHelp: flagHelpRow,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
