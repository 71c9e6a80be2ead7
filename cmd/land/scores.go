package main

import (
	"fmt"
	"os"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/land/internal/games/land"
	"github.com/vovakirdan/land/internal/platform/tui"
	"github.com/vovakirdan/land/internal/registry"
	"github.com/vovakirdan/land/internal/storage"
)

var (
	flagScoresBank  string
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresClear bool
)

var (
	colorTitle  = color.Style{color.FgGreen, color.OpBold}
	colorHeader = color.Style{color.FgGray}
	colorScore  = color.Style{color.FgYellow}
	colorBest   = color.Style{color.FgLightYellow, color.OpBold}
	colorSubtle = color.Style{color.FgDarkGray}
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show LAND high scores",
	Long: `Display the top LAND scores, optionally for a single map bank.

With --tui an interactive table opens instead; Tab switches between banks.
With --clear every recorded LAND score is deleted.

Examples:
  land scores
  land scores --bank classic --limit 20
  land scores --tui
  land scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresBank, "bank", "", "Only show scores of this map bank")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		return clearScores(store)
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, land.ID, registry.Title(land.ID), flagScoresBank, width, height)
	}

	var scores []storage.ScoreEntry
	if flagScoresBank == "" {
		scores, err = store.TopScores(land.ID, flagScoresLimit)
	} else {
		scores, err = store.TopBankScores(land.ID, flagScoresBank, flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	heading := "High Scores - " + registry.Title(land.ID)
	if flagScoresBank != "" {
		heading += " - " + flagScoresBank
	}
	colorTitle.Println(heading)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'land play' to set the first high score!")
		return nil
	}

	colorHeader.Printf("  %-4s  %-5s  %-5s  %-5s  %-12s  %s\n", "Rank", "Score", "Stage", "Range", "Bank", "Date")
	colorHeader.Printf("  %-4s  %-5s  %-5s  %-5s  %-12s  %s\n", "----", "-----", "-----", "-----", "----", "----")

	for i, entry := range scores {
		style := colorScore
		if i == 0 {
			style = colorBest
		}
		fmt.Printf("  %-4d  %s  %-5s  %-5d  %-12s  %s\n",
			i+1,
			style.Sprintf("%05d", entry.Score),
			fmt.Sprintf("%02d", entry.Stage),
			entry.Range,
			bankOrDash(entry.Bank),
			colorSubtle.Sprint(entry.CreatedAt.Format("2006-01-02 15:04")),
		)
	}

	stats, err := store.GetGameStats(land.ID)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	fmt.Println()
	fmt.Printf("Best: %s  Games: %d  Average: %.0f\n",
		colorBest.Sprintf("%05d", stats.HighScore), stats.GamesCount, stats.AvgScore)

	if flagScoresBank != "" {
		best, err := store.BestStage(land.ID, flagScoresBank)
		if err != nil {
			return fmt.Errorf("retrieving best stage: %w", err)
		}
		fmt.Printf("Furthest stage in %s: %02d\n", flagScoresBank, best)
	}
	return nil
}

func bankOrDash(bank string) string {
	if bank == "" {
		return "-"
	}
	return bank
}

func clearScores(store *storage.Store) error {
	stats, err := store.GetGameStats(land.ID)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	if err := store.ClearScores(land.ID); err != nil {
		return fmt.Errorf("clearing scores: %w", err)
	}
	fmt.Printf("Cleared %d %s scores.\n", stats.GamesCount, registry.Title(land.ID))
	return nil
}
