// land is the LAND retro platform game for the terminal.
//
// Usage:
//
//	land play            - Play locally
//	land serve           - Start SSH server for remote play
//	land scores          - Show high scores
//	land banks           - List map banks
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--db <path>         - Set database path (default: ~/.land/scores.db)
//	--config <path>     - Game config YAML
//	--maps <dir>        - Directory of map bank YAML files
//	--lang <code>       - Interface language (en, ru)
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/land/internal/games/land"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagConfig   string
	flagMapsDir  string
	flagLang     string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "land",
	Short: "LAND - a retro platform game for your terminal",
	Long: `LAND is a retrospective of the 1986 PDP-11 game. Collect every chest
of a stage while two devils chase you.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  banks    - List the map banks

Examples:
  land play
  land play --bank caverns --difficulty hard
  land serve --ssh :2222
  land scores --bank classic`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.land/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagMapsDir, "maps", "", "Directory with map bank YAML files (default: built-in banks)")
	rootCmd.PersistentFlags().StringVar(&flagLang, "lang", "", "Interface language (default: $LANG, then en)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(banksCmd)
}
