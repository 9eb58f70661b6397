// dodgerush is a terminal arcade game: steer left and right to dodge falling blocks.
//
// Usage:
//
//	dodgerush list              - List available variants
//	dodgerush play [variant]    - Play a round (default: dodge)
//	dodgerush serve             - Start SSH server for remote play
//	dodgerush scores [variant]  - Show high scores for a variant
//	dodgerush config            - Print the default configuration
//
// Global flags:
//
//	--tick-rate <hz>  - Fixed simulation rate (default: 120)
//	--fps <rate>      - Render rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--db <path>       - Set database path (default: ~/.dodgerush/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodge-rush/internal/core"
)

var (
	// Global flags
	flagTickRate int
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

// logger reports warnings from the CLI. It writes to stderr so it never
// mixes with the game screen.
var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "dodgerush"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodgerush",
	Short: "Dodge Rush - dodge falling blocks in your terminal",
	Long: `Dodge Rush is a terminal arcade game. Steer left and right to dodge
falling blocks, pick up power-ups and survive as long as you can.

Available commands:
  list     - Show all game variants
  play     - Play a round
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the default configuration

Examples:
  dodgerush play
  dodgerush play dodge_classic --difficulty hard
  dodgerush serve --addr :2222
  dodgerush scores --interactive`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	defaults := core.DefaultConfig()

	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagTickRate, "tick-rate", defaults.TickRate, "Simulation ticks per second")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", defaults.FrameRate, "Rendered frames per second")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dodgerush/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
