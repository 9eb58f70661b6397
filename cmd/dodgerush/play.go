package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dodge-rush/internal/config"
	"github.com/vovakirdan/dodge-rush/internal/core"
	"github.com/vovakirdan/dodge-rush/internal/games/dodge"
	"github.com/vovakirdan/dodge-rush/internal/platform/tui"
	"github.com/vovakirdan/dodge-rush/internal/registry"
	"github.com/vovakirdan/dodge-rush/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a round",
	Long: `Start Dodge Rush. The default variant is "dodge"; "dodge_classic"
plays without power-ups.

Controls:
  Left/A Right/D  - Steer
  Space/Enter     - Start
  P               - Pause
  R               - Restart
  Esc/M           - Back to menu
  Ctrl+S          - Screenshot
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Slower start and gentler ramp
  normal - Config values as written
  hard   - Faster start and steeper ramp
  fixed  - No progression, stays at the starting speed

Examples:
  dodgerush play
  dodgerush play dodge_classic
  dodgerush play --difficulty hard
  dodgerush play --config ./my-dodge.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := dodge.IDDodge
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'dodgerush list' to see available variants.")
		os.Exit(1)
	}

	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		logger.Warn("unknown difficulty, using config values", "difficulty", flagDifficulty)
	}
	if err := checkConfigPath(flagConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	dodge.SetConfigPath(flagConfig)
	dodge.SetDifficultyPreset(flagDifficulty)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		GameID: gameID,
		Runtime: core.RuntimeConfig{
			ScreenW:   width,
			ScreenH:   height,
			TickRate:  flagTickRate,
			FrameRate: flagFPS,
			Seed:      flagSeed,
		},
	}

	// Open score storage; the game still works without it
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, keeping best score in a file", "error", err)
		opts.Best = fileBest(gameID)
	} else {
		opts.Store = store
		opts.Best = storage.NewBestKeeper(store, gameID, logger.WithPrefix("best"))
	}

	runErr := tui.Run(opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// checkConfigPath reports whether an explicit --config file loads.
// The game itself falls back to defaults, so a bad path is caught here.
func checkConfigPath(path string) error {
	if path == "" {
		return nil
	}
	_, err := config.Load(path)
	return err
}

// fileBest returns the single-value best store used without a database.
// A nil result keeps the best score in memory.
func fileBest(gameID string) core.BestStore {
	path, err := storage.ExpandHome("~/.dodgerush/best_" + gameID)
	if err != nil {
		logger.Warn("best score will not persist", "error", err)
		return nil
	}
	return storage.NewFileBest(path)
}
