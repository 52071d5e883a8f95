package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/catnip-games/omas-adventure/internal/analytics"
	"github.com/catnip-games/omas-adventure/internal/core"
	"github.com/catnip-games/omas-adventure/internal/game"
	"github.com/catnip-games/omas-adventure/internal/platform/tui"
	"github.com/catnip-games/omas-adventure/internal/session"
	"github.com/catnip-games/omas-adventure/internal/storage"
)

var (
	flagConfig      string
	flagDifficulty  string
	flagNoAnalytics bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a session in the current terminal.

Controls:
  Left/Right, A/D  - Walk
  Up/W             - Jump
  Space            - Attack (each cat has her own)
  X/Tab            - Switch to the next unlocked cat
  Enter            - Confirm / advance screens
  Esc              - Back
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a screenshot to ~/.oma/screenshots

Difficulty presets:
  easy   - More lives and thinner enemy packs
  normal - The standard game
  hard   - Two lives and faster enemies
  fixed  - No round-to-round growth

Examples:
  oma play
  oma play --difficulty easy
  oma play --seed 12345
  oma play --config ./my-game.yaml
  oma play --no-analytics`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagNoAnalytics, "no-analytics", false, "Do not record gameplay events")
}

func runPlay(_ *cobra.Command, _ []string) {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game.SetConfigPath(flagConfig)
	game.SetDifficultyPreset(flagDifficulty)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	rec, spool := openRecorder()

	// A typed-nil store must not reach the interface field.
	var scores session.ScoreStore
	if store != nil {
		scores = store
	}
	sess := session.New(cfg, scores, rec)

	runErr := tui.Run(sess, store, cfg)

	if spool != nil {
		spool.Close()
	}
	if store != nil {
		store.Close() //nolint:errcheck // nothing useful to do on close failure
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openRecorder builds the analytics recorder for this process: a JSONL
// spool under ~/.oma, or a discard sink when disabled or unavailable.
// The second return value is non-nil only when there is a spool to close.
func openRecorder() (analytics.Recorder, *analytics.FileRecorder) {
	if flagNoAnalytics {
		return analytics.Discard{}, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return analytics.Discard{}, nil
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "oma"})
	spool, err := analytics.NewFileRecorder(filepath.Join(home, ".oma", "analytics.jsonl"), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open analytics spool: %v\n", err)
		return analytics.Discard{}, nil
	}
	return spool, spool
}
