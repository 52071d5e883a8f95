// oma is Oma's Adventure: a side-scrolling platformer about herding
// three cats across the house to their bed, played in the terminal.
//
// Usage:
//
//	oma                 - Play the game (same as 'oma play')
//	oma play            - Play the game
//	oma scores          - Show the high-score table
//	oma serve           - Serve the game over SSH
//
// Global flags:
//
//	--fps <rate>    - Set simulation tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs (default: new seed per run)
//	--db <path>     - Set scores database path (default: ~/.oma/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "oma",
	Short: "Oma's Adventure - a cat platformer in your terminal",
	Long: `Oma's Adventure is a terminal platformer. Guide Oma's cats across
procedurally furnished rooms to the bed at the end of each round,
switching between Shoogie, Florence, and Sue as they join the run.

Available commands:
  play     - Play the game (default when no command is given)
  scores   - View the high-score table
  serve    - Serve the game over SSH

Examples:
  oma
  oma play --difficulty easy
  oma play --seed 12345
  oma scores --tui
  oma serve --ssh :2222`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Simulation tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 rolls a new seed per run)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.oma/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
