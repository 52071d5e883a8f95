package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/catnip-games/omas-adventure/internal/platform/tui"
	"github.com/catnip-games/omas-adventure/internal/storage"
)

var flagScoresTUI bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high-score table",
	Long: `Display the saved top-10 runs with names, rounds, and dates.

Examples:
  oma scores
  oma scores --tui
  oma scores --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse the table interactively")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close() //nolint:errcheck

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing scores: %v\n", err)
			os.Exit(1)
		}
		return
	}

	entries := store.Top()

	fmt.Println("High Scores - Oma's Adventure")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'oma play' and get the cats to bed to set the first one!")
		return
	}

	fmt.Printf("  %-4s  %-15s  %-8s  %-5s  %s\n", "Rank", "Name", "Score", "Round", "Date")
	fmt.Printf("  %-4s  %-15s  %-8s  %-5s  %s\n", "----", "----", "-----", "-----", "----")
	for i, e := range entries {
		fmt.Printf("  %-4d  %-15s  %-8d  %-5d  %s\n",
			i+1, e.Name, e.Score, e.Round, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, statsErr := store.Stats(); statsErr == nil && stats.Plays > 0 {
		fmt.Println()
		fmt.Printf("Saved runs: %d   Best: %d (round %d)   Average: %.0f\n",
			stats.Plays, stats.BestScore, stats.BestRound, stats.AvgScore)
	}
}
