package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/candy-match/internal/games/candy"
	"github.com/vovakirdan/candy-match/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top scores, the best result on each level and overall
stats.

Examples:
  candymatch scores
  candymatch scores --limit 20`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of top scores to show")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	scores, err := store.TopScores(candy.GameID, flagScoresLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
	bests, err := store.BestLevelScores(candy.GameID)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving level results: %v\n", err)
		os.Exit(1)
	}
	stats, err := store.GetGameStats(candy.GameID)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	fmt.Println("High Scores - Sweet Candy Match")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'candymatch play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "----", "-----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %-5d  %s\n", i+1, entry.Score, entry.Level, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if len(bests) > 0 {
		fmt.Println()
		fmt.Println("By level:")
		fmt.Printf("  %-5s  %-8s  %-5s  %-4s  %s\n", "Level", "Best", "Plays", "Wins", "Combo")
		for _, b := range bests {
			fmt.Printf("  %-5d  %-8d  %-5d  %-4d  x%d\n", b.Level, b.BestScore, b.Plays, b.Wins, b.BestCombo)
		}
	}

	fmt.Println()
	fmt.Printf("Levels played: %d  Won: %d  Best: %d  Average: %.0f\n",
		stats.Plays, stats.Wins, stats.HighScore, stats.AvgScore)
}
