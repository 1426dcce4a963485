package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-battle/internal/storage"
)

var (
	flagScoresRecent bool
	flagScoresPlayer string
	flagScoresLimit  int
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best runs, the most recent runs or one pilot's runs,
followed by overall statistics.

Examples:
  skybattle scores
  skybattle scores --recent
  skybattle scores --player alice --limit 5
  skybattle scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the most recent runs instead of the best")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Show runs of one pilot")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded run")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(); err != nil {
			return fmt.Errorf("clearing runs: %w", err)
		}
		fmt.Println("All runs deleted.")
		return nil
	}

	var (
		runs  []storage.Run
		title string
	)
	switch {
	case flagScoresPlayer != "":
		title = "Runs - " + flagScoresPlayer
		runs, err = store.PlayerRuns(flagScoresPlayer, flagScoresLimit)
	case flagScoresRecent:
		title = "Recent Runs"
		runs, err = store.RecentRuns(flagScoresLimit)
	default:
		title = "High Scores - Sky Battle"
		runs, err = store.TopRuns(flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'skybattle play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-6s  %-6s  %-10s  %-8s  %s\n", "Rank", "Pilot", "Score", "Level", "Result", "Mode", "Date")
	fmt.Printf("  %-4s  %-12s  %-6s  %-6s  %-10s  %-8s  %s\n", "----", "-----", "-----", "-----", "------", "----", "----")

	for i, r := range runs {
		result := "shot down"
		if r.Won {
			result = "victory"
		}
		fmt.Printf("  %-4d  %-12s  %-6d  %-6s  %-10s  %-8s  %s\n",
			i+1, truncate(r.Player, 12), r.Score, r.Reached, result, r.Difficulty,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetStats()
	if err != nil {
		return nil
	}
	fmt.Println()
	fmt.Printf("Runs: %d   Victories: %d   Best: %d   Average: %.1f\n",
		stats.Runs, stats.Victories, stats.HighScore, stats.AvgScore)
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
