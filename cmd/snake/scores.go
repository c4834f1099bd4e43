package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/storage"
)

var (
	flagExport string
	flagReset  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show high scores",
	Long: `Display high scores. With the sqlite store and a difficulty, the top 10
episodes of that difficulty are listed; without one, per-difficulty statistics.

Examples:
  snake scores
  snake scores hard
  snake scores --store json
  snake scores --export highscores.json
  snake scores extreme --reset`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagExport, "export", "", "Write high scores to a JSON file")
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete stored scores (of the given difficulty, or all)")
}

func runScores(_ *cobra.Command, args []string) error {
	var difficulty *config.Difficulty
	if len(args) > 0 {
		d, err := config.ParseDifficulty(args[0])
		if err != nil {
			return err
		}
		difficulty = &d
	}

	k, err := openKeeper()
	if err != nil {
		return fmt.Errorf("opening score store: %w", err)
	}
	defer k.Close()

	switch {
	case flagReset:
		return resetScores(k, difficulty)
	case flagExport != "":
		return exportScores(k, flagExport)
	}

	if store, ok := k.(*storage.Store); ok {
		if difficulty != nil {
			return printHistory(store, *difficulty)
		}
		return printStats(store)
	}
	return printHighScores(k)
}

func resetScores(k keeper, difficulty *config.Difficulty) error {
	switch s := k.(type) {
	case *storage.Store:
		name := ""
		if difficulty != nil {
			name = difficulty.String()
		}
		if err := s.ClearScores(name); err != nil {
			return err
		}
	case jsonKeeper:
		if difficulty != nil {
			return errors.New("the json store can only reset every difficulty")
		}
		if err := s.Reset(); err != nil {
			return err
		}
	}
	fmt.Println("Scores cleared.")
	return nil
}

func exportScores(k keeper, path string) error {
	scores, err := k.HighScores()
	if err != nil {
		return err
	}
	if err := storage.WriteHighScores(path, scores); err != nil {
		return err
	}
	fmt.Printf("High scores written to %s\n", path)
	return nil
}

func printHighScores(k keeper) error {
	scores, err := k.HighScores()
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println("High Scores")
	fmt.Println()
	fmt.Printf("  %-8s  %s\n", "Level", "Best")
	fmt.Printf("  %-8s  %s\n", "-----", "----")
	for _, d := range config.AllDifficulties() {
		fmt.Printf("  %-8s  %d\n", d, scores[d.String()])
	}
	return nil
}

func printHistory(store *storage.Store, d config.Difficulty) error {
	scores, err := store.TopScores(d.String(), 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", d)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'snake play --difficulty %s' to set the first high score!\n", d)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %s\n", "Rank", "Score", "Length", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %s\n", "----", "-----", "------", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-8d  %-6d  %s\n", i+1, entry.Score, entry.Length, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printStats(store *storage.Store) error {
	stats, err := store.AllStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}

	fmt.Println("Statistics")
	fmt.Println()
	fmt.Printf("  %-8s  %-5s  %-5s  %-7s  %-7s  %s\n", "Level", "Games", "Best", "Average", "Longest", "Last played")
	fmt.Printf("  %-8s  %-5s  %-5s  %-7s  %-7s  %s\n", "-----", "-----", "----", "-------", "-------", "-----------")
	for _, d := range config.AllDifficulties() {
		st, ok := stats[d.String()]
		if !ok {
			fmt.Printf("  %-8s  %-5d  %-5s  %-7s  %-7s  %s\n", d, 0, "-", "-", "-", "never")
			continue
		}
		fmt.Printf("  %-8s  %-5d  %-5d  %-7.1f  %-7d  %s\n",
			d, st.GamesCount, st.HighScore, st.AvgScore, st.LongestRun, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
