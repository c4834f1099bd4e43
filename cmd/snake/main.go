// snake is a terminal snake arena with several front-ends, persistent high
// scores and an SSH server.
//
// Usage:
//
//	snake list                  - List available front-ends
//	snake play [frontend]       - Play (default front-end: tui)
//	snake serve                 - Start SSH server for remote play
//	snake scores [difficulty]   - Show high scores
//	snake rules                 - Print the effective arena rules
//
// Global flags:
//
//	--fps <rate>            - Frame rate of the driving loop (default: 60)
//	--seed <value>          - RNG seed for reproducible gameplay
//	--config <path>         - Arena rules YAML
//	--store sqlite|json     - Score store backend (default: sqlite)
//	--db <path>             - SQLite database path (default: ~/.snake/scores.db)
//	--scores-file <path>    - JSON high score file (default: ~/.snake/highscores.json)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import front-ends to register them
	_ "github.com/vovakirdan/snake-arena/internal/platform/raw"
	_ "github.com/vovakirdan/snake-arena/internal/platform/tui"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagStore      string
	flagDBPath     string
	flagScoresFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake Arena - a tick-driven snake game for your terminal",
	Long: `Snake Arena is a terminal snake game with four difficulties, timed food,
power-ups, obstacles and persistent high scores.

Available commands:
  list     - Show all available front-ends
  play     - Play in the terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  rules    - Print the effective arena rules

Examples:
  snake play
  snake play raw --difficulty hard
  snake serve --ssh :2222
  snake scores extreme`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate of the driving loop")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom arena rules YAML")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", storeSQLite, "Score store: sqlite or json")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagScoresFile, "scores-file", "~/.snake/highscores.json", "Path to JSON high score file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(rulesCmd)
}
