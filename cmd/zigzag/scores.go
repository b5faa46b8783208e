package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/zigzag/internal/platform/tui"
	"github.com/vovakirdan/zigzag/internal/registry"
	"github.com/vovakirdan/zigzag/internal/storage"
)

var (
	flagScoresPlain  bool
	flagScoresRecent bool
	flagScoresClear  bool
	flagScoresLimit  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display high scores. On a terminal this opens the interactive
scoreboard; otherwise (or with --plain) it prints the top runs for one mode.

Examples:
  zigzag scores
  zigzag scores zigzag_autopilot --plain
  zigzag scores --recent --limit 5
  zigzag scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print a plain table instead of the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "List the latest runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all runs for the mode")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to list")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := "zigzag"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'zigzag list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all runs for %s.\n", gameID)
		return
	}

	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	if interactive && !flagScoresPlain && !flagScoresRecent {
		w, h := terminalSize()
		if _, err := tui.RunScoreboard(store, w, h); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printScores(store, gameID)
}

func printScores(store *storage.Store, gameID string) {
	var (
		runs  []storage.Run
		err   error
		title = "High Scores"
	)
	if flagScoresRecent {
		title = "Recent Runs"
		runs, err = store.RecentRuns(gameID, flagScoresLimit)
	} else {
		runs, err = store.TopScores(gameID, flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s - %s\n", title, gameID)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'zigzag play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-8s  %-10s  %-8s  %s\n", "Rank", "Score", "Ticks", "Seed", "Level", "Date")
	fmt.Printf("  %-4s  %-6s  %-8s  %-10s  %-8s  %s\n", "----", "-----", "-----", "----", "-----", "----")
	for i, r := range runs {
		level := r.Difficulty
		if level == "" {
			level = "-"
		}
		fmt.Printf("  %-4d  %-6d  %-8d  %-10d  %-8s  %s\n",
			i+1, r.Score, r.Ticks, r.Seed, level, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d  Runs: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
}
