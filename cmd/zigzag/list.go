package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/zigzag/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes",
	Long:  `Shows the registered game modes with their best score and number of stored runs.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No game modes registered.")
		return
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("MODE", "TITLE", "BEST", "RUNS")
	for _, g := range games {
		best, runs := "-", "0"
		if store != nil {
			if stats, err := store.GetGameStats(g.ID); err == nil && stats.GamesCount > 0 {
				best, runs = fmt.Sprint(stats.HighScore), fmt.Sprint(stats.GamesCount)
			}
		}
		t.Row(g.ID, g.Title, best, runs)
	}
	fmt.Println(t)

	fmt.Println()
	fmt.Println("Run 'zigzag play [mode]' to start.")
}
