package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/zigzag/internal/platform/tui"
	"github.com/vovakirdan/zigzag/internal/registry"
	"github.com/vovakirdan/zigzag/internal/zigzag"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode interactively",
	Long: `Start zigzag with a mode picker. After a run you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Left/Right   - Change difficulty
  Tab          - High scores
  Q            - Quit

Examples:
  zigzag menu
  zigzag menu --fps 30 --difficulty hard`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := configureGame(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	logger, closeLog := fileLogger()
	defer closeLog()

	var opts []tui.Option
	if logger != nil {
		opts = append(opts, tui.WithLogger(logger))
	}

	cfg := runtimeConfig(terminalSize())
	difficulty := flagDifficulty

	for {
		menuResult, err := tui.RunMenu(store, cfg, difficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		cfg = menuResult.Config
		difficulty = menuResult.Difficulty

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		if menuResult.GameID == "" {
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}
		if zg, ok := game.(*zigzag.Game); ok {
			zg.SetDifficulty(difficulty)
		}

		// Fresh path for every run unless --seed pins it
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		runOpts := append([]tui.Option{tui.WithDifficulty(difficulty)}, opts...)
		if err := tui.Run(game, store, cfg, runOpts...); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}

	if store != nil {
		store.Close()
	}
}
