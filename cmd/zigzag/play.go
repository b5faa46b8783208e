package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/zigzag/internal/config"
	"github.com/vovakirdan/zigzag/internal/platform/tui"
	"github.com/vovakirdan/zigzag/internal/registry"
	"github.com/vovakirdan/zigzag/internal/storage"
	"github.com/vovakirdan/zigzag/internal/zigzag"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a run",
	Long: `Start a run. The mode defaults to "zigzag"; "zigzag_autopilot" lets the
bot steer while you watch.

Controls:
  Space/Enter  - Start, then flip direction
  P/Esc        - Pause
  R            - Restart (after game over)
  B            - Back (from start, pause or game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at the base speed, speeds up with score
  normal - Start at 30% difficulty, speeds up with score
  hard   - Start at 70% difficulty with a tighter edge
  fixed  - No progression, stays at config's initial level

Examples:
  zigzag play
  zigzag play zigzag_autopilot
  zigzag play --difficulty hard
  zigzag play --config ./my-zigzag.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd, simCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	}
}

// configureGame checks --config and --difficulty and hands them to the
// game package before any game is created.
func configureGame() error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (expected easy, normal, hard or fixed)", flagDifficulty)
	}
	if _, err := config.LoadZigzag(flagConfig); err != nil {
		return err
	}
	zigzag.SetConfigPath(flagConfig)
	zigzag.SetDifficultyPreset(flagDifficulty)
	return nil
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// openStore opens the score database. Games still run without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "zigzag"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'zigzag list' to see available modes.")
		os.Exit(1)
	}
	if err := configureGame(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	width, height := terminalSize()
	cfg := runtimeConfig(width, height)

	store := openStore()
	logger, closeLog := fileLogger()

	opts := []tui.Option{tui.WithDifficulty(flagDifficulty)}
	if logger != nil {
		opts = append(opts, tui.WithLogger(logger))
	}
	runErr := tui.Run(game, store, cfg, opts...)

	// Close store before potential exit
	closeLog()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
