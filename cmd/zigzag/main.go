// zigzag is a terminal zig-zag platformer: roll the ball along a path of
// planks that keeps building ahead of you and flip its direction before it
// runs off the edge.
//
// Usage:
//
//	zigzag play              - Play a run
//	zigzag menu              - Pick a mode interactively
//	zigzag sim               - Run the autopilot headless and log the run
//	zigzag serve             - Start SSH server for remote play
//	zigzag scores            - Show high scores
//	zigzag list              - List game modes
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible paths
//	--db <path>     - Set database path (default: ~/.zigzag/scores.db)
//	--verbose       - Log simulation events
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/zigzag/internal/core"
	// Registers zigzag and zigzag_autopilot
	_ "github.com/vovakirdan/zigzag/internal/zigzag"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "zigzag",
	Short: "ZigZag - keep the ball on the path",
	Long: `ZigZag is a terminal platformer. A ball rolls along a path of planks
that is generated ahead of it; flip its direction at every corner before
it rolls off the edge.

Available commands:
  play     - Play a run
  menu     - Interactive mode picker
  sim      - Run the autopilot without a terminal UI
  serve    - Start SSH server for remote play
  scores   - View high scores
  list     - Show game modes

Examples:
  zigzag play
  zigzag play --difficulty hard
  zigzag sim --frames 3600 --seed 42
  zigzag serve --ssh :2222
  zigzag scores`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.zigzag/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log simulation events")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// runtimeConfig builds the runtime config from the global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// newLogger returns a stderr logger; --verbose enables debug output.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// fileLogger logs to ~/.zigzag/zigzag.log while the alternate screen owns
// the terminal. It returns nil unless --verbose is set.
func fileLogger() (*log.Logger, func()) {
	if !flagVerbose {
		return nil, func() {}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, func() {}
	}
	dir := filepath.Join(home, ".zigzag")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "zigzag.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, func() {}
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "zigzag",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }
}
