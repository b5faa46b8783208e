package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/zigzag/internal/core"
	"github.com/vovakirdan/zigzag/internal/storage"
	"github.com/vovakirdan/zigzag/internal/zigzag"
)

var (
	flagSimFrames int
	flagSimSave   bool
	flagSimRender bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the autopilot headless",
	Long: `Run the autopilot at full speed without a terminal UI and log the result.
The same --seed always produces the same path and the same run.

Examples:
  zigzag sim
  zigzag sim --frames 36000 --seed 7 -v
  zigzag sim --render --save`,
	Run: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimFrames, "frames", 3600, "Maximum number of ticks to simulate")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Save the finished run to the scores database")
	simCmd.Flags().BoolVar(&flagSimRender, "render", false, "Print the final frame")
}

func runSim(_ *cobra.Command, _ []string) {
	if err := configureGame(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger("zigzag-sim")

	cfg := runtimeConfig(80, 24)
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	game := zigzag.NewAutopilot()
	game.SetEventHandler(func(e zigzag.Event) {
		logger.Debug(e.Kind.String(), "tick", e.Tick, "handle", e.Handle, "mode", e.Mode)
	})
	game.Reset(cfg)

	start := time.Now()
	frames := 0
	for frames < flagSimFrames {
		result := game.Step(core.NewInputFrame())
		frames++
		if result.State.GameOver {
			break
		}
	}

	snap := game.Sim().Snapshot()
	logger.Info("run finished",
		"frames", frames,
		"score", snap.Score,
		"mode", snap.Mode,
		"planks", snap.Planks,
		"speed", snap.Speed,
		"seed", cfg.Seed,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	logger.Debug("final state",
		"ball", snap.BallPos,
		"camera", snap.CameraPos,
		"stance", snap.Stance,
		"dir", snap.Dir,
	)

	if flagSimRender {
		screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
		game.Render(screen)
		fmt.Println(screen.String())
	}

	if flagSimSave && snap.Score > 0 {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Error("could not open scores database", "error", err)
			os.Exit(1)
		}
		defer store.Close()

		id, err := store.SaveRun(storage.Run{
			GameID:     game.ID(),
			Score:      snap.Score,
			Ticks:      int64(snap.Tick),
			Seed:       cfg.Seed,
			Difficulty: flagDifficulty,
		})
		if err != nil {
			logger.Error("could not save run", "error", err)
			os.Exit(1)
		}
		logger.Info("run saved", "id", id)
	}
}
