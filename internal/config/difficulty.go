package config

import "github.com/vovakirdan/zigzag/internal/core"

// DifficultyManager turns score or elapsed ticks into a difficulty level
// in [0, 1] and scales the ball speed with it. The level starts at the
// configured initial level and reaches 1 at Progression.MaxAt.
type DifficultyManager struct {
	cfg   DifficultyConfig
	floor float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	d := &DifficultyManager{cfg: cfg}
	d.SetInitialLevel(cfg.InitialLevel)
	return d
}

// SetInitialLevel overrides the starting level. Values are clamped to [0, 1].
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.floor = core.ClampF(level, 0, 1)
}

// SetEnabled turns progression on or off. A disabled manager stays at
// the initial level.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled reports whether the level moves during a run.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// progress is how far the run is toward MaxAt, clamped to [0, 1].
func (d *DifficultyManager) progress(score, ticks int) float64 {
	var done int
	switch d.cfg.Progression.Type {
	case "score":
		done = score
	case "time":
		done = ticks
	default:
		return 0
	}
	return core.ClampF(float64(done)/float64(max(d.cfg.Progression.MaxAt, 1)), 0, 1)
}

// Level returns the difficulty level for the given score and tick count.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.IsEnabled() {
		return d.floor
	}
	return d.floor + d.progress(score, ticks)*(1-d.floor)
}

// Speed scales baseSpeed up to baseSpeed*(1+SpeedMultiplier) at level 1.
func (d *DifficultyManager) Speed(baseSpeed float64, score, ticks int) float64 {
	return baseSpeed * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}
