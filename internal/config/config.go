// Package config provides YAML-based game configuration loading and
// difficulty management for zigzag.
package config

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// ZigzagConfig contains all configuration for a zigzag run.
type ZigzagConfig struct {
	Ball       BallConfig       `yaml:"ball"`
	Path       PathConfig       `yaml:"path"`
	Camera     CameraConfig     `yaml:"camera"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Vec3 is a YAML-friendly 3D vector.
type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Vec converts to an mgl64 vector.
func (v Vec3) Vec() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// BallConfig defines the ball's motion.
type BallConfig struct {
	Start     Vec3    `yaml:"start"`
	Scale     float64 `yaml:"scale"`
	Speed     float64 `yaml:"speed"`      // Units per second before difficulty scaling
	RollRate  float64 `yaml:"roll_rate"`  // Radians per second about X
	FlipAngle float64 `yaml:"flip_angle"` // Yaw change per direction flip, radians
	Gravity   float64 `yaml:"gravity"`    // Fall accumulator growth per second, positive is down
}

// PathConfig defines plank geometry and the sliding window.
type PathConfig struct {
	Start           Vec3    `yaml:"start"`
	PlankLong       float64 `yaml:"plank_long"`
	PlankShort      float64 `yaml:"plank_short"`
	PlankThickness  float64 `yaml:"plank_thickness"`
	Step            float64 `yaml:"step"`
	Diagonal        float64 `yaml:"diagonal"`
	DropHeight      float64 `yaml:"drop_height"`
	SinkDepth       float64 `yaml:"sink_depth"`
	TransitionRate  float64 `yaml:"transition_rate"`
	WindowCap       int     `yaml:"window_cap"`
	InitialStraight int     `yaml:"initial_straight"`
	Forgiveness     float64 `yaml:"forgiveness"`
}

// CameraConfig defines the follow camera.
type CameraConfig struct {
	StanceA     Vec3    `yaml:"stance_a"`
	StanceB     Vec3    `yaml:"stance_b"`
	LerpFast    float64 `yaml:"lerp_fast"`
	LerpSlow    float64 `yaml:"lerp_slow"`
	DriftMargin float64 `yaml:"drift_margin"`
	DriftRate   float64 `yaml:"drift_rate"`
	SwayDir     Vec3    `yaml:"sway_dir"`
	SwayRate    float64 `yaml:"sway_rate"`
	FovDegrees  float64 `yaml:"fov_degrees"`
	Near        float64 `yaml:"near"`
	Far         float64 `yaml:"far"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// Validate reports values the simulation cannot run with.
func (c ZigzagConfig) Validate() error {
	var errs []error
	if c.Ball.Speed <= 0 {
		errs = append(errs, fmt.Errorf("ball.speed must be positive, got %v", c.Ball.Speed))
	}
	if c.Path.WindowCap < 3 {
		errs = append(errs, fmt.Errorf("path.window_cap must be at least 3, got %d", c.Path.WindowCap))
	}
	if c.Path.TransitionRate <= 0 {
		errs = append(errs, fmt.Errorf("path.transition_rate must be positive, got %v", c.Path.TransitionRate))
	}
	if c.Path.Forgiveness <= 0 || c.Path.Forgiveness > 1 {
		errs = append(errs, fmt.Errorf("path.forgiveness must be in (0, 1], got %v", c.Path.Forgiveness))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera clip range [%v, %v] is invalid", c.Camera.Near, c.Camera.Far))
	}
	if c.Camera.FovDegrees <= 0 || c.Camera.FovDegrees >= 180 {
		errs = append(errs, fmt.Errorf("camera.fov_degrees must be in (0, 180), got %v", c.Camera.FovDegrees))
	}
	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
