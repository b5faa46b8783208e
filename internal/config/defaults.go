package config

import (
	_ "embed"
	"math"
)

//go:embed defaults/zigzag.yaml
var defaultZigzagYAML []byte

// DefaultZigzagConfig returns the default zigzag configuration.
func DefaultZigzagConfig() ZigzagConfig {
	return ZigzagConfig{
		Ball: BallConfig{
			Start:     Vec3{0, 0, 0},
			Scale:     0.8,
			Speed:     2.5,
			RollRate:  10,
			FlipAngle: math.Pi / 2,
			Gravity:   0.2,
		},
		Path: PathConfig{
			Start:           Vec3{0, 1.52, 2.0},
			PlankLong:       5.0,
			PlankShort:      1.0,
			PlankThickness:  0.1,
			Step:            5.0,
			Diagonal:        2.0,
			DropHeight:      2.0,
			SinkDepth:       1.0,
			TransitionRate:  2.2,
			WindowCap:       8,
			InitialStraight: 2,
			Forgiveness:     0.7,
		},
		Camera: CameraConfig{
			StanceA:     Vec3{3, 3.5, -7.5},
			StanceB:     Vec3{6, 3.5, -4.5},
			LerpFast:    3.5,
			LerpSlow:    1.0,
			DriftMargin: 2.0,
			DriftRate:   1.0,
			SwayDir:     Vec3{-0.4, 0, 1},
			SwayRate:    1.0,
			FovDegrees:  45,
			Near:        0.1,
			Far:         100,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.8,
			},
		},
	}
}
