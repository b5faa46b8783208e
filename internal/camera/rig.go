// Package camera implements the follow camera. It tracks the ball from one
// of two stances, swings between them when the ball changes direction, and
// drifts side to side outside of play.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/zigzag/internal/core"
)

// Stance selects one of the two camera offsets.
type Stance uint8

const (
	StanceA Stance = iota // behind and to the right, used while heading forward
	StanceB               // wider lateral offset, used while heading sideways
)

// Other returns the opposite stance.
func (s Stance) Other() Stance {
	if s == StanceA {
		return StanceB
	}
	return StanceA
}

func (s Stance) String() string {
	if s == StanceA {
		return "A"
	}
	return "B"
}

// Config holds the rig parameters.
type Config struct {
	StanceA     mgl64.Vec3
	StanceB     mgl64.Vec3
	LerpFast    float64    // X rate toward A, Z rate toward B (units/s)
	LerpSlow    float64    // Z rate toward A, X rate toward B (units/s)
	DriftMargin float64    // how far the drift may wander from the anchor
	DriftRate   float64    // units/s of the side-to-side drift
	SwayDir     mgl64.Vec3 // sway moves the camera along cross(SwayDir, up)
	SwayRate    float64
	FovY        float64
	Near        float64
	Far         float64
}

// DefaultConfig returns the standard rig parameters.
func DefaultConfig() Config {
	return Config{
		StanceA:     mgl64.Vec3{3, 3.5, -7.5},
		StanceB:     mgl64.Vec3{6, 3.5, -4.5},
		LerpFast:    3.5,
		LerpSlow:    1.0,
		DriftMargin: 2.0,
		DriftRate:   1.0,
		SwayDir:     mgl64.Vec3{-0.4, 0, 1},
		SwayRate:    1.0,
		FovY:        0.25 * math.Pi,
		Near:        0.1,
		Far:         100,
	}
}

var worldUp = mgl64.Vec3{0, 1, 0}

// Rig is the follow camera.
type Rig struct {
	cfg           Config
	mode          core.Mode
	stance        Stance
	transitioning bool
	position      mgl64.Vec3
	direction     mgl64.Vec3
	lastBall      mgl64.Vec3
	driftSign     float64
	aspect        float64
	sway          mgl64.Vec3
}

// New creates a rig in Start mode, resting at stance A relative to ball.
func New(cfg Config, ball mgl64.Vec3, width, height int) *Rig {
	r := &Rig{
		cfg:       cfg,
		mode:      core.ModeStart,
		stance:    StanceA,
		lastBall:  ball,
		driftSign: 1,
		aspect:    1,
	}
	if n := cfg.SwayDir; n.Len() > 0 {
		r.sway = n.Normalize().Cross(worldUp).Mul(cfg.SwayRate)
	}
	r.position = ball.Add(cfg.StanceA)
	r.direction = ball.Sub(r.position)
	r.OnResize(width, height)
	return r
}

// Offset returns the camera offset for a stance.
func (r *Rig) Offset(s Stance) mgl64.Vec3 {
	if s == StanceB {
		return r.cfg.StanceB
	}
	return r.cfg.StanceA
}

// Update advances the rig by one frame.
func (r *Rig) Update(deltaTime float64, ball mgl64.Vec3) {
	switch r.mode {
	case core.ModeStart:
		r.lastBall = ball
		r.drift(deltaTime, ball)
	case core.ModePlaying:
		if r.transitioning {
			r.StepTransition(ball, deltaTime)
		} else {
			r.position = ball.Add(r.Offset(r.stance))
		}
		r.lastBall = ball
	case core.ModePaused, core.ModeGameOver:
		r.drift(deltaTime, r.lastBall)
	}

	r.position = r.position.Sub(r.sway.Mul(deltaTime))

	switch r.mode {
	case core.ModeStart, core.ModePlaying:
		r.direction = ball.Sub(r.position)
	case core.ModePaused:
		r.direction = r.lastBall.Sub(r.position)
	}
}

// drift sweeps X back and forth around ref+offset, pinning Y and Z.
func (r *Rig) drift(deltaTime float64, ref mgl64.Vec3) {
	anchor := ref.Add(r.Offset(r.stance))
	step := r.cfg.DriftRate * deltaTime
	next := r.position.X() + r.driftSign*step
	if next > anchor.X()+r.cfg.DriftMargin {
		r.driftSign = -1
	} else if next < anchor.X()-r.cfg.DriftMargin {
		r.driftSign = 1
	}
	r.position = mgl64.Vec3{r.position.X() + r.driftSign*step, anchor.Y(), anchor.Z()}
}

// BeginStanceSwitch swaps to the other stance and starts the swing toward it.
func (r *Rig) BeginStanceSwitch() {
	r.stance = r.stance.Other()
	r.transitioning = true
}

// StepTransition moves the camera toward ball plus the active stance offset.
// The camera is first carried along by the ball's movement since the last
// frame; then X and Z close in at different rates, each clamping exactly on
// arrival. Y snaps. It returns true while either axis is still moving.
func (r *Rig) StepTransition(ball mgl64.Vec3, deltaTime float64) bool {
	r.position = r.position.Add(ball.Sub(r.lastBall))
	r.lastBall = ball

	target := ball.Add(r.Offset(r.stance))
	rateX, rateZ := r.cfg.LerpFast, r.cfg.LerpSlow
	if r.stance == StanceB {
		rateX, rateZ = r.cfg.LerpSlow, r.cfg.LerpFast
	}

	x, movingX := approach(r.position.X(), target.X(), rateX*deltaTime)
	z, movingZ := approach(r.position.Z(), target.Z(), rateZ*deltaTime)
	r.position = mgl64.Vec3{x, target.Y(), z}
	r.transitioning = movingX || movingZ
	return r.transitioning
}

func approach(v, target, step float64) (float64, bool) {
	switch {
	case v < target:
		v += step
		if v >= target {
			return target, false
		}
	case v > target:
		v -= step
		if v <= target {
			return target, false
		}
	default:
		return v, false
	}
	return v, true
}

// OnModeChanged switches the per-mode branch. The stance is left alone.
func (r *Rig) OnModeChanged(mode core.Mode) {
	r.mode = mode
}

// OnResize updates the projection aspect ratio.
func (r *Rig) OnResize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.aspect = float64(width) / float64(height)
}

// View returns the view matrix.
func (r *Rig) View() mgl64.Mat4 {
	return LookToLH(r.position, r.direction, worldUp)
}

// Projection returns the projection matrix.
func (r *Rig) Projection() mgl64.Mat4 {
	return PerspectiveFovLH(r.cfg.FovY, r.aspect, r.cfg.Near, r.cfg.Far)
}

func (r *Rig) Position() mgl64.Vec3  { return r.position }
func (r *Rig) Direction() mgl64.Vec3 { return r.direction }
func (r *Rig) Stance() Stance        { return r.stance }
func (r *Rig) Transitioning() bool   { return r.transitioning }
func (r *Rig) Mode() core.Mode       { return r.mode }
func (r *Rig) Aspect() float64       { return r.aspect }
