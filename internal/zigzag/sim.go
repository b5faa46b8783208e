// Package zigzag is the game mode controller. It owns the ball, the path
// and the camera, and steps them once per frame according to the current
// mode.
package zigzag

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/zigzag/internal/camera"
	"github.com/vovakirdan/zigzag/internal/collision"
	"github.com/vovakirdan/zigzag/internal/config"
	"github.com/vovakirdan/zigzag/internal/core"
	"github.com/vovakirdan/zigzag/internal/entity"
	"github.com/vovakirdan/zigzag/internal/path"
)

// firstPlankHandle keeps plank handles clear of BallHandle.
const firstPlankHandle entity.Handle = entity.BallHandle + 1

// Sim is the simulation context for one run. Every component's state lives
// here and is only mutated from Update.
type Sim struct {
	cfg        config.ZigzagConfig
	mode       core.Mode
	ball       *entity.Ball
	path       *path.Generator
	camera     *camera.Rig
	difficulty *config.DifficultyManager

	tick            uint64
	speed           float64
	score           int
	gameOverElapsed float64
	lastSupport     entity.Handle // newest plank the ball has stood on
	extendedFor     entity.Handle // supporting plank that last triggered an extension

	onEvent EventHandler
}

// NewSim builds a run in Start mode with the initial planks at rest.
// width and height size the camera projection.
func NewSim(cfg config.ZigzagConfig, rng path.Chooser, width, height int) *Sim {
	s := &Sim{
		cfg:        cfg,
		mode:       core.ModeStart,
		ball:       entity.NewBall(cfg.Ball.Start.Vec(), cfg.Ball.Scale),
		path:       path.New(pathConfig(cfg.Path), rng, firstPlankHandle),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
	s.speed = s.difficulty.Speed(cfg.Ball.Speed, 0, 0)
	s.camera = camera.New(cameraConfig(cfg.Camera), s.ball.Position(), width, height)
	s.path.Seed()
	return s
}

func pathConfig(c config.PathConfig) path.Config {
	return path.Config{
		Start: c.Start.Vec(),
		Dims: entity.PlankDims{
			Long:      c.PlankLong,
			Short:     c.PlankShort,
			Thickness: c.PlankThickness,
		},
		Step:            c.Step,
		Diagonal:        c.Diagonal,
		DropHeight:      c.DropHeight,
		SinkDepth:       c.SinkDepth,
		TransitionRate:  c.TransitionRate,
		WindowCap:       c.WindowCap,
		InitialStraight: c.InitialStraight,
	}
}

func cameraConfig(c config.CameraConfig) camera.Config {
	return camera.Config{
		StanceA:     c.StanceA.Vec(),
		StanceB:     c.StanceB.Vec(),
		LerpFast:    c.LerpFast,
		LerpSlow:    c.LerpSlow,
		DriftMargin: c.DriftMargin,
		DriftRate:   c.DriftRate,
		SwayDir:     c.SwayDir.Vec(),
		SwayRate:    c.SwayRate,
		FovY:        mgl64.DegToRad(c.FovDegrees),
		Near:        c.Near,
		Far:         c.Far,
	}
}

// SetEventHandler installs fn as the event sink. nil disables events.
func (s *Sim) SetEventHandler(fn EventHandler) {
	s.onEvent = fn
}

func (s *Sim) emit(e Event) {
	if s.onEvent == nil {
		return
	}
	e.Tick = s.tick
	s.onEvent(e)
}

// setMode switches mode and notifies the camera. Same-mode requests are no-ops.
func (s *Sim) setMode(m core.Mode) {
	if s.mode == m {
		return
	}
	s.mode = m
	s.camera.OnModeChanged(m)
	s.emit(Event{Kind: EventModeChanged, Mode: m})
}

// Update advances the run by one frame. Flip doubles as the start
// confirmation; pause toggles only between Playing and Paused. Requests
// that do not apply to the current mode are ignored.
func (s *Sim) Update(deltaTime float64, in core.InputFrame) {
	switch s.mode {
	case core.ModeStart:
		if in.Has(core.ActionFlip) {
			s.setMode(core.ModePlaying)
		}

	case core.ModePlaying:
		if in.Has(core.ActionPause) {
			s.setMode(core.ModePaused)
			break
		}
		s.stepPlaying(deltaTime, in)

	case core.ModePaused:
		if in.Has(core.ActionPause) {
			s.setMode(core.ModePlaying)
		}

	case core.ModeGameOver:
		s.gameOverElapsed += deltaTime
		s.ball.Advance(deltaTime, s.speed, s.cfg.Ball.RollRate)
		s.ball.ApplyFall(deltaTime, s.cfg.Ball.Gravity)
		s.advancePath(deltaTime)
	}

	s.camera.Update(deltaTime, s.ball.Position())
	s.tick++
}

func (s *Sim) stepPlaying(deltaTime float64, in core.InputFrame) {
	if in.Has(core.ActionFlip) && !s.ball.Falling {
		s.flip()
	}

	s.speed = s.difficulty.Speed(s.cfg.Ball.Speed, s.score, int(s.tick))
	s.ball.Advance(deltaTime, s.speed, s.cfg.Ball.RollRate)

	planks := s.path.Planks()
	idx, ok := collision.Check(s.ball.Position(), planks, s.cfg.Path.Forgiveness)
	if !ok {
		s.ball.Falling = true
		s.emit(Event{Kind: EventFallStarted, Handle: entity.BallHandle})
		s.setMode(core.ModeGameOver)
		s.advancePath(deltaTime)
		return
	}

	// Indices may shift once the path advances, so keep the handle.
	support := planks[idx]
	nearFront := collision.NearFront(idx, len(planks))
	s.recordSupport(support.Handle())

	s.advancePath(deltaTime)

	if nearFront && support.Handle() != s.extendedFor {
		s.extendedFor = support.Handle()
		s.extend()
	}
}

// flip toggles the ball's lane, turns it to face the new lane and swings
// the camera to the other stance.
func (s *Sim) flip() {
	angle := s.cfg.Ball.FlipAngle
	if s.ball.Dir == entity.DirForward {
		angle = -angle
	}
	s.ball.RotateRelative(mgl64.Vec3{0, angle, 0})
	s.ball.Dir = s.ball.Dir.Toggle()
	s.camera.BeginStanceSwitch()
	s.emit(Event{Kind: EventFlip, Handle: entity.BallHandle})
}

// recordSupport scores each plank the first time the ball reaches it. The
// plank under the ball at the start does not count.
func (s *Sim) recordSupport(h entity.Handle) {
	if h <= s.lastSupport {
		return
	}
	if s.lastSupport != entity.BallHandle {
		s.score++
	}
	s.lastSupport = h
}

func (s *Sim) extend() {
	placed, evicted := s.path.CreateNext()
	s.emit(Event{Kind: EventPlankPlaced, Handle: placed.Handle()})
	if evicted != nil {
		s.emit(Event{Kind: EventPlankEvicted, Handle: evicted.Handle()})
	}
}

func (s *Sim) advancePath(deltaTime float64) {
	removed, evicted := s.path.Advance(deltaTime)
	if removed != nil {
		s.emit(Event{Kind: EventPlankRemoved, Handle: removed.Handle()})
	}
	if evicted != nil {
		s.emit(Event{Kind: EventPlankEvicted, Handle: evicted.Handle()})
	}
}

// Resize updates the camera projection for a new viewport.
func (s *Sim) Resize(width, height int) {
	s.camera.OnResize(width, height)
}

func (s *Sim) Mode() core.Mode          { return s.mode }
func (s *Sim) Ball() *entity.Ball       { return s.ball }
func (s *Sim) Planks() []*entity.Plank  { return s.path.Planks() }
func (s *Sim) Path() *path.Generator    { return s.path }
func (s *Sim) Camera() *camera.Rig      { return s.camera }
func (s *Sim) Score() int               { return s.score }
func (s *Sim) Tick() uint64             { return s.tick }
func (s *Sim) Speed() float64           { return s.speed }
func (s *Sim) Forgiveness() float64     { return s.cfg.Path.Forgiveness }
func (s *Sim) GameOverElapsed() float64 { return s.gameOverElapsed }

// Config returns the configuration the run was built with.
func (s *Sim) Config() config.ZigzagConfig { return s.cfg }

// Falling reports whether the ball has left the path.
func (s *Sim) Falling() bool { return s.ball.Falling }
