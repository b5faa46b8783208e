package zigzag

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/zigzag/internal/collision"
	"github.com/vovakirdan/zigzag/internal/core"
	"github.com/vovakirdan/zigzag/internal/entity"
)

// Autopilot plays the game by looking a few frames ahead. It flips when
// the current lane runs out of support and the other lane has it.
type Autopilot struct {
	// LookaheadFrames is how many frames of travel to probe ahead.
	LookaheadFrames int
}

// DefaultAutopilot probes two frames ahead.
func DefaultAutopilot() Autopilot {
	return Autopilot{LookaheadFrames: 2}
}

// Decide returns the input the bot would press this frame.
func (a Autopilot) Decide(s *Sim, deltaTime float64) core.InputFrame {
	in := core.NewInputFrame()
	switch s.Mode() {
	case core.ModeStart:
		in.Set(core.ActionFlip)
	case core.ModePlaying:
		if s.Falling() {
			break
		}
		frames := a.LookaheadFrames
		if frames < 1 {
			frames = 1
		}
		// Speed may rise this frame; probe with a little slack.
		reach := s.Speed() * deltaTime * float64(frames) * 1.1

		pos := s.Ball().Position()
		cur := laneVector(s.Ball().Dir)
		next := laneVector(s.Ball().Dir.Toggle())

		if a.supported(s, pos.Add(cur.Mul(reach))) {
			break
		}
		if a.supported(s, pos.Add(next.Mul(reach))) && a.supported(s, pos.Add(next.Mul(2*reach))) {
			in.Set(core.ActionFlip)
		}
	}
	return in
}

func (a Autopilot) supported(s *Sim, p mgl64.Vec3) bool {
	_, ok := collision.Check(p, s.Planks(), s.Forgiveness())
	return ok
}

// laneVector is the unit travel vector for a lane.
func laneVector(d entity.Direction) mgl64.Vec3 {
	if d == entity.DirForward {
		return mgl64.Vec3{0, 0, 1}
	}
	return mgl64.Vec3{-1, 0, 0}
}
