package zigzag

import "github.com/go-gl/mathgl/mgl64"

// Snapshot captures the diagnostic state of a run for HUDs, logs and
// determinism tests.
type Snapshot struct {
	Tick                uint64
	Mode                string
	Score               int
	Speed               float64
	Falling             bool
	Dir                 string
	BallPos             mgl64.Vec3
	CameraPos           mgl64.Vec3
	CameraDir           mgl64.Vec3
	Stance              string
	CameraTransitioning bool
	Planks              int
	Placing             bool
	Removing            bool
	GameOverElapsed     float64
}

// Snapshot returns the current run snapshot.
func (s *Sim) Snapshot() Snapshot {
	return Snapshot{
		Tick:                s.tick,
		Mode:                s.mode.String(),
		Score:               s.score,
		Speed:               s.speed,
		Falling:             s.ball.Falling,
		Dir:                 s.ball.Dir.String(),
		BallPos:             s.ball.Position(),
		CameraPos:           s.camera.Position(),
		CameraDir:           s.camera.Direction(),
		Stance:              s.camera.Stance().String(),
		CameraTransitioning: s.camera.Transitioning(),
		Planks:              s.path.Len(),
		Placing:             s.path.Placing() != nil,
		Removing:            s.path.Removing() != nil,
		GameOverElapsed:     s.gameOverElapsed,
	}
}
