package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/zigzag/internal/core"
)

const dt = 1.0 / 60.0

func noSway() Config {
	cfg := DefaultConfig()
	cfg.SwayRate = 0
	return cfg
}

func TestStanceTransitionDeterminism(t *testing.T) {
	tests := []struct {
		name  string
		flips int
		want  Stance
	}{
		{"A to B", 1, StanceB},
		{"B to A", 2, StanceA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball := mgl64.Vec3{1, 0.2, 4}
			r := New(noSway(), ball, 80, 24)
			r.OnModeChanged(core.ModePlaying)

			for f := 0; f < tt.flips; f++ {
				if r.Transitioning() {
					t.Fatal("Transitioning() = true before flip")
				}
				r.BeginStanceSwitch()
				if !r.Transitioning() {
					t.Fatal("Transitioning() = false after flip")
				}
				steps := 0
				for r.StepTransition(ball, dt) {
					steps++
					if !r.Transitioning() {
						t.Fatal("flag dropped while still moving")
					}
					if steps > 400 {
						t.Fatal("transition did not converge")
					}
				}
			}

			if r.Stance() != tt.want {
				t.Fatalf("Stance() = %v, expected %v", r.Stance(), tt.want)
			}
			want := ball.Add(r.Offset(tt.want))
			if r.Position() != want {
				t.Fatalf("Position() = %v, expected exactly %v", r.Position(), want)
			}

			for i := 0; i < 10; i++ {
				r.Update(dt, ball)
				if r.Transitioning() {
					t.Fatal("flag set again without a flip")
				}
			}
		})
	}
}

func TestTransitionAxesCloseAtDifferentRates(t *testing.T) {
	ball := mgl64.Vec3{}
	r := New(noSway(), ball, 80, 24)
	r.OnModeChanged(core.ModePlaying)
	r.BeginStanceSwitch()

	r.StepTransition(ball, 0.1)
	got := r.Position().Sub(ball.Add(r.cfg.StanceA))
	if math.Abs(got.X()-0.1) > 1e-12 || math.Abs(got.Z()-0.35) > 1e-12 {
		t.Fatalf("first step moved (%v, %v), expected (0.1, 0.35)", got.X(), got.Z())
	}
	if r.Position().Y() != ball.Y()+r.cfg.StanceB.Y() {
		t.Fatalf("Y should snap to target stance height")
	}
}

func TestTransitionFollowsMovingBall(t *testing.T) {
	ball := mgl64.Vec3{}
	r := New(noSway(), ball, 80, 24)
	r.OnModeChanged(core.ModePlaying)
	r.BeginStanceSwitch()

	for i := 0; i < 1000 && r.Transitioning(); i++ {
		ball = ball.Add(mgl64.Vec3{0, 0, 2.5 * dt})
		r.Update(dt, ball)
	}
	if r.Transitioning() {
		t.Fatal("transition did not converge with a moving ball")
	}
	want := ball.Add(r.cfg.StanceB)
	if d := r.Position().Sub(want).Len(); d > 1e-9 {
		t.Fatalf("Position() = %v, expected %v", r.Position(), want)
	}
}

func TestPlayingPinsAndFacesBall(t *testing.T) {
	r := New(noSway(), mgl64.Vec3{}, 80, 24)
	r.OnModeChanged(core.ModePlaying)

	balls := []mgl64.Vec3{{0, 0, 1}, {-3, 0, 6}, {-3.5, -0.2, 6}}
	for _, b := range balls {
		r.Update(dt, b)
		if r.Position() != b.Add(r.cfg.StanceA) {
			t.Errorf("Position() = %v, expected %v", r.Position(), b.Add(r.cfg.StanceA))
		}
		if r.Direction() != b.Sub(r.Position()) {
			t.Errorf("Direction() = %v, expected %v", r.Direction(), b.Sub(r.Position()))
		}
	}
}

func TestSwayAlwaysApplied(t *testing.T) {
	n := mgl64.Vec3{-0.4, 0, 1}.Normalize()

	for _, mode := range []core.Mode{core.ModeStart, core.ModePlaying, core.ModePaused, core.ModeGameOver} {
		t.Run(mode.String(), func(t *testing.T) {
			ball := mgl64.Vec3{}
			withSway := New(DefaultConfig(), ball, 80, 24)
			without := New(noSway(), ball, 80, 24)
			withSway.OnModeChanged(mode)
			without.OnModeChanged(mode)

			withSway.Update(dt, ball)
			without.Update(dt, ball)

			d := withSway.Position().Sub(without.Position())
			if math.Abs(d.X()-n.Z()*dt) > 1e-12 || math.Abs(d.Z()+n.X()*dt) > 1e-12 || d.Y() != 0 {
				t.Fatalf("sway delta = %v, expected (%v, 0, %v)", d, n.Z()*dt, -n.X()*dt)
			}
		})
	}
}

func TestStartDriftStaysWithinMargin(t *testing.T) {
	ball := mgl64.Vec3{0, 0, 0}
	r := New(noSway(), ball, 80, 24)
	anchor := ball.Add(r.cfg.StanceA)

	minX, maxX := math.Inf(1), math.Inf(-1)
	for i := 0; i < 60*20; i++ {
		r.Update(dt, ball)
		p := r.Position()
		if p.Y() != anchor.Y() || p.Z() != anchor.Z() {
			t.Fatalf("frame %d: drift moved off the anchor plane: %v", i, p)
		}
		if math.Abs(p.X()-anchor.X()) > r.cfg.DriftMargin {
			t.Fatalf("frame %d: x=%v outside margin", i, p.X())
		}
		minX = math.Min(minX, p.X())
		maxX = math.Max(maxX, p.X())
		if r.Direction() != ball.Sub(p) {
			t.Fatalf("frame %d: camera not facing ball", i)
		}
	}
	if maxX < anchor.X()+1.9 || minX > anchor.X()-1.9 {
		t.Fatalf("drift range [%v, %v] did not sweep both ways around %v", minX, maxX, anchor.X())
	}
}

func TestPausedAndGameOverUseLastBall(t *testing.T) {
	for _, mode := range []core.Mode{core.ModePaused, core.ModeGameOver} {
		t.Run(mode.String(), func(t *testing.T) {
			last := mgl64.Vec3{-2, 0, 7}
			r := New(noSway(), mgl64.Vec3{}, 80, 24)
			r.OnModeChanged(core.ModePlaying)
			r.Update(dt, last)
			dirBefore := r.Direction()

			r.OnModeChanged(mode)
			moved := mgl64.Vec3{-2, -5, 9}
			for i := 0; i < 30; i++ {
				r.Update(dt, moved)
			}

			anchor := last.Add(r.cfg.StanceA)
			if r.Position().Y() != anchor.Y() || r.Position().Z() != anchor.Z() {
				t.Fatalf("Position() = %v, expected Y/Z pinned to %v", r.Position(), anchor)
			}
			switch mode {
			case core.ModePaused:
				if r.Direction() != last.Sub(r.Position()) {
					t.Fatalf("paused camera should face last ball position")
				}
			case core.ModeGameOver:
				if r.Direction() != dirBefore {
					t.Fatalf("Direction() = %v, expected unchanged %v", r.Direction(), dirBefore)
				}
			}
		})
	}
}

func TestModeChangeKeepsStance(t *testing.T) {
	r := New(DefaultConfig(), mgl64.Vec3{}, 80, 24)
	for _, m := range []core.Mode{core.ModePlaying, core.ModePaused, core.ModePlaying, core.ModeGameOver} {
		r.OnModeChanged(m)
		if r.Stance() != StanceA || r.Transitioning() {
			t.Fatalf("OnModeChanged(%v) changed stance or started a transition", m)
		}
		if r.Mode() != m {
			t.Fatalf("Mode() = %v, expected %v", r.Mode(), m)
		}
	}
}

func TestOnResize(t *testing.T) {
	r := New(DefaultConfig(), mgl64.Vec3{}, 100, 50)
	if r.Aspect() != 2 {
		t.Fatalf("Aspect() = %v, expected 2", r.Aspect())
	}
	r.OnResize(0, 10)
	if r.Aspect() != 2 {
		t.Fatalf("zero width should be ignored, Aspect() = %v", r.Aspect())
	}
	r.OnResize(30, 60)
	if r.Aspect() != 0.5 {
		t.Fatalf("Aspect() = %v, expected 0.5", r.Aspect())
	}
}
