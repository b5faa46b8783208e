package zigzag

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/zigzag/internal/config"
	"github.com/vovakirdan/zigzag/internal/core"
	"github.com/vovakirdan/zigzag/internal/entity"
)

// Visual characters for rendering
const (
	BallChar  = '●'
	PlankChar = '█'
)

// Shade runes for planks that are fading in or out, lightest first.
var fadeChars = [...]rune{'░', '▒', '▓'}

// cellAspect is the height/width ratio of a terminal cell.
const cellAspect = 2

// projected is a screen-space vertex. invDepth interpolates linearly across
// the screen, depth does not.
type projected struct {
	x, y     float64
	invDepth float64
}

// Render draws the run onto dst: planks and ball through the camera, then
// the HUD. It only reads simulation state.
func (s *Sim) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	vp := s.camera.Projection().Mul4(s.camera.View())
	for _, p := range s.path.Planks() {
		s.drawPlank(dst, vp, p)
	}
	s.drawBall(dst, vp)
	s.drawHUD(dst)
}

// project maps a world point to screen cells. ok is false behind the camera.
func project(vp mgl64.Mat4, p mgl64.Vec3, w, h int) (projected, bool) {
	clip := vp.Mul4x1(p.Vec4(1))
	if clip.W() <= 1e-6 {
		return projected{}, false
	}
	nx, ny := clip.X()/clip.W(), clip.Y()/clip.W()
	return projected{
		x:        (nx + 1) * 0.5 * float64(w),
		y:        (1 - ny) * 0.5 * float64(h),
		invDepth: 1 / clip.W(),
	}, true
}

func (s *Sim) drawPlank(dst *core.Screen, vp mgl64.Mat4, p *entity.Plank) {
	pos, sc := p.Position(), p.Scale()
	top := pos.Y() + sc.Y()
	corners := [4]mgl64.Vec3{
		{pos.X() - sc.X(), top, pos.Z() - sc.Z()},
		{pos.X() + sc.X(), top, pos.Z() - sc.Z()},
		{pos.X() + sc.X(), top, pos.Z() + sc.Z()},
		{pos.X() - sc.X(), top, pos.Z() + sc.Z()},
	}

	var v [4]projected
	for i, c := range corners {
		pv, ok := project(vp, c, dst.Width(), dst.Height())
		if !ok {
			return
		}
		v[i] = pv
	}

	r := plankRune(opacity(p, s.cfg.Path))
	c := materialColor(p.Material())
	fillTriangle(dst, v[0], v[1], v[2], r, c)
	fillTriangle(dst, v[0], v[2], v[3], r, c)
}

func edge(a, b projected, px, py float64) float64 {
	return (b.x-a.x)*(py-a.y) - (b.y-a.y)*(px-a.x)
}

// fillTriangle rasterizes a screen triangle with a perspective-correct
// depth test, sampling at cell centers.
func fillTriangle(dst *core.Screen, a, b, c projected, r rune, col core.Color) {
	area := edge(a, b, c.x, c.y)
	if area == 0 {
		return
	}

	minX := int(math.Floor(math.Min(a.x, math.Min(b.x, c.x))))
	maxX := int(math.Ceil(math.Max(a.x, math.Max(b.x, c.x))))
	minY := int(math.Floor(math.Min(a.y, math.Min(b.y, c.y))))
	maxY := int(math.Ceil(math.Max(a.y, math.Max(b.y, c.y))))
	minX, maxX = max(minX, 0), min(maxX, dst.Width()-1)
	minY, maxY = max(minY, 0), min(maxY, dst.Height()-1)

	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5
			w0 := edge(b, c, px, py) / area
			w1 := edge(c, a, px, py) / area
			w2 := edge(a, b, px, py) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			inv := w0*a.invDepth + w1*b.invDepth + w2*c.invDepth
			if inv <= 0 {
				continue
			}
			dst.Plot(x, y, 1/inv, r, col)
		}
	}
}

func (s *Sim) drawBall(dst *core.Screen, vp mgl64.Mat4) {
	pos := s.ball.Position()
	radius := s.ball.Scale().X() / 2

	center, ok := project(vp, pos, dst.Width(), dst.Height())
	if !ok {
		return
	}
	view := s.camera.View()
	right := mgl64.Vec3{view[0], view[4], view[8]}
	edgePt, ok := project(vp, pos.Add(right.Mul(radius)), dst.Width(), dst.Height())
	if !ok {
		return
	}

	depth := 1/center.invDepth - radius
	rx := math.Abs(edgePt.x - center.x)
	ry := rx / cellAspect
	if rx < 0.75 || ry < 0.5 {
		dst.Plot(int(center.x), int(center.y), depth, BallChar, core.ColorWhite)
		return
	}

	for y := int(center.y - ry); y <= int(center.y+ry); y++ {
		for x := int(center.x - rx); x <= int(center.x+rx); x++ {
			dx := (float64(x) + 0.5 - center.x) / rx
			dy := (float64(y) + 0.5 - center.y) / ry
			if dx*dx+dy*dy <= 1 {
				dst.Plot(x, y, depth, BallChar, core.ColorWhite)
			}
		}
	}
}

func (s *Sim) drawHUD(dst *core.Screen) {
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", s.score), core.ColorWhite)
	mode := fmt.Sprintf(" %s ", s.mode)
	dst.DrawText(dst.Width()-len(mode)-2, 0, mode, core.ColorGray)

	switch s.mode {
	case core.ModeStart:
		drawCenteredMessage(dst, "ZIGZAG", "Press Space to start", core.ColorCyan)
	case core.ModePaused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorYellow)
	case core.ModeGameOver:
		// Blink the banner once the ball has dropped out of sight.
		if s.gameOverElapsed < 1 || math.Mod(s.gameOverElapsed, 1.0) < 0.6 {
			drawCenteredMessage(dst, "GAME OVER",
				fmt.Sprintf("Score: %d  |  Press R to restart", s.score), core.ColorRed)
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawBox(boxX, boxY, boxW, boxH, c)
	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, c)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle, core.ColorWhite)
}

func materialColor(m entity.MaterialID) core.Color {
	switch m {
	case entity.MaterialGround0:
		return core.ColorCyan
	case entity.MaterialGround1:
		return core.ColorMagenta
	case entity.MaterialGround2:
		return core.ColorOrange
	case entity.MaterialBall:
		return core.ColorWhite
	default:
		return core.ColorGray
	}
}

func plankRune(alpha float64) rune {
	if alpha >= 1 {
		return PlankChar
	}
	i := int(alpha * float64(len(fadeChars)))
	if i >= len(fadeChars) {
		i = len(fadeChars) - 1
	}
	if i < 0 {
		i = 0
	}
	return fadeChars[i]
}

// opacity returns how solid a plank should look: 1 at rest, ramping in while
// placing and out while removing.
func opacity(p *entity.Plank, cfg config.PathConfig) float64 {
	dy := math.Abs(p.Position().Y() - p.TargetY)
	switch p.Phase {
	case entity.PhasePlacing:
		if cfg.DropHeight <= 0 {
			return 1
		}
		return core.ClampF(1-dy/cfg.DropHeight, 0, 1)
	case entity.PhaseRemoving:
		if cfg.SinkDepth <= 0 {
			return 0
		}
		return core.ClampF(dy/cfg.SinkDepth, 0, 1)
	default:
		return 1
	}
}
