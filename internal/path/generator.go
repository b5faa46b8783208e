// Package path generates the ribbon of planks the ball rolls on. It keeps a
// bounded window of active planks: new ones drop into place ahead of the
// ball, the oldest sink away once the window is over capacity.
package path

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/zigzag/internal/entity"
)

// Chooser is the random source used for branching and material picks.
// *rand.Rand satisfies it; tests inject scripted sequences.
type Chooser interface {
	Intn(n int) int
}

// Config holds the path geometry and animation parameters.
type Config struct {
	Start           mgl64.Vec3 // cursor position for the first plank
	Dims            entity.PlankDims
	Step            float64 // cursor advance after placing a plank
	Diagonal        float64 // cursor offset applied when the segment kind changes
	DropHeight      float64 // how far a new plank descends into place
	SinkDepth       float64 // how far an evicted plank sinks before deletion
	TransitionRate  float64 // units per second for both animations
	WindowCap       int     // planks kept before the oldest is evicted
	InitialStraight int     // leading planks that are always straight
}

// DefaultConfig returns the standard path parameters.
func DefaultConfig() Config {
	return Config{
		Start:           mgl64.Vec3{0, 1.52, 2.0},
		Dims:            entity.PlankDims{Long: 5.0, Short: 1.0, Thickness: 0.1},
		Step:            5.0,
		Diagonal:        2.0,
		DropHeight:      2.0,
		SinkDepth:       1.0,
		TransitionRate:  2.2,
		WindowCap:       8,
		InitialStraight: 2,
	}
}

// Generator owns the path cursor and the active plank window.
type Generator struct {
	cfg        Config
	rng        Chooser
	cursor     mgl64.Vec3
	lastKind   entity.SegmentKind
	planks     []*entity.Plank // oldest first
	placing    *entity.Plank
	removing   *entity.Plank
	nextHandle entity.Handle
	created    int
}

// New creates an empty generator. Plank handles start at firstHandle so
// they never collide with handles the caller assigns elsewhere.
func New(cfg Config, rng Chooser, firstHandle entity.Handle) *Generator {
	return &Generator{
		cfg:        cfg,
		rng:        rng,
		cursor:     cfg.Start,
		lastKind:   entity.SegmentStraight,
		planks:     make([]*entity.Plank, 0, cfg.WindowCap+2),
		nextHandle: firstHandle,
	}
}

// Seed places the initial straight planks already at rest.
func (g *Generator) Seed() {
	for g.created < g.cfg.InitialStraight {
		p, _ := g.Place(entity.SegmentStraight)
		p.SetPosition(mgl64.Vec3{p.Position().X(), p.TargetY, p.Position().Z()})
		p.Phase = entity.PhaseResting
		g.placing = nil
	}
}

// CreateNext extends the path by one segment. The first InitialStraight
// segments are straight; after that the kind is a coin flip. It returns the
// new plank and the plank marked for eviction, if any.
func (g *Generator) CreateNext() (placed, evicted *entity.Plank) {
	kind := entity.SegmentStraight
	if g.created >= g.cfg.InitialStraight && g.rng.Intn(2) == 0 {
		kind = entity.SegmentTurn
	}
	return g.Place(kind)
}

// Place extends the path with a segment of the given kind.
func (g *Generator) Place(kind entity.SegmentKind) (placed, evicted *entity.Plank) {
	g.settlePlacing()

	switch kind {
	case entity.SegmentStraight:
		if g.lastKind == entity.SegmentTurn {
			g.cursor = g.cursor.Add(mgl64.Vec3{g.cfg.Diagonal, 0, g.cfg.Diagonal})
		}
	case entity.SegmentTurn:
		if g.lastKind == entity.SegmentStraight {
			g.cursor = g.cursor.Sub(mgl64.Vec3{g.cfg.Diagonal, 0, g.cfg.Diagonal})
		}
	}

	material := entity.GroundMaterial(g.rng.Intn(entity.GroundMaterialCount))
	p := entity.NewPlank(g.nextHandle, kind, g.cursor, g.cfg.Dims, material)
	p.Phase = entity.PhasePlacing
	p.TargetY = g.cursor.Y() - g.cfg.DropHeight
	g.nextHandle++

	if kind == entity.SegmentStraight {
		g.cursor[2] += g.cfg.Step
	} else {
		g.cursor[0] -= g.cfg.Step
	}

	g.planks = append(g.planks, p)
	g.placing = p
	g.lastKind = kind
	g.created++

	return p, g.CheckEviction()
}

// settlePlacing snaps an unfinished placement to rest so only one plank is
// ever mid-placement.
func (g *Generator) settlePlacing() {
	if g.placing == nil {
		return
	}
	p := g.placing
	p.SetPosition(mgl64.Vec3{p.Position().X(), p.TargetY, p.Position().Z()})
	p.Phase = entity.PhaseResting
	g.placing = nil
}

// CheckEviction marks the oldest plank for removal when the window is over
// capacity and no removal is already running. It returns the marked plank.
func (g *Generator) CheckEviction() *entity.Plank {
	if g.removing != nil || len(g.planks) <= g.cfg.WindowCap {
		return nil
	}
	oldest := g.planks[0]
	if oldest == g.placing {
		return nil
	}
	oldest.Phase = entity.PhaseRemoving
	oldest.TargetY = oldest.Position().Y() - g.cfg.SinkDepth
	g.removing = oldest
	return oldest
}

// Advance drives the placement and removal animations by one frame. When a
// removal finishes the plank is dropped from the window, shifting later
// indices down by one; removed is that plank. A follow-up eviction may be
// started in the same call and is returned as evicted.
func (g *Generator) Advance(deltaTime float64) (removed, evicted *entity.Plank) {
	if p := g.placing; p != nil {
		if !p.TransitionToward(p.TargetY, deltaTime, g.cfg.TransitionRate) {
			p.Phase = entity.PhaseResting
			g.placing = nil
		}
	}

	if p := g.removing; p != nil {
		if !p.TransitionToward(p.TargetY, deltaTime, g.cfg.TransitionRate) {
			g.drop(p)
			g.removing = nil
			removed = p
			evicted = g.CheckEviction()
		}
	}
	return removed, evicted
}

func (g *Generator) drop(p *entity.Plank) {
	_, idx := g.Find(p.Handle())
	if idx < 0 {
		panic(fmt.Sprintf("path: plank %d finished removal but is not in the window", p.Handle()))
	}
	g.planks = append(g.planks[:idx], g.planks[idx+1:]...)
}

// Find returns the plank with the given handle and its current index,
// or (nil, -1).
func (g *Generator) Find(h entity.Handle) (*entity.Plank, int) {
	for i, p := range g.planks {
		if p.Handle() == h {
			return p, i
		}
	}
	return nil, -1
}

// Planks returns the active window, oldest first. Callers must not modify it.
func (g *Generator) Planks() []*entity.Plank { return g.planks }

// Len returns the number of active planks.
func (g *Generator) Len() int { return len(g.planks) }

// Cursor returns where the next plank's placement starts from.
func (g *Generator) Cursor() mgl64.Vec3 { return g.cursor }

// LastKind returns the kind of the most recently placed plank.
func (g *Generator) LastKind() entity.SegmentKind { return g.lastKind }

// Placing returns the plank mid-placement, or nil.
func (g *Generator) Placing() *entity.Plank { return g.placing }

// Removing returns the plank mid-removal, or nil.
func (g *Generator) Removing() *entity.Plank { return g.removing }

// Created returns the number of planks placed since New.
func (g *Generator) Created() int { return g.created }
