package path

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/zigzag/internal/entity"
)

// scripted returns the queued values in order, then zeros.
type scripted struct {
	vals []int
}

func (s *scripted) Intn(n int) int {
	if len(s.vals) == 0 {
		return 0
	}
	v := s.vals[0]
	s.vals = s.vals[1:]
	return v % n
}

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestSeedPlacesTwoStraightsAtRest(t *testing.T) {
	g := New(DefaultConfig(), rand.New(rand.NewSource(1)), 1)
	g.Seed()

	if g.Len() != 2 {
		t.Fatalf("expected 2 planks, got %d", g.Len())
	}
	wantZ := []float64{2.0, 7.0}
	for i, p := range g.Planks() {
		if p.Kind != entity.SegmentStraight {
			t.Errorf("plank %d: expected straight, got %v", i, p.Kind)
		}
		if p.Phase != entity.PhaseResting {
			t.Errorf("plank %d: expected resting, got %v", i, p.Phase)
		}
		pos := p.Position()
		if !near(pos.Z(), wantZ[i]) || !near(pos.X(), 0) {
			t.Errorf("plank %d: position %v, want x=0 z=%v", i, pos, wantZ[i])
		}
		if !near(pos.Y(), 1.52-2.0) {
			t.Errorf("plank %d: y=%v, want rest height %v", i, pos.Y(), 1.52-2.0)
		}
	}
	if g.Placing() != nil {
		t.Error("seeded planks should not be mid-placement")
	}
	if !near(g.Cursor().Z(), 12.0) {
		t.Errorf("cursor z = %v, want 12", g.Cursor().Z())
	}
}

func TestInitialSegmentsIgnoreRandomBranch(t *testing.T) {
	// Intn(2)==0 would mean turn, but the first two are always straight.
	g := New(DefaultConfig(), &scripted{}, 1)
	for i := 0; i < 2; i++ {
		p, _ := g.CreateNext()
		if p.Kind != entity.SegmentStraight {
			t.Fatalf("segment %d: expected straight, got %v", i, p.Kind)
		}
	}
	p, _ := g.CreateNext()
	if p.Kind != entity.SegmentTurn {
		t.Fatalf("third segment with chooser 0: expected turn, got %v", p.Kind)
	}
}

func TestTurnAfterStraight(t *testing.T) {
	g := New(DefaultConfig(), &scripted{}, 1)
	g.Seed()

	turn, _ := g.Place(entity.SegmentTurn)
	pos := turn.Position()
	if !near(pos.X(), -2) || !near(pos.Z(), 10) {
		t.Fatalf("turn plank at %v, want x=-2 z=10", pos)
	}
	if !near(g.Cursor().X(), -7) || !near(g.Cursor().Z(), 10) {
		t.Fatalf("cursor after turn = %v, want x=-7 z=10", g.Cursor())
	}
	if !near(turn.Scale().X(), 5) || !near(turn.Scale().Z(), 1) {
		t.Fatalf("turn plank scale = %v, want long on X", turn.Scale())
	}
}

func TestStraightAfterTurn(t *testing.T) {
	g := New(DefaultConfig(), &scripted{}, 1)
	g.Seed()
	g.Place(entity.SegmentTurn)

	straight, _ := g.Place(entity.SegmentStraight)
	pos := straight.Position()
	if !near(pos.X(), -5) || !near(pos.Z(), 12) {
		t.Fatalf("straight plank at %v, want x=-5 z=12", pos)
	}
	if !near(g.Cursor().Z(), 17) {
		t.Fatalf("cursor z = %v, want 17", g.Cursor().Z())
	}
}

func TestRepeatedTurnsAdvanceAlongX(t *testing.T) {
	g := New(DefaultConfig(), &scripted{}, 1)
	g.Seed()
	a, _ := g.Place(entity.SegmentTurn)
	b, _ := g.Place(entity.SegmentTurn)
	if !near(b.Position().X(), a.Position().X()-5) || !near(b.Position().Z(), a.Position().Z()) {
		t.Fatalf("second turn at %v, first at %v", b.Position(), a.Position())
	}
}

func TestPlacementAnimation(t *testing.T) {
	g := New(DefaultConfig(), &scripted{}, 1)
	g.Seed()
	p, _ := g.Place(entity.SegmentStraight)

	if p.Phase != entity.PhasePlacing {
		t.Fatalf("new plank phase = %v, want placing", p.Phase)
	}
	start := p.Position().Y()
	g.Advance(0.1)
	if !near(p.Position().Y(), start-0.22) {
		t.Fatalf("after one step y=%v, want %v", p.Position().Y(), start-0.22)
	}
	for i := 0; i < 100 && g.Placing() != nil; i++ {
		g.Advance(0.1)
	}
	if g.Placing() != nil {
		t.Fatal("placement never finished")
	}
	if p.Position().Y() != p.TargetY {
		t.Fatalf("rest y = %v, want exactly %v", p.Position().Y(), p.TargetY)
	}
	if p.Phase != entity.PhaseResting {
		t.Fatalf("phase = %v, want resting", p.Phase)
	}
}

func TestNewPlacementSettlesPrevious(t *testing.T) {
	g := New(DefaultConfig(), &scripted{}, 1)
	g.Seed()
	first, _ := g.Place(entity.SegmentStraight)
	g.Advance(0.1)
	second, _ := g.Place(entity.SegmentStraight)

	if first.Phase != entity.PhaseResting || first.Position().Y() != first.TargetY {
		t.Fatalf("previous placement not settled: phase=%v y=%v", first.Phase, first.Position().Y())
	}
	if g.Placing() != second {
		t.Fatal("newest plank should be the one mid-placement")
	}
}

func TestEvictionCap(t *testing.T) {
	cfg := DefaultConfig()
	g := New(cfg, rand.New(rand.NewSource(42)), 1)
	g.Seed()

	for g.Len() < cfg.WindowCap {
		_, ev := g.CreateNext()
		if ev != nil {
			t.Fatalf("evicted with only %d planks", g.Len())
		}
	}
	oldest := g.Planks()[0]
	_, ev := g.CreateNext()
	if ev != oldest {
		t.Fatalf("expected oldest plank %d evicted, got %v", oldest.Handle(), ev)
	}
	if oldest.Phase != entity.PhaseRemoving {
		t.Fatalf("evicted phase = %v", oldest.Phase)
	}
	if !near(oldest.TargetY, oldest.Position().Y()-cfg.SinkDepth) {
		t.Fatalf("sink target %v", oldest.TargetY)
	}

	// A second overflow while the removal runs must not start another.
	_, ev = g.CreateNext()
	if ev != nil {
		t.Fatal("second removal started while one is in progress")
	}

	var removed *entity.Plank
	for i := 0; i < 100 && removed == nil; i++ {
		removed, ev = g.Advance(0.1)
	}
	if removed != oldest {
		t.Fatalf("removal finished with %v", removed)
	}
	if p, idx := g.Find(oldest.Handle()); p != nil || idx != -1 {
		t.Fatal("removed plank still in window")
	}
	if ev == nil {
		t.Fatal("window still over capacity but no follow-up eviction")
	}
	if g.Removing() != ev || ev != g.Planks()[0] {
		t.Fatal("follow-up eviction should target the new oldest plank")
	}
}

func TestWindowStaysBounded(t *testing.T) {
	cfg := DefaultConfig()
	g := New(cfg, rand.New(rand.NewSource(7)), 1)
	g.Seed()
	for i := 0; i < 200; i++ {
		if i%3 == 0 {
			g.CreateNext()
		}
		g.Advance(1.0 / 60)

		removing := 0
		for _, p := range g.Planks() {
			if p.Phase == entity.PhaseRemoving {
				removing++
			}
		}
		if removing > 1 {
			t.Fatalf("step %d: %d planks removing at once", i, removing)
		}
	}
}

func TestHandlesAreUniqueAndIncreasing(t *testing.T) {
	g := New(DefaultConfig(), rand.New(rand.NewSource(3)), 10)
	g.Seed()
	for i := 0; i < 5; i++ {
		g.CreateNext()
	}
	prev := entity.Handle(0)
	for _, p := range g.Planks() {
		if p.Handle() <= prev {
			t.Fatalf("handle %d not increasing after %d", p.Handle(), prev)
		}
		prev = p.Handle()
	}
	if g.Planks()[0].Handle() != 10 {
		t.Fatalf("first handle = %d, want 10", g.Planks()[0].Handle())
	}
}

func TestSameSeedSamePath(t *testing.T) {
	a := New(DefaultConfig(), rand.New(rand.NewSource(99)), 1)
	b := New(DefaultConfig(), rand.New(rand.NewSource(99)), 1)
	a.Seed()
	b.Seed()
	for i := 0; i < 20; i++ {
		pa, _ := a.CreateNext()
		pb, _ := b.CreateNext()
		if pa.Kind != pb.Kind || pa.Position() != pb.Position() || pa.Material() != pb.Material() {
			t.Fatalf("segment %d differs: %v/%v vs %v/%v", i, pa.Kind, pa.Position(), pb.Kind, pb.Position())
		}
	}
}
