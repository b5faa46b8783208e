package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/zigzag/internal/core"
)

// Variant tags which kind of placed object an Entity is.
type Variant uint8

const (
	VariantBall Variant = iota
	VariantPlank
	VariantProp
)

func (v Variant) String() string {
	switch v {
	case VariantBall:
		return "ball"
	case VariantPlank:
		return "plank"
	case VariantProp:
		return "prop"
	default:
		return fmt.Sprintf("variant(%d)", v)
	}
}

// MeshID is an opaque reference to drawable geometry owned by the renderer.
type MeshID uint8

const (
	MeshSphere MeshID = iota
	MeshCube
)

// MaterialID is an opaque material handle. The simulation only stores and
// forwards it.
type MaterialID uint8

const (
	MaterialBall MaterialID = iota
	MaterialGround0
	MaterialGround1
	MaterialGround2
	MaterialProp
)

// GroundMaterialCount is the size of the rotating ground palette.
const GroundMaterialCount = 3

// GroundMaterial returns the i-th ground material, wrapping around the palette.
func GroundMaterial(i int) MaterialID {
	if i < 0 {
		i = -i
	}
	return MaterialGround0 + MaterialID(i%GroundMaterialCount)
}

// Handle identifies an entity for its whole lifetime. Handles are never
// reused within a run, so they stay valid while the plank window shifts.
type Handle uint64

// BallHandle is reserved for the single ball.
const BallHandle Handle = 0

// Entity is the read-only view the renderer consumes.
type Entity interface {
	Handle() Handle
	Variant() Variant
	Mesh() MeshID
	Material() MaterialID
	Position() mgl64.Vec3
	WorldMatrix() mgl64.Mat4
}

// Direction is the ball's lane of travel.
type Direction uint8

const (
	// DirForward travels toward +Z.
	DirForward Direction = iota
	// DirLateral travels toward -X.
	DirLateral
)

// Toggle returns the other direction.
func (d Direction) Toggle() Direction {
	if d == DirForward {
		return DirLateral
	}
	return DirForward
}

func (d Direction) String() string {
	if d == DirForward {
		return "forward"
	}
	return "lateral"
}

// Ball is the player's ball.
type Ball struct {
	Transform
	Dir          Direction
	FallVelocity float64
	Falling      bool
}

// NewBall creates a ball at position with a uniform scale, heading forward.
func NewBall(position mgl64.Vec3, scale float64) *Ball {
	return &Ball{
		Transform: NewTransform(position, mgl64.Vec3{}, mgl64.Vec3{scale, scale, scale}),
		Dir:       DirForward,
	}
}

func (b *Ball) Handle() Handle       { return BallHandle }
func (b *Ball) Variant() Variant     { return VariantBall }
func (b *Ball) Mesh() MeshID         { return MeshSphere }
func (b *Ball) Material() MaterialID { return MaterialBall }

// Advance moves the ball along its lane and rolls it.
func (b *Ball) Advance(deltaTime, speed, rollRate float64) {
	b.RotateRelative(mgl64.Vec3{rollRate * deltaTime, 0, 0})
	if b.Dir == DirForward {
		b.MoveRelative(mgl64.Vec3{0, 0, speed * deltaTime})
	} else {
		b.MoveRelative(mgl64.Vec3{-speed * deltaTime, 0, 0})
	}
}

// ApplyFall runs one step of the scripted drop: the accumulator grows by
// deltaTime*gravity and Y drops by the updated accumulator.
func (b *Ball) ApplyFall(deltaTime, gravity float64) {
	b.FallVelocity += deltaTime * gravity
	b.position[1] -= b.FallVelocity
	b.dirty = true
}

// SegmentKind says whether a plank runs along the forward or lateral axis.
type SegmentKind uint8

const (
	SegmentStraight SegmentKind = iota
	SegmentTurn
)

func (k SegmentKind) String() string {
	if k == SegmentStraight {
		return "straight"
	}
	return "turn"
}

// Phase is a plank's lifecycle stage.
type Phase uint8

const (
	PhasePlacing Phase = iota
	PhaseResting
	PhaseRemoving
)

func (p Phase) String() string {
	switch p {
	case PhasePlacing:
		return "placing"
	case PhaseResting:
		return "resting"
	case PhaseRemoving:
		return "removing"
	default:
		return fmt.Sprintf("phase(%d)", p)
	}
}

// Plank is one segment of the path.
type Plank struct {
	Transform
	handle   Handle
	Kind     SegmentKind
	material MaterialID
	Phase    Phase
	TargetY  float64 // resting height while placing, sink depth while removing
}

// PlankDims are the plank extents along its long and short horizontal axes
// and its thickness.
type PlankDims struct {
	Long, Short, Thickness float64
}

// NewPlank creates a plank of the given kind. Straight planks are long on Z,
// turn planks are long on X.
func NewPlank(h Handle, kind SegmentKind, position mgl64.Vec3, dims PlankDims, material MaterialID) *Plank {
	scale := mgl64.Vec3{dims.Short, dims.Thickness, dims.Long}
	if kind == SegmentTurn {
		scale = mgl64.Vec3{dims.Long, dims.Thickness, dims.Short}
	}
	return &Plank{
		Transform: NewTransform(position, mgl64.Vec3{}, scale),
		handle:    h,
		Kind:      kind,
		material:  material,
		Phase:     PhaseResting,
		TargetY:   position.Y(),
	}
}

func (p *Plank) Handle() Handle       { return p.handle }
func (p *Plank) Variant() Variant     { return VariantPlank }
func (p *Plank) Mesh() MeshID         { return MeshCube }
func (p *Plank) Material() MaterialID { return p.material }

// Transitioning reports whether the plank is mid-placement or mid-removal.
func (p *Plank) Transitioning() bool {
	return p.Phase != PhaseResting
}

// SupportBox returns the plank footprint narrowed by the forgiveness factor.
func (p *Plank) SupportBox(forgiveness float64) core.Box {
	pos, s := p.Position(), p.Scale()
	return core.NewBox(pos.X(), pos.Z(), s.X(), s.Z()).Shrink(forgiveness)
}

// Prop is a decorative object with no gameplay role.
type Prop struct {
	Transform
	handle   Handle
	mesh     MeshID
	material MaterialID
}

// NewProp creates a prop.
func NewProp(h Handle, mesh MeshID, material MaterialID, position, scale mgl64.Vec3) *Prop {
	return &Prop{
		Transform: NewTransform(position, mgl64.Vec3{}, scale),
		handle:    h,
		mesh:      mesh,
		material:  material,
	}
}

func (p *Prop) Handle() Handle       { return p.handle }
func (p *Prop) Variant() Variant     { return VariantProp }
func (p *Prop) Mesh() MeshID         { return p.mesh }
func (p *Prop) Material() MaterialID { return p.material }

var (
	_ Entity = (*Ball)(nil)
	_ Entity = (*Plank)(nil)
	_ Entity = (*Prop)(nil)
)
