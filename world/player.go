package world

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

type Movement int

const (
	MoveForward Movement = iota
	MoveBackward
	MoveLeft
	MoveRight
)

// Position is a viewer pose. Rx is yaw and Ry pitch, both in degrees.
type Position struct {
	mgl32.Vec3
	Rx, Ry float32
}

func (p *Position) Front() mgl32.Vec3 {
	front := mgl32.Vec3{
		math32.Cos(mgl32.DegToRad(p.Ry)) * math32.Cos(mgl32.DegToRad(p.Rx)),
		math32.Sin(mgl32.DegToRad(p.Ry)),
		math32.Cos(mgl32.DegToRad(p.Ry)) * math32.Sin(mgl32.DegToRad(p.Rx)),
	}
	return front.Normalize()
}

// Viewer is the point the world is streamed around.
type Viewer struct {
	Position
	pre Position
}

func NewViewer(pos mgl32.Vec3) *Viewer {
	v := &Viewer{}
	v.Position = Position{Vec3: pos, Rx: -90, Ry: 0}
	v.pre = v.Position
	return v
}

func (v *Viewer) Pos() mgl32.Vec3 {
	return v.Position.Vec3
}

func (v *Viewer) SetPos(pos mgl32.Vec3) {
	v.pre = v.Position
	v.Position.Vec3 = pos
}

// Chunk returns the coordinate of the chunk under the viewer.
func (v *Viewer) Chunk() ChunkCoord {
	return ChunkAt(v.Pos())
}

// Moved reports whether the last update crossed a chunk border.
func (v *Viewer) Moved() bool {
	return ChunkAt(v.pre.Vec3) != ChunkAt(v.Position.Vec3)
}

func (v *Viewer) Right() mgl32.Vec3 {
	return v.Front().Cross(mgl32.Vec3{0, 1, 0}).Normalize()
}

// WalkFront is the heading projected onto the horizontal plane.
func (v *Viewer) WalkFront() mgl32.Vec3 {
	return mgl32.Vec3{0, 1, 0}.Cross(v.Right()).Normalize()
}

func (v *Viewer) Move(dir Movement, delta float32) {
	v.pre = v.Position
	switch dir {
	case MoveForward:
		v.Position.Vec3 = v.Position.Add(v.WalkFront().Mul(delta))
	case MoveBackward:
		v.Position.Vec3 = v.Position.Sub(v.WalkFront().Mul(delta))
	case MoveLeft:
		v.Position.Vec3 = v.Position.Sub(v.Right().Mul(delta))
	case MoveRight:
		v.Position.Vec3 = v.Position.Add(v.Right().Mul(delta))
	}
}

// Turn changes yaw and pitch, clamping pitch to +-89 degrees.
func (v *Viewer) Turn(dx, dy float32) {
	v.Position.Rx += dx
	v.Position.Ry += dy
	if v.Position.Ry > 89 {
		v.Position.Ry = 89
	}
	if v.Position.Ry < -89 {
		v.Position.Ry = -89
	}
}

// ChunkAt converts a world-space position to its chunk coordinate.
func ChunkAt(pos mgl32.Vec3) ChunkCoord {
	return ChunkCoord{
		int(math32.Floor(pos.X() / ChunkSize)),
		int(math32.Floor(pos.Z() / ChunkSize)),
	}
}

// NearBlock returns the block containing pos.
func NearBlock(pos mgl32.Vec3) Vec3 {
	return Vec3{
		int(math32.Floor(pos.X())),
		int(math32.Floor(pos.Y())),
		int(math32.Floor(pos.Z())),
	}
}

// Matrix is the view matrix looking along the viewer's heading.
func (v *Viewer) Matrix() mgl32.Mat4 {
	front := v.Front()
	up := v.Right().Cross(front).Normalize()
	return mgl32.LookAtV(v.Pos(), v.Pos().Add(front), up)
}

// Projection is the perspective matrix used for culling.
func Projection(fovy, aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(fovy), aspect, 0.01, 1000)
}
