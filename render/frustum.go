package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/humboldt-xie/voxelstream/world"
)

// Frustum holds the six clip planes of a view-projection matrix.
type Frustum [6]mgl32.Vec4

func NewFrustum(mat mgl32.Mat4) Frustum {
	c1, c2, c3, c4 := mat.Rows()
	return Frustum{
		c4.Add(c1), // left
		c4.Sub(c1), // right
		c4.Sub(c2), // top
		c4.Add(c2), // bottom
		c4.Add(c3), // near
		c4.Sub(c3), // far
	}
}

// ChunkVisible reports whether any part of the chunk column lies inside f.
func (f Frustum) ChunkVisible(coord world.ChunkCoord) bool {
	o := coord.Origin()
	x, z := float32(o.X), float32(o.Z)
	const m = world.ChunkSize
	const h = world.ChunkHeight

	points := [8]mgl32.Vec3{
		{x, 0, z},
		{x + m, 0, z},
		{x + m, 0, z + m},
		{x, 0, z + m},
		{x, h, z},
		{x + m, h, z},
		{x + m, h, z + m},
		{x, h, z + m},
	}
	for _, plane := range f {
		in := false
		for _, p := range points {
			if plane.Dot(p.Vec4(1)) >= 0 {
				in = true
				break
			}
		}
		if !in {
			return false
		}
	}
	return true
}
