package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/humboldt-xie/voxelstream/world"
)

// Mesh is the triangle list of one chunk in chunk-local space. The four
// vertex buffers are index aligned.
type Mesh struct {
	Coord     world.ChunkCoord
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	UVs       []mgl32.Vec2
	Indices   []uint32
}

// Faces is the number of quads in the mesh.
func (m *Mesh) Faces() int {
	return len(m.Indices) / 6
}

// Translation is the world offset a renderer applies to the mesh.
func (m *Mesh) Translation() mgl32.Vec3 {
	o := m.Coord.Origin()
	return mgl32.Vec3{float32(o.X), float32(o.Y), float32(o.Z)}
}

// MeshBuilder appends quads into pre-sized buffers.
type MeshBuilder struct {
	positions []mgl32.Vec3
	normals   []mgl32.Vec3
	uvs       []mgl32.Vec2
	indices   []uint32
}

func NewMeshBuilder(faces int) *MeshBuilder {
	return &MeshBuilder{
		positions: make([]mgl32.Vec3, 0, faces*4),
		normals:   make([]mgl32.Vec3, 0, faces*4),
		uvs:       make([]mgl32.Vec2, 0, faces*4),
		indices:   make([]uint32, 0, faces*6),
	}
}

// AddFace emits the quad of face d for the block at local position pos.
func (b *MeshBuilder) AddFace(d world.Direction, pos Vec3, uvs [4]mgl32.Vec2) {
	base := uint32(len(b.positions))
	p := mgl32.Vec3{float32(pos.X), float32(pos.Y), float32(pos.Z)}
	n := faceNormals[d]
	for i, v := range faceVertices[d] {
		b.positions = append(b.positions, v.Add(p))
		b.normals = append(b.normals, n)
		b.uvs = append(b.uvs, uvs[i])
	}
	b.indices = append(b.indices, base, base+1, base+2, base, base+2, base+3)
}

func (b *MeshBuilder) Build(coord world.ChunkCoord) *Mesh {
	return &Mesh{
		Coord:     coord,
		Positions: b.positions,
		Normals:   b.normals,
		UVs:       b.uvs,
		Indices:   b.indices,
	}
}
