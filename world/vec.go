package world

import "fmt"

// Vec3 is an integer block position in world space.
type Vec3 struct {
	X, Y, Z int
}

func (v Vec3) Left() Vec3 {
	return Vec3{v.X - 1, v.Y, v.Z}
}
func (v Vec3) Right() Vec3 {
	return Vec3{v.X + 1, v.Y, v.Z}
}
func (v Vec3) Up() Vec3 {
	return Vec3{v.X, v.Y + 1, v.Z}
}
func (v Vec3) Down() Vec3 {
	return Vec3{v.X, v.Y - 1, v.Z}
}
func (v Vec3) Front() Vec3 {
	return Vec3{v.X, v.Y, v.Z + 1}
}
func (v Vec3) Back() Vec3 {
	return Vec3{v.X, v.Y, v.Z - 1}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Offset returns the neighbour of v across the face d.
func (v Vec3) Offset(d Direction) Vec3 {
	return v.Add(d.Normal())
}

// Chunkid returns the coordinate of the chunk owning v.
func (v Vec3) Chunkid() ChunkCoord {
	return ChunkCoord{FloorDiv(v.X, ChunkSize), FloorDiv(v.Z, ChunkSize)}
}

// Local returns v relative to the origin of its owning chunk. Y is unchanged.
func (v Vec3) Local() Vec3 {
	return Vec3{Mod(v.X, ChunkSize), v.Y, Mod(v.Z, ChunkSize)}
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%d,%d,%d)", v.X, v.Y, v.Z)
}

// ChunkCoord identifies a full-height chunk column.
type ChunkCoord struct {
	X, Z int
}

// Origin is the world position of the chunk's minimum corner.
func (c ChunkCoord) Origin() Vec3 {
	return Vec3{c.X * ChunkSize, 0, c.Z * ChunkSize}
}

// Neighbors returns the four horizontally adjacent coordinates.
func (c ChunkCoord) Neighbors() [4]ChunkCoord {
	return [4]ChunkCoord{
		{c.X - 1, c.Z},
		{c.X + 1, c.Z},
		{c.X, c.Z - 1},
		{c.X, c.Z + 1},
	}
}

// Chebyshev is the ring distance between two coordinates.
func (c ChunkCoord) Chebyshev(o ChunkCoord) int {
	dx, dz := AbsInt(c.X-o.X), AbsInt(c.Z-o.Z)
	if dx > dz {
		return dx
	}
	return dz
}

// DistSq is the squared euclidean distance in chunk units.
func (c ChunkCoord) DistSq(o ChunkCoord) int {
	dx, dz := c.X-o.X, c.Z-o.Z
	return dx*dx + dz*dz
}

func (c ChunkCoord) String() string {
	return fmt.Sprintf("[%d,%d]", c.X, c.Z)
}
