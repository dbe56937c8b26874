package world

import (
	"crypto/sha256"
)

const (
	ChunkSize   = 16
	ChunkHeight = 128
	ChunkVolume = ChunkSize * ChunkSize * ChunkHeight
)

// Index maps a local position to its slot in a chunk's block array.
// y varies fastest, then z, then x.
func Index(x, y, z int) int {
	return y + z*ChunkHeight + x*ChunkHeight*ChunkSize
}

// Unindex is the inverse of Index.
func Unindex(i int) Vec3 {
	return Vec3{
		X: i / (ChunkHeight * ChunkSize),
		Y: i % ChunkHeight,
		Z: i / ChunkHeight % ChunkSize,
	}
}

// InBounds reports whether p is a valid local position.
func InBounds(p Vec3) bool {
	return p.X >= 0 && p.X < ChunkSize &&
		p.Y >= 0 && p.Y < ChunkHeight &&
		p.Z >= 0 && p.Z < ChunkSize
}

// Blocks is the dense voxel array of one chunk. It is only written while a
// chunk is being generated.
type Blocks [ChunkVolume]Kind

func (b *Blocks) Get(p Vec3) (Kind, bool) {
	if !InBounds(p) {
		return Air, false
	}
	return b[Index(p.X, p.Y, p.Z)], true
}

// Set stores k at the local position p. Out of range writes are dropped.
func (b *Blocks) Set(p Vec3, k Kind) bool {
	if !InBounds(p) {
		return false
	}
	b[Index(p.X, p.Y, p.Z)] = k
	return true
}

// Generator fills the voxels of a freshly created chunk.
type Generator interface {
	Generate(coord ChunkCoord, blocks *Blocks)
}

type Chunk struct {
	coord  ChunkCoord
	blocks Blocks
}

// NewChunk creates the chunk at coord with terrain from gen.
func NewChunk(coord ChunkCoord, gen Generator) *Chunk {
	c := &Chunk{coord: coord}
	gen.Generate(coord, &c.blocks)
	return c
}

// NewChunkFromBlocks wraps an already filled block array.
func NewChunkFromBlocks(coord ChunkCoord, blocks *Blocks) *Chunk {
	return &Chunk{coord: coord, blocks: *blocks}
}

func (c *Chunk) Coord() ChunkCoord {
	return c.coord
}

// GetLocal returns the kind at a local position, false when out of bounds.
func (c *Chunk) GetLocal(p Vec3) (Kind, bool) {
	return c.blocks.Get(p)
}

// Origin is the world-space minimum corner of the chunk.
func (c *Chunk) Origin() Vec3 {
	return c.coord.Origin()
}

// Column returns the height of the highest non-air voxel at local (x, z), or -1.
func (c *Chunk) Column(x, z int) int {
	for y := ChunkHeight - 1; y >= 0; y-- {
		if c.blocks[Index(x, y, z)] != Air {
			return y
		}
	}
	return -1
}

// Count returns how many voxels hold kind k.
func (c *Chunk) Count(k Kind) int {
	n := 0
	for _, b := range &c.blocks {
		if b == k {
			n++
		}
	}
	return n
}

// Digest hashes the voxel array.
func (c *Chunk) Digest() [32]byte {
	buf := make([]byte, ChunkVolume)
	for i, b := range &c.blocks {
		buf[i] = byte(b)
	}
	return sha256.Sum256(buf)
}
