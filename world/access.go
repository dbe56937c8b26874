package world

// BlockAccess resolves world positions across chunk boundaries. ok is false
// when the owning chunk is not loaded or y is outside the world.
type BlockAccess interface {
	GetBlock(pos Vec3) (Kind, bool)
}

// ChunkLookup finds a loaded chunk by coordinate.
type ChunkLookup interface {
	Lookup(coord ChunkCoord) (*Chunk, bool)
}

// LookupFunc adapts a function to ChunkLookup.
type LookupFunc func(coord ChunkCoord) (*Chunk, bool)

func (f LookupFunc) Lookup(coord ChunkCoord) (*Chunk, bool) {
	return f(coord)
}

type blockAccess struct {
	chunks ChunkLookup
}

// NewBlockAccess returns a read-only view over chunks.
func NewBlockAccess(chunks ChunkLookup) BlockAccess {
	return blockAccess{chunks: chunks}
}

func (a blockAccess) GetBlock(pos Vec3) (Kind, bool) {
	if pos.Y < 0 || pos.Y >= ChunkHeight {
		return Air, false
	}
	c, ok := a.chunks.Lookup(pos.Chunkid())
	if !ok || c == nil {
		return Air, false
	}
	return c.GetLocal(pos.Local())
}

// ChunkMap is a plain map implementing ChunkLookup.
type ChunkMap map[ChunkCoord]*Chunk

func (m ChunkMap) Lookup(coord ChunkCoord) (*Chunk, bool) {
	c, ok := m[coord]
	return c, ok
}

func (m ChunkMap) Add(c *Chunk) {
	m[c.Coord()] = c
}
