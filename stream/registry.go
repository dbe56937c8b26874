package stream

import (
	"github.com/humboldt-xie/voxelstream/render"
	"github.com/humboldt-xie/voxelstream/world"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Tag says whether a loaded chunk should be drawn or only supplies boundary
// data for its neighbours.
type Tag uint8

const (
	Unmeshed Tag = iota
	Meshed
)

func (t Tag) String() string {
	if t == Meshed {
		return "meshed"
	}
	return "unmeshed"
}

// Record is the registry entry of one loaded chunk.
type Record struct {
	Chunk *world.Chunk
	Tag   Tag
	Mesh  *render.Mesh

	dirty bool
}

// NeedsMesh reports whether the mesh pass should (re)build this record.
func (r *Record) NeedsMesh() bool {
	return r.Tag == Meshed && (r.Mesh == nil || r.dirty)
}

// Registry is the set of loaded chunks, keyed by coordinate.
type Registry struct {
	records map[world.ChunkCoord]*Record
}

func NewRegistry() *Registry {
	return &Registry{records: make(map[world.ChunkCoord]*Record)}
}

// Lookup implements world.ChunkLookup.
func (r *Registry) Lookup(coord world.ChunkCoord) (*world.Chunk, bool) {
	rec, ok := r.records[coord]
	if !ok {
		return nil, false
	}
	return rec.Chunk, true
}

func (r *Registry) Get(coord world.ChunkCoord) (*Record, bool) {
	rec, ok := r.records[coord]
	return rec, ok
}

func (r *Registry) Insert(c *world.Chunk, tag Tag) *Record {
	rec := &Record{Chunk: c, Tag: tag}
	r.records[c.Coord()] = rec
	return rec
}

func (r *Registry) Remove(coord world.ChunkCoord) (*Record, bool) {
	rec, ok := r.records[coord]
	if ok {
		delete(r.records, coord)
	}
	return rec, ok
}

func (r *Registry) Len() int {
	return len(r.records)
}

// Count returns how many records carry tag t.
func (r *Registry) Count(t Tag) int {
	n := 0
	for _, rec := range r.records {
		if rec.Tag == t {
			n++
		}
	}
	return n
}

// Coords returns every loaded coordinate in a stable order.
func (r *Registry) Coords() []world.ChunkCoord {
	coords := maps.Keys(r.records)
	slices.SortFunc(coords, compareCoord)
	return coords
}

func compareCoord(a, b world.ChunkCoord) int {
	if a.X != b.X {
		return a.X - b.X
	}
	return a.Z - b.Z
}
