package world

import (
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockAccessAcrossChunks(t *testing.T) {
	m := ChunkMap{}
	m.Add(NewChunk(ChunkCoord{0, 0}, flatGen{height: 2, kind: Dirt}))
	m.Add(NewChunk(ChunkCoord{-1, 0}, flatGen{height: 5, kind: Sand}))
	access := NewBlockAccess(m)

	k, ok := access.GetBlock(Vec3{0, 1, 0})
	require.True(t, ok)
	assert.Equal(t, Dirt, k)

	k, ok = access.GetBlock(Vec3{-1, 4, 3})
	require.True(t, ok)
	assert.Equal(t, Sand, k)

	k, ok = access.GetBlock(Vec3{-16, 6, 15})
	require.True(t, ok)
	assert.Equal(t, Air, k)

	_, ok = access.GetBlock(Vec3{16, 0, 0})
	assert.False(t, ok, "unloaded chunk")
	_, ok = access.GetBlock(Vec3{0, -1, 0})
	assert.False(t, ok, "below world")
	_, ok = access.GetBlock(Vec3{0, ChunkHeight, 0})
	assert.False(t, ok, "above world")
}

func TestChunkAt(t *testing.T) {
	assert.Equal(t, ChunkCoord{0, 0}, ChunkAt(mgl32.Vec3{0, 40, 15.9}))
	assert.Equal(t, ChunkCoord{-1, 0}, ChunkAt(mgl32.Vec3{-0.1, 40, 0}))
	assert.Equal(t, ChunkCoord{2, -2}, ChunkAt(mgl32.Vec3{32, 0, -17}))
	assert.Equal(t, Vec3{-1, 3, 2}, NearBlock(mgl32.Vec3{-0.5, 3.2, 2.9}))
}

func TestViewerMove(t *testing.T) {
	v := NewViewer(mgl32.Vec3{8, 70, 8})
	v.Turn(90, 0)
	start := v.Chunk()
	v.Move(MoveForward, 16)
	assert.True(t, v.Moved())
	assert.NotEqual(t, start, v.Chunk())
	assert.InDelta(t, 70, v.Pos().Y(), 1e-4)

	v.Turn(0, 200)
	assert.Equal(t, float32(89), v.Ry)
}

func TestBoltStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")
	s, err := NewBoltStore(path)
	require.NoError(t, err)

	_, ok := s.GetViewer()
	assert.False(t, ok)
	_, ok = s.GetSeed()
	assert.False(t, ok)

	p := Position{Vec3: mgl32.Vec3{-12.5, 80, 300.25}, Rx: 45, Ry: -10}
	require.NoError(t, s.UpdateViewer(p))
	require.NoError(t, s.UpdateSeed(-42))
	require.NoError(t, s.Close())

	s, err = NewBoltStore(path)
	require.NoError(t, err)
	defer s.Close()

	got, ok := s.GetViewer()
	require.True(t, ok)
	assert.Equal(t, p, got)
	seed, ok := s.GetSeed()
	require.True(t, ok)
	assert.Equal(t, int64(-42), seed)
}

func TestBoltStoreEmptyPath(t *testing.T) {
	_, err := NewBoltStore("")
	assert.Error(t, err)
}

func TestHitTest(t *testing.T) {
	m := ChunkMap{}
	m.Add(NewChunk(ChunkCoord{0, 0}, flatGen{height: 2, kind: Dirt}))
	access := NewBlockAccess(m)

	block, prev, ok := HitTest(access, mgl32.Vec3{8.5, 6.5, 8.5}, mgl32.Vec3{0, -1, 0})
	require.True(t, ok)
	assert.Equal(t, Vec3{8, 2, 8}, block)
	assert.Equal(t, Vec3{8, 3, 8}, prev)

	_, _, ok = HitTest(access, mgl32.Vec3{8.5, 6.5, 8.5}, mgl32.Vec3{0, 1, 0})
	assert.False(t, ok, "nothing above")

	_, _, ok = HitTest(access, mgl32.Vec3{8.5, 20, 8.5}, mgl32.Vec3{0, -1, 0})
	assert.False(t, ok, "out of reach")

	_, _, ok = HitTest(access, mgl32.Vec3{17, 1.5, 8.5}, mgl32.Vec3{1, 0, 0})
	assert.False(t, ok, "unloaded chunks are never hit")
}

func TestViewerMatrix(t *testing.T) {
	v := NewViewer(mgl32.Vec3{8, 70, 8})
	ahead := v.Matrix().Mul4x1(mgl32.Vec4{8, 70, 0, 1})
	assert.Less(t, ahead.Z(), float32(0), "view space looks down -z")
	behind := v.Matrix().Mul4x1(mgl32.Vec4{8, 70, 16, 1})
	assert.Greater(t, behind.Z(), float32(0))
}
