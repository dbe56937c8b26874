package render

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/humboldt-xie/voxelstream/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chunkWith(coord world.ChunkCoord, set map[Vec3]world.Kind) *world.Chunk {
	var blocks world.Blocks
	for p, k := range set {
		blocks.Set(p, k)
	}
	return world.NewChunkFromBlocks(coord, &blocks)
}

func solidChunk(coord world.ChunkCoord, k world.Kind) *world.Chunk {
	var blocks world.Blocks
	for i := range blocks {
		blocks[i] = k
	}
	return world.NewChunkFromBlocks(coord, &blocks)
}

func checkBuffers(t *testing.T, m *Mesh) {
	t.Helper()
	require.Equal(t, len(m.Positions), len(m.Normals))
	require.Equal(t, len(m.Positions), len(m.UVs))
	require.Equal(t, len(m.Positions)/4*6, len(m.Indices))
	for _, i := range m.Indices {
		require.Less(t, int(i), len(m.Positions))
	}
}

func TestSingleVoxelSixFaces(t *testing.T) {
	c := chunkWith(world.ChunkCoord{}, map[Vec3]world.Kind{{X: 3, Y: 0, Z: 3}: world.Bedrock})
	chunks := world.ChunkMap{}
	chunks.Add(c)

	m := BuildChunkMesh(c, world.NewBlockAccess(chunks), DefaultAtlas())
	checkBuffers(t, m)
	assert.Equal(t, 6, m.Faces())
	assert.Equal(t, 24, len(m.Positions))
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, m.Indices[:6])

	// first face is the top, lifted half a block above the voxel center
	for _, p := range m.Positions[:4] {
		assert.Equal(t, float32(0.5), p.Y())
	}
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, m.Normals[0])
}

func TestAdjacentVoxelsHideSharedFaces(t *testing.T) {
	c := chunkWith(world.ChunkCoord{}, map[Vec3]world.Kind{
		{X: 3, Y: 5, Z: 3}: world.Stone,
		{X: 4, Y: 5, Z: 3}: world.Stone,
	})
	m := BuildChunkMesh(c, world.NewBlockAccess(world.ChunkMap{}), DefaultAtlas())
	assert.Equal(t, 10, m.Faces())
}

func TestSeethroughNeighbour(t *testing.T) {
	c := chunkWith(world.ChunkCoord{}, map[Vec3]world.Kind{
		{X: 3, Y: 5, Z: 3}: world.Stone,
		{X: 4, Y: 5, Z: 3}: world.OakLeaf,
	})
	m := BuildChunkMesh(c, world.NewBlockAccess(world.ChunkMap{}), DefaultAtlas())
	// the stone shows all six faces, the leaf is not meshed
	assert.Equal(t, 6, m.Faces())
	east := 0
	for _, n := range m.Normals {
		if n == (mgl32.Vec3{1, 0, 0}) {
			east++
		}
	}
	assert.Equal(t, 4, east, "the face towards the leaf is kept")
}

func TestIsolatedLeafEmitsNothing(t *testing.T) {
	c := chunkWith(world.ChunkCoord{}, map[Vec3]world.Kind{{X: 7, Y: 40, Z: 7}: world.OakLeaf})
	m := BuildChunkMesh(c, world.NewBlockAccess(world.ChunkMap{}), DefaultAtlas())
	checkBuffers(t, m)
	assert.Equal(t, 0, m.Faces())
	assert.Empty(t, m.Indices)
}

func TestUnknownNeighboursAreOpen(t *testing.T) {
	c := solidChunk(world.ChunkCoord{}, world.Stone)
	m := BuildChunkMesh(c, world.NewBlockAccess(world.ChunkMap{}), DefaultAtlas())
	checkBuffers(t, m)
	side := world.ChunkSize * world.ChunkHeight
	top := world.ChunkSize * world.ChunkSize
	assert.Equal(t, 4*side+2*top, m.Faces())
}

func TestLoadedNeighboursCull(t *testing.T) {
	center := solidChunk(world.ChunkCoord{}, world.Stone)
	chunks := world.ChunkMap{}
	chunks.Add(center)
	for _, n := range center.Coord().Neighbors() {
		chunks.Add(solidChunk(n, world.Dirt))
	}
	m := BuildChunkMesh(center, world.NewBlockAccess(chunks), DefaultAtlas())
	top := world.ChunkSize * world.ChunkSize
	assert.Equal(t, 2*top, m.Faces(), "only the top and bottom of the world remain")
}

// A solid block on the seam of two loaded chunks is seen the same way from both sides.
func TestSeamConsistency(t *testing.T) {
	a := chunkWith(world.ChunkCoord{X: 0, Z: 0}, map[Vec3]world.Kind{{X: 15, Y: 10, Z: 4}: world.Stone})
	b := chunkWith(world.ChunkCoord{X: 1, Z: 0}, map[Vec3]world.Kind{{X: 0, Y: 10, Z: 4}: world.Stone})
	chunks := world.ChunkMap{}
	chunks.Add(a)
	chunks.Add(b)
	access := world.NewBlockAccess(chunks)

	ma := BuildChunkMesh(a, access, DefaultAtlas())
	mb := BuildChunkMesh(b, access, DefaultAtlas())
	assert.Equal(t, 5, ma.Faces())
	assert.Equal(t, 5, mb.Faces())
	for _, n := range ma.Normals {
		assert.NotEqual(t, mgl32.Vec3{1, 0, 0}, n)
	}
	for _, n := range mb.Normals {
		assert.NotEqual(t, mgl32.Vec3{-1, 0, 0}, n)
	}

	// once b is gone, a draws its seam face again
	delete(chunks, b.Coord())
	assert.Equal(t, 6, BuildChunkMesh(a, access, DefaultAtlas()).Faces())
}

func TestMeshUsesAtlasUVs(t *testing.T) {
	c := chunkWith(world.ChunkCoord{}, map[Vec3]world.Kind{{X: 0, Y: 1, Z: 0}: world.Grass})
	atlas := DefaultAtlas()
	m := BuildChunkMesh(c, world.NewBlockAccess(world.ChunkMap{}), atlas)
	require.Equal(t, 6, m.Faces())

	top := atlas.UVs(world.TexGrassTop)
	bottom := atlas.UVs(world.TexDirt)
	assert.Equal(t, top[:], m.UVs[0:4])
	assert.Equal(t, bottom[:], m.UVs[4:8])
}

func TestFaceWinding(t *testing.T) {
	for _, d := range world.Directions {
		v := FaceVertices(d)
		normal := v[1].Sub(v[0]).Cross(v[2].Sub(v[0])).Normalize()
		assert.Equal(t, FaceNormal(d), normal, "face %v", d)
	}
}

func TestAtlasGrid(t *testing.T) {
	a := NewTextureAtlas(11)
	assert.Equal(t, 4, a.TilesPerRow())
	x, y := a.Tile(world.TextureID(5))
	assert.Equal(t, 1, x)
	assert.Equal(t, 1, y)

	uv := a.UVs(world.TextureID(5))
	assert.Equal(t, mgl32.Vec2{0.5, 0.5}, uv[0])
	assert.Equal(t, mgl32.Vec2{0.25, 0.5}, uv[1])
	assert.Equal(t, mgl32.Vec2{0.25, 0.25}, uv[2])
	assert.Equal(t, mgl32.Vec2{0.5, 0.25}, uv[3])

	assert.Equal(t, 1, NewTextureAtlas(1).TilesPerRow())
	assert.Equal(t, 3, NewTextureAtlas(9).TilesPerRow())
}

func TestBuildAtlasImage(t *testing.T) {
	atlas := DefaultAtlas()
	sand := imaging.New(32, 32, color.NRGBA{1, 2, 3, 255})
	img := BuildAtlasImage(atlas, map[world.TextureID]image.Image{world.TexSand: sand}, TileSize)
	size := atlas.TilesPerRow() * TileSize
	require.Equal(t, image.Rect(0, 0, size, size), img.Bounds())

	col, row := atlas.Tile(world.TexSand)
	px := img.NRGBAAt(col*TileSize+3, size-row*TileSize-3)
	assert.Equal(t, color.NRGBA{1, 2, 3, 255}, px)

	col, row = atlas.Tile(world.TexSnow)
	px = img.NRGBAAt(col*TileSize+3, size-row*TileSize-3)
	assert.Equal(t, TileColor(world.TexSnow), px)
}

func TestLoadTiles(t *testing.T) {
	dir := t.TempDir()
	img := imaging.New(8, 8, color.NRGBA{9, 9, 9, 255})
	require.NoError(t, imaging.Save(img, filepath.Join(dir, world.TexDirt.FileName())))

	tiles, err := LoadTiles(dir)
	require.NoError(t, err)
	assert.Len(t, tiles, 1)
	assert.Contains(t, tiles, world.TexDirt)
}

func TestShowFaces(t *testing.T) {
	c := chunkWith(world.ChunkCoord{}, map[Vec3]world.Kind{
		{X: 3, Y: 5, Z: 3}: world.Stone,
		{X: 3, Y: 6, Z: 3}: world.Stone,
	})
	chunks := world.ChunkMap{}
	chunks.Add(c)
	show := ShowFaces(world.NewBlockAccess(chunks), Vec3{X: 3, Y: 5, Z: 3})
	assert.Equal(t, [6]bool{false, true, true, true, true, true}, show)
}

func TestFrustumChunkVisible(t *testing.T) {
	v := world.NewViewer(mgl32.Vec3{8, 70, 8})
	f := NewFrustum(world.Projection(65, 4.0/3).Mul4(v.Matrix()))

	assert.True(t, f.ChunkVisible(world.ChunkCoord{X: 0, Z: 0}), "viewer chunk")
	assert.True(t, f.ChunkVisible(world.ChunkCoord{X: 0, Z: -3}), "ahead")
	assert.False(t, f.ChunkVisible(world.ChunkCoord{X: 0, Z: 3}), "behind")
	assert.False(t, f.ChunkVisible(world.ChunkCoord{X: 20, Z: -2}), "far to the side")
}
