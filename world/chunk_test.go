package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flatGen struct {
	height int
	kind   Kind
}

func (g flatGen) Generate(coord ChunkCoord, blocks *Blocks) {
	for x := 0; x < ChunkSize; x++ {
		for z := 0; z < ChunkSize; z++ {
			for y := 0; y <= g.height; y++ {
				blocks.Set(Vec3{x, y, z}, g.kind)
			}
		}
	}
}

func TestIndexBijection(t *testing.T) {
	seen := make([]bool, ChunkVolume)
	for x := 0; x < ChunkSize; x++ {
		for y := 0; y < ChunkHeight; y++ {
			for z := 0; z < ChunkSize; z++ {
				i := Index(x, y, z)
				require.True(t, i >= 0 && i < ChunkVolume, "index %d out of range", i)
				require.False(t, seen[i], "index %d reused", i)
				seen[i] = true
				require.Equal(t, Vec3{x, y, z}, Unindex(i))
			}
		}
	}
	for i := range seen {
		if !seen[i] {
			t.Fatalf("index %d never produced", i)
		}
	}
}

func TestIndexOrder(t *testing.T) {
	assert.Equal(t, 1, Index(0, 1, 0))
	assert.Equal(t, ChunkHeight, Index(0, 0, 1))
	assert.Equal(t, ChunkHeight*ChunkSize, Index(1, 0, 0))
}

func TestGetLocal(t *testing.T) {
	c := NewChunk(ChunkCoord{2, -3}, flatGen{height: 4, kind: Stone})

	k, ok := c.GetLocal(Vec3{0, 0, 0})
	require.True(t, ok)
	assert.Equal(t, Stone, k)

	k, ok = c.GetLocal(Vec3{15, 5, 15})
	require.True(t, ok)
	assert.Equal(t, Air, k)

	for _, p := range []Vec3{
		{-1, 0, 0}, {ChunkSize, 0, 0},
		{0, -1, 0}, {0, ChunkHeight, 0},
		{0, 0, -1}, {0, 0, ChunkSize},
	} {
		_, ok := c.GetLocal(p)
		assert.False(t, ok, "%v should be out of bounds", p)
	}
}

func TestOrigin(t *testing.T) {
	c := NewChunk(ChunkCoord{2, -3}, flatGen{})
	assert.Equal(t, Vec3{32, 0, -48}, c.Origin())
	assert.Equal(t, ChunkCoord{2, -3}, c.Coord())
}

func TestChunkid(t *testing.T) {
	cases := []struct {
		pos   Vec3
		chunk ChunkCoord
		local Vec3
	}{
		{Vec3{0, 5, 0}, ChunkCoord{0, 0}, Vec3{0, 5, 0}},
		{Vec3{15, 5, 15}, ChunkCoord{0, 0}, Vec3{15, 5, 15}},
		{Vec3{16, 5, 16}, ChunkCoord{1, 1}, Vec3{0, 5, 0}},
		{Vec3{-1, 5, -1}, ChunkCoord{-1, -1}, Vec3{15, 5, 15}},
		{Vec3{-16, 0, -17}, ChunkCoord{-1, -2}, Vec3{0, 0, 15}},
	}
	for _, c := range cases {
		assert.Equal(t, c.chunk, c.pos.Chunkid(), "chunk of %v", c.pos)
		assert.Equal(t, c.local, c.pos.Local(), "local of %v", c.pos)
		assert.Equal(t, c.pos, c.chunk.Origin().Add(c.local))
	}
}

func TestFloorDivMod(t *testing.T) {
	for a := -40; a <= 40; a++ {
		q, m := FloorDiv(a, 16), Mod(a, 16)
		require.True(t, m >= 0 && m < 16)
		require.Equal(t, a, q*16+m)
	}
}

func TestDigestDeterministic(t *testing.T) {
	a := NewChunk(ChunkCoord{1, 1}, flatGen{height: 3, kind: Sand})
	b := NewChunk(ChunkCoord{1, 1}, flatGen{height: 3, kind: Sand})
	c := NewChunk(ChunkCoord{1, 1}, flatGen{height: 4, kind: Sand})
	assert.Equal(t, a.Digest(), b.Digest())
	assert.NotEqual(t, a.Digest(), c.Digest())
	assert.Equal(t, 3, a.Column(7, 7))
	assert.Equal(t, 4*ChunkSize*ChunkSize, a.Count(Sand))
}

func TestTextures(t *testing.T) {
	_, ok := Air.Texture(Top)
	assert.False(t, ok)

	tex, _ := Grass.Texture(Top)
	assert.Equal(t, TexGrassTop, tex)
	tex, _ = Grass.Texture(Bottom)
	assert.Equal(t, TexDirt, tex)
	tex, _ = Grass.Texture(Left)
	assert.Equal(t, TexGrassSide, tex)
	tex, _ = OakWood.Texture(Bottom)
	assert.Equal(t, TexOakWoodTop, tex)
	tex, _ = OakWood.Texture(Front)
	assert.Equal(t, TexOakWoodSide, tex)

	for k := Grass; k < kindCount; k++ {
		for _, d := range Directions {
			_, ok := k.Texture(d)
			assert.True(t, ok, "%v %v", k, d)
		}
	}
	assert.True(t, Air.IsSeethrough())
	assert.True(t, OakLeaf.IsSeethrough())
	assert.False(t, Water.IsSeethrough())
	assert.True(t, Bedrock.IsSolid())
}

func TestDirections(t *testing.T) {
	for _, d := range Directions {
		n := d.Normal()
		o := d.Opposite().Normal()
		assert.Equal(t, Vec3{}, n.Add(o))
	}
	assert.Equal(t, Vec3{1, 2, 4}, Vec3{1, 2, 3}.Offset(Front))
}
