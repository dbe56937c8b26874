package render

import (
	"github.com/humboldt-xie/voxelstream/world"
)

const (
	padSize   = world.ChunkSize + 2
	padHeight = world.ChunkHeight + 2
	padVolume = padSize * padSize * padHeight
)

func padIndex(x, y, z int) int {
	return x + z*padSize + y*padSize*padSize
}

// solidity is a chunk's occlusion mask with one cell of margin on every side.
type solidity [padVolume]bool

// fillSolidity copies the chunk into the interior and asks access for every
// margin cell. Unknown neighbours count as open.
func fillSolidity(s *solidity, c *world.Chunk, access world.BlockAccess) {
	for x := 0; x < world.ChunkSize; x++ {
		for z := 0; z < world.ChunkSize; z++ {
			for y := 0; y < world.ChunkHeight; y++ {
				k, _ := c.GetLocal(Vec3{X: x, Y: y, Z: z})
				s[padIndex(x+1, y+1, z+1)] = k.IsSolid()
			}
		}
	}
	origin := c.Origin()
	solid := func(local Vec3) bool {
		k, ok := access.GetBlock(origin.Add(local))
		return ok && k.IsSolid()
	}
	// -X / +X
	for _, x := range [2]int{-1, world.ChunkSize} {
		for z := -1; z <= world.ChunkSize; z++ {
			for y := -1; y <= world.ChunkHeight; y++ {
				s[padIndex(x+1, y+1, z+1)] = solid(Vec3{X: x, Y: y, Z: z})
			}
		}
	}
	// -Z / +Z
	for _, z := range [2]int{-1, world.ChunkSize} {
		for x := 0; x < world.ChunkSize; x++ {
			for y := -1; y <= world.ChunkHeight; y++ {
				s[padIndex(x+1, y+1, z+1)] = solid(Vec3{X: x, Y: y, Z: z})
			}
		}
	}
	// below and above the column
	for _, y := range [2]int{-1, world.ChunkHeight} {
		for x := 0; x < world.ChunkSize; x++ {
			for z := 0; z < world.ChunkSize; z++ {
				s[padIndex(x+1, y+1, z+1)] = solid(Vec3{X: x, Y: y, Z: z})
			}
		}
	}
}

func exposed(s *solidity, x, y, z int, d world.Direction) bool {
	n := d.Normal()
	return !s[padIndex(x+1+n.X, y+1+n.Y, z+1+n.Z)]
}

// BuildChunkMesh emits one quad for every face of a solid block that does not
// touch another solid block, looking into neighbouring chunks through access.
// See-through blocks such as leaves are neither drawn nor hide neighbours.
func BuildChunkMesh(c *world.Chunk, access world.BlockAccess, atlas Atlas) *Mesh {
	s := new(solidity)
	fillSolidity(s, c, access)

	faces := 0
	for x := 0; x < world.ChunkSize; x++ {
		for z := 0; z < world.ChunkSize; z++ {
			for y := 0; y < world.ChunkHeight; y++ {
				if k, _ := c.GetLocal(Vec3{X: x, Y: y, Z: z}); !k.IsSolid() {
					continue
				}
				for _, d := range world.Directions {
					if exposed(s, x, y, z, d) {
						faces++
					}
				}
			}
		}
	}

	b := NewMeshBuilder(faces)
	for x := 0; x < world.ChunkSize; x++ {
		for z := 0; z < world.ChunkSize; z++ {
			for y := 0; y < world.ChunkHeight; y++ {
				k, _ := c.GetLocal(Vec3{X: x, Y: y, Z: z})
				if !k.IsSolid() {
					continue
				}
				for _, d := range world.Directions {
					if !exposed(s, x, y, z, d) {
						continue
					}
					if tex, ok := k.Texture(d); ok {
						b.AddFace(d, Vec3{X: x, Y: y, Z: z}, atlas.UVs(tex))
					}
				}
			}
		}
	}
	return b.Build(c.Coord())
}

// ShowFaces reports which faces of the block at world position id would be
// drawn, in Directions order.
func ShowFaces(access world.BlockAccess, id Vec3) [6]bool {
	var show [6]bool
	for i, d := range world.Directions {
		k, ok := access.GetBlock(id.Offset(d))
		show[i] = !ok || k.IsSeethrough()
	}
	return show
}
