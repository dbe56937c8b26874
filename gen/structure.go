package gen

import (
	"math"

	"github.com/humboldt-xie/voxelstream/world"
)

// BlockWriter is the write capability a structure uses to place blocks.
type BlockWriter interface {
	SetBlock(pos world.Vec3, k world.Kind) bool
}

// StructureRule places a structure on a column when the hash roll passes.
type StructureRule struct {
	Name      string
	Rarity    float64
	MinHeight int
	MaxHeight int
	Ground    []world.Kind

	// Margin is the horizontal clearance the structure needs inside its chunk.
	Margin   int
	Generate func(w BlockWriter, base world.Vec3)
}

// ShouldPlace reports whether the column (x, z) with surface height rolls a structure.
func (r *StructureRule) ShouldPlace(x, z, height int, seed uint32) bool {
	if height < r.MinHeight || height > r.MaxHeight {
		return false
	}
	roll := float64(Hash2(x, z, seed)) / float64(math.MaxUint32)
	return roll < r.Rarity
}

func (r *StructureRule) allowsGround(k world.Kind) bool {
	if len(r.Ground) == 0 {
		return true
	}
	for _, g := range r.Ground {
		if g == k {
			return true
		}
	}
	return false
}

// Hash2 mixes a column position with a seed.
func Hash2(x, z int, seed uint32) uint32 {
	h := seed ^ uint32(int32(x))*0x9E3779B9 ^ uint32(int32(z))*0x85EBCA6B
	h ^= h >> 16
	h *= 0x7FEB352D
	h ^= h >> 15
	h *= 0x846CA68B
	h ^= h >> 16
	return h
}

// OakTree grows a trunk and a round leaf canopy on grass.
func OakTree(waterLevel int) StructureRule {
	return StructureRule{
		Name:      "oak_tree",
		Rarity:    0.01,
		MinHeight: waterLevel,
		MaxHeight: world.ChunkHeight - 10,
		Ground:    []world.Kind{world.Grass},
		Margin:    2,
		Generate:  placeOakTree,
	}
}

func placeOakTree(w BlockWriter, base world.Vec3) {
	const trunk = 5
	top := base.Y + trunk
	for y := base.Y + 1; y <= top; y++ {
		w.SetBlock(world.Vec3{X: base.X, Y: y, Z: base.Z}, world.OakWood)
	}
	for y := top - 2; y <= top+1; y++ {
		for ox := -2; ox <= 2; ox++ {
			for oz := -2; oz <= 2; oz++ {
				d := ox*ox + oz*oz + (y-top)*(y-top)
				if d < 6 {
					w.SetBlock(world.Vec3{X: base.X + ox, Y: y, Z: base.Z + oz}, world.OakLeaf)
				}
			}
		}
	}
}

// chunkWriter lets structures write into a chunk under generation using
// world coordinates. Only air is replaced and anything outside the chunk is
// dropped.
type chunkWriter struct {
	origin world.Vec3
	blocks *world.Blocks
}

func (w chunkWriter) SetBlock(pos world.Vec3, k world.Kind) bool {
	local := pos.Sub(w.origin)
	if cur, ok := w.blocks.Get(local); !ok || cur != world.Air {
		return false
	}
	return w.blocks.Set(local, k)
}
