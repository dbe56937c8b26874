package gen

import (
	"math"

	"github.com/humboldt-xie/voxelstream/world"
	"github.com/pkg/errors"
)

const blendEpsilon = 1e-4

// SurfaceTarget is the climate a biome prefers and how strongly each axis counts.
type SurfaceTarget struct {
	Temperature float64 `yaml:"temperature"`
	Moisture    float64 `yaml:"moisture"`
	TempWeight  float64 `yaml:"temp_weight"`
	MoistWeight float64 `yaml:"moist_weight"`
}

// Cost is the quartic distance between a sample and the target.
func (t SurfaceTarget) Cost(c Climate) float64 {
	dt := math.Abs(c.Temperature - t.Temperature)
	dm := math.Abs(c.Moisture - t.Moisture)
	return t.TempWeight*dt*dt*dt*dt + t.MoistWeight*dm*dm*dm*dm
}

// OffsetFunc computes a biome's height offset from its own noise field.
type OffsetFunc func(n Noise, x, z float64, c Climate) float64

// Biome is one catalog entry. Noise.Seed is relative to the world seed.
type Biome struct {
	Name   string
	Target SurfaceTarget
	Noise  NoiseConfig
	Offset OffsetFunc
	Ground world.Kind
}

type biomeEntry struct {
	Biome
	noise Noise
}

// BiomeRegistry is the read-only catalog with each biome's noise constructed.
type BiomeRegistry struct {
	entries []biomeEntry
}

// NewBiomeRegistry builds noise for every biome. An empty catalog is an error.
func NewBiomeRegistry(seed int64, biomes []Biome) (*BiomeRegistry, error) {
	if len(biomes) == 0 {
		return nil, errors.New("biome catalog is empty")
	}
	r := &BiomeRegistry{}
	for _, b := range biomes {
		if b.Offset == nil {
			return nil, errors.Errorf("biome %q has no height function", b.Name)
		}
		nc := b.Noise
		nc.Seed += seed
		n, err := NewNoise(nc)
		if err != nil {
			return nil, errors.Wrapf(err, "biome %q", b.Name)
		}
		r.entries = append(r.entries, biomeEntry{Biome: b, noise: n})
	}
	return r, nil
}

func (r *BiomeRegistry) Len() int {
	return len(r.entries)
}

func (r *BiomeRegistry) Biome(i int) *Biome {
	return &r.entries[i].Biome
}

// Pick returns the lowest-cost biome. Equal costs keep the earlier entry.
func (r *BiomeRegistry) Pick(c Climate) *Biome {
	best := 0
	bestCost := r.entries[0].Target.Cost(c)
	for i := 1; i < len(r.entries); i++ {
		if cost := r.entries[i].Target.Cost(c); cost < bestCost {
			best, bestCost = i, cost
		}
	}
	return &r.entries[best].Biome
}

// BlendedHeight averages every biome's offset at (x, z), weighted by
// 1/max(cost, eps)^2.5.
func (r *BiomeRegistry) BlendedHeight(x, z int, c Climate) float64 {
	var sum, wsum float64
	fx, fz := float64(x), float64(z)
	for i := range r.entries {
		e := &r.entries[i]
		w := 1 / math.Pow(math.Max(e.Target.Cost(c), blendEpsilon), 2.5)
		sum += w * e.Offset(e.noise, fx, fz, c)
		wsum += w
	}
	return sum / wsum
}
