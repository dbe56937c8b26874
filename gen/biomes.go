package gen

import (
	"math"

	"github.com/humboldt-xie/voxelstream/world"
)

// DefaultBiomes is the built-in catalog. Order matters for Pick ties.
func DefaultBiomes() []Biome {
	return []Biome{
		{
			Name:   "plains",
			Target: SurfaceTarget{Temperature: 0.7, Moisture: 0.4, TempWeight: 1, MoistWeight: 1},
			Noise:  NoiseConfig{Seed: 100, Frequency: 0.5, Octaves: 2, Lacunarity: 2, Persistence: 0.5},
			Offset: plainsOffset,
			Ground: world.Grass,
		},
		{
			Name:   "jungle",
			Target: SurfaceTarget{Temperature: 0.85, Moisture: 0.9, TempWeight: 2, MoistWeight: 2.5},
			Noise:  NoiseConfig{Seed: 300, Frequency: 0.5, Octaves: 3, Lacunarity: 2, Persistence: 0.55},
			Offset: jungleOffset,
			Ground: world.Grass,
		},
		{
			Name:   "desert",
			Target: SurfaceTarget{Temperature: 0.75, Moisture: 0.25, TempWeight: 5, MoistWeight: 1},
			Noise:  NoiseConfig{Seed: 200, Frequency: 0.5, Octaves: 1, Lacunarity: 2, Persistence: 0.5},
			Offset: desertOffset,
			Ground: world.Sand,
		},
		{
			Name:   "tundra",
			Target: SurfaceTarget{Temperature: 0.15, Moisture: 0.3, TempWeight: 3, MoistWeight: 0.8},
			Noise:  NoiseConfig{Seed: 400, Frequency: 0.5, Octaves: 2, Lacunarity: 2, Persistence: 0.5},
			Offset: tundraOffset,
			Ground: world.Snow,
		},
	}
}

// gentle rolling hills, flatter where it is wet
func plainsOffset(n Noise, x, z float64, c Climate) float64 {
	h := n.Eval2(x*0.006+1000, z*0.006+1000)
	return h * 3 * (1 - 0.5*c.Moisture)
}

// long low dunes
func desertOffset(n Noise, x, z float64, c Climate) float64 {
	h := n.Eval2(x*0.002+2000, z*0.002+2000)
	return h * 2 * (0.3 + 0.7*c.Temperature)
}

func jungleOffset(n Noise, x, z float64, c Climate) float64 {
	h := n.Eval2(x*0.02+3000, z*0.02+3000)
	return clamp(h+0.3, -1, 1) * 5 * (0.6 + 0.8*c.Moisture)
}

// terraced steps, raised overall
func tundraOffset(n Noise, x, z float64, c Climate) float64 {
	h := n.Eval2(x*0.015+4000, z*0.015+4000)
	h = math.Round(h*4) / 4
	return h*5*(0.5+0.8*(1-c.Temperature)) + 5
}

// ApplyOverrides replaces targets of named biomes. Unknown names are returned.
func ApplyOverrides(biomes []Biome, overrides []BiomeOverride) []string {
	var unknown []string
	for _, o := range overrides {
		found := false
		for i := range biomes {
			if biomes[i].Name == o.Name {
				biomes[i].Target = o.Target
				found = true
			}
		}
		if !found {
			unknown = append(unknown, o.Name)
		}
	}
	return unknown
}

// BiomeOverride adjusts a catalog entry from configuration.
type BiomeOverride struct {
	Name   string        `yaml:"name"`
	Target SurfaceTarget `yaml:",inline"`
}
