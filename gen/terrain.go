package gen

import (
	"github.com/humboldt-xie/voxelstream/world"
	"github.com/pkg/errors"
)

// Config holds every generation parameter. Noise seeds are offsets added to Seed.
type Config struct {
	Seed         int64           `yaml:"seed"`
	WaterLevel   int             `yaml:"water_level"`
	HeightScale  float64         `yaml:"height_scale"`
	ClimateScale float64         `yaml:"climate_scale"`
	Height       NoiseConfig     `yaml:"height"`
	Temperature  NoiseConfig     `yaml:"temperature"`
	Moisture     NoiseConfig     `yaml:"moisture"`
	Biomes       []BiomeOverride `yaml:"biomes"`
	Structures   bool            `yaml:"structures"`
}

func DefaultConfig() Config {
	return Config{
		Seed:         42,
		WaterLevel:   world.ChunkHeight/2 - 8,
		HeightScale:  0.02,
		ClimateScale: 0.005,
		Height:       NoiseConfig{Kind: KindPerlin, Frequency: 0.5, Octaves: 3, Lacunarity: 2, Persistence: 0.5},
		Temperature:  NoiseConfig{Kind: KindSimplex, Frequency: 0.5, Octaves: 2, Lacunarity: 2, Persistence: 0.8},
		Moisture:     NoiseConfig{Kind: KindSimplex, Seed: 31, Frequency: 0.7, Octaves: 2, Lacunarity: 1.4, Persistence: 0.8},
	}
}

// Generator produces chunk terrain from base height noise and blended biomes.
type Generator struct {
	cfg        Config
	height     Noise
	climate    *ClimateSampler
	biomes     *BiomeRegistry
	structures []StructureRule
}

// NewGenerator builds all noise services for cfg with the default catalog.
func NewGenerator(cfg Config) (*Generator, error) {
	biomes := DefaultBiomes()
	if unknown := ApplyOverrides(biomes, cfg.Biomes); len(unknown) > 0 {
		return nil, errors.Errorf("unknown biomes in config: %v", unknown)
	}
	return NewGeneratorWithBiomes(cfg, biomes)
}

func NewGeneratorWithBiomes(cfg Config, biomes []Biome) (*Generator, error) {
	if cfg.WaterLevel < 0 || cfg.WaterLevel >= world.ChunkHeight {
		return nil, errors.Errorf("water level %d outside [0,%d)", cfg.WaterLevel, world.ChunkHeight)
	}
	registry, err := NewBiomeRegistry(cfg.Seed, biomes)
	if err != nil {
		return nil, err
	}
	height, err := NewNoise(seeded(cfg.Height, cfg.Seed))
	if err != nil {
		return nil, errors.Wrap(err, "height noise")
	}
	temperature, err := NewNoise(seeded(cfg.Temperature, cfg.Seed))
	if err != nil {
		return nil, errors.Wrap(err, "temperature noise")
	}
	moisture, err := NewNoise(seeded(cfg.Moisture, cfg.Seed))
	if err != nil {
		return nil, errors.Wrap(err, "moisture noise")
	}
	g := &Generator{
		cfg:     cfg,
		height:  height,
		climate: NewClimateSampler(temperature, moisture, cfg.ClimateScale),
		biomes:  registry,
	}
	if cfg.Structures {
		g.structures = append(g.structures, OakTree(cfg.WaterLevel))
	}
	return g, nil
}

func seeded(c NoiseConfig, seed int64) NoiseConfig {
	c.Seed += seed
	return c
}

func (g *Generator) Config() Config {
	return g.cfg
}

func (g *Generator) Biomes() *BiomeRegistry {
	return g.biomes
}

func (g *Generator) Climate(x, z int) Climate {
	return g.climate.Sample(x, z)
}

// BaseHeight is the height field before biome offsets.
func (g *Generator) BaseHeight(x, z int) int {
	n := g.height.Eval2(float64(x)*g.cfg.HeightScale, float64(z)*g.cfg.HeightScale)
	return int((n + 1) * 0.5 * world.ChunkHeight)
}

// Column is the generated surface of one world column.
type Column struct {
	Height  int
	Climate Climate
	Biome   *Biome
}

// Column computes the final surface height and biome at world (x, z).
func (g *Generator) Column(x, z int) Column {
	c := g.climate.Sample(x, z)
	h := g.BaseHeight(x, z) + int(g.biomes.BlendedHeight(x, z, c))
	return Column{
		Height:  world.ClampInt(h, 0, world.ChunkHeight-1),
		Climate: c,
		Biome:   g.biomes.Pick(c),
	}
}

// Generate implements world.Generator.
func (g *Generator) Generate(coord world.ChunkCoord, blocks *world.Blocks) {
	origin := coord.Origin()
	var heights [world.ChunkSize][world.ChunkSize]Column
	for x := 0; x < world.ChunkSize; x++ {
		for z := 0; z < world.ChunkSize; z++ {
			col := g.Column(origin.X+x, origin.Z+z)
			heights[x][z] = col
			fillColumn(blocks, x, z, col.Height, col.Biome.Ground, g.cfg.WaterLevel)
		}
	}
	if len(g.structures) == 0 {
		return
	}
	w := chunkWriter{origin: origin, blocks: blocks}
	for i := range g.structures {
		rule := &g.structures[i]
		for x := rule.Margin; x < world.ChunkSize-rule.Margin; x++ {
			for z := rule.Margin; z < world.ChunkSize-rule.Margin; z++ {
				col := heights[x][z]
				if !rule.allowsGround(col.Biome.Ground) {
					continue
				}
				wx, wz := origin.X+x, origin.Z+z
				if rule.ShouldPlace(wx, wz, col.Height, uint32(g.cfg.Seed)) {
					rule.Generate(w, world.Vec3{X: wx, Y: col.Height, Z: wz})
				}
			}
		}
	}
}

// fillColumn writes bedrock at y = 0, water everywhere below the water level
// and the ground block from the water level up to height. Columns lower than
// the water level end up covered by water.
func fillColumn(blocks *world.Blocks, x, z, height int, ground world.Kind, waterLevel int) {
	top := height
	if waterLevel-1 > top {
		top = waterLevel - 1
	}
	for y := 0; y <= top; y++ {
		k := ground
		switch {
		case y == 0:
			k = world.Bedrock
		case y < waterLevel:
			k = world.Water
		}
		blocks.Set(world.Vec3{X: x, Y: y, Z: z}, k)
	}
}
