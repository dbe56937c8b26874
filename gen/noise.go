package gen

import (
	"math"

	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
	"github.com/pkg/errors"
)

// Noise is a deterministic 2-D sampler returning values in [-1, 1].
type Noise interface {
	Eval2(x, z float64) float64
}

const (
	KindSimplex = "simplex"
	KindPerlin  = "perlin"
)

// NoiseConfig describes one fractal noise field.
type NoiseConfig struct {
	Kind        string  `yaml:"kind"`
	Seed        int64   `yaml:"seed"`
	Frequency   float64 `yaml:"frequency"`
	Octaves     int     `yaml:"octaves"`
	Lacunarity  float64 `yaml:"lacunarity"`
	Persistence float64 `yaml:"persistence"`
}

func (c NoiseConfig) validate() error {
	if c.Octaves < 1 || c.Octaves > 16 {
		return errors.Errorf("noise octaves %d out of range [1,16]", c.Octaves)
	}
	if c.Frequency <= 0 {
		return errors.Errorf("noise frequency %v must be positive", c.Frequency)
	}
	if c.Lacunarity <= 0 {
		return errors.Errorf("noise lacunarity %v must be positive", c.Lacunarity)
	}
	if c.Persistence <= 0 {
		return errors.Errorf("noise persistence %v must be positive", c.Persistence)
	}
	return nil
}

// NewNoise builds the sampler described by c.
func NewNoise(c NoiseConfig) (Noise, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	switch c.Kind {
	case "", KindSimplex:
		return NewSimplexFbm(c), nil
	case KindPerlin:
		return NewPerlinFbm(c), nil
	}
	return nil, errors.Errorf("unknown noise kind %q", c.Kind)
}

// SimplexFbm sums octaves of OpenSimplex noise, one source per octave.
type SimplexFbm struct {
	cfg     NoiseConfig
	sources []opensimplex.Noise
	norm    float64
}

func NewSimplexFbm(c NoiseConfig) *SimplexFbm {
	f := &SimplexFbm{cfg: c}
	amp := 1.0
	for i := 0; i < c.Octaves; i++ {
		f.sources = append(f.sources, opensimplex.New(c.Seed+int64(i)))
		f.norm += amp
		amp *= c.Persistence
	}
	return f
}

func (f *SimplexFbm) Eval2(x, z float64) float64 {
	var (
		sum  float64
		amp  = 1.0
		freq = f.cfg.Frequency
	)
	for _, src := range f.sources {
		sum += src.Eval2(x*freq, z*freq) * amp
		freq *= f.cfg.Lacunarity
		amp *= f.cfg.Persistence
	}
	return clamp(sum/f.norm, -1, 1)
}

// PerlinFbm wraps go-perlin, whose alpha/beta/n are the inverse persistence,
// the lacunarity and the octave count.
type PerlinFbm struct {
	cfg  NoiseConfig
	p    *perlin.Perlin
	norm float64
}

func NewPerlinFbm(c NoiseConfig) *PerlinFbm {
	norm, amp := 0.0, 1.0
	for i := 0; i < c.Octaves; i++ {
		norm += amp
		amp *= c.Persistence
	}
	return &PerlinFbm{
		cfg:  c,
		p:    perlin.NewPerlin(1/c.Persistence, c.Lacunarity, int32(c.Octaves), c.Seed),
		norm: norm,
	}
}

func (f *PerlinFbm) Eval2(x, z float64) float64 {
	// raw perlin gradients peak near +-0.7; rescale to fill [-1, 1].
	n := f.p.Noise2D(x*f.cfg.Frequency, z*f.cfg.Frequency) / f.norm * math.Sqrt2
	return clamp(n, -1, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
