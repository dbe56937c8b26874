package main

import (
	"flag"
	"io/ioutil"

	"github.com/humboldt-xie/voxelstream/gen"
	"github.com/humboldt-xie/voxelstream/stream"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Config is the driver configuration file.
type Config struct {
	World  gen.Config    `yaml:"world"`
	Stream stream.Config `yaml:"stream"`

	Ticks   int     `yaml:"ticks"`
	TickHz  int     `yaml:"tick_hz"`
	Speed   float32 `yaml:"speed"`
	DB      string  `yaml:"db"`
	Preview string  `yaml:"preview"`
	Atlas   string  `yaml:"atlas"`
}

func DefaultConfig() Config {
	return Config{
		World:  gen.DefaultConfig(),
		Stream: stream.DefaultConfig(),
		Ticks:  600,
		TickHz: 60,
		Speed:  0.5,
		DB:     "voxelstream.db",
	}
}

// LoadConfig reads a yaml file over the defaults. An empty path keeps the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse %s", path)
	}
	if cfg.TickHz <= 0 {
		return cfg, errors.Errorf("tick_hz %d must be positive", cfg.TickHz)
	}
	return cfg, nil
}

// applyFlags copies the flags that were set on the command line into cfg.
func applyFlags(fs *flag.FlagSet, cfg *Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.World.Seed = *seed
		case "r":
			cfg.Stream.RenderDistance = *renderDistance
		case "ticks":
			cfg.Ticks = *ticks
		case "db":
			cfg.DB = *dbPath
		case "preview":
			cfg.Preview = *previewPath
		case "atlas":
			cfg.Atlas = *atlasPath
		case "speed":
			cfg.Speed = float32(*speed)
		case "workers":
			cfg.Stream.MeshWorkers = *workers
		case "structures":
			cfg.World.Structures = *structures
		}
	})
}
