package main

import (
	"flag"
	"log"

	"net/http"
	_ "net/http/pprof"

	"github.com/humboldt-xie/voxelstream/render"
	"github.com/humboldt-xie/voxelstream/world"
)

var (
	configPath     = flag.String("config", "", "yaml config file")
	seed           = flag.Int64("seed", 42, "world seed")
	renderDistance = flag.Int("r", 12, "render distance in chunks")
	ticks          = flag.Int("ticks", 600, "ticks to run, 0 runs forever")
	dbPath         = flag.String("db", "voxelstream.db", "session db path")
	previewPath    = flag.String("preview", "", "write a heightmap png around the viewer")
	atlasPath      = flag.String("atlas", "", "write the texture atlas png")
	texturesDir    = flag.String("textures", "", "directory of tile pngs for the atlas")
	pprofPort      = flag.String("pprof", "", "http pprof port")
	speed          = flag.Float64("speed", 0.5, "viewer speed in blocks per tick")
	workers        = flag.Int("workers", 1, "mesh workers")
	structures     = flag.Bool("structures", false, "place trees")
)

func seedFlagSet() bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			set = true
		}
	})
	return set
}

func run() {
	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	applyFlags(flag.CommandLine, &cfg)

	var store world.Store
	if cfg.DB != "" {
		bs, err := world.NewBoltStore(cfg.DB)
		if err != nil {
			log.Panic(err)
		}
		defer bs.Close()
		if s, ok := bs.GetSeed(); ok && !seedFlagSet() {
			cfg.World.Seed = s
		} else if err := bs.UpdateSeed(cfg.World.Seed); err != nil {
			log.Panic(err)
		}
		store = bs
	}
	log.Printf("seed %d render distance %d", cfg.World.Seed, cfg.Stream.RenderDistance)

	game, err := NewGame(cfg, store)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if cfg.Atlas != "" {
		if err := SaveAtlas(render.DefaultAtlas(), *texturesDir, cfg.Atlas); err != nil {
			log.Fatal(err)
		}
	}

	game.Run()

	if cfg.Preview != "" {
		pos := world.NearBlock(game.viewer.Pos())
		if err := SavePreview(game.gen, pos.X, pos.Z, 512, cfg.Preview); err != nil {
			log.Print(err)
		}
	}
	st := game.ctrl.Stats()
	log.Printf("done: %d ticks, loaded %d meshed %d faces %d", game.ticks, st.Loaded, st.MeshesBuilt, st.Faces)
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	flag.Parse()
	go func() {
		if *pprofPort != "" {
			log.Fatal(http.ListenAndServe(*pprofPort, nil))
		}
	}()
	run()
}
