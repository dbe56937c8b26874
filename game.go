package main

import (
	"log"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/humboldt-xie/voxelstream/gen"
	"github.com/humboldt-xie/voxelstream/render"
	"github.com/humboldt-xie/voxelstream/stream"
	"github.com/humboldt-xie/voxelstream/world"
)

type FPS struct {
	lastUpdate time.Time
	cnt        int
	fps        int
}

func (f *FPS) Update() {
	f.cnt++
	now := time.Now()
	p := now.Sub(f.lastUpdate)
	if p >= time.Second {
		f.fps = int(float64(f.cnt) / p.Seconds())
		f.cnt = 0
		f.lastUpdate = now
	}
}

func (f *FPS) Fps() int {
	return f.fps
}

// Game drives the streaming controller with a scripted viewer.
type Game struct {
	cfg    Config
	gen    *gen.Generator
	ctrl   *stream.Controller
	viewer *world.Viewer
	store  world.Store

	ticks int
	fps   FPS
}

func NewGame(cfg Config, store world.Store) (*Game, error) {
	g, err := gen.NewGenerator(cfg.World)
	if err != nil {
		return nil, err
	}
	ctrl, err := stream.NewController(cfg.Stream, g, render.DefaultAtlas())
	if err != nil {
		return nil, err
	}
	game := &Game{
		cfg:   cfg,
		gen:   g,
		ctrl:  ctrl,
		store: store,
	}
	if store != nil {
		if pos, ok := store.GetViewer(); ok {
			game.viewer = world.NewViewer(pos.Vec3)
			game.viewer.Rx, game.viewer.Ry = pos.Rx, pos.Ry
			log.Printf("resume viewer at %v", pos.Vec3)
		}
	}
	if game.viewer == nil {
		col := g.Column(0, 0)
		game.viewer = world.NewViewer(mgl32.Vec3{0.5, float32(col.Height + 2), 0.5})
	}
	return game, nil
}

// Update advances the viewer along its path and runs one streaming tick.
func (g *Game) Update() stream.TickStats {
	g.ticks++
	g.viewer.Move(world.MoveForward, g.cfg.Speed)
	if g.ticks%240 == 0 {
		g.viewer.Turn(30, 0)
	}
	s := g.ctrl.Tick(g.viewer.Pos())
	g.fps.Update()
	if g.viewer.Moved() && g.store != nil {
		if err := g.store.UpdateViewer(g.viewer.Position); err != nil {
			log.Printf("save viewer: %v", err)
		}
	}
	return s
}

// Visible is what a renderer would draw this frame.
func (g *Game) Visible() []*render.Mesh {
	mat := world.Projection(65, 4.0/3).Mul4(g.viewer.Matrix())
	return g.ctrl.VisibleMeshes(render.NewFrustum(mat))
}

func (g *Game) ShouldClose() bool {
	return g.cfg.Ticks > 0 && g.ticks >= g.cfg.Ticks
}

// Run ticks at the configured rate until the tick limit is reached.
func (g *Game) Run() {
	md := time.Second / time.Duration(g.cfg.TickHz)
	d := md
	timer := time.NewTimer(d)
	defer timer.Stop()
	for !g.ShouldClose() {
		<-timer.C
		start := time.Now()
		s := g.Update()
		d = md - time.Since(start)
		if d < 0 {
			d = 1
		}
		timer.Reset(d)
		if s.Recomputed {
			st := g.ctrl.Stats()
			log.Printf("viewer %v chunk %v loaded %d meshed %d faces %d visible %d fps %d",
				g.viewer.Pos(), st.Viewer, st.Loaded, st.MeshesBuilt, st.Faces, len(g.Visible()), g.fps.Fps())
		}
	}
}

func (g *Game) Close() {
	if g.store != nil {
		if err := g.store.UpdateViewer(g.viewer.Position); err != nil {
			log.Printf("save viewer: %v", err)
		}
	}
	g.ctrl.Close()
}
