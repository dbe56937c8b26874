package stream

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
	"github.com/humboldt-xie/voxelstream/render"
	"github.com/humboldt-xie/voxelstream/world"
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Config bounds how much streaming work happens per tick. A budget of 0
// means unlimited.
type Config struct {
	RenderDistance  int  `yaml:"render_distance"`
	SpawnBudget     int  `yaml:"spawn_budget"`
	DespawnBudget   int  `yaml:"despawn_budget"`
	PromoteBudget   int  `yaml:"promote_budget"`
	MeshBudget      int  `yaml:"mesh_budget"`
	MeshWorkers     int  `yaml:"mesh_workers"`
	RecycleSize     int  `yaml:"recycle_size"`
	RemeshNeighbors bool `yaml:"remesh_neighbors"`
}

func DefaultConfig() Config {
	return Config{
		RenderDistance:  12,
		SpawnBudget:     32,
		DespawnBudget:   128,
		RecycleSize:     64,
		MeshWorkers:     1,
		RemeshNeighbors: true,
	}
}

func (c Config) validate() error {
	if c.RenderDistance < 0 {
		return errors.Errorf("render distance %d is negative", c.RenderDistance)
	}
	if c.SpawnBudget < 0 || c.DespawnBudget < 0 || c.PromoteBudget < 0 || c.MeshBudget < 0 {
		return errors.New("budgets must not be negative")
	}
	if c.RecycleSize < 0 {
		return errors.Errorf("recycle size %d is negative", c.RecycleSize)
	}
	return nil
}

type Option func(*Controller)

func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// Controller keeps the registry in step with the chunks wanted around the viewer.
type Controller struct {
	id     uuid.UUID
	cfg    Config
	gen    world.Generator
	atlas  render.Atlas
	logger *log.Logger

	registry *Registry
	access   world.BlockAccess
	tracker  Tracker
	desired  Desired

	spawnQueue   []world.ChunkCoord
	despawnQueue []world.ChunkCoord
	promoteQueue []world.ChunkCoord
	demoteQueue  []world.ChunkCoord

	recycle *lru.Cache
	pool    pond.Pool
}

func NewController(cfg Config, gen world.Generator, atlas render.Atlas, opts ...Option) (*Controller, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if gen == nil || atlas == nil {
		return nil, errors.New("controller needs a generator and an atlas")
	}
	c := &Controller{
		id:       uuid.New(),
		cfg:      cfg,
		gen:      gen,
		atlas:    atlas,
		registry: NewRegistry(),
	}
	c.access = world.NewBlockAccess(c.registry)
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		prefix := fmt.Sprintf("[world %s] ", c.id.String()[:8])
		c.logger = log.New(os.Stderr, prefix, log.LstdFlags|log.Lmicroseconds)
	}
	if cfg.RecycleSize > 0 {
		cache, err := lru.New(cfg.RecycleSize)
		if err != nil {
			return nil, errors.Wrap(err, "recycle cache")
		}
		c.recycle = cache
	}
	if cfg.MeshWorkers > 1 {
		c.pool = pond.NewPool(cfg.MeshWorkers)
	}
	return c, nil
}

// Close stops the mesh workers.
func (c *Controller) Close() {
	if c.pool != nil {
		c.pool.StopAndWait()
	}
}

func (c *Controller) ID() uuid.UUID {
	return c.id
}

func (c *Controller) Registry() *Registry {
	return c.registry
}

// Access is the read-only block view over loaded chunks.
func (c *Controller) Access() world.BlockAccess {
	return c.access
}

func (c *Controller) Desired() Desired {
	return c.desired
}

// Mesh returns the built mesh of a loaded chunk.
func (c *Controller) Mesh(coord world.ChunkCoord) (*render.Mesh, bool) {
	rec, ok := c.registry.Get(coord)
	if !ok || rec.Mesh == nil {
		return nil, false
	}
	return rec.Mesh, true
}

// UpdateViewer samples the viewer position. The desired set and the work
// queues are rebuilt only when the viewer changed chunk or nothing is
// desired yet.
func (c *Controller) UpdateViewer(pos mgl32.Vec3) bool {
	changed := c.tracker.Update(pos)
	if !changed && len(c.desired) > 0 {
		return false
	}
	c.desired = DesiredSet(c.tracker.Current(), c.cfg.RenderDistance)
	c.Reconcile()
	return true
}

// Reconcile diffs the desired set against the registry and rebuilds all queues.
func (c *Controller) Reconcile() {
	center := c.tracker.Current()
	c.spawnQueue = c.spawnQueue[:0]
	c.promoteQueue = c.promoteQueue[:0]
	c.despawnQueue = c.despawnQueue[:0]
	c.demoteQueue = c.demoteQueue[:0]

	for coord, mesh := range c.desired {
		rec, ok := c.registry.Get(coord)
		switch {
		case !ok:
			c.spawnQueue = append(c.spawnQueue, coord)
		case mesh && rec.Tag == Unmeshed:
			c.promoteQueue = append(c.promoteQueue, coord)
		case !mesh && rec.Tag == Meshed:
			c.demoteQueue = append(c.demoteQueue, coord)
		}
	}
	for _, coord := range maps.Keys(c.registry.records) {
		if _, ok := c.desired[coord]; !ok {
			c.despawnQueue = append(c.despawnQueue, coord)
		}
	}

	nearest := func(a, b world.ChunkCoord) int {
		if da, db := a.DistSq(center), b.DistSq(center); da != db {
			return da - db
		}
		return compareCoord(a, b)
	}
	slices.SortFunc(c.spawnQueue, nearest)
	slices.SortFunc(c.promoteQueue, nearest)
	slices.SortFunc(c.demoteQueue, nearest)
	slices.SortFunc(c.despawnQueue, func(a, b world.ChunkCoord) int {
		return nearest(b, a)
	})
}

func take(queue []world.ChunkCoord, budget int) ([]world.ChunkCoord, []world.ChunkCoord) {
	if budget <= 0 || budget >= len(queue) {
		return queue, queue[:0]
	}
	return queue[:budget], queue[budget:]
}

// ExecuteDespawns unloads up to the despawn budget. Meshes next to an
// unloaded chunk are rebuilt so their seam faces reappear.
func (c *Controller) ExecuteDespawns() int {
	var batch []world.ChunkCoord
	batch, c.despawnQueue = take(c.despawnQueue, c.cfg.DespawnBudget)
	n := 0
	for _, coord := range batch {
		rec, ok := c.registry.Remove(coord)
		if !ok {
			continue
		}
		if c.recycle != nil {
			c.recycle.Add(coord, rec.Chunk)
		}
		rec.Mesh = nil
		if c.cfg.RemeshNeighbors {
			c.dirtyNeighbors(coord)
		}
		n++
	}
	return n
}

// ExecuteDemotes drops the meshes of chunks that moved into the boundary ring.
func (c *Controller) ExecuteDemotes() int {
	n := 0
	for _, coord := range c.demoteQueue {
		rec, ok := c.registry.Get(coord)
		if !ok || rec.Tag == Unmeshed {
			continue
		}
		rec.Tag = Unmeshed
		rec.Mesh = nil
		rec.dirty = false
		n++
	}
	c.demoteQueue = c.demoteQueue[:0]
	return n
}

// ExecuteSpawns generates and registers up to the spawn budget.
func (c *Controller) ExecuteSpawns() int {
	var batch []world.ChunkCoord
	batch, c.spawnQueue = take(c.spawnQueue, c.cfg.SpawnBudget)
	n := 0
	for _, coord := range batch {
		if _, ok := c.registry.Get(coord); ok {
			continue
		}
		tag := Unmeshed
		if c.desired[coord] {
			tag = Meshed
		}
		c.registry.Insert(c.loadChunk(coord), tag)
		if c.cfg.RemeshNeighbors {
			c.dirtyNeighbors(coord)
		}
		n++
	}
	return n
}

func (c *Controller) loadChunk(coord world.ChunkCoord) *world.Chunk {
	if c.recycle != nil {
		if v, ok := c.recycle.Get(coord); ok {
			c.recycle.Remove(coord)
			return v.(*world.Chunk)
		}
	}
	return world.NewChunk(coord, c.gen)
}

// dirtyNeighbors marks the meshes around coord after it was loaded or
// unloaded so their seam faces follow the new data.
func (c *Controller) dirtyNeighbors(coord world.ChunkCoord) {
	for _, n := range coord.Neighbors() {
		if rec, ok := c.registry.Get(n); ok && rec.Mesh != nil {
			rec.dirty = true
		}
	}
}

// ExecutePromotes flags boundary chunks for meshing, up to the promote budget.
func (c *Controller) ExecutePromotes() int {
	var batch []world.ChunkCoord
	batch, c.promoteQueue = take(c.promoteQueue, c.cfg.PromoteBudget)
	n := 0
	for _, coord := range batch {
		rec, ok := c.registry.Get(coord)
		if !ok || rec.Tag == Meshed {
			continue
		}
		rec.Tag = Meshed
		n++
	}
	return n
}

// TickStats is the work done by one Tick.
type TickStats struct {
	Recomputed bool
	Despawned  int
	Demoted    int
	Spawned    int
	Promoted   int
	Meshed     int
	Elapsed    time.Duration
}

// Tick runs one frame: sample the viewer, refresh the desired set, then
// despawn, demote, spawn, promote and finally mesh.
func (c *Controller) Tick(pos mgl32.Vec3) TickStats {
	start := time.Now()
	var s TickStats
	s.Recomputed = c.UpdateViewer(pos)
	s.Despawned = c.ExecuteDespawns()
	s.Demoted = c.ExecuteDemotes()
	s.Spawned = c.ExecuteSpawns()
	s.Promoted = c.ExecutePromotes()
	s.Meshed = c.MeshPending()
	s.Elapsed = time.Since(start)
	if s.Despawned+s.Demoted+s.Spawned+s.Promoted+s.Meshed > 0 {
		c.logger.Printf("tick at %v spend %fs: -%d v%d +%d ^%d mesh %d, pending %d/%d/%d",
			c.tracker.Current(), s.Elapsed.Seconds(), s.Despawned, s.Demoted, s.Spawned, s.Promoted, s.Meshed,
			len(c.spawnQueue), len(c.despawnQueue), len(c.promoteQueue))
	}
	return s
}

// Stats is a snapshot of the streaming state.
type Stats struct {
	Viewer          world.ChunkCoord
	Loaded          int
	Meshed          int
	MeshesBuilt     int
	Faces           int
	PendingSpawns   int
	PendingDespawns int
	PendingPromotes int
}

func (c *Controller) Stats() Stats {
	s := Stats{
		Viewer:          c.tracker.Current(),
		Loaded:          c.registry.Len(),
		PendingSpawns:   len(c.spawnQueue),
		PendingDespawns: len(c.despawnQueue),
		PendingPromotes: len(c.promoteQueue),
	}
	for _, rec := range c.registry.records {
		if rec.Tag == Meshed {
			s.Meshed++
		}
		if rec.Mesh != nil {
			s.MeshesBuilt++
			s.Faces += rec.Mesh.Faces()
		}
	}
	return s
}

// Idle reports whether every queue is drained and every meshed chunk has an
// up to date mesh.
func (c *Controller) Idle() bool {
	if len(c.spawnQueue)+len(c.despawnQueue)+len(c.promoteQueue)+len(c.demoteQueue) > 0 {
		return false
	}
	for _, rec := range c.registry.records {
		if rec.NeedsMesh() {
			return false
		}
	}
	return true
}
