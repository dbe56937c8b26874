package stream

import (
	"time"

	"github.com/humboldt-xie/voxelstream/render"
	"golang.org/x/exp/slices"
)

// MeshPending builds meshes for meshed records that lack one or went stale,
// nearest first, up to the mesh budget. The registry is only read while
// meshes are built; results are stored after every build finished.
func (c *Controller) MeshPending() int {
	var pending []*Record
	for _, rec := range c.registry.records {
		if rec.NeedsMesh() {
			pending = append(pending, rec)
		}
	}
	if len(pending) == 0 {
		return 0
	}
	center := c.tracker.Current()
	slices.SortFunc(pending, func(a, b *Record) int {
		ca, cb := a.Chunk.Coord(), b.Chunk.Coord()
		if da, db := ca.DistSq(center), cb.DistSq(center); da != db {
			return da - db
		}
		return compareCoord(ca, cb)
	})
	if c.cfg.MeshBudget > 0 && len(pending) > c.cfg.MeshBudget {
		pending = pending[:c.cfg.MeshBudget]
	}

	start := time.Now()
	meshes := make([]*render.Mesh, len(pending))
	if c.pool == nil || len(pending) == 1 {
		for i, rec := range pending {
			meshes[i] = render.BuildChunkMesh(rec.Chunk, c.access, c.atlas)
		}
	} else {
		group := c.pool.NewGroup()
		for i, rec := range pending {
			i, rec := i, rec
			group.Submit(func() {
				meshes[i] = render.BuildChunkMesh(rec.Chunk, c.access, c.atlas)
			})
		}
		if err := group.Wait(); err != nil {
			c.logger.Printf("mesh workers: %v", err)
		}
	}

	n := 0
	for i, rec := range pending {
		if meshes[i] == nil {
			continue
		}
		rec.Mesh = meshes[i]
		rec.dirty = false
		n++
	}
	c.logger.Printf("make chunks spend %fs %d", time.Since(start).Seconds(), n)
	return n
}

// VisibleMeshes returns the built meshes whose chunk intersects f, nearest first.
func (c *Controller) VisibleMeshes(f render.Frustum) []*render.Mesh {
	var meshes []*render.Mesh
	for coord, rec := range c.registry.records {
		if rec.Mesh != nil && f.ChunkVisible(coord) {
			meshes = append(meshes, rec.Mesh)
		}
	}
	center := c.tracker.Current()
	slices.SortFunc(meshes, func(a, b *render.Mesh) int {
		if da, db := a.Coord.DistSq(center), b.Coord.DistSq(center); da != db {
			return da - db
		}
		return compareCoord(a.Coord, b.Coord)
	})
	return meshes
}
