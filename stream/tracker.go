package stream

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/humboldt-xie/voxelstream/world"
)

// Tracker remembers which chunk the viewer is in.
type Tracker struct {
	current  world.ChunkCoord
	previous world.ChunkCoord
	started  bool
}

// Update samples the viewer and reports whether its chunk changed.
func (t *Tracker) Update(pos mgl32.Vec3) bool {
	c := world.ChunkAt(pos)
	if t.started && c == t.current {
		return false
	}
	t.previous, t.current = t.current, c
	t.started = true
	return true
}

func (t *Tracker) Current() world.ChunkCoord {
	return t.current
}

func (t *Tracker) Previous() world.ChunkCoord {
	return t.previous
}

// Desired maps every coordinate that should be loaded to whether it should
// be meshed.
type Desired map[world.ChunkCoord]bool

// DesiredSet is the meshed square of radius r around center plus the
// unmeshed ring at r+1.
func DesiredSet(center world.ChunkCoord, r int) Desired {
	d := make(Desired, (2*r+3)*(2*r+3))
	for dx := -r - 1; dx <= r+1; dx++ {
		for dz := -r - 1; dz <= r+1; dz++ {
			c := world.ChunkCoord{X: center.X + dx, Z: center.Z + dz}
			d[c] = world.AbsInt(dx) <= r && world.AbsInt(dz) <= r
		}
	}
	return d
}

// Meshed counts the entries flagged for meshing.
func (d Desired) Meshed() int {
	n := 0
	for _, m := range d {
		if m {
			n++
		}
	}
	return n
}
