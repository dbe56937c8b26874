package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/humboldt-xie/voxelstream/world"
)

type Vec3 = world.Vec3

// faceVertices holds the four corners of each face of a unit cube centered on
// the block, counter-clockwise seen from outside.
var faceVertices = [6][4]mgl32.Vec3{
	world.Right: {
		{0.5, -0.5, 0.5},
		{0.5, -0.5, -0.5},
		{0.5, 0.5, -0.5},
		{0.5, 0.5, 0.5},
	},
	world.Left: {
		{-0.5, -0.5, -0.5},
		{-0.5, -0.5, 0.5},
		{-0.5, 0.5, 0.5},
		{-0.5, 0.5, -0.5},
	},
	world.Top: {
		{-0.5, 0.5, 0.5},
		{0.5, 0.5, 0.5},
		{0.5, 0.5, -0.5},
		{-0.5, 0.5, -0.5},
	},
	world.Bottom: {
		{-0.5, -0.5, -0.5},
		{0.5, -0.5, -0.5},
		{0.5, -0.5, 0.5},
		{-0.5, -0.5, 0.5},
	},
	world.Front: {
		{-0.5, -0.5, 0.5},
		{0.5, -0.5, 0.5},
		{0.5, 0.5, 0.5},
		{-0.5, 0.5, 0.5},
	},
	world.Back: {
		{0.5, -0.5, -0.5},
		{-0.5, -0.5, -0.5},
		{-0.5, 0.5, -0.5},
		{0.5, 0.5, -0.5},
	},
}

var faceNormals [6]mgl32.Vec3

func init() {
	for _, d := range world.Directions {
		n := d.Normal()
		faceNormals[d] = mgl32.Vec3{float32(n.X), float32(n.Y), float32(n.Z)}
	}
}

// FaceVertices returns the corners of face d for a block at the origin.
func FaceVertices(d world.Direction) [4]mgl32.Vec3 {
	return faceVertices[d]
}

func FaceNormal(d world.Direction) mgl32.Vec3 {
	return faceNormals[d]
}
