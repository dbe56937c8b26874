package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/humboldt-xie/voxelstream/world"
)

// Atlas maps a texture to the four UV corners of a quad, in the same order
// the mesher emits face vertices.
type Atlas interface {
	UVs(id world.TextureID) [4]mgl32.Vec2
}

// TextureAtlas lays tiles out row by row in a square grid.
type TextureAtlas struct {
	tilesPerRow int
	tileUV      float32
}

func NewTextureAtlas(count int) *TextureAtlas {
	if count < 1 {
		count = 1
	}
	tpr := int(math.Ceil(math.Sqrt(float64(count))))
	return &TextureAtlas{
		tilesPerRow: tpr,
		tileUV:      1 / float32(tpr),
	}
}

// DefaultAtlas covers every block texture.
func DefaultAtlas() *TextureAtlas {
	return NewTextureAtlas(world.TextureCount)
}

func (a *TextureAtlas) TilesPerRow() int {
	return a.tilesPerRow
}

// Tile returns the grid column and row of id.
func (a *TextureAtlas) Tile(id world.TextureID) (int, int) {
	i := int(id)
	return i % a.tilesPerRow, i / a.tilesPerRow
}

func (a *TextureAtlas) UVs(id world.TextureID) [4]mgl32.Vec2 {
	x, y := a.Tile(id)
	umin := float32(x) * a.tileUV
	vmin := float32(y) * a.tileUV
	umax := umin + a.tileUV
	vmax := vmin + a.tileUV
	return [4]mgl32.Vec2{
		{umax, vmax},
		{umin, vmax},
		{umin, vmin},
		{umax, vmin},
	}
}
