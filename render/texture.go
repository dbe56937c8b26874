package render

import (
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/humboldt-xie/voxelstream/world"
	"github.com/pkg/errors"
)

const TileSize = 16

// placeholder colors for tiles that have no image
var tileColors = [world.TextureCount]color.NRGBA{
	world.TexGrassSide:   {0x6b, 0x8e, 0x3a, 0xff},
	world.TexGrassTop:    {0x5f, 0xa8, 0x3b, 0xff},
	world.TexSand:        {0xdb, 0xcf, 0x8e, 0xff},
	world.TexDirt:        {0x86, 0x60, 0x43, 0xff},
	world.TexBedrock:     {0x3a, 0x3a, 0x3a, 0xff},
	world.TexOakWoodSide: {0x6b, 0x51, 0x2f, 0xff},
	world.TexOakWoodTop:  {0xa0, 0x82, 0x4f, 0xff},
	world.TexOakLeaf:     {0x3c, 0x7a, 0x24, 0xc0},
	world.TexWater:       {0x2f, 0x5f, 0xd0, 0xff},
	world.TexStone:       {0x7d, 0x7d, 0x7d, 0xff},
	world.TexSnow:        {0xf0, 0xf8, 0xff, 0xff},
}

// TileColor is the flat color used when a tile image is missing.
func TileColor(id world.TextureID) color.NRGBA {
	if int(id) < world.TextureCount {
		return tileColors[id]
	}
	return color.NRGBA{0xff, 0x00, 0xff, 0xff}
}

// LoadTiles reads every texture's image from dir. Missing files are skipped.
func LoadTiles(dir string) (map[world.TextureID]image.Image, error) {
	tiles := make(map[world.TextureID]image.Image)
	for i := 0; i < world.TextureCount; i++ {
		id := world.TextureID(i)
		path := filepath.Join(dir, id.FileName())
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		img, err := imaging.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "load tile %s", path)
		}
		tiles[id] = img
	}
	return tiles, nil
}

// BuildAtlasImage packs tiles into the grid used by atlas, scaling each one
// to tileSize. Image rows grow downward while v grows upward, so row 0 of the
// grid is the bottom strip of the image.
func BuildAtlasImage(atlas *TextureAtlas, tiles map[world.TextureID]image.Image, tileSize int) *image.NRGBA {
	n := atlas.TilesPerRow()
	size := n * tileSize
	dst := imaging.New(size, size, color.NRGBA{0, 0, 0, 0})
	for i := 0; i < world.TextureCount; i++ {
		id := world.TextureID(i)
		src, ok := tiles[id]
		var tile *image.NRGBA
		if ok {
			tile = imaging.Resize(src, tileSize, tileSize, imaging.NearestNeighbor)
		} else {
			tile = imaging.New(tileSize, tileSize, TileColor(id))
		}
		col, row := atlas.Tile(id)
		pt := image.Pt(col*tileSize, size-(row+1)*tileSize)
		dst = imaging.Paste(dst, tile, pt)
	}
	return dst
}
