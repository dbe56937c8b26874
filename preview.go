package main

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/humboldt-xie/voxelstream/gen"
	"github.com/humboldt-xie/voxelstream/render"
	"github.com/humboldt-xie/voxelstream/world"
	"github.com/pkg/errors"
)

// columnColor tints a biome's surface tile by height. Columns under the
// water level are drawn as water, darker with depth.
func columnColor(col gen.Column, waterLevel int) color.NRGBA {
	if col.Height < waterLevel {
		c := render.TileColor(world.TexWater)
		return shade(c, 0.5+0.5*float64(col.Height)/float64(waterLevel))
	}
	tex, ok := col.Biome.Ground.Texture(world.Top)
	if !ok {
		return color.NRGBA{0, 0, 0, 0xff}
	}
	return shade(render.TileColor(tex), 0.6+0.4*float64(col.Height)/world.ChunkHeight)
}

func shade(c color.NRGBA, f float64) color.NRGBA {
	scale := func(v uint8) uint8 {
		s := float64(v) * f
		if s > 0xff {
			s = 0xff
		}
		return uint8(s)
	}
	return color.NRGBA{scale(c.R), scale(c.G), scale(c.B), 0xff}
}

// Heightmap renders size x size columns centered on (cx, cz), one pixel per column.
func Heightmap(g *gen.Generator, cx, cz, size int) *image.NRGBA {
	img := imaging.New(size, size, color.NRGBA{0, 0, 0, 0xff})
	water := g.Config().WaterLevel
	half := size / 2
	for px := 0; px < size; px++ {
		for pz := 0; pz < size; pz++ {
			col := g.Column(cx-half+px, cz-half+pz)
			img.SetNRGBA(px, pz, columnColor(col, water))
		}
	}
	return img
}

// SavePreview writes the heightmap around (cx, cz) to path.
func SavePreview(g *gen.Generator, cx, cz, size int, path string) error {
	img := Heightmap(g, cx, cz, size)
	if err := imaging.Save(img, path); err != nil {
		return errors.Wrapf(err, "save preview %s", path)
	}
	return nil
}

// SaveAtlas writes the packed texture atlas to path, using images from dir
// when given.
func SaveAtlas(atlas *render.TextureAtlas, dir, path string) error {
	tiles := map[world.TextureID]image.Image{}
	if dir != "" {
		var err error
		tiles, err = render.LoadTiles(dir)
		if err != nil {
			return err
		}
	}
	img := render.BuildAtlasImage(atlas, tiles, render.TileSize)
	if err := imaging.Save(img, path); err != nil {
		return errors.Wrapf(err, "save atlas %s", path)
	}
	return nil
}
