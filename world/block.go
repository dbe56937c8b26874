package world

// Kind is the type of a single voxel.
type Kind uint8

const (
	Air Kind = iota
	Grass
	Dirt
	Sand
	Bedrock
	OakWood
	OakLeaf
	Water
	Stone
	Snow
	kindCount
)

var kindNames = [kindCount]string{
	Air:     "air",
	Grass:   "grass",
	Dirt:    "dirt",
	Sand:    "sand",
	Bedrock: "bedrock",
	OakWood: "oak_wood",
	OakLeaf: "oak_leaf",
	Water:   "water",
	Stone:   "stone",
	Snow:    "snow",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "unknown"
}

// KindByName resolves a kind from its lowercase name.
func KindByName(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return Air, false
}

// IsSeethrough reports kinds that never hide a neighbour's face.
func (k Kind) IsSeethrough() bool {
	return k == Air || k == OakLeaf
}

// IsSolid is the occlusion flag stored in the mesher's padded buffer.
func (k Kind) IsSolid() bool {
	return !k.IsSeethrough()
}

// TextureID names a tile in the block atlas.
type TextureID uint8

const (
	TexGrassSide TextureID = iota
	TexGrassTop
	TexSand
	TexDirt
	TexBedrock
	TexOakWoodSide
	TexOakWoodTop
	TexOakLeaf
	TexWater
	TexStone
	TexSnow
	TextureCount int = iota
)

var textureFiles = [TextureCount]string{
	TexGrassSide:   "grass_side.png",
	TexGrassTop:    "grass_top.png",
	TexSand:        "sand.png",
	TexDirt:        "dirt.png",
	TexBedrock:     "bedrock.png",
	TexOakWoodSide: "oak_wood_side.png",
	TexOakWoodTop:  "oak_wood_top.png",
	TexOakLeaf:     "oak_leaf.png",
	TexWater:       "water.png",
	TexStone:       "stone.png",
	TexSnow:        "snow.png",
}

// FileName is the tile image name used when packing the atlas.
func (t TextureID) FileName() string {
	if int(t) < TextureCount {
		return textureFiles[t]
	}
	return ""
}

// Texture returns the tile for the face of k pointing in d. Air has none.
func (k Kind) Texture(d Direction) (TextureID, bool) {
	switch k {
	case Grass:
		switch d {
		case Top:
			return TexGrassTop, true
		case Bottom:
			return TexDirt, true
		default:
			return TexGrassSide, true
		}
	case OakWood:
		if d == Top || d == Bottom {
			return TexOakWoodTop, true
		}
		return TexOakWoodSide, true
	case Dirt:
		return TexDirt, true
	case Sand:
		return TexSand, true
	case Bedrock:
		return TexBedrock, true
	case OakLeaf:
		return TexOakLeaf, true
	case Water:
		return TexWater, true
	case Stone:
		return TexStone, true
	case Snow:
		return TexSnow, true
	}
	return 0, false
}
