package world

// Direction is one of the six axis-aligned cube faces.
type Direction uint8

const (
	Right  Direction = iota // +X
	Left                    // -X
	Top                     // +Y
	Bottom                  // -Y
	Front                   // +Z
	Back                    // -Z
)

// Directions is the order faces are visited when meshing a block.
var Directions = [6]Direction{Top, Bottom, Left, Right, Front, Back}

var normals = [6]Vec3{
	Right:  {1, 0, 0},
	Left:   {-1, 0, 0},
	Top:    {0, 1, 0},
	Bottom: {0, -1, 0},
	Front:  {0, 0, 1},
	Back:   {0, 0, -1},
}

func (d Direction) Normal() Vec3 {
	return normals[d]
}

func (d Direction) Opposite() Direction {
	switch d {
	case Right:
		return Left
	case Left:
		return Right
	case Top:
		return Bottom
	case Bottom:
		return Top
	case Front:
		return Back
	}
	return Front
}

func (d Direction) String() string {
	return [...]string{"right", "left", "top", "bottom", "front", "back"}[d]
}
