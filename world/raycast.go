package world

import "github.com/go-gl/mathgl/mgl32"

const (
	hitMaxLen = float32(8.0)
	hitStep   = float32(0.125)
)

// HitTest walks from pos along vec and returns the first solid block and the
// block just before it. ok is false when nothing solid lies within reach.
func HitTest(access BlockAccess, pos, vec mgl32.Vec3) (block, prev Vec3, ok bool) {
	vec = vec.Normalize()
	first := true
	for length := float32(0); length < hitMaxLen; length += hitStep {
		b := NearBlock(pos.Add(vec.Mul(length)))
		if !first && b == prev {
			continue
		}
		if k, loaded := access.GetBlock(b); loaded && k.IsSolid() {
			return b, prev, true
		}
		prev = b
		first = false
	}
	return Vec3{}, Vec3{}, false
}
