// Package m4 computes the 4x4 matrix applied to a shape for one draw call.
//
// Matrices are column-major mgl32.Mat4 values. Each transform is multiplied
// onto the right of the accumulated matrix, so the last transform listed is
// the first one applied to a vertex:
//
//	M = Projection(w, h, depth) · Translate(t) · RotateX(rx) · RotateY(ry) · RotateZ(rz) · Scale(s)
//
// The order is fixed; swapping any two factors changes the rendered image.
package m4

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/multishape/shape"
)

// DefaultDepth is the depth range of the projection, in the same pixel-like
// units as translation.
const DefaultDepth = 400

// Projection maps pixel space (origin top-left, y down, z in [-depth/2,
// depth/2]) to clip space.
func Projection(width, height, depth float32) mgl32.Mat4 {
	return mgl32.Mat4{
		2 / width, 0, 0, 0,
		0, -2 / height, 0, 0,
		0, 0, 2 / depth, 0,
		-1, 1, 0, 1,
	}
}

// Translate right-multiplies a translation onto m.
func Translate(m mgl32.Mat4, tx, ty, tz float32) mgl32.Mat4 {
	return m.Mul4(mgl32.Translate3D(tx, ty, tz))
}

// RotateX right-multiplies a rotation around the x axis (radians).
func RotateX(m mgl32.Mat4, angle float32) mgl32.Mat4 {
	return m.Mul4(mgl32.HomogRotate3DX(angle))
}

// RotateY right-multiplies a rotation around the y axis (radians).
func RotateY(m mgl32.Mat4, angle float32) mgl32.Mat4 {
	return m.Mul4(mgl32.HomogRotate3DY(angle))
}

// RotateZ right-multiplies a rotation around the z axis (radians).
func RotateZ(m mgl32.Mat4, angle float32) mgl32.Mat4 {
	return m.Mul4(mgl32.HomogRotate3DZ(angle))
}

// Scale right-multiplies a scale onto m.
func Scale(m mgl32.Mat4, sx, sy, sz float32) mgl32.Mat4 {
	return m.Mul4(mgl32.Scale3D(sx, sy, sz))
}

// Model applies the shape's transforms to m in draw order: translate,
// rotate x, rotate y, rotate z, scale.
func Model(m mgl32.Mat4, s shape.Shape) mgl32.Mat4 {
	m = Translate(m, float32(s.Translation[0]), float32(s.Translation[1]), float32(s.Translation[2]))
	m = RotateX(m, float32(s.Rotation[0]))
	m = RotateY(m, float32(s.Rotation[1]))
	m = RotateZ(m, float32(s.Rotation[2]))
	return Scale(m, float32(s.Scale[0]), float32(s.Scale[1]), float32(s.Scale[2]))
}

// Compose returns the full matrix for drawing s into a viewport of the
// given size.
func Compose(s shape.Shape, width, height, depth float32) mgl32.Mat4 {
	return Model(Projection(width, height, depth), s)
}
