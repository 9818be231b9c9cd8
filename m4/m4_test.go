package m4_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/multishape/m4"
	"github.com/go-theft-auto/multishape/shape"
)

const eps = 1e-5

// near compares element-wise with an absolute tolerance. mgl32's
// ApproxEqualThreshold is relative and fails next to zero.
func near(a, b []float32) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > eps {
			return false
		}
	}
	return true
}

func nearVec(a, b mgl32.Vec4) bool { return near(a[:], b[:]) }
func nearMat(a, b mgl32.Mat4) bool { return near(a[:], b[:]) }

func unitShape() shape.Shape {
	return shape.Shape{Scale: shape.Vec3{1, 1, 1}}
}

func TestComposeTranslationFixture(t *testing.T) {
	s := unitShape()
	s.Translation = shape.Vec3{10, 0, 0}

	got := m4.Compose(s, 100, 100, 400)
	want := mgl32.Mat4{
		0.02, 0, 0, 0,
		0, -0.02, 0, 0,
		0, 0, 0.005, 0,
		-0.8, 1, 0, 1,
	}
	if !nearMat(got, want) {
		t.Errorf("Compose() =\n%v\nwant\n%v", got, want)
	}

	// Translation column is the projected point (10, 0, 0).
	p := m4.Projection(100, 100, 400).Mul4x1(mgl32.Vec4{10, 0, 0, 1})
	if !nearVec(got.Col(3), p) {
		t.Errorf("translation column = %v, want %v", got.Col(3), p)
	}
}

func TestProjectionCorners(t *testing.T) {
	p := m4.Projection(200, 100, 400)
	tests := []struct {
		name string
		in   mgl32.Vec4
		want mgl32.Vec4
	}{
		{"top left", mgl32.Vec4{0, 0, 0, 1}, mgl32.Vec4{-1, 1, 0, 1}},
		{"bottom right", mgl32.Vec4{200, 100, 0, 1}, mgl32.Vec4{1, -1, 0, 1}},
		{"far plane", mgl32.Vec4{100, 50, 200, 1}, mgl32.Vec4{0, 0, 1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Mul4x1(tt.in)
			if !nearVec(got, tt.want) {
				t.Errorf("P*%v = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestModelAppliesScaleThenRotateThenTranslate(t *testing.T) {
	s := unitShape()
	s.Translation = shape.Vec3{10, 20, 30}
	s.Rotation = shape.Vec3{0, 0, math.Pi / 2}
	s.Scale = shape.Vec3{2, 1, 1}

	got := m4.Model(mgl32.Ident4(), s).Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	// scale: (2,0,0); rotate z 90: (0,2,0); translate: (10,22,30)
	want := mgl32.Vec4{10, 22, 30, 1}
	if !nearVec(got, want) {
		t.Errorf("M*(1,0,0) = %v, want %v", got, want)
	}
}

func TestRotationOrderIsXThenYThenZ(t *testing.T) {
	s := unitShape()
	s.Rotation = shape.Vec3{math.Pi / 2, math.Pi / 2, 0}

	// Rx·Ry: y rotation acts first, (1,0,0) -> (0,0,-1) -> (0,1,0).
	got := m4.Model(mgl32.Ident4(), s).Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	want := mgl32.Vec4{0, 1, 0, 1}
	if !nearVec(got, want) {
		t.Errorf("M*(1,0,0) = %v, want %v", got, want)
	}

	// The reversed product sends the same point somewhere else.
	reversed := mgl32.HomogRotate3DY(math.Pi / 2).Mul4(mgl32.HomogRotate3DX(math.Pi / 2)).Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	if nearVec(reversed, want) {
		t.Errorf("reversed order unexpectedly matches: %v", reversed)
	}
}

func TestHelpersMatchManualProduct(t *testing.T) {
	base := m4.Projection(640, 480, m4.DefaultDepth)
	got := m4.Scale(m4.RotateZ(m4.RotateY(m4.RotateX(m4.Translate(base, 1, 2, 3), 0.1), 0.2), 0.3), 2, 3, 4)
	want := base.
		Mul4(mgl32.Translate3D(1, 2, 3)).
		Mul4(mgl32.HomogRotate3DX(0.1)).
		Mul4(mgl32.HomogRotate3DY(0.2)).
		Mul4(mgl32.HomogRotate3DZ(0.3)).
		Mul4(mgl32.Scale3D(2, 3, 4))
	if !nearMat(got, want) {
		t.Errorf("helpers =\n%v\nwant\n%v", got, want)
	}
}
