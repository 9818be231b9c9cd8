// Package shape holds the per-canvas transform state of the multi-shape
// renderer and the operations that mutate it.
//
// Every canvas owns exactly one Shape, addressed by its index. Shapes are
// created once by NewStore and live for the lifetime of the Store; they are
// only ever mutated in place.
package shape

import (
	"math"
	"math/rand/v2"
)

// Vec3 is a three component vector (x, y, z).
type Vec3 [3]float64

// Fudge factor bounds. The perspective divide is 1 + z*fudge, so values
// outside this range turn the pedagogical effect into a mess.
const (
	MinFudgeFactor = 0.0
	MaxFudgeFactor = 2.0
)

// Shape is the transform, color and fudge factor of one canvas.
type Shape struct {
	Translation Vec3 // pixel-like units
	Rotation    Vec3 // radians, one per axis
	Scale       Vec3 // unit-less multipliers, never zero
	Color       [4]float64
	FudgeFactor float64
}

// RotationDegrees returns the rotation converted to degrees.
func (s Shape) RotationDegrees() Vec3 {
	return Vec3{
		RadToDeg(s.Rotation[0]),
		RadToDeg(s.Rotation[1]),
		RadToDeg(s.Rotation[2]),
	}
}

// Template describes the state every Shape starts with.
type Template struct {
	Translation     Vec3
	RotationDegrees Vec3
	Scale           Vec3
	FudgeFactor     float64
}

// DefaultTemplate returns the startup state: translated to (100, 100, 0),
// unrotated, unit scale, fudge factor 0.5.
func DefaultTemplate() Template {
	return Template{
		Translation: Vec3{100, 100, 0},
		Scale:       Vec3{1, 1, 1},
		FudgeFactor: 0.5,
	}
}

// newShape builds a Shape from the template with a random color.
// Color components are in [0, 1), alpha is always 1.
func newShape(t Template, rng *rand.Rand) Shape {
	return Shape{
		Translation: t.Translation,
		Rotation: Vec3{
			DegToRad(t.RotationDegrees[0]),
			DegToRad(t.RotationDegrees[1]),
			DegToRad(t.RotationDegrees[2]),
		},
		Scale:       t.Scale,
		Color:       [4]float64{rng.Float64(), rng.Float64(), rng.Float64(), 1},
		FudgeFactor: t.FudgeFactor,
	}
}

// DegToRad converts degrees to radians.
func DegToRad(d float64) float64 {
	return d * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(r float64) float64 {
	return r * 180 / math.Pi
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
