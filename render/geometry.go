package render

import "fmt"

// Faces, VertexCount: the letter F is built from 16 rectangular faces of two
// triangles each.
const (
	Faces       = 16
	VertexCount = Faces * 6
)

// fPositions is the 3D letter F: 150 tall, 100 wide, 30 deep, with its
// top-left front corner at the origin.
var fPositions = [VertexCount * 3]float32{
	// left column front
	0, 0, 0,
	0, 150, 0,
	30, 0, 0,
	0, 150, 0,
	30, 150, 0,
	30, 0, 0,

	// top rung front
	30, 0, 0,
	30, 30, 0,
	100, 0, 0,
	30, 30, 0,
	100, 30, 0,
	100, 0, 0,

	// middle rung front
	30, 60, 0,
	30, 90, 0,
	67, 60, 0,
	30, 90, 0,
	67, 90, 0,
	67, 60, 0,

	// left column back
	0, 0, 30,
	30, 0, 30,
	0, 150, 30,
	0, 150, 30,
	30, 0, 30,
	30, 150, 30,

	// top rung back
	30, 0, 30,
	100, 0, 30,
	30, 30, 30,
	30, 30, 30,
	100, 0, 30,
	100, 30, 30,

	// middle rung back
	30, 60, 30,
	67, 60, 30,
	30, 90, 30,
	30, 90, 30,
	67, 60, 30,
	67, 90, 30,

	// top
	0, 0, 0,
	100, 0, 0,
	100, 0, 30,
	0, 0, 0,
	100, 0, 30,
	0, 0, 30,

	// top rung right
	100, 0, 0,
	100, 30, 0,
	100, 30, 30,
	100, 0, 0,
	100, 30, 30,
	100, 0, 30,

	// under top rung
	30, 30, 0,
	30, 30, 30,
	100, 30, 30,
	30, 30, 0,
	100, 30, 30,
	100, 30, 0,

	// between top rung and middle
	30, 30, 0,
	30, 60, 30,
	30, 30, 30,
	30, 30, 0,
	30, 60, 0,
	30, 60, 30,

	// top of middle rung
	30, 60, 0,
	67, 60, 30,
	30, 60, 30,
	30, 60, 0,
	67, 60, 0,
	67, 60, 30,

	// right of middle rung
	67, 60, 0,
	67, 90, 30,
	67, 60, 30,
	67, 60, 0,
	67, 90, 0,
	67, 90, 30,

	// bottom of middle rung
	30, 90, 0,
	30, 90, 30,
	67, 90, 30,
	30, 90, 0,
	67, 90, 30,
	67, 90, 0,

	// right of bottom
	30, 90, 0,
	30, 150, 30,
	30, 90, 30,
	30, 90, 0,
	30, 150, 0,
	30, 150, 30,

	// bottom
	0, 150, 0,
	0, 150, 30,
	30, 150, 30,
	0, 150, 0,
	30, 150, 30,
	30, 150, 0,

	// left side
	0, 0, 0,
	0, 0, 30,
	0, 150, 30,
	0, 0, 0,
	0, 150, 30,
	0, 150, 0,
}

// facePalette is one RGB color per face, in fPositions order.
var facePalette = [Faces][3]uint8{
	{200, 70, 120},  // left column front
	{200, 70, 120},  // top rung front
	{200, 70, 120},  // middle rung front
	{80, 70, 200},   // left column back
	{80, 70, 200},   // top rung back
	{80, 70, 200},   // middle rung back
	{70, 200, 210},  // top
	{200, 200, 70},  // top rung right
	{210, 100, 70},  // under top rung
	{210, 160, 70},  // between top rung and middle
	{70, 180, 210},  // top of middle rung
	{100, 70, 210},  // right of middle rung
	{76, 210, 100},  // bottom of middle rung
	{140, 210, 80},  // right of bottom
	{90, 130, 110},  // bottom
	{160, 160, 220}, // left side
}

// Positions returns a copy of the F geometry, three floats per vertex.
func Positions() []float32 {
	out := make([]float32, len(fPositions))
	copy(out, fPositions[:])
	return out
}

// ColorMode selects where vertex colors come from.
type ColorMode uint8

const (
	// ColorPalette uses the fixed per-face palette and ignores the shape's
	// color.
	ColorPalette ColorMode = iota
	// ColorShape modulates the per-face palette by the shape's RGB.
	ColorShape
)

func (m ColorMode) String() string {
	switch m {
	case ColorPalette:
		return "palette"
	case ColorShape:
		return "shape"
	default:
		return fmt.Sprintf("ColorMode(%d)", uint8(m))
	}
}

// ParseColorMode parses "palette" or "shape".
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "palette", "":
		return ColorPalette, nil
	case "shape":
		return ColorShape, nil
	}
	return 0, fmt.Errorf("unknown color mode %q", s)
}

// Colors returns the per-vertex RGB bytes for the F geometry.
func Colors(mode ColorMode, rgba [4]float64) []uint8 {
	out := make([]uint8, 0, VertexCount*3)
	for _, c := range facePalette {
		if mode == ColorShape {
			c = [3]uint8{modulate(c[0], rgba[0]), modulate(c[1], rgba[1]), modulate(c[2], rgba[2])}
		}
		for range 6 {
			out = append(out, c[0], c[1], c[2])
		}
	}
	return out
}

func modulate(c uint8, f float64) uint8 {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return c
	}
	return uint8(float64(c)*f + 0.5)
}
