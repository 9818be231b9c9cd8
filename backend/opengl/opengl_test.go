package opengl

import (
	"math"
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/multishape/gui"
)

func cellInk(t *testing.T, r rune) int {
	t.Helper()
	img := FontAtlas()
	g := int(r - ' ')
	x0, y0 := (g%atlasCols)*CellWidth, (g/atlasCols)*CellHeight
	ink := 0
	for y := y0; y < y0+CellHeight; y++ {
		for x := x0; x < x0+CellWidth; x++ {
			if img.AlphaAt(x, y).A != 0 {
				ink++
			}
		}
	}
	return ink
}

func TestFontAtlas(t *testing.T) {
	img := FontAtlas()
	if b := img.Bounds(); b.Dx() != 128 || b.Dy() != 78 {
		t.Fatalf("atlas size = %v", b)
	}
	if n := cellInk(t, ' '); n != 0 {
		t.Errorf("space has %d lit pixels", n)
	}
	for _, r := range "A0+_~" {
		if cellInk(t, r) == 0 {
			t.Errorf("glyph %q is empty", r)
		}
	}
}

func TestScissorBox(t *testing.T) {
	tests := []struct {
		name       string
		clip       [4]float32
		height     int
		scale      float32
		x, y, w, h int32
		ok         bool
	}{
		{name: "inside", clip: [4]float32{10, 20, 110, 70}, height: 600, scale: 1, x: 10, y: 530, w: 100, h: 50, ok: true},
		{name: "hidpi", clip: [4]float32{10, 20, 110, 70}, height: 1200, scale: 2, x: 20, y: 1060, w: 200, h: 100, ok: true},
		{name: "unbounded", clip: [4]float32{-1e9, -1e9, 1e9, 1e9}, height: 600, scale: 1, x: 0, y: 0, w: 1 << 20, h: 1 << 20, ok: true},
		{name: "empty", clip: [4]float32{50, 50, 50, 80}, height: 600, scale: 1},
		{name: "below screen", clip: [4]float32{0, 700, 10, 800}, height: 600, scale: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, w, h, ok := scissorBox(tt.clip, tt.height, tt.scale, tt.scale)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && (x != tt.x || y != tt.y || w != tt.w || h != tt.h) {
				t.Errorf("box = %d,%d %dx%d, want %d,%d %dx%d", x, y, w, h, tt.x, tt.y, tt.w, tt.h)
			}
		})
	}
}

func TestProjectionCorners(t *testing.T) {
	r := &Renderer{width: 800, height: 600}
	m := r.projection()
	near := func(a, b float32) bool { return math.Abs(float64(a-b)) < 1e-5 }
	if p := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1}); !near(p[0], -1) || !near(p[1], 1) {
		t.Errorf("top-left -> %v, want -1,1", p)
	}
	if p := m.Mul4x1(mgl32.Vec4{800, 600, 0, 1}); !near(p[0], 1) || !near(p[1], -1) {
		t.Errorf("bottom-right -> %v, want 1,-1", p)
	}
}

func TestFramebufferScale(t *testing.T) {
	tests := []struct {
		name       string
		fbW, fbH   int
		sx, sy     float32
		wantHeight int
	}{
		{name: "unset", sx: 1, sy: 1, wantHeight: 600},
		{name: "same size", fbW: 800, fbH: 600, sx: 1, sy: 1, wantHeight: 600},
		{name: "retina", fbW: 1600, fbH: 1200, sx: 2, sy: 2, wantHeight: 1200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Renderer{width: 800, height: 600}
			r.SetFramebufferSize(tt.fbW, tt.fbH)
			sx, sy, h := r.framebufferScale()
			if sx != tt.sx || sy != tt.sy || h != tt.wantHeight {
				t.Errorf("scale = %v,%v height %d, want %v,%v height %d", sx, sy, h, tt.sx, tt.sy, tt.wantHeight)
			}
		})
	}
}

func TestKeyMapping(t *testing.T) {
	tests := map[glfw.Key]gui.Key{
		glfw.KeyTab:     gui.KeyTab,
		glfw.KeyF5:      gui.KeyF5,
		glfw.KeyKPEnter: gui.KeyEnter,
		glfw.KeyA:       gui.KeyNone,
	}
	for in, want := range tests {
		if got := glfwKeyToGUIKey(in); got != want {
			t.Errorf("glfwKeyToGUIKey(%v) = %v, want %v", in, got, want)
		}
	}
	if glfwMouseButtonToGUI(glfw.MouseButton4) >= 0 {
		t.Error("extra mouse button mapped")
	}
}

func TestCstr(t *testing.T) {
	if got := cstr("a_position"); got != "a_position\x00" {
		t.Errorf("cstr = %q", got)
	}
	if got := cstr("x\x00"); got != "x\x00" {
		t.Errorf("cstr doubled the terminator: %q", got)
	}
}
