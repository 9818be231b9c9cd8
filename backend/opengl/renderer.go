// Package opengl implements the render and gui backends on OpenGL 4.1 core
// with GLFW windows: offscreen canvases for shapes, the UI renderer that
// composites them, and the GLFW input adapter.
package opengl

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-theft-auto/multishape/gui"
)

// Renderer implements gui.Renderer.
type Renderer struct {
	shader       uint32
	vao, vbo     uint32
	ebo          uint32
	fontTex      uint32
	projLoc      int32
	texLoc       int32
	useTexLoc    int32
	isRGBATexLoc int32
	width        int
	height       int
	fbWidth      int
	fbHeight     int

	// Textures sampled as full RGBA. Everything else is alpha-only in R.
	rgbaTextures map[uint32]bool
}

var _ gui.Renderer = (*Renderer)(nil)

const uiVertexSource = `#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aColor;

out vec2 TexCoord;
out vec4 Color;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    TexCoord = aTexCoord;
    Color = aColor;
}
`

const uiFragmentSource = `#version 410 core
in vec2 TexCoord;
in vec4 Color;

out vec4 FragColor;

uniform sampler2D tex;
uniform bool useTexture;
uniform bool isRGBATexture;

void main() {
    if (!useTexture) {
        FragColor = Color;
        return;
    }
    vec4 t = texture(tex, TexCoord);
    if (isRGBATexture) {
        FragColor = t * Color;
    } else {
        FragColor = vec4(Color.rgb, Color.a * t.r);
    }
}
`

// NewRenderer creates the UI renderer for a window of the given size. The GL
// context must be current.
func NewRenderer(width, height int) (*Renderer, error) {
	r := &Renderer{
		width:        width,
		height:       height,
		rgbaTextures: make(map[uint32]bool),
	}

	var err error
	r.shader, err = createShaderProgram(uiVertexSource, uiFragmentSource)
	if err != nil {
		return nil, fmt.Errorf("ui shader: %w", err)
	}
	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))
	r.texLoc = gl.GetUniformLocation(r.shader, gl.Str("tex\x00"))
	r.useTexLoc = gl.GetUniformLocation(r.shader, gl.Str("useTexture\x00"))
	r.isRGBATexLoc = gl.GetUniformLocation(r.shader, gl.Str("isRGBATexture\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	// Pos (2 floats) + TexCoord (2 floats) + Color (4 normalized bytes)
	stride := int32(unsafe.Sizeof(gui.Vertex{}))
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(gui.Vertex{}.TexCoord))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Offsetof(gui.Vertex{}.Color))
	gl.EnableVertexAttribArray(2)
	gl.BindVertexArray(0)

	r.fontTex = uploadAlpha(FontAtlas())
	return r, nil
}

func (r *Renderer) FontTextureID() uint32 { return r.fontTex }

// RegisterRGBATexture makes the UI sample textureID as RGBA instead of as
// an alpha mask. Canvas textures are registered by the Provider.
func (r *Renderer) RegisterRGBATexture(textureID uint32) {
	r.rgbaTextures[textureID] = true
}

func (r *Renderer) UnregisterRGBATexture(textureID uint32) {
	delete(r.rgbaTextures, textureID)
}

// Resize sets the logical window size the draw lists are laid out in.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// SetFramebufferSize sets the drawable size in pixels. On HiDPI displays it
// is larger than the window size and clip rectangles are scaled to match.
// Zero means the same as the window size.
func (r *Renderer) SetFramebufferSize(width, height int) {
	r.fbWidth = width
	r.fbHeight = height
}

// framebufferScale returns framebuffer pixels per window unit and the
// framebuffer height.
func (r *Renderer) framebufferScale() (sx, sy float32, height int) {
	if r.fbWidth <= 0 || r.fbHeight <= 0 || r.width <= 0 || r.height <= 0 {
		return 1, 1, r.height
	}
	return float32(r.fbWidth) / float32(r.width), float32(r.fbHeight) / float32(r.height), r.fbHeight
}

// projection maps window coordinates, top-left origin, to clip space.
func (r *Renderer) projection() mgl32.Mat4 {
	return mgl32.Ortho(0, float32(r.width), float32(r.height), 0, -1, 1)
}

// Render draws a finalized draw list to the bound framebuffer.
func (r *Renderer) Render(dl *gui.DrawList) error {
	if dl == nil || len(dl.VtxBuffer) == 0 {
		return nil
	}
	if len(dl.VtxBuffer) > 1<<16 {
		return fmt.Errorf("draw list has %d vertices, indices are 16 bit", len(dl.VtxBuffer))
	}

	var lastProgram int32
	var lastScissor [4]int32
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &lastProgram)
	gl.GetIntegerv(gl.SCISSOR_BOX, &lastScissor[0])
	restore := saveCaps(gl.BLEND, gl.DEPTH_TEST, gl.CULL_FACE, gl.SCISSOR_TEST)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	gl.UseProgram(r.shader)
	proj := r.projection()
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.texLoc, 0)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(dl.VtxBuffer)*int(unsafe.Sizeof(gui.Vertex{})),
		gl.Ptr(dl.VtxBuffer), gl.STREAM_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(dl.IdxBuffer)*2,
		gl.Ptr(dl.IdxBuffer), gl.STREAM_DRAW)

	sx, sy, fbHeight := r.framebufferScale()
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount == 0 {
			continue
		}
		x, y, w, h, ok := scissorBox(cmd.ClipRect, fbHeight, sx, sy)
		if !ok {
			continue
		}
		gl.Scissor(x, y, w, h)

		if cmd.TextureID != 0 {
			gl.BindTexture(gl.TEXTURE_2D, cmd.TextureID)
			gl.Uniform1i(r.useTexLoc, 1)
			gl.Uniform1i(r.isRGBATexLoc, boolToInt(r.rgbaTextures[cmd.TextureID]))
		} else {
			gl.Uniform1i(r.useTexLoc, 0)
			gl.Uniform1i(r.isRGBATexLoc, 0)
		}

		gl.DrawElementsBaseVertexWithOffset(
			gl.TRIANGLES,
			int32(cmd.ElemCount),
			gl.UNSIGNED_SHORT,
			uintptr(cmd.IndexOffset)*2,
			int32(cmd.VertexOffset),
		)
	}

	gl.UseProgram(uint32(lastProgram))
	restore()
	gl.Scissor(lastScissor[0], lastScissor[1], lastScissor[2], lastScissor[3])
	gl.BindVertexArray(0)
	return nil
}

// Delete releases the renderer's GL objects.
func (r *Renderer) Delete() {
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
	}
}

// saveCaps records whether each capability is enabled and returns a func
// that puts them back.
func saveCaps(caps ...uint32) func() {
	enabled := make([]bool, len(caps))
	for i, c := range caps {
		enabled[i] = gl.IsEnabled(c)
	}
	return func() {
		for i, c := range caps {
			if enabled[i] {
				gl.Enable(c)
			} else {
				gl.Disable(c)
			}
		}
	}
}

func boolToInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// scissorBox converts a top-left clip rectangle in window units to GL's
// bottom-left scissor box in framebuffer pixels, clamped at the origin.
// height is the framebuffer height and sx, sy the pixels per window unit.
// ok is false when nothing is visible.
func scissorBox(clip [4]float32, height int, sx, sy float32) (x, y, w, h int32, ok bool) {
	fh := float32(height)
	x0 := max(clip[0]*sx, 0)
	y0 := max(fh-clip[3]*sy, 0)
	x1 := min(clip[2]*sx, 1<<20)
	y1 := min(fh-clip[1]*sy, 1<<20)
	if x1 <= x0 || y1 <= y0 {
		return 0, 0, 0, 0, false
	}
	return int32(x0), int32(y0), int32(x1 - x0), int32(y1 - y0), true
}

// Font atlas layout. gui.DrawList.AddText addresses glyphs by cell in a
// 16x6 grid starting at ' '.
const (
	atlasCols  = 16
	atlasRows  = 6
	CellWidth  = 8
	CellHeight = 13
)

// FontAtlas renders printable ASCII from basicfont.Face7x13 into a
// 16x6 grid of CellWidth x CellHeight cells.
func FontAtlas() *image.Alpha {
	img := image.NewAlpha(image.Rect(0, 0, atlasCols*CellWidth, atlasRows*CellHeight))
	face := basicfont.Face7x13
	d := font.Drawer{Dst: img, Src: image.Opaque, Face: face}
	for g := range atlasCols * atlasRows {
		col, row := g%atlasCols, g/atlasCols
		d.Dot = fixed.P(col*CellWidth, row*CellHeight+face.Ascent)
		d.DrawString(string(rune(' ' + g)))
	}
	return img
}

// uploadAlpha creates a single-channel texture from img.
func uploadAlpha(img *image.Alpha) uint32 {
	b := img.Bounds()
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(b.Dx()), int32(b.Dy()), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}
