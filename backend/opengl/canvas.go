package opengl

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/multishape/render"
)

// Provider hands out offscreen canvases: each one is a framebuffer with an
// RGBA color texture and a depth renderbuffer, drawn with the window's GL
// context. The GL context must be current on the calling thread.
type Provider struct {
	renderer *Renderer
	log      *slog.Logger
}

// NewProvider returns a Provider. Canvas textures are registered with r, if
// not nil, so the GUI samples them as RGBA.
func NewProvider(r *Renderer, log *slog.Logger) *Provider {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Provider{renderer: r, log: log}
}

// Acquire implements render.ContextProvider.
func (p *Provider) Acquire(canvas, width, height int) (render.Context, error) {
	c := &canvasContext{index: canvas, provider: p}
	gl.GenFramebuffers(1, &c.fbo)
	gl.GenTextures(1, &c.tex)
	gl.GenRenderbuffers(1, &c.depth)
	if c.fbo == 0 || c.tex == 0 || c.depth == 0 {
		c.Release()
		return nil, fmt.Errorf("canvas %d: no GL objects: %w", canvas, render.ErrContextUnavailable)
	}
	if err := c.Resize(width, height); err != nil {
		c.Release()
		return nil, err
	}
	if p.renderer != nil {
		p.renderer.RegisterRGBATexture(c.tex)
	}
	p.log.Debug("canvas framebuffer", "canvas", canvas, "fbo", c.fbo, "texture", c.tex, "w", width, "h", height)
	return c, nil
}

// canvasContext implements render.Context on one framebuffer.
type canvasContext struct {
	index    int
	provider *Provider

	fbo, tex, depth uint32
	width, height   int

	prevFBO      int32
	prevViewport [4]int32
}

var (
	_ render.Context  = (*canvasContext)(nil)
	_ render.Textured = (*canvasContext)(nil)
)

func (c *canvasContext) Size() (int, int) { return c.width, c.height }
func (c *canvasContext) Texture() uint32  { return c.tex }

// Resize reallocates the color and depth storage. Texture and framebuffer
// names stay the same.
func (c *canvasContext) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("canvas %d: size %dx%d: %w", c.index, width, height, render.ErrContextUnavailable)
	}

	gl.BindTexture(gl.TEXTURE_2D, c.tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.BindRenderbuffer(gl.RENDERBUFFER, c.depth)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, int32(width), int32(height))
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)

	var prev int32
	gl.GetIntegerv(gl.FRAMEBUFFER_BINDING, &prev)
	gl.BindFramebuffer(gl.FRAMEBUFFER, c.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, c.tex, 0)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, c.depth)
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(prev))

	if status != gl.FRAMEBUFFER_COMPLETE {
		return fmt.Errorf("canvas %d: framebuffer status 0x%x: %w", c.index, status, render.ErrContextUnavailable)
	}
	c.width, c.height = width, height
	return nil
}

func (c *canvasContext) Begin() {
	gl.GetIntegerv(gl.FRAMEBUFFER_BINDING, &c.prevFBO)
	gl.GetIntegerv(gl.VIEWPORT, &c.prevViewport[0])

	gl.BindFramebuffer(gl.FRAMEBUFFER, c.fbo)
	gl.Viewport(0, 0, int32(c.width), int32(c.height))
	gl.ClearColor(0, 0, 0, 0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
}

func (c *canvasContext) End() {
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
	gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(c.prevFBO))
	v := c.prevViewport
	gl.Viewport(v[0], v[1], v[2], v[3])
}

func (c *canvasContext) CreateProgram(vertexSource, fragmentSource string) (uint32, error) {
	return createShaderProgram(vertexSource, fragmentSource)
}

func (c *canvasContext) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (c *canvasContext) AttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(cstr(name)))
}

func (c *canvasContext) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(cstr(name)))
}

func (c *canvasContext) CreateVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (c *canvasContext) DeleteVertexArray(vao uint32) { gl.DeleteVertexArrays(1, &vao) }

func (c *canvasContext) CreateBuffer() uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return buf
}

func (c *canvasContext) DeleteBuffer(buf uint32) { gl.DeleteBuffers(1, &buf) }

func (c *canvasContext) BufferFloat32(buf uint32, data []float32) {
	if len(data) == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, buf)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (c *canvasContext) BufferUint8(buf uint32, data []uint8) {
	if len(data) == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, buf)
	gl.BufferData(gl.ARRAY_BUFFER, len(data), gl.Ptr(data), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (c *canvasContext) VertexAttrib(vao, buf uint32, loc uint32, size int32, typ render.AttribType, normalized bool) {
	xtype := uint32(gl.FLOAT)
	if typ == render.AttribUint8 {
		xtype = gl.UNSIGNED_BYTE
	}
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, buf)
	gl.EnableVertexAttribArray(loc)
	gl.VertexAttribPointerWithOffset(loc, size, xtype, normalized, 0, 0)
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (c *canvasContext) UseProgram(program uint32)  { gl.UseProgram(program) }
func (c *canvasContext) BindVertexArray(vao uint32) { gl.BindVertexArray(vao) }

func (c *canvasContext) UniformMatrix4(loc int32, m *[16]float32) {
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
}

func (c *canvasContext) Uniform1f(loc int32, v float32) { gl.Uniform1f(loc, v) }

func (c *canvasContext) DrawTriangles(first, count int32) {
	gl.DrawArrays(gl.TRIANGLES, first, count)
}

// Release deletes the framebuffer and its attachments.
func (c *canvasContext) Release() {
	if c.provider != nil && c.provider.renderer != nil && c.tex != 0 {
		c.provider.renderer.UnregisterRGBATexture(c.tex)
	}
	if c.fbo != 0 {
		gl.DeleteFramebuffers(1, &c.fbo)
	}
	if c.depth != 0 {
		gl.DeleteRenderbuffers(1, &c.depth)
	}
	if c.tex != 0 {
		gl.DeleteTextures(1, &c.tex)
	}
	c.fbo, c.depth, c.tex = 0, 0, 0
}
