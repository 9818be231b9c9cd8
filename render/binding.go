package render

import "fmt"

// Binding is the GPU side of one canvas: a linked program, the locations it
// exposes, a vertex array object and the position and color buffers.
type Binding struct {
	ctx     Context
	sources Sources

	program     uint32
	positionLoc int32
	colorLoc    int32
	matrixLoc   int32
	fudgeLoc    int32

	vao         uint32
	positionBuf uint32
	colorBuf    uint32
}

// newBinding compiles the program and uploads the geometry and colors.
func newBinding(ctx Context, src Sources, colors []uint8) (*Binding, error) {
	b := &Binding{ctx: ctx}

	b.vao = ctx.CreateVertexArray()
	b.positionBuf = ctx.CreateBuffer()
	ctx.BufferFloat32(b.positionBuf, fPositions[:])
	b.colorBuf = ctx.CreateBuffer()
	ctx.BufferUint8(b.colorBuf, colors)

	if err := b.link(src); err != nil {
		b.release()
		return nil, err
	}
	return b, nil
}

// link compiles and links src, resolves every location and points the
// vertex array at the buffers. On failure the previous program, if any,
// stays in place.
func (b *Binding) link(src Sources) error {
	program, err := b.ctx.CreateProgram(src.Vertex, src.Fragment)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrShaderCompileFailed, err)
	}

	positionLoc := b.ctx.AttribLocation(program, AttribPosition)
	colorLoc := b.ctx.AttribLocation(program, AttribColor)
	matrixLoc := b.ctx.UniformLocation(program, UniformMatrix)
	fudgeLoc := b.ctx.UniformLocation(program, UniformFudgeFactor)

	for _, l := range []struct {
		name string
		loc  int32
	}{
		{AttribPosition, positionLoc},
		{AttribColor, colorLoc},
		{UniformMatrix, matrixLoc},
		{UniformFudgeFactor, fudgeLoc},
	} {
		if l.loc < 0 {
			b.ctx.DeleteProgram(program)
			return fmt.Errorf("%w: %s not found in program", ErrShaderCompileFailed, l.name)
		}
	}

	if b.program != 0 {
		b.ctx.DeleteProgram(b.program)
	}
	b.program = program
	b.sources = src
	b.positionLoc, b.colorLoc = positionLoc, colorLoc
	b.matrixLoc, b.fudgeLoc = matrixLoc, fudgeLoc

	// 3 floats per position, 3 normalized bytes per color.
	b.ctx.VertexAttrib(b.vao, b.positionBuf, uint32(positionLoc), 3, AttribFloat32, false)
	b.ctx.VertexAttrib(b.vao, b.colorBuf, uint32(colorLoc), 3, AttribUint8, true)
	return nil
}

// uploadColors replaces the color buffer contents.
func (b *Binding) uploadColors(colors []uint8) {
	b.ctx.BufferUint8(b.colorBuf, colors)
}

// Program returns the linked program handle.
func (b *Binding) Program() uint32 {
	return b.program
}

// Sources returns the shader pair the program was linked from.
func (b *Binding) Sources() Sources {
	return b.sources
}

func (b *Binding) release() {
	if b.program != 0 {
		b.ctx.DeleteProgram(b.program)
		b.program = 0
	}
	if b.colorBuf != 0 {
		b.ctx.DeleteBuffer(b.colorBuf)
		b.colorBuf = 0
	}
	if b.positionBuf != 0 {
		b.ctx.DeleteBuffer(b.positionBuf)
		b.positionBuf = 0
	}
	if b.vao != 0 {
		b.ctx.DeleteVertexArray(b.vao)
		b.vao = 0
	}
}
