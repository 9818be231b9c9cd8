// Package render draws shapes into canvases.
//
// Each canvas owns a rendering Context acquired from a ContextProvider, a
// program Binding (compiled shaders, attribute and uniform locations, vertex
// array and buffers) and walks a small state machine:
//
//	Unbound --Bind--> Bound --Draw--> Drawing --> Bound
//
// A Scene ties the canvases to a shape.Store and routes slider updates to
// the one canvas they belong to.
package render

import "errors"

var (
	// ErrContextUnavailable means no rendering context could be acquired for
	// a canvas. The canvas is skipped; the others keep working.
	ErrContextUnavailable = errors.New("rendering context unavailable")

	// ErrShaderCompileFailed means the shader pair did not compile or link,
	// or a required attribute or uniform is missing from the program.
	ErrShaderCompileFailed = errors.New("shader compile failed")

	// ErrNotBound is returned when drawing a canvas that never reached the
	// Bound state.
	ErrNotBound = errors.New("canvas not bound")
)

// AttribType is the component type of a vertex attribute buffer.
type AttribType uint8

const (
	AttribFloat32 AttribType = iota
	AttribUint8
)

// Context is the slice of an immediate-mode 3D API a canvas needs. Object
// handles are opaque non-zero integers, locations are -1 when not found.
//
// Implementations are not safe for concurrent use.
type Context interface {
	// Size returns the pixel size of the drawing surface.
	Size() (width, height int)
	// Resize reallocates the drawing surface.
	Resize(width, height int) error

	// Begin makes the surface current, sets the viewport to its size,
	// clears color and depth and enables depth testing and face culling.
	Begin()
	// End restores whatever Begin changed.
	End()

	CreateProgram(vertexSource, fragmentSource string) (uint32, error)
	DeleteProgram(program uint32)
	AttribLocation(program uint32, name string) int32
	UniformLocation(program uint32, name string) int32

	CreateVertexArray() uint32
	DeleteVertexArray(vao uint32)
	CreateBuffer() uint32
	DeleteBuffer(buf uint32)
	BufferFloat32(buf uint32, data []float32)
	BufferUint8(buf uint32, data []uint8)
	// VertexAttrib records in vao that attribute loc reads size components
	// of typ from buf, and enables it.
	VertexAttrib(vao, buf uint32, loc uint32, size int32, typ AttribType, normalized bool)

	UseProgram(program uint32)
	BindVertexArray(vao uint32)
	UniformMatrix4(loc int32, m *[16]float32)
	Uniform1f(loc int32, v float32)
	DrawTriangles(first, count int32)

	// Release frees the surface. The Context must not be used afterwards.
	Release()
}

// ContextProvider hands out one Context per canvas.
type ContextProvider interface {
	// Acquire returns a Context for the canvas or an error wrapping
	// ErrContextUnavailable.
	Acquire(canvas, width, height int) (Context, error)
}

// Textured is implemented by contexts whose output lives in a texture the
// UI can composite.
type Textured interface {
	Texture() uint32
}
