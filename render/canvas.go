package render

import (
	"fmt"
	"log/slog"

	"github.com/go-theft-auto/multishape/m4"
	"github.com/go-theft-auto/multishape/shape"
)

// State is the render cycle state of a canvas.
type State uint8

const (
	StateUnbound State = iota // no program attached
	StateBound                // program compiled, buffers uploaded
	StateDrawing              // inside Draw
)

func (s State) String() string {
	switch s {
	case StateUnbound:
		return "unbound"
	case StateBound:
		return "bound"
	case StateDrawing:
		return "drawing"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Canvas is one drawing surface with its own context and program binding.
// Nothing is shared between canvases.
type Canvas struct {
	index   int
	ctx     Context
	binding *Binding
	state   State

	draws  int
	builds int
}

// Index returns the canvas index.
func (c *Canvas) Index() int { return c.index }

// State returns the current render cycle state.
func (c *Canvas) State() State { return c.state }

// Bound reports whether the canvas can draw.
func (c *Canvas) Bound() bool { return c.state == StateBound }

// Draws returns how many draw calls the canvas has issued.
func (c *Canvas) Draws() int { return c.draws }

// Builds returns how many times a program was compiled and linked for the
// canvas, including the initial bind.
func (c *Canvas) Builds() int { return c.builds }

// Size returns the surface size, or zeros for an unbound canvas.
func (c *Canvas) Size() (width, height int) {
	if c.ctx == nil {
		return 0, 0
	}
	return c.ctx.Size()
}

// Texture returns the texture holding the canvas image, if the context
// renders into one.
func (c *Canvas) Texture() (uint32, bool) {
	t, ok := c.ctx.(Textured)
	if !ok || c.state == StateUnbound {
		return 0, false
	}
	return t.Texture(), true
}

// Bind moves the canvas from Unbound to Bound: acquire a context, compile
// the program and upload geometry and colors. On error the canvas stays
// Unbound and holds no resources.
func (c *Canvas) Bind(p ContextProvider, width, height int, src Sources, colors []uint8) error {
	if c.state != StateUnbound {
		return fmt.Errorf("canvas %d: bind in state %s", c.index, c.state)
	}

	ctx, err := p.Acquire(c.index, width, height)
	if err != nil {
		return fmt.Errorf("canvas %d: %w", c.index, err)
	}
	if ctx == nil {
		return fmt.Errorf("canvas %d: %w", c.index, ErrContextUnavailable)
	}

	b, err := newBinding(ctx, src, colors)
	if err != nil {
		ctx.Release()
		return fmt.Errorf("canvas %d: %w", c.index, err)
	}

	c.ctx = ctx
	c.binding = b
	c.state = StateBound
	c.builds++
	logger().Debug("canvas bound",
		slog.Int("canvas", c.index),
		slog.Int("width", width),
		slog.Int("height", height),
		slog.Uint64("program", uint64(b.program)))
	return nil
}

// Rebuild recompiles and relinks the program from src and re-resolves every
// location. If compilation fails the previous program keeps drawing.
func (c *Canvas) Rebuild(src Sources) error {
	if c.state != StateBound {
		return fmt.Errorf("canvas %d: %w", c.index, ErrNotBound)
	}
	if err := c.binding.link(src); err != nil {
		return fmt.Errorf("canvas %d: %w", c.index, err)
	}
	c.builds++
	logger().Debug("canvas program rebuilt", slog.Int("canvas", c.index), slog.Int("builds", c.builds))
	return nil
}

// Draw issues one draw of the shape: Bound -> Drawing -> Bound.
func (c *Canvas) Draw(s shape.Shape, depth float32) error {
	if c.state != StateBound {
		return fmt.Errorf("canvas %d: %w", c.index, ErrNotBound)
	}
	c.state = StateDrawing
	defer func() { c.state = StateBound }()

	w, h := c.ctx.Size()
	m := m4.Compose(s, float32(w), float32(h), depth)
	b := c.binding

	c.ctx.Begin()
	c.ctx.UseProgram(b.program)
	c.ctx.BindVertexArray(b.vao)
	c.ctx.UniformMatrix4(b.matrixLoc, (*[16]float32)(&m))
	c.ctx.Uniform1f(b.fudgeLoc, float32(s.FudgeFactor))
	c.ctx.DrawTriangles(0, VertexCount)
	c.ctx.End()

	c.draws++
	return nil
}

// Binding returns the program binding, or nil when unbound.
func (c *Canvas) Binding() *Binding { return c.binding }

// release frees every GPU object and returns the canvas to Unbound.
func (c *Canvas) release() {
	if c.binding != nil {
		c.binding.release()
		c.binding = nil
	}
	if c.ctx != nil {
		c.ctx.Release()
		c.ctx = nil
	}
	c.state = StateUnbound
}
