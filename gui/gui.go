package gui

// Renderer draws finalized draw lists.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// GUI owns the Context and the renderer for the whole program.
type GUI struct {
	renderer Renderer
	style    Style
	ctx      *Context
}

type GUIOption func(*GUI)

func WithStyle(style Style) GUIOption {
	return func(g *GUI) { g.style = style }
}

func New(renderer Renderer, opts ...GUIOption) *GUI {
	g := &GUI{
		renderer: renderer,
		style:    DefaultStyle(),
		ctx:      NewContext(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Begin starts a frame and returns the Context to build it with.
func (g *GUI) Begin(input *InputState, displaySize Vec2, deltaTime float32) *Context {
	ctx := g.ctx
	ctx.DrawList = AcquireDrawList()
	ctx.Input = input
	ctx.FontTextureID = g.renderer.FontTextureID()
	ctx.SetStyle(g.style)
	ctx.Reset(displaySize, deltaTime)
	return ctx
}

// End renders the frame and releases its draw list.
func (g *GUI) End() error {
	dl := g.ctx.DrawList
	if dl == nil {
		return nil
	}
	g.ctx.DrawList = nil
	defer ReleaseDrawList(dl)

	dl.Finalize()
	return g.renderer.Render(dl)
}

// Context returns the frame context. Only valid between Begin and End.
func (g *GUI) Context() *Context { return g.ctx }

func (g *GUI) Style() Style         { return g.style }
func (g *GUI) SetStyle(style Style) { g.style = style }

// Resize forwards a framebuffer size change to the renderer.
func (g *GUI) Resize(width, height int) {
	g.renderer.Resize(width, height)
}
