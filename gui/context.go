package gui

// Context is the per-frame UI state handed to widget code between
// GUI.Begin and GUI.End. It is not a context.Context.
type Context struct {
	DrawList *DrawList
	Input    *InputState

	DisplaySize Vec2
	DeltaTime   float32
	FrameCount  uint64

	// FontTextureID is the renderer's glyph atlas.
	FontTextureID uint32

	// Set by widgets during the frame so the application can tell whether
	// the UI consumed the input.
	WantCaptureMouse    bool
	WantCaptureKeyboard bool

	style       Style
	cursor      Vec2
	layoutStack []*Layout

	idStack   []ID
	idCounter uint32

	textMeasureCache map[string]Vec2

	sweepers []Sweeper
	sliders  *FrameStore[SliderState]
	numbers  *FrameStore[numberInputState]

	focus focusRing
}

// NewContext returns a Context with the default style. GUI.New creates
// one; tests may drive a Context directly through Reset.
func NewContext() *Context {
	ctx := &Context{
		style:            DefaultStyle(),
		layoutStack:      make([]*Layout, 0, 16),
		idStack:          make([]ID, 0, 16),
		textMeasureCache: make(map[string]Vec2, 64),
	}
	ctx.sliders = NewFrameStore[SliderState](ctx)
	ctx.numbers = NewFrameStore[numberInputState](ctx)
	return ctx
}

func (ctx *Context) Style() Style         { return ctx.style }
func (ctx *Context) SetStyle(style Style) { ctx.style = style }

// Reset starts a new frame: per-frame layout and ID state is cleared, stale
// widget state is swept and keyboard focus navigation is applied.
func (ctx *Context) Reset(displaySize Vec2, deltaTime float32) {
	ctx.FrameCount++
	for _, s := range ctx.sweepers {
		s.Sweep(ctx.FrameCount)
	}

	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime
	ctx.cursor = Vec2{}
	ctx.layoutStack = ctx.layoutStack[:0]
	ctx.idStack = ctx.idStack[:0]
	ctx.idCounter = 0
	ctx.WantCaptureMouse = false
	ctx.WantCaptureKeyboard = false
	clear(ctx.textMeasureCache)

	ctx.focus.beginFrame(ctx.Input)
}

func (ctx *Context) SetCursorPos(x, y float32) { ctx.cursor = Vec2{X: x, Y: y} }
func (ctx *Context) CursorPos() Vec2           { return ctx.cursor }

func (ctx *Context) isHovered(r Rect) bool {
	if ctx.Input == nil {
		return false
	}
	return r.Contains(Vec2{ctx.Input.MouseX, ctx.Input.MouseY})
}

func (ctx *Context) isClicked(id ID, r Rect) bool {
	if ctx.Input == nil || !ctx.Input.MouseClicked(MouseButtonLeft) {
		return false
	}
	hit := ctx.isHovered(r)
	if verbose() {
		guiLogger.Debug("click", "id", id, "hit", hit, "rect", r,
			"mouse", Vec2{ctx.Input.MouseX, ctx.Input.MouseY})
	}
	return hit
}

func (ctx *Context) isPressed(r Rect) bool {
	return ctx.Input != nil && ctx.isHovered(r) && ctx.Input.MouseDown(MouseButtonLeft)
}

// LineHeight is the height of one line of text in the current style.
func (ctx *Context) LineHeight() float32 {
	return ctx.style.CharHeight * ctx.style.FontScale
}

// MeasureText returns the size of text in the monospace font. Results are
// cached for the frame.
func (ctx *Context) MeasureText(text string) Vec2 {
	if v, ok := ctx.textMeasureCache[text]; ok {
		return v
	}
	n := 0
	for range text {
		n++
	}
	v := Vec2{
		X: float32(n) * ctx.style.CharWidth * ctx.style.FontScale,
		Y: ctx.LineHeight(),
	}
	ctx.textMeasureCache[text] = v
	return v
}

// AddText draws text at an absolute position without moving the cursor.
func (ctx *Context) AddText(x, y float32, text string, color uint32) {
	ctx.DrawList.SetTexture(ctx.FontTextureID)
	ctx.DrawList.AddText(x, y, text, color, ctx.style.FontScale, ctx.style.CharWidth, ctx.style.CharHeight)
	ctx.DrawList.SetTexture(0)
}
