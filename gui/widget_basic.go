package gui

// Text draws text at the cursor.
func (ctx *Context) Text(text string) {
	ctx.TextColored(text, ctx.style.TextColor)
}

func (ctx *Context) TextColored(text string, color uint32) {
	pos := ctx.ItemPos()
	ctx.AddText(pos.X, pos.Y, text, color)
	ctx.AdvanceCursor(ctx.MeasureText(text))
}

// Button draws a button and reports whether it was activated this frame,
// by a click or by Enter while focused. Disabled buttons never activate.
//
//	if ctx.Button("+", gui.WithID("buttonIncrement")) {
//	    counter.Increment()
//	}
func (ctx *Context) Button(label string, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	id := ctx.widgetID(label, o)
	disabled := GetOpt(o, OptDisabled)

	text := ctx.MeasureText(label)
	size := Vec2{
		X: text.X + 2*ctx.style.ButtonPadding,
		Y: text.Y + 2*ctx.style.ButtonPadding,
	}
	if w := GetOpt(o, OptWidth); w > 0 {
		size.X = w
	}
	if h := GetOpt(o, OptHeight); h > 0 {
		size.Y = h
	}
	r := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}

	activated := false
	focused := false
	bg := ctx.style.ButtonDisabledColor
	if !disabled {
		focused = ctx.registerFocusable(id, r)
		hovered := ctx.isHovered(r)
		switch {
		case ctx.isPressed(r):
			bg = ctx.style.ButtonActiveColor
		case hovered:
			bg = ctx.style.ButtonHoveredColor
		default:
			bg = ctx.style.ButtonColor
		}
		if hovered {
			ctx.WantCaptureMouse = true
		}
		activated = ctx.isClicked(id, r) ||
			(focused && ctx.Input != nil && ctx.Input.KeyPressed(KeyEnter))
	}

	ctx.DrawList.AddRect(r.X, r.Y, r.W, r.H, bg)
	fg := ctx.style.TextColor
	if disabled {
		fg = ctx.style.TextDisabledColor
	}
	ctx.AddText(r.X+(r.W-text.X)/2, r.Y+(r.H-text.Y)/2, label, fg)
	if focused {
		ctx.drawFocusRing(r)
	}

	ctx.AdvanceCursor(size)
	return activated
}

// ImageResult reports how the mouse interacted with an image this frame.
type ImageResult struct {
	Rect    Rect
	Hovered bool
	Clicked bool
}

// Image draws a w x h texture at the cursor. Framebuffer textures need
// FlipY. A border is drawn in ImageBorderColor when the style has one.
func (ctx *Context) Image(textureID uint32, w, h float32, opts ...Option) ImageResult {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	uv0, uv1 := Vec2{X: 0, Y: 0}, Vec2{X: 1, Y: 1}
	if GetOpt(o, OptFlipY) {
		uv0, uv1 = Vec2{X: 0, Y: 1}, Vec2{X: 1, Y: 0}
	}
	r := Rect{X: pos.X, Y: pos.Y, W: w, H: h}

	if textureID != 0 {
		ctx.DrawList.AddImage(textureID, r.X, r.Y, r.W, r.H, uv0, uv1, GetOpt(o, OptTint))
	} else {
		// no texture yet: leave a placeholder so the grid keeps its shape
		ctx.DrawList.AddRect(r.X, r.Y, r.W, r.H, ctx.style.InputBgColor)
	}
	if ctx.style.BorderSize > 0 {
		ctx.DrawList.AddRectOutline(r.X, r.Y, r.W, r.H, ctx.style.ImageBorderColor, ctx.style.BorderSize)
	}

	res := ImageResult{Rect: r, Hovered: ctx.isHovered(r)}
	if res.Hovered {
		res.Clicked = ctx.isClicked(ctx.CurrentID(), r)
	}
	ctx.AdvanceCursor(Vec2{X: w, Y: h})
	return res
}

// widgetID derives the ID from OptID when set, else from label.
func (ctx *Context) widgetID(label string, o options) ID {
	if s := GetOpt(o, OptID); s != "" {
		return ctx.GetID(s)
	}
	return ctx.GetID(label)
}
