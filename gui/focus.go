package gui

// focusRing tracks keyboard focus. Widgets register in draw order each
// frame; Tab and Shift+Tab walk last frame's order, a click focuses the
// widget under the mouse and Escape drops focus.
type focusRing struct {
	focused ID
	items   []ID // this frame, in draw order
	prev    []ID // last frame
}

func (f *focusRing) beginFrame(in *InputState) {
	f.prev, f.items = f.items, f.prev[:0]

	if f.focused != 0 && indexOf(f.prev, f.focused) < 0 {
		// widget no longer drawn
		f.focused = 0
	}
	if in == nil {
		return
	}
	if in.KeyPressed(KeyEscape) {
		f.focused = 0
	}
	if in.KeyPressed(KeyTab) && len(f.prev) > 0 {
		i := indexOf(f.prev, f.focused)
		switch {
		case i < 0 && in.ModShift:
			i = len(f.prev) - 1
		case i < 0:
			i = 0
		case in.ModShift:
			i = (i - 1 + len(f.prev)) % len(f.prev)
		default:
			i = (i + 1) % len(f.prev)
		}
		f.focused = f.prev[i]
	}
}

func indexOf(ids []ID, id ID) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

// registerFocusable adds id to this frame's focus order. A click inside r
// moves focus to it. Reports whether id holds focus.
func (ctx *Context) registerFocusable(id ID, r Rect) bool {
	ctx.focus.items = append(ctx.focus.items, id)
	if ctx.isClicked(id, r) {
		ctx.focus.focused = id
	}
	return ctx.focus.focused == id
}

// FocusedID returns the widget holding keyboard focus, or 0.
func (ctx *Context) FocusedID() ID { return ctx.focus.focused }

// SetFocus gives keyboard focus to id.
func (ctx *Context) SetFocus(id ID) { ctx.focus.focused = id }

func (ctx *Context) ClearFocus() { ctx.focus.focused = 0 }

// drawFocusRing outlines the focused widget.
func (ctx *Context) drawFocusRing(r Rect) {
	ctx.DrawList.AddRectOutline(r.X-1, r.Y-1, r.W+2, r.H+2, ctx.style.FocusColor, 1)
}
