package gui

type LayoutType uint8

const (
	LayoutVertical LayoutType = iota
	LayoutHorizontal
)

// Layout is an open container. Children advance the cursor along its axis
// and grow MaxWidth/MaxHeight.
type Layout struct {
	Type LayoutType

	StartX, StartY      float32
	Width, Height       float32 // available
	MaxWidth, MaxHeight float32 // used

	Gap     float32
	Padding float32

	ItemCount int
}

type LayoutOption func(*Layout)

// Gap sets the space between children.
func Gap(px float32) LayoutOption { return func(l *Layout) { l.Gap = px } }

// Padding sets the inner padding of a panel.
func Padding(px float32) LayoutOption { return func(l *Layout) { l.Padding = px } }

// Width fixes the panel width; content never shrinks it below this.
func Width(w float32) LayoutOption { return func(l *Layout) { l.Width = w } }

func Height(h float32) LayoutOption { return func(l *Layout) { l.Height = h } }

func (ctx *Context) currentLayout() *Layout {
	if n := len(ctx.layoutStack); n > 0 {
		return ctx.layoutStack[n-1]
	}
	return nil
}

// AvailableWidth is the width left in the current container.
func (ctx *Context) AvailableWidth() float32 {
	if l := ctx.currentLayout(); l != nil {
		return l.Width - 2*l.Padding
	}
	return ctx.DisplaySize.X - ctx.cursor.X
}

func (ctx *Context) gap(l *Layout) float32 {
	if l.Gap > 0 {
		return l.Gap
	}
	return ctx.style.ItemSpacing
}

// ItemPos applies the container gap and returns where the next widget goes.
func (ctx *Context) ItemPos() Vec2 {
	if l := ctx.currentLayout(); l != nil && l.ItemCount > 0 {
		if l.Type == LayoutVertical {
			ctx.cursor.Y += ctx.gap(l)
		} else {
			ctx.cursor.X += ctx.gap(l)
		}
	}
	return ctx.cursor
}

// AdvanceCursor moves past a widget of the given size.
func (ctx *Context) AdvanceCursor(size Vec2) {
	l := ctx.currentLayout()
	if l == nil {
		ctx.cursor.Y += size.Y + ctx.style.ItemSpacing
		return
	}
	if l.Type == LayoutVertical {
		ctx.cursor.Y += size.Y
		l.MaxWidth = max(l.MaxWidth, size.X)
		l.MaxHeight = ctx.cursor.Y - l.StartY
	} else {
		ctx.cursor.X += size.X
		l.MaxWidth = ctx.cursor.X - l.StartX
		l.MaxHeight = max(l.MaxHeight, size.Y)
	}
	l.ItemCount++
}

func (ctx *Context) pushLayout(l *Layout) {
	l.StartX, l.StartY = ctx.cursor.X, ctx.cursor.Y
	if l.Width == 0 {
		l.Width = ctx.AvailableWidth()
	}
	ctx.layoutStack = append(ctx.layoutStack, l)
}

// popLayout closes the current container and places it in its parent as
// one item. It returns the content bounds.
func (ctx *Context) popLayout() Rect {
	n := len(ctx.layoutStack)
	if n == 0 {
		return Rect{}
	}
	l := ctx.layoutStack[n-1]
	ctx.layoutStack = ctx.layoutStack[:n-1]
	bounds := Rect{X: l.StartX, Y: l.StartY, W: l.MaxWidth, H: l.MaxHeight}

	// the parent gap was applied by ItemPos before the child opened
	ctx.cursor = Vec2{X: l.StartX, Y: l.StartY}
	ctx.AdvanceCursor(Vec2{X: l.MaxWidth, Y: l.MaxHeight})
	return bounds
}

// VStack stacks its children top to bottom.
//
//	ctx.VStack(gui.Gap(8))(func() {
//	    ctx.Text("a")
//	    ctx.Text("b")
//	})
func (ctx *Context) VStack(opts ...LayoutOption) func(func()) {
	return ctx.stack(LayoutVertical, opts)
}

// HStack places its children left to right.
func (ctx *Context) HStack(opts ...LayoutOption) func(func()) {
	return ctx.stack(LayoutHorizontal, opts)
}

func (ctx *Context) stack(t LayoutType, opts []LayoutOption) func(func()) {
	return func(contents func()) {
		ctx.ItemPos()
		l := &Layout{Type: t}
		for _, opt := range opts {
			opt(l)
		}
		ctx.pushLayout(l)
		contents()
		ctx.popLayout()
	}
}

// Panel draws a titled box around its contents. The background is inserted
// under the contents once their size is known.
//
//	ctx.Panel("Shape 0", gui.Padding(8))(func() {
//	    ctx.SliderFloat("x0", &x, 0, 400)
//	})
func (ctx *Context) Panel(title string, opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		start := ctx.ItemPos()
		l := &Layout{Type: LayoutVertical, Padding: ctx.style.PanelPadding}
		for _, opt := range opts {
			opt(l)
		}
		minW, minH := l.Width, l.Height
		pad := l.Padding

		headerH := float32(0)
		if title != "" {
			headerH = ctx.LineHeight() + 2*pad
		}

		// open the content container inside the padding and header
		outer := ctx.cursor
		ctx.cursor = Vec2{X: start.X + pad, Y: start.Y + headerH + pad}
		inner := &Layout{Type: LayoutVertical, Gap: l.Gap}
		if l.Width > 0 {
			inner.Width = l.Width - 2*pad
		}
		ctx.pushLayout(inner)
		contents()
		n := len(ctx.layoutStack)
		ctx.layoutStack = ctx.layoutStack[:n-1]
		ctx.cursor = outer

		w := max(inner.MaxWidth+2*pad, minW)
		h := max(inner.MaxHeight+2*pad+headerH, minH)

		ctx.DrawList.InsertRect(start.X, start.Y, w, h, ctx.style.PanelColor)
		if title != "" {
			bg := ctx.style.PanelHeaderBgColor
			if bg == 0 {
				bg = ctx.style.ButtonColor
			}
			fg := ctx.style.PanelHeaderTextColor
			if fg == 0 {
				fg = ctx.style.TextColor
			}
			ctx.DrawList.AddRect(start.X, start.Y, w, headerH, bg)
			ctx.AddText(start.X+pad, start.Y+pad, title, fg)
		}
		if ctx.style.BorderSize > 0 {
			ctx.DrawList.AddRectOutline(start.X, start.Y, w, h, ctx.style.PanelBorderColor, ctx.style.BorderSize)
		}
		if ctx.isHovered(Rect{X: start.X, Y: start.Y, W: w, H: h}) {
			ctx.WantCaptureMouse = true
		}
		ctx.AdvanceCursor(Vec2{X: w, Y: h})
	}
}

// Spacing adds empty space along the current axis.
func (ctx *Context) Spacing(px float32) {
	if l := ctx.currentLayout(); l != nil && l.Type == LayoutHorizontal {
		ctx.cursor.X += px
		return
	}
	ctx.cursor.Y += px
}

// Separator draws a horizontal rule across the container.
func (ctx *Context) Separator() {
	pos := ctx.ItemPos()
	w := ctx.AvailableWidth()
	ctx.DrawList.AddRect(pos.X, pos.Y+2, w, 1, ctx.style.SeparatorColor)
	ctx.AdvanceCursor(Vec2{X: w, Y: 5})
}
