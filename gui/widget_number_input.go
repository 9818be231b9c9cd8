package gui

import "strconv"

type numberInputState struct {
	Editing  bool
	EditText string
}

// InputInt draws an integer field. A click or Enter while focused starts
// editing; digits and Backspace edit the text, Enter or a click elsewhere
// commits it and Escape discards it. Left/Right step the value while
// focused and not editing. Reports whether *value changed.
//
// Text that does not parse leaves *value unchanged.
func (ctx *Context) InputInt(label string, value *int, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	id := ctx.widgetID(label, o)
	state := ctx.numbers.Get(id, numberInputState{})

	w := float32(80)
	if ow := GetOpt(o, OptWidth); ow > 0 {
		w = ow
	}
	h := ctx.LineHeight() + 2*ctx.style.InputPadding

	labelW := float32(0)
	if label != "" {
		labelW = ctx.MeasureText(label).X + ctx.style.ItemSpacing
		ctx.AddText(pos.X, pos.Y+ctx.style.InputPadding, label, ctx.style.TextColor)
	}
	r := Rect{X: pos.X + labelW, Y: pos.Y, W: w, H: h}

	changed := false
	commit := func() {
		if v, err := strconv.Atoi(state.EditText); err == nil && v != *value {
			*value = v
			changed = true
		}
		state.Editing = false
	}

	focused := false
	hovered := false
	in := ctx.Input
	if in != nil && !GetOpt(o, OptDisabled) {
		wasFocused := ctx.focus.focused == id
		focused = ctx.registerFocusable(id, r)
		hovered = ctx.isHovered(r)
		if hovered {
			ctx.WantCaptureMouse = true
		}

		started := false
		if !state.Editing && (ctx.isClicked(id, r) || (wasFocused && in.KeyPressed(KeyEnter))) {
			state.Editing = true
			state.EditText = strconv.Itoa(*value)
			started = true
		}

		if state.Editing {
			ctx.WantCaptureKeyboard = true
			for _, ch := range in.InputChars {
				if ch >= '0' && ch <= '9' {
					state.EditText += string(ch)
				}
			}
			if in.KeyRepeated(KeyBackspace) && state.EditText != "" {
				state.EditText = state.EditText[:len(state.EditText)-1]
			}
			switch {
			case in.KeyPressed(KeyEscape):
				state.Editing = false
			case !started && in.KeyPressed(KeyEnter):
				commit()
			case !hovered && in.MouseClicked(MouseButtonLeft):
				commit()
			case !focused:
				// focus moved away with Tab
				commit()
			}
		} else if focused {
			step := int(GetOpt(o, OptStep))
			if step == 0 {
				step = 1
			}
			if in.KeyRepeated(KeyLeft) {
				*value -= step
				changed = true
			}
			if in.KeyRepeated(KeyRight) {
				*value += step
				changed = true
			}
		}
	}

	bg := ctx.style.InputBgColor
	if state.Editing || hovered || focused {
		bg = ctx.style.InputFocusedBgColor
	}
	ctx.DrawList.AddRect(r.X, r.Y, r.W, r.H, bg)
	ctx.DrawList.AddRectOutline(r.X, r.Y, r.W, r.H, ctx.style.InputBorderColor, 1)

	text := strconv.Itoa(*value)
	if state.Editing {
		text = state.EditText
		if (ctx.FrameCount/30)%2 == 0 {
			text += "_"
		}
	}
	ctx.AddText(r.X+ctx.style.InputPadding, r.Y+ctx.style.InputPadding, text, ctx.style.TextColor)
	if focused {
		ctx.drawFocusRing(r)
	}

	ctx.AdvanceCursor(Vec2{X: labelW + w, Y: h})
	return changed
}
