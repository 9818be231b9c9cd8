package gui

import (
	"fmt"
	"strings"
)

// SliderState is kept per slider between frames.
type SliderState struct {
	Dragging bool
}

// SliderFloat draws a horizontal slider and reports whether *value changed.
// The value follows the mouse while dragging, moves one step per wheel
// notch and, when focused, per Left/Right press. With WithStep the value
// snaps to min + k*step. The result is always within [minVal, maxVal].
//
//	if ctx.SliderFloat("fudgeFactor0", &f, 0, 2, gui.WithStep(0.001), gui.WithPrecision(3)) {
//	    scene.Apply(ctrl, float64(f))
//	}
func (ctx *Context) SliderFloat(label string, value *float32, minVal, maxVal float32, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	id := ctx.widgetID(label, o)
	state := ctx.sliders.Get(id, SliderState{})

	labelW := float32(0)
	if label != "" {
		labelW = ctx.MeasureText(label).X + ctx.style.ItemSpacing
	}
	trackW := float32(150)
	if w := GetOpt(o, OptWidth); w > 0 {
		trackW = w
	}
	h := ctx.LineHeight()
	trackH := h / 2
	grabW := float32(12)

	if label != "" {
		ctx.AddText(pos.X, pos.Y, label, ctx.style.TextColor)
	}
	trackX := pos.X + labelW
	r := Rect{X: trackX, Y: pos.Y, W: trackW, H: h}

	step := GetOpt(o, OptStep)
	nudge := step
	if nudge == 0 {
		nudge = (maxVal - minVal) / 100
	}
	snap := func(v float32) float32 {
		if step > 0 {
			v = minVal + float32(int((v-minVal)/step+0.5))*step
		}
		return clampf(v, minVal, maxVal)
	}

	disabled := GetOpt(o, OptDisabled)
	focused := false
	hovered := false
	changed := false
	set := func(v float32) {
		v = snap(v)
		if v != *value {
			*value = v
			changed = true
		}
	}

	if ctx.Input != nil && !disabled {
		focused = ctx.registerFocusable(id, r)
		hovered = ctx.isHovered(r)
		if hovered {
			ctx.WantCaptureMouse = true
			if ctx.Input.MouseClicked(MouseButtonLeft) {
				state.Dragging = true
			}
		}
		if state.Dragging {
			if ctx.Input.MouseDown(MouseButtonLeft) {
				ratio := clampf((ctx.Input.MouseX-trackX-grabW/2)/(trackW-grabW), 0, 1)
				set(minVal + ratio*(maxVal-minVal))
				ctx.WantCaptureMouse = true
			} else {
				state.Dragging = false
			}
		}
		if hovered && ctx.Input.MouseWheelY != 0 {
			set(*value + ctx.Input.MouseWheelY*nudge)
		}
		if focused {
			if ctx.Input.KeyRepeated(KeyLeft) {
				set(*value - nudge)
			}
			if ctx.Input.KeyRepeated(KeyRight) {
				set(*value + nudge)
			}
			if ctx.Input.KeyPressed(KeyHome) {
				set(minVal)
			}
			if ctx.Input.KeyPressed(KeyEnd) {
				set(maxVal)
			}
		}
	}

	ratio := float32(0)
	if maxVal > minVal {
		ratio = clampf((*value-minVal)/(maxVal-minVal), 0, 1)
	}
	trackY := pos.Y + (h-trackH)/2
	ctx.DrawList.AddRect(trackX, trackY, trackW, trackH, ctx.style.SliderTrackColor)
	if ratio > 0 {
		ctx.DrawList.AddRect(trackX, trackY, ratio*trackW, trackH, ctx.style.SliderFillColor)
	}

	grab := ctx.style.SliderGrabColor
	switch {
	case state.Dragging:
		grab = ctx.style.SliderGrabActive
	case hovered || focused:
		grab = ctx.style.SliderGrabHovered
	}
	grabX := trackX + ratio*(trackW-grabW)
	ctx.DrawList.AddRect(grabX, pos.Y, grabW, h, grab)
	ctx.DrawList.AddRectOutline(grabX, pos.Y, grabW, h, ctx.style.InputBorderColor, 1)
	if focused {
		ctx.drawFocusRing(r)
	}

	text := formatValue(valueFormat(o), *value)
	ctx.AddText(trackX+trackW+ctx.style.ItemSpacing, pos.Y, text, ctx.style.TextColor)

	ctx.AdvanceCursor(Vec2{X: labelW + trackW + ctx.style.ItemSpacing + ctx.MeasureText(text).X, Y: h})
	return changed
}

// formatValue applies format to v, truncating to int for %d verbs.
func formatValue(format string, v float32) string {
	if strings.Contains(format, "%d") {
		return fmt.Sprintf(format, int(v))
	}
	return fmt.Sprintf(format, v)
}
