/*
Package gui is a small immediate-mode GUI: the UI is rebuilt every frame
and widgets return their interaction results directly.

	renderer, _ := opengl.NewRenderer(1280, 800)
	ui := gui.New(renderer, gui.WithStyle(gui.GTAStyle()))

	for !window.ShouldClose() {
	    ctx := ui.Begin(input, gui.Vec2{X: 1280, Y: 800}, dt)
	    ctx.Panel("Shape 0")(func() {
	        if ctx.SliderFloat("x0", &x, 0, 400) {
	            // x changed
	        }
	    })
	    ui.End()
	}

# Widget state

Widgets are identified by label, or by WithID when the label is not
unique or changes. Per-widget state (slider drags, number field edits)
lives in a FrameStore and is dropped once the widget stops being drawn.

# Focus

Buttons, sliders and number fields take keyboard focus on click or with
Tab and Shift+Tab; Escape drops it. A focused slider moves with Left and
Right, Home and End.
*/
package gui
