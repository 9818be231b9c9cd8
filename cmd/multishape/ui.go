package main

import (
	"fmt"
	"log/slog"

	"github.com/go-theft-auto/multishape/config"
	"github.com/go-theft-auto/multishape/counter"
	"github.com/go-theft-auto/multishape/gui"
	"github.com/go-theft-auto/multishape/render"
	"github.com/go-theft-auto/multishape/shape"
)

const (
	gridColumns = 2
	sliderWidth = 160
)

// app builds the UI every frame: the shop page shows the canvas grid, the
// sliders of the selected canvas and the quantity counter; the cart page is
// where Confirm leads.
type app struct {
	cfg     config.Config
	scene   *render.Scene
	counter *counter.Counter
	router  *router
	log     *slog.Logger

	selected int
}

func newApp(cfg config.Config, scene *render.Scene, c *counter.Counter, r *router, log *slog.Logger) *app {
	return &app{cfg: cfg, scene: scene, counter: c, router: r, log: log}
}

func (a *app) frame(ctx *gui.Context) {
	if ctx.Input != nil && ctx.Input.KeyPressed(gui.KeyF5) {
		a.reloadShaders()
	}

	ctx.SetCursorPos(12, 12)
	switch a.router.Current() {
	case pageCart:
		a.cartPage(ctx)
	default:
		a.shopPage(ctx)
	}
}

func (a *app) shopPage(ctx *gui.Context) {
	ctx.HStack(gui.Gap(12))(func() {
		a.canvasGrid(ctx)
		ctx.VStack(gui.Gap(12))(func() {
			a.sliderPanel(ctx, a.selected)
			a.counterPanel(ctx)
			a.settingsPanel(ctx)
		})
	})
}

func (a *app) canvasGrid(ctx *gui.Context) {
	ctx.VStack(gui.Gap(8))(func() {
		for row := 0; row*gridColumns < a.scene.Len(); row++ {
			ctx.HStack(gui.Gap(8))(func() {
				for col := range gridColumns {
					if i := row*gridColumns + col; i < a.scene.Len() {
						a.canvasCell(ctx, i)
					}
				}
			})
		}
	})
}

// canvasCell shows canvas i. Clicking it selects it for the slider panel.
func (a *app) canvasCell(ctx *gui.Context, i int) {
	c := a.scene.Canvas(i)
	w, h := a.cfg.Canvas.Width, a.cfg.Canvas.Height

	ctx.PushID(i)
	defer ctx.PopID()
	ctx.VStack(gui.Gap(2))(func() {
		label := fmt.Sprintf("canvas%d", i)
		color := ctx.Style().TextColor
		if i == a.selected {
			color = gui.ColorYellow
		}
		if !c.Bound() {
			label += " (unavailable)"
			color = ctx.Style().TextDisabledColor
		}
		ctx.TextColored(label, color)

		tex, _ := c.Texture()
		if ctx.Image(tex, float32(w), float32(h), gui.FlipY()).Clicked {
			a.selected = i
		}
	})
}

// sliderPanel draws one slider per control of canvas i and routes changes
// through the scene so only that canvas redraws.
func (a *app) sliderPanel(ctx *gui.Context, i int) {
	c := a.scene.Canvas(i)
	if c == nil {
		return
	}
	w, h := c.Size()
	if w == 0 {
		w, h = a.cfg.Canvas.Width, a.cfg.Canvas.Height
	}

	ctx.Panel(fmt.Sprintf("Shape %d", i), gui.Gap(4))(func() {
		for _, ctrl := range shape.Controls(i) {
			rng := ctrl.Range(float64(w), float64(h))
			v, err := a.scene.Store().Value(ctrl)
			if err != nil {
				continue
			}
			f := float32(v)
			opts := []gui.Option{gui.WithID(ctrl.Name()), gui.WithPrecision(rng.Precision), gui.WithWidth(sliderWidth)}
			if rng.Step > 0 {
				opts = append(opts, gui.WithStep(float32(rng.Step)))
			}
			if !ctx.SliderFloat(ctrl.Name(), &f, float32(rng.Min), float32(rng.Max), opts...) {
				continue
			}
			if _, err := a.scene.Apply(ctrl, float64(f)); err != nil {
				a.log.Error("slider update failed", "control", ctrl.Name(), "err", err)
			}
		}
	})
}

func (a *app) counterPanel(ctx *gui.Context) {
	ctx.Panel("Quantity", gui.Gap(6))(func() {
		ctx.HStack(gui.Gap(6))(func() {
			if ctx.Button("-", gui.WithID("buttonDecrement"), gui.WithWidth(28)) {
				a.counter.Decrement()
			}
			v := a.counter.Value()
			if ctx.InputInt("", &v, gui.WithID("counterValue"), gui.WithWidth(60)) {
				a.counter.Set(v)
			}
			if ctx.Button("+", gui.WithID("buttonIncrement"), gui.WithWidth(28)) {
				a.counter.Increment()
			}
		})
		if ctx.Button("Confirm", gui.WithID("buttonConfirmed")) {
			a.counter.Confirm()
		}
	})
}

func (a *app) settingsPanel(ctx *gui.Context) {
	mode := a.scene.Options().ColorMode
	ctx.Panel("Render", gui.Gap(6))(func() {
		if ctx.Button("colors: "+mode.String(), gui.WithID("colorMode")) {
			next := render.ColorShape
			if mode == render.ColorShape {
				next = render.ColorPalette
			}
			if err := a.scene.SetColorMode(next); err != nil {
				a.log.Error("color mode", "mode", next, "err", err)
			}
		}
		ctx.TextColored("rebuild: "+a.scene.Options().Rebuild.String(), ctx.Style().TextDisabledColor)
		ctx.TextColored("F5 reloads shaders", ctx.Style().TextDisabledColor)
	})
}

func (a *app) cartPage(ctx *gui.Context) {
	ctx.Panel("Cart", gui.Gap(8), gui.Width(320))(func() {
		ctx.Text(fmt.Sprintf("%d item(s)", a.counter.Value()))
		ctx.TextColored(a.counter.Target(), ctx.Style().TextDisabledColor)
		if ctx.Button("Back to shop") {
			a.router.Replace(counter.ShopTarget)
		}
	})
}

// reloadShaders rereads the configured shader files and rebuilds the
// canvases whose sources changed.
func (a *app) reloadShaders() {
	src, err := a.cfg.Sources()
	if err != nil {
		a.log.Error("reload shaders", "err", err)
		return
	}
	if err := a.scene.SetSources(src); err != nil {
		a.log.Error("reload shaders", "err", err)
		return
	}
	a.log.Info("shaders reloaded")
}
