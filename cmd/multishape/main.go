// Command multishape shows several independently transformable 3D shapes,
// each on its own canvas with its own sliders, next to a quantity counter
// whose confirm button moves on to the cart page.
//
//	go run ./cmd/multishape -config multishape.toml
//
// F5 reloads the shader files named in the config.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/multishape/backend/opengl"
	"github.com/go-theft-auto/multishape/config"
	"github.com/go-theft-auto/multishape/counter"
	"github.com/go-theft-auto/multishape/gui"
	"github.com/go-theft-auto/multishape/render"
	"github.com/go-theft-auto/multishape/shape"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	opt, err := parseCLIOpts(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if err := run(opt); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(opt cliOpts) error {
	cfg, err := loadConfig(opt)
	if err != nil {
		return err
	}
	if opt.writeConfig != "" {
		return config.Write(opt.writeConfig, cfg)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel(cfg, opt.verbose)}))
	shape.SetLogger(log)
	render.SetLogger(log)
	gui.SetVerbose(opt.verbose)

	style, err := gui.StyleByName(cfg.UI.Style)
	if err != nil {
		return err
	}
	sceneOpts, err := cfg.SceneOptions()
	if err != nil {
		return err
	}
	seed := cfg.Color.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	store, err := shape.NewStore(cfg.Canvases, cfg.Template(), seed)
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	log.Info("opengl", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	renderer, err := opengl.NewRenderer(cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	scene, err := render.NewScene(store, opengl.NewProvider(renderer, log), sceneOpts)
	if err != nil {
		// failed canvases are shown as unavailable; the rest keep working
		log.Warn("some canvases are unavailable", "err", err)
	}
	defer scene.Close()

	r := newRouter(cfg.Counter.ConfirmTarget, log)
	a := newApp(cfg, scene, counter.New(cfg.Counter.Start, cfg.Counter.ConfirmTarget, r, log), r, log)

	input := opengl.NewGLFWInputAdapter(window)
	ui := gui.New(renderer, gui.WithStyle(style))

	last := glfw.GetTime()
	for !window.ShouldClose() {
		glfw.PollEvents()
		now := glfw.GetTime()
		dt := float32(now - last)
		last = now

		w, h := window.GetSize()
		fw, fh := window.GetFramebufferSize()
		ui.Resize(w, h)
		renderer.SetFramebufferSize(fw, fh)
		gl.Viewport(0, 0, int32(fw), int32(fh))
		gl.ClearColor(0.08, 0.08, 0.1, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ctx := ui.Begin(input.Frame(dt), gui.Vec2{X: float32(w), Y: float32(h)}, dt)
		a.frame(ctx)
		if err := ui.End(); err != nil {
			return err
		}
		input.EndFrame()

		window.SwapBuffers()
	}
	return nil
}
