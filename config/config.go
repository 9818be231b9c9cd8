// Package config loads the program settings from TOML or YAML.
//
// Every key is optional. Missing keys keep the values from Default, so an
// empty file is a valid configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/go-theft-auto/multishape/counter"
	"github.com/go-theft-auto/multishape/m4"
	"github.com/go-theft-auto/multishape/render"
	"github.com/go-theft-auto/multishape/shape"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Canvases int     `toml:"canvases" yaml:"canvases"`
	Depth    float64 `toml:"depth" yaml:"depth"`

	Window   Window   `toml:"window" yaml:"window"`
	Canvas   Canvas   `toml:"canvas" yaml:"canvas"`
	Defaults Defaults `toml:"defaults" yaml:"defaults"`
	Color    Color    `toml:"color" yaml:"color"`
	Render   Render   `toml:"render" yaml:"render"`
	Counter  Counter  `toml:"counter" yaml:"counter"`
	Log      Log      `toml:"log" yaml:"log"`
	UI       UI       `toml:"ui" yaml:"ui"`
}

type Window struct {
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
	Title  string `toml:"title" yaml:"title"`
}

// Canvas is the pixel size of each offscreen canvas.
type Canvas struct {
	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`
}

// Defaults seed every shape at startup.
type Defaults struct {
	Translation     [3]float64 `toml:"translation" yaml:"translation"`
	RotationDegrees [3]float64 `toml:"rotation_degrees" yaml:"rotation_degrees"`
	Scale           [3]float64 `toml:"scale" yaml:"scale"`
	FudgeFactor     float64    `toml:"fudge_factor" yaml:"fudge_factor"`
}

type Color struct {
	Mode string `toml:"mode" yaml:"mode"` // palette or shape
	Seed uint64 `toml:"seed" yaml:"seed"` // 0 picks one from the clock
}

type Render struct {
	Rebuild        string `toml:"rebuild" yaml:"rebuild"` // source or fudge
	VertexShader   string `toml:"vertex_shader" yaml:"vertex_shader"`
	FragmentShader string `toml:"fragment_shader" yaml:"fragment_shader"`
}

type Counter struct {
	Start         int    `toml:"start" yaml:"start"`
	ConfirmTarget string `toml:"confirm_target" yaml:"confirm_target"`
}

type Log struct {
	Level string `toml:"level" yaml:"level"`
}

type UI struct {
	Style string `toml:"style" yaml:"style"` // default or gta
}

// Default returns the built-in configuration: four 400x300 canvases in a
// 1280x800 window.
func Default() Config {
	t := shape.DefaultTemplate()
	return Config{
		Canvases: 4,
		Depth:    m4.DefaultDepth,
		Window:   Window{Width: 1280, Height: 800, Title: "multishape"},
		Canvas:   Canvas{Width: 400, Height: 300},
		Defaults: Defaults{
			Translation:     t.Translation,
			RotationDegrees: t.RotationDegrees,
			Scale:           t.Scale,
			FudgeFactor:     t.FudgeFactor,
		},
		Color:   Color{Mode: render.ColorPalette.String()},
		Render:  Render{Rebuild: render.RebuildOnSourceChange.String()},
		Counter: Counter{ConfirmTarget: counter.DefaultTarget},
		Log:     Log{Level: "info"},
		UI:      UI{Style: "default"},
	}
}

// Load reads path over Default and validates the result. The format is
// picked from the extension: .toml, .yaml or .yml. Unknown keys are an
// error.
func Load(path string) (Config, error) {
	cfg := Default()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("%w: %s: unknown key %q", ErrInvalid, path, undecoded[0].String())
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// io.EOF means an empty document; the defaults stand.
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %s: unsupported extension %q", ErrInvalid, path, ext)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Write encodes cfg to path in the format given by its extension.
func Write(path string, cfg Config) error {
	var buf bytes.Buffer
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
	case ".yaml", ".yml":
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
	default:
		return fmt.Errorf("%w: %s: unsupported extension %q", ErrInvalid, path, ext)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	switch {
	case c.Canvases < 1:
		return fmt.Errorf("%w: canvases must be at least 1, got %d", ErrInvalid, c.Canvases)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Canvas.Width <= 0 || c.Canvas.Height <= 0:
		return fmt.Errorf("%w: canvas size %dx%d", ErrInvalid, c.Canvas.Width, c.Canvas.Height)
	case !(c.Depth > 0) || math.IsInf(c.Depth, 0):
		return fmt.Errorf("%w: depth must be positive, got %v", ErrInvalid, c.Depth)
	case c.Defaults.FudgeFactor < shape.MinFudgeFactor || c.Defaults.FudgeFactor > shape.MaxFudgeFactor:
		return fmt.Errorf("%w: defaults.fudge_factor %v outside [%v, %v]",
			ErrInvalid, c.Defaults.FudgeFactor, shape.MinFudgeFactor, shape.MaxFudgeFactor)
	case !isFinite(c.Defaults.FudgeFactor):
		return fmt.Errorf("%w: defaults.fudge_factor %v", ErrInvalid, c.Defaults.FudgeFactor)
	case c.Counter.Start < 0:
		return fmt.Errorf("%w: counter.start must not be negative, got %d", ErrInvalid, c.Counter.Start)
	case c.Counter.ConfirmTarget == counter.ShopTarget:
		return fmt.Errorf("%w: counter.confirm_target %q is the shop page", ErrInvalid, c.Counter.ConfirmTarget)
	}
	for axis := range 3 {
		if s := c.Defaults.Scale[axis]; s == 0 || !isFinite(s) {
			return fmt.Errorf("%w: defaults.scale[%d] = %v", ErrInvalid, axis, s)
		}
		if v := c.Defaults.Translation[axis]; !isFinite(v) {
			return fmt.Errorf("%w: defaults.translation[%d] = %v", ErrInvalid, axis, v)
		}
		if v := c.Defaults.RotationDegrees[axis]; !isFinite(v) {
			return fmt.Errorf("%w: defaults.rotation_degrees[%d] = %v", ErrInvalid, axis, v)
		}
	}
	if _, err := render.ParseColorMode(c.Color.Mode); err != nil {
		return fmt.Errorf("%w: color.mode: %w", ErrInvalid, err)
	}
	if _, err := render.ParseRebuildPolicy(c.Render.Rebuild); err != nil {
		return fmt.Errorf("%w: render.rebuild: %w", ErrInvalid, err)
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	if c.UI.Style != "" && c.UI.Style != "default" && c.UI.Style != "gta" {
		return fmt.Errorf("%w: ui.style %q", ErrInvalid, c.UI.Style)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Template returns the shape defaults.
func (c Config) Template() shape.Template {
	return shape.Template{
		Translation:     c.Defaults.Translation,
		RotationDegrees: c.Defaults.RotationDegrees,
		Scale:           c.Defaults.Scale,
		FudgeFactor:     c.Defaults.FudgeFactor,
	}
}

// SceneOptions returns the render options, reading shader files if any
// are configured.
func (c Config) SceneOptions() (render.Options, error) {
	mode, err := render.ParseColorMode(c.Color.Mode)
	if err != nil {
		return render.Options{}, err
	}
	policy, err := render.ParseRebuildPolicy(c.Render.Rebuild)
	if err != nil {
		return render.Options{}, err
	}
	src, err := c.Sources()
	if err != nil {
		return render.Options{}, err
	}
	return render.Options{
		Width:     c.Canvas.Width,
		Height:    c.Canvas.Height,
		Depth:     float32(c.Depth),
		ColorMode: mode,
		Rebuild:   policy,
		Sources:   src,
	}, nil
}

// Sources loads the configured shader pair.
func (c Config) Sources() (render.Sources, error) {
	return render.LoadSources(c.Render.VertexShader, c.Render.FragmentShader)
}

// LogLevel parses log.level (debug, info, warn, error).
func (c Config) LogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, err
	}
	return l, nil
}
