package config_test

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-theft-auto/multishape/config"
	"github.com/go-theft-auto/multishape/render"
	"github.com/go-theft-auto/multishape/shape"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.Canvases != 4 {
		t.Errorf("Canvases = %d, want 4", cfg.Canvases)
	}
	if cfg.Template() != shape.DefaultTemplate() {
		t.Errorf("Template = %+v, want %+v", cfg.Template(), shape.DefaultTemplate())
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "multishape.toml", `
canvases = 2

[canvas]
width = 320
height = 240

[defaults]
translation = [10.0, 20.0, 0.0]
fudge_factor = 1.5

[color]
mode = "shape"
seed = 42

[render]
rebuild = "fudge"

[log]
level = "debug"
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Canvases != 2 || cfg.Canvas.Width != 320 || cfg.Canvas.Height != 240 {
		t.Errorf("canvases=%d size=%dx%d", cfg.Canvases, cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.Defaults.Translation != [3]float64{10, 20, 0} {
		t.Errorf("translation = %v", cfg.Defaults.Translation)
	}
	// untouched keys keep their defaults
	if cfg.Defaults.Scale != [3]float64{1, 1, 1} {
		t.Errorf("scale = %v, want default", cfg.Defaults.Scale)
	}
	if cfg.Window.Title != "multishape" {
		t.Errorf("title = %q, want default", cfg.Window.Title)
	}

	opts, err := cfg.SceneOptions()
	if err != nil {
		t.Fatalf("SceneOptions: %v", err)
	}
	if opts.ColorMode != render.ColorShape || opts.Rebuild != render.RebuildOnFudgeChange {
		t.Errorf("options = %+v", opts)
	}
	if opts.Sources != render.DefaultSources() {
		t.Error("expected built-in shaders")
	}
	if lvl, _ := cfg.LogLevel(); lvl != slog.LevelDebug {
		t.Errorf("log level = %v, want debug", lvl)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "multishape.yaml", `
canvases: 3
defaults:
  rotation_degrees: [0, 45, 90]
  scale: [2, 2, 2]
counter:
  start: 5
  confirm_target: cart
ui:
  style: gta
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Canvases != 3 {
		t.Errorf("canvases = %d, want 3", cfg.Canvases)
	}
	tpl := cfg.Template()
	if tpl.RotationDegrees != (shape.Vec3{0, 45, 90}) || tpl.Scale != (shape.Vec3{2, 2, 2}) {
		t.Errorf("template = %+v", tpl)
	}
	if cfg.Counter.Start != 5 || cfg.Counter.ConfirmTarget != "cart" {
		t.Errorf("counter = %+v", cfg.Counter)
	}
	if cfg.UI.Style != "gta" {
		t.Errorf("style = %q", cfg.UI.Style)
	}
}

func TestLoadEmptyYAML(t *testing.T) {
	cfg, err := config.Load(writeFile(t, "empty.yml", ""))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != config.Default() {
		t.Errorf("empty file changed defaults: %+v", cfg)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name, file, content string
	}{
		{"zero canvases", "c.toml", "canvases = 0"},
		{"fudge out of range", "c.toml", "[defaults]\nfudge_factor = 3.0"},
		{"zero scale", "c.yaml", "defaults:\n  scale: [1, 0, 1]"},
		{"color mode", "c.toml", "[color]\nmode = \"rainbow\""},
		{"rebuild policy", "c.yaml", "render:\n  rebuild: always"},
		{"log level", "c.toml", "[log]\nlevel = \"loud\""},
		{"ui style", "c.yaml", "ui:\n  style: neon"},
		{"negative counter", "c.toml", "[counter]\nstart = -1"},
		{"confirm to shop", "c.yaml", "counter:\n  confirm_target: index.html"},
		{"nan fudge", "c.toml", "[defaults]\nfudge_factor = nan"},
		{"nan translation", "c.toml", "[defaults]\ntranslation = [nan, 100.0, 0.0]"},
		{"infinite rotation", "c.yaml", "defaults:\n  rotation_degrees: [0, .inf, 0]"},
		{"unknown toml key", "c.toml", "canvasses = 4"},
		{"extension", "c.json", "{}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, tt.file, tt.content))
			if !errors.Is(err, config.ErrInvalid) {
				t.Errorf("err = %v, want ErrInvalid", err)
			}
		})
	}

	// unknown YAML keys fail in the decoder
	if _, err := config.Load(writeFile(t, "c.yaml", "canvasses: 4")); err == nil {
		t.Error("unknown yaml key accepted")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, config.ErrInvalid) {
		t.Errorf("missing file reported as invalid: %v", err)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	want := config.Default()
	want.Canvases = 6
	want.Color.Mode = "shape"
	want.Defaults.Translation = [3]float64{1, 2, 3}

	for _, name := range []string{"out.toml", "out.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			if err := config.Write(path, want); err != nil {
				t.Fatalf("Write: %v", err)
			}
			got, err := config.Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if got != want {
				t.Errorf("got %+v\nwant %+v", got, want)
			}
		})
	}
}

func TestSceneOptionsShaderFiles(t *testing.T) {
	dir := t.TempDir()
	vs := filepath.Join(dir, "f.vert")
	if err := os.WriteFile(vs, []byte("custom vertex"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.Render.VertexShader = vs
	opts, err := cfg.SceneOptions()
	if err != nil {
		t.Fatalf("SceneOptions: %v", err)
	}
	if opts.Sources.Vertex != "custom vertex" {
		t.Errorf("vertex = %q", opts.Sources.Vertex)
	}
	if opts.Sources.Fragment != render.DefaultSources().Fragment {
		t.Error("fragment should stay built-in")
	}

	cfg.Render.FragmentShader = filepath.Join(dir, "missing.frag")
	if _, err := cfg.SceneOptions(); err == nil {
		t.Error("missing fragment shader accepted")
	}
}
