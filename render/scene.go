package render

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-theft-auto/multishape/m4"
	"github.com/go-theft-auto/multishape/shape"
)

// RebuildPolicy decides when a canvas program is recompiled.
type RebuildPolicy uint8

const (
	// RebuildOnSourceChange recompiles only when the shader sources change.
	// Fudge factor moves just re-send the uniform.
	RebuildOnSourceChange RebuildPolicy = iota
	// RebuildOnFudgeChange recompiles, relinks and re-resolves every
	// location on each fudge factor change before drawing.
	RebuildOnFudgeChange
)

func (p RebuildPolicy) String() string {
	switch p {
	case RebuildOnSourceChange:
		return "source"
	case RebuildOnFudgeChange:
		return "fudge"
	default:
		return fmt.Sprintf("RebuildPolicy(%d)", uint8(p))
	}
}

// ParseRebuildPolicy parses "source" or "fudge".
func ParseRebuildPolicy(s string) (RebuildPolicy, error) {
	switch s {
	case "source", "":
		return RebuildOnSourceChange, nil
	case "fudge":
		return RebuildOnFudgeChange, nil
	}
	return 0, fmt.Errorf("unknown rebuild policy %q", s)
}

// Options configures a Scene.
type Options struct {
	Width, Height int // canvas size in pixels
	Depth         float32
	ColorMode     ColorMode
	Rebuild       RebuildPolicy
	Sources       Sources
}

// DefaultOptions returns 400x300 canvases, depth 400, palette colors, the
// built-in shaders and rebuild-on-source-change.
func DefaultOptions() Options {
	return Options{
		Width:   400,
		Height:  300,
		Depth:   m4.DefaultDepth,
		Sources: DefaultSources(),
	}
}

// Scene owns one canvas per shape in the store.
type Scene struct {
	store    *shape.Store
	canvases []*Canvas
	opts     Options
}

// NewScene binds one canvas per shape and draws each once. Canvases that
// fail to bind are logged and skipped; their errors are joined into the
// returned error. The Scene is usable even when the error is non-nil.
func NewScene(store *shape.Store, p ContextProvider, opts Options) (*Scene, error) {
	if opts.Depth == 0 {
		opts.Depth = m4.DefaultDepth
	}
	if opts.Sources == (Sources{}) {
		opts.Sources = DefaultSources()
	}

	sc := &Scene{
		store:    store,
		canvases: make([]*Canvas, store.Len()),
		opts:     opts,
	}

	var errs []error
	for i := range sc.canvases {
		c := &Canvas{index: i}
		sc.canvases[i] = c

		s, _ := store.Shape(i)
		if err := c.Bind(p, opts.Width, opts.Height, opts.Sources, Colors(opts.ColorMode, s.Color)); err != nil {
			logger().Warn("canvas skipped", slog.Int("canvas", i), slog.Any("err", err))
			errs = append(errs, err)
			continue
		}
		if err := c.Draw(s, opts.Depth); err != nil {
			errs = append(errs, err)
		}
	}
	return sc, errors.Join(errs...)
}

// Len returns the number of canvases, bound or not.
func (sc *Scene) Len() int { return len(sc.canvases) }

// Canvas returns the canvas at index, or nil if out of range.
func (sc *Scene) Canvas(index int) *Canvas {
	if index < 0 || index >= len(sc.canvases) {
		return nil
	}
	return sc.canvases[index]
}

// Store returns the shape store backing the scene.
func (sc *Scene) Store() *shape.Store { return sc.store }

// Options returns the scene options.
func (sc *Scene) Options() Options { return sc.opts }

// Apply stores a slider value and redraws that canvas only. The returned
// value is what the store kept (a clamped fudge factor, for instance).
// An unbound canvas still gets its shape updated; it just is not drawn.
func (sc *Scene) Apply(ctrl shape.Control, value float64) (float64, error) {
	stored, err := sc.store.Apply(ctrl, value)
	if err != nil {
		return stored, err
	}

	c := sc.canvases[ctrl.Canvas]
	if !c.Bound() {
		return stored, nil
	}
	var rebuildErr error
	if ctrl.Kind == shape.KindFudge && sc.opts.Rebuild == RebuildOnFudgeChange {
		// relink what is bound; new sources only arrive through SetSources
		rebuildErr = c.Rebuild(c.binding.Sources())
	}
	return stored, errors.Join(rebuildErr, sc.draw(c))
}

// SetSources replaces the shader pair. Canvases whose program was linked
// from different sources are rebuilt and redrawn; a canvas that fails to
// compile keeps its previous program.
func (sc *Scene) SetSources(src Sources) error {
	sc.opts.Sources = src
	var errs []error
	for _, c := range sc.canvases {
		if !c.Bound() || c.binding.Sources() == src {
			continue
		}
		if err := c.Rebuild(src); err != nil {
			errs = append(errs, err)
			continue
		}
		if err := sc.draw(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// SetColorMode re-uploads every canvas color buffer for the new mode and
// redraws.
func (sc *Scene) SetColorMode(mode ColorMode) error {
	if mode == sc.opts.ColorMode {
		return nil
	}
	sc.opts.ColorMode = mode
	var errs []error
	for _, c := range sc.canvases {
		if !c.Bound() {
			continue
		}
		s, _ := sc.store.Shape(c.index)
		c.binding.uploadColors(Colors(mode, s.Color))
		if err := sc.draw(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Resize reallocates one canvas surface and redraws it.
func (sc *Scene) Resize(index, width, height int) error {
	c := sc.Canvas(index)
	if c == nil {
		return fmt.Errorf("canvas %d: %w", index, shape.ErrInvalidIndex)
	}
	if !c.Bound() {
		return fmt.Errorf("canvas %d: %w", index, ErrNotBound)
	}
	if w, h := c.ctx.Size(); w == width && h == height {
		return nil
	}
	if err := c.ctx.Resize(width, height); err != nil {
		return fmt.Errorf("canvas %d: resize: %w", index, err)
	}
	logger().Debug("canvas resized", slog.Int("canvas", index), slog.Int("width", width), slog.Int("height", height))
	return sc.draw(c)
}

// Redraw draws every bound canvas.
func (sc *Scene) Redraw() error {
	var errs []error
	for _, c := range sc.canvases {
		if !c.Bound() {
			continue
		}
		if err := sc.draw(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close releases every canvas. The Scene must not be used afterwards.
func (sc *Scene) Close() {
	for _, c := range sc.canvases {
		c.release()
	}
}

func (sc *Scene) draw(c *Canvas) error {
	s, err := sc.store.Shape(c.index)
	if err != nil {
		return err
	}
	return c.Draw(s, sc.opts.Depth)
}
