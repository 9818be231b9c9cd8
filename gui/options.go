package gui

import "fmt"

// Option configures one widget call.
type Option func(*options)

type options struct {
	values map[string]any
}

// OptKey is a typed option key with a default value.
//
//	var OptGlow = gui.NewOptKey("glow", false)
//	ctx.Button("Go", gui.WithOpt(OptGlow, true))
type OptKey[T any] struct {
	name string
	def  T
}

func NewOptKey[T any](name string, def T) OptKey[T] {
	return OptKey[T]{name: name, def: def}
}

func (k OptKey[T]) Name() string { return k.name }

// WithOpt sets key to value.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.values == nil {
			o.values = make(map[string]any)
		}
		o.values[key.name] = value
	}
}

// GetOpt returns the value for key, or its default when unset.
func GetOpt[T any](o options, key OptKey[T]) T {
	if v, ok := o.values[key.name].(T); ok {
		return v
	}
	return key.def
}

// HasOpt reports whether key was set explicitly.
func HasOpt[T any](o options, key OptKey[T]) bool {
	_, ok := o.values[key.name]
	return ok
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

var (
	OptID       = NewOptKey("id", "")
	OptDisabled = NewOptKey("disabled", false)
	OptWidth    = NewOptKey[float32]("width", 0)
	OptHeight   = NewOptKey[float32]("height", 0)

	OptFormat    = NewOptKey("format", "")
	OptStep      = NewOptKey[float32]("step", 0)
	OptPrecision = NewOptKey("precision", -1)

	OptFlipY = NewOptKey("flipY", false)
	OptTint  = NewOptKey("tint", ColorWhite)
)

// WithID replaces the label as the source of the widget ID, for widgets
// whose label changes between frames.
func WithID(id string) Option { return WithOpt(OptID, id) }

func WithDisabled(disabled bool) Option { return WithOpt(OptDisabled, disabled) }
func WithWidth(w float32) Option        { return WithOpt(OptWidth, w) }
func WithHeight(h float32) Option       { return WithOpt(OptHeight, h) }

// WithFormat sets a printf verb for the displayed value, e.g. "%.1f°".
func WithFormat(format string) Option { return WithOpt(OptFormat, format) }

// WithStep snaps values to min + k*step.
func WithStep(step float32) Option { return WithOpt(OptStep, step) }

// WithPrecision shows the value with n decimals. WithFormat wins when both
// are set.
func WithPrecision(n int) Option { return WithOpt(OptPrecision, n) }

// FlipY samples images bottom-up, which is how framebuffer textures are
// stored.
func FlipY() Option { return WithOpt(OptFlipY, true) }

func WithTint(c uint32) Option { return WithOpt(OptTint, c) }

// valueFormat picks the printf format for a numeric widget.
func valueFormat(o options) string {
	if f := GetOpt(o, OptFormat); f != "" {
		return f
	}
	if p := GetOpt(o, OptPrecision); p >= 0 {
		return fmt.Sprintf("%%.%df", p)
	}
	return "%.2f"
}
