package render_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-theft-auto/multishape/render"
)

// fakeContext records every call made on it.
type fakeContext struct {
	canvas        int
	width, height int
	next          uint32

	compileErr error          // returned by CreateProgram when set
	missing    map[string]bool // names whose location is -1

	calls    []string
	programs map[uint32]bool
	buffers  map[uint32][]byte
	floats   map[uint32][]float32
	matrix   [16]float32
	fudge    float32
	released bool
}

func newFakeContext(canvas, w, h int) *fakeContext {
	return &fakeContext{
		canvas:   canvas,
		width:    w,
		height:   h,
		missing:  map[string]bool{},
		programs: map[uint32]bool{},
		buffers:  map[uint32][]byte{},
		floats:   map[uint32][]float32{},
	}
}

func (f *fakeContext) handle() uint32 {
	f.next++
	return f.next
}

func (f *fakeContext) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeContext) Size() (int, int) { return f.width, f.height }

func (f *fakeContext) Resize(w, h int) error {
	if w <= 0 || h <= 0 {
		return render.ErrContextUnavailable
	}
	f.width, f.height = w, h
	f.record("Resize")
	return nil
}

func (f *fakeContext) Begin() { f.record("Begin") }
func (f *fakeContext) End()   { f.record("End") }

func (f *fakeContext) CreateProgram(vs, fs string) (uint32, error) {
	f.record("CreateProgram")
	if f.compileErr != nil {
		return 0, f.compileErr
	}
	if strings.Contains(vs, "syntax error") {
		return 0, errors.New("0:1: syntax error")
	}
	p := f.handle()
	f.programs[p] = true
	return p, nil
}

func (f *fakeContext) DeleteProgram(p uint32) {
	f.record("DeleteProgram")
	delete(f.programs, p)
}

func (f *fakeContext) location(name string) int32 {
	if f.missing[name] {
		return -1
	}
	switch name {
	case render.AttribPosition:
		return 0
	case render.AttribColor:
		return 1
	case render.UniformMatrix:
		return 2
	case render.UniformFudgeFactor:
		return 3
	}
	return -1
}

func (f *fakeContext) AttribLocation(_ uint32, name string) int32  { return f.location(name) }
func (f *fakeContext) UniformLocation(_ uint32, name string) int32 { return f.location(name) }

func (f *fakeContext) CreateVertexArray() uint32 { return f.handle() }
func (f *fakeContext) DeleteVertexArray(uint32)  {}
func (f *fakeContext) CreateBuffer() uint32      { return f.handle() }
func (f *fakeContext) DeleteBuffer(b uint32) {
	delete(f.buffers, b)
	delete(f.floats, b)
}

func (f *fakeContext) BufferFloat32(b uint32, data []float32) {
	f.floats[b] = append([]float32(nil), data...)
}

func (f *fakeContext) BufferUint8(b uint32, data []uint8) {
	f.buffers[b] = append([]byte(nil), data...)
}

func (f *fakeContext) VertexAttrib(_, _ uint32, loc uint32, size int32, _ render.AttribType, normalized bool) {
	f.record("VertexAttrib %d %d %t", loc, size, normalized)
}

func (f *fakeContext) UseProgram(uint32)      { f.record("UseProgram") }
func (f *fakeContext) BindVertexArray(uint32) { f.record("BindVertexArray") }

func (f *fakeContext) UniformMatrix4(loc int32, m *[16]float32) {
	f.record("UniformMatrix4 %d", loc)
	f.matrix = *m
}

func (f *fakeContext) Uniform1f(loc int32, v float32) {
	f.record("Uniform1f %d", loc)
	f.fudge = v
}

func (f *fakeContext) DrawTriangles(first, count int32) {
	f.record("DrawTriangles %d %d", first, count)
}

func (f *fakeContext) Release() { f.released = true }

// count returns how many recorded calls start with prefix.
func (f *fakeContext) count(prefix string) int {
	n := 0
	for _, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

// fakeProvider hands out fakeContexts and keeps them for inspection.
type fakeProvider struct {
	unavailable map[int]bool
	compileErr  map[int]error
	contexts    map[int]*fakeContext
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		unavailable: map[int]bool{},
		compileErr:  map[int]error{},
		contexts:    map[int]*fakeContext{},
	}
}

func (p *fakeProvider) Acquire(canvas, w, h int) (render.Context, error) {
	if p.unavailable[canvas] {
		return nil, fmt.Errorf("no surface: %w", render.ErrContextUnavailable)
	}
	ctx := newFakeContext(canvas, w, h)
	ctx.compileErr = p.compileErr[canvas]
	p.contexts[canvas] = ctx
	return ctx, nil
}
