package gui

// Sweeper is implemented by stores that drop state no widget asked for
// during the previous frame.
type Sweeper interface {
	Sweep(frame uint64)
}

type stateEntry[T any] struct {
	value     T
	lastFrame uint64
}

// FrameStore keeps typed per-widget state across frames. Entries that are
// not read for a whole frame are removed by Sweep, so a widget that stops
// being drawn loses its state.
//
// A FrameStore belongs to one Context and is not safe for concurrent use.
type FrameStore[T any] struct {
	states map[ID]*stateEntry[T]
	frame  uint64
}

// NewFrameStore returns an empty store registered with ctx, which sweeps
// it at the start of every frame.
func NewFrameStore[T any](ctx *Context) *FrameStore[T] {
	s := &FrameStore[T]{states: make(map[ID]*stateEntry[T])}
	ctx.sweepers = append(ctx.sweepers, s)
	return s
}

// Get returns the state for id, creating it from def on first use. The
// pointer stays valid until the entry is swept.
func (s *FrameStore[T]) Get(id ID, def T) *T {
	e, ok := s.states[id]
	if !ok {
		e = &stateEntry[T]{value: def}
		s.states[id] = e
	}
	e.lastFrame = s.frame
	return &e.value
}

// Lookup returns the state for id without creating or touching it.
func (s *FrameStore[T]) Lookup(id ID) (*T, bool) {
	e, ok := s.states[id]
	if !ok {
		return nil, false
	}
	return &e.value, true
}

// Sweep starts frame and drops entries last used before the previous one.
func (s *FrameStore[T]) Sweep(frame uint64) {
	s.frame = frame
	for id, e := range s.states {
		if e.lastFrame+1 < frame {
			delete(s.states, id)
		}
	}
}

func (s *FrameStore[T]) Len() int { return len(s.states) }
