package shape_test

import (
	"errors"
	"math"
	"testing"

	"github.com/go-theft-auto/multishape/shape"
)

func newStore(t *testing.T, n int) *shape.Store {
	t.Helper()
	st, err := shape.NewStore(n, shape.DefaultTemplate(), 1)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return st
}

func TestNewStoreDefaults(t *testing.T) {
	st := newStore(t, 4)
	if st.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", st.Len())
	}
	for i := range 4 {
		s, err := st.Shape(i)
		if err != nil {
			t.Fatalf("Shape(%d): %v", i, err)
		}
		if s.Translation != (shape.Vec3{100, 100, 0}) {
			t.Errorf("shape %d translation = %v", i, s.Translation)
		}
		if s.Rotation != (shape.Vec3{}) {
			t.Errorf("shape %d rotation = %v", i, s.Rotation)
		}
		if s.Scale != (shape.Vec3{1, 1, 1}) {
			t.Errorf("shape %d scale = %v", i, s.Scale)
		}
		if s.FudgeFactor != 0.5 {
			t.Errorf("shape %d fudge = %v", i, s.FudgeFactor)
		}
		for c, v := range s.Color[:3] {
			if v < 0 || v >= 1 {
				t.Errorf("shape %d color[%d] = %v, want [0,1)", i, c, v)
			}
		}
		if s.Color[3] != 1 {
			t.Errorf("shape %d alpha = %v, want 1", i, s.Color[3])
		}
	}
}

func TestNewStoreSeedIsDeterministic(t *testing.T) {
	a, _ := shape.NewStore(3, shape.DefaultTemplate(), 42)
	b, _ := shape.NewStore(3, shape.DefaultTemplate(), 42)
	for i := range 3 {
		sa, _ := a.Shape(i)
		sb, _ := b.Shape(i)
		if sa.Color != sb.Color {
			t.Errorf("shape %d colors differ: %v vs %v", i, sa.Color, sb.Color)
		}
	}
}

func TestNewStoreRejectsBadInput(t *testing.T) {
	if _, err := shape.NewStore(0, shape.DefaultTemplate(), 1); !errors.Is(err, shape.ErrInvalidIndex) {
		t.Errorf("count 0: err = %v, want ErrInvalidIndex", err)
	}
	tests := []struct {
		name string
		edit func(*shape.Template)
	}{
		{"zero scale", func(tp *shape.Template) { tp.Scale[1] = 0 }},
		{"infinite scale", func(tp *shape.Template) { tp.Scale[2] = math.Inf(1) }},
		{"nan translation", func(tp *shape.Template) { tp.Translation[0] = math.NaN() }},
		{"infinite rotation", func(tp *shape.Template) { tp.RotationDegrees[1] = math.Inf(-1) }},
		{"nan fudge", func(tp *shape.Template) { tp.FudgeFactor = math.NaN() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl := shape.DefaultTemplate()
			tt.edit(&tmpl)
			if _, err := shape.NewStore(1, tmpl, 1); !errors.Is(err, shape.ErrInvalidSliderValue) {
				t.Errorf("err = %v, want ErrInvalidSliderValue", err)
			}
		})
	}
}

func TestSetTranslationRoundTrip(t *testing.T) {
	st := newStore(t, 4)
	values := []float64{0, -12.5, 640, 1e6}
	for i := range st.Len() {
		for axis := range 3 {
			for _, v := range values {
				if err := st.SetTranslation(i, axis, v); err != nil {
					t.Fatalf("SetTranslation(%d, %d, %v): %v", i, axis, v, err)
				}
				s, _ := st.Shape(i)
				if s.Translation[axis] != v {
					t.Errorf("translation[%d] of %d = %v, want %v", axis, i, s.Translation[axis], v)
				}
			}
		}
	}
}

func TestSetRotationDegreesStoresRadians(t *testing.T) {
	st := newStore(t, 2)
	for _, d := range []float64{0, 1, 45, 90, 180, 325, 360, -30} {
		for axis := range 3 {
			if err := st.SetRotationDegrees(1, axis, d); err != nil {
				t.Fatalf("SetRotationDegrees: %v", err)
			}
			s, _ := st.Shape(1)
			want := d * math.Pi / 180
			if math.Abs(s.Rotation[axis]-want) > 1e-9 {
				t.Errorf("rotation[%d] = %v, want %v", axis, s.Rotation[axis], want)
			}
		}
	}
}

func TestSetFudgeFactorClamps(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"in range", 1.25, 1.25},
		{"lower bound", 0, 0},
		{"upper bound", 2, 2},
		{"above range", 2.5, 2},
		{"below range", -0.3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newStore(t, 1)
			got, err := st.SetFudgeFactor(0, tt.in)
			if err != nil {
				t.Fatalf("SetFudgeFactor: %v", err)
			}
			s, _ := st.Shape(0)
			if got != tt.want || s.FudgeFactor != tt.want {
				t.Errorf("SetFudgeFactor(%v) = %v, stored %v, want %v", tt.in, got, s.FudgeFactor, tt.want)
			}
		})
	}
}

func TestInvalidValuesLeaveStateUntouched(t *testing.T) {
	st := newStore(t, 1)
	before, _ := st.Shape(0)

	if err := st.SetTranslation(0, 0, math.NaN()); !errors.Is(err, shape.ErrInvalidSliderValue) {
		t.Errorf("NaN translation: err = %v", err)
	}
	if err := st.SetRotationDegrees(0, 2, math.Inf(1)); !errors.Is(err, shape.ErrInvalidSliderValue) {
		t.Errorf("Inf rotation: err = %v", err)
	}
	if err := st.SetScale(0, 1, 0); !errors.Is(err, shape.ErrInvalidSliderValue) {
		t.Errorf("zero scale: err = %v", err)
	}
	if _, err := st.SetFudgeFactor(0, math.NaN()); !errors.Is(err, shape.ErrInvalidSliderValue) {
		t.Errorf("NaN fudge: err = %v", err)
	}

	after, _ := st.Shape(0)
	if before != after {
		t.Errorf("shape changed: %+v -> %+v", before, after)
	}
}

func TestInvalidIndex(t *testing.T) {
	st := newStore(t, 4)
	cases := map[string]error{
		"translation index": st.SetTranslation(4, 0, 1),
		"translation axis":  st.SetTranslation(0, 3, 1),
		"rotation negative": st.SetRotationDegrees(-1, 0, 1),
		"scale axis":        st.SetScale(0, -1, 1),
	}
	_, cases["fudge index"] = st.SetFudgeFactor(9, 1)
	_, cases["shape index"] = st.Shape(4)
	for name, err := range cases {
		if !errors.Is(err, shape.ErrInvalidIndex) {
			t.Errorf("%s: err = %v, want ErrInvalidIndex", name, err)
		}
	}
}

func TestShapesAreIndependent(t *testing.T) {
	st := newStore(t, 4)
	if err := st.SetTranslation(2, 0, 333); err != nil {
		t.Fatal(err)
	}
	s0, _ := st.Shape(0)
	s2, _ := st.Shape(2)
	if s0.Translation[0] != 100 {
		t.Errorf("canvas 0 translation x = %v, want 100", s0.Translation[0])
	}
	if s2.Translation[0] != 333 {
		t.Errorf("canvas 2 translation x = %v, want 333", s2.Translation[0])
	}
}
