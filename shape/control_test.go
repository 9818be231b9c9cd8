package shape_test

import (
	"errors"
	"math"
	"testing"

	"github.com/go-theft-auto/multishape/shape"
)

func TestControlNames(t *testing.T) {
	tests := []struct {
		ctrl shape.Control
		want string
	}{
		{shape.Control{Canvas: 0, Kind: shape.KindFudge}, "fudgeFactor0"},
		{shape.Control{Canvas: 2, Kind: shape.KindTranslate, Axis: 0}, "x2"},
		{shape.Control{Canvas: 1, Kind: shape.KindTranslate, Axis: 2}, "z1"},
		{shape.Control{Canvas: 3, Kind: shape.KindRotate, Axis: 1}, "angleY3"},
		{shape.Control{Canvas: 0, Kind: shape.KindScale, Axis: 2}, "scaleZ0"},
	}
	for _, tt := range tests {
		if got := tt.ctrl.Name(); got != tt.want {
			t.Errorf("%+v.Name() = %q, want %q", tt.ctrl, got, tt.want)
		}
	}
}

func TestControlsOrder(t *testing.T) {
	ctrls := shape.Controls(1)
	if len(ctrls) != 10 {
		t.Fatalf("len = %d, want 10", len(ctrls))
	}
	want := []string{"fudgeFactor1", "x1", "y1", "z1", "angleX1", "angleY1", "angleZ1", "scaleX1", "scaleY1", "scaleZ1"}
	for i, c := range ctrls {
		if c.Name() != want[i] {
			t.Errorf("control %d = %q, want %q", i, c.Name(), want[i])
		}
	}
}

func TestControlRange(t *testing.T) {
	tests := []struct {
		name string
		ctrl shape.Control
		want shape.Range
	}{
		{"x uses width", shape.Control{Kind: shape.KindTranslate, Axis: 0}, shape.Range{Min: 0, Max: 400}},
		{"y uses height", shape.Control{Kind: shape.KindTranslate, Axis: 1}, shape.Range{Min: 0, Max: 300}},
		{"z uses height", shape.Control{Kind: shape.KindTranslate, Axis: 2}, shape.Range{Min: 0, Max: 300}},
		{"angles", shape.Control{Kind: shape.KindRotate, Axis: 1}, shape.Range{Min: 0, Max: 360}},
		{"fudge", shape.Control{Kind: shape.KindFudge}, shape.Range{Min: 0, Max: 2, Step: 0.001, Precision: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ctrl.Range(400, 300); got != tt.want {
				t.Errorf("Range() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestApplyDispatch(t *testing.T) {
	st := newStore(t, 4)

	if _, err := st.Apply(shape.Control{Canvas: 2, Kind: shape.KindTranslate, Axis: 1}, 55); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Apply(shape.Control{Canvas: 2, Kind: shape.KindRotate, Axis: 0}, 90); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Apply(shape.Control{Canvas: 2, Kind: shape.KindScale, Axis: 2}, 3); err != nil {
		t.Fatal(err)
	}
	stored, err := st.Apply(shape.Control{Canvas: 2, Kind: shape.KindFudge}, 2.5)
	if err != nil {
		t.Fatal(err)
	}
	if stored != 2 {
		t.Errorf("fudge stored = %v, want 2", stored)
	}

	s, _ := st.Shape(2)
	if s.Translation[1] != 55 {
		t.Errorf("translation y = %v", s.Translation[1])
	}
	if math.Abs(s.Rotation[0]-math.Pi/2) > 1e-9 {
		t.Errorf("rotation x = %v", s.Rotation[0])
	}
	if s.Scale[2] != 3 {
		t.Errorf("scale z = %v", s.Scale[2])
	}
}

func TestValueReadsSliderUnits(t *testing.T) {
	st := newStore(t, 1)
	ctrl := shape.Control{Kind: shape.KindRotate, Axis: 2}
	if _, err := st.Apply(ctrl, 325); err != nil {
		t.Fatal(err)
	}
	got, err := st.Value(ctrl)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-325) > 1e-9 {
		t.Errorf("Value() = %v, want 325", got)
	}

	if _, err := st.Value(shape.Control{Kind: shape.KindTranslate, Axis: 5}); !errors.Is(err, shape.ErrInvalidIndex) {
		t.Errorf("bad axis: err = %v", err)
	}
	if _, err := st.Apply(shape.Control{Kind: shape.Kind(9)}, 1); !errors.Is(err, shape.ErrInvalidIndex) {
		t.Errorf("bad kind: err = %v", err)
	}
}
