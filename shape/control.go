package shape

import "fmt"

// Kind identifies which Shape field a Control drives.
type Kind uint8

const (
	KindTranslate Kind = iota
	KindRotate
	KindScale
	KindFudge
)

func (k Kind) String() string {
	switch k {
	case KindTranslate:
		return "translate"
	case KindRotate:
		return "rotate"
	case KindScale:
		return "scale"
	case KindFudge:
		return "fudge"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Control addresses one slider: a canvas, a field and, for vector fields,
// an axis. Axis is ignored for KindFudge.
type Control struct {
	Canvas int
	Kind   Kind
	Axis   int
}

var axisNames = [3]string{"X", "Y", "Z"}

// Name returns the element name of the slider, e.g. "x2", "angleY0",
// "scaleZ1" or "fudgeFactor3".
func (c Control) Name() string {
	switch c.Kind {
	case KindTranslate:
		if c.Axis >= 0 && c.Axis < 3 {
			return fmt.Sprintf("%c%d", "xyz"[c.Axis], c.Canvas)
		}
	case KindRotate:
		if c.Axis >= 0 && c.Axis < 3 {
			return fmt.Sprintf("angle%s%d", axisNames[c.Axis], c.Canvas)
		}
	case KindScale:
		if c.Axis >= 0 && c.Axis < 3 {
			return fmt.Sprintf("scale%s%d", axisNames[c.Axis], c.Canvas)
		}
	case KindFudge:
		return fmt.Sprintf("fudgeFactor%d", c.Canvas)
	}
	return fmt.Sprintf("%s[%d]%d", c.Kind, c.Axis, c.Canvas)
}

// Range is the slider configuration for a Control.
type Range struct {
	Min, Max  float64
	Step      float64 // 0 means continuous
	Precision int     // digits shown after the decimal point
}

// Range returns the slider range for the control on a canvas of the given
// pixel size. x is bounded by the width, y and z by the height.
func (c Control) Range(width, height float64) Range {
	switch c.Kind {
	case KindTranslate:
		if c.Axis == 0 {
			return Range{Min: 0, Max: width}
		}
		return Range{Min: 0, Max: height}
	case KindRotate:
		return Range{Min: 0, Max: 360}
	case KindScale:
		return Range{Min: 0.1, Max: 4, Step: 0.01, Precision: 2}
	case KindFudge:
		return Range{Min: MinFudgeFactor, Max: MaxFudgeFactor, Step: 0.001, Precision: 3}
	}
	return Range{}
}

// Controls returns the sliders of one canvas in display order: fudge
// factor, translation x/y/z, rotation x/y/z, then scale x/y/z.
func Controls(canvas int) []Control {
	ctrls := make([]Control, 0, 10)
	ctrls = append(ctrls, Control{Canvas: canvas, Kind: KindFudge})
	for _, k := range []Kind{KindTranslate, KindRotate, KindScale} {
		for axis := range 3 {
			ctrls = append(ctrls, Control{Canvas: canvas, Kind: k, Axis: axis})
		}
	}
	return ctrls
}

// Apply routes a slider value to the matching setter and returns the value
// as stored, in slider units (degrees for rotations). It is the single
// update entry point for every slider.
func (st *Store) Apply(c Control, value float64) (float64, error) {
	switch c.Kind {
	case KindTranslate:
		return value, st.SetTranslation(c.Canvas, c.Axis, value)
	case KindRotate:
		return value, st.SetRotationDegrees(c.Canvas, c.Axis, value)
	case KindScale:
		return value, st.SetScale(c.Canvas, c.Axis, value)
	case KindFudge:
		return st.SetFudgeFactor(c.Canvas, value)
	}
	return 0, fmt.Errorf("control kind %s: %w", c.Kind, ErrInvalidIndex)
}

// Value reads the current value of a control in slider units.
func (st *Store) Value(c Control) (float64, error) {
	s, err := st.Shape(c.Canvas)
	if err != nil {
		return 0, err
	}
	if c.Kind != KindFudge && (c.Axis < 0 || c.Axis > 2) {
		return 0, fmt.Errorf("axis %d: %w", c.Axis, ErrInvalidIndex)
	}
	switch c.Kind {
	case KindTranslate:
		return s.Translation[c.Axis], nil
	case KindRotate:
		return RadToDeg(s.Rotation[c.Axis]), nil
	case KindScale:
		return s.Scale[c.Axis], nil
	case KindFudge:
		return s.FudgeFactor, nil
	}
	return 0, fmt.Errorf("control kind %s: %w", c.Kind, ErrInvalidIndex)
}
