package shape

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
)

// Store holds one Shape per canvas. Indices are stable for the lifetime of
// the Store and no Shape is ever reallocated.
//
// A Store is not safe for concurrent use; it is meant to be driven from the
// UI thread only.
type Store struct {
	shapes []Shape
}

// NewStore creates count shapes from the template. Colors are drawn from a
// generator seeded with seed, so the same seed gives the same colors.
func NewStore(count int, t Template, seed uint64) (*Store, error) {
	if count <= 0 {
		return nil, fmt.Errorf("shape count %d: %w", count, ErrInvalidIndex)
	}
	for axis := range 3 {
		if s := t.Scale[axis]; s == 0 || !isFinite(s) {
			return nil, fmt.Errorf("template scale axis %d = %v: %w", axis, s, ErrInvalidSliderValue)
		}
		if v := t.Translation[axis]; !isFinite(v) {
			return nil, fmt.Errorf("template translation axis %d = %v: %w", axis, v, ErrInvalidSliderValue)
		}
		if v := t.RotationDegrees[axis]; !isFinite(v) {
			return nil, fmt.Errorf("template rotation axis %d = %v: %w", axis, v, ErrInvalidSliderValue)
		}
	}
	if !isFinite(t.FudgeFactor) {
		return nil, fmt.Errorf("template fudge factor %v: %w", t.FudgeFactor, ErrInvalidSliderValue)
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	st := &Store{shapes: make([]Shape, count)}
	for i := range st.shapes {
		st.shapes[i] = newShape(t, rng)
		st.shapes[i].FudgeFactor = clampFudge(st.shapes[i].FudgeFactor)
	}
	return st, nil
}

// Len returns the number of shapes.
func (st *Store) Len() int {
	return len(st.shapes)
}

// Shape returns a copy of the shape at index.
func (st *Store) Shape(index int) (Shape, error) {
	if err := st.checkIndex(index); err != nil {
		return Shape{}, err
	}
	return st.shapes[index], nil
}

// SetTranslation overwrites one translation component. The value is stored
// verbatim, there is no clamping.
func (st *Store) SetTranslation(index, axis int, value float64) error {
	if err := st.checkAxis(index, axis); err != nil {
		return err
	}
	if !isFinite(value) {
		return fmt.Errorf("translation %d/%d = %v: %w", index, axis, value, ErrInvalidSliderValue)
	}
	st.shapes[index].Translation[axis] = value
	return nil
}

// SetRotationDegrees converts degrees to radians and stores one rotation
// component.
func (st *Store) SetRotationDegrees(index, axis int, degrees float64) error {
	if err := st.checkAxis(index, axis); err != nil {
		return err
	}
	if !isFinite(degrees) {
		return fmt.Errorf("rotation %d/%d = %v: %w", index, axis, degrees, ErrInvalidSliderValue)
	}
	st.shapes[index].Rotation[axis] = DegToRad(degrees)
	return nil
}

// SetScale overwrites one scale component. Zero would collapse the shape
// onto a plane and is rejected.
func (st *Store) SetScale(index, axis int, value float64) error {
	if err := st.checkAxis(index, axis); err != nil {
		return err
	}
	if value == 0 || !isFinite(value) {
		return fmt.Errorf("scale %d/%d = %v: %w", index, axis, value, ErrInvalidSliderValue)
	}
	st.shapes[index].Scale[axis] = value
	return nil
}

// SetFudgeFactor stores the fudge factor clamped to
// [MinFudgeFactor, MaxFudgeFactor] and returns the stored value.
func (st *Store) SetFudgeFactor(index int, value float64) (float64, error) {
	if err := st.checkIndex(index); err != nil {
		return 0, err
	}
	if !isFinite(value) {
		return st.shapes[index].FudgeFactor, fmt.Errorf("fudge factor %d = %v: %w", index, value, ErrInvalidSliderValue)
	}
	clamped := clampFudge(value)
	if clamped != value {
		logger().Warn("fudge factor clamped",
			slog.Int("canvas", index),
			slog.Float64("value", value),
			slog.Float64("stored", clamped))
	}
	st.shapes[index].FudgeFactor = clamped
	return clamped, nil
}

func (st *Store) checkIndex(index int) error {
	if index < 0 || index >= len(st.shapes) {
		return fmt.Errorf("canvas %d of %d: %w", index, len(st.shapes), ErrInvalidIndex)
	}
	return nil
}

func (st *Store) checkAxis(index, axis int) error {
	if err := st.checkIndex(index); err != nil {
		return err
	}
	if axis < 0 || axis > 2 {
		return fmt.Errorf("axis %d: %w", axis, ErrInvalidIndex)
	}
	return nil
}

func clampFudge(v float64) float64 {
	if v < MinFudgeFactor {
		return MinFudgeFactor
	}
	if v > MaxFudgeFactor {
		return MaxFudgeFactor
	}
	return v
}
