package shape

import "errors"

var (
	// ErrInvalidIndex is returned when a canvas index or axis is out of range.
	ErrInvalidIndex = errors.New("invalid index")

	// ErrInvalidSliderValue is returned when a value cannot be stored at all
	// (NaN, infinities, a zero scale). Out-of-range fudge factors are clamped
	// instead of rejected.
	ErrInvalidSliderValue = errors.New("invalid slider value")
)
