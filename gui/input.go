package gui

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key identifies a keyboard key the widgets react to.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyBackspace
	KeyEnter
	KeyEscape
	KeyF5
	KeyCount
)

// Held keys repeat after KeyRepeatDelay, then every KeyRepeatInterval.
const (
	KeyRepeatDelay    float32 = 0.4
	KeyRepeatInterval float32 = 0.03
)

// InputState is the input snapshot for one frame. The platform adapter
// fills it; widgets only read it.
type InputState struct {
	MouseX, MouseY float32
	MouseWheelY    float32

	mouseDown     [MouseButtonCount]bool
	mouseClicked  [MouseButtonCount]bool
	mouseReleased [MouseButtonCount]bool

	keyDown     [KeyCount]bool
	keyPressed  [KeyCount]bool
	keyHoldTime [KeyCount]float32
	repeatFired [KeyCount]bool

	// InputChars holds the characters typed this frame.
	InputChars []rune

	ModShift bool
}

func NewInputState() *InputState {
	return &InputState{InputChars: make([]rune, 0, 16)}
}

// Reset clears the single-frame events. Call it before collecting input
// for the next frame; held buttons and keys stay held.
func (s *InputState) Reset() {
	clear(s.mouseClicked[:])
	clear(s.mouseReleased[:])
	clear(s.keyPressed[:])
	clear(s.repeatFired[:])
	s.InputChars = s.InputChars[:0]
	s.MouseWheelY = 0
}

func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX, s.MouseY = x, y
}

// SetMouseButton records a press or release. A press sets the clicked flag
// for this frame, a release sets the released flag.
func (s *InputState) SetMouseButton(b MouseButton, down bool) {
	if b < 0 || b >= MouseButtonCount {
		return
	}
	was := s.mouseDown[b]
	s.mouseDown[b] = down
	if down && !was {
		s.mouseClicked[b] = true
	}
	if !down && was {
		s.mouseReleased[b] = true
	}
}

func (s *InputState) SetKey(k Key, down bool) {
	if k <= KeyNone || k >= KeyCount {
		return
	}
	was := s.keyDown[k]
	s.keyDown[k] = down
	if down && !was {
		s.keyPressed[k] = true
	}
	if down != was {
		s.keyHoldTime[k] = 0
	}
}

// AddMouseWheel accumulates vertical scroll for this frame.
func (s *InputState) AddMouseWheel(dy float32) {
	s.MouseWheelY += dy
}

func (s *InputState) AddInputChar(r rune) {
	s.InputChars = append(s.InputChars, r)
}

// UpdateKeyRepeat advances hold timers by dt seconds and decides which
// held keys repeat this frame.
func (s *InputState) UpdateKeyRepeat(dt float32) {
	for k := range s.keyDown {
		if !s.keyDown[k] {
			continue
		}
		before := s.keyHoldTime[k]
		s.keyHoldTime[k] += dt
		after := s.keyHoldTime[k]
		if after < KeyRepeatDelay {
			continue
		}
		// fire when a new interval boundary was crossed
		n0 := int((before - KeyRepeatDelay) / KeyRepeatInterval)
		n1 := int((after - KeyRepeatDelay) / KeyRepeatInterval)
		if before < KeyRepeatDelay || n1 > n0 {
			s.repeatFired[k] = true
		}
	}
}

func (s *InputState) MouseDown(b MouseButton) bool {
	return b >= 0 && b < MouseButtonCount && s.mouseDown[b]
}

// MouseClicked reports a press that happened this frame.
func (s *InputState) MouseClicked(b MouseButton) bool {
	return b >= 0 && b < MouseButtonCount && s.mouseClicked[b]
}

func (s *InputState) MouseReleased(b MouseButton) bool {
	return b >= 0 && b < MouseButtonCount && s.mouseReleased[b]
}

func (s *InputState) KeyDown(k Key) bool {
	return k >= 0 && k < KeyCount && s.keyDown[k]
}

// KeyPressed reports a key that went down this frame.
func (s *InputState) KeyPressed(k Key) bool {
	return k >= 0 && k < KeyCount && s.keyPressed[k]
}

// KeyRepeated is KeyPressed plus auto-repeat while the key is held.
func (s *InputState) KeyRepeated(k Key) bool {
	if k < 0 || k >= KeyCount {
		return false
	}
	return s.keyPressed[k] || s.repeatFired[k]
}
