package ui

// MouseButton indexes the tracked pointer buttons.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle

	mouseButtonCount
)

// KeyCount bounds the virtual-key tables.
const KeyCount = 256

// A few well-known virtual key codes.
const (
	KeyBackspace = 0x08
	KeyTab       = 0x09
	KeyEnter     = 0x0D
	KeyShift     = 0x10
	KeyCtrl      = 0x11
	KeyAlt       = 0x12
	KeyEscape    = 0x1B
	KeySpace     = 0x20
	KeyLeft      = 0x25
	KeyUp        = 0x26
	KeyRight     = 0x27
	KeyDown      = 0x28
	KeyDelete    = 0x2E
)

const maxChars = 32

// InputState holds one frame's aggregated input. Hosts feed raw state
// through the Process* methods between frames; BeginFrame derives the
// pressed/released edges by comparing against the previous frame's
// snapshot.
type InputState struct {
	MouseX, MouseY   int
	MouseDX, MouseDY int

	mouseDown     [mouseButtonCount]bool
	mousePressed  [mouseButtonCount]bool
	mouseReleased [mouseButtonCount]bool

	WheelDelta float32

	keyDown     [KeyCount]bool
	keyPressed  [KeyCount]bool
	keyReleased [KeyCount]bool

	chars     [maxChars]rune
	charCount int
	LastChar  rune

	Ctrl, Shift, Alt bool
}

// newFrame derives edges against prev and clears per-frame
// accumulators. Down state carries over; it only changes through
// Process calls.
func (in *InputState) newFrame(prev *InputState) {
	in.MouseDX = in.MouseX - prev.MouseX
	in.MouseDY = in.MouseY - prev.MouseY

	for i := range in.mouseDown {
		in.mousePressed[i] = in.mouseDown[i] && !prev.mouseDown[i]
		in.mouseReleased[i] = !in.mouseDown[i] && prev.mouseDown[i]
	}
	for i := range in.keyDown {
		in.keyPressed[i] = in.keyDown[i] && !prev.keyDown[i]
		in.keyReleased[i] = !in.keyDown[i] && prev.keyDown[i]
	}

	in.charCount = 0
	in.WheelDelta = 0

	in.Ctrl = in.keyDown[KeyCtrl]
	in.Shift = in.keyDown[KeyShift]
	in.Alt = in.keyDown[KeyAlt]
}

// ===== Host-facing event feeds =====

func (c *Context) ProcessMouseMove(x, y int) {
	c.input.MouseX = x
	c.input.MouseY = y
}

func (c *Context) ProcessMouseButton(b MouseButton, down bool) {
	if b >= 0 && b < mouseButtonCount {
		c.input.mouseDown[b] = down
	}
}

// ProcessWheel accumulates scroll; cleared every BeginFrame.
func (c *Context) ProcessWheel(delta float32) {
	c.input.WheelDelta += delta
}

func (c *Context) ProcessKey(code int, down bool) {
	if code >= 0 && code < KeyCount {
		c.input.keyDown[code] = down
	}
}

func (c *Context) ProcessChar(r rune) {
	if c.input.charCount < maxChars {
		c.input.chars[c.input.charCount] = r
		c.input.charCount++
	}
	c.input.LastChar = r
}

// ===== Queries =====

func (c *Context) MousePos() (int, int)   { return c.input.MouseX, c.input.MouseY }
func (c *Context) MouseDelta() (int, int) { return c.input.MouseDX, c.input.MouseDY }
func (c *Context) Wheel() float32         { return c.input.WheelDelta }

func (c *Context) MouseDown(b MouseButton) bool {
	return b >= 0 && b < mouseButtonCount && c.input.mouseDown[b]
}

func (c *Context) MousePressed(b MouseButton) bool {
	return b >= 0 && b < mouseButtonCount && c.input.mousePressed[b]
}

func (c *Context) MouseReleased(b MouseButton) bool {
	return b >= 0 && b < mouseButtonCount && c.input.mouseReleased[b]
}

func (c *Context) KeyDown(code int) bool {
	return code >= 0 && code < KeyCount && c.input.keyDown[code]
}

func (c *Context) KeyPressed(code int) bool {
	return code >= 0 && code < KeyCount && c.input.keyPressed[code]
}

func (c *Context) KeyReleased(code int) bool {
	return code >= 0 && code < KeyCount && c.input.keyReleased[code]
}

// Chars returns the characters typed this frame, in order. The slice
// aliases internal storage and is valid until the next BeginFrame.
func (c *Context) Chars() []rune {
	return c.input.chars[:c.input.charCount]
}
