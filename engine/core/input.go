package core

// Input keeps a live snapshot of keyboard and mouse state for layers
// that poll instead of handling events.
type Input struct {
	keys           map[Key]bool
	buttons        [3]bool
	mouseX, mouseY float64
}

func NewInput() *Input { return &Input{keys: map[Key]bool{}} }

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		in.keys[e.Key] = e.Down
	case EventMouseButton:
		if e.Button >= 0 && int(e.Button) < len(in.buttons) {
			in.buttons[e.Button] = e.Down
		}
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
	}
}

func (in *Input) IsKeyDown(k Key) bool { return in.keys[k] }
func (in *Input) IsMouseDown(b MouseButton) bool {
	return b >= 0 && int(b) < len(in.buttons) && in.buttons[b]
}
func (in *Input) Mouse() (float64, float64) { return in.mouseX, in.mouseY }
