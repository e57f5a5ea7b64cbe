package core

import "github.com/hubastard/canvas2d/engine/vector"

type Input struct {
	keys           map[Key]bool
	buttons        map[MouseButton]bool
	mouseX, mouseY float64
	mouseSeen      bool
}

func NewInput() *Input {
	return &Input{keys: map[Key]bool{}, buttons: map[MouseButton]bool{}}
}

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		in.keys[e.Key] = e.Down
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
		in.mouseSeen = true
	case EventMouseButton:
		in.buttons[e.Button] = e.Down
	}
}

func (in *Input) IsKeyDown(k Key) bool            { return in.keys[k] }
func (in *Input) IsButtonDown(b MouseButton) bool { return in.buttons[b] }

// MouseDown reports whether any mouse button is held.
func (in *Input) MouseDown() bool {
	for _, down := range in.buttons {
		if down {
			return true
		}
	}
	return false
}

// MousePosition returns the cursor in canvas pixels. It fails until the
// window has reported at least one cursor position.
func (in *Input) MousePosition() (vector.Vector2, error) {
	if !in.mouseSeen {
		return vector.Vector2{}, &ConfigurationError{What: "no mouse position reported"}
	}
	return vector.V2(float32(in.mouseX), float32(in.mouseY)), nil
}
