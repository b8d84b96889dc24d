package nes

// Reference:
//   https://www.nesdev.org/wiki/Standard_controller
//   https://www.nesdev.org/wiki/Controller_reading_code

// Button indexes the 8-bit shift register, LSB first: A, B, Select,
// Start, Up, Down, Left, Right.
type Button int

const (
	ButtonA Button = iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
)

// Joypad is the standard controller's 8-bit parallel-to-serial shift
// register. Writing the strobe bit high latches the current button state;
// writing it low lets $4016 reads stream A,B,Select,Start,Up,Down,Left,Right
// one bit per read, then all-ones once exhausted.
type Joypad struct {
	buttons [8]bool
	strobe  bool
	index   int
}

// NewJoypad creates a Joypad with no buttons held.
func NewJoypad() *Joypad {
	return &Joypad{}
}

// Set replaces the full button state, indexed by Button.
func (j *Joypad) Set(buttons [8]bool) {
	j.buttons = buttons
}

// SetButton sets or clears a single button.
func (j *Joypad) SetButton(b Button, pressed bool) {
	j.buttons[b] = pressed
}

// read services a CPU read of $4016.
func (j *Joypad) read() byte {
	if j.index > 7 {
		return 1
	}
	var v byte
	if j.buttons[j.index] {
		v = 1
	}
	if !j.strobe {
		j.index++
	}
	return v
}

// write services a CPU write of $4016 (the strobe bit).
func (j *Joypad) write(data byte) {
	j.strobe = data&1 == 1
	if j.strobe {
		j.index = 0
	}
}
