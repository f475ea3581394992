// This file is part of Dualscreen.
//
// Dualscreen is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Dualscreen is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Dualscreen.  If not, see <https://www.gnu.org/licenses/>.

package input

// Button is one of the buttons on the controller.
type Button int

// List of valid Button values. The first twelve buttons are the handheld's
// keypad and are in the order of the bits in the keypad mask.
const (
	A Button = iota
	B
	Select
	Start
	Right
	Left
	Up
	Down
	R
	L
	X
	Y

	// buttons that are not part of the keypad
	MicNoise
	SwapScreens
	CloseLid
	TouchJoystick

	NumButtons
)

var buttonNames = [NumButtons]string{
	"A", "B", "Select", "Start", "Right", "Left", "Up", "Down", "R", "L", "X", "Y",
	"Make microphone noise", "Swap screens", "Close lid", "Touch joystick",
}

func (b Button) String() string {
	if b < 0 || b >= NumButtons {
		return "unknown button"
	}
	return buttonNames[b]
}

// Keypad returns true if the button is part of the handheld's keypad.
func (b Button) Keypad() bool {
	return b >= A && b <= Y
}

// Descriptor describes how a controller button is mapped.
type Descriptor struct {
	Button Button

	// name of the button on a standard gamepad
	Gamepad string
}

// Descriptors returns the mapping of gamepad buttons to handheld buttons.
func Descriptors() []Descriptor {
	return []Descriptor{
		{Button: Left, Gamepad: "D-Pad Left"},
		{Button: Up, Gamepad: "D-Pad Up"},
		{Button: Down, Gamepad: "D-Pad Down"},
		{Button: Right, Gamepad: "D-Pad Right"},
		{Button: A, Gamepad: "A"},
		{Button: B, Gamepad: "B"},
		{Button: Select, Gamepad: "Select"},
		{Button: Start, Gamepad: "Start"},
		{Button: R, Gamepad: "R"},
		{Button: L, Gamepad: "L"},
		{Button: X, Gamepad: "X"},
		{Button: Y, Gamepad: "Y"},
		{Button: MicNoise, Gamepad: "L2"},
		{Button: SwapScreens, Gamepad: "R2"},
		{Button: CloseLid, Gamepad: "L3"},
		{Button: TouchJoystick, Gamepad: "R3"},
	}
}
