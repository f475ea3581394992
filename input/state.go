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

import (
	"github.com/jetsetilly/dualscreen/config"
	"github.com/jetsetilly/dualscreen/layout"
)

// JoystickSpeed is the distance in native pixels the cursor moves in one
// frame when the analog stick is fully deflected.
const JoystickSpeed = 4.0

// joystick movement inside the deadzone is ignored
const joystickDeadzone = 0.15

// State is the input state for the current frame.
type State struct {
	// mask of pressed keypad buttons. bit n is set if Button(n) is pressed
	Keys uint32

	NoiseHeld bool
	LidClosed bool

	// the raw level of the swap screens button
	SwapButton bool

	TouchMode config.TouchMode

	// position of the cursor on the touch screen in native pixels and
	// whether the screen is being touched
	TouchX   int
	TouchY   int
	Touching bool

	// the cursor position is tracked at sub-pixel precision for the mouse
	// and joystick touch modes
	fx float64
	fy float64

	// level of the swap screens button in the previous call to Swap()
	prevSwapButton bool

	// latched state of the swap in toggle mode
	toggled bool

	// the most recent result of Swap()
	swapped bool
}

// NewState is the preferred method of initialisation for the State type.
// The cursor starts in the centre of the touch screen.
func NewState() *State {
	s := &State{}
	s.fx = layout.ScreenWidth / 2
	s.fy = layout.ScreenHeight / 2
	s.TouchX = int(s.fx)
	s.TouchY = int(s.fy)
	return s
}

// Update the state from the Device. Update() calls the device's Poll()
// function. The layout data is used to map pointer positions onto the touch
// screen.
func (s *State) Update(dev Device, data layout.Data) {
	dev.Poll()

	s.Keys = 0
	for b := A; b <= Y; b++ {
		if dev.Pressed(b) {
			s.Keys |= 1 << uint(b)
		}
	}

	s.NoiseHeld = dev.Pressed(MicNoise)
	s.LidClosed = dev.Pressed(CloseLid)
	s.SwapButton = dev.Pressed(SwapScreens)

	s.Touching = false

	if !data.TouchVisible() {
		return
	}

	scale := float64(data.ScreenScale(layout.Bottom))

	switch s.TouchMode {
	case config.TouchMouse:
		d, pressed := dev.Mouse()
		s.fx += float64(d.X) / scale
		s.fy += float64(d.Y) / scale
		s.Touching = pressed

	case config.TouchPointer:
		p, pressed := dev.Pointer()
		region := data.TouchRegion()
		if p.In(region) {
			s.fx = float64(p.X-region.Min.X) / scale
			s.fy = float64(p.Y-region.Min.Y) / scale
			s.Touching = pressed
		}

	case config.TouchJoystick:
		x, y := dev.Analog()
		if x*x+y*y > joystickDeadzone*joystickDeadzone {
			s.fx += x * JoystickSpeed
			s.fy += y * JoystickSpeed
		}
		s.Touching = dev.Pressed(TouchJoystick)

	default:
		return
	}

	s.fx = min(max(s.fx, 0), layout.ScreenWidth-1)
	s.fy = min(max(s.fy, 0), layout.ScreenHeight-1)
	s.TouchX = int(s.fx)
	s.TouchY = int(s.fy)
}

// Swap interprets the swap screens button according to the mode. It
// returns the swap state for the layout and whether it is different to the
// previous call.
//
// In Hold mode the swap state is the same as the button level. In Toggle
// mode the swap state is flipped only when the button goes from released to
// pressed.
func (s *State) Swap(mode config.SwapMode) (bool, bool) {
	swapped := s.swapped

	switch mode {
	case config.Hold:
		swapped = s.SwapButton
	case config.Toggle:
		if s.SwapButton && !s.prevSwapButton {
			s.toggled = !s.toggled
		}
		swapped = s.toggled
	}

	s.prevSwapButton = s.SwapButton

	changed := swapped != s.swapped
	s.swapped = swapped

	return swapped, changed
}

// Swapped returns the swap state decided by the most recent call to Swap().
func (s *State) Swapped() bool {
	return s.swapped
}
