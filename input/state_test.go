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

package input_test

import (
	"image"
	"testing"

	"github.com/jetsetilly/dualscreen/config"
	"github.com/jetsetilly/dualscreen/input"
	"github.com/jetsetilly/dualscreen/layout"
	"github.com/jetsetilly/dualscreen/test"
)

// press the swap screens button in the sequence given and return the number
// of times the swap state changed
func sequence(t *testing.T, mode config.SwapMode, levels []bool) int {
	t.Helper()

	var dev input.Levels
	s := input.NewState()
	data := layout.Resolve(layout.TopBottom, 2, 1, false)

	var changes int
	for i, l := range levels {
		dev.Set(input.SwapScreens, l)
		s.Update(&dev, data)

		swapped, changed := s.Swap(mode)
		if changed {
			changes++
		}

		if mode == config.Hold {
			test.ExpectEquality(t, swapped, l, i)
		}
		test.ExpectEquality(t, s.Swapped(), swapped, i)
	}

	return changes
}

func TestToggle(t *testing.T) {
	changes := sequence(t, config.Toggle, []bool{false, true, true, true, false, true})
	test.ExpectEquality(t, changes, 2)
}

func TestHold(t *testing.T) {
	changes := sequence(t, config.Hold, []bool{false, true, true, true, false, true})
	test.ExpectEquality(t, changes, 3)
}

func TestModeChange(t *testing.T) {
	var dev input.Levels
	s := input.NewState()
	data := layout.Resolve(layout.TopBottom, 2, 1, false)

	// holding the button in hold mode swaps the screens
	dev.Set(input.SwapScreens, true)
	s.Update(&dev, data)
	swapped, changed := s.Swap(config.Hold)
	test.ExpectEquality(t, swapped, true)
	test.ExpectEquality(t, changed, true)

	// changing to toggle mode while the button is still held does not count
	// as a new press. the toggle state has never been flipped so the screens
	// are unswapped
	s.Update(&dev, data)
	swapped, changed = s.Swap(config.Toggle)
	test.ExpectEquality(t, swapped, false)
	test.ExpectEquality(t, changed, true)
}

func TestKeypad(t *testing.T) {
	var dev input.Levels
	s := input.NewState()
	data := layout.Resolve(layout.TopBottom, 2, 1, false)

	dev.Set(input.A, true)
	dev.Set(input.Y, true)
	dev.Set(input.MicNoise, true)
	dev.Set(input.CloseLid, true)
	s.Update(&dev, data)

	test.ExpectEquality(t, s.Keys, uint32(1<<0|1<<11))
	test.ExpectEquality(t, s.NoiseHeld, true)
	test.ExpectEquality(t, s.LidClosed, true)

	dev.Set(input.A, false)
	s.Update(&dev, data)
	test.ExpectEquality(t, s.Keys, uint32(1<<11))

	test.ExpectEquality(t, input.X.Keypad(), true)
	test.ExpectEquality(t, input.SwapScreens.Keypad(), false)
	test.ExpectEquality(t, len(input.Descriptors()), int(input.NumButtons))
}

func TestTouchPointer(t *testing.T) {
	var dev input.Levels
	s := input.NewState()
	s.TouchMode = config.TouchPointer

	// the bottom screen is the second screen in the top/bottom layout
	data := layout.Resolve(layout.TopBottom, 2, 1, false)
	dev.SetPointer(image.Pt(10, 192+20), true)
	s.Update(&dev, data)
	test.ExpectEquality(t, s.Touching, true)
	test.ExpectEquality(t, s.TouchX, 10)
	test.ExpectEquality(t, s.TouchY, 20)

	// pointer over the top screen is ignored
	dev.SetPointer(image.Pt(100, 100), true)
	s.Update(&dev, data)
	test.ExpectEquality(t, s.Touching, false)
	test.ExpectEquality(t, s.TouchX, 10)
	test.ExpectEquality(t, s.TouchY, 20)

	// the enlarged bottom screen in the hybrid layout
	data = layout.Resolve(layout.HybridBottom, 2, 1, false)
	dev.SetPointer(image.Pt(100, 50), true)
	s.Update(&dev, data)
	test.ExpectEquality(t, s.Touching, true)
	test.ExpectEquality(t, s.TouchX, 50)
	test.ExpectEquality(t, s.TouchY, 25)

	// no touching when the touch screen is not displayed
	data = layout.Resolve(layout.TopOnly, 2, 1, false)
	dev.SetPointer(image.Pt(1, 1), true)
	s.Update(&dev, data)
	test.ExpectEquality(t, s.Touching, false)
}

func TestTouchMouse(t *testing.T) {
	var dev input.Levels
	s := input.NewState()
	s.TouchMode = config.TouchMouse
	data := layout.Resolve(layout.TopBottom, 2, 1, false)

	dev.AddMouseMotion(image.Pt(10, -10))
	dev.AddMouseMotion(image.Pt(5, 0))
	dev.SetMouseButton(true)
	s.Update(&dev, data)
	test.ExpectEquality(t, s.TouchX, 128+15)
	test.ExpectEquality(t, s.TouchY, 96-10)
	test.ExpectEquality(t, s.Touching, true)

	// motion is consumed by the poll
	s.Update(&dev, data)
	test.ExpectEquality(t, s.TouchX, 128+15)

	// the cursor is clamped to the touch screen
	dev.AddMouseMotion(image.Pt(1000, 1000))
	s.Update(&dev, data)
	test.ExpectEquality(t, s.TouchX, 255)
	test.ExpectEquality(t, s.TouchY, 191)
}

func TestTouchJoystick(t *testing.T) {
	var dev input.Levels
	s := input.NewState()
	s.TouchMode = config.TouchJoystick
	data := layout.Resolve(layout.TopBottom, 2, 1, false)

	dev.SetAnalog(1.0, -1.0)
	s.Update(&dev, data)
	test.ExpectEquality(t, s.TouchX, 128+int(input.JoystickSpeed))
	test.ExpectEquality(t, s.TouchY, 96-int(input.JoystickSpeed))
	test.ExpectEquality(t, s.Touching, false)

	// inside the deadzone
	dev.SetAnalog(0.05, 0.05)
	dev.Set(input.TouchJoystick, true)
	s.Update(&dev, data)
	test.ExpectEquality(t, s.TouchX, 128+int(input.JoystickSpeed))
	test.ExpectEquality(t, s.Touching, true)
}
