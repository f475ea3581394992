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

package sdlhost

import (
	"image"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/dualscreen/config"
	"github.com/jetsetilly/dualscreen/input"
	"github.com/jetsetilly/dualscreen/logger"
)

var keyboard = map[sdl.Keycode]input.Button{
	sdl.K_x:      input.A,
	sdl.K_z:      input.B,
	sdl.K_s:      input.X,
	sdl.K_a:      input.Y,
	sdl.K_q:      input.L,
	sdl.K_w:      input.R,
	sdl.K_RSHIFT: input.Select,
	sdl.K_RETURN: input.Start,
	sdl.K_UP:     input.Up,
	sdl.K_DOWN:   input.Down,
	sdl.K_LEFT:   input.Left,
	sdl.K_RIGHT:  input.Right,
	sdl.K_m:      input.MicNoise,
	sdl.K_TAB:    input.SwapScreens,
	sdl.K_l:      input.CloseLid,
}

// function keys cycle through the values of these options
var hotkeys = map[sdl.Keycode]string{
	sdl.K_F1: config.KeyScreenLayout,
	sdl.K_F2: config.KeyHybridRatio,
	sdl.K_F3: config.KeySwapMode,
	sdl.K_F4: config.KeyTouchMode,
	sdl.K_F5: config.KeyThreadedDirect,
}

var controller = map[sdl.GameControllerButton]input.Button{
	sdl.CONTROLLER_BUTTON_A:             input.B,
	sdl.CONTROLLER_BUTTON_B:             input.A,
	sdl.CONTROLLER_BUTTON_X:             input.Y,
	sdl.CONTROLLER_BUTTON_Y:             input.X,
	sdl.CONTROLLER_BUTTON_BACK:          input.Select,
	sdl.CONTROLLER_BUTTON_START:         input.Start,
	sdl.CONTROLLER_BUTTON_DPAD_UP:       input.Up,
	sdl.CONTROLLER_BUTTON_DPAD_DOWN:     input.Down,
	sdl.CONTROLLER_BUTTON_DPAD_LEFT:     input.Left,
	sdl.CONTROLLER_BUTTON_DPAD_RIGHT:    input.Right,
	sdl.CONTROLLER_BUTTON_LEFTSHOULDER:  input.L,
	sdl.CONTROLLER_BUTTON_RIGHTSHOULDER: input.R,
	sdl.CONTROLLER_BUTTON_LEFTSTICK:     input.CloseLid,
	sdl.CONTROLLER_BUTTON_RIGHTSTICK:    input.TouchJoystick,
}

// the triggers are treated as buttons once they pass this value
const triggerThreshold = 16384

// service drains the SDL event queue.
func (h *Host) service() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			h.quit = true

		case *sdl.KeyboardEvent:
			down := ev.Type == sdl.KEYDOWN
			if b, ok := keyboard[ev.Keysym.Sym]; ok {
				h.levels.Set(b, down)
				break
			}
			if !down || ev.Repeat != 0 {
				break
			}
			if key, ok := hotkeys[ev.Keysym.Sym]; ok {
				if err := h.Cycle(key); err != nil {
					logger.Log(h.perm, logTag, err)
				}
				break
			}
			switch ev.Keysym.Sym {
			case sdl.K_ESCAPE:
				h.quit = true
			case sdl.K_F12:
				if h.OnScreenshot != nil {
					h.OnScreenshot()
				}
			}

		case *sdl.MouseMotionEvent:
			h.levels.AddMouseMotion(image.Pt(int(ev.XRel), int(ev.YRel)))
			h.levels.SetPointer(image.Pt(int(ev.X), int(ev.Y)), ev.State&sdl.ButtonLMask() != 0)

		case *sdl.MouseButtonEvent:
			if ev.Button == sdl.BUTTON_LEFT {
				pressed := ev.Type == sdl.MOUSEBUTTONDOWN
				h.levels.SetMouseButton(pressed)
				h.levels.SetPointer(image.Pt(int(ev.X), int(ev.Y)), pressed)
			}

		case *sdl.ControllerDeviceEvent:
			switch ev.Type {
			case sdl.CONTROLLERDEVICEADDED:
				c := sdl.GameControllerOpen(int(ev.Which))
				if c != nil {
					h.controllers[c.Joystick().InstanceID()] = c
					logger.Logf(h.perm, logTag, "controller attached: %s", c.Name())
				}
			case sdl.CONTROLLERDEVICEREMOVED:
				if c, ok := h.controllers[ev.Which]; ok {
					c.Close()
					delete(h.controllers, ev.Which)
				}
			}

		case *sdl.ControllerButtonEvent:
			if b, ok := controller[sdl.GameControllerButton(ev.Button)]; ok {
				h.levels.Set(b, ev.State == sdl.PRESSED)
			}

		case *sdl.ControllerAxisEvent:
			h.axis(ev)
		}
	}
}

func (h *Host) axis(ev *sdl.ControllerAxisEvent) {
	c, ok := h.controllers[ev.Which]
	if !ok {
		return
	}

	switch sdl.GameControllerAxis(ev.Axis) {
	case sdl.CONTROLLER_AXIS_RIGHTX, sdl.CONTROLLER_AXIS_RIGHTY:
		x := c.Axis(sdl.CONTROLLER_AXIS_RIGHTX)
		y := c.Axis(sdl.CONTROLLER_AXIS_RIGHTY)
		h.levels.SetAnalog(float64(x)/32767.0, float64(y)/32767.0)
	case sdl.CONTROLLER_AXIS_TRIGGERLEFT:
		h.levels.Set(input.MicNoise, ev.Value > triggerThreshold)
	case sdl.CONTROLLER_AXIS_TRIGGERRIGHT:
		h.levels.Set(input.SwapScreens, ev.Value > triggerThreshold)
	}
}
