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
	"image"
	"sync"
)

// Device is implemented by the host.
type Device interface {
	// Poll is called once at the start of every frame, before any of the
	// other functions
	Poll()

	Pressed(b Button) bool

	// absolute position of the pointer in output buffer coordinates
	Pointer() (image.Point, bool)

	// relative motion of the mouse since the previous poll
	Mouse() (image.Point, bool)

	// position of the right analog stick. both axes are in the range -1.0
	// to 1.0
	Analog() (float64, float64)
}

// Levels is an implementation of Device that records the most recent
// values set by the host. It is safe to update Levels from a different
// goroutine to the one calling the Device functions.
type Levels struct {
	crit sync.Mutex

	buttons [NumButtons]bool

	pointer        image.Point
	pointerPressed bool

	// mouse motion is accumulated until the next Poll()
	motion        image.Point
	pendingMotion image.Point
	mousePressed  bool

	analogX float64
	analogY float64
}

// Set the level of the button.
func (l *Levels) Set(b Button, down bool) {
	if b < 0 || b >= NumButtons {
		return
	}
	l.crit.Lock()
	defer l.crit.Unlock()
	l.buttons[b] = down
}

// SetPointer sets the absolute position of the pointer.
func (l *Levels) SetPointer(p image.Point, pressed bool) {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.pointer = p
	l.pointerPressed = pressed
}

// AddMouseMotion adds to the relative motion of the mouse.
func (l *Levels) AddMouseMotion(d image.Point) {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.pendingMotion = l.pendingMotion.Add(d)
}

// SetMouseButton sets the state of the left mouse button.
func (l *Levels) SetMouseButton(pressed bool) {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.mousePressed = pressed
}

// SetAnalog sets the position of the right analog stick.
func (l *Levels) SetAnalog(x, y float64) {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.analogX = min(max(x, -1.0), 1.0)
	l.analogY = min(max(y, -1.0), 1.0)
}

// Poll implements the Device interface.
func (l *Levels) Poll() {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.motion = l.pendingMotion
	l.pendingMotion = image.Point{}
}

// Pressed implements the Device interface.
func (l *Levels) Pressed(b Button) bool {
	if b < 0 || b >= NumButtons {
		return false
	}
	l.crit.Lock()
	defer l.crit.Unlock()
	return l.buttons[b]
}

// Pointer implements the Device interface.
func (l *Levels) Pointer() (image.Point, bool) {
	l.crit.Lock()
	defer l.crit.Unlock()
	return l.pointer, l.pointerPressed
}

// Mouse implements the Device interface.
func (l *Levels) Mouse() (image.Point, bool) {
	l.crit.Lock()
	defer l.crit.Unlock()
	return l.motion, l.mousePressed
}

// Analog implements the Device interface.
func (l *Levels) Analog() (float64, float64) {
	l.crit.Lock()
	defer l.crit.Unlock()
	return l.analogX, l.analogY
}
