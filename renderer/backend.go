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

package renderer

import (
	"github.com/jetsetilly/dualscreen/config"
	"github.com/jetsetilly/dualscreen/engine"
	"github.com/jetsetilly/dualscreen/layout"
)

// Cursor describes the touch cursor for a frame.
type Cursor struct {
	Visible bool

	// position on the touch screen in native pixels
	X int
	Y int
}

// Backend is implemented by the Direct and Accelerated backends.
type Backend interface {
	Kind() config.Backend

	// Init is called once, when the backend is selected
	Init(eng engine.Engine, rs config.RenderSettings) error

	// Reconfigure is called when the render settings change after Init()
	Reconfigure(eng engine.Engine, rs config.RenderSettings) error

	// Render composites the engine's most recent frame. The returned slice
	// is owned by the backend and is only valid until the next call to
	// Render()
	Render(eng engine.Engine, d layout.Data, cur Cursor) ([]uint32, error)

	Close()
}
