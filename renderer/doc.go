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

// Package renderer selects and drives the rendering backend.
//
// There are two backends. The Direct backend composites the engine's screens
// in software with the compositor package, optionally rasterising each frame
// on a background goroutine. The Accelerated backend composites with the
// gogpu/gg 2D graphics library and supports an internal resolution scale
// factor.
//
// The Selector chooses a backend the first time one is needed and then keeps
// it until Reset() is called, which happens whenever a program is loaded or
// unloaded. If the accelerated backend fails to initialise the Selector
// returns ErrSkipFrame and marks the accelerated backend as unavailable. The
// next call to Resolve() selects the Direct backend. The mark is cleared by
// Reset() so a failed accelerated backend is tried again on the next load.
package renderer
