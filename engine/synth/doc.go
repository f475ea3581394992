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

// Package synth is a synthetic implementation of the engine.Engine
// interface. It emulates nothing. Instead it produces a deterministic test
// pattern on both screens and a tone on the audio output, both of which
// respond to the input it is given.
//
// The engine is used by the headless and probe modes of the command line
// tool and by the tests of the packages that drive an engine.
//
// The top screen shows scrolling colour bars. The bottom screen shows a
// grid with a marker at the touch position and a bar showing the level of
// the microphone input. Closing the lid blanks both screens.
package synth
