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

// Package compositor copies the two guest screens into a single output
// buffer according to the resolved layout geometry.
//
// Screens are enlarged by integer replication of pixels. There is never any
// interpolation. The output buffer is cleared to black before the screens
// are copied so that the gutter of the hybrid layouts is always black.
//
// A small cursor can be drawn over the touch screen after the screens have
// been copied.
package compositor
