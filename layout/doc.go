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

// Package layout resolves the geometry of the output framebuffer for each of
// the supported screen layouts.
//
// The handheld has two screens of the same native size. The Resolve()
// function decides where in the output buffer each of those screens is
// drawn, how large the output buffer is, and which screen is eligible to
// show the touch cursor.
//
// The linear layouts place both screens next to each other, either
// vertically or horizontally. The solo layouts show only one screen. The
// hybrid layouts show the primary screen enlarged by the hybrid ratio with
// the other screen as a native size inset in the bottom-right corner. The
// area above the inset is the gutter and is always black.
//
// Resolve() is a pure function. The result is always built in its entirety
// and is never patched once created. The AV information reported to the host
// is derived from the same Data so that the two can never disagree.
package layout
