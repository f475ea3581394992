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

package compositor

import (
	"errors"
	"fmt"

	"github.com/jetsetilly/dualscreen/config"
	"github.com/jetsetilly/dualscreen/layout"
)

// Screens is the pixel data for the two guest screens, indexed by
// layout.Screen. Each slice is layout.ScreenWidth * layout.ScreenHeight
// pixels long.
type Screens [2][]uint32

// Sentinel errors returned by Composite().
var (
	ErrOutputSize = errors.New("output buffer too small")
	ErrScreenSize = errors.New("screen has wrong number of pixels")
)

// Composite writes the enabled screens into the output buffer. The output
// buffer must be at least d.Pixels() long.
func Composite(out []uint32, screens Screens, d layout.Data) error {
	if len(out) < d.Pixels() {
		return fmt.Errorf("compositor: %w: %d pixels for a %dx%d layout", ErrOutputSize, len(out), d.BufferWidth, d.BufferHeight)
	}
	out = out[:d.Pixels()]
	clear(out)

	for _, s := range []layout.Screen{layout.Top, layout.Bottom} {
		if !d.Enabled(s) {
			continue
		}
		if len(screens[s]) != layout.ScreenWidth*layout.ScreenHeight {
			return fmt.Errorf("compositor: %w: %s screen", ErrScreenSize, s)
		}
		copyScreen(out, screens[s], d, s)
	}

	return nil
}

// copyScreen copies a single screen into the output buffer, replicating
// each pixel by the screen's scale factor
func copyScreen(out []uint32, src []uint32, d layout.Data, s layout.Screen) {
	f := d.ScreenScale(s)
	region := d.Region(s)

	for sy := 0; sy < layout.ScreenHeight; sy++ {
		row := src[sy*layout.ScreenWidth : (sy+1)*layout.ScreenWidth]

		dy := region.Min.Y + sy*f
		first := out[dy*d.BufferWidth+region.Min.X : dy*d.BufferWidth+region.Max.X]

		if f == 1 {
			copy(first, row)
			continue
		}

		for sx, p := range row {
			o := first[sx*f : sx*f+f]
			for i := range o {
				o[i] = p
			}
		}

		// the remaining rows for this source row are copies of the first
		for r := 1; r < f; r++ {
			y := dy + r
			copy(out[y*d.BufferWidth+region.Min.X:y*d.BufferWidth+region.Max.X], first)
		}
	}
}

// CursorVisible returns true if the cursor should be drawn. The cursor is
// only drawn if the touch mode is active and the touch screen is displayed.
func CursorVisible(mode config.TouchMode, d layout.Data) bool {
	return mode != config.TouchDisabled && d.TouchVisible()
}
