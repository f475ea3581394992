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
	"image"

	"github.com/jetsetilly/dualscreen/layout"
)

// Colours used by the cursor glyph.
const (
	CursorColour  = 0xffffff
	CursorOutline = 0x000000
)

// the cursor glyph. 'X' is drawn with CursorColour, 'o' with CursorOutline
// and '.' leaves the underlying pixel untouched
var cursorGlyph = [...]string{
	"..oXo..",
	"..oXo..",
	"ooo.ooo",
	"XX.o.XX",
	"ooo.ooo",
	"..oXo..",
	"..oXo..",
}

// CursorSize is the width and height of the cursor glyph.
const CursorSize = len(cursorGlyph)

// DrawCursor draws the cursor glyph centred on the touch screen position x,
// y, which are in native touch screen pixels. The position is clamped to the
// touch screen and the glyph is clipped to the touch screen's region of the
// output buffer.
//
// Nothing is drawn if the touch screen is not displayed.
func DrawCursor(out []uint32, d layout.Data, x, y int) {
	if !d.TouchVisible() || len(out) < d.Pixels() {
		return
	}

	x = min(max(x, 0), layout.ScreenWidth-1)
	y = min(max(y, 0), layout.ScreenHeight-1)

	region := d.TouchRegion()
	f := d.ScreenScale(layout.Bottom)

	// centre of the enlarged pixel
	centre := image.Pt(region.Min.X+x*f+f/2, region.Min.Y+y*f+f/2)
	origin := centre.Sub(image.Pt(CursorSize/2, CursorSize/2))

	for gy, row := range cursorGlyph {
		for gx, g := range row {
			p := origin.Add(image.Pt(gx, gy))
			if !p.In(region) {
				continue
			}

			i := p.Y*d.BufferWidth + p.X
			switch g {
			case 'X':
				out[i] = CursorColour
			case 'o':
				out[i] = CursorOutline
			}
		}
	}
}
