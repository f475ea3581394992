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

package synth

import (
	"github.com/jetsetilly/dualscreen/layout"
)

var bars = [...]uint32{
	0xffffff, 0xffff00, 0x00ffff, 0x00ff00, 0xff00ff, 0xff0000, 0x0000ff, 0x000000,
}

const (
	gridColour   = 0x404040
	backColour   = 0x101018
	markerColour = 0xffffff
	micColour    = 0x00c000
)

// rasterize draws the current frame into the back buffer and then flips the
// buffers
func (e *Engine) rasterize() {
	back := e.front ^ 1
	top := e.fb[back][layout.Top]
	bottom := e.fb[back][layout.Bottom]

	if e.boot > 0 {
		e.boot--
	}

	if e.lid || e.boot > 0 {
		clear(top)
		clear(bottom)
		e.front = back
		return
	}

	e.drawTop(top)
	e.drawBottom(bottom)

	e.front = back
}

func (e *Engine) drawTop(fb []uint32) {
	barWidth := layout.ScreenWidth / len(bars)
	shift := int((e.frame + e.seed) % layout.ScreenWidth)

	for y := 0; y < layout.ScreenHeight; y++ {
		for x := 0; x < layout.ScreenWidth; x++ {
			b := ((x + shift) % layout.ScreenWidth) / barWidth
			c := bars[b%len(bars)]

			// pressed keys darken a band at the bottom of the screen
			if y >= layout.ScreenHeight-16 && e.keys&(1<<uint(x*12/layout.ScreenWidth)) != 0 {
				c = (c >> 1) & 0x7f7f7f
			}

			fb[y*layout.ScreenWidth+x] = c
		}
	}
}

func (e *Engine) drawBottom(fb []uint32) {
	for y := 0; y < layout.ScreenHeight; y++ {
		for x := 0; x < layout.ScreenWidth; x++ {
			c := uint32(backColour)
			if x%16 == 0 || y%16 == 0 {
				c = gridColour
			}
			fb[y*layout.ScreenWidth+x] = c
		}
	}

	// microphone level along the left edge
	level := e.micLevel * layout.ScreenHeight / 32768
	for y := layout.ScreenHeight - level; y < layout.ScreenHeight; y++ {
		for x := 0; x < 4; x++ {
			fb[y*layout.ScreenWidth+x] = micColour
		}
	}

	if e.touching {
		for d := -3; d <= 3; d++ {
			e.plot(fb, e.touchX+d, e.touchY, markerColour)
			e.plot(fb, e.touchX, e.touchY+d, markerColour)
		}
	}
}

func (e *Engine) plot(fb []uint32, x, y int, c uint32) {
	if x < 0 || x >= layout.ScreenWidth || y < 0 || y >= layout.ScreenHeight {
		return
	}
	fb[y*layout.ScreenWidth+x] = c
}
