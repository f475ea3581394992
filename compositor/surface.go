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
	"image/color"
)

// Surface presents a buffer of XRGB8888 pixels as an image.Image.
type Surface struct {
	Pix    []uint32
	Width  int
	Height int
}

// NewSurface returns a Surface for the pixels. The pixels slice must be at
// least width * height long.
func NewSurface(pix []uint32, width, height int) Surface {
	return Surface{Pix: pix, Width: width, Height: height}
}

// ColorModel implements the image.Image interface.
func (s Surface) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements the image.Image interface.
func (s Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.Width, s.Height)
}

// At implements the image.Image interface.
func (s Surface) At(x, y int) color.Color {
	if !image.Pt(x, y).In(s.Bounds()) {
		return color.RGBA{}
	}
	return xrgb(s.Pix[y*s.Width+x])
}

// RGBA returns a copy of the surface as an *image.RGBA.
func (s Surface) RGBA() *image.RGBA {
	img := image.NewRGBA(s.Bounds())
	for i, p := range s.Pix[:s.Width*s.Height] {
		img.Pix[i*4] = uint8(p >> 16)
		img.Pix[i*4+1] = uint8(p >> 8)
		img.Pix[i*4+2] = uint8(p)
		img.Pix[i*4+3] = 0xff
	}
	return img
}

func xrgb(p uint32) color.RGBA {
	return color.RGBA{R: uint8(p >> 16), G: uint8(p >> 8), B: uint8(p), A: 0xff}
}

// FromRGBA converts non-premultiplied RGBA bytes to XRGB8888 pixels. The
// alpha channel is ignored.
func FromRGBA(out []uint32, rgba []byte) {
	n := min(len(out), len(rgba)/4)
	for i := range n {
		out[i] = uint32(rgba[i*4])<<16 | uint32(rgba[i*4+1])<<8 | uint32(rgba[i*4+2])
	}
}
