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

package layout

import (
	"fmt"
	"image"
)

// Native dimensions of each screen.
const (
	ScreenWidth  = 256
	ScreenHeight = 192
)

// BytesPerPixel of the output buffer. Pixels are packed XRGB8888.
const BytesPerPixel = 4

// Limits of the hybrid ratio.
const (
	MinHybridRatio     = 2
	MaxHybridRatio     = 3
	DefaultHybridRatio = MinHybridRatio
)

// Limits of the scale factor.
const (
	MinScale = 1
	MaxScale = 8
)

// Data is the resolved geometry for a layout. It should be treated as
// immutable.
type Data struct {
	// the layout as configured and the layout as displayed once the swap
	// flag has been taken into account. for the solo layouts these are
	// always the same
	Mode      Mode
	Displayed Mode

	HybridRatio int
	Scale       int
	Swapped     bool
	Hybrid      bool

	// size of one screen after scaling, not including the hybrid ratio
	ScreenWidth  int
	ScreenHeight int

	BufferWidth  int
	BufferHeight int

	EnableTop    bool
	EnableBottom bool

	// position of each screen in the output buffer. the offset of a
	// disabled screen is the zero point
	TopOffset    image.Point
	BottomOffset image.Point

	// area of the output buffer covered by each screen. the region of a
	// disabled screen is empty
	TopRegion    image.Rectangle
	BottomRegion image.Rectangle

	// the screen that is the focus of the layout. in hybrid layouts this is
	// the enlarged screen
	Primary Screen

	// the area of the output buffer not covered by either screen. only ever
	// non-empty for the hybrid layouts
	Gutter image.Rectangle
}

// Resolve the geometry for the layout. The ratio is only used for the
// hybrid layouts and is clamped to the range MinHybridRatio to
// MaxHybridRatio. The scale is clamped to the range MinScale to MaxScale.
func Resolve(mode Mode, ratio int, scale int, swapped bool) Data {
	if mode < TopBottom || mode > HybridBottom {
		mode = TopBottom
	}
	ratio = min(max(ratio, MinHybridRatio), MaxHybridRatio)
	scale = min(max(scale, MinScale), MaxScale)

	d := Data{
		Mode:         mode,
		Displayed:    mode,
		HybridRatio:  ratio,
		Scale:        scale,
		Swapped:      swapped,
		Hybrid:       mode.IsHybrid(),
		ScreenWidth:  ScreenWidth * scale,
		ScreenHeight: ScreenHeight * scale,
	}

	if swapped && !mode.IsSolo() {
		d.Displayed = mode.swap()
	}

	w := d.ScreenWidth
	h := d.ScreenHeight

	switch d.Displayed {
	case TopBottom, BottomTop:
		d.BufferWidth = w
		d.BufferHeight = h * 2
		d.EnableTop = true
		d.EnableBottom = true
		first, second := image.Pt(0, 0), image.Pt(0, h)
		if d.Displayed == TopBottom {
			d.TopOffset, d.BottomOffset = first, second
			d.Primary = Top
		} else {
			d.TopOffset, d.BottomOffset = second, first
			d.Primary = Bottom
		}

	case LeftRight, RightLeft:
		d.BufferWidth = w * 2
		d.BufferHeight = h
		d.EnableTop = true
		d.EnableBottom = true
		first, second := image.Pt(0, 0), image.Pt(w, 0)
		if d.Displayed == LeftRight {
			d.TopOffset, d.BottomOffset = first, second
			d.Primary = Top
		} else {
			d.TopOffset, d.BottomOffset = second, first
			d.Primary = Bottom
		}

	case TopOnly:
		d.BufferWidth = w
		d.BufferHeight = h
		d.EnableTop = true
		d.Primary = Top

	case BottomOnly:
		d.BufferWidth = w
		d.BufferHeight = h
		d.EnableBottom = true
		d.Primary = Bottom

	case HybridTop, HybridBottom:
		d.BufferWidth = w*ratio + w
		d.BufferHeight = h * ratio
		d.EnableTop = true
		d.EnableBottom = true

		primary := image.Pt(0, 0)
		inset := image.Pt(w*ratio, h*ratio-h)
		if d.Displayed == HybridTop {
			d.TopOffset, d.BottomOffset = primary, inset
			d.Primary = Top
		} else {
			d.TopOffset, d.BottomOffset = inset, primary
			d.Primary = Bottom
		}

		d.Gutter = image.Rect(w*ratio, 0, d.BufferWidth, inset.Y)
	}

	// in the solo layouts the swap flag selects the primary screen but
	// doesn't change which screen is displayed
	if swapped && mode.IsSolo() {
		d.Primary = d.Primary.Other()
	}

	if d.EnableTop {
		d.TopRegion = image.Rectangle{Min: d.TopOffset, Max: d.TopOffset.Add(d.scaledSize(Top))}
	}
	if d.EnableBottom {
		d.BottomRegion = image.Rectangle{Min: d.BottomOffset, Max: d.BottomOffset.Add(d.scaledSize(Bottom))}
	}

	return d
}

func (d Data) String() string {
	s := fmt.Sprintf("%s %dx%d", d.Displayed, d.BufferWidth, d.BufferHeight)
	if d.Hybrid {
		s = fmt.Sprintf("%s ratio=%d", s, d.HybridRatio)
	}
	if d.Scale > 1 {
		s = fmt.Sprintf("%s scale=%d", s, d.Scale)
	}
	if d.Swapped {
		s = fmt.Sprintf("%s (swapped)", s)
	}
	return s
}

// ScreenScale returns the integer factor by which the screen is enlarged
// when it is copied into the output buffer.
func (d Data) ScreenScale(s Screen) int {
	if d.Hybrid && s == d.Primary {
		return d.HybridRatio * d.Scale
	}
	return d.Scale
}

func (d Data) scaledSize(s Screen) image.Point {
	f := d.ScreenScale(s)
	return image.Pt(ScreenWidth*f, ScreenHeight*f)
}

// Enabled returns true if the screen is drawn in the output buffer.
func (d Data) Enabled(s Screen) bool {
	if s == Top {
		return d.EnableTop
	}
	return d.EnableBottom
}

// Region returns the area of the output buffer covered by the screen.
func (d Data) Region(s Screen) image.Rectangle {
	if s == Top {
		return d.TopRegion
	}
	return d.BottomRegion
}

// Offset returns the position of the screen in the output buffer as an index
// into a slice of pixels.
func (d Data) Offset(s Screen) int {
	p := d.TopOffset
	if s == Bottom {
		p = d.BottomOffset
	}
	return p.Y*d.BufferWidth + p.X
}

// Bounds of the output buffer.
func (d Data) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.BufferWidth, d.BufferHeight)
}

// Pixels is the number of pixels in the output buffer.
func (d Data) Pixels() int {
	return d.BufferWidth * d.BufferHeight
}

// Stride is the length in bytes of one row of the output buffer.
func (d Data) Stride() int {
	return d.BufferWidth * BytesPerPixel
}

// TouchVisible returns true if the touch screen is displayed.
func (d Data) TouchVisible() bool {
	return d.EnableBottom
}

// TouchRegion returns the area of the output buffer covered by the touch
// screen. The region is empty if the touch screen is not displayed.
func (d Data) TouchRegion() image.Rectangle {
	return d.BottomRegion
}
