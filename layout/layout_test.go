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

package layout_test

import (
	"image"
	"testing"

	"github.com/jetsetilly/dualscreen/layout"
	"github.com/jetsetilly/dualscreen/test"
)

// area sums the number of pixels covered by the rectangles
func area(rects ...image.Rectangle) int {
	var a int
	for _, r := range rects {
		a += r.Dx() * r.Dy()
	}
	return a
}

func TestCoverage(t *testing.T) {
	for _, mode := range layout.Modes() {
		for _, ratio := range []int{2, 3} {
			for _, scale := range []int{1, 2, 8} {
				for _, swapped := range []bool{false, true} {
					d := layout.Resolve(mode, ratio, scale, swapped)
					tag := d.String()

					// regions never overlap
					test.ExpectEquality(t, d.TopRegion.Overlaps(d.BottomRegion), false, tag)

					// every region is inside the buffer
					bounds := d.Bounds()
					test.ExpectEquality(t, d.TopRegion.In(bounds), true, tag)
					test.ExpectEquality(t, d.BottomRegion.In(bounds), true, tag)
					test.ExpectEquality(t, d.Gutter.In(bounds), true, tag)

					// the regions and the gutter cover the buffer exactly
					test.ExpectEquality(t, area(d.TopRegion, d.BottomRegion, d.Gutter), d.Pixels(), tag)
					test.ExpectEquality(t, d.TopRegion.Union(d.BottomRegion).Union(d.Gutter), bounds, tag)

					// the gutter only exists in the hybrid layouts
					test.ExpectEquality(t, d.Gutter.Empty(), !mode.IsHybrid(), tag)

					// disabled screens have no region
					test.ExpectEquality(t, d.TopRegion.Empty(), !d.EnableTop, tag)
					test.ExpectEquality(t, d.BottomRegion.Empty(), !d.EnableBottom, tag)

					test.ExpectEquality(t, d.Stride(), d.BufferWidth*layout.BytesPerPixel, tag)
				}
			}
		}
	}
}

func TestLinear(t *testing.T) {
	d := layout.Resolve(layout.TopBottom, 2, 1, false)
	test.ExpectEquality(t, d.BufferWidth, 256)
	test.ExpectEquality(t, d.BufferHeight, 384)
	test.ExpectEquality(t, d.TopOffset, image.Pt(0, 0))
	test.ExpectEquality(t, d.BottomOffset, image.Pt(0, 192))
	test.ExpectEquality(t, d.Offset(layout.Bottom), 256*192)

	// swapping exchanges the screens
	d = layout.Resolve(layout.TopBottom, 2, 1, true)
	test.ExpectEquality(t, d.Displayed, layout.BottomTop)
	test.ExpectEquality(t, d.TopOffset, image.Pt(0, 192))
	test.ExpectEquality(t, d.BottomOffset, image.Pt(0, 0))

	d = layout.Resolve(layout.RightLeft, 2, 2, false)
	test.ExpectEquality(t, d.BufferWidth, 1024)
	test.ExpectEquality(t, d.BufferHeight, 384)
	test.ExpectEquality(t, d.TopOffset, image.Pt(512, 0))
	test.ExpectEquality(t, d.BottomOffset, image.Pt(0, 0))
	test.ExpectEquality(t, d.Offset(layout.Top), 512)

	d = layout.Resolve(layout.RightLeft, 2, 2, true)
	test.ExpectEquality(t, d.Displayed, layout.LeftRight)
	test.ExpectEquality(t, d.TopOffset, image.Pt(0, 0))
}

func TestSolo(t *testing.T) {
	d := layout.Resolve(layout.TopOnly, 2, 1, false)
	test.ExpectEquality(t, d.BufferWidth, 256)
	test.ExpectEquality(t, d.BufferHeight, 192)
	test.ExpectEquality(t, d.EnableTop, true)
	test.ExpectEquality(t, d.EnableBottom, false)
	test.ExpectEquality(t, d.TouchVisible(), false)
	test.ExpectEquality(t, d.Primary, layout.Top)

	// swapping changes the primary screen but not the displayed screen
	s := layout.Resolve(layout.TopOnly, 2, 1, true)
	test.ExpectEquality(t, s.Displayed, layout.TopOnly)
	test.ExpectEquality(t, s.EnableTop, true)
	test.ExpectEquality(t, s.EnableBottom, false)
	test.ExpectEquality(t, s.TopRegion, d.TopRegion)
	test.ExpectEquality(t, s.Primary, layout.Bottom)

	d = layout.Resolve(layout.BottomOnly, 2, 3, false)
	test.ExpectEquality(t, d.BufferWidth, 768)
	test.ExpectEquality(t, d.BufferHeight, 576)
	test.ExpectEquality(t, d.TouchVisible(), true)
	test.ExpectEquality(t, d.TouchRegion(), image.Rect(0, 0, 768, 576))
}

func TestHybrid(t *testing.T) {
	d := layout.Resolve(layout.HybridTop, 2, 1, false)
	test.ExpectEquality(t, d.BufferWidth, 256*2+256)
	test.ExpectEquality(t, d.BufferHeight, 192*2)
	test.ExpectEquality(t, d.Primary, layout.Top)
	test.ExpectEquality(t, d.TopRegion, image.Rect(0, 0, 512, 384))
	test.ExpectEquality(t, d.BottomRegion, image.Rect(512, 192, 768, 384))
	test.ExpectEquality(t, d.Gutter, image.Rect(512, 0, 768, 192))
	test.ExpectEquality(t, d.ScreenScale(layout.Top), 2)
	test.ExpectEquality(t, d.ScreenScale(layout.Bottom), 1)

	// the primary screen is exactly ratio times the inset in each dimension
	test.ExpectEquality(t, d.TopRegion.Dx(), d.BottomRegion.Dx()*2)
	test.ExpectEquality(t, d.TopRegion.Dy(), d.BottomRegion.Dy()*2)

	// swapping inverts the primary screen
	d = layout.Resolve(layout.HybridTop, 3, 1, true)
	test.ExpectEquality(t, d.Displayed, layout.HybridBottom)
	test.ExpectEquality(t, d.Primary, layout.Bottom)
	test.ExpectEquality(t, d.BottomRegion, image.Rect(0, 0, 768, 576))
	test.ExpectEquality(t, d.TopRegion, image.Rect(768, 384, 1024, 576))

	// the hybrid ratio applies on top of the scale factor
	d = layout.Resolve(layout.HybridBottom, 2, 2, false)
	test.ExpectEquality(t, d.ScreenScale(layout.Bottom), 4)
	test.ExpectEquality(t, d.ScreenScale(layout.Top), 2)
	test.ExpectEquality(t, d.BufferWidth, 512*2+512)
	test.ExpectEquality(t, d.BufferHeight, 384*2)
}

func TestClamping(t *testing.T) {
	d := layout.Resolve(layout.HybridTop, 1, 0, false)
	test.ExpectEquality(t, d.HybridRatio, layout.MinHybridRatio)
	test.ExpectEquality(t, d.Scale, layout.MinScale)

	d = layout.Resolve(layout.HybridTop, 5, 20, false)
	test.ExpectEquality(t, d.HybridRatio, layout.MaxHybridRatio)
	test.ExpectEquality(t, d.Scale, layout.MaxScale)

	d = layout.Resolve(layout.Mode(100), 2, 1, false)
	test.ExpectEquality(t, d.Mode, layout.TopBottom)
}

func TestResolveIsRepeatable(t *testing.T) {
	for _, mode := range layout.Modes() {
		a := layout.Resolve(mode, 3, 2, true)
		b := layout.Resolve(mode, 3, 2, true)
		test.ExpectEquality(t, a, b)
	}
}

func TestAVInfo(t *testing.T) {
	for _, mode := range layout.Modes() {
		d := layout.Resolve(mode, 3, 1, false)
		av := d.AVInfo()
		test.ExpectEquality(t, av.Width, d.BufferWidth)
		test.ExpectEquality(t, av.Height, d.BufferHeight)
		test.ExpectEquality(t, av.MaxWidth, d.BufferWidth)
		test.ExpectEquality(t, av.MaxHeight, d.BufferHeight)
		test.ExpectEquality(t, av.Aspect, float64(d.BufferWidth)/float64(d.BufferHeight))
		test.ExpectEquality(t, av.SampleRate, 32768.0)
	}
}

func TestParseMode(t *testing.T) {
	for _, mode := range layout.Modes() {
		m, err := layout.ParseMode(mode.String())
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, m, mode)
	}

	_, err := layout.ParseMode("Diagonal")
	test.ExpectFailure(t, err)
}
