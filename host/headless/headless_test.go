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

package headless_test

import (
	"testing"

	"github.com/jetsetilly/dualscreen/config"
	"github.com/jetsetilly/dualscreen/host"
	"github.com/jetsetilly/dualscreen/host/headless"
	"github.com/jetsetilly/dualscreen/test"
)

type sink struct {
	frames int
}

func (s *sink) Deliver(_ []int16, frames int) {
	s.frames += frames
}

func TestHeadless(t *testing.T) {
	var h host.Host = headless.NewHost("sys", "save")
	test.ExpectEquality(t, h.SystemDir(), "sys")
	test.ExpectEquality(t, h.SaveDir(), "save")

	hl := h.(*headless.Host)

	hl.Formats = []host.PixelFormat{host.RGB565}
	test.ExpectEquality(t, h.SetPixelFormat(host.XRGB8888), false)
	hl.Formats = append(hl.Formats, host.XRGB8888)
	test.ExpectEquality(t, h.SetPixelFormat(host.XRGB8888), true)
	test.ExpectEquality(t, hl.PixelFormat(), host.XRGB8888)

	h.SetOptions(config.Options())
	_, ok := h.Variable(config.KeyTouchMode)
	test.ExpectEquality(t, ok, true)

	pix := []uint32{1, 2, 3, 4}
	h.Present(pix, 2, 2, 8)
	pix[0] = 100
	f := hl.LastFrame()
	test.ExpectEquality(t, hl.Presented(), 1)
	test.ExpectEquality(t, f.Pix[0], uint32(1))
	test.ExpectEquality(t, f.Stride, 8)

	s := &sink{}
	hl.AudioSink = s
	h.Deliver([]int16{1, 2, 3, 4, 5, 6}, 3)
	h.Deliver([]int16{1, 2}, 1)
	samples, frames := hl.Audio()
	test.ExpectEquality(t, frames, 4)
	test.ExpectEquality(t, len(samples), 8)
	test.ExpectEquality(t, hl.MaxDelivery(), 3)
	test.ExpectEquality(t, s.frames, 4)
}
