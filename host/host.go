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

package host

import (
	"github.com/jetsetilly/dualscreen/config"
	"github.com/jetsetilly/dualscreen/input"
	"github.com/jetsetilly/dualscreen/layout"
)

// PixelFormat of the buffers passed to the video sink.
type PixelFormat int

// List of valid PixelFormat values. The adapter only ever requests
// XRGB8888.
const (
	XRGB8888 PixelFormat = iota
	RGB565
	XRGB1555
)

func (f PixelFormat) String() string {
	switch f {
	case XRGB8888:
		return "XRGB8888"
	case RGB565:
		return "RGB565"
	case XRGB1555:
		return "XRGB1555"
	}
	return "unknown pixel format"
}

// Video sink. The pixel data is only valid for the duration of the call.
// Stride is measured in bytes.
type Video interface {
	Present(pix []uint32, width int, height int, stride int)
}

// Audio sink. Samples are interleaved stereo and frames is the number of
// stereo frames in the samples slice.
type Audio interface {
	Deliver(samples []int16, frames int)
}

// Environment of the frontend.
type Environment interface {
	config.Source

	// Updated returns true if any variable has changed since the previous
	// call to Updated()
	Updated() bool

	// SetOptions tells the frontend which variables are available. The
	// first value of each option is the default
	SetOptions(opts []config.Option)

	// SetPixelFormat returns false if the format is not supported
	SetPixelFormat(f PixelFormat) bool

	// SetAVInfo informs the frontend of the timing and geometry of the
	// video and audio that will be presented from now on
	SetAVInfo(info layout.AVInfo)

	SetDescriptors(desc []input.Descriptor)

	SystemDir() string
	SaveDir() string
}

// Host is implemented by frontends.
type Host interface {
	Video
	Audio
	Environment
	Input() input.Device
}

// SystemInfo describes the adapter to the frontend.
type SystemInfo struct {
	Name       string
	Version    string
	Extensions []string

	// the frontend must pass a path to the game rather than the game's data
	NeedFullPath bool
}
