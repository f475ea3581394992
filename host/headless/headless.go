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

// Package headless implements a frontend with no window and no audio
// device. Presented frames and delivered audio are recorded so that they can
// be inspected or written to disk.
package headless

import (
	"slices"

	"github.com/jetsetilly/dualscreen/config"
	"github.com/jetsetilly/dualscreen/host"
	"github.com/jetsetilly/dualscreen/input"
	"github.com/jetsetilly/dualscreen/layout"
)

// Frame is a copy of a presented video frame.
type Frame struct {
	Pix    []uint32
	Width  int
	Height int
	Stride int
}

// Host is a headless implementation of the host.Host interface.
type Host struct {
	*host.Variables

	// input levels can be set by the caller before each frame
	Levels *input.Levels

	// pixel formats that SetPixelFormat() will accept
	Formats []host.PixelFormat

	// audio sink that delivered audio is forwarded to. may be nil
	AudioSink host.Audio

	systemDir string
	saveDir   string

	options     []config.Option
	descriptors []input.Descriptor

	format host.PixelFormat
	avinfo []layout.AVInfo

	presented int
	last      Frame

	audio       []int16
	audioFrames int
	maxDelivery int
}

// NewHost is the preferred method of initialisation for the Host type.
func NewHost(systemDir string, saveDir string) *Host {
	return &Host{
		Variables: host.NewVariables(),
		Levels:    &input.Levels{},
		Formats:   []host.PixelFormat{host.XRGB8888, host.RGB565},
		systemDir: systemDir,
		saveDir:   saveDir,
		format:    host.RGB565,
	}
}

// Present implements the host.Video interface.
func (h *Host) Present(pix []uint32, width int, height int, stride int) {
	h.presented++
	h.last.Width = width
	h.last.Height = height
	h.last.Stride = stride
	h.last.Pix = append(h.last.Pix[:0], pix...)
}

// Deliver implements the host.Audio interface.
func (h *Host) Deliver(samples []int16, frames int) {
	h.audio = append(h.audio, samples[:frames*2]...)
	h.audioFrames += frames
	h.maxDelivery = max(h.maxDelivery, frames)
	if h.AudioSink != nil {
		h.AudioSink.Deliver(samples, frames)
	}
}

// SetOptions implements the host.Environment interface.
func (h *Host) SetOptions(opts []config.Option) {
	h.options = opts
	h.Variables.SetOptions(opts)
}

// SetPixelFormat implements the host.Environment interface.
func (h *Host) SetPixelFormat(f host.PixelFormat) bool {
	if !slices.Contains(h.Formats, f) {
		return false
	}
	h.format = f
	return true
}

// SetAVInfo implements the host.Environment interface.
func (h *Host) SetAVInfo(info layout.AVInfo) {
	h.avinfo = append(h.avinfo, info)
}

// SetDescriptors implements the host.Environment interface.
func (h *Host) SetDescriptors(desc []input.Descriptor) {
	h.descriptors = desc
}

// SystemDir implements the host.Environment interface.
func (h *Host) SystemDir() string {
	return h.systemDir
}

// SaveDir implements the host.Environment interface.
func (h *Host) SaveDir() string {
	return h.saveDir
}

// Input implements the host.Host interface.
func (h *Host) Input() input.Device {
	return h.Levels
}

// PixelFormat returns the most recently accepted pixel format.
func (h *Host) PixelFormat() host.PixelFormat {
	return h.format
}

// Options returns the options passed to SetOptions().
func (h *Host) Options() []config.Option {
	return h.options
}

// Descriptors returns the descriptors passed to SetDescriptors().
func (h *Host) Descriptors() []input.Descriptor {
	return h.descriptors
}

// AVInfo returns every value passed to SetAVInfo(), oldest first.
func (h *Host) AVInfo() []layout.AVInfo {
	return h.avinfo
}

// Presented returns the number of frames presented.
func (h *Host) Presented() int {
	return h.presented
}

// LastFrame returns a copy of the most recently presented frame.
func (h *Host) LastFrame() Frame {
	return h.last
}

// Audio returns all the audio delivered and the number of stereo frames.
func (h *Host) Audio() ([]int16, int) {
	return h.audio, h.audioFrames
}

// MaxDelivery returns the largest number of frames delivered in a single
// call to Deliver().
func (h *Host) MaxDelivery() int {
	return h.maxDelivery
}
