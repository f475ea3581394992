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

// Package engine defines the contract between the adapter and the emulation
// engine. The adapter never looks inside the engine. Everything it needs is
// expressed by the Engine interface.
package engine

import (
	"github.com/jetsetilly/dualscreen/layout"
	"github.com/jetsetilly/dualscreen/snapshot"
)

// MicSamplesPerFrame is the number of microphone samples the engine
// consumes every frame.
const MicSamplesPerFrame = 735

// MaxAudioFrames is the maximum number of stereo frames harvested from the
// engine in one call.
const MaxAudioFrames = 2048

// MainRAMSize is the size of the system RAM.
const MainRAMSize = 4 * 1024 * 1024

// RequiredBIOS lists the files that must be present in the system directory.
var RequiredBIOS = []string{"bios7.bin", "bios9.bin", "firmware.bin"}

// ScreenPixels is the number of pixels in one screen.
const ScreenPixels = layout.ScreenWidth * layout.ScreenHeight

// RenderSettings is passed to the engine when a renderer is chosen.
type RenderSettings struct {
	// the engine should defer rasterisation until Rasterize() is called. only
	// meaningful for engines that implement the DeferredRasterizer interface
	Deferred bool
}

// Engine is the emulation engine.
type Engine interface {
	snapshot.Stater

	// name and version of the engine
	Name() string
	Version() string

	// Init prepares the engine. The system directory contains the BIOS
	// files
	Init(systemDir string) error
	DeInit()
	Reset()
	LoadROM(romPath string, savePath string, directBoot bool) error

	// Configure forwards the tuning options without interpretation
	Configure(tuning map[string]string) error
	SetRenderSettings(s RenderSettings)

	// RunFrame advances the emulation by one frame
	RunFrame()

	// FrontBuffer is the index of the framebuffer pair that is complete and
	// safe to read
	FrontBuffer() int

	// Framebuffer returns the pixels of the screen in the numbered buffer.
	// the slice is ScreenPixels long and must not be modified
	Framebuffer(buffer int, screen layout.Screen) []uint32

	// input
	SetKeys(mask uint32)
	Touch(x, y int)
	ReleaseScreen()
	SetLidClosed(closed bool)

	// MicInputFrame supplies the microphone samples for the next frame. a
	// nil slice means silence
	MicInputFrame(samples []int16)

	// AudioAvailable returns the number of stereo frames waiting to be read
	AudioAvailable() int

	// ReadAudio fills buf with interleaved stereo samples and returns the
	// number of stereo frames read
	ReadAudio(buf []int16) int

	// MainRAM returns the system RAM. the slice is MainRAMSize long
	MainRAM() []byte
}

// DeferredRasterizer is implemented by engines that can rasterise a frame
// separately from running it.
type DeferredRasterizer interface {
	// Rasterize the most recently run frame into the back buffer and then
	// flip the buffers
	Rasterize()
}
