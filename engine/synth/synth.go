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
	"errors"
	"fmt"
	"hash/crc32"
	"os"

	"github.com/jetsetilly/dualscreen/engine"
	"github.com/jetsetilly/dualscreen/layout"
)

// Version of the synthetic engine.
const Version = "1.0"

// number of stereo frames generated per video frame, with the fractional
// part carried between frames
const audioFramesPerFrame = layout.SampleRate / layout.FPS

// the audio buffer holds this many stereo frames. older frames are dropped
// if the buffer isn't read quickly enough
const audioBufferFrames = 4096

// number of blank frames shown when the game is not booted directly
const bootFrames = 60

// Sentinel errors.
var (
	ErrNotInitialised = errors.New("engine not initialised")
	ErrNoROM          = errors.New("no ROM loaded")
)

// Engine is the synthetic engine.
type Engine struct {
	initialised bool
	loaded      bool

	systemDir  string
	romPath    string
	savePath   string
	directBoot bool

	// checksum of the ROM data. used to vary the test pattern
	seed uint32

	tuning   map[string]string
	settings engine.RenderSettings

	frame uint32

	// number of frames remaining of the boot screen
	boot uint32

	// two pairs of framebuffers. front is the index of the pair that is
	// safe to read
	fb    [2][2][]uint32
	front int

	// a rasterisation is outstanding for the most recent frame
	pendingRaster bool

	keys     uint32
	touchX   int
	touchY   int
	touching bool
	lid      bool

	// peak absolute value of the most recent microphone frame
	micLevel int

	audio      []int16
	audioCarry float64
	phase      float64

	ram []byte
}

// NewEngine is the preferred method of initialisation for the Engine type.
func NewEngine() *Engine {
	e := &Engine{
		tuning: make(map[string]string),
	}
	for b := range e.fb {
		for s := range e.fb[b] {
			e.fb[b][s] = make([]uint32, engine.ScreenPixels)
		}
	}
	return e
}

// Name implements the engine.Engine interface.
func (e *Engine) Name() string {
	return "synth"
}

// Version implements the engine.Engine interface.
func (e *Engine) Version() string {
	return Version
}

// Init implements the engine.Engine interface.
func (e *Engine) Init(systemDir string) error {
	e.systemDir = systemDir
	e.ram = make([]byte, engine.MainRAMSize)
	e.audio = make([]int16, 0, audioBufferFrames*2)
	e.initialised = true
	return nil
}

// DeInit implements the engine.Engine interface.
func (e *Engine) DeInit() {
	e.initialised = false
	e.loaded = false
	e.ram = nil
	e.audio = nil
}

// Reset implements the engine.Engine interface.
func (e *Engine) Reset() {
	e.frame = 0
	e.boot = 0
	e.front = 0
	e.pendingRaster = false
	e.keys = 0
	e.touching = false
	e.lid = false
	e.micLevel = 0
	e.audio = e.audio[:0]
	e.audioCarry = 0
	e.phase = 0
	clear(e.ram)
	for b := range e.fb {
		for s := range e.fb[b] {
			clear(e.fb[b][s])
		}
	}
}

// LoadROM implements the engine.Engine interface. The ROM data is only used
// to seed the test pattern. An empty path loads an empty ROM.
func (e *Engine) LoadROM(romPath string, savePath string, directBoot bool) error {
	if !e.initialised {
		return fmt.Errorf("synth: %w", ErrNotInitialised)
	}

	var data []byte
	if romPath != "" {
		var err error
		data, err = os.ReadFile(romPath)
		if err != nil {
			return fmt.Errorf("synth: %w", err)
		}
	}

	e.Reset()
	e.romPath = romPath
	e.savePath = savePath
	e.directBoot = directBoot
	e.seed = crc32.ChecksumIEEE(data)
	e.loaded = true

	if !directBoot {
		e.boot = bootFrames
	}

	return nil
}

// Configure implements the engine.Engine interface.
func (e *Engine) Configure(tuning map[string]string) error {
	for k, v := range tuning {
		e.tuning[k] = v
	}
	return nil
}

// Tuning returns the value of a tuning option.
func (e *Engine) Tuning(key string) (string, bool) {
	v, ok := e.tuning[key]
	return v, ok
}

// SetRenderSettings implements the engine.Engine interface.
func (e *Engine) SetRenderSettings(s engine.RenderSettings) {
	e.settings = s
}

// RunFrame implements the engine.Engine interface.
func (e *Engine) RunFrame() {
	if !e.loaded {
		return
	}

	e.frame++
	e.ram[0] = byte(e.frame)
	e.ram[1] = byte(e.frame >> 8)
	e.ram[2] = byte(e.frame >> 16)
	e.ram[3] = byte(e.frame >> 24)
	e.ram[4] = byte(e.keys)
	e.ram[5] = byte(e.keys >> 8)

	e.generateAudio()

	if e.settings.Deferred {
		e.pendingRaster = true
		return
	}

	e.rasterize()
}

// Rasterize implements the engine.DeferredRasterizer interface.
func (e *Engine) Rasterize() {
	if !e.pendingRaster {
		return
	}
	e.pendingRaster = false
	e.rasterize()
}

// Booting returns true while the boot screen is being shown.
func (e *Engine) Booting() bool {
	return e.boot > 0
}

// Frame returns the number of frames run since the ROM was loaded.
func (e *Engine) Frame() uint32 {
	return e.frame
}

// FrontBuffer implements the engine.Engine interface.
func (e *Engine) FrontBuffer() int {
	return e.front
}

// Framebuffer implements the engine.Engine interface.
func (e *Engine) Framebuffer(buffer int, screen layout.Screen) []uint32 {
	return e.fb[buffer&1][screen&1]
}

// SetKeys implements the engine.Engine interface.
func (e *Engine) SetKeys(mask uint32) {
	e.keys = mask
}

// Keys returns the most recent key mask.
func (e *Engine) Keys() uint32 {
	return e.keys
}

// Touch implements the engine.Engine interface.
func (e *Engine) Touch(x, y int) {
	e.touchX = min(max(x, 0), layout.ScreenWidth-1)
	e.touchY = min(max(y, 0), layout.ScreenHeight-1)
	e.touching = true
}

// ReleaseScreen implements the engine.Engine interface.
func (e *Engine) ReleaseScreen() {
	e.touching = false
}

// SetLidClosed implements the engine.Engine interface.
func (e *Engine) SetLidClosed(closed bool) {
	e.lid = closed
}

// MicInputFrame implements the engine.Engine interface.
func (e *Engine) MicInputFrame(samples []int16) {
	e.micLevel = 0
	for _, s := range samples {
		v := int(s)
		if v < 0 {
			v = -v
		}
		e.micLevel = max(e.micLevel, v)
	}
}

// MicLevel returns the peak level of the most recent microphone frame.
func (e *Engine) MicLevel() int {
	return e.micLevel
}

// MainRAM implements the engine.Engine interface.
func (e *Engine) MainRAM() []byte {
	return e.ram
}
