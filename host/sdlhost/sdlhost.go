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

// Package sdlhost implements a windowed frontend with SDL. Video is drawn
// to a streaming texture that is stretched to fit the window, audio is queued
// to the default audio device and keyboard, mouse and game controller events
// are translated into input levels.
//
// All functions must be called from the main thread.
package sdlhost

import (
	"encoding/binary"
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/dualscreen/config"
	"github.com/jetsetilly/dualscreen/host"
	"github.com/jetsetilly/dualscreen/input"
	"github.com/jetsetilly/dualscreen/layout"
	"github.com/jetsetilly/dualscreen/logger"
)

const logTag = "sdlhost"

// the window is opened at this multiple of the output buffer size
const windowScale = 2

// Host is a windowed implementation of the host.Host interface.
type Host struct {
	*host.Variables

	perm logger.Permission

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	texWidth  int32
	texHeight int32

	audio *audio

	levels      *input.Levels
	controllers map[sdl.JoystickID]*sdl.GameController

	systemDir string
	saveDir   string

	quit bool

	// called when the screenshot key is pressed
	OnScreenshot func()
}

// NewHost is the preferred method of initialisation for the Host type.
func NewHost(perm logger.Permission, systemDir string, saveDir string) (*Host, error) {
	if perm == nil {
		perm = logger.Allow
	}

	h := &Host{
		Variables:   host.NewVariables(),
		perm:        perm,
		levels:      &input.Levels{},
		controllers: make(map[sdl.JoystickID]*sdl.GameController),
		systemDir:   systemDir,
		saveDir:     saveDir,
	}

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_GAMECONTROLLER)
	if err != nil {
		return nil, fmt.Errorf("sdlhost: %w", err)
	}

	h.window, err = sdl.CreateWindow("Dualscreen",
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		layout.ScreenWidth*windowScale, layout.ScreenHeight*2*windowScale,
		uint32(sdl.WINDOW_RESIZABLE))
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdlhost: %w", err)
	}

	h.renderer, err = sdl.CreateRenderer(h.window, -1, uint32(sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC))
	if err != nil {
		h.Destroy()
		return nil, fmt.Errorf("sdlhost: %w", err)
	}

	h.audio, err = newAudio()
	if err != nil {
		// the host is still usable without sound
		logger.Log(h.perm, logTag, err)
	}

	return h, nil
}

// Destroy closes the window and the audio device.
func (h *Host) Destroy() {
	for _, c := range h.controllers {
		c.Close()
	}
	if h.audio != nil {
		h.audio.close()
	}
	if h.texture != nil {
		_ = h.texture.Destroy()
	}
	if h.renderer != nil {
		_ = h.renderer.Destroy()
	}
	if h.window != nil {
		_ = h.window.Destroy()
	}
	sdl.Quit()
}

// Quit returns true if the user has asked to close the window.
func (h *Host) Quit() bool {
	return h.quit
}

// Present implements the host.Video interface.
func (h *Host) Present(pix []uint32, width int, height int, stride int) {
	if err := h.present(pix, width, height, stride); err != nil {
		logger.Log(h.perm, logTag, err)
	}
}

func (h *Host) present(pix []uint32, width int, height int, stride int) error {
	if h.texture == nil || h.texWidth != int32(width) || h.texHeight != int32(height) {
		if h.texture != nil {
			_ = h.texture.Destroy()
		}

		var err error
		h.texture, err = h.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_RGB888), int(sdl.TEXTUREACCESS_STREAMING), int32(width), int32(height))
		if err != nil {
			h.texture = nil
			return fmt.Errorf("sdlhost: %w", err)
		}
		h.texWidth = int32(width)
		h.texHeight = int32(height)

		// mouse events are reported in buffer coordinates once the logical
		// size has been set
		if err := h.renderer.SetLogicalSize(h.texWidth, h.texHeight); err != nil {
			return fmt.Errorf("sdlhost: %w", err)
		}
	}

	dst, pitch, err := h.texture.Lock(nil)
	if err != nil {
		return fmt.Errorf("sdlhost: %w", err)
	}

	words := stride / 4
	for y := range height {
		row := pix[y*words : y*words+width]
		d := dst[y*pitch:]
		for x, p := range row {
			binary.LittleEndian.PutUint32(d[x*4:], p)
		}
	}
	h.texture.Unlock()

	if err := h.renderer.Clear(); err != nil {
		return fmt.Errorf("sdlhost: %w", err)
	}
	if err := h.renderer.Copy(h.texture, nil, nil); err != nil {
		return fmt.Errorf("sdlhost: %w", err)
	}
	h.renderer.Present()

	return nil
}

// Deliver implements the host.Audio interface.
func (h *Host) Deliver(samples []int16, frames int) {
	if h.audio == nil {
		return
	}
	if err := h.audio.queue(samples[:frames*2]); err != nil {
		logger.Log(h.perm, logTag, err)
	}
}

// SetOptions implements the host.Environment interface.
func (h *Host) SetOptions(opts []config.Option) {
	h.Variables.SetOptions(opts)
}

// SetPixelFormat implements the host.Environment interface.
func (h *Host) SetPixelFormat(f host.PixelFormat) bool {
	return f == host.XRGB8888
}

// SetAVInfo implements the host.Environment interface.
func (h *Host) SetAVInfo(info layout.AVInfo) {
	logger.Logf(h.perm, logTag, "geometry %dx%d (aspect %.3f) at %.3fHz", info.Width, info.Height, info.Aspect, info.FPS)
	w, hgt := h.window.GetSize()
	if w < int32(info.Width) || hgt < int32(info.Height) {
		h.window.SetSize(int32(info.Width), int32(info.Height))
	}
}

// SetDescriptors implements the host.Environment interface.
func (h *Host) SetDescriptors(desc []input.Descriptor) {
	for _, d := range desc {
		logger.Logf(h.perm, logTag, "%s: %s", d.Gamepad, d.Button)
	}
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
	return &device{Levels: h.levels, h: h}
}

// device services the SDL event queue when it is polled.
type device struct {
	*input.Levels
	h *Host
}

func (d *device) Poll() {
	d.h.service()
	d.Levels.Poll()
}
