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

package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/dualscreen/config"
	"github.com/jetsetilly/dualscreen/engine"
	"github.com/jetsetilly/dualscreen/host"
	"github.com/jetsetilly/dualscreen/input"
	"github.com/jetsetilly/dualscreen/layout"
	"github.com/jetsetilly/dualscreen/logger"
	"github.com/jetsetilly/dualscreen/micinput"
	"github.com/jetsetilly/dualscreen/renderer"
	"github.com/jetsetilly/dualscreen/version"
)

const logTag = "adapter"

// Sentinel errors returned by Load().
var (
	ErrMissingBIOS = errors.New("missing required bios/firmware in system directory")
	ErrPixelFormat = errors.New("pixel format not supported by host")
	ErrEngine      = errors.New("engine failure")
	ErrNotLoaded   = errors.New("no game loaded")
)

// Options for the Adapter.
type Options struct {
	// suppress routine log entries
	Quiet bool

	// microphone input. the Noise provider is used if nil
	Mic micinput.Provider

	// replacement for the function that creates the accelerated renderer
	AcceleratedFactory func() renderer.Backend
}

// Adapter connects an engine to a host.
type Adapter struct {
	eng  engine.Engine
	host host.Host
	opts Options

	store    *config.Store
	settings config.Settings
	geometry layout.Data

	input    *input.State
	selector *renderer.Selector
	mic      micinput.Provider

	// audio harvested from the engine
	audio []int16

	loaded   bool
	romPath  string
	savePath string

	// number of frames the engine has been advanced since the game was loaded
	frameNum uint64
}

// NewAdapter is the preferred method of initialisation for the Adapter type.
// The options understood by the adapter and the input descriptors are passed
// to the host immediately.
func NewAdapter(eng engine.Engine, h host.Host, opts Options) *Adapter {
	a := &Adapter{
		eng:   eng,
		host:  h,
		opts:  opts,
		input: input.NewState(),
		audio: make([]int16, engine.MaxAudioFrames*2),
	}

	a.store = config.NewStore(a)
	a.settings = a.store.Settings()
	a.geometry = a.settings.Geometry(false)

	a.selector = renderer.NewSelector(a)
	if opts.AcceleratedFactory != nil {
		a.selector.SetAcceleratedFactory(opts.AcceleratedFactory)
	}

	a.mic = opts.Mic
	if a.mic == nil {
		a.mic = micinput.NewNoise(a)
	}

	h.SetOptions(config.Options())
	h.SetDescriptors(input.Descriptors())

	return a
}

// AllowLogging implements the logger.Permission interface.
func (a *Adapter) AllowLogging() bool {
	return !a.opts.Quiet
}

// FrameNum implements the random.Frames interface.
func (a *Adapter) FrameNum() uint64 {
	return a.frameNum
}

// Loaded returns true if a game is loaded.
func (a *Adapter) Loaded() bool {
	return a.loaded
}

// Settings returns a copy of the current settings.
func (a *Adapter) Settings() config.Settings {
	return a.store.Settings()
}

// Geometry returns the geometry of the most recently presented frame.
func (a *Adapter) Geometry() layout.Data {
	return a.geometry
}

// Renderer returns the state of the renderer selection.
func (a *Adapter) Renderer() renderer.State {
	return a.selector.State()
}

// SystemInfo describes the adapter.
func (a *Adapter) SystemInfo() host.SystemInfo {
	return host.SystemInfo{
		Name:         fmt.Sprintf("%s (%s)", version.ApplicationName, a.eng.Name()),
		Version:      fmt.Sprintf("%s (%s)", version.String(), a.eng.Version()),
		Extensions:   []string{"nds"},
		NeedFullPath: true,
	}
}

// AVInfo returns the timing and geometry of the output. The values are
// always consistent with the next frame to be presented.
func (a *Adapter) AVInfo() layout.AVInfo {
	return a.geometry.AVInfo()
}

// SavePath returns the path of the save file for the game at romPath. The
// save file is kept in the host's save directory and has the same base name
// as the game.
func SavePath(saveDir string, romPath string) string {
	base := filepath.Base(romPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(saveDir, base+".sav")
}

// Load the game. Any previously loaded game is unloaded first.
//
// Missing BIOS files, a host that doesn't support the XRGB8888 pixel format
// and errors from the engine cause the load to fail. A failed load leaves
// the adapter with no game loaded.
func (a *Adapter) Load(romPath string) error {
	if a.loaded {
		a.Unload()
	}

	var missing []string
	for _, f := range engine.RequiredBIOS {
		if _, err := os.Stat(filepath.Join(a.host.SystemDir(), f)); err != nil {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		err := fmt.Errorf("adapter: %w: %s", ErrMissingBIOS, strings.Join(missing, ", "))
		logger.Log(logger.Allow, logTag, err)
		return err
	}

	if !a.host.SetPixelFormat(host.XRGB8888) {
		err := fmt.Errorf("adapter: %w: %s", ErrPixelFormat, host.XRGB8888)
		logger.Log(logger.Allow, logTag, err)
		return err
	}

	// the settings are committed once the game has loaded
	settings, _ := a.store.Peek(a.host, true)

	// every variable has just been read
	_ = a.host.Updated()

	if err := a.eng.Init(a.host.SystemDir()); err != nil {
		return fmt.Errorf("adapter: %w: %w", ErrEngine, err)
	}

	if err := a.eng.Configure(settings.Tuning); err != nil {
		a.eng.DeInit()
		return fmt.Errorf("adapter: %w: %w", ErrEngine, err)
	}

	savePath := SavePath(a.host.SaveDir(), romPath)
	if err := a.eng.LoadROM(romPath, savePath, settings.DirectBoot); err != nil {
		a.eng.DeInit()
		return fmt.Errorf("adapter: %w: %w", ErrEngine, err)
	}

	a.store.Commit(settings)
	a.settings = a.store.Settings()
	a.romPath = romPath
	a.savePath = savePath
	a.frameNum = 0
	a.selector.Reset()

	a.input = input.NewState()
	a.input.TouchMode = settings.TouchMode
	a.geometry = settings.Geometry(false)
	a.loaded = true

	a.host.SetAVInfo(a.geometry.AVInfo())

	logger.Logf(a, logTag, "loaded %s", filepath.Base(romPath))
	logger.Logf(a, logTag, "%s renderer requested", settings.Render.Backend)

	return nil
}

// Unload the game. The renderer is shut down and will be chosen again on the
// next Load().
func (a *Adapter) Unload() {
	if !a.loaded {
		return
	}
	a.selector.Reset()
	a.eng.DeInit()
	a.loaded = false
	logger.Logf(a, logTag, "unloaded %s", filepath.Base(a.romPath))
}

// Reset the game. The game is loaded again using the current direct boot
// setting.
func (a *Adapter) Reset() error {
	if !a.loaded {
		return fmt.Errorf("adapter: %w", ErrNotLoaded)
	}
	if err := a.eng.LoadROM(a.romPath, a.savePath, a.settings.DirectBoot); err != nil {
		return fmt.Errorf("adapter: %w: %w", ErrEngine, err)
	}
	a.frameNum = 0
	return nil
}
