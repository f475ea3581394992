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

	"github.com/jetsetilly/dualscreen/compositor"
	"github.com/jetsetilly/dualscreen/logger"
	"github.com/jetsetilly/dualscreen/renderer"
)

// Run a single frame.
func (a *Adapter) Run() error {
	if !a.loaded {
		return fmt.Errorf("adapter: %w", ErrNotLoaded)
	}

	a.input.Update(a.host.Input(), a.geometry)

	if swapped, changed := a.input.Swap(a.settings.SwapMode); changed {
		a.geometry = a.settings.Geometry(swapped)
	}

	a.eng.SetKeys(a.input.Keys)
	a.eng.SetLidClosed(a.input.LidClosed)
	if a.input.Touching {
		a.eng.Touch(a.input.TouchX, a.input.TouchY)
	} else {
		a.eng.ReleaseScreen()
	}

	a.eng.MicInputFrame(a.mic.Frame(a.input.NoiseHeld))

	// the engine is not advanced until a renderer has been chosen
	if a.selector.Resolved() {
		a.eng.RunFrame()
		a.frameNum++
	}

	if err := a.render(); err != nil {
		return err
	}

	a.harvestAudio()

	if a.host.Updated() {
		a.reload()
	}

	return nil
}

func (a *Adapter) render() error {
	b, err := a.selector.Resolve(a.eng, a.settings.Render)
	if err != nil {
		if errors.Is(err, renderer.ErrSkipFrame) {
			a.settings = a.store.DisableAccelerated()
			a.updateGeometry()
			return nil
		}
		return fmt.Errorf("adapter: %w", err)
	}

	cur := renderer.Cursor{
		Visible: compositor.CursorVisible(a.input.TouchMode, a.geometry),
		X:       a.input.TouchX,
		Y:       a.input.TouchY,
	}

	pix, err := b.Render(a.eng, a.geometry, cur)
	if err != nil {
		return fmt.Errorf("adapter: %w", err)
	}

	a.host.Present(pix, a.geometry.BufferWidth, a.geometry.BufferHeight, a.geometry.Stride())

	return nil
}

func (a *Adapter) harvestAudio() {
	n := min(a.eng.AudioAvailable(), len(a.audio)/2)
	if n <= 0 {
		return
	}
	n = a.eng.ReadAudio(a.audio[:n*2])
	if n > 0 {
		a.host.Deliver(a.audio[:n*2], n)
	}
}

// reload the configuration from the host. the geometry is resolved again and
// the host is told of the new timing and geometry before Run() returns.
func (a *Adapter) reload() {
	settings, delta := a.store.Reload(a.host, false)
	a.settings = settings
	a.input.TouchMode = settings.TouchMode

	logger.Logf(a, logTag, "configuration changed: %s", delta)

	if delta.Tuning {
		if err := a.eng.Configure(settings.Tuning); err != nil {
			logger.Log(a, logTag, err)
		}
	}

	if delta.Render {
		if b := a.selector.Backend(); b != nil {
			if err := b.Reconfigure(a.eng, settings.Render); err != nil {
				logger.Log(a, logTag, err)
			}
		}
	}

	a.updateGeometry()
}

// resolve the geometry from the current settings and tell the host.
func (a *Adapter) updateGeometry() {
	a.geometry = a.settings.Geometry(a.input.Swapped())
	a.host.SetAVInfo(a.geometry.AVInfo())
}
