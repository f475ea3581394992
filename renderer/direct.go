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

package renderer

import (
	"fmt"

	"github.com/jetsetilly/dualscreen/compositor"
	"github.com/jetsetilly/dualscreen/config"
	"github.com/jetsetilly/dualscreen/engine"
	"github.com/jetsetilly/dualscreen/layout"
)

// DirectBackend composites the engine's screens in software.
type DirectBackend struct {
	out    []uint32
	worker *rasterWorker
}

// NewDirect is the preferred method of initialisation for the DirectBackend
// type.
func NewDirect() *DirectBackend {
	return &DirectBackend{}
}

// Kind implements the Backend interface.
func (b *DirectBackend) Kind() config.Backend {
	return config.Direct
}

// Init implements the Backend interface.
func (b *DirectBackend) Init(eng engine.Engine, rs config.RenderSettings) error {
	return b.Reconfigure(eng, rs)
}

// Reconfigure implements the Backend interface. The background rasteriser
// is started or stopped according to the ThreadedDirect setting. It is
// never started if the engine doesn't support deferred rasterisation.
func (b *DirectBackend) Reconfigure(eng engine.Engine, rs config.RenderSettings) error {
	dr, ok := eng.(engine.DeferredRasterizer)
	threaded := rs.ThreadedDirect && ok

	if threaded && b.worker == nil {
		b.worker = newRasterWorker(dr)
	} else if !threaded && b.worker != nil {
		b.worker.stop()
		b.worker = nil
	}

	eng.SetRenderSettings(engine.RenderSettings{Deferred: threaded})

	return nil
}

// Threaded returns true if the background rasteriser is running.
func (b *DirectBackend) Threaded() bool {
	return b.worker != nil
}

// Render implements the Backend interface.
func (b *DirectBackend) Render(eng engine.Engine, d layout.Data, cur Cursor) ([]uint32, error) {
	// the rasteriser must have finished with the frame before the front
	// buffer is read
	if b.worker != nil {
		b.worker.rasterize()
	}

	if len(b.out) < d.Pixels() {
		b.out = make([]uint32, d.Pixels())
	}
	out := b.out[:d.Pixels()]

	fb := eng.FrontBuffer()
	screens := compositor.Screens{
		eng.Framebuffer(fb, layout.Top),
		eng.Framebuffer(fb, layout.Bottom),
	}

	if err := compositor.Composite(out, screens, d); err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}

	if cur.Visible {
		compositor.DrawCursor(out, d, cur.X, cur.Y)
	}

	return out, nil
}

// Close implements the Backend interface.
func (b *DirectBackend) Close() {
	if b.worker != nil {
		b.worker.stop()
		b.worker = nil
	}
}
