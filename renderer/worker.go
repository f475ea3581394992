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
	"github.com/jetsetilly/dualscreen/engine"
)

// rasterWorker rasterises frames on a background goroutine. there is never
// more than one outstanding request
type rasterWorker struct {
	request  chan struct{}
	complete chan struct{}
	quit     chan struct{}
}

func newRasterWorker(dr engine.DeferredRasterizer) *rasterWorker {
	w := &rasterWorker{
		request:  make(chan struct{}),
		complete: make(chan struct{}),
		quit:     make(chan struct{}),
	}

	go func() {
		for {
			select {
			case <-w.request:
				dr.Rasterize()
				w.complete <- struct{}{}
			case <-w.quit:
				return
			}
		}
	}()

	return w
}

// rasterize asks the worker to rasterise the most recent frame and waits
// for the frame-complete signal
func (w *rasterWorker) rasterize() {
	w.request <- struct{}{}
	<-w.complete
}

func (w *rasterWorker) stop() {
	close(w.quit)
}
