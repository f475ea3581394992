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

// Package limiter paces the frame loop so that frames are produced no faster
// than a requested rate. The actual rate is measured as the loop runs.
package limiter

import (
	"sync/atomic"
	"time"

	"github.com/jetsetilly/dualscreen/layout"
)

// MatchRefreshRate can be passed to SetLimit() to limit frames to the
// refresh rate of the emulated system.
const MatchRefreshRate float32 = -1.0

// Limiter waits on a ticker every few frames. Checking a ticker on every
// frame is too coarse for rates above 50fps so the wait is spread over a
// group of frames.
type Limiter struct {
	// whether to wait for the limit each frame
	Active bool

	// the ideal number of frames per second
	IdealFPS atomic.Value // float32

	pulse        *time.Ticker
	pulseCt      int
	pulseCtLimit int

	measuringPulse *time.Ticker
	measureTime    time.Time
	measureCt      int

	// the measured number of frames per second
	Measured atomic.Value // float32

	// skip waiting for the specified number of frames
	Nudge atomic.Int32
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// The limit is set to the refresh rate of the emulated system.
func NewLimiter() *Limiter {
	lmtr := &Limiter{
		Active:         true,
		pulse:          time.NewTicker(time.Millisecond * 16),
		measuringPulse: time.NewTicker(time.Second),
	}
	lmtr.Measured.Store(float32(0.0))
	lmtr.SetLimit(MatchRefreshRate)
	return lmtr
}

// SetLimit sets the number of frames per second. Values of zero or less mean
// the refresh rate of the emulated system.
func (lmtr *Limiter) SetLimit(fps float32) {
	if fps <= 0.0 {
		fps = float32(layout.FPS)
	}
	lmtr.IdealFPS.Store(fps)

	lmtr.pulseCt = 0
	lmtr.pulseCtLimit = 1 + int(fps/20)
	lmtr.pulse.Reset(time.Duration(float32(time.Second) / fps * float32(lmtr.pulseCtLimit)))

	lmtr.measureCt = 0
	lmtr.measureTime = time.Now()
}

// CheckFrame should be called every frame.
func (lmtr *Limiter) CheckFrame() {
	lmtr.measureCt++

	if nudge := lmtr.Nudge.Load(); nudge > 0 {
		lmtr.Nudge.Store(nudge - 1)
		return
	}

	if lmtr.Active {
		lmtr.pulseCt++
		if lmtr.pulseCt >= lmtr.pulseCtLimit {
			lmtr.pulseCt = 0
			<-lmtr.pulse.C
		}
	}
}

// MeasureActual updates the Measured value once a second. It is safe to call
// every frame.
func (lmtr *Limiter) MeasureActual() {
	select {
	case <-lmtr.measuringPulse.C:
		t := time.Now()
		lmtr.Measured.Store(float32(lmtr.measureCt) / float32(t.Sub(lmtr.measureTime).Seconds()))
		lmtr.measureTime = t
		lmtr.measureCt = 0
	default:
	}
}

// Stop the limiter's tickers. The limiter should not be used afterwards.
func (lmtr *Limiter) Stop() {
	lmtr.pulse.Stop()
	lmtr.measuringPulse.Stop()
}
