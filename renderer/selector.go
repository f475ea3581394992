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
	"errors"
	"fmt"

	"github.com/jetsetilly/dualscreen/config"
	"github.com/jetsetilly/dualscreen/engine"
	"github.com/jetsetilly/dualscreen/logger"
)

// State of the Selector.
type State int

// List of valid State values.
const (
	Unselected State = iota
	Direct
	Accelerated
)

func (s State) String() string {
	switch s {
	case Unselected:
		return "unselected"
	case Direct:
		return "direct"
	case Accelerated:
		return "accelerated"
	}
	return "unknown renderer state"
}

// ErrSkipFrame is returned by Resolve() when the accelerated backend failed
// to initialise. No frame should be output and Resolve() should be called
// again on the next frame.
var ErrSkipFrame = errors.New("accelerated renderer unavailable: frame skipped")

// Selector chooses the rendering backend.
type Selector struct {
	perm logger.Permission

	state   State
	backend Backend

	// the accelerated backend failed to initialise since the most recent
	// Reset()
	unavailable bool

	newDirect      func() Backend
	newAccelerated func() Backend
}

// NewSelector is the preferred method of initialisation for the Selector
// type.
func NewSelector(perm logger.Permission) *Selector {
	if perm == nil {
		perm = logger.Allow
	}
	return &Selector{
		perm: perm,
		newDirect: func() Backend {
			return NewDirect()
		},
		newAccelerated: func() Backend {
			return NewAccelerated()
		},
	}
}

// SetAcceleratedFactory replaces the function that creates the accelerated
// backend.
func (sel *Selector) SetAcceleratedFactory(f func() Backend) {
	sel.newAccelerated = f
}

// SetDirectFactory replaces the function that creates the direct backend.
func (sel *Selector) SetDirectFactory(f func() Backend) {
	sel.newDirect = f
}

// State returns the current state of the Selector.
func (sel *Selector) State() State {
	return sel.state
}

// Resolved returns true if a backend has been selected.
func (sel *Selector) Resolved() bool {
	return sel.state != Unselected
}

// Unavailable returns true if the accelerated backend has failed to
// initialise since the most recent Reset().
func (sel *Selector) Unavailable() bool {
	return sel.unavailable
}

// Backend returns the selected backend. Returns nil if no backend has been
// selected.
func (sel *Selector) Backend() Backend {
	return sel.backend
}

// Resolve returns the selected backend, selecting and initialising it if
// necessary.
//
// If the accelerated backend is requested and fails to initialise, the
// error ErrSkipFrame is returned. The caller should clear the request for
// the accelerated backend before calling Resolve() again. Any other error
// is fatal.
func (sel *Selector) Resolve(eng engine.Engine, rs config.RenderSettings) (Backend, error) {
	if sel.state != Unselected {
		return sel.backend, nil
	}

	if rs.Backend == config.Accelerated && !sel.unavailable {
		b := sel.newAccelerated()
		if err := b.Init(eng, rs); err != nil {
			b.Close()
			sel.unavailable = true
			logger.Logf(sel.perm, "renderer", "accelerated renderer failed: %v", err)
			return nil, fmt.Errorf("renderer: %w: %w", ErrSkipFrame, err)
		}
		sel.backend = b
		sel.state = Accelerated
		logger.Logf(sel.perm, "renderer", "selected %s renderer", sel.state)
		return sel.backend, nil
	}

	rs.Backend = config.Direct
	b := sel.newDirect()
	if err := b.Init(eng, rs); err != nil {
		b.Close()
		return nil, fmt.Errorf("renderer: %w", err)
	}
	sel.backend = b
	sel.state = Direct
	logger.Logf(sel.perm, "renderer", "selected %s renderer", sel.state)

	return sel.backend, nil
}

// Reset closes the selected backend and returns the Selector to the
// Unselected state. The accelerated backend will be tried again if it is
// requested.
func (sel *Selector) Reset() {
	if sel.backend != nil {
		sel.backend.Close()
	}
	sel.backend = nil
	sel.state = Unselected
	sel.unavailable = false
}
