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
	"fmt"

	"github.com/jetsetilly/dualscreen/logger"
	"github.com/jetsetilly/dualscreen/snapshot"
)

// MemoryKind identifies an area of memory that can be queried with
// MemoryData() and MemorySize().
type MemoryKind int

// List of valid MemoryKind values.
const (
	SystemRAM MemoryKind = iota
	SaveRAM
)

// SerializeSize returns the number of bytes needed by Serialize(). An error
// is returned if the state is larger than snapshot.ProbeBound.
func (a *Adapter) SerializeSize() (int, error) {
	if !a.loaded {
		return 0, fmt.Errorf("adapter: %w", ErrNotLoaded)
	}
	n, err := snapshot.ProbeSize(a.eng, snapshot.ProbeBound)
	if err != nil {
		logger.Log(logger.Allow, logTag, err)
		return 0, fmt.Errorf("adapter: %w", err)
	}
	return n, nil
}

// Serialize the engine state into the buffer.
func (a *Adapter) Serialize(buf []byte) error {
	if !a.loaded {
		return fmt.Errorf("adapter: %w", ErrNotLoaded)
	}
	if _, err := snapshot.Serialize(a.eng, buf); err != nil {
		return fmt.Errorf("adapter: %w", err)
	}
	return nil
}

// Unserialize restores the engine state from the buffer. The engine state is
// unchanged if the buffer cannot be loaded.
func (a *Adapter) Unserialize(buf []byte) error {
	if !a.loaded {
		return fmt.Errorf("adapter: %w", ErrNotLoaded)
	}
	if _, err := snapshot.Deserialize(a.eng, buf); err != nil {
		return fmt.Errorf("adapter: %w", err)
	}
	return nil
}

// MemoryData returns the memory of the requested kind. Returns nil if the
// memory is not available.
func (a *Adapter) MemoryData(kind MemoryKind) []byte {
	if !a.loaded || kind != SystemRAM {
		return nil
	}
	return a.eng.MainRAM()
}

// MemorySize returns the size of the memory of the requested kind.
func (a *Adapter) MemorySize(kind MemoryKind) int {
	return len(a.MemoryData(kind))
}
