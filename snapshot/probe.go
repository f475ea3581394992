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

package snapshot

import (
	"errors"
	"fmt"
)

// ProbeBound is the size of the scratch buffer used by ProbeSize(). The
// largest state observed is about 7MiB.
const ProbeBound = 16 * 1024 * 1024

// Stater is implemented by anything that can be saved and loaded through a
// Savestate.
type Stater interface {
	DoSavestate(s *Savestate)
}

// ErrBufferSize is returned by Deserialize() when the buffer is smaller
// than the state.
var ErrBufferSize = errors.New("buffer size does not match state size")

// ProbeSize measures the size of the serialised state by saving it into a
// scratch buffer of bound bytes. A bound of zero or less means ProbeBound.
//
// A state that does not fit in the scratch buffer is an error. The size is
// never truncated.
func ProbeSize(st Stater, bound int) (int, error) {
	if bound <= 0 {
		bound = ProbeBound
	}

	s := NewSavestate(make([]byte, bound))
	st.DoSavestate(s)
	if err := s.Err(); err != nil {
		return 0, fmt.Errorf("snapshot: probe: %w", err)
	}

	return s.Offset(), nil
}

// Serialize saves the state into the buffer and returns the number of bytes
// used.
func Serialize(st Stater, buf []byte) (int, error) {
	s := NewSavestate(buf)
	st.DoSavestate(s)
	if err := s.Err(); err != nil {
		return 0, fmt.Errorf("snapshot: serialize: %w", err)
	}
	return s.Offset(), nil
}

// Deserialize loads the state from the buffer and returns the number of
// bytes consumed. The buffer can be larger than the state.
//
// If loading fails the previous state is restored.
func Deserialize(st Stater, buf []byte) (int, error) {
	size, err := ProbeSize(st, 0)
	if err != nil {
		return 0, fmt.Errorf("snapshot: deserialize: %w", err)
	}
	if len(buf) < size {
		return 0, fmt.Errorf("snapshot: deserialize: %w: %d bytes for a state of %d bytes", ErrBufferSize, len(buf), size)
	}

	backup := make([]byte, size)
	if _, err := Serialize(st, backup); err != nil {
		return 0, fmt.Errorf("snapshot: deserialize: %w", err)
	}

	s := NewLoadstate(buf)
	st.DoSavestate(s)
	if err := s.Err(); err != nil {
		st.DoSavestate(NewLoadstate(backup))
		return 0, fmt.Errorf("snapshot: deserialize: %w", err)
	}
	return s.Offset(), nil
}
