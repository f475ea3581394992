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
	"encoding/binary"
	"errors"
	"fmt"
)

// Sentinel errors returned by Savestate.
var (
	ErrOverflow = errors.New("savestate overflow")
	ErrSection  = errors.New("savestate section mismatch")
)

// sections are tagged with four bytes
const sectionTagLen = 4

// Savestate is a bounded buffer used to save or load the state of an engine.
type Savestate struct {
	data   []byte
	offset int
	saving bool
	err    error
}

// NewSavestate returns a Savestate for saving into the buffer. The buffer is
// never grown.
func NewSavestate(buf []byte) *Savestate {
	return &Savestate{data: buf, saving: true}
}

// NewLoadstate returns a Savestate for loading from the buffer.
func NewLoadstate(buf []byte) *Savestate {
	return &Savestate{data: buf}
}

// Saving returns true if state is being written to the buffer.
func (s *Savestate) Saving() bool {
	return s.saving
}

// Offset is the number of bytes of the buffer that have been used.
func (s *Savestate) Offset() int {
	return s.offset
}

// Err returns the first error encountered. Once an error has occurred all
// further operations are ignored.
func (s *Savestate) Err() error {
	return s.err
}

// reserve n bytes of the buffer, returning the reserved slice. returns nil
// if there is not enough space
func (s *Savestate) reserve(n int) []byte {
	if s.err != nil {
		return nil
	}
	if s.offset+n > len(s.data) {
		s.err = fmt.Errorf("snapshot: %w: %d bytes at offset %d exceeds buffer of %d bytes",
			ErrOverflow, n, s.offset, len(s.data))
		return nil
	}
	b := s.data[s.offset : s.offset+n]
	s.offset += n
	return b
}

// Section marks the start of a named section. When loading the name must
// match the name that was saved.
func (s *Savestate) Section(name string) {
	var tag [sectionTagLen]byte
	copy(tag[:], name)

	b := s.reserve(sectionTagLen)
	if b == nil {
		return
	}

	if s.saving {
		copy(b, tag[:])
		return
	}

	if string(b) != string(tag[:]) {
		s.err = fmt.Errorf("snapshot: %w: expected %q but found %q", ErrSection, name, string(b))
	}
}

// Var8 saves or loads an 8 bit value.
func (s *Savestate) Var8(v *uint8) {
	b := s.reserve(1)
	if b == nil {
		return
	}
	if s.saving {
		b[0] = *v
	} else {
		*v = b[0]
	}
}

// Var16 saves or loads a 16 bit value.
func (s *Savestate) Var16(v *uint16) {
	b := s.reserve(2)
	if b == nil {
		return
	}
	if s.saving {
		binary.LittleEndian.PutUint16(b, *v)
	} else {
		*v = binary.LittleEndian.Uint16(b)
	}
}

// Var32 saves or loads a 32 bit value.
func (s *Savestate) Var32(v *uint32) {
	b := s.reserve(4)
	if b == nil {
		return
	}
	if s.saving {
		binary.LittleEndian.PutUint32(b, *v)
	} else {
		*v = binary.LittleEndian.Uint32(b)
	}
}

// Var64 saves or loads a 64 bit value.
func (s *Savestate) Var64(v *uint64) {
	b := s.reserve(8)
	if b == nil {
		return
	}
	if s.saving {
		binary.LittleEndian.PutUint64(b, *v)
	} else {
		*v = binary.LittleEndian.Uint64(b)
	}
}

// Bool saves or loads a boolean value.
func (s *Savestate) Bool(v *bool) {
	var b uint8
	if *v {
		b = 1
	}
	s.Var8(&b)
	if !s.saving && s.err == nil {
		*v = b != 0
	}
}

// Bytes saves or loads the contents of the slice. The length of the slice
// is not recorded and must be the same when loading.
func (s *Savestate) Bytes(v []byte) {
	b := s.reserve(len(v))
	if b == nil {
		return
	}
	if s.saving {
		copy(b, v)
	} else {
		copy(v, b)
	}
}
