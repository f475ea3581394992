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

package snapshot_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/dualscreen/snapshot"
	"github.com/jetsetilly/dualscreen/test"
)

// machine is a minimal implementation of snapshot.Stater
type machine struct {
	pc    uint32
	flags uint8
	cycle uint64
	halt  bool
	ram   []byte
}

func (m *machine) DoSavestate(s *snapshot.Savestate) {
	s.Section("CPU0")
	s.Var32(&m.pc)
	s.Var8(&m.flags)
	s.Var64(&m.cycle)
	s.Bool(&m.halt)
	s.Section("RAM0")
	s.Bytes(m.ram)
}

const machineSize = 4 + 4 + 1 + 8 + 1 + 4 + 64

func newMachine() *machine {
	m := &machine{
		pc:    0x02000800,
		flags: 0x1f,
		cycle: 1 << 40,
		halt:  true,
		ram:   make([]byte, 64),
	}
	for i := range m.ram {
		m.ram[i] = byte(i)
	}
	return m
}

func TestProbe(t *testing.T) {
	m := newMachine()

	size, err := snapshot.ProbeSize(m, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, size, machineSize)

	// probing is repeatable
	again, err := snapshot.ProbeSize(m, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, again, size)
}

func TestRoundTrip(t *testing.T) {
	m := newMachine()

	size, err := snapshot.ProbeSize(m, 0)
	test.DemandSuccess(t, err)

	buf := make([]byte, size)
	n, err := snapshot.Serialize(m, buf)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, size)

	r := &machine{ram: make([]byte, 64)}
	n, err = snapshot.Deserialize(r, buf)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, size)

	test.ExpectEquality(t, r.pc, m.pc)
	test.ExpectEquality(t, r.flags, m.flags)
	test.ExpectEquality(t, r.cycle, m.cycle)
	test.ExpectEquality(t, r.halt, m.halt)
	test.ExpectEquality(t, string(r.ram), string(m.ram))
}

func TestOverflow(t *testing.T) {
	m := newMachine()

	// a bound smaller than the state is an error and not a truncation
	size, err := snapshot.ProbeSize(m, machineSize-1)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, errors.Is(err, snapshot.ErrOverflow), true)
	test.ExpectEquality(t, size, 0)

	_, err = snapshot.Serialize(m, make([]byte, 10))
	test.ExpectEquality(t, errors.Is(err, snapshot.ErrOverflow), true)

	// the error is sticky
	s := snapshot.NewSavestate(make([]byte, 2))
	var v uint32
	s.Var32(&v)
	var b uint8
	s.Var8(&b)
	test.ExpectEquality(t, errors.Is(s.Err(), snapshot.ErrOverflow), true)
	test.ExpectEquality(t, s.Offset(), 0)
}

func TestDeserializeFailure(t *testing.T) {
	m := newMachine()

	// too small
	_, err := snapshot.Deserialize(m, make([]byte, machineSize-1))
	test.ExpectEquality(t, errors.Is(err, snapshot.ErrBufferSize), true)

	// the first section is correct but the second isn't. the state must be
	// left as it was
	buf := make([]byte, machineSize)
	copy(buf, "CPU0")
	copy(buf[4+4+1+8+1:], "XXXX")
	_, err = snapshot.Deserialize(m, buf)
	test.ExpectEquality(t, errors.Is(err, snapshot.ErrSection), true)
	test.ExpectEquality(t, m.pc, uint32(0x02000800))
	test.ExpectEquality(t, m.halt, true)
}
