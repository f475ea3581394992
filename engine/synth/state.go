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

package synth

import (
	"math"

	"github.com/jetsetilly/dualscreen/snapshot"
)

// DoSavestate implements the snapshot.Stater interface.
func (e *Engine) DoSavestate(s *snapshot.Savestate) {
	s.Section("SYNT")
	s.Var32(&e.frame)
	s.Var32(&e.boot)
	s.Var32(&e.seed)
	s.Var32(&e.keys)

	front := uint8(e.front)
	s.Var8(&front)

	var touchX, touchY = uint16(e.touchX), uint16(e.touchY)
	s.Var16(&touchX)
	s.Var16(&touchY)
	s.Bool(&e.touching)
	s.Bool(&e.lid)
	s.Bool(&e.pendingRaster)

	phase := math.Float64bits(e.phase)
	carry := math.Float64bits(e.audioCarry)
	s.Var64(&phase)
	s.Var64(&carry)

	s.Section("RAM0")
	s.Bytes(e.ram)

	s.Section("FBUF")
	for b := range e.fb {
		for sc := range e.fb[b] {
			for i := range e.fb[b][sc] {
				s.Var32(&e.fb[b][sc][i])
			}
		}
	}

	if !s.Saving() && s.Err() == nil {
		e.front = int(front & 1)
		e.touchX = int(touchX)
		e.touchY = int(touchY)
		e.phase = math.Float64frombits(phase)
		e.audioCarry = math.Float64frombits(carry)
	}
}
