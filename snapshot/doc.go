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

// Package snapshot serialises the state of an engine to an opaque blob of
// bytes and measures how large that blob is.
//
// The engine writes (or reads) its state through a Savestate. The same code
// path is used for both directions, with the Saving() function deciding
// which way the data flows:
//
//	func (e *Engine) DoSavestate(s *snapshot.Savestate) {
//		s.Section("CPU0")
//		s.Var32(&e.pc)
//		s.Bytes(e.ram)
//	}
//
// A Savestate never grows. Writing or reading past the end of the buffer
// sets a sticky error which is returned by Err().
//
// The engine has no function for reporting how large its state is. The
// ProbeSize() function finds out by saving the state into a scratch buffer
// much larger than any real state and measuring how much was used.
package snapshot
