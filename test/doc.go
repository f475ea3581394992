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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() and ExpectSuccess()/ExpectFailure() functions are the
// most useful. The Demand*() variants stop the test immediately on failure
// and should be used when continuing the test makes no sense.
//
// All functions accept optional tags that are prepended to any failure
// message. Useful when testing in a loop:
//
//	for i, m := range modes {
//		test.ExpectEquality(t, got, want, m, i)
//	}
package test
