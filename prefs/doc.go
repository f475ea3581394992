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

// Package prefs implements typed preference values with optional hooks that
// are run before and after a new value is stored.
//
// Values are not persisted. Hosts use them to build variable tables that
// the configuration store reads from, and the hooks are a convenient way of
// noticing that a variable has changed:
//
//	var layout prefs.String
//	layout.SetHookPost(func(v prefs.Value) error {
//		updated = true
//		return nil
//	})
//
// Initial values can be supplied on the command line with the
// PushCommandLineStack() and GetCommandLinePref() functions.
package prefs
