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

// Package config is the live configuration store. Settings are rebuilt from
// a host supplied key/value Source by the Store.Reload() function.
//
// The store never exposes a partially updated Settings value. Reload()
// builds a new value, starting from a copy of the previous one, and returns
// it along with a Delta describing what changed. Keys that are missing from
// the Source, or which have a value outside of the key's domain, leave the
// previous value in place.
//
// The Options() function describes every key understood by the store. Hosts
// should use it to build their variable tables.
package config
