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

// Package host defines the interfaces through which the adapter talks to the
// frontend that is running it. The frontend supplies a video sink, an audio
// sink, an input device and an environment that answers configuration
// queries.
//
// The Variables type is an implementation of the configuration table that
// frontends can share. The headless and sdlhost sub-packages are complete
// frontends.
package host
