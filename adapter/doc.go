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

// Package adapter connects an emulation engine to a frontend. The frontend
// calls Load() with the path of a game and then Run() once per frame. Every
// call to Run() samples input, advances the engine by one frame, composites
// the two screens into a single buffer, presents it, delivers the audio
// produced and applies any configuration changes made by the frontend.
//
// The first call to Run() after a Load() chooses the renderer but does not
// advance the engine. If the accelerated renderer is requested but cannot be
// started, that call presents nothing and the direct renderer is used from
// the next call onwards. The accelerated renderer will be tried again on the
// next Load().
package adapter
