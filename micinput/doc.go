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

// Package micinput provides the samples that are fed to the engine's
// microphone input every frame. A Provider returns a full frame of samples
// while the microphone button is held and nothing otherwise.
//
// The Noise provider returns random values, as a real microphone would when
// blown into. The Sample provider plays a WAV or MP3 file, looping it for as
// long as the button is held.
package micinput
