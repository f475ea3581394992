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

// Package input samples the host's input devices once per frame.
//
// The host implements the Device interface. The Levels type is a simple
// implementation of Device that hosts can update from their own events.
//
// State is updated once per frame by the Update() function and records the
// keypad, the touch screen, the lid and the swap screens button. The
// interpretation of the swap screens button, either as a toggle or as a held
// level, is decided by the Swap() function.
package input
