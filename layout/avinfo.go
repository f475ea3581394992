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

package layout

// Timing of the emulated console.
const (
	FPS        = 32.0 * 1024.0 * 1024.0 / 560190.0
	SampleRate = 32.0 * 1024.0
)

// AVInfo is the timing and geometry reported to the host.
type AVInfo struct {
	FPS        float64
	SampleRate float64
	Width      int
	Height     int
	MaxWidth   int
	MaxHeight  int
	Aspect     float64
}

// AVInfo returns the timing and geometry for the resolved layout.
func (d Data) AVInfo() AVInfo {
	return AVInfo{
		FPS:        FPS,
		SampleRate: SampleRate,
		Width:      d.BufferWidth,
		Height:     d.BufferHeight,
		MaxWidth:   d.BufferWidth,
		MaxHeight:  d.BufferHeight,
		Aspect:     float64(d.BufferWidth) / float64(d.BufferHeight),
	}
}
