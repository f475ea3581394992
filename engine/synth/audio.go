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
	"math/bits"

	"github.com/jetsetilly/dualscreen/layout"
)

const (
	baseTone  = 440.0
	amplitude = 3000.0
)

// generateAudio adds one frame's worth of audio to the audio buffer. the
// pitch of the tone rises with the number of keys pressed
func (e *Engine) generateAudio() {
	n := audioFramesPerFrame + e.audioCarry
	frames := int(n)
	e.audioCarry = n - float64(frames)

	freq := baseTone * math.Pow(2, float64(bits.OnesCount32(e.keys))/12)
	step := 2 * math.Pi * freq / layout.SampleRate

	for range frames {
		v := int16(math.Sin(e.phase) * amplitude)
		e.phase += step
		if e.phase > 2*math.Pi {
			e.phase -= 2 * math.Pi
		}
		e.audio = append(e.audio, v, v)
	}

	if over := len(e.audio) - audioBufferFrames*2; over > 0 {
		e.audio = append(e.audio[:0], e.audio[over:]...)
	}
}

// AudioAvailable implements the engine.Engine interface.
func (e *Engine) AudioAvailable() int {
	return len(e.audio) / 2
}

// ReadAudio implements the engine.Engine interface.
func (e *Engine) ReadAudio(buf []int16) int {
	n := min(len(buf)/2, len(e.audio)/2)
	copy(buf, e.audio[:n*2])
	e.audio = append(e.audio[:0], e.audio[n*2:]...)
	return n
}
