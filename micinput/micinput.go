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

package micinput

import (
	"github.com/jetsetilly/dualscreen/engine"
	"github.com/jetsetilly/dualscreen/random"
)

// SampleRate of the microphone input.
const SampleRate = 44100

const logTag = "micinput"

// Provider returns a frame of microphone samples. The returned slice is
// only valid until the next call to Frame().
type Provider interface {
	Frame(held bool) []int16
}

// Silence is a Provider that never returns any samples.
type Silence struct{}

// Frame implements the Provider interface.
func (Silence) Frame(_ bool) []int16 {
	return nil
}

// Noise is a Provider that returns random samples while held.
type Noise struct {
	rnd *random.Random
	buf []int16
}

// NewNoise is the preferred method of initialisation for the Noise type. The
// noise will be the same for the same frame number.
func NewNoise(frames random.Frames) *Noise {
	return &Noise{
		rnd: random.NewRandom(frames),
		buf: make([]int16, engine.MicSamplesPerFrame),
	}
}

// Frame implements the Provider interface.
func (n *Noise) Frame(held bool) []int16 {
	if !held {
		return nil
	}
	n.rnd.Fill(n.buf)
	return n.buf
}
