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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

// initialise base seed
func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Frames is implemented by types that count the number of frames that have
// been run.
type Frames interface {
	FrameNum() uint64
}

// Random is a random number generator that is sensitive to the frame number.
type Random struct {
	frames Frames

	// use zero seed rather than the random base seed. this is only really
	// useful for testing where random numbers must be predictable
	ZeroSeed bool

	noRewind *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(frames Frames) *Random {
	return &Random{
		frames:   frames,
		noRewind: rand.New(rand.NewSource(baseSeed)),
	}
}

// new RNG from the standard library
func (rnd *Random) rand() *rand.Rand {
	if rnd.ZeroSeed {
		return rand.New(rand.NewSource(int64(rnd.frames.FrameNum())))
	}
	return rand.New(rand.NewSource(baseSeed + int64(rnd.frames.FrameNum())))
}

// Rewindable returns a number in the range [0, n) that will be the same for
// the same frame number.
func (rnd *Random) Rewindable(n int) int {
	return rnd.rand().Intn(n)
}

// NoRewind returns a number in the range [0, n) regardless of the frame
// number.
func (rnd *Random) NoRewind(n int) int {
	return rnd.noRewind.Intn(n)
}

// Fill the buffer with random 16 bit values. The values will be the same
// for the same frame number.
func (rnd *Random) Fill(buf []int16) {
	r := rnd.rand()
	for i := range buf {
		buf[i] = int16(r.Uint32())
	}
}
