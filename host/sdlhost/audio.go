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

package sdlhost

import (
	"encoding/binary"
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/dualscreen/layout"
)

// the number of sample frames in the device buffer. the value has been
// found through trial and error
const bufferLength = 1024

// if more than this many bytes are queued, the queue is cleared before
// adding more. this keeps the delay between video and audio to a minimum
const maxQueued = bufferLength * 4 * 8

type audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec
	buf  []byte
}

func newAudio() (*audio, error) {
	aud := &audio{}

	spec := &sdl.AudioSpec{
		Freq:     int32(layout.SampleRate),
		Format:   sdl.AUDIO_S16LSB,
		Channels: 2,
		Samples:  bufferLength,
	}

	var err error
	aud.id, err = sdl.OpenAudioDevice("", false, spec, &aud.spec, 0)
	if err != nil {
		return nil, fmt.Errorf("sdlhost: audio: %w", err)
	}

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

func (aud *audio) queue(samples []int16) error {
	if sdl.GetQueuedAudioSize(aud.id) > maxQueued {
		sdl.ClearQueuedAudio(aud.id)
	}

	aud.buf = aud.buf[:0]
	for _, s := range samples {
		aud.buf = binary.LittleEndian.AppendUint16(aud.buf, uint16(s))
	}

	if err := sdl.QueueAudio(aud.id, aud.buf); err != nil {
		return fmt.Errorf("sdlhost: audio: %w", err)
	}
	return nil
}

func (aud *audio) close() {
	sdl.CloseAudioDevice(aud.id)
}
