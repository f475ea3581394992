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

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirety, and written to disk
// when Close() is called. It is therefore probably only suitable for testing
// purposes.
package wavwriter

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/dualscreen/host"
	"github.com/jetsetilly/dualscreen/layout"
	"github.com/jetsetilly/dualscreen/logger"
)

const logTag = "wavwriter"

// WavWriter implements the host.Audio interface. Audio is forwarded to
// another host.Audio implementation if one is supplied.
type WavWriter struct {
	perm     logger.Permission
	filename string
	next     host.Audio
	buffer   []int
}

// New is the preferred method of initialisation for the WavWriter type.
// The next argument can be nil.
func New(perm logger.Permission, filename string, next host.Audio) (*WavWriter, error) {
	if perm == nil {
		perm = logger.Allow
	}
	if filename == "" {
		return nil, fmt.Errorf("wavwriter: no filename")
	}

	aw := &WavWriter{
		perm:     perm,
		filename: filename,
		next:     next,
		buffer:   make([]int, 0),
	}

	return aw, nil
}

// Deliver implements the host.Audio interface.
func (aw *WavWriter) Deliver(samples []int16, frames int) {
	for _, s := range samples[:frames*2] {
		aw.buffer = append(aw.buffer, int(s))
	}
	if aw.next != nil {
		aw.next.Deliver(samples, frames)
	}
}

// Frames returns the number of stereo frames buffered so far.
func (aw *WavWriter) Frames() int {
	return len(aw.buffer) / 2
}

// Close writes the buffered audio to disk.
func (aw *WavWriter) Close() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = fmt.Errorf("wavwriter: %w", err)
		}
	}()

	enc := wav.NewEncoder(f, int(layout.SampleRate), 16, 2, 1)
	if enc == nil {
		return fmt.Errorf("wavwriter: %v", "bad parameters for wav encoding")
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 2,
			SampleRate:  int(layout.SampleRate),
		},
		Data:           aw.buffer,
		SourceBitDepth: 16,
	}

	logger.Logf(aw.perm, logTag, "writing audio to %s", aw.filename)

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}

	return nil
}
