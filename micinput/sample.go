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
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"github.com/jetsetilly/dualscreen/engine"
	"github.com/jetsetilly/dualscreen/logger"
)

// Sentinel errors.
var (
	ErrFormat = errors.New("unsupported file format")
	ErrEmpty  = errors.New("no audio data")
)

// Sample is a Provider that plays a recording while held. The recording
// restarts from the beginning each time the button is pressed.
type Sample struct {
	data []int16
	pos  int
	buf  []int16
}

// NewSample is the preferred method of initialisation for the Sample type.
// The data should already be at the microphone sample rate.
func NewSample(data []int16) (*Sample, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("micinput: %w", ErrEmpty)
	}
	return &Sample{
		data: data,
		buf:  make([]int16, engine.MicSamplesPerFrame),
	}, nil
}

// Frame implements the Provider interface.
func (s *Sample) Frame(held bool) []int16 {
	if !held {
		s.pos = 0
		return nil
	}
	for i := range s.buf {
		s.buf[i] = s.data[s.pos]
		s.pos = (s.pos + 1) % len(s.data)
	}
	return s.buf
}

// LoadSample decodes a WAV or MP3 file. Only the first channel is used and
// the data is resampled to the microphone sample rate.
func LoadSample(perm logger.Permission, filename string) (*Sample, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("micinput: %w", err)
	}
	defer f.Close()

	var data []int16
	var rate int

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		data, rate, err = decodeWAV(f)
	case ".mp3":
		data, rate, err = decodeMP3(f)
	default:
		err = ErrFormat
	}
	if err != nil {
		return nil, fmt.Errorf("micinput: %s: %w", filepath.Base(filename), err)
	}

	logger.Logf(perm, logTag, "%s: %d samples at %dHz", filepath.Base(filename), len(data), rate)

	return NewSample(Resample(data, rate, SampleRate))
}

func decodeWAV(r io.ReadSeeker) ([]int16, int, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("wav: not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("wav: %w", err)
	}

	chans := max(int(dec.NumChans), 1)

	// samples are scaled to 16 bits whatever the bit depth of the file
	shift := int(dec.BitDepth) - 16

	data := make([]int16, 0, len(buf.Data)/chans)
	for i := 0; i < len(buf.Data); i += chans {
		v := buf.Data[i]
		if dec.BitDepth == 8 {
			// 8 bit wav data is unsigned
			v -= 128
		}
		if shift > 0 {
			v >>= shift
		} else {
			v <<= -shift
		}
		data = append(data, int16(v))
	}

	return data, int(dec.SampleRate), nil
}

func decodeMP3(r io.Reader) ([]int16, int, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, 0, fmt.Errorf("mp3: %w", err)
	}

	// the decoded stream is always 16 bit little endian stereo. only the
	// left channel is used
	var data []int16
	chunk := make([]byte, 4096)
	for {
		n, err := io.ReadFull(dec, chunk)
		for i := 0; i+1 < n; i += 4 {
			data = append(data, int16(uint16(chunk[i])|uint16(chunk[i+1])<<8))
		}
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("mp3: %w", err)
		}
	}

	return data, dec.SampleRate(), nil
}

// Resample converts data from one sample rate to another by picking the
// nearest sample.
func Resample(data []int16, from int, to int) []int16 {
	if from <= 0 || from == to || len(data) == 0 {
		return data
	}
	n := int(int64(len(data)) * int64(to) / int64(from))
	out := make([]int16, n)
	for i := range out {
		out[i] = data[int64(i)*int64(from)/int64(to)]
	}
	return out
}
