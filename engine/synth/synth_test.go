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

package synth_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/dualscreen/engine"
	"github.com/jetsetilly/dualscreen/engine/synth"
	"github.com/jetsetilly/dualscreen/layout"
	"github.com/jetsetilly/dualscreen/snapshot"
	"github.com/jetsetilly/dualscreen/test"
)

// the synthetic engine must satisfy the optional interfaces
var _ engine.Engine = (*synth.Engine)(nil)
var _ engine.DeferredRasterizer = (*synth.Engine)(nil)

func loaded(t *testing.T) *synth.Engine {
	t.Helper()
	e := synth.NewEngine()
	test.DemandSuccess(t, e.Init(t.TempDir()))
	test.DemandSuccess(t, e.LoadROM("", "", true))
	return e
}

func TestNotInitialised(t *testing.T) {
	e := synth.NewEngine()
	test.ExpectFailure(t, e.LoadROM("", "", true))
}

func TestLoadROM(t *testing.T) {
	e := synth.NewEngine()
	test.DemandSuccess(t, e.Init(t.TempDir()))

	test.ExpectFailure(t, e.LoadROM(filepath.Join(t.TempDir(), "missing.nds"), "", true))

	rom := filepath.Join(t.TempDir(), "game.nds")
	test.DemandSuccess(t, os.WriteFile(rom, []byte("synthetic"), 0600))
	test.ExpectSuccess(t, e.LoadROM(rom, "", false))
	test.ExpectEquality(t, e.Booting(), true)
}

func TestRunFrame(t *testing.T) {
	e := loaded(t)

	front := e.FrontBuffer()
	e.RunFrame()
	test.ExpectEquality(t, e.Frame(), uint32(1))
	test.ExpectInequality(t, e.FrontBuffer(), front)

	// colour bars on the top screen
	fb := e.Framebuffer(e.FrontBuffer(), layout.Top)
	test.ExpectEquality(t, len(fb), engine.ScreenPixels)
	test.ExpectInequality(t, fb[0], uint32(0))

	// frame counter is visible in RAM
	test.ExpectEquality(t, len(e.MainRAM()), engine.MainRAMSize)
	test.ExpectEquality(t, e.MainRAM()[0], byte(1))
}

func TestLid(t *testing.T) {
	e := loaded(t)
	e.SetLidClosed(true)
	e.RunFrame()
	for _, s := range []layout.Screen{layout.Top, layout.Bottom} {
		for _, p := range e.Framebuffer(e.FrontBuffer(), s) {
			if !test.ExpectEquality(t, p, uint32(0), s) {
				break
			}
		}
	}
}

func TestDeferred(t *testing.T) {
	e := loaded(t)
	e.SetRenderSettings(engine.RenderSettings{Deferred: true})

	front := e.FrontBuffer()
	e.RunFrame()
	test.ExpectEquality(t, e.FrontBuffer(), front)

	e.Rasterize()
	test.ExpectInequality(t, e.FrontBuffer(), front)

	// nothing outstanding so no flip
	front = e.FrontBuffer()
	e.Rasterize()
	test.ExpectEquality(t, e.FrontBuffer(), front)
}

func TestAudio(t *testing.T) {
	e := loaded(t)

	for range 5 {
		e.RunFrame()
	}

	// 32768Hz at just under 60 frames per second is about 547 stereo frames
	// per video frame
	test.ExpectEquality(t, e.AudioAvailable(), 2735)

	buf := make([]int16, engine.MaxAudioFrames*2)
	n := e.ReadAudio(buf)
	test.ExpectEquality(t, n, engine.MaxAudioFrames)
	test.ExpectEquality(t, e.AudioAvailable(), 2735-engine.MaxAudioFrames)

	// left and right channels are the same
	test.ExpectEquality(t, buf[100], buf[101])
}

func TestMicrophone(t *testing.T) {
	e := loaded(t)
	e.MicInputFrame([]int16{10, -2000, 300})
	test.ExpectEquality(t, e.MicLevel(), 2000)
	e.MicInputFrame(nil)
	test.ExpectEquality(t, e.MicLevel(), 0)
}

func TestSavestate(t *testing.T) {
	e := loaded(t)
	e.SetKeys(0x0f)
	e.Touch(20, 30)
	for range 5 {
		e.RunFrame()
	}

	size, err := snapshot.ProbeSize(e, 0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, size < snapshot.ProbeBound, true)

	buf := make([]byte, size)
	_, err = snapshot.Serialize(e, buf)
	test.DemandSuccess(t, err)

	r := loaded(t)
	n, err := snapshot.Deserialize(r, buf)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, size)
	test.ExpectEquality(t, r.Frame(), e.Frame())
	test.ExpectEquality(t, r.Keys(), e.Keys())
	test.ExpectEquality(t, r.FrontBuffer(), e.FrontBuffer())

	// both engines continue identically
	e.RunFrame()
	r.RunFrame()
	a := e.Framebuffer(e.FrontBuffer(), layout.Bottom)
	b := r.Framebuffer(r.FrontBuffer(), layout.Bottom)
	test.ExpectEquality(t, a[30*layout.ScreenWidth+20], b[30*layout.ScreenWidth+20])
}

func TestConfigure(t *testing.T) {
	e := loaded(t)
	test.ExpectSuccess(t, e.Configure(map[string]string{"engine-tuning-jit-enable": "disabled"}))
	v, ok := e.Tuning("engine-tuning-jit-enable")
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, v, "disabled")
}
