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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/dualscreen/engine"
	"github.com/jetsetilly/dualscreen/modalflag"
	"github.com/jetsetilly/dualscreen/test"
)

func modes(t *testing.T, args ...string) (*modalflag.Modes, *test.RingWriter) {
	t.Helper()
	w, err := test.NewRingWriter(8192)
	test.DemandSuccess(t, err)
	md := &modalflag.Modes{Output: w}
	md.NewArgs(args)
	return md, w
}

// game returns a system directory with every required bios file and the
// path to a game file
func game(t *testing.T) (string, string) {
	t.Helper()

	sys := t.TempDir()
	for _, f := range engine.RequiredBIOS {
		test.DemandSuccess(t, os.WriteFile(filepath.Join(sys, f), []byte{0}, 0o644))
	}

	rom := filepath.Join(t.TempDir(), "demo.nds")
	test.DemandSuccess(t, os.WriteFile(rom, []byte("demo"), 0o644))

	return sys, rom
}

func TestLayoutTable(t *testing.T) {
	md, _ := modes(t, "-scale", "2")
	out, err := test.NewRingWriter(8192)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, layoutTable(md, out))

	s := out.String()
	test.ExpectEquality(t, strings.Contains(s, "Hybrid Top"), true)
	test.ExpectEquality(t, strings.Contains(s, "512x384"), true)

	// header, six single-ratio layouts and two hybrid layouts at two ratios
	// each, followed by a blank line and the option values
	test.ExpectEquality(t, strings.Count(s, "\n"), 1+6+4+2)
}

func TestLayoutTableBadScale(t *testing.T) {
	md, _ := modes(t, "-scale", "100")
	out, err := test.NewRingWriter(256)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, layoutTable(md, out))
}

func TestHeadless(t *testing.T) {
	sys, rom := game(t)
	shots := t.TempDir()
	wav := filepath.Join(t.TempDir(), "audio.wav")

	md, _ := modes(t, "-quiet", "-system", sys, "-save", t.TempDir(),
		"-frames", "10", "-wav", wav, "-png", shots,
		"-prefs", "screen-layout::Left/Right", rom)

	out, err := test.NewRingWriter(1024)
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, headless(md, out))

	s := out.String()
	test.ExpectEquality(t, strings.Contains(s, "10 frames presented"), true)
	test.ExpectEquality(t, strings.Contains(s, "Left/Right 512x192"), true)

	_, err = os.Stat(wav)
	test.ExpectSuccess(t, err)

	pngs, err := filepath.Glob(filepath.Join(shots, "*demo*.png"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(pngs), 1)
}

func TestHeadlessNoGame(t *testing.T) {
	md, _ := modes(t, "-frames", "1")
	out, err := test.NewRingWriter(256)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, headless(md, out))
}

func TestHeadlessMissingBIOS(t *testing.T) {
	_, rom := game(t)
	md, _ := modes(t, "-quiet", "-system", t.TempDir(), "-save", t.TempDir(), rom)
	out, err := test.NewRingWriter(256)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, headless(md, out))
}

func TestProbe(t *testing.T) {
	sys, rom := game(t)
	md, _ := modes(t, "-quiet", "-system", sys, "-save", t.TempDir(), "-frames", "2", rom)

	out, err := test.NewRingWriter(1024)
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, probe(md, out))
	test.ExpectEquality(t, strings.Contains(out.String(), "savestate: "), true)
	test.ExpectEquality(t, strings.Contains(out.String(), "system ram: "), true)
}
