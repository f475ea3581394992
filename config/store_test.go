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

package config_test

import (
	"testing"

	"github.com/jetsetilly/dualscreen/config"
	"github.com/jetsetilly/dualscreen/layout"
	"github.com/jetsetilly/dualscreen/test"
)

type quiet struct{}

func (quiet) AllowLogging() bool {
	return false
}

// table is a simple implementation of config.Source
type table map[string]string

func (t table) Variable(key string) (string, bool) {
	v, ok := t[key]
	return v, ok
}

// enumerated is a config.Source that also implements config.Enumerator
type enumerated struct {
	table
}

func (e enumerated) Keys() []string {
	var k []string
	for key := range e.table {
		k = append(k, key)
	}
	return k
}

func TestDefaults(t *testing.T) {
	st := config.NewStore(quiet{})
	s := st.Settings()
	test.ExpectEquality(t, s.DirectBoot, true)
	test.ExpectEquality(t, s.Layout, layout.TopBottom)
	test.ExpectEquality(t, s.HybridRatio, 2)
	test.ExpectEquality(t, s.SwapMode, config.Toggle)
	test.ExpectEquality(t, s.TouchMode, config.TouchDisabled)
	test.ExpectEquality(t, s.Render.Backend, config.Direct)
	test.ExpectEquality(t, s.Render.AcceleratedScale, 1)
	test.ExpectEquality(t, s.Tuning[config.KeyJITBlockSize], "32")

	// the defaults in the options table agree with the default settings
	for _, o := range config.Options() {
		test.ExpectEquality(t, o.Valid(o.Default()), true, o.Key)
	}

	// reloading from an empty source changes nothing
	_, d := st.Reload(table{}, true)
	test.ExpectEquality(t, d.Any(), false)
}

func TestReload(t *testing.T) {
	st := config.NewStore(quiet{})

	src := table{
		config.KeyBootDirect:       "disabled",
		config.KeyScreenLayout:     "Hybrid Bottom",
		config.KeyHybridRatio:      "3",
		config.KeySwapMode:         "Hold",
		config.KeyTouchMode:        "Joystick",
		config.KeyThreadedDirect:   "enabled",
		config.KeyAcceleratedScale: config.ScaleValue(4),
		config.KeyJITBlockSize:     "64",
	}

	s, d := st.Reload(src, false)
	test.ExpectEquality(t, s.DirectBoot, false)
	test.ExpectEquality(t, s.Layout, layout.HybridBottom)
	test.ExpectEquality(t, s.HybridRatio, 3)
	test.ExpectEquality(t, s.SwapMode, config.Hold)
	test.ExpectEquality(t, s.TouchMode, config.TouchJoystick)
	test.ExpectEquality(t, s.Render.ThreadedDirect, true)
	test.ExpectEquality(t, s.Render.AcceleratedScale, 4)
	test.ExpectEquality(t, s.Tuning[config.KeyJITBlockSize], "64")
	test.ExpectEquality(t, d, config.Delta{
		Boot: true, Layout: true, Swap: true, Touch: true, Render: true, Tuning: true,
	})

	// the scale factor only affects geometry when the accelerated backend is
	// in use
	test.ExpectEquality(t, s.Render.Scale(), 1)
	test.ExpectEquality(t, s.Geometry(false).BufferHeight, 192*3)
}

func TestIdempotence(t *testing.T) {
	src := table{
		config.KeyScreenLayout:     "Hybrid Top",
		config.KeyHybridRatio:      "3",
		config.KeyAccelerated:      "enabled",
		config.KeyAcceleratedScale: "2",
	}

	st := config.NewStore(quiet{})
	a, _ := st.Reload(src, true)
	b, d := st.Reload(src, true)

	test.ExpectEquality(t, d.Any(), false)
	test.ExpectEquality(t, a.Geometry(false), b.Geometry(false))
	test.ExpectEquality(t, a.Geometry(true), b.Geometry(true))
	test.ExpectEquality(t, a.Render, b.Render)
}

func TestRetainPrevious(t *testing.T) {
	st := config.NewStore(quiet{})
	st.Reload(table{
		config.KeyScreenLayout: "Left/Right",
		config.KeyHybridRatio:  "3",
		config.KeyTouchMode:    "Mouse",
	}, false)

	// missing and invalid values leave the previous value in place
	s, d := st.Reload(table{
		config.KeyScreenLayout: "Diagonal",
		config.KeySwapMode:     "Sometimes",
		config.KeyBootDirect:   "maybe",
	}, false)
	test.ExpectEquality(t, d.Any(), false)
	test.ExpectEquality(t, s.Layout, layout.LeftRight)
	test.ExpectEquality(t, s.HybridRatio, 3)
	test.ExpectEquality(t, s.TouchMode, config.TouchMouse)
	test.ExpectEquality(t, s.DirectBoot, true)
}

func TestPeekAndCommit(t *testing.T) {
	st := config.NewStore(quiet{})
	src := table{
		config.KeyScreenLayout: "Left/Right",
		config.KeyAccelerated:  config.Enabled,
		config.KeyJITBlockSize: "50",
	}

	s, d := st.Peek(src, true)
	test.ExpectEquality(t, s.Layout, layout.LeftRight)
	test.ExpectEquality(t, s.Render.Backend, config.Accelerated)
	test.ExpectEquality(t, d.Layout, true)

	// nothing has changed in the store
	cur := st.Settings()
	test.ExpectEquality(t, cur.Layout, layout.TopBottom)
	test.ExpectEquality(t, cur.Render.Backend, config.Direct)
	test.ExpectEquality(t, cur.Tuning[config.KeyJITBlockSize], "32")

	// changing the peeked value doesn't change the store
	s.Tuning[config.KeyJITBlockSize] = "99"
	test.ExpectEquality(t, st.Settings().Tuning[config.KeyJITBlockSize], "32")

	s.Tuning[config.KeyJITBlockSize] = "50"
	st.Commit(s)
	cur = st.Settings()
	test.ExpectEquality(t, cur.Layout, layout.LeftRight)
	test.ExpectEquality(t, cur.Render.Backend, config.Accelerated)
	test.ExpectEquality(t, cur.Tuning[config.KeyJITBlockSize], "50")

	// the committed value is a copy
	s.Tuning[config.KeyJITBlockSize] = "99"
	test.ExpectEquality(t, st.Settings().Tuning[config.KeyJITBlockSize], "50")
}

func TestClamping(t *testing.T) {
	st := config.NewStore(quiet{})

	s, _ := st.Reload(table{
		config.KeyHybridRatio:      "7",
		config.KeyAcceleratedScale: "12x native",
	}, false)
	test.ExpectEquality(t, s.HybridRatio, 3)
	test.ExpectEquality(t, s.Render.AcceleratedScale, 8)

	s, _ = st.Reload(table{
		config.KeyHybridRatio:      "0",
		config.KeyAcceleratedScale: "0",
	}, false)
	test.ExpectEquality(t, s.HybridRatio, 2)
	test.ExpectEquality(t, s.Render.AcceleratedScale, 1)
}

func TestAcceleratedOnlyAtInit(t *testing.T) {
	st := config.NewStore(quiet{})
	src := table{
		config.KeyAccelerated:    "enabled",
		config.KeyThreadedDirect: "enabled",
	}

	// not consulted mid-session
	s, _ := st.Reload(src, false)
	test.ExpectEquality(t, s.Render.Backend, config.Direct)
	test.ExpectEquality(t, s.Render.ThreadedDirect, true)

	// consulted on load. the threaded direct renderer is forced off
	s, d := st.Reload(src, true)
	test.ExpectEquality(t, s.Render.Backend, config.Accelerated)
	test.ExpectEquality(t, s.Render.ThreadedDirect, false)
	test.ExpectEquality(t, d.Render, true)

	// and stays off even though the source still asks for it
	s, _ = st.Reload(src, false)
	test.ExpectEquality(t, s.Render.ThreadedDirect, false)

	// clearing the request
	s = st.DisableAccelerated()
	test.ExpectEquality(t, s.Render.Backend, config.Direct)
	test.ExpectEquality(t, st.Settings().Render.Backend, config.Direct)
}

func TestTuningForwarding(t *testing.T) {
	st := config.NewStore(quiet{})

	// keys unknown to the options table are only collected from an
	// enumerable source
	s, _ := st.Reload(table{"engine-tuning-foo": "bar"}, false)
	_, ok := s.Tuning["engine-tuning-foo"]
	test.ExpectEquality(t, ok, false)

	s, d := st.Reload(enumerated{table{
		"engine-tuning-foo":    "bar",
		config.KeyJITEnable:    "disabled",
		config.KeyScreenLayout: "Top/Bottom",
	}}, false)
	test.ExpectEquality(t, s.Tuning["engine-tuning-foo"], "bar")
	test.ExpectEquality(t, s.Tuning[config.KeyJITEnable], "disabled")
	test.ExpectEquality(t, d.Tuning, true)
	test.ExpectEquality(t, d.Layout, false)

	// the returned settings are a copy
	s.Tuning["engine-tuning-foo"] = "baz"
	test.ExpectEquality(t, st.Settings().Tuning["engine-tuning-foo"], "bar")
}

func TestOptions(t *testing.T) {
	o, ok := config.LookupOption(config.KeyScreenLayout)
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, len(o.Values), 8)
	test.ExpectEquality(t, o.Default(), "Top/Bottom")

	o, ok = config.LookupOption(config.KeyAcceleratedScale)
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, o.Values[1], "2x native (512x384)")

	o, ok = config.LookupOption(config.KeyJITBlockSize)
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, len(o.Values), config.MaxJITBlockSize)

	_, ok = config.LookupOption("not-a-key")
	test.ExpectEquality(t, ok, false)
}
