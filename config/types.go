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

package config

import (
	"fmt"
	"maps"
	"strings"

	"github.com/jetsetilly/dualscreen/layout"
)

// SwapMode is the interpretation of the swap screens button.
type SwapMode int

// List of valid SwapMode values.
const (
	// the layout is swapped every time the button is pressed
	Toggle SwapMode = iota

	// the layout is swapped for as long as the button is held
	Hold
)

func (m SwapMode) String() string {
	switch m {
	case Toggle:
		return "Toggle"
	case Hold:
		return "Hold"
	}
	return "unknown swap mode"
}

// TouchMode is the method by which the touch screen is operated.
type TouchMode int

// List of valid TouchMode values.
const (
	TouchDisabled TouchMode = iota
	TouchMouse
	TouchPointer
	TouchJoystick
)

func (m TouchMode) String() string {
	switch m {
	case TouchDisabled:
		return "disabled"
	case TouchMouse:
		return "Mouse"
	case TouchPointer:
		return "Touch"
	case TouchJoystick:
		return "Joystick"
	}
	return "unknown touch mode"
}

// Backend is the rendering technology.
type Backend int

// List of valid Backend values.
const (
	Direct Backend = iota
	Accelerated
)

func (b Backend) String() string {
	switch b {
	case Direct:
		return "direct"
	case Accelerated:
		return "accelerated"
	}
	return "unknown backend"
}

// RenderSettings selects and configures the rendering backend.
type RenderSettings struct {
	Backend Backend

	// scale factor of the accelerated backend. not used by the direct
	// backend
	AcceleratedScale int

	// rasterise in a background goroutine. always false if Backend is
	// Accelerated
	ThreadedDirect bool
}

// Scale returns the scale factor for the geometry of the output buffer. The
// direct backend always renders at native size.
func (r RenderSettings) Scale() int {
	if r.Backend == Accelerated {
		return r.AcceleratedScale
	}
	return layout.MinScale
}

// Tuning options are forwarded to the engine without interpretation.
type Tuning map[string]string

func (t Tuning) String() string {
	s := strings.Builder{}
	for _, k := range sortedKeys(t) {
		s.WriteString(fmt.Sprintf("%s=%s ", k, t[k]))
	}
	return strings.TrimSpace(s.String())
}

// Settings is a complete set of configuration values.
type Settings struct {
	DirectBoot  bool
	Layout      layout.Mode
	HybridRatio int
	SwapMode    SwapMode
	TouchMode   TouchMode
	Render      RenderSettings
	Tuning      Tuning
}

// Geometry resolves the output geometry for the settings.
func (s Settings) Geometry(swapped bool) layout.Data {
	return layout.Resolve(s.Layout, s.HybridRatio, s.Render.Scale(), swapped)
}

func (s Settings) clone() Settings {
	c := s
	c.Tuning = maps.Clone(s.Tuning)
	if c.Tuning == nil {
		c.Tuning = make(Tuning)
	}
	return c
}

// Delta reports which groups of settings were changed by a reload.
type Delta struct {
	Boot   bool
	Layout bool
	Swap   bool
	Touch  bool
	Render bool
	Tuning bool
}

// Any returns true if any group has changed.
func (d Delta) Any() bool {
	return d.Boot || d.Layout || d.Swap || d.Touch || d.Render || d.Tuning
}

// Geometry returns true if the change requires the output geometry to be
// resolved again.
func (d Delta) Geometry() bool {
	return d.Layout || d.Render
}

func (d Delta) String() string {
	var s []string
	if d.Boot {
		s = append(s, "boot")
	}
	if d.Layout {
		s = append(s, "layout")
	}
	if d.Swap {
		s = append(s, "swap")
	}
	if d.Touch {
		s = append(s, "touch")
	}
	if d.Render {
		s = append(s, "render")
	}
	if d.Tuning {
		s = append(s, "tuning")
	}
	if len(s) == 0 {
		return "no changes"
	}
	return strings.Join(s, ", ")
}

func diff(a, b Settings) Delta {
	return Delta{
		Boot:   a.DirectBoot != b.DirectBoot,
		Layout: a.Layout != b.Layout || a.HybridRatio != b.HybridRatio,
		Swap:   a.SwapMode != b.SwapMode,
		Touch:  a.TouchMode != b.TouchMode,
		Render: a.Render != b.Render,
		Tuning: !maps.Equal(a.Tuning, b.Tuning),
	}
}
