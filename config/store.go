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
	"strconv"
	"strings"
	"unicode"

	"github.com/jetsetilly/dualscreen/layout"
	"github.com/jetsetilly/dualscreen/logger"
)

// Source is the host's table of configuration variables.
type Source interface {
	// Variable returns the current value for the key. The bool is false if
	// the host has no value for the key.
	Variable(key string) (string, bool)
}

// Enumerator is an optional extension of Source. A Source that implements
// it can supply engine tuning keys that are not listed by Options().
type Enumerator interface {
	Keys() []string
}

// Store holds the current Settings.
type Store struct {
	perm     logger.Permission
	settings Settings
}

// DefaultSettings returns the Settings used before the first reload.
func DefaultSettings() Settings {
	s := Settings{
		DirectBoot:  true,
		Layout:      layout.TopBottom,
		HybridRatio: layout.DefaultHybridRatio,
		SwapMode:    Toggle,
		TouchMode:   TouchDisabled,
		Render: RenderSettings{
			Backend:          Direct,
			AcceleratedScale: layout.MinScale,
		},
		Tuning: make(Tuning),
	}
	for _, o := range Options() {
		if strings.HasPrefix(o.Key, KeyTuningPrefix) {
			s.Tuning[o.Key] = o.Default()
		}
	}
	return s
}

// NewStore is the preferred method of initialisation for the Store type.
func NewStore(perm logger.Permission) *Store {
	if perm == nil {
		perm = logger.Allow
	}
	return &Store{
		perm:     perm,
		settings: DefaultSettings(),
	}
}

// Settings returns a copy of the current settings.
func (st *Store) Settings() Settings {
	return st.settings.clone()
}

// DisableAccelerated clears the request for the accelerated backend. Used
// when the accelerated backend could not be initialised.
func (st *Store) DisableAccelerated() Settings {
	st.settings.Render.Backend = Direct
	return st.Settings()
}

// Reload the settings from the Source. The accelerated-renderer key is only
// consulted if init is true.
//
// The returned Settings is a new value and the Delta reports the difference
// between it and the previous settings.
func (st *Store) Reload(src Source, init bool) (Settings, Delta) {
	s, d := st.Peek(src, init)
	st.Commit(s)
	return s, d
}

// Commit replaces the current settings.
func (st *Store) Commit(s Settings) {
	st.settings = s.clone()
}

// Peek is the same as Reload() except that the current settings are left
// unchanged. The result can be committed later with Commit().
func (st *Store) Peek(src Source, init bool) (Settings, Delta) {
	prev := st.settings
	s := prev.clone()

	if v, ok := src.Variable(KeyBootDirect); ok {
		if b, ok := parseEnabled(v); ok {
			s.DirectBoot = b
		}
	}

	if v, ok := src.Variable(KeyScreenLayout); ok {
		if m, err := layout.ParseMode(v); err == nil {
			s.Layout = m
		} else {
			logger.Log(st.perm, "config", err)
		}
	}

	if v, ok := src.Variable(KeyHybridRatio); ok {
		if n, ok := leadingInt(v); ok {
			s.HybridRatio = min(max(n, layout.MinHybridRatio), layout.MaxHybridRatio)
		}
	}

	if v, ok := src.Variable(KeySwapMode); ok {
		switch strings.ToLower(v) {
		case "toggle":
			s.SwapMode = Toggle
		case "hold":
			s.SwapMode = Hold
		}
	}

	if v, ok := src.Variable(KeyThreadedDirect); ok {
		if b, ok := parseEnabled(v); ok {
			s.Render.ThreadedDirect = b
		}
	}

	if v, ok := src.Variable(KeyTouchMode); ok {
		switch strings.ToLower(v) {
		case "disabled":
			s.TouchMode = TouchDisabled
		case "mouse":
			s.TouchMode = TouchMouse
		case "touch":
			s.TouchMode = TouchPointer
		case "joystick":
			s.TouchMode = TouchJoystick
		}
	}

	if init {
		if v, ok := src.Variable(KeyAccelerated); ok {
			if b, ok := parseEnabled(v); ok {
				if b {
					s.Render.Backend = Accelerated
				} else {
					s.Render.Backend = Direct
				}
			}
		}
	}

	if v, ok := src.Variable(KeyAcceleratedScale); ok {
		if n, ok := leadingInt(v); ok {
			s.Render.AcceleratedScale = min(max(n, layout.MinScale), layout.MaxScale)
		}
	}

	// the background rasteriser and the accelerated backend can't be used
	// at the same time
	if s.Render.Backend == Accelerated {
		s.Render.ThreadedDirect = false
	}

	keys := make([]string, 0, len(s.Tuning))
	for _, o := range Options() {
		if strings.HasPrefix(o.Key, KeyTuningPrefix) {
			keys = append(keys, o.Key)
		}
	}
	if e, ok := src.(Enumerator); ok {
		for _, k := range e.Keys() {
			if strings.HasPrefix(k, KeyTuningPrefix) {
				keys = append(keys, k)
			}
		}
	}
	for _, k := range keys {
		if v, ok := src.Variable(k); ok {
			s.Tuning[k] = v
		}
	}

	d := diff(prev, s)
	if d.Any() {
		logger.Logf(st.perm, "config", "reloaded: %s", d)
	}

	return s, d
}

func parseEnabled(v string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case Enabled:
		return true, true
	case Disabled:
		return false, true
	}
	return false, false
}

// leadingInt parses the integer at the start of the string. this allows
// values such as "2x native (512x384)"
func leadingInt(v string) (int, bool) {
	v = strings.TrimSpace(v)
	i := strings.IndexFunc(v, func(r rune) bool {
		return !unicode.IsDigit(r)
	})
	if i == -1 {
		i = len(v)
	}
	n, err := strconv.Atoi(v[:i])
	if err != nil {
		return 0, false
	}
	return n, true
}
