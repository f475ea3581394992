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
	"slices"
	"sort"
	"strconv"

	"github.com/jetsetilly/dualscreen/layout"
)

// List of keys understood by the Store.
const (
	KeyBootDirect         = "boot-direct"
	KeyScreenLayout       = "screen-layout"
	KeyHybridRatio        = "hybrid-ratio"
	KeySwapMode           = "swap-mode"
	KeyThreadedDirect     = "threaded-direct-renderer"
	KeyTouchMode          = "touch-mode"
	KeyAccelerated        = "accelerated-renderer"
	KeyAcceleratedScale   = "accelerated-scale"
	KeyTuningPrefix       = "engine-tuning-"
	KeyJITEnable          = KeyTuningPrefix + "jit-enable"
	KeyJITBlockSize       = KeyTuningPrefix + "jit-block-size"
	KeyJITBranchOptimise  = KeyTuningPrefix + "jit-branch-optimisations"
	KeyJITLiteralOptimise = KeyTuningPrefix + "jit-literal-optimisations"
)

// Values for keys that are either on or off.
const (
	Enabled  = "enabled"
	Disabled = "disabled"
)

// Block size limits for the JIT tuning option.
const (
	MaxJITBlockSize     = 100
	DefaultJITBlockSize = 32
)

// Option describes a key and its domain of values.
type Option struct {
	Key   string
	Label string

	// the first value is the default
	Values []string

	// the option is only consulted when a program is loaded
	Restart bool
}

// Default value of the option.
func (o Option) Default() string {
	return o.Values[0]
}

// Valid returns true if the value is in the option's domain.
func (o Option) Valid(v string) bool {
	return slices.Contains(o.Values, v)
}

func (o Option) String() string {
	return fmt.Sprintf("%s (%s)", o.Label, o.Key)
}

// ScaleValue returns the value string for the accelerated-scale option.
func ScaleValue(scale int) string {
	return fmt.Sprintf("%dx native (%dx%d)", scale, layout.ScreenWidth*scale, layout.ScreenHeight*scale)
}

// Options returns a description of every key understood by the Store.
func Options() []Option {
	var layouts []string
	for _, m := range layout.Modes() {
		layouts = append(layouts, m.String())
	}

	var scales []string
	for i := layout.MinScale; i <= layout.MaxScale; i++ {
		scales = append(scales, ScaleValue(i))
	}

	blocks := []string{strconv.Itoa(DefaultJITBlockSize)}
	for i := 1; i <= MaxJITBlockSize; i++ {
		if i != DefaultJITBlockSize {
			blocks = append(blocks, strconv.Itoa(i))
		}
	}

	return []Option{
		{Key: KeyBootDirect, Label: "Boot game directly", Values: []string{Enabled, Disabled}},
		{Key: KeyScreenLayout, Label: "Screen layout", Values: layouts},
		{Key: KeyHybridRatio, Label: "Hybrid ratio", Values: []string{"2", "3"}},
		{Key: KeySwapMode, Label: "Swap screen mode", Values: []string{Toggle.String(), Hold.String()}},
		{Key: KeyThreadedDirect, Label: "Threaded software renderer", Values: []string{Disabled, Enabled}},
		{Key: KeyTouchMode, Label: "Touch mode", Values: []string{
			TouchDisabled.String(), TouchMouse.String(), TouchPointer.String(), TouchJoystick.String(),
		}},
		{Key: KeyAccelerated, Label: "Accelerated renderer", Values: []string{Disabled, Enabled}, Restart: true},
		{Key: KeyAcceleratedScale, Label: "Accelerated internal resolution", Values: scales},
		{Key: KeyJITEnable, Label: "JIT enable", Values: []string{Enabled, Disabled}, Restart: true},
		{Key: KeyJITBlockSize, Label: "JIT block size", Values: blocks},
		{Key: KeyJITBranchOptimise, Label: "JIT branch optimisations", Values: []string{Enabled, Disabled}},
		{Key: KeyJITLiteralOptimise, Label: "JIT literal optimisations", Values: []string{Enabled, Disabled}},
	}
}

// LookupOption returns the Option for the key.
func LookupOption(key string) (Option, bool) {
	for _, o := range Options() {
		if o.Key == key {
			return o, true
		}
	}
	return Option{}, false
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
