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

package layout

import (
	"errors"
	"fmt"
)

// Mode is one of the eight screen layouts.
type Mode int

// List of valid Mode values.
const (
	TopBottom Mode = iota
	BottomTop
	LeftRight
	RightLeft
	TopOnly
	BottomOnly
	HybridTop
	HybridBottom
)

var modeNames = [...]string{
	"Top/Bottom",
	"Bottom/Top",
	"Left/Right",
	"Right/Left",
	"Top Only",
	"Bottom Only",
	"Hybrid Top",
	"Hybrid Bottom",
}

func (m Mode) String() string {
	if m < TopBottom || m > HybridBottom {
		return fmt.Sprintf("unknown layout (%d)", int(m))
	}
	return modeNames[m]
}

// Modes returns all layout modes in the order they should be presented to
// the user.
func Modes() []Mode {
	return []Mode{TopBottom, BottomTop, LeftRight, RightLeft, TopOnly, BottomOnly, HybridTop, HybridBottom}
}

// ErrUnknownMode is returned by ParseMode() when the string doesn't name a
// layout.
var ErrUnknownMode = errors.New("unknown layout")

// ParseMode returns the Mode named by the string. The names are the same as
// the result of Mode.String().
func ParseMode(s string) (Mode, error) {
	for i, n := range modeNames {
		if n == s {
			return Mode(i), nil
		}
	}
	return TopBottom, fmt.Errorf("layout: %w: %q", ErrUnknownMode, s)
}

// IsHybrid returns true for the two picture-in-picture layouts.
func (m Mode) IsHybrid() bool {
	return m == HybridTop || m == HybridBottom
}

// IsSolo returns true for the two layouts that show only one screen.
func (m Mode) IsSolo() bool {
	return m == TopOnly || m == BottomOnly
}

// swap returns the mode with the screen positions exchanged
func (m Mode) swap() Mode {
	switch m {
	case TopBottom:
		return BottomTop
	case BottomTop:
		return TopBottom
	case LeftRight:
		return RightLeft
	case RightLeft:
		return LeftRight
	case HybridTop:
		return HybridBottom
	case HybridBottom:
		return HybridTop
	}
	return m
}

// Screen identifies one of the two guest screens.
type Screen int

// List of valid Screen values. The bottom screen is the touch screen.
const (
	Top Screen = iota
	Bottom
)

func (s Screen) String() string {
	switch s {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	}
	return "unknown screen"
}

// Other returns the opposite screen.
func (s Screen) Other() Screen {
	if s == Top {
		return Bottom
	}
	return Top
}
