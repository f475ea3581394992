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

package adapter

import (
	"io"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/dualscreen/config"
	"github.com/jetsetilly/dualscreen/input"
	"github.com/jetsetilly/dualscreen/layout"
)

// the parts of the adapter shown by DumpState()
type sessionState struct {
	RomPath  string
	SavePath string
	FrameNum uint64
	Renderer string
	Settings config.Settings
	Geometry layout.Data
	Input    *input.State
}

// DumpState writes a graphviz representation of the session to w.
func (a *Adapter) DumpState(w io.Writer) {
	s := &sessionState{
		RomPath:  a.romPath,
		SavePath: a.savePath,
		FrameNum: a.frameNum,
		Renderer: a.selector.State().String(),
		Settings: a.store.Settings(),
		Geometry: a.geometry,
		Input:    a.input,
	}
	memviz.Map(w, s)
}
