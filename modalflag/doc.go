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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package, with
// some differences. Most importantly, the Parse() function returns a
// ParseResult which tells the caller how to proceed. Help output is handled
// automatically.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	frames := md.AddInt("frames", 60, "number of frames to run")
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		os.Exit(0)
//	case modalflag.ParseError:
//		fmt.Println(err)
//		os.Exit(10)
//	}
//
// Modes are added with AddSubModes(). The first sub-mode is the default and
// is selected if the first argument is not one of the sub-modes:
//
//	md.NewMode()
//	md.AddSubModes("RUN", "HEADLESS", "PROBE", "LAYOUT")
//	p, err := md.Parse()
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		quiet := md.AddBool("quiet", false, "suppress log entries")
//		p, err := md.Parse()
//		...
//	}
//
// Each call to NewMode() starts a new layer. Path() returns every mode
// selected so far.
package modalflag
