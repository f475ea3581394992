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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/jetsetilly/dualscreen/adapter"
	"github.com/jetsetilly/dualscreen/engine/synth"
	"github.com/jetsetilly/dualscreen/host"
	"github.com/jetsetilly/dualscreen/logger"
	"github.com/jetsetilly/dualscreen/micinput"
	"github.com/jetsetilly/dualscreen/modalflag"
	"github.com/jetsetilly/dualscreen/paths"
	"github.com/jetsetilly/dualscreen/prefs"
)

// flags shared by every mode that loads a game.
type commonFlags struct {
	system *string
	save   *string
	prefs  *string
	log    *bool
	json   *bool
	quiet  *bool
	mic    *string
}

func addCommonFlags(md *modalflag.Modes) commonFlags {
	return commonFlags{
		system: md.AddString("system", "", "directory containing bios and firmware files"),
		save:   md.AddString("save", "", "directory for save files"),
		prefs:  md.AddString("prefs", "", "option values for this run (key::value; key::value)"),
		log:    md.AddBool("log", false, "echo debugging log to stdout"),
		json:   md.AddBool("logjson", false, "write log entries to stderr as JSON"),
		quiet:  md.AddBool("quiet", false, "suppress routine log entries"),
		mic:    md.AddString("mic", "", "wav or mp3 file to use as microphone input"),
	}
}

type session struct {
	systemDir string
	saveDir   string
	romPath   string
	opts      adapter.Options
	pushed    bool
	zap       *zap.Logger
}

// prepare the session from the parsed flags. the game file is the single
// remaining argument.
func (cf commonFlags) prepare(md *modalflag.Modes) (*session, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("game file required for %s mode", md)
	case 1:
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	if *cf.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	sess := &session{
		romPath: md.GetArg(0),
		opts: adapter.Options{
			Quiet: *cf.quiet,
		},
	}

	var err error

	if *cf.json {
		sess.zap, err = zap.NewProduction()
		if err != nil {
			return nil, err
		}
		logger.SetStructured(sess.zap)
	}

	sess.systemDir, err = resourceDir(*cf.system, "system")
	if err != nil {
		return nil, err
	}
	sess.saveDir, err = resourceDir(*cf.save, "saves")
	if err != nil {
		return nil, err
	}

	if *cf.mic != "" {
		sess.opts.Mic, err = micinput.LoadSample(logger.Allow, *cf.mic)
		if err != nil {
			return nil, err
		}
	}

	if *cf.prefs != "" {
		prefs.PushCommandLineStack(*cf.prefs)
		sess.pushed = true
	}

	return sess, nil
}

// resourceDir returns dir if it is not empty. otherwise the named directory
// in the resource path is created and returned.
func resourceDir(dir string, sub string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	return paths.MakeResourceDir(sub)
}

// newAdapter creates an adapter for the host. option values given on the
// command line are consumed by the host variables created here.
func (sess *session) newAdapter(h host.Host) *adapter.Adapter {
	return adapter.NewAdapter(synth.NewEngine(), h, sess.opts)
}

// label is the game name used for screenshot filenames.
func (sess *session) label() string {
	b := filepath.Base(sess.romPath)
	return strings.TrimSuffix(b, filepath.Ext(b))
}

func (sess *session) end() {
	if sess.pushed {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "dualscreen", "unused option values: %s", unused)
		}
	}
	if sess.zap != nil {
		logger.SetStructured(nil)
		_ = sess.zap.Sync()
	}
}
