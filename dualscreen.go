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
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/jetsetilly/dualscreen/adapter"
	"github.com/jetsetilly/dualscreen/host"
	"github.com/jetsetilly/dualscreen/host/sdlhost"
	"github.com/jetsetilly/dualscreen/limiter"
	"github.com/jetsetilly/dualscreen/logger"
	"github.com/jetsetilly/dualscreen/modalflag"
	"github.com/jetsetilly/dualscreen/screenshot"
	"github.com/jetsetilly/dualscreen/statsview"
	"github.com/jetsetilly/dualscreen/version"
	"github.com/jetsetilly/dualscreen/wavwriter"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of
// frontends that need to be run in the main thread.
type GuiCreator interface {
	// cleanup resources used by the frontend
	Destroy(io.Writer)

	// Service() must only be called from the main thread. It should do no
	// more than is required for a single frame.
	Service()
}

// communication between the main() function and the launch() function. SDL
// requires window creation and event handling to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	exitVal := 0

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync, os.Args[1:])

	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

		case creator := <-sync.creator:
			var err error

			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err

				// a nil value of a concrete type is not a nil interface
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}
			}

		default:
			if gui != nil {
				gui.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate frontend creation and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "HEADLESS", "PROBE", "LAYOUT", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "HEADLESS":
		err = headless(md, os.Stdout)

	case "PROBE":
		err = probe(md, os.Stdout)

	case "LAYOUT":
		err = layoutTable(md, os.Stdout)

	case "VERSION":
		fmt.Println(version.String())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// window is the GuiCreator for the RUN mode. It is created and serviced by
// the main thread.
type window struct {
	host *sdlhost.Host
	adpt *adapter.Adapter
	lmtr *limiter.Limiter
	shot *screenshot.Screenshot
	wav  *wavwriter.WavWriter
	dir  string

	// closed when the window should be closed
	finished chan error
	ended    bool
}

func (w *window) end(err error) {
	if w.ended {
		return
	}
	w.ended = true
	w.finished <- err
}

// Service implements the GuiCreator interface.
func (w *window) Service() {
	if w.ended {
		return
	}

	if w.host.Quit() {
		w.end(nil)
		return
	}

	if err := w.adpt.Run(); err != nil {
		w.end(err)
		return
	}

	w.lmtr.CheckFrame()
	w.lmtr.MeasureActual()
}

// Destroy implements the GuiCreator interface.
func (w *window) Destroy(output io.Writer) {
	w.adpt.Unload()
	w.lmtr.Stop()
	if w.wav != nil {
		if err := w.wav.Close(); err != nil {
			fmt.Fprintf(output, "* %v\n", err)
		}
	}
	w.host.Destroy()
}

// compositeHost replaces the video and audio sinks of a host.
type compositeHost struct {
	host.Host
	video host.Video
	audio host.Audio
}

func (h compositeHost) Present(pix []uint32, width int, height int, stride int) {
	h.video.Present(pix, width, height, stride)
}

func (h compositeHost) Deliver(samples []int16, frames int) {
	h.audio.Deliver(samples, frames)
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	cf := addCommonFlags(md)
	fpsCap := md.AddBool("fpscap", true, "cap frame rate to the refresh rate")
	wav := md.AddString("wav", "", "record audio to wav file")
	stats := md.AddBool("statsview", false, "run stats server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	sess, err := cf.prepare(md)
	if err != nil {
		return err
	}
	defer sess.end()

	if *stats {
		statsview.Launch(os.Stdout)
	}

	finished := make(chan error, 1)

	sync.creator <- func() (GuiCreator, error) {
		h, err := sdlhost.NewHost(logger.Allow, sess.systemDir, sess.saveDir)
		if err != nil {
			return nil, err
		}

		w := &window{
			host:     h,
			lmtr:     limiter.NewLimiter(),
			dir:      sess.saveDir,
			finished: finished,
		}
		w.lmtr.Active = *fpsCap
		w.shot = screenshot.New(logger.Allow, h)

		var audio host.Audio = h
		if *wav != "" {
			w.wav, err = wavwriter.New(logger.Allow, *wav, h)
			if err != nil {
				h.Destroy()
				return nil, err
			}
			audio = w.wav
		}

		w.adpt = sess.newAdapter(compositeHost{Host: h, video: w.shot, audio: audio})
		if err := w.adpt.Load(sess.romPath); err != nil {
			h.Destroy()
			return nil, err
		}

		h.OnScreenshot = func() {
			if _, err := w.shot.Save(w.dir, sess.label(), 1); err != nil {
				logger.Log(logger.Allow, "dualscreen", err)
			}
		}

		return w, nil
	}

	select {
	case <-sync.creation:
	case err := <-sync.creationError:
		return err
	}

	err = <-finished
	if errors.Is(err, adapter.ErrNotLoaded) {
		return nil
	}
	return err
}
