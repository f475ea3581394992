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
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jetsetilly/dualscreen/adapter"
	"github.com/jetsetilly/dualscreen/config"
	hl "github.com/jetsetilly/dualscreen/host/headless"
	"github.com/jetsetilly/dualscreen/layout"
	"github.com/jetsetilly/dualscreen/limiter"
	"github.com/jetsetilly/dualscreen/logger"
	"github.com/jetsetilly/dualscreen/modalflag"
	"github.com/jetsetilly/dualscreen/screenshot"
	"github.com/jetsetilly/dualscreen/wavwriter"
)

func headless(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	cf := addCommonFlags(md)
	frames := md.AddInt("frames", 60, "number of frames to run")
	fpsCap := md.AddBool("fpscap", false, "cap frame rate to the refresh rate")
	wav := md.AddString("wav", "", "record audio to wav file")
	png := md.AddString("png", "", "save the final frame to a png file in the directory")
	scale := md.AddInt("pngscale", 1, "scaling applied to the png file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	sess, err := cf.prepare(md)
	if err != nil {
		return err
	}
	defer sess.end()

	h := hl.NewHost(sess.systemDir, sess.saveDir)

	var aw *wavwriter.WavWriter
	if *wav != "" {
		aw, err = wavwriter.New(logger.Allow, *wav, nil)
		if err != nil {
			return err
		}
		h.AudioSink = aw
	}

	shot := screenshot.New(logger.Allow, h)
	adpt := sess.newAdapter(compositeHost{Host: h, video: shot, audio: h})

	if err := adpt.Load(sess.romPath); err != nil {
		return err
	}
	defer adpt.Unload()

	var lmtr *limiter.Limiter
	if *fpsCap {
		lmtr = limiter.NewLimiter()
		defer lmtr.Stop()
	}

	for range *frames {
		if err := adpt.Run(); err != nil {
			return err
		}
		if lmtr != nil {
			lmtr.CheckFrame()
		}
	}

	_, audioFrames := h.Audio()
	fmt.Fprintf(output, "%d frames presented, %d audio frames\n", h.Presented(), audioFrames)
	fmt.Fprintf(output, "%s\n", adpt.Geometry())

	if aw != nil {
		if err := aw.Close(); err != nil {
			return err
		}
	}

	if *png != "" {
		fn, err := shot.Save(*png, sess.label(), *scale)
		if err != nil {
			return err
		}
		fmt.Fprintf(output, "saved %s\n", fn)
	}

	return nil
}

func probe(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	cf := addCommonFlags(md)
	frames := md.AddInt("frames", 0, "number of frames to run before probing")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	sess, err := cf.prepare(md)
	if err != nil {
		return err
	}
	defer sess.end()

	h := hl.NewHost(sess.systemDir, sess.saveDir)
	adpt := sess.newAdapter(h)

	if err := adpt.Load(sess.romPath); err != nil {
		return err
	}
	defer adpt.Unload()

	for range *frames {
		if err := adpt.Run(); err != nil {
			return err
		}
	}

	sz, err := adpt.SerializeSize()
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "savestate: %d bytes\n", sz)
	fmt.Fprintf(output, "system ram: %d bytes\n", adpt.MemorySize(adapter.SystemRAM))
	fmt.Fprintf(output, "save ram: %d bytes\n", adpt.MemorySize(adapter.SaveRAM))

	return nil
}

// layoutTable prints the geometry of every layout at every hybrid ratio.
func layoutTable(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	scale := md.AddInt("scale", 1, "accelerated renderer scaling")
	swapped := md.AddBool("swapped", false, "show geometry with screens swapped")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *scale < layout.MinScale || *scale > layout.MaxScale {
		return fmt.Errorf("scale must be between %d and %d", layout.MinScale, layout.MaxScale)
	}

	tw := tabwriter.NewWriter(output, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "layout\tratio\tbuffer\ttouch\tavinfo")

	for _, m := range layout.Modes() {
		ratios := []int{layout.DefaultHybridRatio}
		if m.IsHybrid() {
			ratios = ratios[:0]
			for r := layout.MinHybridRatio; r <= layout.MaxHybridRatio; r++ {
				ratios = append(ratios, r)
			}
		}

		for _, r := range ratios {
			d := layout.Resolve(m, r, *scale, *swapped)

			ratio := "-"
			if m.IsHybrid() {
				ratio = fmt.Sprintf("%d", r)
			}

			touch := "-"
			if d.TouchVisible() {
				touch = d.TouchRegion().String()
			}

			av := d.AVInfo()
			fmt.Fprintf(tw, "%s\t%s\t%dx%d\t%s\t%.3f %.0fHz\n", m, ratio,
				d.BufferWidth, d.BufferHeight, touch,
				av.Aspect, av.SampleRate)
		}
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	if o, ok := config.LookupOption(config.KeyScreenLayout); ok {
		fmt.Fprintf(output, "\n%s: %s\n", o, strings.Join(o.Values, ", "))
	}

	return nil
}
