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

package renderer

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"

	"github.com/jetsetilly/dualscreen/compositor"
	"github.com/jetsetilly/dualscreen/config"
	"github.com/jetsetilly/dualscreen/engine"
	"github.com/jetsetilly/dualscreen/layout"
)

// ErrNoAccelerator is returned by the accelerated backend's Init() function
// when no GPU accelerator has been registered with the graphics library.
var ErrNoAccelerator = errors.New("no GPU accelerator")

// AcceleratedBackend composites the engine's screens with the gogpu/gg
// graphics library.
type AcceleratedBackend struct {
	probe func() error

	scale int

	dc *gg.Context

	// enlarged copies of each screen
	scaled [2]*image.RGBA

	out []uint32
}

// NewAccelerated is the preferred method of initialisation for the
// AcceleratedBackend type.
func NewAccelerated() *AcceleratedBackend {
	return NewAcceleratedWithProbe(probeAccelerator)
}

// NewAcceleratedWithProbe is like NewAccelerated() but with a replacement
// for the function that checks whether a GPU is available.
func NewAcceleratedWithProbe(probe func() error) *AcceleratedBackend {
	return &AcceleratedBackend{probe: probe}
}

func probeAccelerator() error {
	if gg.Accelerator() == nil {
		return ErrNoAccelerator
	}
	return nil
}

// Kind implements the Backend interface.
func (b *AcceleratedBackend) Kind() config.Backend {
	return config.Accelerated
}

// Init implements the Backend interface.
func (b *AcceleratedBackend) Init(eng engine.Engine, rs config.RenderSettings) error {
	if err := b.probe(); err != nil {
		return err
	}
	return b.Reconfigure(eng, rs)
}

// Reconfigure implements the Backend interface.
func (b *AcceleratedBackend) Reconfigure(eng engine.Engine, rs config.RenderSettings) error {
	b.scale = min(max(rs.AcceleratedScale, layout.MinScale), layout.MaxScale)
	eng.SetRenderSettings(engine.RenderSettings{})
	return nil
}

// Scale returns the internal resolution scale factor.
func (b *AcceleratedBackend) Scale() int {
	return b.scale
}

// Render implements the Backend interface.
func (b *AcceleratedBackend) Render(eng engine.Engine, d layout.Data, cur Cursor) ([]uint32, error) {
	if b.dc == nil || b.dc.Width() != d.BufferWidth || b.dc.Height() != d.BufferHeight {
		if b.dc != nil {
			_ = b.dc.Close()
		}
		b.dc = gg.NewContext(d.BufferWidth, d.BufferHeight)
	}

	b.dc.ClearWithColor(gg.RGB(0, 0, 0))

	fb := eng.FrontBuffer()
	for _, s := range []layout.Screen{layout.Top, layout.Bottom} {
		if !d.Enabled(s) {
			continue
		}

		pix := eng.Framebuffer(fb, s)
		if len(pix) != engine.ScreenPixels {
			return nil, fmt.Errorf("renderer: %w: %s screen", compositor.ErrScreenSize, s)
		}

		// the screen is enlarged by pixel replication before it is handed to
		// the graphics library and then drawn 1:1. gg treats InterpNearest
		// as the default and substitutes InterpBilinear, which only samples
		// exact texel centres when the draw is unscaled
		region := d.Region(s)
		dst := b.scaled[s]
		if dst == nil || dst.Bounds() != image.Rect(0, 0, region.Dx(), region.Dy()) {
			dst = image.NewRGBA(image.Rect(0, 0, region.Dx(), region.Dy()))
			b.scaled[s] = dst
		}
		src := compositor.NewSurface(pix, layout.ScreenWidth, layout.ScreenHeight)
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

		b.dc.DrawImageEx(gg.ImageBufFromImage(dst), gg.DrawImageOptions{
			X:             float64(region.Min.X),
			Y:             float64(region.Min.Y),
			DstWidth:      float64(region.Dx()),
			DstHeight:     float64(region.Dy()),
			Interpolation: gg.InterpNearest,
			Opacity:       1.0,
			BlendMode:     gg.BlendNormal,
		})
	}

	if err := b.dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}

	if len(b.out) < d.Pixels() {
		b.out = make([]uint32, d.Pixels())
	}
	out := b.out[:d.Pixels()]
	compositor.FromRGBA(out, b.dc.ResizeTarget().Data())

	if cur.Visible {
		compositor.DrawCursor(out, d, cur.X, cur.Y)
	}

	return out, nil
}

// Close implements the Backend interface.
func (b *AcceleratedBackend) Close() {
	if b.dc != nil {
		_ = b.dc.Close()
		b.dc = nil
	}
}
