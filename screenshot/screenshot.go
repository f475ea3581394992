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

// Package screenshot keeps a copy of the most recently presented frame and
// saves it to disk as a PNG file on request.
package screenshot

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	"github.com/jetsetilly/dualscreen/compositor"
	"github.com/jetsetilly/dualscreen/host"
	"github.com/jetsetilly/dualscreen/logger"
	"github.com/jetsetilly/dualscreen/paths"
)

const logTag = "screenshot"

// ErrNoFrame is returned by Save() if no frame has been presented.
var ErrNoFrame = errors.New("no frame to save")

// Screenshot implements the host.Video interface. Frames are forwarded to
// another host.Video implementation if one is supplied.
type Screenshot struct {
	perm logger.Permission
	next host.Video

	pix    []uint32
	width  int
	height int
}

// New is the preferred method of initialisation for the Screenshot type.
// The next argument can be nil.
func New(perm logger.Permission, next host.Video) *Screenshot {
	if perm == nil {
		perm = logger.Allow
	}
	return &Screenshot{
		perm: perm,
		next: next,
	}
}

// Present implements the host.Video interface.
func (sh *Screenshot) Present(pix []uint32, width int, height int, stride int) {
	sh.pix = sh.pix[:0]
	words := stride / 4
	for y := range height {
		sh.pix = append(sh.pix, pix[y*words:y*words+width]...)
	}
	sh.width = width
	sh.height = height

	if sh.next != nil {
		sh.next.Present(pix, width, height, stride)
	}
}

// Image returns the most recent frame enlarged by the scale factor. Pixels
// are replicated rather than interpolated.
func (sh *Screenshot) Image(scale int) (*image.RGBA, error) {
	if sh.width == 0 || sh.height == 0 {
		return nil, fmt.Errorf("screenshot: %w", ErrNoFrame)
	}

	src := compositor.NewSurface(sh.pix, sh.width, sh.height)
	if scale <= 1 {
		return src.RGBA(), nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, sh.width*scale, sh.height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}

// Save the most recent frame to a uniquely named file in the directory. The
// name of the file is returned.
func (sh *Screenshot) Save(dir string, label string, scale int) (string, error) {
	img, err := sh.Image(scale)
	if err != nil {
		return "", err
	}

	fn := filepath.Join(dir, paths.UniqueFilename("screenshot", label, "png"))

	f, err := os.OpenFile(fn, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	logger.Logf(sh.perm, logTag, "saved %s", fn)

	return fn, nil
}
