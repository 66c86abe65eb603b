// This file is part of a2dvi.
//
// a2dvi is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// a2dvi is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with a2dvi.  If not, see <https://www.gnu.org/licenses/>.

package display

import (
	"context"
	"image"
	"sync"

	"github.com/a2dvi/a2dvi/video/scanline"
	"github.com/a2dvi/a2dvi/video/tmds"
)

// FrameRenderer is implemented by types that want to see every completed
// frame. The image must not be retained after NewFrame() returns.
type FrameRenderer interface {
	NewFrame(img *image.RGBA) error
}

// Headless is an output stage that decodes scanlines into frames.
type Headless struct {
	queue *scanline.Queue

	// back is written to by Run(). front is the most recently completed frame
	crit  sync.Mutex
	back  *image.RGBA
	front *image.RGBA

	frames uint64

	renderers []FrameRenderer
}

// NewHeadless is the preferred method of initialisation for the Headless
// type.
func NewHeadless(queue *scanline.Queue) *Headless {
	r := image.Rect(0, 0, scanline.Width, scanline.Height)
	return &Headless{
		queue: queue,
		back:  image.NewRGBA(r),
		front: image.NewRGBA(r),
	}
}

// AddFrameRenderer adds a renderer to the list of renderers that see every
// frame. Must not be called while Run() is running.
func (h *Headless) AddFrameRenderer(r FrameRenderer) {
	h.renderers = append(h.renderers, r)
}

// Run receives scanlines until the context is cancelled. An error from a
// FrameRenderer stops the loop and is returned.
func (h *Headless) Run(ctx context.Context) error {
	for {
		b, err := h.queue.ReceiveContext(ctx)
		if err != nil {
			return err
		}

		DecodeLine(h.back, b)
		if b.Line == scanline.Height-1 {
			if err := h.completeFrame(); err != nil {
				h.queue.Release(b)
				return err
			}
		}
		h.queue.Release(b)
	}
}

func (h *Headless) completeFrame() error {
	h.crit.Lock()
	h.back, h.front = h.front, h.back
	h.frames++
	h.crit.Unlock()

	for _, r := range h.renderers {
		if err := r.NewFrame(h.front); err != nil {
			return err
		}
	}
	return nil
}

// Frames returns the number of completed frames.
func (h *Headless) Frames() uint64 {
	h.crit.Lock()
	defer h.crit.Unlock()
	return h.frames
}

// Snapshot returns a copy of the most recently completed frame.
func (h *Headless) Snapshot() *image.RGBA {
	h.crit.Lock()
	defer h.crit.Unlock()

	img := image.NewRGBA(h.front.Rect)
	copy(img.Pix, h.front.Pix)
	return img
}

// DecodeLine decodes the symbols of a scanline into the row of the image
// given by the buffer's line number.
func DecodeLine(img *image.RGBA, b *scanline.Buffer) {
	if b.Line < 0 || b.Line >= img.Rect.Dy() {
		return
	}

	row := img.Pix[b.Line*img.Stride:]
	for i := 0; i < scanline.WordsPerLane; i++ {
		a, c := b.Get(i).Decode()
		putRGB(row[i*8:], a)
		putRGB(row[i*8+4:], c)
	}
}

func putRGB(p []uint8, c tmds.RGB) {
	p[0] = c.R
	p[1] = c.G
	p[2] = c.B
	p[3] = 0xff
}
