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

package display_test

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"testing"

	"github.com/a2dvi/a2dvi/display"
	"github.com/a2dvi/a2dvi/test"
	"github.com/a2dvi/a2dvi/video/scanline"
	"github.com/a2dvi/a2dvi/video/tmds"
)

type frameCounter struct {
	n int
}

func (f *frameCounter) NewFrame(_ *image.RGBA) error {
	f.n++
	return nil
}

func TestDecodeLine(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, scanline.Width, scanline.Height))

	red := tmds.RGB{R: 0xef, G: 0x10, B: 0x10}
	var b scanline.Buffer
	b.Line = 10
	v := b.View()
	v.Fill(0, scanline.WordsPerLane, tmds.TripleFor(red, tmds.RGB{}))

	display.DecodeLine(img, &b)

	c := img.RGBAAt(0, 10)
	test.ExpectEquality(t, c.R, tmds.Quantise(red.R))
	test.ExpectEquality(t, c.G, tmds.Quantise(red.G))
	test.ExpectEquality(t, c.A, uint8(0xff))

	// second pixel of the pair is black
	c = img.RGBAAt(1, 10)
	test.ExpectEquality(t, c.R, tmds.Quantise(0))

	// other lines are untouched
	test.ExpectEquality(t, img.RGBAAt(0, 11).A, uint8(0))
}

func TestHeadlessFrames(t *testing.T) {
	q := scanline.NewQueue(4)
	h := display.NewHeadless(q)
	fc := &frameCounter{}
	h.AddFrameRenderer(fc)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() {
		done <- h.Run(ctx)
	}()

	for f := 0; f < 2; f++ {
		for y := 0; y < scanline.Height; y++ {
			b := q.Acquire()
			b.Line = y
			q.Push(b)
		}
	}

	// wait for all buffers to be returned
	var held []*scanline.Buffer
	for i := 0; i < 4; i++ {
		held = append(held, q.Acquire())
	}
	for _, b := range held {
		q.Release(b)
	}

	cancel()
	test.ExpectEquality(t, <-done, context.Canceled)
	test.ExpectEquality(t, h.Frames(), uint64(2))
	test.ExpectEquality(t, fc.n, 2)
}

func TestWritePNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	var buf bytes.Buffer
	test.DemandSuccess(t, display.WritePNG(&buf, img, 2))

	dec, err := png.Decode(&buf)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dec.Bounds().Dx(), 8)
	test.ExpectEquality(t, dec.Bounds().Dy(), 6)
}

func TestWatchdog(t *testing.T) {
	var frames uint64
	w := display.NewWatchdog(func() uint64 { return frames })

	test.ExpectSuccess(t, w.Check())
	frames++
	test.ExpectFailure(t, w.Check())
	test.ExpectSuccess(t, w.Check())
	test.ExpectSuccess(t, display.Starved(10, 10))
	test.ExpectFailure(t, display.Starved(10, 11))
}
