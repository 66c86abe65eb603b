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

package render

import (
	"context"

	"github.com/a2dvi/a2dvi/hardware/machine"
	"github.com/a2dvi/a2dvi/hardware/softswitch"
	"github.com/a2dvi/a2dvi/hardware/state"
	"github.com/a2dvi/a2dvi/logger"
	"github.com/a2dvi/a2dvi/video/scanline"
	"github.com/a2dvi/a2dvi/video/tmds"
)

// Renderer encodes frames from the shared state.
type Renderer struct {
	st     *state.State
	tables *tmds.Tables
	queue  *scanline.Queue

	frame   uint64
	flasher flasher

	// copy of the state taken at the start of the frame
	sw      softswitch.Switches
	caps    softswitch.Capability
	family  machine.Family
	mode    state.ColorMode
	palette int
	mono    bool
	page2   bool

	plan [scanline.Height]lineSpec

	// description of the previous frame's mode. used to log mode changes
	desc string

	// scratch space for encoders
	dots   [scanline.ActiveWords*2 + 2]uint8
	colors [scanline.ActiveWords * 2]uint8
}

// NewRenderer is the preferred method of initialisation for the Renderer
// type.
func NewRenderer(st *state.State, queue *scanline.Queue) *Renderer {
	return &Renderer{
		st:     st,
		tables: tmds.NewTables(),
		queue:  queue,
	}
}

// Tables returns the symbol tables used by the renderer.
func (r *Renderer) Tables() *tmds.Tables {
	return r.tables
}

// Frame returns the number of frames rendered.
func (r *Renderer) Frame() uint64 {
	return r.frame
}

// Run renders frames until the context is cancelled. The context's error is
// returned.
func (r *Renderer) Run(ctx context.Context) error {
	for {
		if err := r.RenderFrame(ctx); err != nil {
			return err
		}
	}
}

func (r *Renderer) snapshot() {
	r.sw = r.st.Switches()
	r.caps = r.st.Capabilities()
	r.family = r.st.Family()
	r.mode = r.st.ColorMode()
	r.palette = int(r.st.Palette())
	r.mono = r.caps.Has(softswitch.ForceMono) || r.sw.Has(softswitch.Monochrome)
	r.page2 = r.sw.Has(softswitch.Page2) && !r.sw.Has(softswitch.Store80)
}

// RenderFrame encodes one frame and pushes the lines to the queue. Returns
// only when all lines have been pushed or the context is cancelled.
func (r *Renderer) RenderFrame(ctx context.Context) error {
	r.snapshot()
	r.flasher.tick(r.family.FlashPeriod())

	if d := r.planFrame(); d != r.desc {
		r.desc = d
		logger.Logf(logger.Allow, "render", "mode: %s", d)
	}

	// the previous line is held until the next line has been acquired so
	// that it can be copied if the lines are the same
	var held *scanline.Buffer
	var heldKey lineKey

	for y := 0; y < scanline.Height; y++ {
		ls := &r.plan[y]

		b, err := r.queue.AcquireContext(ctx)
		if err != nil {
			return err
		}
		b.Line = y

		if held != nil && ls.key == heldKey {
			b.CopyFrom(held)
		} else {
			r.encode(b, ls)
		}

		if held != nil {
			if err := r.queue.PushContext(ctx, held); err != nil {
				return err
			}
		}
		held = b
		heldKey = ls.key
	}

	if err := r.queue.PushContext(ctx, held); err != nil {
		return err
	}

	r.frame++
	r.st.Counters.Frames.Add(1)
	r.st.Counters.Lines.Add(scanline.Height)

	return nil
}

func (r *Renderer) encode(b *scanline.Buffer, ls *lineSpec) {
	v := b.View()
	if ls.key.enc == encBorder {
		v.Fill(0, scanline.WordsPerLane, r.tables.Black)
		return
	}
	v.Border(r.tables.Black)
	encoders[ls.key.enc](r, v, ls.line, ls.key.dim)
}

// the Mono table for text and monochrome graphics
func (r *Renderer) monoTable(dim int) *[4]tmds.Triple {
	return &r.tables.Mono[r.mode][dim]
}

// the Pairs table for colour graphics
func (r *Renderer) pairTable(dim int) *[256]tmds.Triple {
	return &r.tables.Pairs[r.palette][dim]
}

// emitDots encodes the 560 dots in the dots array with the Mono table
func (r *Renderer) emitDots(v scanline.View, dim int) {
	t := r.monoTable(dim)
	for i := 0; i < scanline.ActiveWords; i++ {
		v.Put(scanline.ActiveFirst+i, t[r.dots[i*2]|r.dots[i*2+1]<<1])
	}
}

// emitColors encodes the 560 colour indexes in the colors array with the
// Pairs table
func (r *Renderer) emitColors(v scanline.View, dim int) {
	t := r.pairTable(dim)
	for i := 0; i < scanline.ActiveWords; i++ {
		v.Put(scanline.ActiveFirst+i, t[r.colors[i*2]<<4|r.colors[i*2+1]])
	}
}
